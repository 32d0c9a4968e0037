package reader

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseLine тестирует разбор одной строки
func TestParseLine(t *testing.T) {

	tests := []struct {
		name     string
		line     string
		expected Expression
		wantErr  error
	}{
		{
			name:     "сложение",
			line:     "12+7",
			expected: Expression{FirstNumber: "12", Operator: "+", SecondNumber: "7"},
		},
		{
			name:     "умножение с пробелами по краям",
			line:     "  12*30\t",
			expected: Expression{FirstNumber: "12", Operator: "*", SecondNumber: "30"},
		},
		{
			name:     "деление разбирается",
			line:     "8/2",
			expected: Expression{FirstNumber: "8", Operator: "/", SecondNumber: "2"},
		},
		{
			name:     "ведущие нули сохраняются",
			line:     "007-01",
			expected: Expression{FirstNumber: "007", Operator: "-", SecondNumber: "01"},
		},
		{name: "пустая строка", line: "", wantErr: ErrEmptyInput},
		{name: "только пробелы", line: "   ", wantErr: ErrEmptyInput},
		{name: "неизвестная операция", line: "12#7", wantErr: ErrInvalidExpression},
		{name: "пробел внутри", line: "12 + 7", wantErr: ErrInvalidExpression},
		{name: "лишний хвост", line: "12+7+1", wantErr: ErrInvalidExpression},
		{name: "отрицательное число", line: "-12+7", wantErr: ErrInvalidExpression},
		{name: "нет второго операнда", line: "12+", wantErr: ErrInvalidExpression},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestReadExpressions тестирует чтение заданного количества строк
func TestReadExpressions(t *testing.T) {

	input := "12+7\n12*30\n5-9\n"

	expressions, err := ReadExpressions(strings.NewReader(input), 3)
	require.NoError(t, err)
	assert.Equal(t, []Expression{
		{FirstNumber: "12", Operator: "+", SecondNumber: "7"},
		{FirstNumber: "12", Operator: "*", SecondNumber: "30"},
		{FirstNumber: "5", Operator: "-", SecondNumber: "9"},
	}, expressions)
}

func TestReadExpressionsIgnoresExtraLines(t *testing.T) {

	expressions, err := ReadExpressions(strings.NewReader("1+1\nмусор\n"), 1)
	require.NoError(t, err)
	assert.Len(t, expressions, 1)
}

func TestReadExpressionsWithoutTrailingNewline(t *testing.T) {

	expressions, err := ReadExpressions(strings.NewReader("1+1\r\n2*3"), 2)
	require.NoError(t, err)
	assert.Equal(t, "3", expressions[1].SecondNumber)
}

func TestReadExpressionsErrors(t *testing.T) {

	tests := []struct {
		name    string
		input   string
		count   int
		wantErr error
		line    string
	}{
		{"ввод закончился раньше", "1+1\n", 2, ErrEmptyInput, "строка 2"},
		{"пустой ввод", "", 1, ErrEmptyInput, "строка 1"},
		{"пустая строка посередине", "1+1\n\n2+2\n", 3, ErrEmptyInput, "строка 2"},
		{"некорректная строка", "1+1\n12#7\n", 2, ErrInvalidExpression, "строка 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expressions, err := ReadExpressions(strings.NewReader(tt.input), tt.count)
			assert.Nil(t, expressions)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.line)
		})
	}
}

func TestReadExpressionsReadError(t *testing.T) {

	readErr := errors.New("обрыв")

	_, err := ReadExpressions(iotest.ErrReader(readErr), 1)
	assert.ErrorIs(t, err, readErr)
}
