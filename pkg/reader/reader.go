package reader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var (
	ErrEmptyInput        = errors.New("Error - empty expression")
	ErrInvalidExpression = errors.New("Error - invalid expression")
)

// выражение целиком: число, знак операции, число
var expressionRe = regexp.MustCompile(`^(\d+)([+\-*/])(\d+)$`)

// Expression - одно разобранное выражение вида <число><операция><число>
type Expression struct {
	FirstNumber  string
	Operator     string // символ операции как во входной строке, деление тоже допускается
	SecondNumber string
}

// ParseLine разбирает одну строку ввода
func ParseLine(line string) (Expression, error) {

	line = strings.TrimSpace(line)
	if line == "" {
		return Expression{}, ErrEmptyInput
	}

	matches := expressionRe.FindStringSubmatch(line)
	if matches == nil {
		return Expression{}, fmt.Errorf("%w: %q", ErrInvalidExpression, line)
	}

	return Expression{
		FirstNumber:  matches[1],
		Operator:     matches[2],
		SecondNumber: matches[3],
	}, nil
}

// ReadExpressions считывает ровно count строк и разбирает каждую.
// Первая же пустая, отсутствующая или некорректная строка прерывает чтение.
func ReadExpressions(input io.Reader, count int) ([]Expression, error) {

	scanner := bufio.NewScanner(input)

	// операнды неограниченной длины, поэтому увеличиваем буфер сканера
	const maxCapacity = 64 * 1024 * 1024 // 64 МБ
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, maxCapacity)

	expressions := make([]Expression, 0, count)

	for i := 1; i <= count; i++ {

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("строка %d: ошибка чтения: %w", i, err)
			}
			// ввод закончился раньше, чем пришли все выражения
			return nil, fmt.Errorf("строка %d: %w", i, ErrEmptyInput)
		}

		expression, err := ParseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("строка %d: %w", i, err)
		}

		expressions = append(expressions, expression)
	}

	return expressions, nil
}
