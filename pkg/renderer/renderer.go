package renderer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/IPampurin/LongHandCalculator/pkg/calc"
	"github.com/IPampurin/LongHandCalculator/pkg/reader"
)

// Renderer печатает выражения "столбиком" в выходной поток
type Renderer struct {
	out io.Writer
}

// New возвращает Renderer, пишущий в out
func New(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Render печатает одно выражение. Для операции без отрисовки (деление)
// печатается строка диагностики и возвращается calc.ErrUnsupportedOperator,
// такая ошибка не мешает печатать следующие выражения.
func (r *Renderer) Render(e reader.Expression) error {

	op := calc.ParseOperator(e.Operator)
	if op == calc.Unsupported {
		if _, err := fmt.Fprintf(r.out, "invalid operator: %s\n", e.Operator); err != nil {
			return err
		}
		return fmt.Errorf("%w: %s", calc.ErrUnsupportedOperator, e.Operator)
	}

	block, err := Format(e.FirstNumber, e.SecondNumber, op)
	if err != nil {
		return err
	}

	_, err = io.WriteString(r.out, block)

	return err
}

// IsRecoverable сообщает, можно ли после ошибки Render продолжать печать
func IsRecoverable(err error) bool {
	return errors.Is(err, calc.ErrUnsupportedOperator)
}

// Format собирает текст одного выражения: два операнда, черта,
// промежуточные произведения (только для многозначного множителя) и результат
func Format(n1, n2 string, op calc.Operator) (string, error) {

	res, err := calc.Apply(op, n1, n2)
	if err != nil {
		return "", err
	}

	n1Length := len(n1)
	n2Length := len(n2) + 1 // с учётом знака операции
	resLength := len(res)

	maxLength := max(n1Length, n2Length, resLength)

	var sb strings.Builder

	// первое число
	gap(&sb, maxLength-n1Length)
	sb.WriteString(n1 + "\n")

	// второе число со знаком операции
	gap(&sb, maxLength-n2Length)
	sb.WriteString(op.Symbol() + n2 + "\n")

	// черта под операндами: при умножении она по ширине операндов
	if op == calc.Multiply {
		inputMaxLength := max(n1Length, n2Length)
		gap(&sb, maxLength-inputMaxLength)
		line(&sb, inputMaxLength)
	} else {
		line(&sb, maxLength)
	}
	sb.WriteString("\n")

	if op == calc.Multiply && len(n2) > 1 {
		if err := subtotals(&sb, n1, n2, maxLength); err != nil {
			return "", err
		}
		line(&sb, maxLength)
		sb.WriteString("\n")
	}

	// результат
	gap(&sb, maxLength-resLength)
	sb.WriteString(res + "\n\n")

	return sb.String(), nil
}

// subtotals печатает "лесенку" произведений n1 на каждую цифру n2,
// начиная с младшей; каждая следующая строка сдвинута на колонку влево
func subtotals(sb *strings.Builder, n1, n2 string, maxLength int) error {

	for i := 0; i < len(n2); i++ {

		subTotal, err := calc.MulDigit(n1, n2[len(n2)-i-1])
		if err != nil {
			return err
		}

		gap(sb, maxLength-i-len(subTotal))
		sb.WriteString(subTotal + "\n")
	}

	return nil
}

// gap - отступ из пробелов, отрицательная длина даёт пустой отступ
func gap(sb *strings.Builder, length int) {
	sb.WriteString(strings.Repeat(" ", max(length, 0)))
}

// line - черта из дефисов
func line(sb *strings.Builder, length int) {
	sb.WriteString(strings.Repeat("-", max(length, 0)))
}
