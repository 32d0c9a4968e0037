package calc

import (
	"errors"
	"fmt"
	"math/big"
)

// Operator - поддерживаемая операция над двумя операндами
type Operator int

const (
	Unsupported Operator = iota // операция, для которой нет отрисовки (например, деление)
	Add
	Subtract
	Multiply
)

var (
	ErrUnsupportedOperator = errors.New("invalid operator")
	ErrBadOperand          = errors.New("operand is not a decimal integer")
)

// ParseOperator сопоставляет символ операции значению перечисления
func ParseOperator(symbol string) Operator {

	switch symbol {
	case "+":
		return Add
	case "-":
		return Subtract
	case "*":
		return Multiply
	default:
		return Unsupported
	}
}

// Symbol возвращает символ, которым операция печатается перед вторым операндом
func (op Operator) Symbol() string {

	switch op {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	default:
		return "?"
	}
}

func (op Operator) String() string {
	return op.Symbol()
}

// Apply вычисляет точный результат операции над двумя десятичными строками
// и возвращает его в виде десятичной строки (со знаком минус, если результат отрицательный)
func Apply(op Operator, n1, n2 string) (string, error) {

	a, err := parse(n1)
	if err != nil {
		return "", err
	}
	b, err := parse(n2)
	if err != nil {
		return "", err
	}

	res := new(big.Int)

	switch op {
	case Add:
		res.Add(a, b)
	case Subtract:
		res.Sub(a, b)
	case Multiply:
		res.Mul(a, b)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedOperator, op)
	}

	return res.String(), nil
}

// MulDigit умножает операнд на одну десятичную цифру (промежуточная строка столбика)
func MulDigit(n1 string, digit byte) (string, error) {

	if digit < '0' || digit > '9' {
		return "", fmt.Errorf("%w: %q", ErrBadOperand, digit)
	}

	return Apply(Multiply, n1, string(digit))
}

// parse переводит десятичную строку в big.Int
func parse(s string) (*big.Int, error) {

	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBadOperand, s)
	}

	return n, nil
}
