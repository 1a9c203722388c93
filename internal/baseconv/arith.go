// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package baseconv

import (
	"fmt"
	"math/big"
)

// Op identifies an arithmetic operation on based numbers.
type Op string

const (
	OpAdd      Op = "add"
	OpSubtract Op = "subtract"
	OpMultiply Op = "multiply"
	OpDivide   Op = "divide"
	OpModulo   Op = "modulo"
	OpPower    Op = "power"
)

// Ops lists the supported operations in display order.
var Ops = []Op{OpAdd, OpSubtract, OpMultiply, OpDivide, OpModulo, OpPower}

// ParseOp maps an operation name or symbol to an Op.
func ParseOp(s string) (Op, error) {
	switch s {
	case "add", "+":
		return OpAdd, nil
	case "subtract", "sub", "-":
		return OpSubtract, nil
	case "multiply", "mul", "*", "x":
		return OpMultiply, nil
	case "divide", "div", "/":
		return OpDivide, nil
	case "modulo", "mod", "%":
		return OpModulo, nil
	case "power", "pow", "^", "**":
		return OpPower, nil
	}
	return "", fmt.Errorf("%w: unknown operation %q", ErrUnsupportedOperation, s)
}

// Arithmetic parses both operands in the given base, applies op with
// arbitrary-precision integer semantics, and renders the result in the
// same base. Division truncates toward zero and modulo takes the sign
// of the dividend; dividing by zero fails with ErrDivisionByZero, and
// power requires a non-negative exponent that fits in an int64.
func Arithmetic(op Op, a, b string, base int) (string, error) {
	x, err := BaseToDecimal(a, base)
	if err != nil {
		return "", fmt.Errorf("operand %q: %w", a, err)
	}
	y, err := BaseToDecimal(b, base)
	if err != nil {
		return "", fmt.Errorf("operand %q: %w", b, err)
	}

	result := new(big.Int)
	switch op {
	case OpAdd:
		result.Add(x, y)
	case OpSubtract:
		result.Sub(x, y)
	case OpMultiply:
		result.Mul(x, y)
	case OpDivide:
		if y.Sign() == 0 {
			return "", ErrDivisionByZero
		}
		result.Quo(x, y)
	case OpModulo:
		if y.Sign() == 0 {
			return "", fmt.Errorf("%w: modulo", ErrDivisionByZero)
		}
		result.Rem(x, y)
	case OpPower:
		if y.Sign() < 0 {
			return "", fmt.Errorf("%w: negative exponent %s", ErrUnsupportedOperation, y)
		}
		if !y.IsInt64() {
			return "", fmt.Errorf("%w: exponent %s too large", ErrUnsupportedOperation, y)
		}
		result.Exp(x, y, nil)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedOperation, op)
	}

	return DecimalToBase(result, base)
}
