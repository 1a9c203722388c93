// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package baseconv

import (
	"fmt"
	"math/big"
	"strings"
)

// splitSign trims whitespace and strips one optional leading sign.
// It rejects empty input and a bare sign with nothing after it.
func splitSign(number string) (negative bool, rest string, err error) {
	s := strings.TrimSpace(number)
	if s == "" {
		return false, "", ErrEmptyInput
	}

	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	if s == "" {
		return false, "", fmt.Errorf("%w: sign with no digits", ErrEmptyInput)
	}
	return negative, s, nil
}

// stripPrefix removes a radix prefix when it matches the base: 0x/0X for
// 16, 0b/0B for 2, 0o/0O for 8. Prefixes for other bases are left in
// place and fail digit validation downstream.
func stripPrefix(s string, base int) (string, error) {
	if len(s) < 2 || s[0] != '0' {
		return s, nil
	}

	var marker byte
	switch base {
	case 16:
		marker = 'x'
	case 2:
		marker = 'b'
	case 8:
		marker = 'o'
	default:
		return s, nil
	}

	c := s[1]
	if c != marker && c != marker-'a'+'A' {
		return s, nil
	}
	if len(s) == 2 {
		return "", fmt.Errorf("%w: prefix with no digits", ErrEmptyInput)
	}
	return s[2:], nil
}

// Validate checks that number is a well-formed based number for base:
// the base is within [2, 36], the input is non-empty after sign and
// prefix handling, at most one leading sign appears, and every digit
// maps to a value below the base. It is a pure predicate and must pass
// before any conversion.
func Validate(number string, base int) error {
	if !validBase(base) {
		return fmt.Errorf("%w: got %d", ErrInvalidBase, base)
	}

	_, s, err := splitSign(number)
	if err != nil {
		return err
	}
	s, err = stripPrefix(s, base)
	if err != nil {
		return err
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '+' || c == '-' {
			return fmt.Errorf("%w: unexpected %q at position %d", ErrMalformedSign, c, i)
		}
		v := digitValue(c)
		if v < 0 || v >= base {
			return fmt.Errorf("%w: %q is not a base-%d digit", ErrInvalidDigit, c, base)
		}
	}
	return nil
}

// BaseToDecimal parses number in the given base and returns its value
// as an arbitrary-precision integer. An optional leading sign and a
// prefix matching the base (0x, 0b, 0o) are accepted.
func BaseToDecimal(number string, base int) (*big.Int, error) {
	if err := Validate(number, base); err != nil {
		return nil, err
	}

	negative, s, err := splitSign(number)
	if err != nil {
		return nil, err
	}
	s, err = stripPrefix(s, base)
	if err != nil {
		return nil, err
	}

	value := new(big.Int)
	radix := big.NewInt(int64(base))
	digit := new(big.Int)
	for i := 0; i < len(s); i++ {
		digit.SetInt64(int64(digitValue(s[i])))
		value.Mul(value, radix).Add(value, digit)
	}

	if negative {
		value.Neg(value)
	}
	return value, nil
}

// DecimalToBase renders value in the given base using uppercase digits.
// Zero renders as "0"; negative values carry a leading minus sign.
func DecimalToBase(value *big.Int, base int) (string, error) {
	if !validBase(base) {
		return "", fmt.Errorf("%w: got %d", ErrInvalidBase, base)
	}
	if value.Sign() == 0 {
		return "0", nil
	}

	n := new(big.Int).Abs(value)
	radix := big.NewInt(int64(base))
	rem := new(big.Int)

	// Remainders come out least-significant-first; reverse at the end.
	buf := make([]byte, 0, 16)
	for n.Sign() > 0 {
		n.DivMod(n, radix, rem)
		buf = append(buf, digits[rem.Int64()])
	}
	if value.Sign() < 0 {
		buf = append(buf, '-')
	}

	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf), nil
}

// ConvertBase converts number from sourceBase to targetBase through the
// decimal intermediate.
func ConvertBase(number string, sourceBase, targetBase int) (string, error) {
	value, err := BaseToDecimal(number, sourceBase)
	if err != nil {
		return "", err
	}
	return DecimalToBase(value, targetBase)
}

// DetectBase guesses the base of number from its radix prefix: 0x/0X is
// 16, 0b/0B is 2, 0o/0O is 8, anything else is 10. The prefix may
// follow a sign. This is a heuristic only; unprefixed hex digits still
// detect as 10, and the result is not validated against the digits.
func DetectBase(number string) int {
	s := strings.TrimSpace(number)
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if len(s) < 2 || s[0] != '0' {
		return 10
	}

	switch s[1] {
	case 'x', 'X':
		return 16
	case 'b', 'B':
		return 2
	case 'o', 'O':
		return 8
	}
	return 10
}
