// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package baseconv converts numbers between bases 2-36 and performs
// arbitrary-precision arithmetic on based numbers. All functions are
// pure: they parse a string, compute over math/big integers, and render
// a string, with no shared state.
package baseconv

// digits is the ordered digit alphabet. A character's index is its
// value; input is case-insensitive, output uses this uppercase form.
const digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// MinBase and MaxBase bound the supported radix range.
const (
	MinBase = 2
	MaxBase = 36
)

// digitValue returns the numeric value of c, or -1 if c is not in the
// digit alphabet. Lowercase letters map to their uppercase values.
func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	}
	return -1
}

// validBase reports whether base is within [MinBase, MaxBase].
func validBase(base int) bool {
	return base >= MinBase && base <= MaxBase
}
