// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package baseconv

import (
	"errors"
	"math/big"
	"testing"
)

func TestBaseToDecimal(t *testing.T) {
	tests := []struct {
		name   string
		number string
		base   int
		want   int64
		errIs  error
	}{
		{name: "hex", number: "FF", base: 16, want: 255},
		{name: "hex lowercase", number: "ff", base: 16, want: 255},
		{name: "binary", number: "1010", base: 2, want: 10},
		{name: "octal", number: "777", base: 8, want: 511},
		{name: "hex with prefix", number: "0x1A", base: 16, want: 26},
		{name: "binary with uppercase prefix", number: "0B101", base: 2, want: 5},
		{name: "negative hex", number: "-1A", base: 16, want: -26},
		{name: "explicit plus", number: "+10", base: 2, want: 2},
		{name: "negative with prefix", number: "-0o17", base: 8, want: -15},
		{name: "zero", number: "0", base: 36, want: 0},
		{name: "surrounding whitespace", number: "  2Z \n", base: 36, want: 107},
		{name: "base below range", number: "10", base: 1, errIs: ErrInvalidBase},
		{name: "base above range", number: "10", base: 37, errIs: ErrInvalidBase},
		{name: "empty string", number: "", base: 10, errIs: ErrEmptyInput},
		{name: "bare sign", number: "-", base: 10, errIs: ErrEmptyInput},
		{name: "bare prefix", number: "0x", base: 16, errIs: ErrEmptyInput},
		{name: "digit at base", number: "G", base: 16, errIs: ErrInvalidDigit},
		{name: "prefix not matching base", number: "0x1A", base: 10, errIs: ErrInvalidDigit},
		{name: "sign in the middle", number: "1-2", base: 10, errIs: ErrMalformedSign},
		{name: "double sign", number: "--1", base: 10, errIs: ErrMalformedSign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BaseToDecimal(tt.number, tt.base)
			if tt.errIs != nil {
				if !errors.Is(err, tt.errIs) {
					t.Fatalf("BaseToDecimal(%q, %d) error = %v, want %v", tt.number, tt.base, err, tt.errIs)
				}
				return
			}
			if err != nil {
				t.Fatalf("BaseToDecimal(%q, %d) unexpected error: %v", tt.number, tt.base, err)
			}
			if got.Cmp(big.NewInt(tt.want)) != 0 {
				t.Errorf("BaseToDecimal(%q, %d) = %s, want %d", tt.number, tt.base, got, tt.want)
			}
		})
	}
}

func TestDecimalToBase(t *testing.T) {
	tests := []struct {
		name  string
		value *big.Int
		base  int
		want  string
		errIs error
	}{
		{name: "255 in hex", value: big.NewInt(255), base: 16, want: "FF"},
		{name: "10 in binary", value: big.NewInt(10), base: 2, want: "1010"},
		{name: "511 in octal", value: big.NewInt(511), base: 8, want: "777"},
		{name: "negative", value: big.NewInt(-26), base: 16, want: "-1A"},
		{name: "35 in base 36", value: big.NewInt(35), base: 36, want: "Z"},
		{name: "zero", value: big.NewInt(0), base: 7, want: "0"},
		{name: "invalid base", value: big.NewInt(1), base: 37, errIs: ErrInvalidBase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecimalToBase(tt.value, tt.base)
			if tt.errIs != nil {
				if !errors.Is(err, tt.errIs) {
					t.Fatalf("DecimalToBase(%s, %d) error = %v, want %v", tt.value, tt.base, err, tt.errIs)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecimalToBase(%s, %d) unexpected error: %v", tt.value, tt.base, err)
			}
			if got != tt.want {
				t.Errorf("DecimalToBase(%s, %d) = %q, want %q", tt.value, tt.base, got, tt.want)
			}
		})
	}
}

func TestDecimalToBaseZeroForAllBases(t *testing.T) {
	for base := MinBase; base <= MaxBase; base++ {
		got, err := DecimalToBase(big.NewInt(0), base)
		if err != nil {
			t.Fatalf("base %d: %v", base, err)
		}
		if got != "0" {
			t.Errorf("base %d: zero rendered as %q", base, got)
		}
	}
}

func TestDecimalToBaseBigValue(t *testing.T) {
	// 2^128 - 1 exceeds any machine word; the conversion must not lose
	// precision.
	v := new(big.Int).Lsh(big.NewInt(1), 128)
	v.Sub(v, big.NewInt(1))

	got, err := DecimalToBase(v, 16)
	if err != nil {
		t.Fatal(err)
	}
	want := "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	back, err := BaseToDecimal(got, 16)
	if err != nil {
		t.Fatal(err)
	}
	if back.Cmp(v) != 0 {
		t.Errorf("round trip: got %s, want %s", back, v)
	}
}

func TestConvertBase(t *testing.T) {
	tests := []struct {
		number     string
		sourceBase int
		targetBase int
		want       string
	}{
		{"-1A", 16, 10, "-26"},
		{"FF", 16, 2, "11111111"},
		{"1010", 2, 16, "A"},
		{"0b1010", 2, 10, "10"},
		{"777", 8, 36, "E7"},
		{"z", 36, 10, "35"},
	}

	for _, tt := range tests {
		got, err := ConvertBase(tt.number, tt.sourceBase, tt.targetBase)
		if err != nil {
			t.Errorf("ConvertBase(%q, %d, %d) unexpected error: %v",
				tt.number, tt.sourceBase, tt.targetBase, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ConvertBase(%q, %d, %d) = %q, want %q",
				tt.number, tt.sourceBase, tt.targetBase, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	// Samples cover zero, small values, values near base boundaries, and
	// negatives; BaseToDecimal(DecimalToBase(v, b), b) == v must hold
	// for every base.
	values := []int64{0, 1, 2, 7, 10, 35, 36, 255, 256, 511, 999999, -1, -26, -999983}

	for base := MinBase; base <= MaxBase; base++ {
		for _, v := range values {
			want := big.NewInt(v)
			s, err := DecimalToBase(want, base)
			if err != nil {
				t.Fatalf("DecimalToBase(%d, %d): %v", v, base, err)
			}
			got, err := BaseToDecimal(s, base)
			if err != nil {
				t.Fatalf("BaseToDecimal(%q, %d): %v", s, base, err)
			}
			if got.Cmp(want) != 0 {
				t.Errorf("round trip %d via base %d: got %s (rendered %q)", v, base, got, s)
			}
		}
	}
}

func TestRoundTripDense(t *testing.T) {
	if testing.Short() {
		t.Skip("dense round trip is slow")
	}

	for base := MinBase; base <= MaxBase; base++ {
		for v := int64(0); v < 2000; v++ {
			want := big.NewInt(v)
			s, err := DecimalToBase(want, base)
			if err != nil {
				t.Fatal(err)
			}
			got, err := BaseToDecimal(s, base)
			if err != nil {
				t.Fatal(err)
			}
			if got.Cmp(want) != 0 {
				t.Fatalf("round trip %d via base %d: got %s", v, base, got)
			}
		}
	}
}

func TestDetectBase(t *testing.T) {
	tests := []struct {
		number string
		want   int
	}{
		{"0x1F", 16},
		{"0X1F", 16},
		{"0b101", 2},
		{"0B101", 2},
		{"0o17", 8},
		{"0O17", 8},
		{"-0xFF", 16},
		{"+0b11", 2},
		{"123", 10},
		{"0", 10},
		{"01", 10},
		// The heuristic is prefix-only: hex digits without a prefix
		// still detect as 10.
		{"FF", 10},
		{"", 10},
	}

	for _, tt := range tests {
		if got := DetectBase(tt.number); got != tt.want {
			t.Errorf("DetectBase(%q) = %d, want %d", tt.number, got, tt.want)
		}
	}
}
