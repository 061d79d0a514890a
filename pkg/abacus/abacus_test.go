// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package abacus

import (
	"errors"
	"testing"
)

func mustFromInt64(t *testing.T, base uint32, v int64) *Abacus {
	t.Helper()
	a, err := FromInt64(base, v)
	if err != nil {
		t.Fatalf("FromInt64(%d, %d): %v", base, v, err)
	}
	return a
}

func TestNewRejectsBadBase(t *testing.T) {
	for _, base := range []uint32{0, 1} {
		if _, err := New(base); !errors.Is(err, ErrInvalidBase) {
			t.Errorf("New(%d): want ErrInvalidBase, got %v", base, err)
		}
	}
	if _, err := New(2); err != nil {
		t.Errorf("New(2): %v", err)
	}
	if _, err := New(MaxBase); err != nil {
		t.Errorf("New(MaxBase): %v", err)
	}
}

func TestFromInt64Canonical(t *testing.T) {
	tests := []struct {
		name string
		base uint32
		v    int64
		sign int
		len  int
	}{
		{"zero", 10, 0, 0, 0},
		{"one", 10, 1, 1, 1},
		{"negative", 10, -42, -1, 2},
		{"base60", 60, 83, 1, 2},
		{"base2", 2, 255, 1, 8},
		{"large", 10, 1_000_000, 1, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustFromInt64(t, tt.base, tt.v)
			if a.Sign() != tt.sign {
				t.Errorf("Sign() = %d, want %d", a.Sign(), tt.sign)
			}
			if a.Len() != tt.len {
				t.Errorf("Len() = %d, want %d", a.Len(), tt.len)
			}
			got, err := a.ToInt64()
			if err != nil {
				t.Fatalf("ToInt64: %v", err)
			}
			if got != tt.v {
				t.Errorf("round trip = %d, want %d", got, tt.v)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	tests := []struct {
		base uint32
		v    int64
		want string
	}{
		{10, 12345, "12345"},
		{10, -7, "-7"},
		{10, 0, "0"},
		{60, 83, "1:23"},
		{60, 3600, "1:0:0"},
		{2, 5, "101"},
		{100, 1234, "12:34"},
	}
	for _, tt := range tests {
		a := mustFromInt64(t, tt.base, tt.v)
		if got := a.String(); got != tt.want {
			t.Errorf("String(%d, base %d) = %q, want %q", tt.v, tt.base, got, tt.want)
		}
		back, err := Parse(tt.want, tt.base)
		if err != nil {
			t.Fatalf("Parse(%q, %d): %v", tt.want, tt.base, err)
		}
		c, err := back.Cmp(a)
		if err != nil {
			t.Fatalf("Cmp: %v", err)
		}
		if c != 0 {
			t.Errorf("Parse(String()) != original for %q base %d", tt.want, tt.base)
		}
	}
}

func TestFractionalString(t *testing.T) {
	a, err := FromFloat64(10, 3.25, 2)
	if err != nil {
		t.Fatalf("FromFloat64: %v", err)
	}
	if got := a.String(); got != "3.25" {
		t.Errorf("String() = %q, want %q", got, "3.25")
	}
	back, err := Parse("3.25", 10)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if back.Precision() != 2 {
		t.Errorf("Precision() = %d, want 2", back.Precision())
	}
	c, err := back.Cmp(a)
	if err != nil || c != 0 {
		t.Errorf("Parse(String()) != original (cmp %d, err %v)", c, err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		base  uint32
	}{
		{"", 10},
		{"-", 10},
		{"12a", 10},
		{"1..2", 10},
		{"1.", 10},
		{"61:0", 60},
		{"1::2", 60},
	}
	for _, tt := range tests {
		if _, err := Parse(tt.input, tt.base); !errors.Is(err, ErrParse) {
			t.Errorf("Parse(%q, %d): want ErrParse, got %v", tt.input, tt.base, err)
		}
	}
}

func TestCmp(t *testing.T) {
	tests := []struct {
		a, b int64
		want int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{0, 1, -1},
		{-5, 3, -1},
		{-5, -7, 1},
		{100, 100, 0},
	}
	for _, tt := range tests {
		a := mustFromInt64(t, 10, tt.a)
		b := mustFromInt64(t, 10, tt.b)
		got, err := a.Cmp(b)
		if err != nil {
			t.Fatalf("Cmp(%d, %d): %v", tt.a, tt.b, err)
		}
		if got != tt.want {
			t.Errorf("Cmp(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCmpBaseMismatch(t *testing.T) {
	a := mustFromInt64(t, 10, 1)
	b := mustFromInt64(t, 60, 1)
	if _, err := a.Cmp(b); !errors.Is(err, ErrBaseMismatch) {
		t.Errorf("want ErrBaseMismatch, got %v", err)
	}
}

func TestCmpMixedPrecision(t *testing.T) {
	// 3 and 3.00 are numerically equal.
	a := mustFromInt64(t, 10, 3)
	b, err := FromFloat64(10, 3.0, 2)
	if err != nil {
		t.Fatalf("FromFloat64: %v", err)
	}
	c, err := a.Cmp(b)
	if err != nil {
		t.Fatalf("Cmp: %v", err)
	}
	if c != 0 {
		t.Errorf("Cmp(3, 3.00) = %d, want 0", c)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	a := mustFromInt64(t, 10, 123)
	b := a.Copy()
	b.digits[0] = 9
	if a.digits[0] != 3 {
		t.Error("Copy shares digit storage with the original")
	}
}

func TestWithPrecision(t *testing.T) {
	a := mustFromInt64(t, 10, 7)
	up, err := a.WithPrecision(3)
	if err != nil {
		t.Fatalf("WithPrecision: %v", err)
	}
	if up.Precision() != 3 || up.Len() != 4 {
		t.Errorf("raise: precision %d len %d, want 3 and 4", up.Precision(), up.Len())
	}
	down, err := up.WithPrecision(0)
	if err != nil {
		t.Fatalf("WithPrecision: %v", err)
	}
	got, err := down.ToInt64()
	if err != nil || got != 7 {
		t.Errorf("lower: got %d (%v), want 7", got, err)
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		f    float64
		p    int
		want string
	}{
		{3.14159, 2, "3.14"},
		{3.145, 2, "3.15"},
		{-3.145, 2, "-3.15"},
		{9.99, 1, "10.0"},
	}
	for _, tt := range tests {
		a, err := FromFloat64(10, tt.f, 5)
		if err != nil {
			t.Fatalf("FromFloat64(%v): %v", tt.f, err)
		}
		r, err := a.Round(tt.p)
		if err != nil {
			t.Fatalf("Round(%v, %d): %v", tt.f, tt.p, err)
		}
		if got := r.String(); got != tt.want {
			t.Errorf("Round(%v, %d) = %q, want %q", tt.f, tt.p, got, tt.want)
		}
	}
}

func TestToUint64Negative(t *testing.T) {
	a := mustFromInt64(t, 10, -1)
	if _, err := a.ToUint64(); !errors.Is(err, ErrDomain) {
		t.Errorf("want ErrDomain, got %v", err)
	}
}

func TestToInt64Overflow(t *testing.T) {
	big := mustFromInt64(t, 10, 1)
	var err error
	// 10^30 does not fit in an int64.
	big, err = big.ShiftLeft(30)
	if err != nil {
		t.Fatalf("ShiftLeft: %v", err)
	}
	if _, err := big.ToInt64(); !errors.Is(err, ErrOverflow) {
		t.Errorf("want ErrOverflow, got %v", err)
	}
}
