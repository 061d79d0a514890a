// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package abacus

import (
	"strconv"
	"strings"
)

// String renders the value as sign + digits, most significant first.
//
// For bases up to 10 each digit is a single character; above 10 each
// digit is written as its decimal value and digits are separated by
// ':' (base-60 value 83 renders as "1:23"). Fractional digits follow
// a '.'; the fraction is padded to the stored precision so parsing
// recovers it. No locale dependence.
func (a *Abacus) String() string {
	var sb strings.Builder
	if a.sign < 0 {
		sb.WriteByte('-')
	}
	sep := a.base > 10

	intLen := len(a.digits) - a.precision
	if intLen <= 0 {
		sb.WriteByte('0')
	} else {
		for i := len(a.digits) - 1; i >= a.precision; i-- {
			writeDigit(&sb, a.digits[i], sep && i != len(a.digits)-1)
		}
	}
	if a.precision > 0 {
		sb.WriteByte('.')
		for i := a.precision - 1; i >= 0; i-- {
			writeDigit(&sb, a.Digit(i), sep && i != a.precision-1)
		}
	}
	return sb.String()
}

func writeDigit(sb *strings.Builder, d uint32, sep bool) {
	if sep {
		sb.WriteByte(':')
	}
	sb.WriteString(strconv.FormatUint(uint64(d), 10))
}

// Parse reads a numeral in the stated base, in the format produced by
// String.
//
// # Inputs
//
//   - s: Numeral: optional sign, digit sequence, optional '.' and
//     fraction. Digits are single characters for bases up to 10 and
//     ':'-separated decimal values above 10.
//   - base: Radix, in [2, 2^31].
//
// # Outputs
//
//   - *Abacus: Canonical value; precision equals the number of
//     fractional digits written.
//   - error: ErrParse for illegal numerals, ErrInvalidBase.
func Parse(s string, base uint32) (*Abacus, error) {
	if err := checkBase(base); err != nil {
		return nil, err
	}
	input := s
	sign := 1
	offset := 0
	if strings.HasPrefix(s, "-") {
		sign = -1
		s = s[1:]
		offset = 1
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
		offset = 1
	}
	if s == "" {
		return nil, &ParseError{Input: input, Base: base, Offset: offset, Reason: "empty numeral"}
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if strings.Contains(fracPart, ".") {
		return nil, &ParseError{Input: input, Base: base, Offset: offset, Reason: "multiple '.'"}
	}
	if hasFrac && fracPart == "" {
		return nil, &ParseError{Input: input, Base: base, Offset: offset, Reason: "empty fraction"}
	}
	intDigits, err := parseDigitRun(input, intPart, base, offset)
	if err != nil {
		return nil, err
	}
	var fracDigits []uint32
	if hasFrac {
		fracDigits, err = parseDigitRun(input, fracPart, base, offset+len(intPart)+1)
		if err != nil {
			return nil, err
		}
	}

	// Assemble LSD-first: reversed fraction, then reversed integer.
	a := &Abacus{base: base, sign: sign, precision: len(fracDigits)}
	a.digits = make([]uint32, 0, len(intDigits)+len(fracDigits))
	for i := len(fracDigits) - 1; i >= 0; i-- {
		a.digits = append(a.digits, fracDigits[i])
	}
	for i := len(intDigits) - 1; i >= 0; i-- {
		a.digits = append(a.digits, intDigits[i])
	}
	a.normalize()
	return a, nil
}

// parseDigitRun reads one MSD-first digit sequence.
func parseDigitRun(input, run string, base uint32, offset int) ([]uint32, error) {
	if run == "" {
		return nil, &ParseError{Input: input, Base: base, Offset: offset, Reason: "missing digits"}
	}
	var parts []string
	if base > 10 {
		parts = strings.Split(run, ":")
	} else {
		parts = make([]string, 0, len(run))
		for _, r := range run {
			parts = append(parts, string(r))
		}
	}
	out := make([]uint32, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			return nil, &ParseError{Input: input, Base: base, Offset: offset, Reason: "empty digit"}
		}
		v, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return nil, &ParseError{Input: input, Base: base, Offset: offset, Reason: "not a digit: " + p}
		}
		if v >= uint64(base) {
			return nil, &ParseError{Input: input, Base: base, Offset: offset, Reason: "digit " + p + " out of range for base"}
		}
		out = append(out, uint32(v))
	}
	return out, nil
}
