// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package abacus implements mixed-radix arbitrary-precision arithmetic.
//
// An Abacus value stores a signed number as a least-significant-first
// digit sequence in a caller-chosen base between 2 and 2^31, with an
// optional fixed count of fractional digits (a scaled integer). The
// same representation serves binary, decimal, Babylonian base-60, and
// power-of-two radices without conversion.
//
// # Architecture
//
//	┌─────────────────────────────────────────────────────────────┐
//	│                      Abacus Value                           │
//	│  ┌──────────┐  ┌───────────────────────┐  ┌─────────────┐  │
//	│  │ sign     │  │ digits (LSD first)    │  │ precision   │  │
//	│  │ -1/0/+1  │  │ d[i] < base           │  │ fractional  │  │
//	│  └──────────┘  └───────────────────────┘  └─────────────┘  │
//	│                                                             │
//	│  value = sign · Σ d[i] · base^(i − precision)               │
//	└─────────────────────────────────────────────────────────────┘
//
// Layered on the digit kernels:
//
//   - arith.go: schoolbook add/sub/mul, digit shifts
//   - divmod.go: long division with Euclidean remainder
//   - modular.go: modular add/mul, binary exponentiation, inverses
//   - roots.go: Newton integer square and k-th roots
//   - transcendental.go: sin/cos/exp/log to a digit precision
//   - sparse.go: run-length sparse digit form
//
// # Canonical Form
//
// Every operation returns canonical values: the most significant digit
// is nonzero, zero is represented as sign 0 with no digits, and
// negative zero cannot be constructed.
//
// # Thread Safety
//
// Abacus values are not synchronized. Operations never mutate their
// operands and return freshly allocated results, so distinct values
// may be used from different goroutines; a single value must not be
// mutated concurrently.
package abacus
