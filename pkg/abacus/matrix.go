// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package abacus

import "fmt"

// Matrix is a dense row-major matrix of Abacus values sharing one
// base and precision. It backs numeric consumers that exchange data
// as float64 slices but accumulate in exact arithmetic.
type Matrix struct {
	rows      int
	cols      int
	base      uint32
	precision int
	cells     []*Abacus
}

// NewMatrix allocates a rows×cols matrix of zeros.
func NewMatrix(rows, cols int, base uint32, precision int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, &DomainError{Op: "NewMatrix", Reason: "dimensions must be positive"}
	}
	if precision < 0 {
		return nil, &DomainError{Op: "NewMatrix", Reason: "negative precision"}
	}
	if err := checkBase(base); err != nil {
		return nil, err
	}
	m := &Matrix{rows: rows, cols: cols, base: base, precision: precision}
	m.cells = make([]*Abacus, rows*cols)
	for i := range m.cells {
		z, err := New(base)
		if err != nil {
			return nil, err
		}
		if m.cells[i], err = z.WithPrecision(precision); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// At returns the cell at (r, c). The returned value is owned by the
// matrix; callers needing an independent value must Copy it.
func (m *Matrix) At(r, c int) (*Abacus, error) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return nil, &DomainError{Op: "At", Reason: fmt.Sprintf("index (%d, %d) out of range", r, c)}
	}
	return m.cells[r*m.cols+c], nil
}

// Set stores a deep copy of v at (r, c), rescaled to the matrix
// precision.
func (m *Matrix) Set(r, c int, v *Abacus) error {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return &DomainError{Op: "Set", Reason: fmt.Sprintf("index (%d, %d) out of range", r, c)}
	}
	if v.Base() != m.base {
		return &BaseMismatchError{Left: m.base, Right: v.Base()}
	}
	cell, err := v.WithPrecision(m.precision)
	if err != nil {
		return err
	}
	m.cells[r*m.cols+c] = cell
	return nil
}

// FromFloat64s fills the matrix row-major from vals. The slice length
// must equal rows·cols; each value is converted at the matrix
// precision (lossy past what a float64 carries).
func (m *Matrix) FromFloat64s(vals []float64) error {
	if len(vals) != len(m.cells) {
		return &DomainError{Op: "FromFloat64s", Reason: fmt.Sprintf("need %d values, got %d", len(m.cells), len(vals))}
	}
	converted := make([]*Abacus, len(vals))
	for i, f := range vals {
		a, err := FromFloat64(m.base, f, m.precision)
		if err != nil {
			return err
		}
		converted[i] = a
	}
	copy(m.cells, converted)
	return nil
}

// ToFloat64s writes the matrix row-major into out, which must have
// length rows·cols.
func (m *Matrix) ToFloat64s(out []float64) error {
	if len(out) != len(m.cells) {
		return &DomainError{Op: "ToFloat64s", Reason: fmt.Sprintf("need %d slots, got %d", len(m.cells), len(out))}
	}
	for i, c := range m.cells {
		out[i] = c.ToFloat64()
	}
	return nil
}

// Add returns m + n elementwise.
func (m *Matrix) Add(n *Matrix) (*Matrix, error) {
	return m.zip(n, "Add", func(a, b *Abacus) (*Abacus, error) { return a.Add(b) })
}

// Sub returns m - n elementwise.
func (m *Matrix) Sub(n *Matrix) (*Matrix, error) {
	return m.zip(n, "Sub", func(a, b *Abacus) (*Abacus, error) { return a.Sub(b) })
}

// MulElem returns the elementwise (Hadamard) product of m and n.
func (m *Matrix) MulElem(n *Matrix) (*Matrix, error) {
	return m.zip(n, "MulElem", func(a, b *Abacus) (*Abacus, error) { return a.Mul(b) })
}

// Scale returns m with every cell multiplied by v.
func (m *Matrix) Scale(v *Abacus) (*Matrix, error) {
	if v.Base() != m.base {
		return nil, &BaseMismatchError{Left: m.base, Right: v.Base()}
	}
	out, err := NewMatrix(m.rows, m.cols, m.base, m.precision)
	if err != nil {
		return nil, err
	}
	for i, c := range m.cells {
		p, err := c.Mul(v)
		if err != nil {
			return nil, err
		}
		if out.cells[i], err = p.WithPrecision(m.precision); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// zip applies op cell by cell, rescaling results to the matrix
// precision.
func (m *Matrix) zip(n *Matrix, op string, f func(a, b *Abacus) (*Abacus, error)) (*Matrix, error) {
	if m.rows != n.rows || m.cols != n.cols {
		return nil, &DomainError{Op: op, Reason: "dimension mismatch"}
	}
	if m.base != n.base {
		return nil, &BaseMismatchError{Left: m.base, Right: n.base}
	}
	out, err := NewMatrix(m.rows, m.cols, m.base, m.precision)
	if err != nil {
		return nil, err
	}
	for i := range m.cells {
		r, err := f(m.cells[i], n.cells[i])
		if err != nil {
			return nil, err
		}
		if out.cells[i], err = r.WithPrecision(m.precision); err != nil {
			return nil, err
		}
	}
	return out, nil
}
