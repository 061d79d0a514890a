// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package lattice

import "math"

// Quadrant folding. Every ring size is divisible by four, so a
// quarter turn is an exact position shift and folding stays on the
// lattice. Folding rotates into Q1; a 180° rotation (Q3) flips
// polarity, quarter turns do not.

// QuadrantForAngle returns the clock-convention quadrant for an
// angle: Q1 [0, π/2), Q4 [π/2, π), Q3 [π, 3π/2), Q2 [3π/2, 2π).
func QuadrantForAngle(angle float64) int {
	a := math.Mod(angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	switch {
	case a < math.Pi/2:
		return 1
	case a < math.Pi:
		return 4
	case a < 3*math.Pi/2:
		return 3
	default:
		return 2
	}
}

// quarterTurns maps a quadrant to the number of quarter turns that
// rotate it back to Q1.
func quarterTurns(quadrant int) int {
	switch quadrant {
	case 1:
		return 0
	case 4:
		return 1
	case 3:
		return 2
	default: // 2
		return 3
	}
}

// FoldToQ1 rotates p into the first quadrant.
//
// # Outputs
//
//   - Position: The folded point, quadrant 1, polarity updated.
//   - int: The polarity change, −1 for the 180° rotation out of Q3,
//     +1 otherwise. UnfoldFromQ1 with this value and the original
//     quadrant is the left inverse.
//   - error: ErrInvalidPosition for a malformed input.
func FoldToQ1(p Position) (Position, int, error) {
	if !Valid(p) {
		return Position{}, 0, &PositionError{Ring: p.Ring, Pos: p.Pos}
	}
	change := 1
	if p.Quadrant == 3 {
		change = -1
	}
	quarter := RingSizes[p.Ring] / 4
	pos := p.Pos - quarterTurns(p.Quadrant)*quarter
	folded, err := New(p.Ring, pos)
	if err != nil {
		return Position{}, 0, err
	}
	folded.Polarity = p.Polarity * change
	return folded, change, nil
}

// UnfoldFromQ1 rotates a first-quadrant point back into the target
// quadrant, inverting FoldToQ1.
func UnfoldFromQ1(p Position, targetQuadrant, polarityChange int) (Position, error) {
	if !Valid(p) || p.Quadrant != 1 {
		return Position{}, &PositionError{Ring: p.Ring, Pos: p.Pos}
	}
	if targetQuadrant < 1 || targetQuadrant > 4 {
		return Position{}, &DomainError{Op: "UnfoldFromQ1", Reason: "quadrant must be 1..4"}
	}
	quarter := RingSizes[p.Ring] / 4
	pos := (p.Pos + quarterTurns(targetQuadrant)*quarter) % RingSizes[p.Ring]
	unfolded, err := New(p.Ring, pos)
	if err != nil {
		return Position{}, err
	}
	unfolded.Polarity = p.Polarity * polarityChange
	return unfolded, nil
}

// PolarityOscillations counts the polarity flips between two
// positions: one for the diametral crossings Q1↔Q3 and Q2↔Q4, zero
// for neighbors and same-quadrant pairs.
func PolarityOscillations(a, b Position) int {
	qa, qb := QuadrantForAngle(a.Angle), QuadrantForAngle(b.Angle)
	if qa == qb {
		return 0
	}
	if (qa == 1 && qb == 3) || (qa == 3 && qb == 1) ||
		(qa == 2 && qb == 4) || (qa == 4 && qb == 2) {
		return 1
	}
	return 0
}
