// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package lattice

import "math"

// Ring sizes, outermost first: hours, minutes, seconds, milliseconds.
var RingSizes = [4]int{12, 60, 60, 100}

// ringOffsets are the cumulative capacities below each ring.
var ringOffsets = [4]int{0, 12, 72, 132}

const (
	// NumRings is the ring count of the clock face.
	NumRings = 4

	// PositionsPerLap is the number of addressable (ring, position)
	// pairs in one lap: 12 + 60 + 60 + 100.
	PositionsPerLap = 232

	// LapVolume is the full clock resolution, the product of the
	// ring sizes. Trajectory math that treats the lattice as nested
	// dials uses this; the index mapping does not.
	LapVolume = 12 * 60 * 60 * 100
)

// Position is a point on the clock face. The angle and radius are
// derived from ring and position; quadrant and polarity serve the
// folding helpers. Values are immutable and freely copyable.
type Position struct {
	Ring     int
	Pos      int
	Angle    float64
	Radius   float64
	Quadrant int
	Polarity int
}

// New builds a Position with derived geometry.
//
// # Inputs
//
//   - ring: Ring number, 0 (outermost) to 3.
//   - pos: Position on the ring, in [0, RingSizes[ring]).
//
// # Outputs
//
//   - Position: With angle, radius, quadrant set; polarity +1.
//   - error: ErrInvalidPosition when out of range.
func New(ring, pos int) (Position, error) {
	if ring < 0 || ring >= NumRings || pos < 0 || pos >= RingSizes[ring] {
		return Position{}, &PositionError{Ring: ring, Pos: pos}
	}
	angle := Angle(ring, pos)
	return Position{
		Ring:     ring,
		Pos:      pos,
		Angle:    angle,
		Radius:   Radius(ring),
		Quadrant: QuadrantForAngle(angle),
		Polarity: 1,
	}, nil
}

// Angle returns 2π·pos/ring_size, measured counterclockwise from the
// 3 o'clock axis. Inputs are not range checked; New validates.
func Angle(ring, pos int) float64 {
	return 2 * math.Pi * float64(pos) / float64(RingSizes[ring])
}

// Radius returns the ring radius: 1 − 0.25·ring, so ring 0 sits on
// the unit circle and ring 3 at 0.25. The schedule is fixed and
// strictly decreasing inward.
func Radius(ring int) float64 {
	return 1.0 - 0.25*float64(ring)
}

// IndexToPosition maps a nonnegative index onto the lattice. Indexes
// beyond one lap wrap: the pair repeats every PositionsPerLap.
func IndexToPosition(i uint64) Position {
	j := int(i % PositionsPerLap)
	for ring := NumRings - 1; ring >= 0; ring-- {
		if j >= ringOffsets[ring] {
			p, _ := New(ring, j-ringOffsets[ring])
			return p
		}
	}
	p, _ := New(0, j) // unreachable, j >= 0 always matches ring 0
	return p
}

// Lap returns how many full laps precede index i.
func Lap(i uint64) uint64 {
	return i / PositionsPerLap
}

// PositionToIndex returns the minimum index that maps to p, so
// IndexToPosition(PositionToIndex(p)) == p for every valid pair.
func PositionToIndex(p Position) (uint64, error) {
	if p.Ring < 0 || p.Ring >= NumRings || p.Pos < 0 || p.Pos >= RingSizes[p.Ring] {
		return 0, &PositionError{Ring: p.Ring, Pos: p.Pos}
	}
	return uint64(ringOffsets[p.Ring] + p.Pos), nil
}

// AngularDistance returns the shorter arc between the two angles, in
// radians, ignoring radius.
func AngularDistance(a, b Position) float64 {
	d := math.Mod(math.Abs(a.Angle-b.Angle), 2*math.Pi)
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}

// Valid reports whether p names an addressable lattice point with
// geometry consistent with its ring and position.
func Valid(p Position) bool {
	if p.Ring < 0 || p.Ring >= NumRings || p.Pos < 0 || p.Pos >= RingSizes[p.Ring] {
		return false
	}
	const tol = 0.01
	return math.Abs(p.Angle-Angle(p.Ring, p.Pos)) <= tol &&
		math.Abs(p.Radius-Radius(p.Ring)) <= tol
}
