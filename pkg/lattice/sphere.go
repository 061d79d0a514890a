// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package lattice

import "math"

// SphereCoord is a point on the unit sphere.
type SphereCoord struct {
	X float64
	Y float64
	Z float64
}

// ToSphere projects the clock point onto the unit sphere by
// stereographic projection from the north pole:
//
//	(x, y) ↦ (2x/d, 2y/d, (x²+y²−1)/d),  d = 1 + x² + y²
//
// where (x, y) is the planar point radius·(cos angle, sin angle).
// Every clock radius in (0, 1] lands strictly below the north pole,
// so the projection and its inverse are stable on the whole lattice.
func ToSphere(p Position) SphereCoord {
	x := p.Radius * math.Cos(p.Angle)
	y := p.Radius * math.Sin(p.Angle)
	d := 1.0 + x*x + y*y
	return SphereCoord{
		X: 2 * x / d,
		Y: 2 * y / d,
		Z: (x*x + y*y - 1.0) / d,
	}
}

// ToSphereBatch projects a slice of positions in one pass.
func ToSphereBatch(ps []Position) []SphereCoord {
	out := make([]SphereCoord, len(ps))
	for i, p := range ps {
		out[i] = ToSphere(p)
	}
	return out
}

// FromSphere inverts the projection and snaps the planar point back
// to the nearest lattice position.
//
// The north pole (z = 1) is the projection's point at infinity and
// fails with ErrDomain, as do planar radii outside the ring band.
func FromSphere(s SphereCoord) (Position, error) {
	if math.Abs(s.Z-1.0) < 1e-10 {
		return Position{}, &DomainError{Op: "FromSphere", Reason: "north pole has no planar image"}
	}
	d := 1.0 - s.Z
	x := s.X / d
	y := s.Y / d

	radius := math.Sqrt(x*x + y*y)
	angle := math.Atan2(y, x)
	if angle < 0 {
		angle += 2 * math.Pi
	}

	// Nearest ring on the 1 − 0.25·ring schedule.
	ring := int(math.Round((1.0 - radius) / 0.25))
	if ring < 0 || ring >= NumRings {
		return Position{}, &DomainError{Op: "FromSphere", Reason: "radius outside the ring band"}
	}
	size := RingSizes[ring]
	pos := int(math.Round(angle*float64(size)/(2*math.Pi))) % size
	return New(ring, pos)
}

// SphereDistance returns the chord length between the projections of
// two clock points. Zero iff the points coincide on the sphere.
func SphereDistance(a, b Position) float64 {
	sa, sb := ToSphere(a), ToSphere(b)
	dx := sa.X - sb.X
	dy := sa.Y - sb.Y
	dz := sa.Z - sb.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
