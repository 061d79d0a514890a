// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package lattice maps nonnegative integers onto a four-ring clock
// face with the Babylonian ring sizes 12, 60, 60, and 100.
//
// An index decomposes over the cumulative ring capacities (12, 72,
// 132, 232) into a (ring, position) pair, from which an angle and a
// ring radius follow. The package is pure and stateless: every
// function is a total or checked mapping with no hidden tables.
//
// # Architecture
//
//	┌─────────────────────────────────────────────────────────────┐
//	│                     Clock Lattice                           │
//	│                                                             │
//	│   index ──▶ (ring, position) ──▶ (angle, radius)            │
//	│                    │                    │                   │
//	│                    ▼                    ▼                   │
//	│            quadrant folding     stereographic sphere        │
//	│            (polarity track)       projection                │
//	│                                                             │
//	│   number ──▶ (ring, position, magnitude)  [reverse lookup]  │
//	└─────────────────────────────────────────────────────────────┘
//
// Quadrants follow the clock convention of the candidate formula:
// counting from the 3 o'clock axis, Q1 spans [0, π/2), Q4 spans
// [π/2, π), Q3 spans [π, 3π/2), and Q2 spans [3π/2, 2π).
//
// # Thread Safety
//
// All functions are pure; Position values are immutable and freely
// copyable across goroutines.
package lattice
