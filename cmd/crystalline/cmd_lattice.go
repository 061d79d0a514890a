// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/crystalline/pkg/lattice"
)

// =============================================================================
// ARGUMENT PARSING
// =============================================================================

// parsePositionArgs builds a lattice position from ring and pos args.
func parsePositionArgs(args []string) (lattice.Position, error) {
	ring, err := strconv.Atoi(args[0])
	if err != nil {
		return lattice.Position{}, fmt.Errorf("%q is not a ring number", args[0])
	}
	pos, err := strconv.Atoi(args[1])
	if err != nil {
		return lattice.Position{}, fmt.Errorf("%q is not a position", args[1])
	}
	return lattice.New(ring, pos)
}

func positionResult(index uint64, p lattice.Position) PositionResult {
	return PositionResult{
		Index:    index,
		Lap:      lattice.Lap(index),
		Ring:     p.Ring,
		Pos:      p.Pos,
		Angle:    p.Angle,
		Radius:   p.Radius,
		Quadrant: p.Quadrant,
		Polarity: p.Polarity,
	}
}

func renderPosition(p lattice.Position) {
	renderField("position", "ring %d, pos %d", p.Ring, p.Pos)
	renderField("angle", "%.6f rad", p.Angle)
	renderField("radius", "%.4f", p.Radius)
	renderField("quadrant", "Q%d", p.Quadrant)
	renderField("polarity", "%+d", p.Polarity)
}

// =============================================================================
// COMMAND IMPLEMENTATIONS
// =============================================================================

func runLatticeMap(cmd *cobra.Command, args []string) {
	start := time.Now()
	cfg := outputCfg()

	index, err := parseUintArg(args[0])
	if err != nil {
		os.Exit(OutputResult(cfg, "lattice map", start, nil, false, err))
	}

	p := lattice.IndexToPosition(index)
	if !cfg.JSON && !cfg.Quiet {
		renderTitle(fmt.Sprintf("index %d (lap %d)", index, lattice.Lap(index)))
		renderPosition(p)
	}
	os.Exit(OutputResult(cfg, "lattice map", start, positionResult(index, p), false, nil))
}

func runLatticeFold(cmd *cobra.Command, args []string) {
	start := time.Now()
	cfg := outputCfg()

	p, err := parsePositionArgs(args)
	if err != nil {
		os.Exit(OutputResult(cfg, "lattice fold", start, nil, false, err))
	}

	folded, change, err := lattice.FoldToQ1(p)
	if err != nil {
		os.Exit(OutputResult(cfg, "lattice fold", start, nil, false, err))
	}

	index, _ := lattice.PositionToIndex(p)
	result := FoldResult{
		Original:       positionResult(index, p),
		Folded:         positionResult(index, folded),
		PolarityChange: change,
	}
	if !cfg.JSON && !cfg.Quiet {
		renderTitle("original")
		renderPosition(p)
		renderTitle("folded to Q1")
		renderPosition(folded)
		renderField("polarity", "change %+d", change)
	}
	os.Exit(OutputResult(cfg, "lattice fold", start, result, false, nil))
}

func runLatticeSphere(cmd *cobra.Command, args []string) {
	start := time.Now()
	cfg := outputCfg()

	p, err := parsePositionArgs(args)
	if err != nil {
		os.Exit(OutputResult(cfg, "lattice sphere", start, nil, false, err))
	}

	s := lattice.ToSphere(p)
	result := SphereResult{Ring: p.Ring, Pos: p.Pos, X: s.X, Y: s.Y, Z: s.Z}
	if !cfg.JSON && !cfg.Quiet {
		renderField("position", "ring %d, pos %d", p.Ring, p.Pos)
		renderField("sphere", "(%.6f, %.6f, %.6f)", s.X, s.Y, s.Z)
	}
	os.Exit(OutputResult(cfg, "lattice sphere", start, result, false, nil))
}
