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
	"time"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/crystalline/cmd/crystalline/config"
	"github.com/AleutianAI/crystalline/pkg/abacus"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	abacusBase      uint32 // Radix for all operands (0 = config default_base)
	abacusPrecision int    // Fractional digits (-1 = config precision)
)

func init() {
	abacusCmd.PersistentFlags().Uint32Var(&abacusBase, "base", 0,
		"Radix for operands and result (default from config)")
	abacusCmd.PersistentFlags().IntVar(&abacusPrecision, "precision", -1,
		"Fractional digit count for sqrt (default from config)")
}

func effectiveBase() uint32 {
	if abacusBase >= 2 {
		return abacusBase
	}
	return config.Global.Engine.DefaultBase
}

func effectivePrecision() int {
	if abacusPrecision >= 0 {
		return abacusPrecision
	}
	return config.Global.Engine.Precision
}

// parseOperands parses decimal-or-`:`-separated operands in one base.
func parseOperands(base uint32, args ...string) ([]*abacus.Abacus, error) {
	out := make([]*abacus.Abacus, 0, len(args))
	for _, arg := range args {
		v, err := abacus.Parse(arg, base)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// =============================================================================
// COMMAND IMPLEMENTATIONS
// =============================================================================

func runAbacusEval(cmd *cobra.Command, args []string) {
	start := time.Now()
	cfg := outputCfg()
	base := effectiveBase()

	operands, err := parseOperands(base, args[0], args[2])
	if err != nil {
		os.Exit(OutputResult(cfg, "abacus eval", start, nil, false, err))
	}
	a, b := operands[0], operands[1]

	var result *abacus.Abacus
	switch args[1] {
	case "+":
		result, err = a.Add(b)
	case "-":
		result, err = a.Sub(b)
	case "x", "*":
		result, err = a.Mul(b)
	case "/":
		result, err = a.Div(b)
	case "%":
		result, err = a.Mod(b)
	default:
		err = fmt.Errorf("unknown operator %q (use + - x / %%)", args[1])
	}
	if err != nil {
		os.Exit(OutputResult(cfg, "abacus eval", start, nil, false, err))
	}

	if !cfg.JSON && !cfg.Quiet {
		renderField("result", "%s", result.String())
	}
	os.Exit(OutputResult(cfg, "abacus eval", start,
		AbacusResult{Base: base, Value: result.String()}, false, nil))
}

func runAbacusModExp(cmd *cobra.Command, args []string) {
	start := time.Now()
	cfg := outputCfg()
	base := effectiveBase()

	operands, err := parseOperands(base, args...)
	if err != nil {
		os.Exit(OutputResult(cfg, "abacus modexp", start, nil, false, err))
	}

	result, err := abacus.ModExp(operands[0], operands[1], operands[2])
	if err != nil {
		os.Exit(OutputResult(cfg, "abacus modexp", start, nil, false, err))
	}

	if !cfg.JSON && !cfg.Quiet {
		renderField("result", "%s", result.String())
	}
	os.Exit(OutputResult(cfg, "abacus modexp", start,
		AbacusResult{Base: base, Value: result.String()}, false, nil))
}

func runAbacusSqrt(cmd *cobra.Command, args []string) {
	start := time.Now()
	cfg := outputCfg()
	base := effectiveBase()
	precision := effectivePrecision()

	operands, err := parseOperands(base, args[0])
	if err != nil {
		os.Exit(OutputResult(cfg, "abacus sqrt", start, nil, false, err))
	}

	result, err := operands[0].Sqrt(precision)
	if err != nil {
		os.Exit(OutputResult(cfg, "abacus sqrt", start, nil, false, err))
	}

	if !cfg.JSON && !cfg.Quiet {
		renderField("sqrt", "%s", result.String())
	}
	os.Exit(OutputResult(cfg, "abacus sqrt", start,
		AbacusResult{Base: base, Precision: precision, Value: result.String()}, false, nil))
}
