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
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Exit codes for CLI commands.
const (
	CLIExitSuccess  = 0 // Operation completed successfully
	CLIExitFindings = 1 // Operation completed with negative findings (e.g. composite)
	CLIExitError    = 2 // Operation failed
)

// OutputConfig controls output behavior.
type OutputConfig struct {
	JSON    bool // Output as JSON
	Compact bool // No indentation
	Quiet   bool // No output, exit code only
}

// CommandResult wraps command output with metadata.
type CommandResult struct {
	APIVersion string      `json:"api_version"`
	Command    string      `json:"command"`
	Timestamp  time.Time   `json:"timestamp"`
	DurationMs int64       `json:"duration_ms"`
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// OutputJSON writes structured data as JSON to stdout.
//
// # Inputs
//
//   - data: The data to encode. Must be JSON-serializable.
//   - compact: If true, output without indentation.
//
// # Outputs
//
//   - error: Non-nil if encoding fails.
func OutputJSON(data interface{}, compact bool) error {
	encoder := json.NewEncoder(os.Stdout)
	if !compact {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(data)
}

// OutputError writes an error in the appropriate format.
//
// # Inputs
//
//   - jsonMode: If true, output as JSON to stdout.
//   - msg: Human-readable error message.
//   - err: The underlying error.
func OutputError(jsonMode bool, msg string, err error) {
	if jsonMode {
		result := CommandResult{
			APIVersion: "1.0",
			Timestamp:  time.Now(),
			Success:    false,
			Error:      fmt.Sprintf("%s: %v", msg, err),
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		encoder.Encode(result)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
	}
}

// OutputResult handles all output scenarios with proper formatting.
//
// # Inputs
//
//   - cfg: Output configuration.
//   - cmd: Command name for metadata.
//   - start: Start time for duration calculation.
//   - data: The data to output.
//   - hasFindings: Whether the operation had a negative result (for exit code).
//   - err: Any error that occurred.
//
// # Outputs
//
//   - int: The exit code to use.
func OutputResult(cfg OutputConfig, cmd string, start time.Time, data interface{}, hasFindings bool, err error) int {
	if cfg.Quiet {
		if err != nil {
			return CLIExitError
		}
		if hasFindings {
			return CLIExitFindings
		}
		return CLIExitSuccess
	}

	if err != nil {
		OutputError(cfg.JSON, "Command failed", err)
		return CLIExitError
	}

	if cfg.JSON {
		result := CommandResult{
			APIVersion: "1.0",
			Command:    cmd,
			Timestamp:  time.Now(),
			DurationMs: time.Since(start).Milliseconds(),
			Success:    true,
			Data:       data,
		}
		if encErr := OutputJSON(result, cfg.Compact); encErr != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode JSON: %v\n", encErr)
			return CLIExitError
		}
	}

	if hasFindings {
		return CLIExitFindings
	}
	return CLIExitSuccess
}

// PrimeResult holds single-prime command output.
type PrimeResult struct {
	Input  uint64 `json:"input"`
	Prime  uint64 `json:"prime,omitempty"`
	Index  uint64 `json:"index,omitempty"`
	Gap    uint64 `json:"gap,omitempty"`
	Count  uint64 `json:"count,omitempty"`
	Result bool   `json:"result"`
}

// FactorResult holds factorization output.
type FactorResult struct {
	Input   uint64       `json:"input"`
	Factors []FactorTerm `json:"factors"`
	Prime   bool         `json:"prime"`
}

// FactorTerm is one prime power in a factorization.
type FactorTerm struct {
	Prime    uint64 `json:"prime"`
	Exponent uint32 `json:"exponent"`
}

// PositionResult holds lattice geometry output.
type PositionResult struct {
	Index    uint64  `json:"index"`
	Lap      uint64  `json:"lap"`
	Ring     int     `json:"ring"`
	Pos      int     `json:"pos"`
	Angle    float64 `json:"angle"`
	Radius   float64 `json:"radius"`
	Quadrant int     `json:"quadrant"`
	Polarity int     `json:"polarity"`
}

// FoldResult holds quadrant folding output.
type FoldResult struct {
	Original       PositionResult `json:"original"`
	Folded         PositionResult `json:"folded"`
	PolarityChange int            `json:"polarity_change"`
}

// SphereResult holds stereographic projection output.
type SphereResult struct {
	Ring int     `json:"ring"`
	Pos  int     `json:"pos"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
}

// CacheStatsResult holds rainbow cache statistics.
type CacheStatsResult struct {
	Size        int    `json:"size"`
	MaxPrime    uint64 `json:"max_prime"`
	MaxIndex    uint64 `json:"max_index"`
	EncodedSize int    `json:"encoded_bytes"`
	Frozen      bool   `json:"frozen"`
}

// CacheLookupResult holds one rainbow cache entry.
type CacheLookupResult struct {
	Prime uint64 `json:"prime"`
	Index uint64 `json:"index"`
	Ring  int    `json:"ring"`
	Pos   int    `json:"pos"`
}

// AbacusResult holds big number command output.
type AbacusResult struct {
	Base      uint32 `json:"base"`
	Precision int    `json:"precision,omitempty"`
	Value     string `json:"value"`
}
