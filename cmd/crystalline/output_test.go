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
	"bytes"
	"encoding/json"
	"testing"
	"time"
)

// TestPrimeResultJSON tests that PrimeResult serializes correctly.
func TestPrimeResultJSON(t *testing.T) {
	result := PrimeResult{
		Input:  97,
		Prime:  97,
		Index:  25,
		Result: true,
	}

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("Failed to marshal PrimeResult: %v", err)
	}

	var decoded PrimeResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal PrimeResult: %v", err)
	}

	if decoded.Prime != result.Prime {
		t.Errorf("Prime = %d, want %d", decoded.Prime, result.Prime)
	}
	if decoded.Index != result.Index {
		t.Errorf("Index = %d, want %d", decoded.Index, result.Index)
	}
	if decoded.Result != result.Result {
		t.Errorf("Result = %v, want %v", decoded.Result, result.Result)
	}
}

// TestFactorResultJSON tests that FactorResult serializes correctly.
func TestFactorResultJSON(t *testing.T) {
	result := FactorResult{
		Input: 360,
		Factors: []FactorTerm{
			{Prime: 2, Exponent: 3},
			{Prime: 3, Exponent: 2},
			{Prime: 5, Exponent: 1},
		},
		Prime: false,
	}

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("Failed to marshal FactorResult: %v", err)
	}

	var decoded FactorResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal FactorResult: %v", err)
	}

	if len(decoded.Factors) != len(result.Factors) {
		t.Fatalf("Factors len = %d, want %d", len(decoded.Factors), len(result.Factors))
	}
	if decoded.Factors[0].Prime != 2 || decoded.Factors[0].Exponent != 3 {
		t.Errorf("Factors[0] = %+v, want 2^3", decoded.Factors[0])
	}
}

// TestCacheStatsResultJSON tests that CacheStatsResult serializes correctly.
func TestCacheStatsResultJSON(t *testing.T) {
	result := CacheStatsResult{
		Size:        1000,
		MaxPrime:    7919,
		MaxIndex:    1000,
		EncodedSize: 19013,
		Frozen:      true,
	}

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("Failed to marshal CacheStatsResult: %v", err)
	}

	var decoded CacheStatsResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal CacheStatsResult: %v", err)
	}

	if decoded.MaxPrime != result.MaxPrime {
		t.Errorf("MaxPrime = %d, want %d", decoded.MaxPrime, result.MaxPrime)
	}
	if decoded.Frozen != result.Frozen {
		t.Errorf("Frozen = %v, want %v", decoded.Frozen, result.Frozen)
	}
}

// TestCommandResultJSON tests that CommandResult serializes correctly.
func TestCommandResultJSON(t *testing.T) {
	result := CommandResult{
		APIVersion: "1.0",
		Command:    "prime nth",
		Timestamp:  time.Now(),
		DurationMs: 100,
		Success:    true,
		Data:       map[string]string{"key": "value"},
	}

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("Failed to marshal CommandResult: %v", err)
	}

	var decoded CommandResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal CommandResult: %v", err)
	}

	if decoded.APIVersion != result.APIVersion {
		t.Errorf("APIVersion = %s, want %s", decoded.APIVersion, result.APIVersion)
	}
	if decoded.Success != result.Success {
		t.Errorf("Success = %v, want %v", decoded.Success, result.Success)
	}
}

// TestOutputResult_Success tests OutputResult with no error and no findings.
func TestOutputResult_Success(t *testing.T) {
	cfg := OutputConfig{JSON: false, Quiet: true}
	start := time.Now()
	data := map[string]string{"test": "value"}

	exitCode := OutputResult(cfg, "test", start, data, false, nil)

	if exitCode != CLIExitSuccess {
		t.Errorf("Exit code = %d, want %d", exitCode, CLIExitSuccess)
	}
}

// TestOutputResult_Findings tests OutputResult with findings.
func TestOutputResult_Findings(t *testing.T) {
	cfg := OutputConfig{JSON: false, Quiet: true}
	start := time.Now()
	data := map[string]string{"test": "value"}

	exitCode := OutputResult(cfg, "test", start, data, true, nil)

	if exitCode != CLIExitFindings {
		t.Errorf("Exit code = %d, want %d", exitCode, CLIExitFindings)
	}
}

// TestOutputResult_Error tests OutputResult with error.
func TestOutputResult_Error(t *testing.T) {
	cfg := OutputConfig{JSON: false, Quiet: true}
	start := time.Now()

	exitCode := OutputResult(cfg, "test", start, nil, false, bytes.ErrTooLarge)

	if exitCode != CLIExitError {
		t.Errorf("Exit code = %d, want %d", exitCode, CLIExitError)
	}
}

// TestExitCodeConstants tests exit code constant values.
func TestExitCodeConstants(t *testing.T) {
	if CLIExitSuccess != 0 {
		t.Errorf("CLIExitSuccess = %d, want 0", CLIExitSuccess)
	}
	if CLIExitFindings != 1 {
		t.Errorf("CLIExitFindings = %d, want 1", CLIExitFindings)
	}
	if CLIExitError != 2 {
		t.Errorf("CLIExitError = %d, want 2", CLIExitError)
	}
}
