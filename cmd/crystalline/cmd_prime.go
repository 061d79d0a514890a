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
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/crystalline/pkg/prime"
	"github.com/AleutianAI/crystalline/pkg/rainbow"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	primeCountFrom uint64 // Lower bound for prime count (inclusive)
	primeNoCache   bool   // Skip the rainbow snapshot even when present
)

func init() {
	primeCountCmd.Flags().Uint64Var(&primeCountFrom, "from", 0,
		"Count primes in [from, n) instead of [2, n)")
	primeCmd.PersistentFlags().BoolVar(&primeNoCache, "no-cache", false,
		"Ignore the rainbow snapshot and compute from scratch")
}

// =============================================================================
// SERVICE CONSTRUCTION
// =============================================================================

// newPrimeService builds the prime service, warming it from the
// rainbow snapshot when one exists. A missing or unreadable snapshot
// is not an error; the service just starts cold.
func newPrimeService(cmd *cobra.Command) *prime.Service {
	opts := []prime.Option{prime.WithLogger(appLogger)}
	if !primeNoCache {
		if table, err := loadSnapshotTable(cmd); err == nil {
			opts = append(opts, prime.WithCache(table))
			appLogger.Debug("prime service warmed from snapshot",
				"primes", table.Size(), "max_prime", table.MaxPrime())
		} else if !errors.Is(err, rainbow.ErrNotFound) {
			appLogger.Warn("snapshot unavailable, starting cold", "error", err)
		}
	}
	return prime.NewService(opts...)
}

// parseUintArg parses a decimal command argument.
func parseUintArg(arg string) (uint64, error) {
	n, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not an unsigned integer", arg)
	}
	return n, nil
}

// =============================================================================
// COMMAND IMPLEMENTATIONS
// =============================================================================

func runPrimeNth(cmd *cobra.Command, args []string) {
	start := time.Now()
	cfg := outputCfg()

	n, err := parseUintArg(args[0])
	if err != nil {
		os.Exit(OutputResult(cfg, "prime nth", start, nil, false, err))
	}

	svc := newPrimeService(cmd)
	p, err := svc.NthPrime(cmd.Context(), n)
	if err != nil {
		os.Exit(OutputResult(cfg, "prime nth", start, nil, false, err))
	}

	if !cfg.JSON && !cfg.Quiet {
		renderField(fmt.Sprintf("prime(%d)", n), "%d", p)
	}
	os.Exit(OutputResult(cfg, "prime nth", start,
		PrimeResult{Input: n, Prime: p, Index: n, Result: true}, false, nil))
}

func runPrimeTest(cmd *cobra.Command, args []string) {
	start := time.Now()
	cfg := outputCfg()

	n, err := parseUintArg(args[0])
	if err != nil {
		os.Exit(OutputResult(cfg, "prime test", start, nil, false, err))
	}

	svc := newPrimeService(cmd)
	isPrime, err := svc.IsPrime(cmd.Context(), n)
	if err != nil {
		os.Exit(OutputResult(cfg, "prime test", start, nil, false, err))
	}

	if !cfg.JSON && !cfg.Quiet {
		if isPrime {
			renderVerdict(true, fmt.Sprintf("%d is prime", n))
		} else {
			renderVerdict(false, fmt.Sprintf("%d is composite", n))
		}
	}
	// Composite input exits 1 so shell scripts can branch on it.
	os.Exit(OutputResult(cfg, "prime test", start,
		PrimeResult{Input: n, Result: isPrime}, !isPrime, nil))
}

func runPrimeNext(cmd *cobra.Command, args []string) {
	start := time.Now()
	cfg := outputCfg()

	n, err := parseUintArg(args[0])
	if err != nil {
		os.Exit(OutputResult(cfg, "prime next", start, nil, false, err))
	}

	svc := newPrimeService(cmd)
	p, err := svc.NextPrime(cmd.Context(), n)
	if err != nil {
		os.Exit(OutputResult(cfg, "prime next", start, nil, false, err))
	}

	if !cfg.JSON && !cfg.Quiet {
		renderField("next prime", "%d", p)
		renderField("gap", "%d", p-n)
	}
	os.Exit(OutputResult(cfg, "prime next", start,
		PrimeResult{Input: n, Prime: p, Gap: p - n, Result: true}, false, nil))
}

func runPrimeFactor(cmd *cobra.Command, args []string) {
	start := time.Now()
	cfg := outputCfg()

	n, err := parseUintArg(args[0])
	if err != nil {
		os.Exit(OutputResult(cfg, "prime factor", start, nil, false, err))
	}

	svc := newPrimeService(cmd)
	factors, err := svc.Factor(cmd.Context(), n)
	if err != nil {
		os.Exit(OutputResult(cfg, "prime factor", start, nil, false, err))
	}

	result := FactorResult{
		Input: n,
		Prime: len(factors) == 1 && factors[0].Exponent == 1,
	}
	for _, f := range factors {
		result.Factors = append(result.Factors, FactorTerm{Prime: f.Prime, Exponent: f.Exponent})
	}

	if !cfg.JSON && !cfg.Quiet {
		renderField("input", "%d", n)
		for _, f := range factors {
			if f.Exponent == 1 {
				renderField("factor", "%d", f.Prime)
			} else {
				renderField("factor", "%d^%d", f.Prime, f.Exponent)
			}
		}
		if result.Prime {
			renderVerdict(true, fmt.Sprintf("%d is prime", n))
		}
	}
	os.Exit(OutputResult(cfg, "prime factor", start, result, false, nil))
}

func runPrimeCount(cmd *cobra.Command, args []string) {
	start := time.Now()
	cfg := outputCfg()

	n, err := parseUintArg(args[0])
	if err != nil {
		os.Exit(OutputResult(cfg, "prime count", start, nil, false, err))
	}

	svc := newPrimeService(cmd)
	var count uint64
	if primeCountFrom > 0 {
		if n == 0 {
			os.Exit(OutputResult(cfg, "prime count", start, nil, false,
				errors.New("upper bound must be positive")))
		}
		count, err = svc.CountRange(cmd.Context(), primeCountFrom, n-1)
	} else {
		count, err = svc.CountBelow(cmd.Context(), n)
	}
	if err != nil {
		os.Exit(OutputResult(cfg, "prime count", start, nil, false, err))
	}

	if !cfg.JSON && !cfg.Quiet {
		renderField("count", "%d", count)
	}
	os.Exit(OutputResult(cfg, "prime count", start,
		PrimeResult{Input: n, Count: count, Result: true}, false, nil))
}
