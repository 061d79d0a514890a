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
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	jsonOutput    bool
	compactOutput bool
	quietOutput   bool

	rootCmd = &cobra.Command{
		Use:   "crystalline",
		Short: "A cli for the Crystalline number engine, clock lattice, and prime service",
		Long: `Crystalline is a toolkit for arbitrary-precision mixed-radix
				arithmetic, the four-ring clock lattice, and deterministic
				prime computation backed by a rainbow cache.`,
	}

	// --- Prime Service ---
	primeCmd = &cobra.Command{
		Use:   "prime",
		Short: "Query the deterministic prime service",
	}
	primeNthCmd = &cobra.Command{
		Use:   "nth [n]",
		Short: "Return the n-th prime (1-based: nth 1 is 2)",
		Args:  cobra.ExactArgs(1),
		Run:   runPrimeNth, // Defined in cmd_prime.go
	}
	primeTestCmd = &cobra.Command{
		Use:   "test [n]",
		Short: "Test primality by 6k±1 trial division",
		Args:  cobra.ExactArgs(1),
		Run:   runPrimeTest, // Defined in cmd_prime.go
	}
	primeNextCmd = &cobra.Command{
		Use:   "next [n]",
		Short: "Find the smallest prime strictly above n",
		Args:  cobra.ExactArgs(1),
		Run:   runPrimeNext, // Defined in cmd_prime.go
	}
	primeFactorCmd = &cobra.Command{
		Use:   "factor [n]",
		Short: "Factor n into primes with exponents",
		Args:  cobra.ExactArgs(1),
		Run:   runPrimeFactor, // Defined in cmd_prime.go
	}
	primeCountCmd = &cobra.Command{
		Use:   "count [n]",
		Short: "Count the primes strictly below n",
		Args:  cobra.ExactArgs(1),
		Run:   runPrimeCount, // Defined in cmd_prime.go
	}

	// --- Rainbow Cache ---
	cacheCmd = &cobra.Command{
		Use:   "cache",
		Short: "Manage the rainbow cache of known primes",
	}
	cachePopulateCmd = &cobra.Command{
		Use:   "populate",
		Short: "Populate the cache with the first N primes",
		Run:   runCachePopulate, // Defined in cmd_cache.go
	}
	cacheLookupCmd = &cobra.Command{
		Use:   "lookup [prime]",
		Short: "Look up a cached prime's index and lattice position",
		Args:  cobra.MaximumNArgs(1),
		Run:   runCacheLookup, // Defined in cmd_cache.go
	}
	cacheSaveCmd = &cobra.Command{
		Use:   "save",
		Short: "Populate the cache and persist it as a snapshot",
		Run:   runCacheSave, // Defined in cmd_cache.go
	}
	cacheLoadCmd = &cobra.Command{
		Use:   "load",
		Short: "Load the snapshot and verify its invariants",
		Run:   runCacheLoad, // Defined in cmd_cache.go
	}
	cacheStatsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Show size, frontier, and encoding stats for the snapshot",
		Run:   runCacheStats, // Defined in cmd_cache.go
	}

	// --- Clock Lattice ---
	latticeCmd = &cobra.Command{
		Use:   "lattice",
		Short: "Inspect the four-ring clock lattice",
	}
	latticeMapCmd = &cobra.Command{
		Use:   "map [index]",
		Short: "Map a linear index to its ring, position, and geometry",
		Args:  cobra.ExactArgs(1),
		Run:   runLatticeMap, // Defined in cmd_lattice.go
	}
	latticeFoldCmd = &cobra.Command{
		Use:   "fold [ring] [pos]",
		Short: "Fold a position into the first quadrant",
		Args:  cobra.ExactArgs(2),
		Run:   runLatticeFold, // Defined in cmd_lattice.go
	}
	latticeSphereCmd = &cobra.Command{
		Use:   "sphere [ring] [pos]",
		Short: "Project a position onto the unit sphere",
		Args:  cobra.ExactArgs(2),
		Run:   runLatticeSphere, // Defined in cmd_lattice.go
	}

	// --- Big Number Engine ---
	abacusCmd = &cobra.Command{
		Use:   "abacus",
		Short: "Evaluate mixed-radix big number expressions",
	}
	abacusEvalCmd = &cobra.Command{
		Use:   "eval [a] [op] [b]",
		Short: "Apply +, -, x, /, or % to two numbers",
		Args:  cobra.ExactArgs(3),
		Run:   runAbacusEval, // Defined in cmd_abacus.go
	}
	abacusModExpCmd = &cobra.Command{
		Use:   "modexp [base] [exp] [mod]",
		Short: "Compute base^exp mod m by square and multiply",
		Args:  cobra.ExactArgs(3),
		Run:   runAbacusModExp, // Defined in cmd_abacus.go
	}
	abacusSqrtCmd = &cobra.Command{
		Use:   "sqrt [x]",
		Short: "Square root to the configured fractional precision",
		Args:  cobra.ExactArgs(1),
		Run:   runAbacusSqrt, // Defined in cmd_abacus.go
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false,
		"Output as JSON for scripting")
	rootCmd.PersistentFlags().BoolVar(&compactOutput, "compact", false,
		"JSON without indentation")
	rootCmd.PersistentFlags().BoolVarP(&quietOutput, "quiet", "q", false,
		"No output, exit code only")

	primeCmd.AddCommand(primeNthCmd, primeTestCmd, primeNextCmd, primeFactorCmd, primeCountCmd)
	cacheCmd.AddCommand(cachePopulateCmd, cacheLookupCmd, cacheSaveCmd, cacheLoadCmd, cacheStatsCmd)
	latticeCmd.AddCommand(latticeMapCmd, latticeFoldCmd, latticeSphereCmd)
	abacusCmd.AddCommand(abacusEvalCmd, abacusModExpCmd, abacusSqrtCmd)

	rootCmd.AddCommand(primeCmd, cacheCmd, latticeCmd, abacusCmd)
}

// outputCfg snapshots the global output flags for OutputResult.
func outputCfg() OutputConfig {
	return OutputConfig{JSON: jsonOutput, Compact: compactOutput, Quiet: quietOutput}
}
