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
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/AleutianAI/crystalline/cmd/crystalline/config"
	"github.com/AleutianAI/crystalline/pkg/prime"
	"github.com/AleutianAI/crystalline/pkg/rainbow"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	cacheCount       uint64 // How many primes to populate (0 = config warm_count)
	cacheLookupIndex uint64 // Look up by 1-based index instead of by prime
)

func init() {
	cacheCmd.PersistentFlags().Uint64Var(&cacheCount, "count", 0,
		"Number of primes to populate (default from config warm_count)")
	cacheLookupCmd.Flags().Uint64Var(&cacheLookupIndex, "index", 0,
		"Look up the entry with this 1-based index instead of a prime")
}

// =============================================================================
// SNAPSHOT HELPERS
// =============================================================================

// openSnapshotStore opens the BadgerDB snapshot store from config.
func openSnapshotStore() (*rainbow.Store, error) {
	cfg := rainbow.DefaultStoreConfig(config.ExpandPath(config.Global.Cache.SnapshotDir))
	cfg.SyncWrites = config.Global.Cache.SyncWrites
	if appLogger != nil {
		cfg.Logger = appLogger.Slog()
	}
	return rainbow.OpenStore(cfg)
}

// loadSnapshotTable loads the frozen table from the snapshot store.
func loadSnapshotTable(cmd *cobra.Command) (*rainbow.Table, error) {
	store, err := openSnapshotStore()
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return store.Load(cmd.Context())
}

// effectiveCount resolves the --count flag against the config default.
func effectiveCount() uint64 {
	if cacheCount > 0 {
		return cacheCount
	}
	return config.Global.Cache.WarmCount
}

// populateTable fills a fresh table with the first count primes,
// streaming progress to the terminal. Population and rendering run
// concurrently; the channel hands off the frontier so the renderer
// never touches the table mid-write.
func populateTable(cmd *cobra.Command, count uint64) (*rainbow.Table, error) {
	cfg := outputCfg()
	table := rainbow.New(int(count))
	svc := prime.NewService(prime.WithLogger(appLogger))

	progress := make(chan uint64, 1)
	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		defer close(progress)
		const chunk = 256
		for table.MaxIndex() < count {
			next := table.MaxIndex() + chunk
			if next > count {
				next = count
			}
			if err := table.PopulateCount(ctx, svc, next); err != nil {
				return err
			}
			select {
			case progress <- table.MaxIndex():
			default:
			}
		}
		return nil
	})
	g.Go(func() error {
		for done := range progress {
			if !cfg.JSON && !cfg.Quiet {
				renderProgress(done, count, 40)
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if stdoutIsTTY && !cfg.JSON && !cfg.Quiet {
		fmt.Println()
	}
	return table, nil
}

func tableStats(t *rainbow.Table) CacheStatsResult {
	return CacheStatsResult{
		Size:        t.Size(),
		MaxPrime:    t.MaxPrime(),
		MaxIndex:    t.MaxIndex(),
		EncodedSize: len(t.Bytes()),
		Frozen:      t.Frozen(),
	}
}

func renderStats(title string, stats CacheStatsResult) {
	renderBox(title, fmt.Sprintf("primes:    %d\nmax prime: %d\nencoded:   %d bytes",
		stats.Size, stats.MaxPrime, stats.EncodedSize))
}

// =============================================================================
// COMMAND IMPLEMENTATIONS
// =============================================================================

func runCachePopulate(cmd *cobra.Command, args []string) {
	start := time.Now()
	cfg := outputCfg()

	count := effectiveCount()
	table, err := populateTable(cmd, count)
	if err != nil {
		os.Exit(OutputResult(cfg, "cache populate", start, nil, false, err))
	}

	stats := tableStats(table)
	if !cfg.JSON && !cfg.Quiet {
		renderStats("rainbow cache", stats)
	}
	os.Exit(OutputResult(cfg, "cache populate", start, stats, false, nil))
}

func runCacheSave(cmd *cobra.Command, args []string) {
	start := time.Now()
	cfg := outputCfg()

	count := effectiveCount()
	table, err := populateTable(cmd, count)
	if err != nil {
		os.Exit(OutputResult(cfg, "cache save", start, nil, false, err))
	}

	store, err := openSnapshotStore()
	if err != nil {
		os.Exit(OutputResult(cfg, "cache save", start, nil, false, err))
	}
	defer store.Close()
	if err := store.Save(cmd.Context(), table); err != nil {
		os.Exit(OutputResult(cfg, "cache save", start, nil, false, err))
	}

	stats := tableStats(table)
	if !cfg.JSON && !cfg.Quiet {
		renderStats("snapshot saved", stats)
	}
	appLogger.Info("snapshot saved",
		"primes", stats.Size, "max_prime", stats.MaxPrime,
		"dir", config.Global.Cache.SnapshotDir)
	os.Exit(OutputResult(cfg, "cache save", start, stats, false, nil))
}

func runCacheLoad(cmd *cobra.Command, args []string) {
	start := time.Now()
	cfg := outputCfg()

	table, err := loadSnapshotTable(cmd)
	if err != nil {
		os.Exit(OutputResult(cfg, "cache load", start, nil, false, err))
	}

	stats := tableStats(table)
	if !cfg.JSON && !cfg.Quiet {
		renderStats("snapshot loaded", stats)
		renderVerdict(true, "snapshot invariants verified")
	}
	os.Exit(OutputResult(cfg, "cache load", start, stats, false, nil))
}

func runCacheStats(cmd *cobra.Command, args []string) {
	start := time.Now()
	cfg := outputCfg()

	table, err := loadSnapshotTable(cmd)
	if err != nil {
		os.Exit(OutputResult(cfg, "cache stats", start, nil, false, err))
	}

	stats := tableStats(table)
	if !cfg.JSON && !cfg.Quiet {
		renderStats("snapshot", stats)
	}
	os.Exit(OutputResult(cfg, "cache stats", start, stats, false, nil))
}

func runCacheLookup(cmd *cobra.Command, args []string) {
	start := time.Now()
	cfg := outputCfg()

	if len(args) == 0 && cacheLookupIndex == 0 {
		os.Exit(OutputResult(cfg, "cache lookup", start, nil, false,
			errors.New("pass a prime or --index")))
	}

	// Fall back to an in-memory population when no snapshot exists,
	// so lookup works out of the box.
	table, err := loadSnapshotTable(cmd)
	if errors.Is(err, rainbow.ErrNotFound) {
		table, err = populateTable(cmd, effectiveCount())
	}
	if err != nil {
		os.Exit(OutputResult(cfg, "cache lookup", start, nil, false, err))
	}

	var result CacheLookupResult
	if cacheLookupIndex > 0 {
		p, pos, lerr := table.LookupByIndex(cacheLookupIndex)
		if lerr != nil {
			os.Exit(OutputResult(cfg, "cache lookup", start, nil, false, lerr))
		}
		result = CacheLookupResult{Prime: p, Index: cacheLookupIndex, Ring: pos.Ring, Pos: pos.Pos}
	} else {
		p, perr := parseUintArg(args[0])
		if perr != nil {
			os.Exit(OutputResult(cfg, "cache lookup", start, nil, false, perr))
		}
		index, pos, lerr := table.LookupByPrime(p)
		if lerr != nil {
			os.Exit(OutputResult(cfg, "cache lookup", start, nil, false, lerr))
		}
		result = CacheLookupResult{Prime: p, Index: index, Ring: pos.Ring, Pos: pos.Pos}
	}

	if !cfg.JSON && !cfg.Quiet {
		renderField("prime", "%d", result.Prime)
		renderField("index", "%d", result.Index)
		renderField("position", "ring %d, pos %d", result.Ring, result.Pos)
	}
	os.Exit(OutputResult(cfg, "cache lookup", start, result, false, nil))
}
