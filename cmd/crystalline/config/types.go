// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

type CrystallineConfig struct {
	// Engine: defaults for the big number engine
	Engine EngineConfig `yaml:"engine" validate:"required"`

	// Cache: rainbow cache warm-up and snapshot storage
	Cache CacheConfig `yaml:"cache" validate:"required"`

	// Logging: destination and verbosity for structured logs
	Logging LoggingConfig `yaml:"logging" validate:"required"`
}

type EngineConfig struct {
	// DefaultBase is the radix used when a command does not pass --base.
	DefaultBase uint32 `yaml:"default_base" validate:"gte=2,lte=2147483648"`

	// Precision is the fractional digit count for sqrt/exp/sin/cos/log.
	Precision int `yaml:"precision" validate:"gte=0,lte=4096"`
}

type CacheConfig struct {
	// SnapshotDir holds the BadgerDB snapshot of the rainbow cache.
	SnapshotDir string `yaml:"snapshot_dir" validate:"required"`

	// WarmCount is how many primes `cache populate` loads by default.
	WarmCount uint64 `yaml:"warm_count" validate:"gte=1"`

	// SyncWrites makes snapshot saves durable at the cost of speed.
	SyncWrites bool `yaml:"sync_writes"`
}

type LoggingConfig struct {
	// Level can be "debug", "info", "warn", or "error".
	Level string `yaml:"level" validate:"oneof=debug info warn error"`

	// Dir receives the JSON log files. Empty disables file logging.
	Dir string `yaml:"dir"`
}

func DefaultConfig() CrystallineConfig {
	return CrystallineConfig{
		Engine: EngineConfig{
			DefaultBase: 10,
			Precision:   12,
		},
		Cache: CacheConfig{
			SnapshotDir: "~/.crystalline/cache",
			WarmCount:   1000,
			SyncWrites:  true,
		},
		Logging: LoggingConfig{
			Level: "info",
			Dir:   "~/.crystalline/logs",
		},
	}
}
