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

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := validator.New().Struct(&cfg); err != nil {
		t.Fatalf("DefaultConfig() fails validation: %v", err)
	}
	if cfg.Engine.DefaultBase != 10 {
		t.Errorf("DefaultBase = %d, want 10", cfg.Engine.DefaultBase)
	}
	if cfg.Cache.WarmCount == 0 {
		t.Error("WarmCount should be nonzero")
	}
}

func TestDefaultConfigRoundTrips(t *testing.T) {
	cfg := DefaultConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var back CrystallineConfig
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip changed config: got %+v, want %+v", back, cfg)
	}
}

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crystalline.yaml")
	if err := createDefault(path); err != nil {
		t.Fatalf("createDefault failed: %v", err)
	}

	var cfg CrystallineConfig
	if err := LoadFrom(path, &cfg); err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("loaded config = %+v, want defaults", cfg)
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	var cfg CrystallineConfig
	err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"), &cfg)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFrom_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "base too small",
			yaml: "engine:\n  default_base: 1\n  precision: 12\ncache:\n  snapshot_dir: /tmp/c\n  warm_count: 100\nlogging:\n  level: info\n",
		},
		{
			name: "bad level",
			yaml: "engine:\n  default_base: 10\n  precision: 12\ncache:\n  snapshot_dir: /tmp/c\n  warm_count: 100\nlogging:\n  level: loud\n",
		},
		{
			name: "missing snapshot dir",
			yaml: "engine:\n  default_base: 10\n  precision: 12\ncache:\n  warm_count: 100\nlogging:\n  level: info\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "crystalline.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			var cfg CrystallineConfig
			if err := LoadFrom(path, &cfg); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()
	got := ExpandPath("~/.crystalline/cache")
	if !strings.HasPrefix(got, home) {
		t.Errorf("ExpandPath = %q, want prefix %q", got, home)
	}
	if got := ExpandPath("/var/cache"); got != "/var/cache" {
		t.Errorf("absolute path changed: %q", got)
	}
}
