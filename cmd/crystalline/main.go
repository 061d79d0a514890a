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
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/AleutianAI/crystalline/cmd/crystalline/config"
	"github.com/AleutianAI/crystalline/pkg/logging"
)

// appLogger carries a run ID so log records from one invocation can
// be correlated across destinations.
var appLogger *logging.Logger

func main() {
	// Interrupt cancels the command context; long prime walks check
	// it at their outer-loop boundaries and unwind cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(CLIExitError)
	}
}

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}
		appLogger = newRunLogger(config.Global.Logging)
		return nil
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if appLogger != nil {
			_ = appLogger.Close()
		}
	}
}

// newRunLogger builds the process logger from config and tags every
// record with a fresh run ID.
func newRunLogger(cfg config.LoggingConfig) *logging.Logger {
	base := logging.New(logging.Config{
		Level:   logging.ParseLevel(cfg.Level),
		LogDir:  cfg.Dir,
		Service: "crystalline",
		Quiet:   true, // command output owns stdout/stderr
	})
	return base.With("run_id", uuid.NewString())
}
