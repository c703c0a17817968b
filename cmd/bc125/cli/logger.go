// Copyright 2026 The bc125go Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates a structured logger for CLI operations.
// When stderr is a terminal, uses slog.TextHandler for human-readable
// output. When stderr is piped or redirected (scripts, udev rules),
// uses slog.JSONHandler for machine-parseable output.
//
// Verbose lowers the level to debug, which includes the raw serial
// traffic with the scanner.
func NewCommandLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	options := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}
