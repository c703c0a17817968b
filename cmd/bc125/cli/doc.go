// Copyright 2026 The bc125go Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the small command-tree framework behind the bc125
// binary: nested [Command] values with lazily built pflag flag sets,
// tabwriter-aligned help output, and [ExitError] for commands whose
// non-zero exit is an outcome rather than a failure.
package cli
