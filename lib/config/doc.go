// Copyright 2026 The bc125go Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for bc125go binaries.
//
// Configuration is loaded from a single optional YAML file specified by:
//   - the BC125_CONFIG environment variable, or
//   - the --config flag passed to the command.
//
// There are no search paths or automatic discovery; when neither is
// set, the compiled-in defaults apply. Every field has a default that
// matches the BC125AT and a stock Linux kernel, so a config file is
// only needed for unusual systems (a different debugfs mount, a
// scanner enumerating as something other than ttyACM0).
package config
