// Copyright 2026 The bc125go Authors
// SPDX-License-Identifier: Apache-2.0

package scanner

import "path/filepath"

// FindPorts returns candidate scanner device files matching the given
// glob patterns, in pattern order. The stable /dev/serial/by-id
// symlinks should come before the bare /dev/ttyACM* fallback so that
// a machine with several ACM devices picks the scanner.
func FindPorts(globs []string) []string {
	var found []string
	for _, pattern := range globs {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			// Only malformed patterns error; skip them.
			continue
		}
		found = append(found, matches...)
	}
	return found
}
