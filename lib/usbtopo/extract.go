// Copyright 2026 The bc125go Authors
// SPDX-License-Identifier: Apache-2.0

package usbtopo

import "strings"

// ExtractValue returns the token immediately following the first
// occurrence of marker in line. The token runs until a space or the
// end of the line and is silently truncated to max characters; a long
// malformed token is cut short, not an error.
//
// The second return value is false when the marker does not occur, in
// which case the caller's previous value must be left intact. Field
// clearing is the scanner's job, at block boundaries, not this
// function's.
func ExtractValue(line, marker string, max int) (string, bool) {
	start := strings.Index(line, marker)
	if start < 0 {
		return "", false
	}

	rest := line[start+len(marker):]
	end := len(rest)
	if space := strings.IndexByte(rest, ' '); space >= 0 {
		end = space
	}
	if end > max {
		end = max
	}
	return rest[:end], true
}
