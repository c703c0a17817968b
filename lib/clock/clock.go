// Copyright 2026 The bc125go Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Clock abstracts time operations for testability. Production code
// injects Real(); tests inject Fake() with deterministic time control.
//
// Every production function that calls time.Now or time.Sleep should
// accept a Clock parameter (or be a method on a struct with a Clock
// field) instead of calling the time package directly.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// Sleep pauses the current goroutine for at least duration d.
	// Equivalent to time.Sleep.
	Sleep(d time.Duration)
}
