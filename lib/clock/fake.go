// Copyright 2026 The bc125go Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"sync"
	"time"
)

// Fake returns a FakeClock initialized to the given time. Sleep calls
// advance the fake time immediately instead of blocking, and every
// sleep is recorded so tests can assert both the total slept duration
// and the individual delays.
//
// FakeClock is safe for concurrent use by multiple goroutines, though
// the code under test in this repository is strictly sequential.
func Fake(initial time.Time) *FakeClock {
	return &FakeClock{current: initial}
}

// FakeClock is a deterministic Clock for testing. Time advances only
// through Sleep and Advance.
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
	sleeps  []time.Duration
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Sleep advances the fake time by d without blocking and records the
// duration. Non-positive durations are recorded but do not move time.
func (c *FakeClock) Sleep(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d > 0 {
		c.current = c.current.Add(d)
	}
	c.sleeps = append(c.sleeps, d)
}

// Advance moves the fake time forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

// Sleeps returns a copy of every duration passed to Sleep, in order.
func (c *FakeClock) Sleeps() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]time.Duration, len(c.sleeps))
	copy(out, c.sleeps)
	return out
}

// TotalSlept returns the sum of all positive durations passed to Sleep.
func (c *FakeClock) TotalSlept() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total time.Duration
	for _, d := range c.sleeps {
		if d > 0 {
			total += d
		}
	}
	return total
}
