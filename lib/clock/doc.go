// Copyright 2026 The bc125go Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time abstraction for testability.
//
// Production code accepts a Clock interface parameter instead of calling
// time.Now or time.Sleep directly. In production, Real() provides the
// standard library behavior. In tests, Fake() provides a deterministic
// clock that records sleeps and advances instantly, so the driver
// binder's settle delay can be asserted without a real 250 ms wait.
package clock
