// Copyright 2026 The bc125go Authors
// SPDX-License-Identifier: Apache-2.0

// Package driverbind escalates to root, registers the scanner's USB id
// pair with the kernel's CDC-ACM driver, and hands the resulting tty
// back to the invoking user.
//
// The sequence is modeled as an explicit phase machine (Unprivileged,
// Escalating, Privileged, Restoring, Done, with EscalationFailed as
// the terminal failure branch) so the escalation/restoration order is
// auditable instead of living in ambient process state.
//
// Failure severity is deliberately asymmetric. Escalation failure is
// fatal: no privileged action may run without it. The new_id write is
// fire-and-forget: the kernel gives no synchronous confirmation, so a
// write error is only logged. The final chown is a soft warning: by
// that point the binding, the primary objective, has already been
// issued, and the user can chown manually.
//
// Between the new_id write and the chown sits a fixed settle delay.
// The kernel materializes the device node asynchronously, and an
// immediate chown may silently not take effect. This is a documented
// wait, not a retry: do not replace it with a poll loop, the fixed
// timing is relied upon by the surrounding tooling.
//
// All OS touchpoints (the sysfs write, credential syscalls, chown,
// the clock) are injected interfaces; tests substitute recording stubs
// and never perform real privileged operations.
package driverbind
