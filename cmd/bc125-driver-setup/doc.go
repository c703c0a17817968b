// Copyright 2026 The bc125go Authors
// SPDX-License-Identifier: Apache-2.0

// Bc125-driver-setup finds a Uniden BC125AT in the kernel's USB
// topology report, registers its vendor/product id pair with the
// generic CDC-ACM serial driver, and chowns the resulting tty to the
// invoking user. It is the only privileged piece of bc125go and is
// meant to be installed setuid-root so the interactive user never
// needs sudo to talk to the scanner.
//
// Exit codes:
//
//	0  device bound (a failed chown of the tty is a warning, not a failure)
//	1  scanner not present in the topology report
//	2  no topology report readable (/proc/bus/usb/devices nor
//	   /sys/kernel/debug/usb/devices)
//	3  privilege escalation failed (binary not installed setuid-root)
//	64 bad arguments or unreadable config file
//
// Earlier renditions of this helper collapsed all failures to exit
// code 1; the refined codes let udev rules and scripts tell "no
// scanner plugged in" apart from "misinstalled binary".
package main
