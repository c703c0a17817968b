// Copyright 2026 The bc125go Authors
// SPDX-License-Identifier: Apache-2.0

// Package usbtopo locates a USB device in the kernel's textual USB
// topology report and extracts its vendor and product identifiers.
//
// The report is the line-oriented format exposed at
// /proc/bus/usb/devices on old kernels and at
// /sys/kernel/debug/usb/devices on modern ones. Each device is a
// paragraph of attribute lines; lines starting with an uppercase ASCII
// letter ("T:", "P:", "S:", ...) belong to the current attribute
// block, anything else ends it. Vendor and product ids appear as
// "Vendor=xxxx" and "ProdID=xxxx" tokens, terminated by a space or the
// end of the line.
//
// Scan is a single lazy pass over the report: it stops as soon as the
// target device has been seen and both identifiers are populated. The
// found flag is sticky once set while identifier fields reset at every
// block boundary; see the state machine notes on Scan.
package usbtopo
