// Copyright 2026 The bc125go Authors
// SPDX-License-Identifier: Apache-2.0

// Bc125 is the operator CLI for the Uniden BC125AT scanner: discover
// the device file, verify the connection, inspect device info, dump
// settings to YAML, and drive the raw command protocol interactively.
//
// Talking to the scanner requires the tty that bc125-driver-setup
// creates; run that first (or install it setuid-root and let a udev
// rule run it).
package main
