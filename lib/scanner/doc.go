// Copyright 2026 The bc125go Authors
// SPDX-License-Identifier: Apache-2.0

// Package scanner speaks the BC125AT's serial command protocol over
// the CDC-ACM tty that driverbind sets up.
//
// The protocol is ASCII request/response: a command is a comma-joined
// field list terminated with CR, and the response is a single
// CR-terminated line that echoes the three-letter command name as its
// first field ("MDL,BC125AT"). Responses ending in ERR or NG mean the
// scanner rejected the command; that surfaces as a CommandError.
//
// Scanner state lives in small data objects (model, firmware version,
// volume, squelch) implementing the Query interface: each knows its
// fetch command and how to take apart the response fields. Writable
// objects additionally produce the command that pushes their value
// back. Most writes require program mode (PRG/EPG) first.
package scanner
