// Copyright 2026 The bc125go Authors
// SPDX-License-Identifier: Apache-2.0

package usbtopo

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

const (
	// DefaultMatch is the substring that identifies the target scanner
	// in the topology report. The BC125AT reports itself as
	// "S:  Product=BC125AT" on its product string line.
	DefaultMatch = "BC125AT"

	// IDMaxLen is the maximum identifier token length. Longer tokens
	// are truncated, matching the report's short hexadecimal ids.
	IDMaxLen = 15

	vendorMarker  = "Vendor="
	productMarker = "ProdID="
)

// DefaultSources are the topology report paths, tried in priority
// order: the legacy usbfs listing first, then the debugfs one.
var DefaultSources = []string{
	"/proc/bus/usb/devices",
	"/sys/kernel/debug/usb/devices",
}

// ErrNoTopologySource indicates that none of the topology report paths
// could be opened. The kernel interface is absent at this permission
// level or on this system; there is nothing to retry.
var ErrNoTopologySource = errors.New("no USB topology source available")

// Identifiers is the vendor/product id pair extracted from the report.
// Both fields are either simultaneously empty or populated from the
// same attribute block; Scan resets both at every block boundary so
// values from an unrelated device cannot be mis-attributed.
type Identifiers struct {
	Vendor  string
	Product string
}

// state tracks progress through the single scan pass.
type state int

const (
	// searching: the match substring has not been seen yet.
	searching state = iota

	// deviceFound: the match substring was seen. Sticky: block
	// boundaries reset identifier fields but never this state. A match
	// anywhere in the report therefore counts, even if that line
	// belongs to an earlier unrelated block. Deliberate, and covered
	// by tests rather than "fixed": the match string is specific
	// enough that a collision means two scanners, not a wrong device.
	deviceFound

	// identifiersComplete: deviceFound plus both identifier fields
	// populated. Terminal; scanning stops here.
	identifiersComplete
)

// Scan reads the topology report from r and returns the identifier
// pair for the device whose report line contains match. The second
// return value is false when the match substring never occurs.
//
// The pass is lazy: input is consumed line by line and stops at the
// first point where the device has been seen and both identifiers are
// populated. Lines may be terminated with LF or CRLF.
func Scan(r io.Reader, match string) (Identifiers, bool) {
	var ids Identifiers
	current := searching

	lines := bufio.NewScanner(r)
	for lines.Scan() {
		line := strings.TrimSuffix(lines.Text(), "\r")

		if strings.Contains(line, match) {
			if current == searching {
				current = deviceFound
			}
		} else if !continuesBlock(line) {
			ids = Identifiers{}
		}

		if vendor, ok := ExtractValue(line, vendorMarker, IDMaxLen); ok {
			ids.Vendor = vendor
		}
		if product, ok := ExtractValue(line, productMarker, IDMaxLen); ok {
			ids.Product = product
		}

		if current == deviceFound && ids.Vendor != "" && ids.Product != "" {
			current = identifiersComplete
			break
		}
	}

	return ids, current != searching
}

// ScanSources opens the first readable path and scans it. Later paths
// are fallbacks for the first, not additional inputs: only one report
// is ever read. Returns ErrNoTopologySource when no path opens.
func ScanSources(paths []string, match string) (Identifiers, bool, error) {
	for _, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			continue
		}
		ids, found := Scan(file, match)
		file.Close()
		return ids, found, nil
	}
	return Identifiers{}, false, ErrNoTopologySource
}

// continuesBlock reports whether the line continues the current
// attribute block. The report marks attribute lines with an uppercase
// ASCII letter in column one; an empty line or any other first byte
// ends the block and invalidates identifiers collected so far.
func continuesBlock(line string) bool {
	return line != "" && line[0] >= 'A' && line[0] <= 'Z'
}
