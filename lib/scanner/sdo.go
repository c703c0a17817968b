// Copyright 2026 The bc125go Authors
// SPDX-License-Identifier: Apache-2.0

package scanner

import (
	"fmt"
	"strconv"
)

// Query is one scanner data object: it knows the command that fetches
// it and how to take apart the response fields.
type Query interface {
	// FetchCommand returns the command fields that read this object.
	FetchCommand() []string

	// ParseResponse imports the response fields into the object.
	ParseResponse(fields []string) error
}

// Writable is a Query whose value can be pushed back to the scanner.
// Writes generally require program mode.
type Writable interface {
	Query

	// WriteCommand returns the command fields that store this object.
	WriteCommand() []string
}

// Fetch executes q's fetch command and parses the response into q.
func (c *Connection) Fetch(q Query) error {
	fields, err := c.Exec(q.FetchCommand()...)
	if err != nil {
		return err
	}
	return q.ParseResponse(fields)
}

// Apply pushes w's current value to the scanner.
func (c *Connection) Apply(w Writable) error {
	return c.expectOK(w.WriteCommand()...)
}

// DeviceModel is the scanner's model string (read only).
type DeviceModel struct {
	Model string
}

func (q *DeviceModel) FetchCommand() []string { return []string{"MDL"} }

func (q *DeviceModel) ParseResponse(fields []string) error {
	if len(fields) < 1 || fields[0] == "" {
		return fmt.Errorf("MDL response carried no model: %v", fields)
	}
	q.Model = fields[0]
	return nil
}

// FirmwareVersion is the scanner's firmware revision (read only).
type FirmwareVersion struct {
	Version string
}

func (q *FirmwareVersion) FetchCommand() []string { return []string{"VER"} }

func (q *FirmwareVersion) ParseResponse(fields []string) error {
	if len(fields) < 1 || fields[0] == "" {
		return fmt.Errorf("VER response carried no version: %v", fields)
	}
	q.Version = fields[0]
	return nil
}

// Volume is the speaker volume, 0 to 15.
type Volume struct {
	Level int
}

func (q *Volume) FetchCommand() []string { return []string{"VOL"} }

func (q *Volume) ParseResponse(fields []string) error {
	level, err := parseLevel("VOL", fields)
	if err != nil {
		return err
	}
	q.Level = level
	return nil
}

func (q *Volume) WriteCommand() []string {
	return []string{"VOL", strconv.Itoa(q.Level)}
}

// Squelch is the squelch threshold, 0 (open) to 15 (closed).
type Squelch struct {
	Level int
}

func (q *Squelch) FetchCommand() []string { return []string{"SQL"} }

func (q *Squelch) ParseResponse(fields []string) error {
	level, err := parseLevel("SQL", fields)
	if err != nil {
		return err
	}
	q.Level = level
	return nil
}

func (q *Squelch) WriteCommand() []string {
	return []string{"SQL", strconv.Itoa(q.Level)}
}

func parseLevel(command string, fields []string) (int, error) {
	if len(fields) < 1 {
		return 0, fmt.Errorf("%s response carried no level", command)
	}
	level, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("%s response %q is not a level: %w", command, fields[0], err)
	}
	return level, nil
}
