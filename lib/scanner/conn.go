// Copyright 2026 The bc125go Authors
// SPDX-License-Identifier: Apache-2.0

package scanner

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.bug.st/serial"
)

// CommandError indicates the scanner rejected a command: the response
// ended in ERR (unknown command) or NG (valid command, wrong mode).
type CommandError struct {
	Command  string
	Response string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("scanner rejected %q: %s", e.Command, e.Response)
}

// openPort opens the serial device. The BC125AT is a USB CDC-ACM
// device, so the line parameters are nominal; the USB layer ignores
// them. A variable so tests can substitute an in-memory port.
var openPort = func(path string) (io.ReadWriteCloser, error) {
	return serial.Open(path, &serial.Mode{BaudRate: 9600})
}

// Connection is an open command channel to the scanner. Not safe for
// concurrent use: the protocol is strictly request/response.
type Connection struct {
	device io.ReadWriteCloser
	reader *bufio.Reader
	logger *slog.Logger
}

// Connect opens the scanner at path. An empty path searches the given
// device-file globs and takes the first match.
func Connect(path string, globs []string, logger *slog.Logger) (*Connection, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if path == "" {
		ports := FindPorts(globs)
		if len(ports) == 0 {
			return nil, fmt.Errorf("could not find any scanner (searched %s)",
				strings.Join(globs, ", "))
		}
		path = ports[0]
	}
	logger.Debug("connecting to scanner", "port", path)

	device, err := openPort(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &Connection{
		device: device,
		reader: bufio.NewReader(device),
		logger: logger,
	}, nil
}

// Exec sends the comma-joined fields as one command and returns the
// response fields with the command-name echo stripped.
func (c *Connection) Exec(fields ...string) ([]string, error) {
	command := strings.Join(fields, ",")
	response, err := c.roundTrip(command)
	if err != nil {
		return nil, err
	}

	if strings.HasSuffix(response, "ERR") || strings.HasSuffix(response, "NG") {
		return nil, &CommandError{Command: command, Response: response}
	}

	// The first four bytes are the echoed command name plus a comma
	// ("MDL,"). A response shorter than that carries no fields.
	if len(response) < 4 {
		return nil, fmt.Errorf("short response %q to %q", response, command)
	}
	return strings.Split(response[4:], ","), nil
}

// ExecRaw sends a raw command line and returns the full response,
// echo included. This is the interactive shell's entry point; it does
// not treat ERR/NG as an error, the operator wants to see them.
func (c *Connection) ExecRaw(command string) (string, error) {
	return c.roundTrip(command)
}

// roundTrip writes one CR-terminated command and reads one
// CR-terminated response line.
func (c *Connection) roundTrip(command string) (string, error) {
	c.logger.Debug("scanner send", "command", command)
	if _, err := c.device.Write([]byte(command + "\r")); err != nil {
		return "", fmt.Errorf("could not communicate (write) with scanner: %w", err)
	}

	response, err := c.reader.ReadString('\r')
	if err != nil {
		return "", fmt.Errorf("could not communicate (read) with scanner: %w", err)
	}
	response = strings.TrimRight(response, "\r\n")
	c.logger.Debug("scanner response", "response", response)
	return response, nil
}

// EnterProgramMode puts the scanner into program mode. The display
// shows "Remote Mode / Keypad Lock" and most settings become writable.
func (c *Connection) EnterProgramMode() error {
	return c.expectOK("PRG")
}

// ExitProgramMode returns the scanner to normal operation.
func (c *Connection) ExitProgramMode() error {
	return c.expectOK("EPG")
}

func (c *Connection) expectOK(fields ...string) error {
	response, err := c.Exec(fields...)
	if err != nil {
		return err
	}
	if len(response) == 0 || response[0] != "OK" {
		return fmt.Errorf("unexpected response to %s: %v",
			strings.Join(fields, ","), response)
	}
	return nil
}

// Close shuts down the serial connection.
func (c *Connection) Close() error {
	return c.device.Close()
}
