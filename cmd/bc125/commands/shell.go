// Copyright 2026 The bc125go Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/itsmaxymoo/bc125go/cmd/bc125/cli"
)

func shellCommand() *cli.Command {
	opts := &options{}
	return &cli.Command{
		Name:    "shell",
		Summary: "Interactive raw command shell",
		Description: `Send raw protocol commands to the scanner and print the
responses verbatim, echo and error codes included. "exit" or EOF
leaves the shell. Commands that need program mode will answer NG
until you send PRG.`,
		Flags: func() *pflag.FlagSet { return opts.flagSet("shell") },
		Run: func(_ []string) error {
			conn, _, err := opts.session()
			if err != nil {
				return err
			}
			defer conn.Close()

			return runShell(os.Stdin, os.Stdout, conn)
		},
	}
}

// commandRunner is the slice of Connection the shell needs; tests
// substitute a canned implementation.
type commandRunner interface {
	ExecRaw(command string) (string, error)
}

func runShell(in io.Reader, out io.Writer, conn commandRunner) error {
	fmt.Fprintln(out, `BC125AT shell. "exit" or Ctrl-D to leave.`)

	lines := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !lines.Scan() {
			fmt.Fprintln(out)
			return lines.Err()
		}
		command := strings.TrimSpace(lines.Text())
		if command == "" {
			continue
		}
		if command == "exit" || command == "quit" {
			return nil
		}

		response, err := conn.ExecRaw(command)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, response)
	}
}
