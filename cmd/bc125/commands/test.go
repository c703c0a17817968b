// Copyright 2026 The bc125go Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/itsmaxymoo/bc125go/cmd/bc125/cli"
	"github.com/itsmaxymoo/bc125go/lib/scanner"
)

func testCommand() *cli.Command {
	opts := &options{}
	return &cli.Command{
		Name:    "test",
		Summary: "Test the scanner connection",
		Description: `Connect to the scanner and ask for its model. Exits 0 when a
BC125AT answers, 1 otherwise.`,
		Flags: func() *pflag.FlagSet { return opts.flagSet("test") },
		Run: func(_ []string) error {
			conn, _, err := opts.session()
			if err != nil {
				fmt.Fprintf(os.Stderr, "connection failed: %v\n", err)
				return &cli.ExitError{Code: 1}
			}
			defer conn.Close()

			var model scanner.DeviceModel
			if err := conn.Fetch(&model); err != nil {
				fmt.Fprintf(os.Stderr, "scanner did not answer MDL: %v\n", err)
				return &cli.ExitError{Code: 1}
			}
			fmt.Printf("connected: %s\n", model.Model)
			return nil
		},
	}
}
