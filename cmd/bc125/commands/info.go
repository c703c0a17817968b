// Copyright 2026 The bc125go Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/itsmaxymoo/bc125go/cmd/bc125/cli"
	"github.com/itsmaxymoo/bc125go/lib/scanner"
)

func infoCommand() *cli.Command {
	opts := &options{}
	return &cli.Command{
		Name:    "info",
		Summary: "Print scanner model and firmware",
		Flags:   func() *pflag.FlagSet { return opts.flagSet("info") },
		Run: func(_ []string) error {
			conn, logger, err := opts.session()
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := conn.EnterProgramMode(); err != nil {
				return fmt.Errorf("entering program mode: %w", err)
			}
			defer func() {
				if err := conn.ExitProgramMode(); err != nil {
					logger.Warn("scanner left in program mode", "error", err)
				}
			}()

			var model scanner.DeviceModel
			if err := conn.Fetch(&model); err != nil {
				return err
			}
			var firmware scanner.FirmwareVersion
			if err := conn.Fetch(&firmware); err != nil {
				return err
			}

			fmt.Printf("model:    %s\n", model.Model)
			fmt.Printf("firmware: %s\n", firmware.Version)
			return nil
		},
	}
}
