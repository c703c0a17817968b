// Copyright 2026 The bc125go Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/itsmaxymoo/bc125go/cmd/bc125/cli"
	"github.com/itsmaxymoo/bc125go/lib/scanner"
)

// scannerDump is the YAML document `bc125 read` produces.
type scannerDump struct {
	Model    string `yaml:"model"`
	Firmware string `yaml:"firmware"`
	Volume   int    `yaml:"volume"`
	Squelch  int    `yaml:"squelch"`
}

func readCommand() *cli.Command {
	opts := &options{}
	return &cli.Command{
		Name:    "read",
		Summary: "Read device info and settings to a YAML file",
		Usage:   "bc125 read <file> [flags]",
		Flags:   func() *pflag.FlagSet { return opts.flagSet("read") },
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("read takes exactly one output file argument")
			}
			outPath := args[0]

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

			var (
				model    scanner.DeviceModel
				firmware scanner.FirmwareVersion
				volume   scanner.Volume
				squelch  scanner.Squelch
			)
			for _, query := range []scanner.Query{&model, &firmware, &volume, &squelch} {
				if err := conn.Fetch(query); err != nil {
					return err
				}
			}

			dump := scannerDump{
				Model:    model.Model,
				Firmware: firmware.Version,
				Volume:   volume.Level,
				Squelch:  squelch.Level,
			}
			data, err := yaml.Marshal(&dump)
			if err != nil {
				return fmt.Errorf("encoding scanner dump: %w", err)
			}
			if err := os.WriteFile(outPath, data, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}

			logger.Info("scanner state written", "file", outPath)
			return nil
		},
	}
}
