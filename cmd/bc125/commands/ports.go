// Copyright 2026 The bc125go Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/itsmaxymoo/bc125go/cmd/bc125/cli"
	"github.com/itsmaxymoo/bc125go/lib/config"
	"github.com/itsmaxymoo/bc125go/lib/scanner"
)

func portsCommand() *cli.Command {
	var configPath string
	return &cli.Command{
		Name:    "ports",
		Summary: "List candidate scanner device files",
		Description: `List device files that look like a connected BC125AT, stable
/dev/serial/by-id symlinks first. An empty list usually means the
driver is not bound yet; run bc125-driver-setup.`,
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("ports", pflag.ContinueOnError)
			flags.StringVar(&configPath, "config", "", "YAML config file")
			return flags
		},
		Run: func(_ []string) error {
			cfg, err := config.Resolve(configPath)
			if err != nil {
				return err
			}
			ports := scanner.FindPorts(cfg.PortGlobs)
			if len(ports) == 0 {
				fmt.Println("no scanner device files found")
				return &cli.ExitError{Code: 1}
			}
			for _, port := range ports {
				fmt.Println(port)
			}
			return nil
		},
	}
}
