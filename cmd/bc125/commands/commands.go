// Copyright 2026 The bc125go Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the bc125 CLI command tree.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/itsmaxymoo/bc125go/cmd/bc125/cli"
	"github.com/itsmaxymoo/bc125go/lib/config"
	"github.com/itsmaxymoo/bc125go/lib/scanner"
	"github.com/itsmaxymoo/bc125go/lib/version"
)

// Root builds and returns the complete bc125 command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "bc125",
		Description: `bc125: Uniden BC125AT scanner tool.

Find the scanner's serial device, check the connection, read device
information and settings, and drive the raw command protocol.`,
		Subcommands: []*cli.Command{
			portsCommand(),
			testCommand(),
			infoCommand(),
			readCommand(),
			shellCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ []string) error {
					fmt.Printf("bc125 %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Check that the scanner is reachable",
				Command:     "bc125 test",
			},
			{
				Description: "Dump device info and settings to a file",
				Command:     "bc125 read scanner.yaml",
			},
		},
	}
}

// options are the flags shared by every scanner-touching subcommand.
type options struct {
	port       string
	verbose    bool
	configPath string
}

func (o *options) flagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.StringVar(&o.port, "port", "", "scanner device file (default: first discovered)")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "debug logging, including serial traffic")
	flags.StringVar(&o.configPath, "config", "", "YAML config file")
	return flags
}

// session resolves config, builds the logger, and connects.
func (o *options) session() (*scanner.Connection, *slog.Logger, error) {
	cfg, err := config.Resolve(o.configPath)
	if err != nil {
		return nil, nil, err
	}
	logger := cli.NewCommandLogger(o.verbose)

	conn, err := scanner.Connect(o.port, cfg.PortGlobs, logger)
	if err != nil {
		return nil, nil, err
	}
	return conn, logger, nil
}
