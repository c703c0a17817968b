// Copyright 2026 The bc125go Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/itsmaxymoo/bc125go/lib/clock"
	"github.com/itsmaxymoo/bc125go/lib/config"
	"github.com/itsmaxymoo/bc125go/lib/driverbind"
	"github.com/itsmaxymoo/bc125go/lib/usbtopo"
	"github.com/itsmaxymoo/bc125go/lib/version"
)

const (
	exitSuccess          = 0
	exitScannerNotFound  = 1
	exitNoTopologySource = 2
	exitEscalationFailed = 3
	exitUsage            = 64
)

func main() {
	os.Exit(run())
}

// arguments holds the parsed command line.
type arguments struct {
	verbose    bool
	configPath string
	version    bool
	help       bool
}

func parseArguments(args []string) (arguments, error) {
	var result arguments
	for i := 0; i < len(args); i++ {
		switch flag := args[i]; flag {
		case "-v", "--verbose":
			result.verbose = true
		case "--version":
			result.version = true
		case "-h", "--help":
			result.help = true
		case "--config":
			if i+1 >= len(args) {
				return arguments{}, fmt.Errorf("flag %s requires a value", flag)
			}
			result.configPath = args[i+1]
			i++
		default:
			return arguments{}, fmt.Errorf("unknown flag: %s", flag)
		}
	}
	return result, nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: bc125-driver-setup [flags]

Bind a BC125AT scanner to the cdc_acm driver and hand the resulting
tty to the invoking user. Must be installed setuid-root.

Flags:
  -v, --verbose    debug logging
      --config P   YAML config file (default: $%s, else built-in)
      --version    print version and exit
`, config.EnvVar)
}

func run() int {
	args, err := parseArguments(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		printUsage()
		return exitUsage
	}
	if args.help {
		printUsage()
		return exitSuccess
	}
	if args.version {
		fmt.Printf("bc125-driver-setup %s\n", version.Info())
		return exitSuccess
	}

	level := slog.LevelInfo
	if args.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Resolve(args.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitUsage
	}

	ids, found, err := usbtopo.ScanSources(cfg.TopologySources, cfg.Match)
	if err != nil {
		logger.Error("cannot read USB topology",
			"sources", cfg.TopologySources, "error", err)
		return exitNoTopologySource
	}

	logger.Info("topology scan complete",
		"found", found, "vendor", ids.Vendor, "product", ids.Product)
	if !found {
		logger.Error("scanner not found; is the BC125AT plugged in and powered on?",
			"match", cfg.Match)
		return exitScannerNotFound
	}

	binder := driverbind.New(driverbind.Config{
		Registrar:  driverbind.SysfsRegistrar{Path: cfg.NewIDPath},
		Identity:   driverbind.ProcessIdentity{},
		Owner:      driverbind.FSNodeOwner{},
		Clock:      clock.Real(),
		Logger:     logger,
		DeviceNode: cfg.DeviceNode,
	})
	if err := binder.Bind(ids); err != nil {
		if errors.Is(err, driverbind.ErrEscalationFailed) {
			logger.Error("could not escalate to root; install this binary setuid-root",
				"error", err)
			return exitEscalationFailed
		}
		logger.Error("driver binding failed", "error", err)
		return exitEscalationFailed
	}

	logger.Info("scanner bound", "device", cfg.DeviceNode)
	return exitSuccess
}
