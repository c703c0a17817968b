// Copyright 2026 The bc125go Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/itsmaxymoo/bc125go/lib/driverbind"
	"github.com/itsmaxymoo/bc125go/lib/usbtopo"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "BC125_CONFIG"

// Config collects every tunable the binaries accept. Zero values mean
// "use the default"; Load fills them in after parsing.
type Config struct {
	// TopologySources are the USB topology report paths, tried in
	// order. Only the first openable one is read.
	TopologySources []string `yaml:"topology_sources"`

	// Match is the substring identifying the scanner in the report.
	Match string `yaml:"match"`

	// NewIDPath is the CDC-ACM dynamic id registration file.
	NewIDPath string `yaml:"new_id_path"`

	// DeviceNode is where the kernel materializes the scanner's tty.
	DeviceNode string `yaml:"device_node"`

	// PortGlobs are the device file patterns searched when connecting
	// to the scanner, in preference order.
	PortGlobs []string `yaml:"port_globs"`
}

// Default returns the compiled-in configuration for a BC125AT on a
// stock Linux kernel.
func Default() Config {
	return Config{
		TopologySources: append([]string(nil), usbtopo.DefaultSources...),
		Match:           usbtopo.DefaultMatch,
		NewIDPath:       driverbind.DefaultNewIDPath,
		DeviceNode:      driverbind.DefaultDeviceNode,
		PortGlobs: []string{
			"/dev/serial/by-id/*BC125AT*",
			"/dev/ttyACM*",
		},
	}
}

// Load reads and parses the YAML file at path, filling unset fields
// with defaults. Unknown keys are an error: a typoed key silently
// falling back to a default is exactly the kind of override this
// package exists to avoid.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	defaults := Default()
	if len(cfg.TopologySources) == 0 {
		cfg.TopologySources = defaults.TopologySources
	}
	if cfg.Match == "" {
		cfg.Match = defaults.Match
	}
	if cfg.NewIDPath == "" {
		cfg.NewIDPath = defaults.NewIDPath
	}
	if cfg.DeviceNode == "" {
		cfg.DeviceNode = defaults.DeviceNode
	}
	if len(cfg.PortGlobs) == 0 {
		cfg.PortGlobs = defaults.PortGlobs
	}
	return cfg, nil
}

// Resolve picks the config source: the flag value if given, else the
// BC125_CONFIG environment variable, else compiled-in defaults. A path
// that is set but unreadable is an error, never a silent fallback.
func Resolve(flagPath string) (Config, error) {
	path := flagPath
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
