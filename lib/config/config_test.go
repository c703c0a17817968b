// Copyright 2026 The bc125go Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/itsmaxymoo/bc125go/lib/usbtopo"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bc125.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Match != usbtopo.DefaultMatch {
		t.Errorf("Match = %q", cfg.Match)
	}
	if len(cfg.TopologySources) != 2 || cfg.TopologySources[0] != "/proc/bus/usb/devices" {
		t.Errorf("TopologySources = %v", cfg.TopologySources)
	}
	if cfg.DeviceNode != "/dev/ttyACM0" {
		t.Errorf("DeviceNode = %q", cfg.DeviceNode)
	}
}

func TestLoadOverridesAndFills(t *testing.T) {
	path := writeConfig(t, "device_node: /dev/ttyACM2\nmatch: BC125AT\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DeviceNode != "/dev/ttyACM2" {
		t.Errorf("DeviceNode = %q, want override", cfg.DeviceNode)
	}
	// Unset fields come back as defaults.
	if cfg.NewIDPath != Default().NewIDPath {
		t.Errorf("NewIDPath = %q, want default", cfg.NewIDPath)
	}
	if len(cfg.PortGlobs) == 0 {
		t.Error("PortGlobs not defaulted")
	}
}

func TestLoadEmptyFileIsAllDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Match != Default().Match {
		t.Errorf("Match = %q, want default", cfg.Match)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "device_nod: /dev/ttyACM2\n")
	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted a typoed key")
	}
}

func TestResolvePrecedence(t *testing.T) {
	flagPath := writeConfig(t, "device_node: /dev/from-flag\n")
	envPath := writeConfig(t, "device_node: /dev/from-env\n")
	t.Setenv(EnvVar, envPath)

	cfg, err := Resolve(flagPath)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.DeviceNode != "/dev/from-flag" {
		t.Errorf("flag should beat env, got %q", cfg.DeviceNode)
	}

	cfg, err = Resolve("")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.DeviceNode != "/dev/from-env" {
		t.Errorf("env should apply without flag, got %q", cfg.DeviceNode)
	}
}

func TestResolveMissingFileIsAnError(t *testing.T) {
	if _, err := Resolve(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Resolve silently ignored an explicit, unreadable path")
	}
}
