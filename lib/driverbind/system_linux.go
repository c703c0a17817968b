// Copyright 2026 The bc125go Authors
// SPDX-License-Identifier: Apache-2.0

package driverbind

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"golang.org/x/sys/unix"
)

// SysfsRegistrar writes registration records to the CDC-ACM driver's
// new_id file.
type SysfsRegistrar struct {
	// Path of the new_id file. Empty means DefaultNewIDPath.
	Path string
}

func (r SysfsRegistrar) Register(record string) error {
	path := r.Path
	if path == "" {
		path = DefaultNewIDPath
	}

	// The directory appears once the cdc_acm module is loaded. Creating
	// it cannot hurt and sidesteps a missing-module race on some
	// systems; errors here surface through the open below.
	_ = os.MkdirAll(filepath.Dir(path), 0755)

	file, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	if _, err := fmt.Fprintln(file, record); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ProcessIdentity is the real process credential interface.
type ProcessIdentity struct{}

func (ProcessIdentity) RealUser() int      { return unix.Getuid() }
func (ProcessIdentity) RealGroup() int     { return unix.Getgid() }
func (ProcessIdentity) EffectiveUser() int { return unix.Geteuid() }

func (ProcessIdentity) SetUser(uid int) error { return unix.Setuid(uid) }

func (ProcessIdentity) SetEffectiveUser(uid int) error { return syscall.Seteuid(uid) }

// FSNodeOwner chowns real filesystem nodes.
type FSNodeOwner struct{}

func (FSNodeOwner) Chown(path string, uid, gid int) error {
	return unix.Chown(path, uid, gid)
}
