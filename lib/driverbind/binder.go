// Copyright 2026 The bc125go Authors
// SPDX-License-Identifier: Apache-2.0

package driverbind

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/itsmaxymoo/bc125go/lib/clock"
	"github.com/itsmaxymoo/bc125go/lib/usbtopo"
)

const (
	// DefaultNewIDPath is the CDC-ACM driver's dynamic id registration
	// interface.
	DefaultNewIDPath = "/sys/bus/usb/drivers/cdc_acm/new_id"

	// DefaultDeviceNode is where the kernel materializes the scanner's
	// tty once the binding takes effect.
	DefaultDeviceNode = "/dev/ttyACM0"

	// SettleDelay is how long to wait between the new_id write and the
	// chown. The kernel creates the device node asynchronously;
	// empirically a chown issued sooner may not take effect. A fixed
	// wait, not a poll; see the package comment.
	SettleDelay = 250 * time.Millisecond

	// newIDTrailer completes the registration record: interface class
	// 02 (communications) plus the id pair of a known ACM modem whose
	// dynamic-id entry the driver reuses. Inherited from bc125at-perl.
	newIDTrailer = "2 076d 0006"
)

// ErrEscalationFailed indicates setuid(0) did not yield an effective
// root identity. The binary is probably not installed setuid-root.
var ErrEscalationFailed = errors.New("could not escalate to superuser")

// NewIDRecord formats the registration record for the given identifier
// pair: hex vendor and product ids followed by the fixed trailer, in
// the field order the new_id interface expects.
func NewIDRecord(ids usbtopo.Identifiers) string {
	return fmt.Sprintf("%s %s %s", ids.Vendor, ids.Product, newIDTrailer)
}

// Phase is the binder's position in the privileged sequence.
type Phase int

const (
	PhaseUnprivileged Phase = iota
	PhaseEscalating
	PhasePrivileged
	PhaseRestoring
	PhaseDone
	PhaseEscalationFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseUnprivileged:
		return "unprivileged"
	case PhaseEscalating:
		return "escalating"
	case PhasePrivileged:
		return "privileged"
	case PhaseRestoring:
		return "restoring"
	case PhaseDone:
		return "done"
	case PhaseEscalationFailed:
		return "escalation-failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Registrar issues the driver-binding command to the OS device
// subsystem. The real implementation writes to the cdc_acm new_id
// file; tests record the call instead.
type Registrar interface {
	Register(record string) error
}

// Identity exposes the process credential primitives the binder needs,
// with POSIX setuid/seteuid semantics.
type Identity interface {
	RealUser() int
	RealGroup() int
	EffectiveUser() int

	// SetUser sets the real, effective, and saved user ids (setuid).
	SetUser(uid int) error

	// SetEffectiveUser sets only the effective user id (seteuid).
	SetEffectiveUser(uid int) error
}

// NodeOwner changes ownership of a device node.
type NodeOwner interface {
	Chown(path string, uid, gid int) error
}

// IdentityContext is the invoking user's real credentials, captured
// before escalation. It is the only record of who to hand the device
// node to: after setuid(0) the process no longer knows.
type IdentityContext struct {
	UID int
	GID int
}

// Config wires a Binder's dependencies. Registrar, Identity, and Owner
// are required; Clock defaults to the real clock, Logger to
// slog.Default(), DeviceNode to DefaultDeviceNode.
type Config struct {
	Registrar  Registrar
	Identity   Identity
	Owner      NodeOwner
	Clock      clock.Clock
	Logger     *slog.Logger
	DeviceNode string
}

// Binder performs the privileged binding sequence. Not safe for
// concurrent use; the sequence is inherently single-shot.
type Binder struct {
	registrar  Registrar
	identity   Identity
	owner      NodeOwner
	clock      clock.Clock
	logger     *slog.Logger
	deviceNode string
	phase      Phase
}

// New returns a Binder in PhaseUnprivileged.
func New(cfg Config) *Binder {
	if cfg.Clock == nil {
		cfg.Clock = clock.Real()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.DeviceNode == "" {
		cfg.DeviceNode = DefaultDeviceNode
	}
	return &Binder{
		registrar:  cfg.Registrar,
		identity:   cfg.Identity,
		owner:      cfg.Owner,
		clock:      cfg.Clock,
		logger:     cfg.Logger,
		deviceNode: cfg.DeviceNode,
		phase:      PhaseUnprivileged,
	}
}

// Phase returns the binder's current phase.
func (b *Binder) Phase() Phase { return b.phase }

// Bind runs the full sequence: capture the invoker's identity,
// escalate, register the id pair, wait out the settle delay, and chown
// the device node back to the invoker. Returns ErrEscalationFailed if
// root cannot be acquired; every later step degrades to a warning.
func (b *Binder) Bind(ids usbtopo.Identifiers) error {
	// Capture before any credential change. This is the only chance:
	// setuid(0) overwrites the real ids too.
	original := IdentityContext{
		UID: b.identity.RealUser(),
		GID: b.identity.RealGroup(),
	}

	b.phase = PhaseEscalating
	if err := b.identity.SetUser(0); err != nil {
		b.logger.Debug("setuid returned an error", "error", err)
	}
	if b.identity.EffectiveUser() != 0 {
		b.phase = PhaseEscalationFailed
		return ErrEscalationFailed
	}

	b.phase = PhasePrivileged
	record := NewIDRecord(ids)
	b.logger.Debug("registering scanner with cdc_acm", "record", record)
	if err := b.registrar.Register(record); err != nil {
		// Fire-and-forget: the kernel never confirms the binding
		// synchronously anyway, so a failed write is not fatal here.
		b.logger.Warn("driver registration write failed", "error", err)
	}

	b.clock.Sleep(SettleDelay)

	b.phase = PhaseRestoring
	if err := b.owner.Chown(b.deviceNode, original.UID, original.GID); err != nil {
		b.logger.Warn("could not hand device node to invoking user",
			"path", b.deviceNode, "uid", original.UID, "gid", original.GID,
			"error", err)
	}

	// Drop effective root before returning. Bc125at-perl's helper
	// exits still privileged; restoring the invoker's effective id is
	// a deliberate hardening change, and a failure to do so is not
	// worth failing the whole run over.
	if err := b.identity.SetEffectiveUser(original.UID); err != nil {
		b.logger.Warn("could not drop effective root", "uid", original.UID,
			"error", err)
	}

	b.phase = PhaseDone
	return nil
}
