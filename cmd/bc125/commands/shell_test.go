// Copyright 2026 The bc125go Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"strings"
	"testing"
)

type cannedRunner struct {
	responses map[string]string
	sent      []string
}

func (r *cannedRunner) ExecRaw(command string) (string, error) {
	r.sent = append(r.sent, command)
	if response, ok := r.responses[command]; ok {
		return response, nil
	}
	return command + ",ERR", nil
}

func TestRunShellRoundTrip(t *testing.T) {
	runner := &cannedRunner{responses: map[string]string{"MDL": "MDL,BC125AT"}}
	in := strings.NewReader("MDL\nexit\n")
	var out strings.Builder

	if err := runShell(in, &out, runner); err != nil {
		t.Fatalf("runShell: %v", err)
	}
	if len(runner.sent) != 1 || runner.sent[0] != "MDL" {
		t.Errorf("sent = %v", runner.sent)
	}
	if !strings.Contains(out.String(), "MDL,BC125AT") {
		t.Errorf("output missing raw response:\n%s", out.String())
	}
}

func TestRunShellSkipsBlankAndStopsAtEOF(t *testing.T) {
	runner := &cannedRunner{}
	in := strings.NewReader("\n   \n")
	var out strings.Builder

	if err := runShell(in, &out, runner); err != nil {
		t.Fatalf("runShell: %v", err)
	}
	if len(runner.sent) != 0 {
		t.Errorf("blank lines were sent: %v", runner.sent)
	}
}

func TestRunShellShowsErrorResponses(t *testing.T) {
	runner := &cannedRunner{}
	in := strings.NewReader("BOGUS\nquit\n")
	var out strings.Builder

	if err := runShell(in, &out, runner); err != nil {
		t.Fatalf("runShell: %v", err)
	}
	if !strings.Contains(out.String(), "BOGUS,ERR") {
		t.Errorf("raw ERR response not shown:\n%s", out.String())
	}
}
