// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/emer/reservoir/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestDefaultsCmd(t *testing.T) {
	out, err := execute(t, "defaults")
	require.NoError(t, err)
	cfg, err := config.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, config.New(), cfg)
}

func TestRunCmd(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "small.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("nexcitatory: 12\nninhibitory: 4\nconnprob: 0.3\n"), 0644))

	out, err := execute(t, "run", "--config", fn, "--cycles", "50", "--json")
	require.NoError(t, err)
	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 50.0, res["cycles"])
	assert.Equal(t, 20.0, res["neurons"])

	out, err = execute(t, "run", "--config", fn, "--cycles", "20", "--threads", "2", "--timers")
	require.NoError(t, err)
	assert.Contains(t, out, "Efficacy:")
	assert.Contains(t, out, "TimerReport")
}

func TestRunCmdErrors(t *testing.T) {
	_, err := execute(t, "run", "--cycles", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NCycles = 0")

	_, err = execute(t, "run", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
