package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, []string{"FUNCTOOLS_NO_COLOR=true"}, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunDefaultSuite(t *testing.T) {
	code, out, _ := runCLI(t)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "functools demo")
	assert.Contains(t, out, "square list (process): [1 4 9]")
	assert.Contains(t, out, "join words (combine): Python is cool")
	assert.Contains(t, out, "15 scenarios, 11 ok, 4 failed")
}

func TestRunStrict(t *testing.T) {
	code, _, _ := runCLI(t, "--strict")
	assert.Equal(t, exitFailures, code)

	code, _, _ = runCLI(t, "--strict", "--only", "square")
	assert.Equal(t, exitOK, code)
}

func TestRunJSON(t *testing.T) {
	code, out, _ := runCLI(t, "--json", "--only", "even")
	require.Equal(t, exitOK, code)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "[2 4]", got[0]["output"])
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
scenarios:
  - {name: shout, call: process, kind: list, data: [hi], op: upper}
`), 0o600))

	code, out, _ := runCLI(t, "-f", path)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "shout (process): [HI]")
}

func TestRunErrors(t *testing.T) {
	code, _, stderr := runCLI(t, "-f", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, exitConfig, code)
	assert.Contains(t, stderr, "load scenarios")

	code, _, _ = runCLI(t, "--log-level", "loud")
	assert.Equal(t, exitConfig, code)
}

func TestRunVersion(t *testing.T) {
	code, out, _ := runCLI(t, "--version")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "functools dev\n", out)
}
