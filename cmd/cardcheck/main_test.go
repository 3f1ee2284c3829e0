package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunVersion(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-version"}, &out))
	require.Contains(t, out.String(), "Version:    dev")
}

func TestRunPrintConfigAppliesFlags(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("CARDCHECK_CONFIG", "")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var out bytes.Buffer
	require.NoError(t, run([]string{"-print-config", "-mode", "WEB", "-addr", "127.0.0.1:9090"}, &out))
	require.Contains(t, out.String(), `mode = "web"`)
	require.Contains(t, out.String(), `addr = "127.0.0.1:9090"`)
}

func TestRunRejectsUnknownMode(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CARDCHECK_CONFIG", "")
	require.ErrorContains(t, run([]string{"-mode", "gui"}, &bytes.Buffer{}), "ui.mode")
}

func TestRunRejectsPublicAddr(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CARDCHECK_CONFIG", "")
	err := run([]string{"-mode", "web", "-addr", ":8080"}, &bytes.Buffer{})
	require.ErrorContains(t, err, "web.addr")
}
