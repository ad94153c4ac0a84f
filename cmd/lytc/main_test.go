package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The project file has a syntax error, so app.NewApp panics while loading it.
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "lyt.hcl")
	err := os.WriteFile(filePath, []byte("sources = [\n  \"layouts\"\n"), 0600)
	require.NoError(t, err, "failed to set up test file")

	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(out, []string{"--config", filePath})

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error after recovering from a panic")
	require.Contains(t, runErr.Error(), "application startup panicked")
	require.Contains(t, runErr.Error(), "failed to parse")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	err := run(out, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	err := run(out, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_CompilesLayout(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	tempDir := t.TempDir()
	src := `@layout page {
  +--------+--------+
  | header | body   |
  +--------+--------+
}
`
	filePath := filepath.Join(tempDir, "page.lyt")
	require.NoError(t, os.WriteFile(filePath, []byte(src), 0600))
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, []string{"--log-level", "error", filePath})

	// --- Assert ---
	require.NoError(t, err)
	var report struct {
		Layouts []struct {
			Name string `json:"name"`
		} `json:"layouts"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	require.Len(t, report.Layouts, 1)
	require.Equal(t, "page", report.Layouts[0].Name)
}
