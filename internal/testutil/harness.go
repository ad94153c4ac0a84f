// Package testutil holds helpers shared by the application-level tests.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/lytgrid/internal/app"
	"github.com/specialistvlad/lytgrid/internal/hcl"
	"github.com/stretchr/testify/require"
)

// HarnessResult holds the outcome of a compile run.
type HarnessResult struct {
	Dir       string
	Output    *SafeBuffer
	LogOutput string
	Err       error
	App       *app.App
}

// WriteFiles writes files, keyed by slash-separated relative path, below dir.
func WriteFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// RunCompile writes files into a fresh directory and runs the app on it.
// Relative paths in cfg.Sources, cfg.ConfigPath and cfg.Output are taken
// relative to that directory; with no sources and no project file the whole
// directory is compiled. Logging is forced to debug.
func RunCompile(t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()
	return RunCompileWithContext(context.Background(), t, files, cfg)
}

// RunCompileWithContext is RunCompile with a caller-provided context.
func RunCompileWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()

	dir := t.TempDir()
	WriteFiles(t, dir, files)

	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, filepath.FromSlash(p))
	}
	if len(cfg.Sources) == 0 && cfg.ConfigPath == "" {
		cfg.Sources = []string{dir}
	}
	sources := make([]string, len(cfg.Sources))
	for i, s := range cfg.Sources {
		sources[i] = abs(s)
	}
	cfg.Sources = sources
	cfg.ConfigPath = abs(cfg.ConfigPath)
	cfg.Output = abs(cfg.Output)
	cfg.LogLevel = "debug"

	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	result := &HarnessResult{Dir: dir, Output: out}

	validated, err := app.NewConfig(cfg)
	require.NoError(t, err)
	result.App = app.NewApp(out, logs, validated, hcl.NewLoader())
	result.Err = result.App.Run(ctx)
	result.LogOutput = logs.String()

	t.Cleanup(func() {
		if os.Getenv("LYT_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), result.LogOutput)
		}
	})
	return result
}
