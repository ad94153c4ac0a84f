package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/lytgrid/internal/app"
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// stringList is a repeatable, comma-separated flag.
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*l = append(*l, part)
		}
	}
	return nil
}

// breakpointFlag collects name=size pairs.
type breakpointFlag map[string]string

func (b breakpointFlag) String() string {
	parts := make([]string, 0, len(b))
	for k, v := range b {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

func (b breakpointFlag) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		name, size, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok || name == "" || size == "" {
			return fmt.Errorf("expected name=size, got %q", part)
		}
		b[name] = size
	}
	return nil
}

// Parse processes command-line arguments. It returns the configuration, a
// flag telling the caller to exit cleanly (help or no input), or an
// *ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("lytc", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
lytc - compiles ASCII .lyt layouts into per-breakpoint grid reports.

Usage:
  lytc [options] [SOURCE ...]

Arguments:
  SOURCE
    A .lyt file or a directory searched recursively for .lyt files.

Options:
`)
		flagSet.PrintDefaults()
	}

	var sources, layouts stringList
	breakpoints := breakpointFlag{}
	flagSet.Var(&sources, "source", "Layout file or directory. Repeatable.")
	flagSet.Var(&sources, "s", "Layout file or directory (shorthand).")
	configFlag := flagSet.String("config", "", "Path to an HCL project file.")
	cFlag := flagSet.String("c", "", "Path to an HCL project file (shorthand).")
	flagSet.Var(&layouts, "layout", "Comma-separated layouts to compile. Default: all.")
	flagSet.Var(breakpoints, "breakpoint", "Project-wide breakpoint as name=size. Repeatable.")
	outputFlag := flagSet.String("output", "", "Write the report to this file instead of stdout.")
	oFlag := flagSet.String("o", "", "Write the report to this file (shorthand).")
	formatFlag := flagSet.String("format", "", "Report format. Options: 'json', 'msgpack' or 'text'. Default: json.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'. Default: text.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'. Default: info.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	sources = append(sources, flagSet.Args()...)
	configPath := firstNonEmpty(*configFlag, *cFlag)
	if len(sources) == 0 && configPath == "" {
		slog.Debug("No sources provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	cfg, err := app.NewConfig(app.Config{
		Sources:     sources,
		ConfigPath:  configPath,
		Layouts:     layouts,
		Output:      firstNonEmpty(*outputFlag, *oFlag),
		Format:      strings.ToLower(*formatFlag),
		LogFormat:   strings.ToLower(*logFormatFlag),
		LogLevel:    strings.ToLower(*logLevelFlag),
		Breakpoints: breakpoints,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
