package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/lytgrid/internal/config"
)

const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultFormat    = FormatJSON
)

// Report encodings.
const (
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
	FormatText    = "text"
)

// Config holds everything an App needs. Empty fields are filled from the
// project file, then from defaults.
type Config struct {
	// Sources are .lyt files or directories.
	Sources []string
	// ConfigPath is an optional HCL project file.
	ConfigPath string
	// Layouts restricts compilation to these names; empty means all.
	Layouts []string
	// Output is the report path; empty writes to the app's output writer.
	Output string
	Format string

	LogFormat string
	LogLevel  string

	// Breakpoints are project-wide defaults, name to size.
	Breakpoints map[string]string
	// Overrides limits the breakpoints compiled per layout.
	Overrides map[string][]string
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Sources) == 0 && cfg.ConfigPath == "" {
		return nil, errors.New("at least one layout source or a project file is required")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel)
	}
	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", c.LogFormat)
	}
	switch c.Format {
	case "", FormatJSON, FormatMsgpack, FormatText:
	default:
		return fmt.Errorf("invalid format %q: must be 'json', 'msgpack' or 'text'", c.Format)
	}
	return nil
}

// withProject returns cfg layered over the project model: values already set
// on cfg win, the rest come from m.
func (c *Config) withProject(m *config.Model) *Config {
	out := *c
	if m == nil {
		return &out
	}
	if len(out.Sources) == 0 {
		out.Sources = m.Sources
	}
	if len(out.Layouts) == 0 {
		out.Layouts = m.Layouts
	}
	if out.Output == "" {
		out.Output = m.Output
	}
	if out.Format == "" {
		out.Format = m.Format
	}
	if out.LogLevel == "" {
		out.LogLevel = m.LogLevel
	}
	if out.LogFormat == "" {
		out.LogFormat = m.LogFormat
	}

	bps := make(map[string]string, len(m.Breakpoints)+len(c.Breakpoints))
	for k, v := range m.Breakpoints {
		bps[k] = v
	}
	for k, v := range c.Breakpoints {
		bps[k] = v
	}
	out.Breakpoints = bps

	overrides := make(map[string][]string, len(m.Overrides)+len(c.Overrides))
	for name, o := range m.Overrides {
		overrides[name] = o.Breakpoints
	}
	for name, bps := range c.Overrides {
		overrides[name] = bps
	}
	out.Overrides = overrides
	return &out
}

// withDefaults fills the remaining empty fields.
func (c *Config) withDefaults() *Config {
	out := *c
	if out.LogLevel == "" {
		out.LogLevel = DefaultLogLevel
	}
	if out.LogFormat == "" {
		out.LogFormat = DefaultLogFormat
	}
	if out.Format == "" {
		out.Format = DefaultFormat
	}
	return &out
}
