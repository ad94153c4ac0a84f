package config

import "context"

// Loader reads project files and merges them, later files winning, into a
// single Model.
type Loader interface {
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// Model is the project configuration. Empty fields mean "not set" so that
// command-line flags can be layered on top.
type Model struct {
	// Sources are .lyt files or directories, relative paths already resolved
	// against the project file's directory.
	Sources []string
	// Layouts restricts compilation to the named layouts.
	Layouts []string
	// Breakpoints are project-wide defaults; a layout's own breakpoints win.
	Breakpoints map[string]string
	Overrides   map[string]*LayoutOverride
	Output      string
	// Format is the report encoding: json, msgpack or text.
	Format      string
	LogLevel    string
	LogFormat   string
}

// LayoutOverride holds per-layout settings from a `layout "name" {}` block.
type LayoutOverride struct {
	Name string
	// Breakpoints limits the breakpoints compiled for the layout.
	Breakpoints []string
}

// NewModel returns an empty model with its maps allocated.
func NewModel() *Model {
	return &Model{
		Breakpoints: make(map[string]string),
		Overrides:   make(map[string]*LayoutOverride),
	}
}

// Merge overlays other onto m. Scalars and lists replace when set; maps merge
// by key.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	if len(other.Sources) > 0 {
		m.Sources = other.Sources
	}
	if len(other.Layouts) > 0 {
		m.Layouts = other.Layouts
	}
	if m.Breakpoints == nil {
		m.Breakpoints = make(map[string]string)
	}
	for k, v := range other.Breakpoints {
		m.Breakpoints[k] = v
	}
	if m.Overrides == nil {
		m.Overrides = make(map[string]*LayoutOverride)
	}
	for k, v := range other.Overrides {
		m.Overrides[k] = v
	}
	if other.Output != "" {
		m.Output = other.Output
	}
	if other.Format != "" {
		m.Format = other.Format
	}
	if other.LogLevel != "" {
		m.LogLevel = other.LogLevel
	}
	if other.LogFormat != "" {
		m.LogFormat = other.LogFormat
	}
}
