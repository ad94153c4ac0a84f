package app

import (
	"testing"

	"github.com/specialistvlad/lytgrid/internal/config"
	"github.com/specialistvlad/lytgrid/internal/model"
	"github.com/specialistvlad/lytgrid/internal/responsive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "sources only", cfg: Config{Sources: []string{"layouts"}}},
		{name: "project file only", cfg: Config{ConfigPath: "lyt.hcl"}},
		{name: "nothing to compile", cfg: Config{}, wantErr: "at least one layout source"},
		{name: "bad log level", cfg: Config{Sources: []string{"a"}, LogLevel: "loud"}, wantErr: "invalid log-level"},
		{name: "bad log format", cfg: Config{Sources: []string{"a"}, LogFormat: "xml"}, wantErr: "invalid log-format"},
		{name: "bad report format", cfg: Config{Sources: []string{"a"}, Format: "yaml"}, wantErr: "invalid format"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewConfig(tc.cfg)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Nil(t, cfg)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.cfg.Sources, cfg.Sources)
		})
	}
}

func TestConfig_WithProject(t *testing.T) {
	// --- Arrange ---
	flags := &Config{
		ConfigPath:  "lyt.hcl",
		LogLevel:    "debug",
		Breakpoints: map[string]string{"md": "900px"},
		Overrides:   map[string][]string{"page": {"sm"}},
	}
	project := &config.Model{
		Sources:     []string{"/p/layouts"},
		Layouts:     []string{"page"},
		Output:      "/p/out.json",
		Format:      FormatText,
		LogLevel:    "warn",
		LogFormat:   "json",
		Breakpoints: map[string]string{"sm": "640px", "md": "1024px"},
		Overrides: map[string]*config.LayoutOverride{
			"page": {Name: "page", Breakpoints: []string{"md"}},
			"home": {Name: "home", Breakpoints: []string{"lg"}},
		},
	}

	// --- Act ---
	got := flags.withProject(project).withDefaults()

	// --- Assert ---
	assert.Equal(t, []string{"/p/layouts"}, got.Sources)
	assert.Equal(t, []string{"page"}, got.Layouts)
	assert.Equal(t, "/p/out.json", got.Output)
	assert.Equal(t, FormatText, got.Format)
	assert.Equal(t, "debug", got.LogLevel, "flag wins")
	assert.Equal(t, "json", got.LogFormat)
	assert.Equal(t, map[string]string{"sm": "640px", "md": "900px"}, got.Breakpoints)
	assert.Equal(t, map[string][]string{"page": {"sm"}, "home": {"lg"}}, got.Overrides)

	// The receiver is left alone.
	assert.Empty(t, flags.Sources)
	assert.Len(t, flags.Breakpoints, 1)
}

func TestConfig_WithDefaults(t *testing.T) {
	got := (&Config{}).withDefaults()
	assert.Equal(t, DefaultLogLevel, got.LogLevel)
	assert.Equal(t, DefaultLogFormat, got.LogFormat)
	assert.Equal(t, FormatJSON, got.Format)
}

func TestApp_SelectBreakpoints(t *testing.T) {
	ordered := []model.Breakpoint{{Name: "lg"}, {Name: "md"}, {Name: "sm"}}
	a := &App{config: &Config{Overrides: map[string][]string{
		"page":  {"sm", "lg"},
		"empty": {},
		"bad":   {"sm", "zz", "aa"},
	}}}

	got, err := a.selectBreakpoints("page", ordered)
	require.NoError(t, err)
	assert.Equal(t, []model.Breakpoint{{Name: "lg"}, {Name: "sm"}}, got)

	got, err = a.selectBreakpoints("other", ordered)
	require.NoError(t, err)
	assert.Equal(t, ordered, got)

	got, err = a.selectBreakpoints("empty", ordered)
	require.NoError(t, err)
	assert.Equal(t, ordered, got)

	_, err = a.selectBreakpoints("bad", ordered)
	assert.ErrorIs(t, err, responsive.ErrUnknownBreakpoint)
	assert.Contains(t, err.Error(), "[aa zz]")
}
