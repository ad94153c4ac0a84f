package cli

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/lytgrid/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name       string
		args       []string
		expected   *app.Config
		shouldExit bool
		errMsg     string
	}{
		{
			name:     "positional sources",
			args:     []string{"a.lyt", "layouts"},
			expected: &app.Config{Sources: []string{"a.lyt", "layouts"}, Breakpoints: map[string]string{}},
		},
		{
			name: "every flag",
			args: []string{
				"-s", "one", "--source", "two,three",
				"-c", "lyt.hcl",
				"--layout", "base, dashboard",
				"--breakpoint", "sm=640px", "--breakpoint", "lg=80rem,md=1024px",
				"-o", "out.json",
				"--format", "MSGPACK",
				"--log-level", "debug",
				"--log-format", "json",
				"four",
			},
			expected: &app.Config{
				Sources:     []string{"one", "two", "three", "four"},
				ConfigPath:  "lyt.hcl",
				Layouts:     []string{"base", "dashboard"},
				Output:      "out.json",
				Format:      app.FormatMsgpack,
				LogLevel:    "debug",
				LogFormat:   "json",
				Breakpoints: map[string]string{"sm": "640px", "lg": "80rem", "md": "1024px"},
			},
		},
		{
			name:     "project file alone is enough",
			args:     []string{"--config", "lyt.hcl"},
			expected: &app.Config{ConfigPath: "lyt.hcl", Breakpoints: map[string]string{}},
		},
		{
			name:       "help",
			args:       []string{"-h"},
			shouldExit: true,
		},
		{
			name:       "no input prints usage",
			args:       nil,
			shouldExit: true,
		},
		{
			name:   "unknown flag",
			args:   []string{"--nope"},
			errMsg: "flag provided but not defined: -nope",
		},
		{
			name:   "malformed breakpoint",
			args:   []string{"--breakpoint", "sm", "a.lyt"},
			errMsg: "expected name=size",
		},
		{
			name:   "invalid format",
			args:   []string{"--format", "yaml", "a.lyt"},
			errMsg: `invalid format "yaml"`,
		},
		{
			name:   "invalid log level",
			args:   []string{"--log-level", "loud", "a.lyt"},
			errMsg: `invalid log-level "loud"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Arrange ---
			out := &bytes.Buffer{}

			// --- Act ---
			cfg, shouldExit, err := Parse(tc.args, out)

			// --- Assert ---
			if tc.errMsg != "" {
				require.Error(t, err)
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, 2, exitErr.Code)
				assert.Contains(t, exitErr.Error(), tc.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.shouldExit, shouldExit)
			if tc.shouldExit {
				assert.Nil(t, cfg)
				assert.Contains(t, out.String(), "Usage:")
				return
			}
			assert.Equal(t, tc.expected, cfg)
		})
	}
}
