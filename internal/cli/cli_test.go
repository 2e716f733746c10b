package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/compgrid/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want *app.Config
	}{
		{
			name: "positional path with defaults",
			args: []string{"grid.hcl"},
			want: &app.Config{ConfigPath: "grid.hcl", LogFormat: "json", LogLevel: "info"},
		},
		{
			name: "long flag wins over shorthand and positional",
			args: []string{"-config", "a.hcl", "-c", "b.hcl", "c.hcl"},
			want: &app.Config{ConfigPath: "a.hcl", LogFormat: "json", LogLevel: "info"},
		},
		{
			name: "all options",
			args: []string{"-c", "dir", "--log-level", "DEBUG", "--log-format", "text", "--healthcheck-port", "8080", "--hold", "--dry-run"},
			want: &app.Config{
				ConfigPath:      "dir",
				LogFormat:       "text",
				LogLevel:        "debug",
				HealthcheckPort: 8080,
				Hold:            true,
				DryRun:          true,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, shouldExit, err := Parse(tc.args, &out)
			require.NoError(t, err)
			assert.False(t, shouldExit)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_ShouldExit(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {}} {
		var out bytes.Buffer
		cfg, shouldExit, err := Parse(args, &out)
		require.NoError(t, err)
		assert.True(t, shouldExit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "unknown flag", args: []string{"--nope"}, wantMsg: "flag provided but not defined"},
		{name: "bad format", args: []string{"--log-format", "xml", "a.hcl"}, wantMsg: "invalid log-format"},
		{name: "bad level", args: []string{"--log-level", "loud", "a.hcl"}, wantMsg: "invalid log-level"},
		{name: "bad port", args: []string{"--healthcheck-port", "-1", "a.hcl"}, wantMsg: "out of range"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			_, _, err := Parse(tc.args, &out)
			require.Error(t, err)

			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}
