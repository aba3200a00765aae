package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/adansuku/solidgo/internal/showcase"
	"github.com/adansuku/solidgo/principles/ocp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// reorderArgs tests
// ---------------------------------------------------------------------------

func TestReorderArgs_NoArgs(t *testing.T) {
	// No arguments: both slices stay nil and main() runs every showcase.
	flags, positional := reorderArgs(nil)
	assert.Nil(t, flags)
	assert.Nil(t, positional)
}

func TestReorderArgs_PositionalOnly(t *testing.T) {
	flags, positional := reorderArgs([]string{"liskov-substitution"})
	assert.Nil(t, flags)
	assert.Equal(t, []string{"liskov-substitution"}, positional)
}

func TestReorderArgs_FlagsBeforePositional(t *testing.T) {
	flags, positional := reorderArgs([]string{"-formats", "json", "open-closed"})
	assert.Equal(t, []string{"-formats", "json"}, flags)
	assert.Equal(t, []string{"open-closed"}, positional)
}

func TestReorderArgs_PositionalBeforeFlags(t *testing.T) {
	// The whole point of reorderArgs: allow positional args before flags.
	flags, positional := reorderArgs([]string{"open-closed", "-formats", "json"})
	assert.Equal(t, []string{"-formats", "json"}, flags)
	assert.Equal(t, []string{"open-closed"}, positional)
}

func TestReorderArgs_ValueFlagWithEquals(t *testing.T) {
	// When a value flag uses "=" syntax, the value is part of the same arg.
	flags, positional := reorderArgs([]string{"-diagram=out.mmd", "dependency-inversion"})
	assert.Equal(t, []string{"-diagram=out.mmd"}, flags)
	assert.Equal(t, []string{"dependency-inversion"}, positional)
}

func TestReorderArgs_AllValueFlags(t *testing.T) {
	// Exercise every flag that takes a value argument.
	args := []string{
		"-config", "solidgo.toml",
		"-formats", "json,yaml",
		"-only", "single-responsibility",
		"-diagram", "out.mmd",
		"-log-file", "app.log",
		"-log-level", "debug",
	}
	flags, positional := reorderArgs(args)
	assert.Equal(t, args, flags)
	assert.Nil(t, positional)
}

func TestReorderArgs_ValueFlagAtEnd(t *testing.T) {
	// If a value flag is at the very end with no following arg, it stays
	// as a flag (flag.Parse will report the error).
	flags, positional := reorderArgs([]string{"-formats"})
	assert.Equal(t, []string{"-formats"}, flags)
	assert.Nil(t, positional)
}

func TestReorderArgs_HelpFlag(t *testing.T) {
	// -help is not in valueFlagSet, so it must not consume the next arg.
	flags, positional := reorderArgs([]string{"-help", "open-closed"})
	assert.Equal(t, []string{"-help"}, flags)
	assert.Equal(t, []string{"open-closed"}, positional)
}

func TestReorderArgs_ComplexMix(t *testing.T) {
	// Realistic invocation: solidgo open-closed -formats json -diagram=out.mmd
	args := []string{"open-closed", "-formats", "json", "-diagram=out.mmd"}
	flags, positional := reorderArgs(args)
	assert.Equal(t, []string{"-formats", "json", "-diagram=out.mmd"}, flags)
	assert.Equal(t, []string{"open-closed"}, positional)
}

// ---------------------------------------------------------------------------
// selectRunners / splitList tests
// ---------------------------------------------------------------------------

func allRunners() []showcase.Runner {
	return showcase.All(ocp.DefaultRegistry(), []string{"text"})
}

func TestSelectRunners_EmptyKeepsAll(t *testing.T) {
	out, err := selectRunners(allRunners(), nil)
	require.NoError(t, err)
	assert.Len(t, out, 5)
}

func TestSelectRunners_SubsetInRequestedOrder(t *testing.T) {
	out, err := selectRunners(allRunners(), []string{"dependency-inversion", "single-responsibility"})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "dependency-inversion", out[0].Name)
	assert.Equal(t, "single-responsibility", out[1].Name)
}

func TestSelectRunners_UnknownName(t *testing.T) {
	_, err := selectRunners(allRunners(), []string{"srp"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown principle "srp"`)
	assert.Contains(t, err.Error(), "single-responsibility")
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"json", "yaml"}, splitList("json, yaml"))
	assert.Equal(t, []string{"text"}, splitList("text,"))
	assert.Nil(t, splitList(""))
}

// ---------------------------------------------------------------------------
// parseLogLevel tests
// ---------------------------------------------------------------------------

func TestParseLogLevel_ValidLevels(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"Error", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := parseLogLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestParseLogLevel_Invalid(t *testing.T) {
	_, err := parseLogLevel("trace")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}

// ---------------------------------------------------------------------------
// config file tests
// ---------------------------------------------------------------------------

func TestFileConfig_Decode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solidgo.toml")
	content := `
formats = ["json", "yaml"]
only = ["open-closed"]
diagram = "capabilities.mmd"
log_level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	var cfg fileConfig
	_, err := toml.DecodeFile(path, &cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"json", "yaml"}, cfg.Formats)
	assert.Equal(t, []string{"open-closed"}, cfg.Only)
	assert.Equal(t, "capabilities.mmd", cfg.Diagram)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
}
