package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("burrow", pflag.ContinueOnError)
	addGlobalFlags(fs)
	addPlayFlags(fs)
	return fs
}

func TestResolveConfig_ShortFlags(t *testing.T) {
	chdir(t, t.TempDir())

	fs := playFlags()
	require.NoError(t, fs.Parse([]string{"-h", "game.example", "-p", "14000", "-r", "abc"}))

	cfg, err := resolveConfig(fs)
	require.NoError(t, err)
	assert.Equal(t, "game.example", cfg.Host)
	assert.Equal(t, 14000, cfg.Port)
	assert.Equal(t, "abc", cfg.Reservation)
	assert.Equal(t, "game.example:14000", cfg.Addr())
}

func TestResolveConfig_FlagsOverrideEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BURROW_HOST", "env.example")
	t.Setenv("BURROW_PORT", "15000")

	fs := playFlags()
	require.NoError(t, fs.Parse([]string{"--port", "16000", "--log-level", "trace"}))

	cfg, err := resolveConfig(fs)
	require.NoError(t, err)
	assert.Equal(t, "env.example", cfg.Host, "unset flag keeps the environment value")
	assert.Equal(t, 16000, cfg.Port)
	assert.Equal(t, "trace", cfg.Log.Level)
}

func TestResolveConfig_Invalid(t *testing.T) {
	chdir(t, t.TempDir())

	fs := playFlags()
	require.NoError(t, fs.Parse([]string{"-p", "0"}))

	_, err := resolveConfig(fs)
	assert.Error(t, err)
}

func TestCommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["version"])
	assert.True(t, names["inspect"])
	assert.Nil(t, rootCmd.PersistentFlags().ShorthandLookup("h"))

	assert.Equal(t, "host", rootCmd.Flags().ShorthandLookup("h").Name)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	versionCmd.Run(cmd, nil)
	assert.Contains(t, out.String(), "burrow version ")
}
