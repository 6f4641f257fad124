package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", "")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 13050, cfg.Port)
	assert.Equal(t, "swc_2018_hase_und_igel", cfg.GameType)
	assert.Equal(t, "localhost:13050", cfg.Addr())
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "burrow.yaml", `
host: game.example
port: 14000
reservation: from-file
log:
  level: debug
redis:
  addr: redis:6379
  ttl: 90s
redact_names: ["Student 7"]
`)
	dotenv := writeFile(t, dir, ".env", "BURROW_PORT=15000\nBURROW_RESERVATION=from-dotenv\nBURROW_LOG_FORMAT=json\n")
	t.Setenv("BURROW_RESERVATION", "from-env")

	cfg, err := Load(path, dotenv)
	require.NoError(t, err)

	assert.Equal(t, "game.example", cfg.Host, "file overrides default")
	assert.Equal(t, 15000, cfg.Port, "dotenv overrides file")
	assert.Equal(t, "from-env", cfg.Reservation, "environment overrides dotenv")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 90*time.Second, cfg.Redis.TTL)
	assert.Equal(t, []string{"Student 7"}, cfg.RedactNames)
}

func TestLoad_EnvList(t *testing.T) {
	t.Setenv("BURROW_REDACT_NAMES", "alice,bob")

	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, cfg.RedactNames)
}

func TestLoad_MissingDotenvIsIgnored(t *testing.T) {
	_, err := Load("", filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, err)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), "")
	assert.Error(t, err)
}

func TestLoad_JSONFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "burrow.json", `{"host":"json.example","port":1234}`)

	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "json.example:1234", cfg.Addr())
}

func TestLoad_BadEnvValue(t *testing.T) {
	t.Setenv("BURROW_PORT", "thirteen")

	_, err := Load("", "")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty host", func(c *Config) { c.Host = "" }},
		{"port zero", func(c *Config) { c.Port = 0 }},
		{"port too large", func(c *Config) { c.Port = 70000 }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }},
		{"two stores", func(c *Config) { c.SnapshotDir = "x"; c.Redis.Addr = "y" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, Default().Validate())
}
