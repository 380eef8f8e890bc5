package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathdiv/internal/config"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("edges", "", "")
	fs.String("nodes", "", "")
	fs.IntP("k", "k", config.DefaultK, "")
	fs.String("log-level", config.DefaultLogLevel, "")
	require.NoError(t, fs.Parse(args))

	return fs
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PATHDIV_EDGES", "edges.txt")

	cfg, err := config.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "edges.txt", cfg.Edges)
	assert.Equal(t, config.DefaultK, cfg.K)
	assert.Equal(t, config.DefaultListen, cfg.Listen)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "auto", cfg.LogFormat)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestLoad_EnvAndFlags(t *testing.T) {
	t.Setenv("PATHDIV_NETWORK", "campus.yaml")
	t.Setenv("PATHDIV_K", "3")
	t.Setenv("PATHDIV_LOG_LEVEL", "warn")
	t.Setenv("PATHDIV_SESSION_TTL", "90s")
	t.Setenv("PATHDIV_CORS_ORIGINS", "http://localhost:3000, http://example.test ,")

	cfg, err := config.Load(newFlags(t, "-k", "7"))
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.K, "a changed flag beats the environment")
	assert.Equal(t, "warn", cfg.LogLevel, "an unchanged flag does not hide the environment")
	assert.Equal(t, 90*time.Second, cfg.SessionTTL)
	assert.Equal(t, []string{"http://localhost:3000", "http://example.test"}, cfg.CORSOrigins)
	assert.Equal(t, "campus.yaml", cfg.Source().Document)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{name: "no source"},
		{name: "nodes without edges", args: []string{"--nodes", "nodes.txt"}},
		{name: "bad k", env: map[string]string{"PATHDIV_EDGES": "e.txt"}, args: []string{"-k", "0"}},
		{name: "bad format", env: map[string]string{"PATHDIV_EDGES": "e.txt", "PATHDIV_LOG_FORMAT": "xml"}},
		{name: "bad ttl", env: map[string]string{"PATHDIV_EDGES": "e.txt", "PATHDIV_SESSION_TTL": "-1m"}},
		{name: "wildcard cors", env: map[string]string{"PATHDIV_EDGES": "e.txt", "PATHDIV_CORS_ORIGINS": "*"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := config.Load(newFlags(t, tt.args...))
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PATHDIV_TEST_ONLY_KEY=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("PATHDIV_TEST_ONLY_KEY") })

	require.NoError(t, config.LoadEnvFile(path))
	assert.Equal(t, "from-file", os.Getenv("PATHDIV_TEST_ONLY_KEY"))

	require.Error(t, config.LoadEnvFile(filepath.Join(dir, "missing.env")), "an explicit file must exist")
}

func TestLoadEnvFile_DefaultMayBeMissing(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	require.NoError(t, config.LoadEnvFile(""))
}
