package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	require.NoError(t, err)

	assert.Equal(t, defaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, defaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, defaultLogLevel, cfg.LogLevel)
	assert.Equal(t, defaultFormat, cfg.Format)
	assert.Equal(t, DefaultSpecies, cfg.Species)
	assert.True(t, cfg.DropStaleResults)

	wantLogFile, err := expandPath(defaultLogFile)
	require.NoError(t, err)
	assert.Equal(t, wantLogFile, cfg.LogFile)
}

func TestLoad_DefaultSpeciesIsACopy(t *testing.T) {
	cfg := Default()
	cfg.Species[0] = "missingno"
	assert.Equal(t, "bulbasaur", DefaultSpecies[0])
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
api_base_url = "  http://localhost:8000/api/v2  "
request_timeout = " 3s "
log_file = "  ~/.dexview/dexview.log  "
log_level = " DEBUG "
format = " HTML "
species = [" Pikachu ", "", "ditto", "pikachu"]
drop_stale_results = false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000/api/v2", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.True(t, strings.HasPrefix(cfg.LogFile, home), "LogFile %q should be under HOME", cfg.LogFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "html", cfg.Format)
	assert.Equal(t, []string{"Pikachu", "ditto"}, cfg.Species)
	assert.False(t, cfg.DropStaleResults)
}

func TestLoad_ZeroTimeoutDisablesIt(t *testing.T) {
	cfg, err := Load(writeConfig(t, `request_timeout = "0s"`))
	require.NoError(t, err)
	assert.Zero(t, cfg.RequestTimeout)
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(writeConfig(t, `
api_base_url = "   "
request_timeout = ""
log_level = ""
species = ["  ", ""]
`))
	require.NoError(t, err)
	assert.Equal(t, defaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, defaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, defaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultSpecies, cfg.Species)
}

func TestLoad_InvalidValuesFail(t *testing.T) {
	cases := map[string]string{
		"parse config":    `api_base_url = [`,
		"request_timeout": `request_timeout = "soon"`,
		"must be >= 0":    `request_timeout = "-1s"`,
	}
	for want, body := range cases {
		_, err := Load(writeConfig(t, body))
		require.Error(t, err, body)
		assert.Contains(t, err.Error(), want)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "a/b"), got)
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	_, err := expandPath("   ")
	assert.Error(t, err)
}
