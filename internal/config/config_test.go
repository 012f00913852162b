package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout.Std())
	assert.NotEmpty(t, cfg.CredentialsPath)
	require.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := "api_base_url: https://staging.barhop.app\nrequest_timeout: 10s\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "https://staging.barhop.app", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout.Std())
	assert.Equal(t, "debug", cfg.LogLevel)
	// Untouched fields keep their defaults.
	assert.NotEmpty(t, cfg.CredentialsPath)
}

func TestLoadFileMissingIsNotError(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
}

func TestLoadFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_base_url: [broken"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_base_url: https://file.barhop.app\n"), 0o644))

	t.Setenv("BARHOP_API_URL", "https://env.barhop.app")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.barhop.app", cfg.APIBaseURL)
}

func TestValidate(t *testing.T) {
	cfg := Default()

	cfg.APIBaseURL = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.RequestTimeout = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.CredentialsPath = ""
	assert.Error(t, cfg.Validate())
}

func TestWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := Default()
	cfg.APIBaseURL = "https://example.barhop.app"
	require.NoError(t, cfg.Write(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.barhop.app", loaded.APIBaseURL)
}
