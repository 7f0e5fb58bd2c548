package config

import (
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

func TestLoad_FromFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeConfigFile(t, fs, "config.hcl", `
discourse {
  endpoint   = "https://forum.example.com"
  username   = "system"
  api_key    = "file-key"
  timeout    = "10s"
  tls_verify = false
}
`)

	cfg, err := load(fs, envconfig.MapLookuper(nil), "config.hcl")
	require.NoError(t, err)
	assert.Equal(t, "https://forum.example.com", cfg.Endpoint)
	assert.Equal(t, "system", cfg.Username)
	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	require.NotNil(t, cfg.TLSVerify)
	assert.False(t, *cfg.TLSVerify)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeConfigFile(t, fs, "config.hcl", `
discourse {
  endpoint = "https://forum.example.com"
  username = "system"
  api_key  = "file-key"
}
`)

	lookuper := envconfig.MapLookuper(map[string]string{
		"DISCOURSE_API_KEY": "env-key",
		"DISCOURSE_TIMEOUT": "42s",
	})

	cfg, err := load(fs, lookuper, "config.hcl")
	require.NoError(t, err)
	assert.Equal(t, "https://forum.example.com", cfg.Endpoint)
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, 42*time.Second, cfg.Timeout)
}

func TestLoad_EnvOnly(t *testing.T) {
	fs := afero.NewMemMapFs()

	lookuper := envconfig.MapLookuper(map[string]string{
		"DISCOURSE_ENDPOINT": "https://forum.example.com",
		"DISCOURSE_USERNAME": "system",
		"DISCOURSE_API_KEY":  "env-key",
	})

	cfg, err := load(fs, lookuper, "")
	require.NoError(t, err)
	assert.Equal(t, "https://forum.example.com", cfg.Endpoint)
	assert.Equal(t, "system", cfg.Username)
	assert.Equal(t, "env-key", cfg.APIKey)
	// Defaults survive when nothing overrides them.
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoad_MissingEndpoint(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := load(fs, envconfig.MapLookuper(nil), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoad_MissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := load(fs, envconfig.MapLookuper(nil), "nope.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_BadTimeoutInFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeConfigFile(t, fs, "config.hcl", `
discourse {
  endpoint = "https://forum.example.com"
  timeout  = "soon"
}
`)

	_, err := load(fs, envconfig.MapLookuper(nil), "config.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid timeout")
}
