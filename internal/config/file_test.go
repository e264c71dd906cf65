package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, body string) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

const tomlBody = `
[app]
environment = "staging"
debug = true
secret_key = "toml-secret"

[server]
host = "10.0.0.2"
port = 8081
read_timeout = "3s"
write_timeout = "4s"
idle_timeout = "2m"
shutdown_timeout = "15s"
`

const yamlBody = `
app:
  environment: staging
  debug: true
  secret_key: yaml-secret
server:
  host: 10.0.0.3
  port: 8082
  read_timeout: 3s
  write_timeout: 4s
  idle_timeout: 2m
  shutdown_timeout: 15s
`

func TestParseFile_FormatByExtension(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		body       string
		wantHost   string
		wantPort   int
		wantSecret string
	}{
		{name: "toml", file: "config.toml", body: tomlBody, wantHost: "10.0.0.2", wantPort: 8081, wantSecret: "toml-secret"},
		{name: "yaml", file: "config.yaml", body: yamlBody, wantHost: "10.0.0.3", wantPort: 8082, wantSecret: "yaml-secret"},
		{name: "yml upper case", file: "CONFIG.YML", body: yamlBody, wantHost: "10.0.0.3", wantPort: 8082, wantSecret: "yaml-secret"},
		{
			name:       "no extension falls back to json",
			file:       "config",
			body:       `{"app": {"secret_key": "json-secret"}, "server": {"host": "10.0.0.4", "port": 8083}}`,
			wantHost:   "10.0.0.4",
			wantPort:   8083,
			wantSecret: "json-secret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFile(writeTempFile(t, tt.file, tt.body))

			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, cfg.Server.Host)
			assert.Equal(t, tt.wantPort, cfg.Server.Port)
			assert.Equal(t, tt.wantSecret, cfg.App.SecretKey)
		})
	}
}

func TestParseTOML_AllFields(t *testing.T) {
	cfg, err := parseTOML(writeTempFile(t, "config.toml", tomlBody))

	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.App.Environment)
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 4*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Server.IdleTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
	assert.Empty(t, cfg.FilePath)
}

func TestParseTOML_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "syntax", body: "[server\nport = 1", wantMsg: "error decoding toml configs"},
		{name: "unknown key", body: "[server]\nlisten = \"x\"", wantMsg: "unknown keys server.listen"},
		{name: "bad duration", body: "[server]\nread_timeout = \"forever\"", wantMsg: "error decoding toml configs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseTOML(writeTempFile(t, "config.toml", tt.body))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParseTOML_FileNotFound(t *testing.T) {
	_, err := parseTOML(filepath.Join(t.TempDir(), "missing.toml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a toml file")
}

func TestParseYAML_AllFields(t *testing.T) {
	cfg, err := parseYAML(writeTempFile(t, "config.yaml", yamlBody))

	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.App.Environment)
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
}

func TestParseYAML_EmptyFile(t *testing.T) {
	cfg, err := parseYAML(writeTempFile(t, "config.yaml", ""))

	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseYAML_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown key", body: "server:\n  listen: x\n"},
		{name: "bad duration", body: "server:\n  read_timeout: forever\n"},
		{name: "wrong type", body: "server:\n  port: many\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseYAML(writeTempFile(t, "config.yaml", tt.body))

			require.Error(t, err)
			assert.Contains(t, err.Error(), "error decoding yaml configs")
		})
	}
}

func TestDuration_UnmarshalText(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("1m30s")))
	assert.Equal(t, Duration(90*time.Second), d)

	assert.Error(t, d.UnmarshalText([]byte("soon")))
}
