package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// StructuredFileConfig is the on-disk shape of the configuration file,
// shared by the JSON, TOML and YAML decoders.
type StructuredFileConfig struct {
	App struct {
		Environment string `json:"environment" toml:"environment" yaml:"environment"`
		Debug       bool   `json:"debug" toml:"debug" yaml:"debug"`
		SecretKey   string `json:"secret_key" toml:"secret_key" yaml:"secret_key"`
	} `json:"app,omitempty" toml:"app" yaml:"app"`

	Server struct {
		Host            string   `json:"host" toml:"host" yaml:"host"`
		Port            int      `json:"port" toml:"port" yaml:"port"`
		ReadTimeout     Duration `json:"read_timeout" toml:"read_timeout" yaml:"read_timeout"`
		WriteTimeout    Duration `json:"write_timeout" toml:"write_timeout" yaml:"write_timeout"`
		IdleTimeout     Duration `json:"idle_timeout" toml:"idle_timeout" yaml:"idle_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" toml:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server,omitempty" toml:"server" yaml:"server"`
}

// parseFile decodes the configuration file at path, picking the format
// from its extension. Unknown extensions are decoded as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return parseTOML(path)
	case ".yaml", ".yml":
		return parseYAML(path)
	default:
		return parseJSON(path)
	}
}

func (f *StructuredFileConfig) toStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment: f.App.Environment,
			Debug:       f.App.Debug,
			SecretKey:   f.App.SecretKey,
		},
		Server: Server{
			Host:            f.Server.Host,
			Port:            f.Server.Port,
			ReadTimeout:     time.Duration(f.Server.ReadTimeout),
			WriteTimeout:    time.Duration(f.Server.WriteTimeout),
			IdleTimeout:     time.Duration(f.Server.IdleTimeout),
			ShutdownTimeout: time.Duration(f.Server.ShutdownTimeout),
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in every supported file format. JSON also accepts a number
// of nanoseconds.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler, used by the TOML and
// YAML decoders.
func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}
