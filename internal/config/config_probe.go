package config

import (
	"flag"
	"fmt"
	"strconv"
	"time"
)

// ProbeConfig configures the container health probe in cmd/healthcheck.
type ProbeConfig struct {
	// URL is the base URL of the backend. When empty, the probe targets
	// the loopback interface on Port.
	// Env: HEALTHCHECK_URL
	URL string `env:"HEALTHCHECK_URL"`

	// Port is the backend port used when URL is empty.
	// Env: PORT
	Port int `env:"PORT" envDefault:"5000"`

	// Timeout bounds the whole probe request.
	// Env: HEALTHCHECK_TIMEOUT
	Timeout time.Duration `env:"HEALTHCHECK_TIMEOUT" envDefault:"3s"`
}

// BaseURL returns the backend URL the probe should call.
func (p ProbeConfig) BaseURL() string {
	if p.URL != "" {
		return p.URL
	}
	return "http://127.0.0.1:" + strconv.Itoa(p.Port)
}

// GetProbeConfig loads the probe configuration from the environment and
// then from args (-url, -timeout). Flags win over the environment.
func GetProbeConfig(args []string) (*ProbeConfig, error) {
	cfg := &ProbeConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("healthcheck", flag.ContinueOnError)
	fs.StringVar(&cfg.URL, "url", cfg.URL, "Backend base URL")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Probe timeout")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing probe flags: %w", err)
	}

	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive", ErrInvalidProbeConfigs)
	}
	if cfg.URL == "" && (cfg.Port < 1 || cfg.Port > 65535) {
		return nil, fmt.Errorf("%w: port %d out of range", ErrInvalidProbeConfigs, cfg.Port)
	}

	return cfg, nil
}
