package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Env holds settings read from the environment. Command-line flags take
// precedence over these values.
type Env struct {
	DBPath      string        `env:"DOTS_DB"           envDefault:"~/.dots/scores.db"`
	SSHAddr     string        `env:"DOTS_SSH_ADDR"     envDefault:":2222"`
	HostKey     string        `env:"DOTS_HOST_KEY"` // empty: ~/.dots/host_key
	IdleTimeout time.Duration `env:"DOTS_IDLE_TIMEOUT" envDefault:"30m"`
	LogLevel    string        `env:"DOTS_LOG_LEVEL"    envDefault:"info"`
	ConfigPath  string        `env:"DOTS_CONFIG"`
}

// LoadEnv parses the DOTS_* environment variables.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("config: parse env: %w", err)
	}
	return e, nil
}
