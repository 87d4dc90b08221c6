package env

import (
	"fmt"

	"plinko_backend/internal/config"

	envparse "github.com/caarlos0/env/v11"
	log "github.com/sirupsen/logrus"
)

type logConfig struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func NewLogConfig() (config.LogConfig, error) {
	cfg := &logConfig{}
	if err := envparse.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse log config: %w", err)
	}
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	return cfg, nil
}

func (cfg *logConfig) Level() string {
	return cfg.LogLevel
}
