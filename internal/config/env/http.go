package env

import (
	"fmt"
	"net"

	"plinko_backend/internal/config"

	envparse "github.com/caarlos0/env/v11"
)

type httpConfig struct {
	Host string `env:"HTTP_HOST" envDefault:"localhost"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	cfg := &httpConfig{}
	if err := envparse.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse http config: %w", err)
	}
	if len(cfg.Port) == 0 {
		return nil, fmt.Errorf("http port not found")
	}

	return cfg, nil
}

func (cfg *httpConfig) Address() string {
	return net.JoinHostPort(cfg.Host, cfg.Port)
}
