package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// HTTPCfg is configuration of REST API
type HTTPCfg struct {
	Port           int  `env:"HTTP_PORT" envDefault:"3000"`
	SwaggerEnabled bool `env:"HTTP_SWAGGER_ENABLED" envDefault:"true"`
}

// GrpcCfg is configuration of gRPC API
type GrpcCfg struct {
	Enabled bool `env:"GRPC_ENABLED" envDefault:"true"`
	Port    int  `env:"GRPC_PORT" envDefault:"3010"`
}

// LogCfg is configuration of logger
type LogCfg struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

type Config struct {
	HTTPCfg         HTTPCfg
	GrpcCfg         GrpcCfg
	LogCfg          LogCfg
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func Build() (Config, error) {
	var cfg Config
	opts := env.Options{RequiredIfNoDef: true}

	if err := env.Parse(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	if cfg.GrpcCfg.Enabled && cfg.GrpcCfg.Port == cfg.HTTPCfg.Port {
		return cfg, fmt.Errorf("http and grpc servers can't share port %d", cfg.HTTPCfg.Port)
	}

	return cfg, nil
}
