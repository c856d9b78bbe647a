package config

import (
	"github.com/caarlos0/env/v11"

	"localreach/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Each nested struct is parsed with its envPrefix; see the configs package
// for defaults. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP  configs.HTTP     `envPrefix:"HTTP_"`
	Log   configs.Logger   `envPrefix:"LOG_"`
	Psql  configs.Postgres `envPrefix:"PSQL_"`
	Redis configs.Redis    `envPrefix:"REDIS_"`
	Auth  configs.Auth     `envPrefix:"AUTH_"`
	AWS   configs.AWS      `envPrefix:"AWS_"`
	SES   configs.SES      `envPrefix:"SES_"`
	S3    configs.S3       `envPrefix:"S3_"`
	AI    configs.AI       `envPrefix:"AI_"`
	Video configs.Video    `envPrefix:"VIDEO_"`
}

// Load reads configuration from environment variables into a Config. All
// fields take their defaults when no environment variable is provided;
// AUTH_JWT_SECRET is required.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadDatabase reads only the sections the migrate and seed commands need,
// so they run without the server secrets.
func LoadDatabase() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg.Log, env.Options{Prefix: "LOG_"}); err != nil {
		return cfg, err
	}
	if err := env.ParseWithOptions(&cfg.Psql, env.Options{Prefix: "PSQL_"}); err != nil {
		return cfg, err
	}
	return cfg, nil
}
