package configs

import "time"

// Video configures the video hosting API.
type Video struct {
	BaseURL      string        `env:"BASE_URL" envDefault:"https://api.mux.com"`
	TokenID      string        `env:"TOKEN_ID"`
	TokenSecret  string        `env:"TOKEN_SECRET"`
	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"5s"`
	PollAttempts int           `env:"POLL_ATTEMPTS" envDefault:"12"`
}
