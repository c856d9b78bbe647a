package configs

import "time"

// Redis configures the cache that keeps resolved profile roles. An empty
// Addr disables the cache.
type Redis struct {
	Addr     string `env:"ADDRESS"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	// RoleTTL is how long a resolved role is trusted before the profile is
	// read again.
	RoleTTL time.Duration `env:"ROLE_TTL" envDefault:"5m"`
}
