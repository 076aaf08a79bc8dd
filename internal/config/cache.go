package config

import "time"

// Cache configures the in-memory article read cache.
type Cache struct {
	Enabled bool          `env:"ENABLED,expand" envDefault:"true"`
	Size    int           `env:"SIZE,expand" envDefault:"256"`
	TTL     time.Duration `env:"TTL,expand" envDefault:"5m"`
}
