package config

import "time"

type HTTP struct {
	BaseURL   string    `env:"BASE_URL,expand" envDefault:"/"`
	Address   string    `env:"ADDRESS,expand" envDefault:":3002"`
	Session   Session   `envPrefix:"SESSION_"`
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`
	CORS      CORS      `envPrefix:"CORS_"`
	Metrics   Metrics   `envPrefix:"METRICS_"`
}

type Session struct {
	Keys   []string `env:"KEYS,expand"`
	Cookie Cookie   `envPrefix:"COOKIE_"`
}

type Cookie struct {
	Path     string        `env:"PATH,expand" envDefault:"/"`
	HTTPOnly bool          `env:"HTTP_ONLY,expand" envDefault:"true"`
	Secure   bool          `env:"SECURE,expand" envDefault:"false"`
	MaxAge   time.Duration `env:"MAX_AGE,expand" envDefault:"24h"`
}

// RateLimit applies to mutating requests only.
type RateLimit struct {
	Enabled      bool          `env:"ENABLED,expand" envDefault:"true"`
	Interval     time.Duration `env:"INTERVAL,expand" envDefault:"1s"`
	Burst        int           `env:"BURST,expand" envDefault:"10"`
	CacheSize    int           `env:"CACHE_SIZE,expand" envDefault:"1000"`
	TTL          time.Duration `env:"TTL,expand" envDefault:"10m"`
	TrustHeaders bool          `env:"TRUST_HEADERS,expand" envDefault:"false"`
}

type CORS struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS,expand" envDefault:"*"`
}

type Metrics struct {
	Enabled bool `env:"ENABLED,expand" envDefault:"true"`
}
