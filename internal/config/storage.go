package config

type Storage struct {
	Database Database `envPrefix:"DATABASE_"`
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Database struct {
	Driver string `env:"DRIVER" envDefault:"sqlite"`
	DSN    string `env:"DSN" envDefault:"data.sqlite"`
}
