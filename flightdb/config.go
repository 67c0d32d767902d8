package flightdb

import (
	"errors"
	"log/slog"

	"flights.flyazureva.com/internal/appconf"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"

	memoryDSN = ":memory:"
)

var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Config holds configuration options for the Client
type Config struct {
	Driver  string // "sqlite" (default) or "pgx"
	DSN     string // file path for sqlite, connection string for pgx
	Env     appconf.Environment
	Verbose bool
	Logger  *slog.Logger
}

func NewConfig(driver, dsn string, env appconf.Environment, verbose bool) Config {
	return Config{
		Driver:  driver,
		DSN:     dsn,
		Env:     env,
		Verbose: verbose,
	}
}

func (c Config) driver() string {
	if c.Driver == "" {
		return DriverSQLite
	}
	return c.Driver
}

func (c Config) inMemory() bool {
	return c.driver() == DriverSQLite && (c.DSN == "" || c.DSN == memoryDSN)
}

func (c Config) dsn() string {
	if c.driver() == DriverSQLite && c.DSN == "" {
		return memoryDSN
	}
	return c.DSN
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
