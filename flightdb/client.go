// Package flightdb stores the weekly flight schedule in SQL and answers the direct and one-stop
// schedule queries of the search pipeline.
package flightdb

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	_ "modernc.org/sqlite"             // Pure Go SQLite driver

	"flights.flyazureva.com/internal/appconf"
	"flights.flyazureva.com/internal/logging"
)

//go:embed schema_sqlite.sql
var sqliteDDL string

//go:embed schema_postgres.sql
var postgresDDL string

// Client is the main entry point for the schedule store
type Client struct {
	config Config
	DB     *sql.DB
	sb     sq.StatementBuilderType
	logger *slog.Logger

	importRuntime time.Duration
}

// NewClient opens the configured database, applies the schema and checks connectivity.
func NewClient(config Config) (*Client, error) {
	db, err := createDB(config)
	if err != nil {
		return nil, err
	}

	logger := config.logger()
	if config.Verbose {
		logger.Info("schedule store ready",
			slog.String("component", "flightdb"),
			slog.String("driver", config.driver()))
	}

	return &Client{
		config: config,
		DB:     db,
		sb:     statementBuilder(config.driver()),
		logger: logger,
	}, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}

// ImportRuntime reports how long the last schedule import took.
func (c *Client) ImportRuntime() time.Duration {
	return c.importRuntime
}

func statementBuilder(driver string) sq.StatementBuilderType {
	if driver == DriverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func createDB(config Config) (*sql.DB, error) {
	driver := config.driver()

	var ddl string
	switch driver {
	case DriverSQLite:
		ddl = sqliteDDL
	case DriverPostgres:
		ddl = postgresDDL
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, config.Driver)
	}

	if config.Env == appconf.Test && driver == DriverSQLite && !config.inMemory() {
		return nil, errors.New("test database must use in-memory storage, got " + config.DSN)
	}

	db, err := sql.Open(driver, config.dsn())
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	configureConnectionPool(db, config)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		logging.SafeCloseWithLogging(db, config.logger(), "close_unreachable_database")
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := performDatabaseMigration(ctx, db, ddl); err != nil {
		logging.SafeCloseWithLogging(db, config.logger(), "close_unmigrated_database")
		return nil, fmt.Errorf("error performing database migration: %w", err)
	}

	return db, nil
}

// configureConnectionPool sizes the pool. Every connection to ":memory:" opens its own empty
// database, so in-memory stores are pinned to a single connection.
func configureConnectionPool(db *sql.DB, config Config) {
	if config.inMemory() {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
		return
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
}

func performDatabaseMigration(ctx context.Context, db *sql.DB, ddl string) error {
	for _, stmt := range strings.Split(ddl, "-- migrate") {
		trimmedStmt := strings.TrimSpace(stmt)
		if trimmedStmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, trimmedStmt); err != nil {
			return fmt.Errorf("error executing DDL statement [%s]: %w", trimmedStmt, err)
		}
	}
	return nil
}

// TableCounts returns the number of rows in each schedule table.
func (c *Client) TableCounts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, 2)
	for _, table := range []string{"airports", "flights"} {
		query, args, err := c.sb.Select("COUNT(*)").From(table).ToSql()
		if err != nil {
			return nil, fmt.Errorf("build count sql for %s: %w", table, err)
		}

		var count int
		if err := c.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		counts[table] = count
	}
	return counts, nil
}
