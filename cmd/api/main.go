package main

import (
	"cmp"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"flights.flyazureva.com/internal/app"
	"flights.flyazureva.com/internal/appconf"
	"flights.flyazureva.com/internal/logging"
	"flights.flyazureva.com/internal/restapi"
)

func main() {
	cfg, logger := parseFlags(os.Args[1:])

	if err := run(cfg, logger); err != nil {
		logging.LogError(logger, "server stopped", err)
		os.Exit(1)
	}
}

func envInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// parseFlags reads command-line flags. Every flag defaults to its environment variable.
func parseFlags(args []string) (appconf.Config, *slog.Logger) {
	var (
		cfg       appconf.Config
		env       string
		origins   string
		logLevel  string
		logFormat string
	)

	fs := flag.NewFlagSet("api", flag.ExitOnError)
	fs.IntVar(&cfg.Port, "port", envInt("PORT", 3000), "API server port")
	fs.StringVar(&env, "env", cmp.Or(os.Getenv("ENV"), "development"), "Environment (development|test|production)")
	fs.IntVar(&cfg.RateLimit, "rate-limit", envInt("RATE_LIMIT", 100), "Requests per second per client, 0 disables limiting")
	fs.StringVar(&origins, "allowed-origins", os.Getenv("ALLOWED_ORIGINS"), "Comma separated CORS origins used outside development")
	fs.StringVar(&cfg.DBDriver, "db-driver", cmp.Or(os.Getenv("DB_DRIVER"), "sqlite"), "Database driver (sqlite|pgx)")
	fs.StringVar(&cfg.DBDSN, "db-dsn", cmp.Or(os.Getenv("DB_DSN"), "flights.db"), "Database file path or connection string")
	fs.StringVar(&cfg.ScheduleSource, "schedule", os.Getenv("SCHEDULE_SOURCE"), "Schedule to import at startup: YAML file or GTFS zip, path or URL")
	fs.DurationVar(&cfg.ScheduleRefresh, "schedule-refresh", envDuration("SCHEDULE_REFRESH", 24*time.Hour), "Re-import interval for schedule URLs, 0 disables refresh")
	fs.StringVar(&logLevel, "log-level", cmp.Or(os.Getenv("LOG_LEVEL"), "info"), "Log level (debug|info|warn|error)")
	fs.StringVar(&logFormat, "log-format", cmp.Or(os.Getenv("LOG_FORMAT"), "text"), "Log format (text|json)")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Log table counts after imports")
	_ = fs.Parse(args)

	cfg.Env = appconf.EnvFlagToEnvironment(env)
	cfg.AllowedOrigins = splitList(origins)

	level := logging.ParseLevel(logLevel)
	if cfg.Verbose && level > slog.LevelDebug {
		level = slog.LevelDebug
	}
	logger := logging.NewLogger(os.Stdout, logFormat, level)
	slog.SetDefault(logger)

	return cfg, logger
}

func run(cfg appconf.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer logging.SafeCloseWithLogging(application, logger, "close_application")

	api := restapi.NewRestAPI(application)
	defer api.Shutdown()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
