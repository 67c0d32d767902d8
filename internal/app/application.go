package app

import (
	"context"
	"fmt"
	"log/slog"

	"flights.flyazureva.com/flightdb"
	"flights.flyazureva.com/internal/appconf"
	"flights.flyazureva.com/internal/feed"
	"flights.flyazureva.com/internal/search"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config   appconf.Config
	Logger   *slog.Logger
	FlightDB *flightdb.Client
	Searcher *search.Searcher
	Feed     *feed.Manager // nil when no schedule source is configured
}

// New opens the flight store described by cfg and, when a schedule source is configured,
// imports it before returning. The caller owns the returned Application and must Close it.
func New(ctx context.Context, cfg appconf.Config, logger *slog.Logger) (*Application, error) {
	if logger == nil {
		logger = slog.Default()
	}

	dbConfig := flightdb.NewConfig(cfg.DBDriver, cfg.DBDSN, cfg.Env, cfg.Verbose)
	dbConfig.Logger = logger

	client, err := flightdb.NewClient(dbConfig)
	if err != nil {
		return nil, fmt.Errorf("open flight database: %w", err)
	}

	application := &Application{
		Config:   cfg,
		Logger:   logger,
		FlightDB: client,
		Searcher: search.NewSearcher(client),
	}

	if cfg.ScheduleSource != "" {
		manager := feed.NewManager(client, feed.Config{
			Source:   cfg.ScheduleSource,
			Interval: cfg.ScheduleRefresh,
			Logger:   logger,
		})
		if err := manager.Start(ctx); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("import schedule: %w", err)
		}
		application.Feed = manager
	}

	return application, nil
}

// Close stops the schedule refresh and closes the store.
func (app *Application) Close() error {
	if app.Feed != nil {
		app.Feed.Shutdown()
	}
	if app.FlightDB == nil {
		return nil
	}
	return app.FlightDB.Close()
}
