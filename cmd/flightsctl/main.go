package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"flights.flyazureva.com/internal/app"
	"flights.flyazureva.com/internal/appconf"
	"flights.flyazureva.com/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	driver string
	dsn    string
	debug  bool
}

// open builds an Application over the configured store. Logs go to stderr so stdout stays
// machine readable.
func (o *rootOptions) open(ctx context.Context, stderr io.Writer) (*app.Application, error) {
	level := slog.LevelWarn
	if o.debug {
		level = slog.LevelDebug
	}
	logger := logging.NewLogger(stderr, "text", level)

	return app.New(ctx, appconf.Config{
		Env:      appconf.Development,
		DBDriver: o.driver,
		DBDSN:    o.dsn,
		Verbose:  o.debug,
	}, logger)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "flightsctl",
		Short:        "Manage and query the weekly flight schedule",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.driver, "driver", "sqlite", "Database driver (sqlite|pgx)")
	cmd.PersistentFlags().StringVar(&opts.dsn, "dsn", "flights.db", "Database file path or connection string")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging on stderr")

	cmd.AddCommand(importCmd(opts))
	cmd.AddCommand(searchCmd(opts))
	return cmd
}
