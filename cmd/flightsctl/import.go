package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"flights.flyazureva.com/internal/logging"
)

func importCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <source>",
		Short: "Replace the flight schedule with a YAML file or GTFS zip (path or URL)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := opts.open(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer logging.SafeCloseWithLogging(application, application.Logger, "close_application")

			s, err := application.FlightDB.ImportSchedule(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d airports and %d flights in %s\n",
				len(s.Airports), len(s.Flights), application.FlightDB.ImportRuntime())
			return err
		},
	}
}
