package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"flights.flyazureva.com/internal/logging"
	"flights.flyazureva.com/internal/models"
	"flights.flyazureva.com/internal/utils"
)

var errInvalidSearch = errors.New("invalid search")

type searchOptions struct {
	from       string
	to         string
	flightType string
	date       string
	returnDate string
	limit      int
	offset     int
}

// values maps the flags onto the /flights query string so both surfaces share validation.
func (o searchOptions) values() url.Values {
	v := url.Values{}
	v.Set("departure_airport", o.from)
	v.Set("arrival_airport", o.to)
	v.Set("type", o.flightType)
	v.Set("departure_date", o.date)
	if o.returnDate != "" {
		v.Set("return_date", o.returnDate)
	}
	if o.limit != 0 {
		v.Set("limit", strconv.Itoa(o.limit))
	}
	if o.offset != 0 {
		v.Set("offset", strconv.Itoa(o.offset))
	}
	return v
}

func formatFieldErrors(fieldErrors map[string][]string) error {
	keys := make([]string, 0, len(fieldErrors))
	for k := range fieldErrors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(fieldErrors[k], "; ")))
	}
	return fmt.Errorf("%w: %s", errInvalidSearch, strings.Join(parts, ", "))
}

func searchCmd(opts *rootOptions) *cobra.Command {
	var so searchOptions

	c := &cobra.Command{
		Use:   "search",
		Short: "Search one-way or round-trip itineraries and print them as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			query, fieldErrors := utils.ParseFlightsQuery(so.values())
			if len(fieldErrors) > 0 {
				return formatFieldErrors(fieldErrors)
			}

			application, err := opts.open(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer logging.SafeCloseWithLogging(application, application.Logger, "close_application")

			var response any
			if query.IsRoundTrip() {
				result, err := application.Searcher.RoundTrip(cmd.Context(), query.RoundTripRequest())
				if err != nil {
					return err
				}
				response = models.NewRoundTripResponse(result)
			} else {
				result, err := application.Searcher.Search(cmd.Context(), query.Filters)
				if err != nil {
					return err
				}
				response = models.NewOneWayResponse(result)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(response)
		},
	}

	c.Flags().StringVar(&so.from, "from", "", "Departure airport code (required)")
	c.Flags().StringVar(&so.to, "to", "", "Arrival airport code (required)")
	c.Flags().StringVar(&so.flightType, "type", string(utils.FlightTypeOneWay), "Trip type: one-way|roundtrip")
	c.Flags().StringVar(&so.date, "date", "", "Departure date, YYYY-MM-DD (required)")
	c.Flags().StringVar(&so.returnDate, "return-date", "", "Return date for roundtrip searches")
	c.Flags().IntVar(&so.limit, "limit", 0, "Maximum candidates per query (default 10)")
	c.Flags().IntVar(&so.offset, "offset", 0, "Candidates to skip per query")

	_ = c.MarkFlagRequired("from")
	_ = c.MarkFlagRequired("to")
	_ = c.MarkFlagRequired("date")
	return c
}
