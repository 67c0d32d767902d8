package flightdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"flights.flyazureva.com/internal/logging"
	"flights.flyazureva.com/internal/schedule"
)

var ErrUnsupportedSource = errors.New("unsupported schedule source")

// Schedule is a full set of airports and legs ready to be stored.
type Schedule struct {
	Airports []schedule.Airport
	Flights  []schedule.FlightLeg
}

// referencedAirports lists flight endpoints in first-seen order.
func (s Schedule) referencedAirports() []string {
	seen := make(map[string]bool)
	var codes []string
	for _, leg := range s.Flights {
		for _, code := range []string{leg.DepartureAirport, leg.ArrivalAirport} {
			if !seen[code] {
				seen[code] = true
				codes = append(codes, code)
			}
		}
	}
	return codes
}

type sourceFormat int

const (
	formatYAML sourceFormat = iota
	formatGTFS
)

func detectFormat(source string) (sourceFormat, error) {
	p := source
	if u, err := url.Parse(source); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		p = u.Path
	}

	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		return formatYAML, nil
	case ".zip":
		return formatGTFS, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedSource, source)
	}
}

// ImportSchedule loads a YAML schedule or a GTFS feed from a local path or an http(s) URL and
// replaces the stored flights with it.
func (c *Client) ImportSchedule(ctx context.Context, source string) (Schedule, error) {
	startTime := time.Now()
	defer func() {
		c.importRuntime = time.Since(startTime)
	}()

	format, err := detectFormat(source)
	if err != nil {
		return Schedule{}, err
	}

	b, err := readSource(ctx, source, c.logger)
	if err != nil {
		return Schedule{}, err
	}

	var s Schedule
	switch format {
	case formatYAML:
		s, err = ParseYAMLSchedule(b)
	case formatGTFS:
		s, err = ParseGTFSSchedule(b)
	}
	if err != nil {
		return Schedule{}, fmt.Errorf("parse %s: %w", source, err)
	}

	if err := c.replaceSchedule(ctx, s); err != nil {
		return Schedule{}, err
	}

	logging.LogOperation(c.logger, "schedule_imported",
		slog.String("component", "flightdb"),
		slog.String("source", source),
		slog.Int("airports", len(s.Airports)),
		slog.Int("flights", len(s.Flights)),
		slog.Duration("duration", time.Since(startTime)))

	if c.config.Verbose {
		counts, err := c.TableCounts(ctx)
		if err != nil {
			return Schedule{}, err
		}
		for table, n := range counts {
			c.logger.Info("table count", slog.String("table", table), slog.Int("rows", n))
		}
	}

	return s, nil
}

func readSource(ctx context.Context, source string, logger *slog.Logger) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, fmt.Errorf("build request for %s: %w", source, err)
		}

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("download %s: %w", source, err)
		}
		defer logging.SafeCloseWithLogging(resp.Body, logger, "schedule_download")

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("download %s: unexpected status %s", source, resp.Status)
		}

		return io.ReadAll(resp.Body)
	}

	b, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	return b, nil
}
