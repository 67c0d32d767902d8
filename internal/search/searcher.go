package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"flights.flyazureva.com/internal/logging"
	"flights.flyazureva.com/internal/schedule"
)

// Executor runs a query against the schedule store.
type Executor interface {
	Execute(ctx context.Context, q Query) ([]schedule.RawItinerary, error)
}

// ExecutorFunc adapts a function to an Executor.
type ExecutorFunc func(ctx context.Context, q Query) ([]schedule.RawItinerary, error)

func (f ExecutorFunc) Execute(ctx context.Context, q Query) ([]schedule.RawItinerary, error) {
	return f(ctx, q)
}

type Searcher struct {
	executor Executor
}

func NewSearcher(executor Executor) *Searcher {
	return &Searcher{executor: executor}
}

// Search runs one directional search.
func (s *Searcher) Search(ctx context.Context, f Filters) (Result, error) {
	start := time.Now()
	queries := BuildQueries(f).Queries()

	batches := make([][]schedule.RawItinerary, len(queries))
	g, gCtx := errgroup.WithContext(ctx)
	for i, q := range queries {
		g.Go(func() error {
			raw, err := s.executor.Execute(gCtx, q)
			if err != nil {
				return fmt.Errorf("execute %s query: %w", q.Shape, err)
			}
			batches[i] = raw
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var candidates []schedule.RawItinerary
	for _, b := range batches {
		candidates = append(candidates, b...)
	}

	result := Assemble(candidates, f.Date)

	logging.LogOperation(logging.FromContext(ctx), "search_completed",
		slog.String("component", "search"),
		slog.String("departure_airport", f.DepartureAirport),
		slog.String("arrival_airport", f.ArrivalAirport),
		slog.String("date", f.Date.String()),
		slog.Int("candidates", len(candidates)),
		slog.Int("direct", len(result.Direct)),
		slog.Int("one_stop", len(result.OneStop)),
		slog.Duration("duration", time.Since(start)))

	return result, nil
}

// RoundTrip runs the outbound and return halves concurrently. Either half failing fails the
// whole search.
func (s *Searcher) RoundTrip(ctx context.Context, req RoundTripRequest) (RoundTripResult, error) {
	var result RoundTripResult

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := s.Search(gCtx, req.Outbound)
		if err != nil {
			return fmt.Errorf("outbound search: %w", err)
		}
		result.Outbound = r
		return nil
	})
	g.Go(func() error {
		r, err := s.Search(gCtx, req.ReturnFilters())
		if err != nil {
			return fmt.Errorf("return search: %w", err)
		}
		result.Return = r
		return nil
	})
	if err := g.Wait(); err != nil {
		return RoundTripResult{}, err
	}

	return result, nil
}
