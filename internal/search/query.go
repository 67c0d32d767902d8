// Package search turns search filters into schedule queries and assembles the legs the store
// returns into date-resolved itineraries.
package search

import (
	"flights.flyazureva.com/internal/schedule"
)

const (
	DefaultLimit  = 10
	DefaultOffset = 0
)

// QueryShape names the traversal a query asks the store for.
type QueryShape string

const (
	ShapeDirect  QueryShape = "direct"
	ShapeOneStop QueryShape = "one_stop"
)

// QueryParams carries the predicates of a query. Nil or empty fields are unconstrained.
type QueryParams struct {
	DepartureAirport string
	ArrivalAirport   string
	// Day, when set, must be served by every leg of a returned itinerary.
	Day    *schedule.Weekday
	Limit  int
	Offset int
}

type Query struct {
	Shape  QueryShape
	Params QueryParams
}

// QuerySet holds the two branches issued for one directional search.
type QuerySet struct {
	Direct  Query
	OneStop Query
}

// Filters describes one directional search. Zero values mean "absent".
type Filters struct {
	DepartureAirport string
	ArrivalAirport   string
	Date             schedule.Date
	Limit            int
	Offset           int
}

// BuildQueries translates filters into the direct and one-stop queries. Calendar expansion is
// not decided here: the weekday predicate only narrows the candidates.
func BuildQueries(f Filters) QuerySet {
	params := QueryParams{
		DepartureAirport: f.DepartureAirport,
		ArrivalAirport:   f.ArrivalAirport,
		Limit:            DefaultLimit,
		Offset:           DefaultOffset,
	}
	if f.Limit > 0 {
		params.Limit = f.Limit
	}
	if f.Offset > 0 {
		params.Offset = f.Offset
	}
	if !f.Date.IsZero() {
		day := schedule.WeekdayOf(f.Date)
		params.Day = &day
	}

	// Each query gets its own copy so an executor may not alias the other branch's Day.
	oneStop := params
	if params.Day != nil {
		day := *params.Day
		oneStop.Day = &day
	}

	return QuerySet{
		Direct:  Query{Shape: ShapeDirect, Params: params},
		OneStop: Query{Shape: ShapeOneStop, Params: oneStop},
	}
}

// Queries returns the set in execution order, direct first.
func (qs QuerySet) Queries() []Query {
	return []Query{qs.Direct, qs.OneStop}
}
