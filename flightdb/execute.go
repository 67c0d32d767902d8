package flightdb

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"flights.flyazureva.com/internal/logging"
	"flights.flyazureva.com/internal/schedule"
	"flights.flyazureva.com/internal/search"
)

var legColumns = []string{
	"flight_number",
	"departure_airport",
	"arrival_airport",
	"departure_time",
	"arrival_time",
	"service_days",
}

func qualified(alias string) []string {
	cols := make([]string, len(legColumns))
	for i, col := range legColumns {
		cols[i] = alias + "." + col
	}
	return cols
}

// servesDay matches a weekday token inside the comma-joined service_days column.
func servesDay(alias string, day schedule.Weekday) sq.Sqlizer {
	return sq.Expr("(',' || "+alias+".service_days || ',') LIKE ?", "%,"+day.String()+",%")
}

// buildQuery renders a schedule query. Direct itineraries read one flights row, one-stop
// itineraries join a second row departing from the first row's arrival airport.
func (c *Client) buildQuery(q search.Query) (string, []interface{}, error) {
	p := q.Params

	var b sq.SelectBuilder
	last := "f1"
	switch q.Shape {
	case search.ShapeDirect:
		b = c.sb.Select(qualified("f1")...).
			From("flights f1").
			OrderBy("f1.id")
	case search.ShapeOneStop:
		last = "f2"
		b = c.sb.Select(append(qualified("f1"), qualified("f2")...)...).
			From("flights f1").
			Join("flights f2 ON f2.departure_airport = f1.arrival_airport").
			OrderBy("f1.id", "f2.id")
	default:
		return "", nil, fmt.Errorf("unknown query shape %q", q.Shape)
	}

	if p.DepartureAirport != "" {
		b = b.Where(sq.Eq{"f1.departure_airport": p.DepartureAirport})
	}
	if p.ArrivalAirport != "" {
		b = b.Where(sq.Eq{last + ".arrival_airport": p.ArrivalAirport})
	}
	if p.Day != nil {
		b = b.Where(servesDay("f1", *p.Day))
		if q.Shape == search.ShapeOneStop {
			b = b.Where(servesDay("f2", *p.Day))
		}
	}

	if p.Limit > 0 {
		b = b.Limit(uint64(p.Limit))
	}
	if p.Offset > 0 {
		b = b.Offset(uint64(p.Offset))
	}

	return b.ToSql()
}

// Execute runs a schedule query and decodes each row into a raw itinerary, origin leg first.
func (c *Client) Execute(ctx context.Context, q search.Query) (result []schedule.RawItinerary, err error) {
	query, args, err := c.buildQuery(q)
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", q.Shape, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s itineraries: %w", q.Shape, err)
	}
	defer logging.HandleDeferredError(&err, rows.Close, c.logger, "close_itinerary_rows")

	legCount := 1
	if q.Shape == search.ShapeOneStop {
		legCount = 2
	}

	for rows.Next() {
		raw := make([]flightRow, legCount)
		dest := make([]any, 0, legCount*len(legColumns))
		for i := range raw {
			dest = append(dest, raw[i].scanTargets()...)
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan %s itinerary: %w", q.Shape, err)
		}

		it := make(schedule.RawItinerary, legCount)
		for i, r := range raw {
			leg, err := r.toLeg()
			if err != nil {
				return nil, err
			}
			it[i] = leg
		}
		result = append(result, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s itineraries: %w", q.Shape, err)
	}

	return result, nil
}

type flightRow struct {
	FlightNumber     string
	DepartureAirport string
	ArrivalAirport   string
	DepartureTime    string
	ArrivalTime      string
	ServiceDays      string
}

func (r *flightRow) scanTargets() []any {
	return []any{
		&r.FlightNumber,
		&r.DepartureAirport,
		&r.ArrivalAirport,
		&r.DepartureTime,
		&r.ArrivalTime,
		&r.ServiceDays,
	}
}

func (r flightRow) toLeg() (schedule.FlightLeg, error) {
	dep, err := schedule.ParseClock(r.DepartureTime)
	if err != nil {
		return schedule.FlightLeg{}, fmt.Errorf("decode flight %s departure_time: %w", r.FlightNumber, err)
	}
	arr, err := schedule.ParseClock(r.ArrivalTime)
	if err != nil {
		return schedule.FlightLeg{}, fmt.Errorf("decode flight %s arrival_time: %w", r.FlightNumber, err)
	}
	days, err := schedule.ParseServiceDays(r.ServiceDays)
	if err != nil {
		return schedule.FlightLeg{}, fmt.Errorf("decode flight %s: %w", r.FlightNumber, err)
	}

	return schedule.FlightLeg{
		FlightNumber:     r.FlightNumber,
		DepartureAirport: r.DepartureAirport,
		ArrivalAirport:   r.ArrivalAirport,
		DepartureTime:    dep,
		ArrivalTime:      arr,
		ServiceDays:      days,
	}, nil
}
