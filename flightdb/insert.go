package flightdb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"flights.flyazureva.com/internal/logging"
	"flights.flyazureva.com/internal/schedule"
)

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// InsertAirport adds an airport or refreshes the name and city of an existing one.
func (c *Client) InsertAirport(ctx context.Context, a schedule.Airport) error {
	return c.insertAirport(ctx, c.DB, a, true)
}

func (c *Client) insertAirport(ctx context.Context, db execer, a schedule.Airport, overwrite bool) error {
	code := strings.TrimSpace(a.ICAO)
	if code == "" {
		return fmt.Errorf("airport code is empty")
	}

	suffix := "ON CONFLICT (icao) DO NOTHING"
	if overwrite {
		suffix = "ON CONFLICT (icao) DO UPDATE SET name = excluded.name, city = excluded.city"
	}

	query, args, err := c.sb.
		Insert("airports").
		Columns("icao", "name", "city").
		Values(code, toNullString(a.Name), toNullString(a.City)).
		Suffix(suffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert airport sql: %w", err)
	}

	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert airport %s: %w", code, err)
	}
	return nil
}

// InsertFlight stores one scheduled leg. Both airports must already exist.
func (c *Client) InsertFlight(ctx context.Context, leg schedule.FlightLeg) error {
	return c.insertFlight(ctx, c.DB, leg)
}

func (c *Client) insertFlight(ctx context.Context, db execer, leg schedule.FlightLeg) error {
	if err := leg.Validate(); err != nil {
		return err
	}

	query, args, err := c.sb.
		Insert("flights").
		Columns(legColumns...).
		Values(
			leg.FlightNumber,
			leg.DepartureAirport,
			leg.ArrivalAirport,
			leg.DepartureTime.String(),
			leg.ArrivalTime.String(),
			leg.ServiceDays.String(),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert flight sql: %w", err)
	}

	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert flight %s: %w", leg.FlightNumber, err)
	}
	return nil
}

// Airports lists every stored airport ordered by code.
func (c *Client) Airports(ctx context.Context) (airports []schedule.Airport, err error) {
	query, args, err := c.sb.Select("icao", "name", "city").From("airports").OrderBy("icao").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build airports sql: %w", err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query airports: %w", err)
	}
	defer logging.HandleDeferredError(&err, rows.Close, c.logger, "close_airport_rows")

	airports = []schedule.Airport{}
	for rows.Next() {
		var a schedule.Airport
		var name, city sql.NullString
		if err := rows.Scan(&a.ICAO, &name, &city); err != nil {
			return nil, fmt.Errorf("scan airport: %w", err)
		}
		a.Name = name.String
		a.City = city.String
		airports = append(airports, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate airports: %w", err)
	}

	return airports, nil
}

// replaceSchedule swaps the stored flights for the given schedule inside one transaction.
// Listed airports are upserted; airports only referenced by a flight are created bare.
func (c *Client) replaceSchedule(ctx context.Context, s Schedule) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer logging.SafeRollbackWithLogging(tx, c.logger, "replace_schedule")

	deleteSQL, deleteArgs, err := c.sb.Delete("flights").ToSql()
	if err != nil {
		return fmt.Errorf("build delete flights sql: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
		return fmt.Errorf("delete flights: %w", err)
	}

	for _, a := range s.Airports {
		if err := c.insertAirport(ctx, tx, a, true); err != nil {
			return err
		}
	}
	for _, code := range s.referencedAirports() {
		if err := c.insertAirport(ctx, tx, schedule.Airport{ICAO: code}, false); err != nil {
			return err
		}
	}
	for _, leg := range s.Flights {
		if err := c.insertFlight(ctx, tx, leg); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}

// toNullString converts a string to sql.NullString
func toNullString(s string) sql.NullString {
	return sql.NullString{
		String: s,
		Valid:  s != "",
	}
}
