package flightdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flights.flyazureva.com/internal/schedule"
	"flights.flyazureva.com/internal/search"
)

func flightNumbers(raw []schedule.RawItinerary) [][]string {
	out := make([][]string, 0, len(raw))
	for _, it := range raw {
		numbers := make([]string, len(it))
		for i, leg := range it {
			numbers[i] = leg.FlightNumber
		}
		out = append(out, numbers)
	}
	return out
}

func TestExecute(t *testing.T) {
	client := newSeededClient(t)
	ctx := context.Background()

	wednesday := search.BuildQueries(search.Filters{
		DepartureAirport: "LFPG",
		ArrivalAirport:   "LFBO",
		Date:             schedule.MustParseDate("2024-01-03"),
	})

	tests := []struct {
		name     string
		query    search.Query
		expected [][]string
	}{
		{
			name:     "direct legs serving the weekday",
			query:    wednesday.Direct,
			expected: [][]string{{"AZ100"}},
		},
		{
			name:     "connections where both legs serve the weekday",
			query:    wednesday.OneStop,
			expected: [][]string{{"AZ110", "AZ120"}, {"AZ130", "AZ140"}},
		},
		{
			name: "no weekday predicate widens the candidates",
			query: search.Query{Shape: search.ShapeDirect, Params: search.QueryParams{
				DepartureAirport: "LFPG",
				Limit:            10,
			}},
			expected: [][]string{{"AZ100"}, {"AZ110"}, {"AZ130"}},
		},
		{
			name: "limit and offset page through rows",
			query: search.Query{Shape: search.ShapeDirect, Params: search.QueryParams{
				DepartureAirport: "LFPG",
				Limit:            1,
				Offset:           1,
			}},
			expected: [][]string{{"AZ110"}},
		},
		{
			name: "unserved weekday",
			query: search.BuildQueries(search.Filters{
				DepartureAirport: "LFPG",
				ArrivalAirport:   "LFBO",
				Date:             schedule.MustParseDate("2024-01-06"),
			}).Direct,
			expected: [][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := client.Execute(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, flightNumbers(raw))
		})
	}
}

func TestExecuteDecodesLegs(t *testing.T) {
	client := newSeededClient(t)

	raw, err := client.Execute(context.Background(), search.Query{
		Shape:  search.ShapeDirect,
		Params: search.QueryParams{DepartureAirport: "LFPG", ArrivalAirport: "LFML", Limit: 10},
	})
	require.NoError(t, err)
	require.Len(t, raw, 1)
	require.True(t, raw[0].IsDirect())

	assert.Equal(t, schedule.FlightLeg{
		FlightNumber:     "AZ130",
		DepartureAirport: "LFPG",
		ArrivalAirport:   "LFML",
		DepartureTime:    schedule.MustParseClock("23:30"),
		ArrivalTime:      schedule.MustParseClock("00:45"),
		ServiceDays:      schedule.NewServiceDays(schedule.Wednesday),
	}, raw[0][0])
}

func TestExecuteRejectsMalformedRows(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.DB.ExecContext(ctx, `INSERT INTO flights
		(flight_number, departure_airport, arrival_airport, departure_time, arrival_time, service_days)
		VALUES ('AZ999', 'LFPG', 'LFBO', '08:00', '09:00', 'someday')`)
	require.NoError(t, err)

	_, err = client.Execute(ctx, search.Query{Shape: search.ShapeDirect, Params: search.QueryParams{Limit: 10}})

	require.Error(t, err)
	assert.ErrorIs(t, err, schedule.ErrUnknownWeekday)
	assert.Contains(t, err.Error(), "AZ999")
}

func TestExecuteUnknownShape(t *testing.T) {
	client := newTestClient(t)

	_, err := client.Execute(context.Background(), search.Query{Shape: "two_stop"})

	assert.Error(t, err)
}

func TestBuildQueryPlaceholders(t *testing.T) {
	day := schedule.Monday
	q := search.Query{Shape: search.ShapeOneStop, Params: search.QueryParams{
		DepartureAirport: "LFPG",
		ArrivalAirport:   "LFBO",
		Day:              &day,
		Limit:            10,
		Offset:           20,
	}}

	t.Run("sqlite", func(t *testing.T) {
		c := &Client{sb: statementBuilder(DriverSQLite)}
		query, args, err := c.buildQuery(q)
		require.NoError(t, err)

		assert.Contains(t, query, "JOIN flights f2 ON f2.departure_airport = f1.arrival_airport")
		assert.Contains(t, query, "f1.departure_airport = ?")
		assert.Contains(t, query, "f2.arrival_airport = ?")
		assert.Contains(t, query, "LIMIT 10 OFFSET 20")
		assert.Equal(t, []interface{}{"LFPG", "LFBO", "%,monday,%", "%,monday,%"}, args)
	})

	t.Run("postgres", func(t *testing.T) {
		c := &Client{sb: statementBuilder(DriverPostgres)}
		query, _, err := c.buildQuery(q)
		require.NoError(t, err)

		assert.Contains(t, query, "f1.departure_airport = $1")
		assert.Contains(t, query, "f2.arrival_airport = $2")
		assert.Contains(t, query, "LIKE $4")
		assert.NotContains(t, query, "?")
	})
}

func TestSearcherOverStore(t *testing.T) {
	client := newSeededClient(t)
	searcher := search.NewSearcher(client)
	ctx := context.Background()

	t.Run("one-way", func(t *testing.T) {
		result, err := searcher.Search(ctx, search.Filters{
			DepartureAirport: "LFPG",
			ArrivalAirport:   "LFBO",
			Date:             schedule.MustParseDate("2024-01-03"),
		})
		require.NoError(t, err)

		require.Len(t, result.Direct, 1)
		assert.Equal(t, "AZ100", result.Direct[0].FlightNumber)

		// AZ130 lands at 00:45 the next day, after AZ140 has left.
		require.Len(t, result.OneStop, 1)
		assert.Equal(t, "AZ110", result.OneStop[0][0].FlightNumber)
		assert.Equal(t, "AZ120", result.OneStop[0][1].FlightNumber)
	})

	t.Run("round trip", func(t *testing.T) {
		result, err := searcher.RoundTrip(ctx, search.RoundTripRequest{
			Outbound: search.Filters{
				DepartureAirport: "LFPG",
				ArrivalAirport:   "LFBO",
				Date:             schedule.MustParseDate("2024-01-03"),
			},
			ReturnDate: schedule.MustParseDate("2024-01-05"),
		})
		require.NoError(t, err)

		require.Len(t, result.Outbound.Direct, 1)
		require.Len(t, result.Return.Direct, 1)
		assert.Equal(t, "AZ101", result.Return.Direct[0].FlightNumber)
		require.Len(t, result.Return.OneStop, 1)
		assert.Equal(t, "AZ121", result.Return.OneStop[0][0].FlightNumber)
		assert.Equal(t, "AZ111", result.Return.OneStop[0][1].FlightNumber)
	})
}
