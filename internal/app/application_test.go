package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flights.flyazureva.com/flightdb"
	"flights.flyazureva.com/internal/appconf"
	"flights.flyazureva.com/internal/schedule"
	"flights.flyazureva.com/internal/search"
)

func TestNewImportsScheduleSource(t *testing.T) {
	source, err := filepath.Abs(filepath.Join("..", "..", "testdata", "schedule.yaml"))
	require.NoError(t, err)

	application, err := New(context.Background(), appconf.Config{
		Env:            appconf.Test,
		DBDriver:       flightdb.DriverSQLite,
		ScheduleSource: source,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Close() })

	require.NotNil(t, application.Logger)
	require.NotNil(t, application.Feed)
	assert.Equal(t, 8, application.Feed.Status().Flights)
	assert.False(t, application.Feed.Status().Remote)
	result, err := application.Searcher.Search(context.Background(), search.Filters{
		DepartureAirport: "LFPG",
		ArrivalAirport:   "LFBO",
		Date:             schedule.MustParseDate("2024-01-03"),
	})
	require.NoError(t, err)
	assert.Len(t, result.Direct, 1)
}

func TestNewFailures(t *testing.T) {
	t.Run("unsupported driver", func(t *testing.T) {
		_, err := New(context.Background(), appconf.Config{Env: appconf.Test, DBDriver: "mysql"}, nil)
		assert.ErrorIs(t, err, flightdb.ErrUnsupportedDriver)
	})

	t.Run("missing schedule source", func(t *testing.T) {
		_, err := New(context.Background(), appconf.Config{
			Env:            appconf.Test,
			ScheduleSource: filepath.Join(t.TempDir(), "missing.yaml"),
		}, nil)
		assert.ErrorContains(t, err, "import schedule")
	})
}

func TestNewWithoutScheduleSource(t *testing.T) {
	application, err := New(context.Background(), appconf.Config{Env: appconf.Test}, nil)
	require.NoError(t, err)
	defer func() { _ = application.Close() }()

	assert.Nil(t, application.Feed)
	airports, err := application.FlightDB.Airports(context.Background())
	require.NoError(t, err)
	assert.Empty(t, airports)
}

func TestCloseWithoutDatabase(t *testing.T) {
	assert.NoError(t, (&Application{}).Close())
}
