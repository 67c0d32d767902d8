package feed

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flights.flyazureva.com/flightdb"
	"flights.flyazureva.com/internal/schedule"
)

type countingImporter struct {
	calls atomic.Int32
	fail  atomic.Bool
}

func (c *countingImporter) ImportSchedule(ctx context.Context, source string) (flightdb.Schedule, error) {
	c.calls.Add(1)
	if c.fail.Load() {
		return flightdb.Schedule{}, assert.AnError
	}
	return flightdb.Schedule{
		Airports: []schedule.Airport{{ICAO: "LFPG"}, {ICAO: "LFBO"}},
		Flights:  []schedule.FlightLeg{{FlightNumber: "AZ100"}},
	}, nil
}

func TestManagerLocalFileImportsOnce(t *testing.T) {
	importer := &countingImporter{}
	manager := NewManager(importer, Config{Source: "testdata/schedule.yaml", Interval: time.Millisecond})

	require.NoError(t, manager.Start(context.Background()))
	time.Sleep(20 * time.Millisecond)
	manager.Shutdown()

	assert.Equal(t, int32(1), importer.calls.Load())

	status := manager.Status()
	assert.False(t, status.Remote)
	assert.Equal(t, 2, status.Airports)
	assert.Equal(t, 1, status.Flights)
	assert.False(t, status.LastUpdated.IsZero())
}

func TestManagerRefreshesRemoteSource(t *testing.T) {
	importer := &countingImporter{}
	manager := NewManager(importer, Config{Source: "https://schedules.example.com/flights.yaml", Interval: 5 * time.Millisecond})

	require.NoError(t, manager.Start(context.Background()))
	defer manager.Shutdown()

	assert.Eventually(t, func() bool { return importer.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	assert.True(t, manager.Status().Remote)
}

func TestManagerKeepsStatusWhenRefreshFails(t *testing.T) {
	importer := &countingImporter{}
	manager := NewManager(importer, Config{Source: "https://schedules.example.com/flights.yaml", Interval: 5 * time.Millisecond})

	require.NoError(t, manager.Start(context.Background()))
	defer manager.Shutdown()

	importer.fail.Store(true)
	calls := importer.calls.Load()
	// Refreshes run serially, so once two more have started every earlier one has finished.
	assert.Eventually(t, func() bool { return importer.calls.Load() >= calls+2 }, time.Second, time.Millisecond)
	settled := manager.Status()

	assert.Eventually(t, func() bool { return importer.calls.Load() >= calls+4 }, time.Second, time.Millisecond)
	assert.Equal(t, settled.LastUpdated, manager.Status().LastUpdated)
	assert.Equal(t, 1, settled.Flights)
}

func TestManagerStartFailure(t *testing.T) {
	importer := &countingImporter{}
	importer.fail.Store(true)
	manager := NewManager(importer, Config{Source: "https://schedules.example.com/flights.yaml", Interval: time.Millisecond})

	err := manager.Start(context.Background())

	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "flights.yaml")
	assert.NotPanics(t, manager.Shutdown)
}

func TestManagerShutdown(t *testing.T) {
	manager := NewManager(&countingImporter{}, Config{Source: "http://schedules.example.com/flights.yaml", Interval: time.Hour})
	require.NoError(t, manager.Start(context.Background()))

	done := make(chan struct{})
	go func() {
		manager.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Shutdown took too long")
	}

	// Second call should be safe
	manager.Shutdown()
}
