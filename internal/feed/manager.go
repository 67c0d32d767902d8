// Package feed keeps the flight store in sync with its schedule source. Remote sources are
// re-imported on an interval; local files are imported once.
package feed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"flights.flyazureva.com/flightdb"
	"flights.flyazureva.com/internal/logging"
)

const (
	DefaultInterval = 24 * time.Hour
	DefaultTimeout  = 60 * time.Second
)

// Importer replaces the stored schedule with the one read from source.
type Importer interface {
	ImportSchedule(ctx context.Context, source string) (flightdb.Schedule, error)
}

type Config struct {
	Source   string
	Interval time.Duration // zero disables periodic refresh
	Timeout  time.Duration
	Logger   *slog.Logger
}

// Status describes the last successful import.
type Status struct {
	Source      string
	Remote      bool
	LastUpdated time.Time
	Airports    int
	Flights     int
}

// Manager imports a schedule source and refreshes it in the background.
type Manager struct {
	config       Config
	importer     Importer
	isLocalFile  bool
	mu           sync.RWMutex
	status       Status
	shutdownChan chan struct{}
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

func NewManager(importer Importer, config Config) *Manager {
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	isLocalFile := !strings.HasPrefix(config.Source, "http://") && !strings.HasPrefix(config.Source, "https://")

	return &Manager{
		config:       config,
		importer:     importer,
		isLocalFile:  isLocalFile,
		status:       Status{Source: config.Source, Remote: !isLocalFile},
		shutdownChan: make(chan struct{}),
	}
}

// Start runs the initial import and, for remote sources with an interval, starts the refresh
// loop. An initial import failure is returned and nothing is started.
func (m *Manager) Start(ctx context.Context) error {
	if err := m.refresh(ctx); err != nil {
		return err
	}

	if !m.isLocalFile && m.config.Interval > 0 {
		m.wg.Add(1)
		go m.refreshPeriodically()
	}

	return nil
}

func (m *Manager) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// Shutdown stops the refresh loop and waits for an in-flight import to finish.
func (m *Manager) Shutdown() {
	m.shutdownOnce.Do(func() {
		close(m.shutdownChan)
		m.wg.Wait()
	})
}

func (m *Manager) refresh(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, m.config.Timeout)
	defer cancel()

	s, err := m.importer.ImportSchedule(ctx, m.config.Source)
	if err != nil {
		return fmt.Errorf("import %s: %w", m.config.Source, err)
	}

	m.mu.Lock()
	m.status.LastUpdated = time.Now()
	m.status.Airports = len(s.Airports)
	m.status.Flights = len(s.Flights)
	m.mu.Unlock()

	return nil
}

func (m *Manager) refreshPeriodically() {
	defer m.wg.Done()

	ticker := time.NewTicker(m.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// A failed refresh keeps serving the previous schedule.
			if err := m.refresh(context.Background()); err != nil {
				logging.LogError(m.config.Logger, "schedule refresh failed", err,
					slog.String("component", "feed"))
				continue
			}
			logging.LogOperation(m.config.Logger, "schedule_refreshed",
				slog.String("component", "feed"),
				slog.String("source", m.config.Source))
		case <-m.shutdownChan:
			m.config.Logger.Debug("shutting down schedule refresh", slog.String("component", "feed"))
			return
		}
	}
}
