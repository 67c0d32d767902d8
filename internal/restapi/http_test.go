package restapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"flights.flyazureva.com/internal/app"
	"flights.flyazureva.com/internal/appconf"
	"flights.flyazureva.com/internal/logging"
)

// createTestApi creates a RestAPI backed by an in-memory store seeded from the schedule fixture.
func createTestApi(t *testing.T) *RestAPI {
	return createTestApiWithConfig(t, appconf.Config{Env: appconf.Test})
}

func createTestApiWithConfig(t *testing.T, cfg appconf.Config) *RestAPI {
	t.Helper()

	source, err := filepath.Abs(filepath.Join("..", "..", "testdata", "schedule.yaml"))
	require.NoError(t, err)
	cfg.ScheduleSource = source

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	application, err := app.New(context.Background(), cfg, logger)
	require.NoError(t, err)

	api := NewRestAPI(application)
	t.Cleanup(func() {
		api.Shutdown()
		_ = application.Close()
	})

	return api
}

// serveApiAndRetrieveEndpoint starts a test server over the full handler chain and decodes the
// JSON body of endpoint into a generic map.
func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, map[string]any) {
	t.Helper()

	server := httptest.NewServer(api.Routes())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	return resp, body
}

// flightNumbers flattens a decoded bucket into flight numbers, one slice per itinerary.
func flightNumbers(t *testing.T, bucket any) [][]string {
	t.Helper()

	items, ok := bucket.([]any)
	require.True(t, ok, "bucket should be a JSON array")

	out := make([][]string, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case map[string]any:
			out = append(out, []string{v["flight_number"].(string)})
		case []any:
			var numbers []string
			for _, leg := range v {
				numbers = append(numbers, leg.(map[string]any)["flight_number"].(string))
			}
			out = append(out, numbers)
		default:
			t.Fatalf("unexpected bucket item %T", item)
		}
	}
	return out
}
