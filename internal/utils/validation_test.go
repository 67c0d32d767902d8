package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flights.flyazureva.com/internal/schedule"
)

func TestValidateAirportCode(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr bool
		errMsg  string
	}{
		{name: "ICAO code", code: "LFPG"},
		{name: "IATA code", code: "CDG"},
		{name: "empty code", code: "", wantErr: true, errMsg: "airport code cannot be empty"},
		{name: "too long", code: "LFPGX", wantErr: true, errMsg: "airport code must be 3 or 4 alphanumeric characters"},
		{name: "too short", code: "LF", wantErr: true, errMsg: "airport code must be 3 or 4 alphanumeric characters"},
		{name: "SQL injection attempt", code: "LF';", wantErr: true, errMsg: "airport code must be 3 or 4 alphanumeric characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAirportCode(tt.code)
			if tt.wantErr {
				assert.EqualError(t, err, tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFlightType(t *testing.T) {
	assert.NoError(t, ValidateFlightType("roundtrip"))
	assert.NoError(t, ValidateFlightType("one-way"))
	assert.EqualError(t, ValidateFlightType(""), "type cannot be empty")
	assert.EqualError(t, ValidateFlightType("multi-city"), "type must be one of roundtrip, one-way")
}

func TestValidateDate(t *testing.T) {
	d, err := ValidateDate("2024-01-03")
	require.NoError(t, err)
	assert.Equal(t, schedule.Wednesday, d.Weekday())

	_, err = ValidateDate("03/01/2024")
	assert.EqualError(t, err, "invalid date format, use YYYY-MM-DD")

	_, err = ValidateDate("")
	assert.EqualError(t, err, "date cannot be empty")
}

func TestValidateLimitAndOffset(t *testing.T) {
	assert.NoError(t, ValidateLimit(1))
	assert.NoError(t, ValidateLimit(100))
	assert.Error(t, ValidateLimit(0))
	assert.Error(t, ValidateLimit(101))

	assert.NoError(t, ValidateOffset(0))
	assert.Error(t, ValidateOffset(-1))
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "LFPG", SanitizeInput("  <b>LFPG</b> "))
}

func TestParseIntParam(t *testing.T) {
	params := url.Values{"limit": {"25"}, "offset": {"ten"}}

	limit, ok, fieldErrors := ParseIntParam(params, "limit", nil)
	assert.True(t, ok)
	assert.Equal(t, 25, limit)
	assert.Empty(t, fieldErrors)

	_, ok, fieldErrors = ParseIntParam(params, "offset", fieldErrors)
	assert.False(t, ok)
	assert.Equal(t, []string{`Invalid field value for field "offset".`}, fieldErrors["offset"])

	_, ok, _ = ParseIntParam(params, "missing", fieldErrors)
	assert.False(t, ok)
}

func TestParseFlightsQuery(t *testing.T) {
	t.Run("valid one-way query", func(t *testing.T) {
		q, fieldErrors := ParseFlightsQuery(url.Values{
			"departure_airport": {"lfpg"},
			"arrival_airport":   {"LFBO"},
			"type":              {"one-way"},
			"departure_date":    {"2024-01-03"},
			"limit":             {"5"},
			"offset":            {"10"},
		})

		assert.Empty(t, fieldErrors)
		assert.False(t, q.IsRoundTrip())
		assert.Equal(t, "LFPG", q.Filters.DepartureAirport)
		assert.Equal(t, "LFBO", q.Filters.ArrivalAirport)
		assert.Equal(t, "2024-01-03", q.Filters.Date.String())
		assert.Equal(t, 5, q.Filters.Limit)
		assert.Equal(t, 10, q.Filters.Offset)
		assert.True(t, q.ReturnDate.IsZero())
	})

	t.Run("one-way ignores return_date", func(t *testing.T) {
		_, fieldErrors := ParseFlightsQuery(url.Values{
			"departure_airport": {"LFPG"},
			"arrival_airport":   {"LFBO"},
			"type":              {"one-way"},
			"departure_date":    {"2024-01-03"},
			"return_date":       {"not-a-date"},
		})

		assert.Empty(t, fieldErrors)
	})

	t.Run("valid roundtrip query", func(t *testing.T) {
		q, fieldErrors := ParseFlightsQuery(url.Values{
			"departure_airport": {"LFPG"},
			"arrival_airport":   {"LFBO"},
			"type":              {"roundtrip"},
			"departure_date":    {"2024-01-03"},
			"return_date":       {"2024-01-05"},
		})

		require.Empty(t, fieldErrors)
		req := q.RoundTripRequest()
		assert.Equal(t, q.Filters, req.Outbound)
		assert.Equal(t, "2024-01-05", req.ReturnDate.String())
	})

	t.Run("roundtrip requires return_date", func(t *testing.T) {
		_, fieldErrors := ParseFlightsQuery(url.Values{
			"departure_airport": {"LFPG"},
			"arrival_airport":   {"LFBO"},
			"type":              {"roundtrip"},
			"departure_date":    {"2024-01-03"},
		})

		assert.Equal(t, []string{"date cannot be empty"}, fieldErrors["return_date"])
	})

	t.Run("collects every invalid field", func(t *testing.T) {
		_, fieldErrors := ParseFlightsQuery(url.Values{
			"departure_airport": {"PARIS-CDG"},
			"type":              {"multi-city"},
			"departure_date":    {"tomorrow"},
			"limit":             {"500"},
			"offset":            {"-1"},
		})

		for _, key := range []string{"departure_airport", "arrival_airport", "type", "departure_date", "limit", "offset"} {
			assert.Contains(t, fieldErrors, key)
		}
		assert.NotContains(t, fieldErrors, "return_date")
	})
}
