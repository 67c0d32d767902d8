package utils

import (
	"errors"
	"regexp"
	"strings"

	"flights.flyazureva.com/internal/schedule"
)

const (
	MaxLimit = 100
)

var (
	airportCodePattern = regexp.MustCompile(`^[A-Za-z0-9]{3,4}$`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// ValidateAirportCode accepts three letter IATA or four letter ICAO style codes.
func ValidateAirportCode(code string) error {
	if code == "" {
		return errors.New("airport code cannot be empty")
	}

	if !airportCodePattern.MatchString(code) {
		return errors.New("airport code must be 3 or 4 alphanumeric characters")
	}

	return nil
}

func ValidateFlightType(t string) error {
	switch FlightType(t) {
	case FlightTypeRoundTrip, FlightTypeOneWay:
		return nil
	case "":
		return errors.New("type cannot be empty")
	default:
		return errors.New("type must be one of roundtrip, one-way")
	}
}

// ValidateDate parses dates in YYYY-MM-DD or RFC 3339 form.
func ValidateDate(date string) (schedule.Date, error) {
	if date == "" {
		return schedule.Date{}, errors.New("date cannot be empty")
	}

	d, err := schedule.ParseDate(date)
	if err != nil {
		return schedule.Date{}, errors.New("invalid date format, use YYYY-MM-DD")
	}

	return d, nil
}

func ValidateLimit(limit int) error {
	if limit < 1 || limit > MaxLimit {
		return errors.New("limit must be between 1 and 100")
	}
	return nil
}

func ValidateOffset(offset int) error {
	if offset < 0 {
		return errors.New("offset must be non-negative")
	}
	return nil
}

// SanitizeInput removes HTML tags and surrounding whitespace.
func SanitizeInput(input string) string {
	return strings.TrimSpace(htmlTagPattern.ReplaceAllString(input, ""))
}
