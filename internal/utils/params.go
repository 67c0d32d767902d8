package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"flights.flyazureva.com/internal/schedule"
	"flights.flyazureva.com/internal/search"
)

type FlightType string

const (
	FlightTypeRoundTrip FlightType = "roundtrip"
	FlightTypeOneWay    FlightType = "one-way"
)

// FlightsQuery is a validated /flights request.
type FlightsQuery struct {
	Type       FlightType
	Filters    search.Filters
	ReturnDate schedule.Date
}

func (q FlightsQuery) IsRoundTrip() bool {
	return q.Type == FlightTypeRoundTrip
}

func (q FlightsQuery) RoundTripRequest() search.RoundTripRequest {
	return search.RoundTripRequest{Outbound: q.Filters, ReturnDate: q.ReturnDate}
}

// ParseIntParam retrieves an int from the query parameters.
// A missing key yields 0 and no error; an unparsable value is recorded in fieldErrors.
func ParseIntParam(params url.Values, key string, fieldErrors map[string][]string) (int, bool, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := strings.TrimSpace(params.Get(key))
	if val == "" {
		return 0, false, fieldErrors
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return 0, false, fieldErrors
	}
	return n, true, fieldErrors
}

// ParseFlightsQuery validates the /flights query string. The returned map is empty when the
// query is valid.
func ParseFlightsQuery(params url.Values) (FlightsQuery, map[string][]string) {
	fieldErrors := make(map[string][]string)
	var q FlightsQuery

	airport := func(key string) string {
		code := strings.ToUpper(SanitizeInput(params.Get(key)))
		if err := ValidateAirportCode(code); err != nil {
			fieldErrors[key] = append(fieldErrors[key], err.Error())
		}
		return code
	}
	q.Filters.DepartureAirport = airport("departure_airport")
	q.Filters.ArrivalAirport = airport("arrival_airport")

	flightType := SanitizeInput(params.Get("type"))
	if err := ValidateFlightType(flightType); err != nil {
		fieldErrors["type"] = append(fieldErrors["type"], err.Error())
	}
	q.Type = FlightType(flightType)

	if d, err := ValidateDate(SanitizeInput(params.Get("departure_date"))); err != nil {
		fieldErrors["departure_date"] = append(fieldErrors["departure_date"], err.Error())
	} else {
		q.Filters.Date = d
	}

	if q.IsRoundTrip() {
		if d, err := ValidateDate(SanitizeInput(params.Get("return_date"))); err != nil {
			fieldErrors["return_date"] = append(fieldErrors["return_date"], err.Error())
		} else {
			q.ReturnDate = d
		}
	}

	limit, ok, _ := ParseIntParam(params, "limit", fieldErrors)
	if ok {
		if err := ValidateLimit(limit); err != nil {
			fieldErrors["limit"] = append(fieldErrors["limit"], err.Error())
		}
		q.Filters.Limit = limit
	}

	offset, ok, _ := ParseIntParam(params, "offset", fieldErrors)
	if ok {
		if err := ValidateOffset(offset); err != nil {
			fieldErrors["offset"] = append(fieldErrors["offset"], err.Error())
		}
		q.Filters.Offset = offset
	}

	return q, fieldErrors
}
