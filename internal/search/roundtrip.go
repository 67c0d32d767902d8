package search

import (
	"flights.flyazureva.com/internal/schedule"
)

type RoundTripRequest struct {
	Outbound   Filters
	ReturnDate schedule.Date
}

// ReturnFilters swaps the outbound airports and substitutes the return date. Paging is not
// carried over to the return half.
func (r RoundTripRequest) ReturnFilters() Filters {
	return Filters{
		DepartureAirport: r.Outbound.ArrivalAirport,
		ArrivalAirport:   r.Outbound.DepartureAirport,
		Date:             r.ReturnDate,
	}
}

// RoundTripResult holds two independently computed halves.
type RoundTripResult struct {
	Outbound Result
	Return   Result
}
