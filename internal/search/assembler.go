package search

import (
	"flights.flyazureva.com/internal/schedule"
)

// DatedLeg is a leg resolved to a concrete departure date. It no longer carries its weekly
// calendar.
type DatedLeg struct {
	FlightNumber     string
	DepartureAirport string
	ArrivalAirport   string
	DepartureTime    schedule.Clock
	ArrivalTime      schedule.Clock
	DepartureDate    schedule.Date
}

func newDatedLeg(leg schedule.FlightLeg, date schedule.Date) DatedLeg {
	return DatedLeg{
		FlightNumber:     leg.FlightNumber,
		DepartureAirport: leg.DepartureAirport,
		ArrivalAirport:   leg.ArrivalAirport,
		DepartureTime:    leg.DepartureTime,
		ArrivalTime:      leg.ArrivalTime,
		DepartureDate:    date,
	}
}

// Result partitions itineraries by leg count. Direct itineraries are flattened to their single
// leg.
type Result struct {
	Direct  []DatedLeg
	OneStop [][]DatedLeg
}

// Assemble resolves raw itineraries against the requested date, keeping executor order within
// each bucket. Itineraries with an unserved date or an infeasible connection are dropped.
func Assemble(raw []schedule.RawItinerary, date schedule.Date) Result {
	result := Result{
		Direct:  []DatedLeg{},
		OneStop: [][]DatedLeg{},
	}

	for _, it := range raw {
		if !it.IsDirect() && !it.IsOneStop() {
			continue
		}

		days := EffectiveServiceDays(it)

		if it.IsOneStop() && !Feasible(it[0], it[1], date) {
			continue
		}

		for _, d := range Expand(days, date) {
			legs := make([]DatedLeg, len(it))
			for i, leg := range it {
				legs[i] = newDatedLeg(leg, d)
			}

			if it.IsDirect() {
				result.Direct = append(result.Direct, legs[0])
			} else {
				result.OneStop = append(result.OneStop, legs)
			}
		}
	}

	return result
}

// Empty reports whether neither bucket holds an itinerary.
func (r Result) Empty() bool {
	return len(r.Direct) == 0 && len(r.OneStop) == 0
}
