package search

import (
	"time"

	"flights.flyazureva.com/internal/schedule"
)

// ArrivalInstant places a leg's arrival on the base date, rolling over to the next day when the
// arrival clock is earlier than the departure clock.
func ArrivalInstant(leg schedule.FlightLeg, base schedule.Date) time.Time {
	day := base
	if leg.CrossesMidnight() {
		day = base.AddDays(1)
	}
	return leg.ArrivalTime.At(day)
}

// DepartureInstant places a leg's departure on the base date.
func DepartureInstant(leg schedule.FlightLeg, base schedule.Date) time.Time {
	return leg.DepartureTime.At(base)
}

// Feasible reports whether the second leg departs strictly after the first one lands. Both legs
// share the base date and no minimum connection time is applied.
func Feasible(first, second schedule.FlightLeg, base schedule.Date) bool {
	return ArrivalInstant(first, base).Before(DepartureInstant(second, base))
}
