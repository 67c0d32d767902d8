package search

import (
	"flights.flyazureva.com/internal/schedule"
)

// EffectiveServiceDays is the calendar an itinerary runs on: the leg's own days for a direct
// flight, the intersection of both legs' days for a connection.
func EffectiveServiceDays(it schedule.RawItinerary) schedule.ServiceDays {
	if len(it) == 0 {
		return 0
	}

	days := it[0].ServiceDays
	for _, leg := range it[1:] {
		days = days.Intersect(leg.ServiceDays)
	}
	return days
}

// Expand resolves a weekly calendar against one requested date. The result holds the date when
// it is served and is empty otherwise.
func Expand(days schedule.ServiceDays, date schedule.Date) []schedule.Date {
	if date.IsZero() || !days.Contains(schedule.WeekdayOf(date)) {
		return nil
	}
	return []schedule.Date{date}
}
