package flightdb

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/jamespfennell/gtfs"

	"flights.flyazureva.com/internal/schedule"
)

// ParseGTFSSchedule reads a static GTFS feed where stops are airports and every consecutive pair
// of stop times within a trip is one flight leg.
func ParseGTFSSchedule(b []byte) (Schedule, error) {
	staticData, err := gtfs.ParseStatic(b, gtfs.ParseStaticOptions{})
	if err != nil {
		return Schedule{}, fmt.Errorf("parse gtfs feed: %w", err)
	}
	return scheduleFromStatic(staticData), nil
}

func scheduleFromStatic(staticData *gtfs.Static) Schedule {
	s := Schedule{
		Airports: make([]schedule.Airport, 0, len(staticData.Stops)),
	}
	for _, stop := range staticData.Stops {
		s.Airports = append(s.Airports, schedule.Airport{
			ICAO: airportCode(&stop),
			Name: stop.Name,
		})
	}

	for _, trip := range staticData.Trips {
		if trip.Service == nil {
			continue
		}
		days := serviceDays(trip.Service)
		if days.Empty() {
			continue
		}

		flightNumber := trip.ShortName
		if flightNumber == "" {
			flightNumber = trip.ID
		}

		stopTimes := slices.Clone(trip.StopTimes)
		slices.SortStableFunc(stopTimes, func(a, b gtfs.ScheduledStopTime) int {
			return cmp.Compare(a.StopSequence, b.StopSequence)
		})

		for i := 1; i < len(stopTimes); i++ {
			from, to := stopTimes[i-1], stopTimes[i]
			if from.Stop == nil || to.Stop == nil {
				continue
			}

			s.Flights = append(s.Flights, schedule.FlightLeg{
				FlightNumber:     flightNumber,
				DepartureAirport: airportCode(from.Stop),
				ArrivalAirport:   airportCode(to.Stop),
				DepartureTime:    clockOf(from.DepartureTime),
				ArrivalTime:      clockOf(to.ArrivalTime),
				ServiceDays:      days,
			})
		}
	}

	return s
}

// airportCode prefers the public stop code over the feed-internal stop id.
func airportCode(stop *gtfs.Stop) string {
	if stop.Code != "" {
		return stop.Code
	}
	return stop.Id
}

// clockOf folds GTFS times past 24:00 back onto the wall clock.
func clockOf(d time.Duration) schedule.Clock {
	d %= 24 * time.Hour
	if d < 0 {
		d += 24 * time.Hour
	}
	return schedule.Clock(d)
}

func serviceDays(svc *gtfs.Service) schedule.ServiceDays {
	var days schedule.ServiceDays
	for wd, runs := range map[schedule.Weekday]bool{
		schedule.Sunday:    svc.Sunday,
		schedule.Monday:    svc.Monday,
		schedule.Tuesday:   svc.Tuesday,
		schedule.Wednesday: svc.Wednesday,
		schedule.Thursday:  svc.Thursday,
		schedule.Friday:    svc.Friday,
		schedule.Saturday:  svc.Saturday,
	} {
		if runs {
			days = days.With(wd)
		}
	}
	return days
}
