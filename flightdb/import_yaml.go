package flightdb

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"flights.flyazureva.com/internal/schedule"
)

type scheduleFile struct {
	Airports []airportEntry `yaml:"airports"`
	Flights  []flightEntry  `yaml:"flights"`
}

type airportEntry struct {
	ICAO string `yaml:"icao"`
	Name string `yaml:"name"`
	City string `yaml:"city"`
}

type flightEntry struct {
	FlightNumber     string `yaml:"flight_number"`
	DepartureAirport string `yaml:"departure_airport"`
	ArrivalAirport   string `yaml:"arrival_airport"`
	DepartureTime    string `yaml:"departure_time"`
	ArrivalTime      string `yaml:"arrival_time"`
	ServiceDays      string `yaml:"service_days"`
}

// ParseYAMLSchedule decodes a schedule file with top-level airports and flights lists.
func ParseYAMLSchedule(b []byte) (Schedule, error) {
	var f scheduleFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return Schedule{}, fmt.Errorf("decode schedule yaml: %w", err)
	}

	s := Schedule{
		Airports: make([]schedule.Airport, 0, len(f.Airports)),
		Flights:  make([]schedule.FlightLeg, 0, len(f.Flights)),
	}
	for _, a := range f.Airports {
		s.Airports = append(s.Airports, schedule.Airport{
			ICAO: strings.ToUpper(strings.TrimSpace(a.ICAO)),
			Name: a.Name,
			City: a.City,
		})
	}
	for i, e := range f.Flights {
		leg, err := e.toLeg()
		if err != nil {
			return Schedule{}, fmt.Errorf("flights[%d]: %w", i, err)
		}
		s.Flights = append(s.Flights, leg)
	}

	return s, nil
}

func (e flightEntry) toLeg() (schedule.FlightLeg, error) {
	dep, err := schedule.ParseClock(e.DepartureTime)
	if err != nil {
		return schedule.FlightLeg{}, err
	}
	arr, err := schedule.ParseClock(e.ArrivalTime)
	if err != nil {
		return schedule.FlightLeg{}, err
	}
	days, err := schedule.ParseServiceDays(e.ServiceDays)
	if err != nil {
		return schedule.FlightLeg{}, err
	}

	leg := schedule.FlightLeg{
		FlightNumber:     strings.TrimSpace(e.FlightNumber),
		DepartureAirport: strings.ToUpper(strings.TrimSpace(e.DepartureAirport)),
		ArrivalAirport:   strings.ToUpper(strings.TrimSpace(e.ArrivalAirport)),
		DepartureTime:    dep,
		ArrivalTime:      arr,
		ServiceDays:      days,
	}
	if err := leg.Validate(); err != nil {
		return schedule.FlightLeg{}, err
	}
	return leg, nil
}
