// Package schedule holds the weekly flight schedule model: legs with a recurring service
// calendar and the calendar primitives (weekday, date, time of day) used to resolve them.
package schedule

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidLeg = errors.New("invalid flight leg")

// Airport is identified by its ICAO-style code.
type Airport struct {
	ICAO string `json:"icao"`
	Name string `json:"name,omitempty"`
	City string `json:"city,omitempty"`
}

// FlightLeg is a single scheduled flight operating on a recurring set of weekdays.
type FlightLeg struct {
	FlightNumber     string
	DepartureAirport string
	ArrivalAirport   string
	DepartureTime    Clock
	ArrivalTime      Clock
	ServiceDays      ServiceDays
}

// CrossesMidnight reports whether the leg lands on the calendar day after it departs.
func (l FlightLeg) CrossesMidnight() bool {
	return l.ArrivalTime.Before(l.DepartureTime)
}

func (l FlightLeg) Validate() error {
	if strings.TrimSpace(l.DepartureAirport) == "" {
		return fmt.Errorf("%w: departure airport is empty", ErrInvalidLeg)
	}
	if strings.TrimSpace(l.ArrivalAirport) == "" {
		return fmt.Errorf("%w: arrival airport is empty", ErrInvalidLeg)
	}
	if l.ServiceDays.Empty() {
		return fmt.Errorf("%w: %s has no service days", ErrInvalidLeg, l.FlightNumber)
	}
	return nil
}

// RawItinerary is one or two legs as returned by the store, origin first.
type RawItinerary []FlightLeg

func (it RawItinerary) IsDirect() bool {
	return len(it) == 1
}

func (it RawItinerary) IsOneStop() bool {
	return len(it) == 2
}
