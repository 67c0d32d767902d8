package models

import (
	"flights.flyazureva.com/internal/schedule"
	"flights.flyazureva.com/internal/search"
)

// Leg is a resolved flight leg as sent to clients. Service days are never exposed.
type Leg struct {
	FlightNumber     string        `json:"flight_number"`
	DepartureAirport string        `json:"departure_airport"`
	ArrivalAirport   string        `json:"arrival_airport"`
	DepartureTime    string        `json:"departure_time"`
	ArrivalTime      string        `json:"arrival_time"`
	DepartureDate    schedule.Date `json:"departure_date"`
}

func NewLeg(l search.DatedLeg) Leg {
	return Leg{
		FlightNumber:     l.FlightNumber,
		DepartureAirport: l.DepartureAirport,
		ArrivalAirport:   l.ArrivalAirport,
		DepartureTime:    l.DepartureTime.String(),
		ArrivalTime:      l.ArrivalTime.String(),
		DepartureDate:    l.DepartureDate,
	}
}

// Itineraries holds the direct and one-stop buckets of one search half.
type Itineraries struct {
	Direct  []Leg   `json:"direct"`
	OneStop [][]Leg `json:"one_stop"`
}

func NewItineraries(r search.Result) Itineraries {
	out := Itineraries{
		Direct:  make([]Leg, 0, len(r.Direct)),
		OneStop: make([][]Leg, 0, len(r.OneStop)),
	}
	for _, l := range r.Direct {
		out.Direct = append(out.Direct, NewLeg(l))
	}
	for _, pair := range r.OneStop {
		legs := make([]Leg, 0, len(pair))
		for _, l := range pair {
			legs = append(legs, NewLeg(l))
		}
		out.OneStop = append(out.OneStop, legs)
	}
	return out
}

type OneWayResponse struct {
	Flights Itineraries `json:"flights"`
}

func NewOneWayResponse(r search.Result) OneWayResponse {
	return OneWayResponse{Flights: NewItineraries(r)}
}

type RoundTripFlights struct {
	Outbound Itineraries `json:"outbound"`
	Return   Itineraries `json:"return"`
}

type RoundTripResponse struct {
	Flights RoundTripFlights `json:"flights"`
}

func NewRoundTripResponse(r search.RoundTripResult) RoundTripResponse {
	return RoundTripResponse{Flights: RoundTripFlights{
		Outbound: NewItineraries(r.Outbound),
		Return:   NewItineraries(r.Return),
	}}
}
