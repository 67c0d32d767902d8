package models

import (
	"flights.flyazureva.com/internal/schedule"
)

type AirportsResponse struct {
	Airports []schedule.Airport `json:"airports"`
}

func NewAirportsResponse(airports []schedule.Airport) AirportsResponse {
	if airports == nil {
		airports = []schedule.Airport{}
	}
	return AirportsResponse{Airports: airports}
}
