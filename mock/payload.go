package main

import (
	"encoding/json"
	"os"
	"strings"
)

// The mock only looks at the fields it filters on; everything else is passed
// through untouched.
type direction map[string]json.RawMessage

type point struct {
	Airport string `json:"airport"`
}

type leg struct {
	Departure point `json:"departure"`
	Arrival   point `json:"arrival"`
}

type searchResult struct {
	DepartureFlights []direction     `json:"departure_flights"`
	ReturnFlights    []direction     `json:"return_flights"`
	FilteringOptions json.RawMessage `json:"filteringOptions,omitempty"`
}

func loadFixture(path string, envelope any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, envelope)
}

// route returns the first departure and last arrival airport of a direction.
func route(d direction) (string, string) {
	var legs []leg
	if err := json.Unmarshal(d["legs"], &legs); err != nil || len(legs) == 0 {
		return "", ""
	}
	return legs[0].Departure.Airport, legs[len(legs)-1].Arrival.Airport
}

func filterRoute(flights []direction, from, to string) []direction {
	out := make([]direction, 0, len(flights))
	for _, f := range flights {
		o, d := route(f)
		if from != "" && !strings.EqualFold(o, from) {
			continue
		}
		if to != "" && !strings.EqualFold(d, to) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// filterResult keeps the outbound legs from origin to destination and, for
// round trips, the way back.
func filterResult(res *searchResult, origin, destination string, roundTrip bool) {
	res.DepartureFlights = filterRoute(res.DepartureFlights, origin, destination)
	if !roundTrip {
		res.ReturnFlights = []direction{}
		return
	}
	res.ReturnFlights = filterRoute(res.ReturnFlights, destination, origin)
}
