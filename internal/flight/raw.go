package flight

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Raw* types mirror the supplier payloads. Every nested field is optional
// because suppliers routinely omit them; NormalizeResponse fills defaults.

type RawSearchResponse struct {
	DepartureFlights []RawDirection       `json:"departure_flights"`
	ReturnFlights    []RawDirection       `json:"return_flights"`
	FilteringOptions *RawFilteringOptions `json:"filteringOptions"`
}

type RawDirection struct {
	ID           *string         `json:"id"`
	ProviderKey  *string         `json:"provider_key"`
	ProviderName *string         `json:"provider_name"`
	PackageInfo  *RawPackageInfo `json:"package_info"`
	Legs         []RawLeg        `json:"legs"`
	Fares        []RawFare       `json:"fares"`
}

type RawPackageInfo struct {
	PackageKey *string `json:"package_key"`
}

type RawLeg struct {
	Airline      *RawAirline `json:"airline"`
	FlightNumber *string     `json:"flight_number"`
	Departure    *RawPoint   `json:"departure"`
	Arrival      *RawPoint   `json:"arrival"`
	Duration     *int        `json:"duration"`
	LayoverWait  *int        `json:"layover_wait"`
}

type RawAirline struct {
	Code *string `json:"code"`
	Name *string `json:"name"`
	Logo *string `json:"logo"`
}

type RawPoint struct {
	Airport     *string `json:"airport"`
	AirportName *string `json:"airport_name"`
	City        *string `json:"city"`
	Time        *string `json:"time"`
}

type RawFare struct {
	TotalPrice *float64    `json:"total_price"`
	BasePrice  *float64    `json:"base_price"`
	Currency   *string     `json:"currency"`
	FareClass  *string     `json:"fare_class"`
	Baggage    *RawBaggage `json:"baggage"`
}

type RawBaggage struct {
	Checked *string `json:"checked"`
	Cabin   *string `json:"cabin"`
}

type RawFilteringOptions struct {
	MinPrice *float64            `json:"minPrice"`
	MaxPrice *float64            `json:"maxPrice"`
	Airline  []RawAirlineOption  `json:"airline"`
	Stops    []RawStopOption     `json:"stops"`
	Provider []RawProviderOption `json:"provider"`
}

type RawAirlineOption struct {
	ID    *string     `json:"id"`
	Text  *string     `json:"text"`
	Count *FlexString `json:"count"`
	Logo  *string     `json:"logo"`
}

type RawStopOption struct {
	ID    *int    `json:"id"`
	Text  *string `json:"text"`
	Count *int    `json:"count"`
}

type RawProviderOption struct {
	ID    *string `json:"id"`
	Text  *string `json:"text"`
	Count *int    `json:"count"`
}

// FlexString accepts either a JSON string or a JSON number. Suppliers are not
// consistent about how they encode facet counts.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if i, err := n.Int64(); err == nil {
		*f = FlexString(strconv.FormatInt(i, 10))
		return nil
	}
	*f = FlexString(n.String())
	return nil
}
