package flight

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
)

// Supplier records decode member by member. A member with the wrong JSON type
// stays at its zero value instead of failing the whole payload; numbers sent
// as strings are still read.

func decodeMembers(data []byte, members map[string]any) {
	var object map[string]json.RawMessage
	if err := json.Unmarshal(data, &object); err != nil {
		return
	}
	for name, target := range members {
		if value, ok := object[name]; ok {
			decodeMember(value, target)
		}
	}
}

func decodeMember(value json.RawMessage, target any) {
	dst := reflect.ValueOf(target).Elem()
	fresh := reflect.New(dst.Type())
	if err := json.Unmarshal(value, fresh.Interface()); err == nil {
		dst.Set(fresh.Elem())
		return
	}

	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return
	}
	s = strings.TrimSpace(s)
	switch t := target.(type) {
	case **int:
		if n, err := strconv.Atoi(s); err == nil {
			*t = &n
		}
	case **float64:
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			*t = &f
		}
	}
}

func (r *RawSearchResponse) UnmarshalJSON(data []byte) error {
	decodeMembers(data, map[string]any{
		"departure_flights": &r.DepartureFlights,
		"return_flights":    &r.ReturnFlights,
		"filteringOptions":  &r.FilteringOptions,
	})
	return nil
}

func (d *RawDirection) UnmarshalJSON(data []byte) error {
	decodeMembers(data, map[string]any{
		"id":            &d.ID,
		"provider_key":  &d.ProviderKey,
		"provider_name": &d.ProviderName,
		"package_info":  &d.PackageInfo,
		"legs":          &d.Legs,
		"fares":         &d.Fares,
	})
	return nil
}

func (p *RawPackageInfo) UnmarshalJSON(data []byte) error {
	decodeMembers(data, map[string]any{"package_key": &p.PackageKey})
	return nil
}

func (l *RawLeg) UnmarshalJSON(data []byte) error {
	decodeMembers(data, map[string]any{
		"airline":       &l.Airline,
		"flight_number": &l.FlightNumber,
		"departure":     &l.Departure,
		"arrival":       &l.Arrival,
		"duration":      &l.Duration,
		"layover_wait":  &l.LayoverWait,
	})
	return nil
}

func (a *RawAirline) UnmarshalJSON(data []byte) error {
	decodeMembers(data, map[string]any{
		"code": &a.Code,
		"name": &a.Name,
		"logo": &a.Logo,
	})
	return nil
}

func (p *RawPoint) UnmarshalJSON(data []byte) error {
	decodeMembers(data, map[string]any{
		"airport":      &p.Airport,
		"airport_name": &p.AirportName,
		"city":         &p.City,
		"time":         &p.Time,
	})
	return nil
}

func (f *RawFare) UnmarshalJSON(data []byte) error {
	decodeMembers(data, map[string]any{
		"total_price": &f.TotalPrice,
		"base_price":  &f.BasePrice,
		"currency":    &f.Currency,
		"fare_class":  &f.FareClass,
		"baggage":     &f.Baggage,
	})
	return nil
}

func (b *RawBaggage) UnmarshalJSON(data []byte) error {
	decodeMembers(data, map[string]any{
		"checked": &b.Checked,
		"cabin":   &b.Cabin,
	})
	return nil
}

func (o *RawFilteringOptions) UnmarshalJSON(data []byte) error {
	decodeMembers(data, map[string]any{
		"minPrice": &o.MinPrice,
		"maxPrice": &o.MaxPrice,
		"airline":  &o.Airline,
		"stops":    &o.Stops,
		"provider": &o.Provider,
	})
	return nil
}

func (o *RawAirlineOption) UnmarshalJSON(data []byte) error {
	decodeMembers(data, map[string]any{
		"id":    &o.ID,
		"text":  &o.Text,
		"count": &o.Count,
		"logo":  &o.Logo,
	})
	return nil
}

func (o *RawStopOption) UnmarshalJSON(data []byte) error {
	decodeMembers(data, map[string]any{
		"id":    &o.ID,
		"text":  &o.Text,
		"count": &o.Count,
	})
	return nil
}

func (o *RawProviderOption) UnmarshalJSON(data []byte) error {
	decodeMembers(data, map[string]any{
		"id":    &o.ID,
		"text":  &o.Text,
		"count": &o.Count,
	})
	return nil
}
