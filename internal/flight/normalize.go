package flight

import (
	"strconv"
	"strings"
	"time"
)

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// NormalizeResponse converts one supplier payload into the shared shape. A nil
// payload stays nil so the merger can treat the supplier as absent.
func NormalizeResponse(supplier Supplier, raw *RawSearchResponse) *ProviderResult {
	if raw == nil {
		return nil
	}

	result := &ProviderResult{
		DepartureFlights: normalizeDirections(supplier, raw.DepartureFlights),
		ReturnFlights:    normalizeDirections(supplier, raw.ReturnFlights),
	}

	if raw.FilteringOptions != nil {
		result.FilteringOptions = normalizeFilteringOptions(*raw.FilteringOptions)
	} else {
		// Supplier sent flights without facets; derive them so the merge has
		// something consistent to combine.
		result.FilteringOptions = DeriveFacets(result.DepartureFlights, Departure)
	}

	return result
}

func normalizeDirections(supplier Supplier, raws []RawDirection) []Direction {
	out := make([]Direction, 0, len(raws))
	for _, r := range raws {
		out = append(out, NormalizeDirection(supplier, r))
	}
	return out
}

// NormalizeDirection never rejects a record: missing fields come back as
// zero values.
func NormalizeDirection(supplier Supplier, raw RawDirection) Direction {
	d := Direction{
		ID:           deref(raw.ID),
		Supplier:     supplier,
		ProviderKey:  deref(raw.ProviderKey),
		ProviderName: deref(raw.ProviderName),
		Legs:         make([]Leg, 0, len(raw.Legs)),
		Fares:        make([]Fare, 0, len(raw.Fares)),
	}
	if raw.PackageInfo != nil {
		d.PackageInfo.PackageKey = deref(raw.PackageInfo.PackageKey)
	}

	for _, rl := range raw.Legs {
		d.Legs = append(d.Legs, normalizeLeg(rl))
	}

	for _, rf := range raw.Fares {
		fare := normalizeFare(rf)
		if fare.CheckedBaggage != "" {
			d.HasCheckedBaggage = true
		}
		if fare.CabinBaggage != "" {
			d.HasCabinBaggage = true
		}
		if fare.TotalPrice > 0 && (d.MinPrice == 0 || fare.TotalPrice < d.MinPrice) {
			d.MinPrice = fare.TotalPrice
		}
		d.Fares = append(d.Fares, fare)
	}

	return d
}

func normalizeLeg(raw RawLeg) Leg {
	leg := Leg{
		FlightNumber:    deref(raw.FlightNumber),
		DurationMinutes: deref(raw.Duration),
		LayoverMinutes:  deref(raw.LayoverWait),
	}
	if raw.Airline != nil {
		leg.CarrierCode = strings.ToUpper(strings.TrimSpace(deref(raw.Airline.Code)))
		leg.CarrierName = deref(raw.Airline.Name)
		leg.CarrierLogo = deref(raw.Airline.Logo)
	}
	leg.Departure = normalizePoint(raw.Departure)
	leg.Arrival = normalizePoint(raw.Arrival)

	if leg.DurationMinutes == 0 && !leg.Departure.Datetime.IsZero() && leg.Arrival.Datetime.After(leg.Departure.Datetime) {
		leg.DurationMinutes = int(leg.Arrival.Datetime.Sub(leg.Departure.Datetime).Minutes())
	}
	return leg
}

func normalizePoint(raw *RawPoint) Point {
	if raw == nil {
		return Point{}
	}
	p := Point{
		Airport:     deref(raw.Airport),
		AirportName: deref(raw.AirportName),
		City:        deref(raw.City),
	}
	if t, ok := parseDateTime(deref(raw.Time)); ok {
		p.Datetime = t
		p.Timestamp = t.Unix()
	}
	return p
}

func normalizeFare(raw RawFare) Fare {
	fare := Fare{
		TotalPrice: deref(raw.TotalPrice),
		BasePrice:  deref(raw.BasePrice),
		Currency:   deref(raw.Currency),
		FareClass:  deref(raw.FareClass),
	}
	if raw.Baggage != nil {
		fare.CheckedBaggage = deref(raw.Baggage.Checked)
		fare.CabinBaggage = deref(raw.Baggage.Cabin)
	}
	return fare
}

func normalizeFilteringOptions(raw RawFilteringOptions) FilteringOptions {
	opts := FilteringOptions{
		MinPrice: deref(raw.MinPrice),
		MaxPrice: deref(raw.MaxPrice),
		Airline:  make([]AirlineOption, 0, len(raw.Airline)),
		Stops:    make([]StopOption, 0, len(raw.Stops)),
		Provider: make([]ProviderOption, 0, len(raw.Provider)),
	}

	for _, a := range raw.Airline {
		opt := AirlineOption{
			ID:    deref(a.ID),
			Text:  deref(a.Text),
			Count: "0",
			Logo:  deref(a.Logo),
		}
		if a.Count != nil && *a.Count != "" {
			opt.Count = string(*a.Count)
		}
		if opt.ID == "" {
			opt.ID = UnknownAirlineID
			opt.Text = UnknownAirlineText
		}
		opts.Airline = append(opts.Airline, opt)
	}

	for _, s := range raw.Stops {
		id := deref(s.ID)
		opts.Stops = append(opts.Stops, StopOption{
			ID:    id,
			Text:  orDefault(deref(s.Text), stopLabel(id)),
			Count: deref(s.Count),
		})
	}

	for _, p := range raw.Provider {
		id := deref(p.ID)
		opts.Provider = append(opts.Provider, ProviderOption{
			ID:    id,
			Text:  orDefault(deref(p.Text), id),
			Count: deref(p.Count),
		})
	}

	return opts
}

func parseDateTime(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func stopLabel(stops int) string {
	switch stops {
	case 0:
		return "Direct"
	case 1:
		return "1 Stop"
	default:
		return strconv.Itoa(stops) + " Stops"
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
