package flight

import (
	"sort"
	"strconv"
	"strings"
)

// DeriveFacets computes the filter options for a flight set. For the return
// direction the price range is shifted so the slider starts at zero.
func DeriveFacets(flights []Direction, kind DirectionKind) FilteringOptions {
	opts := FilteringOptions{
		Airline:  make([]AirlineOption, 0),
		Stops:    make([]StopOption, 0),
		Provider: make([]ProviderOption, 0),
	}

	airlineCounts := make(map[string]int)
	airlinePos := make(map[string]int)
	providerPos := make(map[string]int)
	stopPos := make(map[int]int)

	lo, hi := 0.0, 0.0
	priced := false

	for _, f := range flights {
		if code := f.CarrierCode(); code != "" && f.CarrierName() != "" {
			if _, ok := airlinePos[code]; !ok {
				airlinePos[code] = len(opts.Airline)
				opts.Airline = append(opts.Airline, AirlineOption{
					ID:   code,
					Text: f.CarrierName(),
					Logo: f.Legs[0].CarrierLogo,
				})
			}
			airlineCounts[code]++
		}

		if f.ProviderKey != "" {
			if i, ok := providerPos[f.ProviderKey]; ok {
				opts.Provider[i].Count++
			} else {
				providerPos[f.ProviderKey] = len(opts.Provider)
				opts.Provider = append(opts.Provider, ProviderOption{
					ID:    f.ProviderKey,
					Text:  orDefault(f.ProviderName, f.ProviderKey),
					Count: 1,
				})
			}
		}

		stops := f.Stops()
		if i, ok := stopPos[stops]; ok {
			opts.Stops[i].Count++
		} else {
			stopPos[stops] = len(opts.Stops)
			opts.Stops = append(opts.Stops, StopOption{ID: stops, Text: stopLabel(stops), Count: 1})
		}

		if p := f.Price(); p > 0 {
			if !priced || p < lo {
				lo = p
			}
			if !priced || p > hi {
				hi = p
			}
			priced = true
		}
	}

	for i := range opts.Airline {
		opts.Airline[i].Count = strconv.Itoa(airlineCounts[opts.Airline[i].ID])
	}

	sort.SliceStable(opts.Airline, func(i, j int) bool {
		return strings.ToLower(opts.Airline[i].Text) < strings.ToLower(opts.Airline[j].Text)
	})
	sort.SliceStable(opts.Stops, func(i, j int) bool {
		return opts.Stops[i].ID < opts.Stops[j].ID
	})
	sortProviders(opts.Provider)

	if kind == Return {
		opts.MinPrice = 0
		opts.MaxPrice = hi - lo
		opts.ActualMinPrice = lo
		opts.ActualMaxPrice = hi
		return opts
	}

	opts.MinPrice = lo
	opts.MaxPrice = hi
	return opts
}

// FullRange is the unfiltered price range as the slider presents it.
func (o FilteringOptions) FullRange() PriceRange {
	return PriceRange{Min: o.MinPrice, Max: o.MaxPrice}
}

// AbsoluteRange maps a slider selection onto fares. Departure facets are
// already absolute; return facets are offset by ActualMinPrice.
func (o FilteringOptions) AbsoluteRange(rel PriceRange) PriceRange {
	if o.ActualMinPrice == 0 && o.ActualMaxPrice == 0 {
		return rel
	}
	abs := PriceRange{
		Min: o.ActualMinPrice + rel.Min,
		Max: o.ActualMinPrice + rel.Max,
	}
	// slider ends map onto the actual fares exactly
	if rel.Min <= o.MinPrice {
		abs.Min = o.ActualMinPrice
	}
	if rel.Max >= o.MaxPrice {
		abs.Max = o.ActualMaxPrice
	}
	return abs
}
