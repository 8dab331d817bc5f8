package flight

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Merge combines two supplier results. Either side may be nil. Flight lists
// are concatenated without de-duplication; facets are unioned with summed
// counts.
func Merge(a, b *ProviderResult) *ProviderResult {
	switch {
	case a == nil && b == nil:
		return emptyResult()
	case a == nil:
		return withEmptySlices(b)
	case b == nil:
		return withEmptySlices(a)
	}

	merged := &ProviderResult{
		DepartureFlights: concat(a.DepartureFlights, b.DepartureFlights),
		ReturnFlights:    concat(a.ReturnFlights, b.ReturnFlights),
		FilteringOptions: FilteringOptions{
			MinPrice: mergeMinPrice(&a.FilteringOptions, &b.FilteringOptions),
			MaxPrice: mergeMaxPrice(&a.FilteringOptions, &b.FilteringOptions),
			Airline:  mergeAirlines(a.FilteringOptions.Airline, b.FilteringOptions.Airline),
			Stops:    mergeStops(a.FilteringOptions.Stops, b.FilteringOptions.Stops),
			Provider: mergeProviders(a.FilteringOptions.Provider, b.FilteringOptions.Provider),
		},
	}
	return merged
}

// MergeAll folds any number of supplier results, skipping nils.
func MergeAll(results ...*ProviderResult) *ProviderResult {
	var acc *ProviderResult
	for _, r := range results {
		if r == nil {
			continue
		}
		if acc == nil {
			acc = r
			continue
		}
		acc = Merge(acc, r)
	}
	return Merge(acc, nil)
}

func emptyResult() *ProviderResult {
	return &ProviderResult{
		DepartureFlights: []Direction{},
		ReturnFlights:    []Direction{},
		FilteringOptions: FilteringOptions{
			MinPrice: 0,
			MaxPrice: DefaultMaxPrice,
			Airline:  []AirlineOption{},
			Stops:    []StopOption{},
			Provider: []ProviderOption{},
		},
	}
}

// withEmptySlices returns r itself when it is already well formed, otherwise
// a shallow copy with nil slices replaced by empty ones and blank airline ids
// moved into the unknown bucket.
func withEmptySlices(r *ProviderResult) *ProviderResult {
	opts := r.FilteringOptions
	if r.DepartureFlights != nil && r.ReturnFlights != nil &&
		opts.Airline != nil && opts.Stops != nil && opts.Provider != nil &&
		!hasBlankAirline(opts.Airline) {
		return r
	}

	out := *r
	if out.DepartureFlights == nil {
		out.DepartureFlights = []Direction{}
	}
	if out.ReturnFlights == nil {
		out.ReturnFlights = []Direction{}
	}
	out.FilteringOptions.Airline = mergeAirlines(opts.Airline, nil)
	if out.FilteringOptions.Stops == nil {
		out.FilteringOptions.Stops = []StopOption{}
	}
	if out.FilteringOptions.Provider == nil {
		out.FilteringOptions.Provider = []ProviderOption{}
	}
	return &out
}

func hasBlankAirline(opts []AirlineOption) bool {
	for _, o := range opts {
		if strings.TrimSpace(o.ID) == "" {
			return true
		}
	}
	return false
}

func concat(a, b []Direction) []Direction {
	out := make([]Direction, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

func mergeMinPrice(a, b *FilteringOptions) float64 {
	lo := math.Inf(1)
	for _, o := range []*FilteringOptions{a, b} {
		if o != nil && o.MinPrice < lo {
			lo = o.MinPrice
		}
	}
	if math.IsInf(lo, 1) {
		return 0
	}
	return lo
}

func mergeMaxPrice(a, b *FilteringOptions) float64 {
	hi := 0.0
	seen := false
	for _, o := range []*FilteringOptions{a, b} {
		if o == nil {
			continue
		}
		seen = true
		if o.MaxPrice > hi {
			hi = o.MaxPrice
		}
	}
	if !seen {
		return DefaultMaxPrice
	}
	return hi
}

func airlineKey(id string) string {
	if strings.TrimSpace(id) == "" {
		return UnknownAirlineID
	}
	return id
}

// mergeAirlines keeps first-seen order. Counts are textual on the wire, so
// they are parsed, summed and formatted back.
func mergeAirlines(a, b []AirlineOption) []AirlineOption {
	out := make([]AirlineOption, 0, len(a)+len(b))
	pos := make(map[string]int, len(a)+len(b))

	for _, list := range [][]AirlineOption{a, b} {
		for _, opt := range list {
			key := airlineKey(opt.ID)
			if i, ok := pos[key]; ok {
				out[i].Count = strconv.Itoa(parseCount(out[i].Count) + parseCount(opt.Count))
				if out[i].Logo == "" {
					out[i].Logo = opt.Logo
				}
				continue
			}
			opt.ID = key
			if key == UnknownAirlineID {
				opt.Text = UnknownAirlineText
			}
			opt.Count = strconv.Itoa(parseCount(opt.Count))
			pos[key] = len(out)
			out = append(out, opt)
		}
	}
	return out
}

func parseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func mergeStops(a, b []StopOption) []StopOption {
	out := make([]StopOption, 0, len(a)+len(b))
	pos := make(map[int]int, len(a)+len(b))

	for _, list := range [][]StopOption{a, b} {
		for _, opt := range list {
			if i, ok := pos[opt.ID]; ok {
				out[i].Count += opt.Count
				continue
			}
			pos[opt.ID] = len(out)
			out = append(out, opt)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

func mergeProviders(a, b []ProviderOption) []ProviderOption {
	out := make([]ProviderOption, 0, len(a)+len(b))
	pos := make(map[string]int, len(a)+len(b))

	for _, list := range [][]ProviderOption{a, b} {
		for _, opt := range list {
			if i, ok := pos[opt.ID]; ok {
				out[i].Count += opt.Count
				continue
			}
			pos[opt.ID] = len(out)
			out = append(out, opt)
		}
	}

	sortProviders(out)
	return out
}

func sortProviders(opts []ProviderOption) {
	sort.SliceStable(opts, func(i, j int) bool {
		ti, tj := strings.ToLower(opts[i].Text), strings.ToLower(opts[j].Text)
		if ti != tj {
			return ti < tj
		}
		return opts[i].ID < opts[j].ID
	})
}
