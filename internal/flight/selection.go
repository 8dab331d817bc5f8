package flight

// selectionContext holds the selection as sets so the per-flight check is O(1)
type selectionContext struct {
	airlines      map[string]struct{}
	stops         map[int]struct{}
	providers     map[string]struct{}
	flightNumbers map[string]struct{}
	price         *PriceRange
}

func newSelectionContext(sel FilterSelection) *selectionContext {
	sc := &selectionContext{
		airlines:  toSet(sel.Airlines),
		stops:     toSet(sel.Stops),
		providers: toSet(sel.Providers),
		price:     sel.Price,
	}
	if sel.FlightNumberFilter {
		sc.flightNumbers = toSet(sel.FlightNumbers)
	}
	return sc
}

// ApplySelection returns the flights that satisfy every active facet. Inputs
// are not modified.
func ApplySelection(flights []Direction, sel FilterSelection) []Direction {
	sc := newSelectionContext(sel)

	filtered := make([]Direction, 0, len(flights))
	for _, f := range flights {
		if sc.matches(f) {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

// matches returns true only if ALL active filters pass
func (sc *selectionContext) matches(f Direction) bool {
	// Price; unpriced offers are not part of the range so they are not judged by it
	if sc.price != nil {
		if p := f.Price(); p > 0 && (p < sc.price.Min || p > sc.price.Max) {
			return false
		}
	}

	if len(sc.stops) > 0 {
		if _, ok := sc.stops[f.Stops()]; !ok {
			return false
		}
	}

	if len(sc.providers) > 0 {
		if _, ok := sc.providers[f.ProviderKey]; !ok {
			return false
		}
	}

	if len(sc.airlines) > 0 {
		if _, ok := sc.airlines[airlineKey(f.CarrierCode())]; !ok {
			return false
		}
	}

	if len(sc.flightNumbers) > 0 {
		matched := false
		for _, l := range f.Legs {
			if _, ok := sc.flightNumbers[l.FlightNumber]; ok {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}

func toSet[T comparable](values []T) map[T]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
