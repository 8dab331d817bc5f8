package flight

// DirectionState is the facets on offer and the user's picks for one direction.
type DirectionState struct {
	Facets    FilteringOptions
	Selection FilterSelection
}

// SearchState is the whole filtering state of one search. Every method returns
// a new value; a SearchState is never modified after construction, so the
// departure and return selections can never alias each other.
type SearchState struct {
	results   *ProviderResult
	index     ReturnIndex
	departure DirectionState
	ret       DirectionState
	outbound  *CompositeKey
}

// NewSearchState starts from "everything selected": empty facet selections and
// no price bound.
func NewSearchState(merged *ProviderResult) SearchState {
	merged = Merge(merged, nil)
	return SearchState{
		results: merged,
		index:   BuildReturnIndex(merged.ReturnFlights),
		departure: DirectionState{
			Facets: DeriveFacets(merged.DepartureFlights, Departure),
		},
		ret: DirectionState{
			Facets: DeriveFacets(nil, Return),
		},
	}
}

func (s SearchState) Results() *ProviderResult { return s.results }

func (s SearchState) Index() ReturnIndex { return s.index }

func (s SearchState) Outbound() *CompositeKey {
	if s.outbound == nil {
		return nil
	}
	k := *s.outbound
	return &k
}

func (s SearchState) Facets(kind DirectionKind) FilteringOptions {
	if kind == Return {
		return s.ret.Facets
	}
	return s.departure.Facets
}

func (s SearchState) Selection(kind DirectionKind) FilterSelection {
	if kind == Return {
		return s.ret.Selection
	}
	return s.departure.Selection
}

// WithSelection replaces the selection of one direction.
func (s SearchState) WithSelection(kind DirectionKind, sel FilterSelection) SearchState {
	sel = cloneSelection(sel)
	if kind == Return {
		s.ret.Selection = sel
	} else {
		s.departure.Selection = sel
	}
	return s
}

// SelectOutbound scopes the return direction to the offers paired with key and
// re-derives its facets. The return selection is reset because the previous
// one referred to a different candidate set.
func (s SearchState) SelectOutbound(key CompositeKey) SearchState {
	s.outbound = &key
	s.ret = DirectionState{
		Facets: DeriveFacets(s.index.Lookup(key), Return),
	}
	return s
}

// ReturnOptions is the unfiltered bucket for the selected outbound.
func (s SearchState) ReturnOptions() []Direction {
	if s.outbound == nil {
		return []Direction{}
	}
	return s.index.Lookup(*s.outbound)
}

// Visible applies the direction's selection to its candidate set.
func (s SearchState) Visible(kind DirectionKind) []Direction {
	if kind == Return {
		sel := s.ret.Selection
		if sel.Price != nil {
			abs := s.ret.Facets.AbsoluteRange(*sel.Price)
			sel.Price = &abs
		}
		return ApplySelection(s.ReturnOptions(), sel)
	}
	return ApplySelection(s.results.DepartureFlights, s.departure.Selection)
}

func cloneSelection(sel FilterSelection) FilterSelection {
	out := FilterSelection{
		Airlines:           append([]string(nil), sel.Airlines...),
		Stops:              append([]int(nil), sel.Stops...),
		Providers:          append([]string(nil), sel.Providers...),
		FlightNumberFilter: sel.FlightNumberFilter,
		FlightNumbers:      append([]string(nil), sel.FlightNumbers...),
	}
	if sel.Price != nil {
		p := *sel.Price
		out.Price = &p
	}
	return out
}
