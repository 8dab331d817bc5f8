package flight

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveFacets_ReturnPricesAreRelative(t *testing.T) {
	returns := []Direction{
		offer("iati", "p1", 350, "TK"),
		offer("iati", "p1", 200, "TK"),
		offer("sabre", "p1", 500, "PC", "PC"),
	}

	opts := DeriveFacets(returns, Return)

	assert.Equal(t, 0.0, opts.MinPrice)
	assert.Equal(t, 300.0, opts.MaxPrice)
	assert.Equal(t, 200.0, opts.ActualMinPrice)
	assert.Equal(t, 500.0, opts.ActualMaxPrice)

	abs := opts.AbsoluteRange(PriceRange{Min: 50, Max: 150})
	assert.Equal(t, PriceRange{Min: 250, Max: 350}, abs)
}

func TestDeriveFacets_Departure(t *testing.T) {
	flights := []Direction{
		offer("sabre", "1", 120, "TK"),
		offer("iati", "2", 80, "PC", "TK"),
		offer("iati", "3", 0, "TK"),
		{ProviderKey: "iati", Fares: []Fare{{TotalPrice: 95}}},
	}

	opts := DeriveFacets(flights, Departure)

	assert.Equal(t, 80.0, opts.MinPrice)
	assert.Equal(t, 120.0, opts.MaxPrice)
	assert.Zero(t, opts.ActualMinPrice)

	// carrier-less offer is not counted as an airline
	require.Len(t, opts.Airline, 2)
	assert.Equal(t, AirlineOption{ID: "PC", Text: "PC Air", Count: "1"}, opts.Airline[0])
	assert.Equal(t, AirlineOption{ID: "TK", Text: "TK Air", Count: "2"}, opts.Airline[1])

	assert.Equal(t, []StopOption{{ID: 0, Text: "Direct", Count: 3}, {ID: 1, Text: "1 Stop", Count: 1}}, opts.Stops)
	assert.Equal(t, []ProviderOption{{ID: "iati", Text: "iati", Count: 3}, {ID: "sabre", Text: "sabre", Count: 1}}, opts.Provider)

	assert.Equal(t, opts.FullRange(), opts.AbsoluteRange(opts.FullRange()))
}

func TestDeriveFacets_Empty(t *testing.T) {
	opts := DeriveFacets(nil, Return)
	assert.Zero(t, opts.MinPrice)
	assert.Zero(t, opts.MaxPrice)
	assert.NotNil(t, opts.Airline)
	assert.NotNil(t, opts.Stops)
	assert.NotNil(t, opts.Provider)
}

func TestDeriveFacets_CountsMatchKeyedFlights(t *testing.T) {
	flights := []Direction{
		offer("iati", "1", 189.9, "TK"),
		offer("iati", "2", 312.4, "PC", "TK"),
		offer("sabre", "3", 159, "TK"),
		offer("sabre", "4", 298, "PC"),
		{ID: "no-carrier", ProviderKey: "sabre", Fares: []Fare{{TotalPrice: 90}}},
		{ID: "no-provider", Legs: []Leg{{CarrierCode: "PC", CarrierName: "Pegasus"}}},
		{ID: "no-name", ProviderKey: "iati", Legs: []Leg{{CarrierCode: "XQ"}}},
	}

	opts := DeriveFacets(flights, Departure)

	withCarrier, withProvider := 0, 0
	for _, f := range flights {
		if f.CarrierCode() != "" && f.CarrierName() != "" {
			withCarrier++
		}
		if f.ProviderKey != "" {
			withProvider++
		}
	}

	airlineSum := 0
	for _, a := range opts.Airline {
		n, err := strconv.Atoi(a.Count)
		require.NoError(t, err)
		airlineSum += n
	}
	providerSum := 0
	for _, p := range opts.Provider {
		providerSum += p.Count
	}
	stopSum := 0
	for _, s := range opts.Stops {
		stopSum += s.Count
	}

	assert.Equal(t, withCarrier, airlineSum)
	assert.Equal(t, withProvider, providerSum)
	assert.Equal(t, len(flights), stopSum)
}

func TestFilteringOptions_FullRangeIsIdentity(t *testing.T) {
	flights := []Direction{
		offer("iati", "1", 189.9, "TK"),
		offer("iati", "2", 312.4, "PC"),
		offer("sabre", "3", 0.3, "TK"),
		{ID: "unpriced", ProviderKey: "sabre"},
	}

	for _, kind := range []DirectionKind{Departure, Return} {
		opts := DeriveFacets(flights, kind)
		full := opts.AbsoluteRange(opts.FullRange())
		assert.Equal(t, PriceRange{Min: 0.3, Max: 312.4}, full, kind)
		assert.Equal(t, flights, ApplySelection(flights, FilterSelection{Price: &full}), kind)
	}
}
