package flight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_TwoProviders(t *testing.T) {
	a := &ProviderResult{
		DepartureFlights: []Direction{offer("iati", "1", 100, "EK"), offer("iati", "2", 500, "EK")},
		ReturnFlights:    []Direction{},
		FilteringOptions: FilteringOptions{
			MinPrice: 100,
			MaxPrice: 500,
			Airline:  []AirlineOption{{ID: "EK", Text: "Emirates", Count: "2"}},
			Stops:    []StopOption{{ID: 0, Text: "Direct", Count: 2}},
			Provider: []ProviderOption{{ID: "iati", Text: "IATI", Count: 2}},
		},
	}
	b := &ProviderResult{
		DepartureFlights: []Direction{offer("sabre", "3", 80, "EK", "EK")},
		ReturnFlights:    []Direction{},
		FilteringOptions: FilteringOptions{
			MinPrice: 80,
			MaxPrice: 600,
			Airline:  []AirlineOption{{ID: "EK", Text: "Emirates", Count: "1"}},
			Stops:    []StopOption{{ID: 1, Text: "1 Stop", Count: 1}},
			Provider: []ProviderOption{{ID: "sabre", Text: "Sabre", Count: 1}},
		},
	}

	merged := Merge(a, b)

	require.Len(t, merged.DepartureFlights, 3)
	assert.Equal(t, "iati-1", merged.DepartureFlights[0].ID)
	assert.Equal(t, "sabre-3", merged.DepartureFlights[2].ID)

	opts := merged.FilteringOptions
	assert.Equal(t, 80.0, opts.MinPrice)
	assert.Equal(t, 600.0, opts.MaxPrice)
	assert.Equal(t, []AirlineOption{{ID: "EK", Text: "Emirates", Count: "3"}}, opts.Airline)
	assert.Equal(t, []StopOption{{ID: 0, Text: "Direct", Count: 2}, {ID: 1, Text: "1 Stop", Count: 1}}, opts.Stops)
	assert.Equal(t, []ProviderOption{{ID: "iati", Text: "IATI", Count: 2}, {ID: "sabre", Text: "Sabre", Count: 1}}, opts.Provider)

	// inputs untouched
	assert.Len(t, a.DepartureFlights, 2)
	assert.Equal(t, "2", a.FilteringOptions.Airline[0].Count)
}

func TestMerge_AbsentSides(t *testing.T) {
	t.Run("both absent", func(t *testing.T) {
		merged := Merge(nil, nil)
		assert.Empty(t, merged.DepartureFlights)
		assert.NotNil(t, merged.DepartureFlights)
		assert.NotNil(t, merged.ReturnFlights)
		assert.Equal(t, 0.0, merged.FilteringOptions.MinPrice)
		assert.Equal(t, float64(DefaultMaxPrice), merged.FilteringOptions.MaxPrice)
		assert.NotNil(t, merged.FilteringOptions.Airline)
	})

	t.Run("one side absent", func(t *testing.T) {
		b := &ProviderResult{
			DepartureFlights: []Direction{offer("sabre", "1", 90, "PC")},
			FilteringOptions: FilteringOptions{MinPrice: 90, MaxPrice: 90},
		}

		merged := Merge(nil, b)
		assert.Len(t, merged.DepartureFlights, 1)
		assert.NotNil(t, merged.ReturnFlights)
		assert.Equal(t, 90.0, merged.FilteringOptions.MinPrice)
		assert.Equal(t, 90.0, merged.FilteringOptions.MaxPrice)
		assert.NotNil(t, merged.FilteringOptions.Provider)

		assert.Equal(t, merged.DepartureFlights, Merge(b, nil).DepartureFlights)
	})
}

func TestMerge_Stops(t *testing.T) {
	a := &ProviderResult{FilteringOptions: FilteringOptions{
		Stops: []StopOption{{ID: 2, Text: "2 Stops", Count: 1}, {ID: 0, Text: "Direct", Count: 4}},
	}}
	b := &ProviderResult{FilteringOptions: FilteringOptions{
		Stops: []StopOption{{ID: 1, Text: "1 Stop", Count: 2}, {ID: 0, Text: "Direct", Count: 1}},
	}}

	stops := Merge(a, b).FilteringOptions.Stops
	require.Len(t, stops, 3)
	assert.Equal(t, []int{0, 1, 2}, []int{stops[0].ID, stops[1].ID, stops[2].ID})
	assert.Equal(t, 5, stops[0].Count)
}

func TestMerge_AirlineCounts(t *testing.T) {
	a := &ProviderResult{FilteringOptions: FilteringOptions{
		Airline: []AirlineOption{
			{ID: "TK", Text: "Turkish", Count: "4"},
			{ID: "", Text: "", Count: "1"},
		},
	}}
	b := &ProviderResult{FilteringOptions: FilteringOptions{
		Airline: []AirlineOption{
			{ID: "PC", Text: "Pegasus", Count: "x"},
			{ID: "TK", Text: "Turkish", Count: " 3 ", Logo: "tk.png"},
			{ID: "unknown", Text: "whatever", Count: "2"},
		},
	}}

	airlines := Merge(a, b).FilteringOptions.Airline
	require.Len(t, airlines, 3)

	assert.Equal(t, AirlineOption{ID: "TK", Text: "Turkish", Count: "7", Logo: "tk.png"}, airlines[0])
	assert.Equal(t, AirlineOption{ID: UnknownAirlineID, Text: UnknownAirlineText, Count: "3"}, airlines[1])
	assert.Equal(t, AirlineOption{ID: "PC", Text: "Pegasus", Count: "0"}, airlines[2])
}

func TestMerge_ProviderOrderIsCaseInsensitive(t *testing.T) {
	a := &ProviderResult{FilteringOptions: FilteringOptions{
		Provider: []ProviderOption{{ID: "z", Text: "beta", Count: 1}},
	}}
	b := &ProviderResult{FilteringOptions: FilteringOptions{
		Provider: []ProviderOption{{ID: "b", Text: "Alpha", Count: 1}, {ID: "a", Text: "alpha", Count: 2}},
	}}

	providers := Merge(a, b).FilteringOptions.Provider
	require.Len(t, providers, 3)
	assert.Equal(t, []string{"a", "b", "z"}, []string{providers[0].ID, providers[1].ID, providers[2].ID})
}

func TestMergeAll(t *testing.T) {
	merged := MergeAll(nil, &ProviderResult{
		DepartureFlights: []Direction{offer("iati", "1", 100, "TK")},
		FilteringOptions: FilteringOptions{MinPrice: 100, MaxPrice: 100},
	}, nil, &ProviderResult{
		DepartureFlights: []Direction{offer("sabre", "2", 50, "PC")},
		FilteringOptions: FilteringOptions{MinPrice: 50, MaxPrice: 50},
	})

	assert.Len(t, merged.DepartureFlights, 2)
	assert.Equal(t, 50.0, merged.FilteringOptions.MinPrice)
	assert.Equal(t, 100.0, merged.FilteringOptions.MaxPrice)

	empty := MergeAll()
	assert.Equal(t, float64(DefaultMaxPrice), empty.FilteringOptions.MaxPrice)
}

func TestMerge_OneSideBucketsBlankAirline(t *testing.T) {
	side := &ProviderResult{
		DepartureFlights: []Direction{offer("sabre", "1", 120, "TK")},
		FilteringOptions: FilteringOptions{
			Airline: []AirlineOption{
				{ID: "TK", Text: "Turkish Airlines", Count: "1"},
				{ID: "", Text: "", Count: "2"},
				{ID: " ", Count: "1"},
			},
		},
	}

	for name, merged := range map[string]*ProviderResult{
		"left":  Merge(side, nil),
		"right": Merge(nil, side),
	} {
		t.Run(name, func(t *testing.T) {
			require.Len(t, merged.FilteringOptions.Airline, 2)
			unknown := merged.FilteringOptions.Airline[1]
			assert.Equal(t, UnknownAirlineID, unknown.ID)
			assert.Equal(t, UnknownAirlineText, unknown.Text)
			assert.Equal(t, "3", unknown.Count)
			assert.NotNil(t, merged.ReturnFlights)
		})
	}

	// the input is left alone
	assert.Empty(t, side.FilteringOptions.Airline[1].ID)
}
