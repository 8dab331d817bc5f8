package flight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ids(flights []Direction) []string {
	out := make([]string, 0, len(flights))
	for _, f := range flights {
		out = append(out, f.ID)
	}
	return out
}

func selectionFixture() []Direction {
	return []Direction{
		offer("iati", "1", 100, "TK"),
		offer("iati", "2", 250, "PC", "TK"),
		offer("sabre", "3", 180, "TK"),
		offer("sabre", "4", 400, "PC"),
		{ID: "sabre-5", ProviderKey: "sabre", Fares: []Fare{{TotalPrice: 90}}},
	}
}

func TestApplySelection_EmptySelectsEverything(t *testing.T) {
	flights := selectionFixture()
	assert.Equal(t, flights, ApplySelection(flights, FilterSelection{}))
	assert.Empty(t, ApplySelection(nil, FilterSelection{}))
}

func TestApplySelection(t *testing.T) {
	flights := selectionFixture()

	tests := []struct {
		name string
		sel  FilterSelection
		want []string
	}{
		{
			name: "or within airline",
			sel:  FilterSelection{Airlines: []string{"PC", "unknown"}},
			want: []string{"iati-2", "sabre-4", "sabre-5"},
		},
		{
			name: "and across facets",
			sel:  FilterSelection{Airlines: []string{"TK"}, Providers: []string{"sabre"}},
			want: []string{"sabre-3"},
		},
		{
			name: "stops",
			sel:  FilterSelection{Stops: []int{1}},
			want: []string{"iati-2"},
		},
		{
			name: "price range inclusive",
			sel:  FilterSelection{Price: &PriceRange{Min: 100, Max: 250}},
			want: []string{"iati-1", "iati-2", "sabre-3"},
		},
		{
			name: "flight numbers only when enabled",
			sel:  FilterSelection{FlightNumbers: []string{"TK101"}},
			want: []string{"iati-1", "iati-2", "sabre-3", "sabre-4", "sabre-5"},
		},
		{
			name: "flight number on any leg",
			sel:  FilterSelection{FlightNumberFilter: true, FlightNumbers: []string{"TK101"}},
			want: []string{"iati-2"},
		},
		{
			name: "nothing matches",
			sel:  FilterSelection{Airlines: []string{"LH"}},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(ApplySelection(flights, tt.sel)))
		})
	}
}

func TestApplySelection_Idempotent(t *testing.T) {
	flights := selectionFixture()
	sel := FilterSelection{Airlines: []string{"TK"}, Price: &PriceRange{Min: 0, Max: 200}}

	once := ApplySelection(flights, sel)
	assert.Equal(t, once, ApplySelection(once, sel))
	assert.Len(t, flights, 5)
}
