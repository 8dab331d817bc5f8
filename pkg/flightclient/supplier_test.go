package flightclient

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"travel/internal/flight"
	"travel/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rawFlights = `{
	"departure_flights": [{
		"id": "d1",
		"provider_key": "iati",
		"package_info": {"package_key": "pk1"},
		"legs": [{"airline": {"code": "TK", "name": "Turkish Airlines"}, "flight_number": "TK1"}],
		"fares": [{"total_price": 199.5, "currency": "EUR"}]
	}],
	"return_flights": [{
		"id": "r1",
		"provider_key": "iati",
		"package_info": {"package_key": "pk1"},
		"legs": [{"airline": {"code": "TK", "name": "Turkish Airlines"}, "flight_number": "TK2"}],
		"fares": [{"total_price": 150, "currency": "EUR"}]
	}]
}`

func testLogger() logger.Client {
	return logger.NewWithWriter("development", io.Discard)
}

func testSearch() flight.SearchRequest {
	return flight.SearchRequest{
		Origin:        "IST",
		Destination:   "LHR",
		DepartureDate: "2025-06-01",
		ReturnDate:    "2025-06-08",
		Adults:        2,
		Children:      1,
		CabinClass:    "economy",
	}
}

func TestIATIClient_Search(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/iati/v1/flights/search", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success": true, "result": `+rawFlights+`}`)
	}))
	defer srv.Close()

	client := NewIATIClient(srv.Client(), srv.URL, testLogger())
	raw, err := client.Search(t.Context(), testSearch())
	require.NoError(t, err)

	require.Len(t, raw.DepartureFlights, 1)
	require.Len(t, raw.ReturnFlights, 1)
	assert.Equal(t, "d1", *raw.DepartureFlights[0].ID)

	assert.Equal(t, "IST", got["from"])
	assert.Equal(t, "2025-06-08", got["return_date"])
	assert.EqualValues(t, 2, got["adult"])
}

func TestIATIClient_Search_KeepsRecordWithBadField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success": true, "result": {"departure_flights": [
			{"id": "d1", "legs": [{"flight_number": "TK1", "duration": 120}], "fares": [{"total_price": 199.5}]},
			{"id": "d2", "legs": [{"flight_number": "TK3", "duration": "95"}], "fares": [{"total_price": "350.00"}]}
		]}}`)
	}))
	defer srv.Close()

	raw, err := NewIATIClient(srv.Client(), srv.URL, testLogger()).Search(t.Context(), testSearch())
	require.NoError(t, err)
	require.Len(t, raw.DepartureFlights, 2)

	res := flight.NormalizeResponse(flight.SupplierIATI, raw)
	require.Len(t, res.DepartureFlights, 2)
	assert.Equal(t, 120, res.DepartureFlights[0].Legs[0].DurationMinutes)
	assert.Equal(t, 199.5, res.DepartureFlights[0].Price())
	assert.Equal(t, "d2", res.DepartureFlights[1].ID)
	assert.Equal(t, 95, res.DepartureFlights[1].Legs[0].DurationMinutes)
	assert.Equal(t, 350.0, res.DepartureFlights[1].Price())
}

func TestIATIClient_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success": false, "message": "route not served"}`)
	}))
	defer srv.Close()

	_, err := NewIATIClient(srv.Client(), srv.URL, testLogger()).Search(t.Context(), testSearch())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "route not served")
}

func TestIATIClient_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewIATIClient(srv.Client(), srv.URL, testLogger()).Search(t.Context(), testSearch())

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, flight.SupplierIATI, statusErr.Supplier)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
}

func TestSabreClient_Search(t *testing.T) {
	var got sabreSearchRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sabre/v1/flights/search", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, `{"status": "OK", "data": `+rawFlights+`}`)
	}))
	defer srv.Close()

	raw, err := NewSabreClient(srv.Client(), srv.URL, testLogger()).Search(t.Context(), testSearch())
	require.NoError(t, err)
	assert.Len(t, raw.DepartureFlights, 1)

	assert.Equal(t, "2025-06-01T00:00:00", got.DepartureDateTime)
	assert.Equal(t, "2025-06-08T00:00:00", got.ReturnDateTime)
	assert.Equal(t, "ECONOMY", got.CabinPref)
	assert.Equal(t, []sabrePassenger{{Code: "ADT", Quantity: 2}, {Code: "CNN", Quantity: 1}}, got.Passengers)
}

func TestSabreClient_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"status": "error", "errors": [{"code": "E12", "message": "invalid date"}]}`)
	}))
	defer srv.Close()

	_, err := NewSabreClient(srv.Client(), srv.URL, testLogger()).Search(t.Context(), testSearch())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "E12: invalid date")
}
