package flight

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"travel/pkg/logger"
	"travel/pkg/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingResetter struct {
	cleared []string
	err     error
}

func (r *recordingResetter) Clear(ctx context.Context, sessionID string) error {
	r.cleared = append(r.cleared, sessionID)
	return r.err
}

const testSessionID = "0f8fad5b-d9cb-469f-a165-70867728950e"

func setupRouter(client FlightClient, drafts DraftResetter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(session.Middleware(false))

	h := NewFlightHandler(newTestService(client), drafts, logger.NewWithWriter("development", io.Discard))
	h.RegisterRoutes(r)
	return r
}

func performRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(session.HeaderName, testSessionID)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFlightHandler_Search(t *testing.T) {
	client := new(mockFlightClient)
	client.On("SearchFlights", mock.Anything, searchRequest()).Return(supplierResults(), nil)
	drafts := &recordingResetter{err: errors.New("store down")}
	r := setupRouter(client, drafts)

	w := performRequest(r, http.MethodPost, "/v1/flights/search", searchRequest())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		DepartureFlights []Direction            `json:"departure_flights"`
		FilteringOptions FilteringOptions       `json:"filteringOptions"`
		ReturnIndex      map[string][]Direction `json:"return_index"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.DepartureFlights, 3)
	assert.Len(t, body.ReturnIndex["iati:i1"], 3)
	assert.Equal(t, 80.0, body.FilteringOptions.MinPrice)

	// a failing draft store does not fail the search
	assert.Equal(t, []string{testSessionID}, drafts.cleared)
}

func TestFlightHandler_SearchValidation(t *testing.T) {
	client := new(mockFlightClient)
	r := setupRouter(client, nil)

	w := performRequest(r, http.MethodPost, "/v1/flights/search", map[string]any{"origin": "IST"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), string(ErrorCodeValidation))

	client.AssertNotCalled(t, "SearchFlights", mock.Anything, mock.Anything)
}

func TestFlightHandler_SupplierFailure(t *testing.T) {
	client := new(mockFlightClient)
	client.On("SearchFlights", mock.Anything, mock.Anything).Return(nil, errors.New("all down"))
	r := setupRouter(client, nil)

	w := performRequest(r, http.MethodPost, "/v1/flights/search", searchRequest())
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), string(ErrorCodeSupplierFailure))
}

func TestFlightHandler_FilterAndReturns(t *testing.T) {
	client := new(mockFlightClient)
	client.On("SearchFlights", mock.Anything, searchRequest()).Return(supplierResults(), nil).Once()
	r := setupRouter(client, nil)

	w := performRequest(r, http.MethodPost, "/v1/flights/filter", FilterRequest{
		SearchRequest: searchRequest(),
		Departure:     FilterSelection{Providers: []string{"sabre"}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var filtered FilterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &filtered))
	assert.Equal(t, []string{"sabre-s1"}, ids(filtered.DepartureFlights))
	assert.Nil(t, filtered.ReturnFacets)

	w = performRequest(r, http.MethodPost, "/v1/flights/returns", ReturnsRequest{
		SearchRequest: searchRequest(),
		Outbound:      CompositeKey{ProviderKey: "sabre", PackageKey: "s1"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var returns ReturnsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &returns))
	assert.Equal(t, uint32(1), returns.Total)

	w = performRequest(r, http.MethodPost, "/v1/flights/filter", FilterRequest{
		SearchRequest: searchRequest(),
		Sort:          &SortOptions{By: "cheapest"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	client.AssertExpectations(t)
}

func TestFlightHandler_InvalidateCache(t *testing.T) {
	client := new(mockFlightClient)
	client.On("SearchFlights", mock.Anything, searchRequest()).Return(supplierResults(), nil).Twice()
	r := setupRouter(client, nil)

	performRequest(r, http.MethodPost, "/v1/flights/search", searchRequest())

	w := performRequest(r, http.MethodDelete, "/v1/flights/cache", searchRequest())
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = performRequest(r, http.MethodPost, "/v1/flights/search", searchRequest())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"cache_hit":false`)

	client.AssertExpectations(t)
}
