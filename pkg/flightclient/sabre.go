package flightclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"travel/internal/flight"
	"travel/pkg/logger"
)

type SabreClient struct {
	httpClient *http.Client
	baseURL    string
	logger     logger.Client
}

func NewSabreClient(httpClient *http.Client, baseURL string, logger logger.Client) *SabreClient {
	return &SabreClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger,
	}
}

type sabrePassenger struct {
	Code     string `json:"code"` // ADT, CNN, INF
	Quantity uint32 `json:"quantity"`
}

type sabreSearchRequest struct {
	OriginLocation      string           `json:"origin_location"`
	DestinationLocation string           `json:"destination_location"`
	DepartureDateTime   string           `json:"departure_date_time"`
	ReturnDateTime      string           `json:"return_date_time,omitempty"`
	Passengers          []sabrePassenger `json:"passengers"`
	CabinPref           string           `json:"cabin_pref,omitempty"`
	Lang                string           `json:"lang,omitempty"`
	CurrencyID          int              `json:"currency_id,omitempty"`
}

type sabreError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type sabreSearchResponse struct {
	Status string                    `json:"status"`
	Errors []sabreError              `json:"errors"`
	Data   *flight.RawSearchResponse `json:"data"`
}

func (a *SabreClient) Supplier() flight.Supplier {
	return flight.SupplierSabre
}

func (a *SabreClient) Search(ctx context.Context, req flight.SearchRequest) (*flight.RawSearchResponse, error) {
	url := fmt.Sprintf("%s/sabre/v1/flights/search", a.baseURL)

	passengers := []sabrePassenger{{Code: "ADT", Quantity: req.Adults}}
	if req.Children > 0 {
		passengers = append(passengers, sabrePassenger{Code: "CNN", Quantity: req.Children})
	}
	if req.Infants > 0 {
		passengers = append(passengers, sabrePassenger{Code: "INF", Quantity: req.Infants})
	}

	body := sabreSearchRequest{
		OriginLocation:      req.Origin,
		DestinationLocation: req.Destination,
		DepartureDateTime:   req.DepartureDate + "T00:00:00",
		Passengers:          passengers,
		CabinPref:           strings.ToUpper(req.CabinClass),
		Lang:                req.Language,
		CurrencyID:          req.CurrencyID,
	}
	if req.ReturnDate != "" {
		body.ReturnDateTime = req.ReturnDate + "T00:00:00"
	}

	var apiResp sabreSearchResponse
	if err := postJSON(ctx, a.httpClient, flight.SupplierSabre, url, body, &apiResp); err != nil {
		a.logger.Error("failed to fetch sabre", logger.Field{Key: "err", Value: err})
		return nil, err
	}

	if !strings.EqualFold(apiResp.Status, "ok") {
		msgs := make([]string, 0, len(apiResp.Errors))
		for _, e := range apiResp.Errors {
			msgs = append(msgs, e.Code+": "+e.Message)
		}
		return nil, fmt.Errorf("sabre search rejected: %s", strings.Join(msgs, "; "))
	}

	return apiResp.Data, nil
}
