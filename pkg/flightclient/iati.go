package flightclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"travel/internal/flight"
	"travel/pkg/logger"
)

type IATIClient struct {
	httpClient *http.Client
	baseURL    string
	logger     logger.Client
}

func NewIATIClient(httpClient *http.Client, baseURL string, logger logger.Client) *IATIClient {
	return &IATIClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger,
	}
}

type iatiSearchRequest struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Departure  string `json:"departure_date"`
	Return     string `json:"return_date,omitempty"`
	Adult      uint32 `json:"adult"`
	Child      uint32 `json:"child"`
	Infant     uint32 `json:"infant"`
	CabinClass string `json:"cabin_class,omitempty"`
	Language   string `json:"lang,omitempty"`
	CurrencyID int    `json:"currency_id,omitempty"`
}

type iatiSearchResponse struct {
	Success bool                      `json:"success"`
	Message string                    `json:"message"`
	Result  *flight.RawSearchResponse `json:"result"`
}

func (a *IATIClient) Supplier() flight.Supplier {
	return flight.SupplierIATI
}

func (a *IATIClient) Search(ctx context.Context, req flight.SearchRequest) (*flight.RawSearchResponse, error) {
	url := fmt.Sprintf("%s/iati/v1/flights/search", a.baseURL)

	body := iatiSearchRequest{
		From:       req.Origin,
		To:         req.Destination,
		Departure:  req.DepartureDate,
		Return:     req.ReturnDate,
		Adult:      req.Adults,
		Child:      req.Children,
		Infant:     req.Infants,
		CabinClass: req.CabinClass,
		Language:   req.Language,
		CurrencyID: req.CurrencyID,
	}

	var apiResp iatiSearchResponse
	if err := postJSON(ctx, a.httpClient, flight.SupplierIATI, url, body, &apiResp); err != nil {
		a.logger.Error("failed to fetch iati", logger.Field{Key: "err", Value: err})
		return nil, err
	}

	if !apiResp.Success {
		return nil, errors.New("iati search rejected: " + apiResp.Message)
	}

	return apiResp.Result, nil
}
