package main

import (
	"encoding/json"
	"net/http"
)

type SabrePassenger struct {
	Code     string `json:"code"`
	Quantity uint32 `json:"quantity"`
}

type SabreSearchRequest struct {
	OriginLocation      string           `json:"origin_location"`
	DestinationLocation string           `json:"destination_location"`
	DepartureDateTime   string           `json:"departure_date_time"`
	ReturnDateTime      string           `json:"return_date_time"`
	Passengers          []SabrePassenger `json:"passengers"`
	CabinPref           string           `json:"cabin_pref"`
}

type SabreError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type SabreResponse struct {
	Status string        `json:"status"`
	Errors []SabreError  `json:"errors"`
	Data   *searchResult `json:"data,omitempty"`
}

func SabreSearchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SabreSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, SabreResponse{
			Status: "ERROR",
			Errors: []SabreError{{Code: "ERR.2SG.SEC.INVALID_REQUEST", Message: "request body is not valid JSON"}},
		})
		return
	}
	if req.OriginLocation == "" || req.DestinationLocation == "" {
		writeJSON(w, SabreResponse{
			Status: "ERROR",
			Errors: []SabreError{{Code: "ERR.2SG.MISSING_LOCATION", Message: "origin and destination are required"}},
		})
		return
	}

	var resp SabreResponse
	if err := loadFixture("mock/files/sabre_search_response.json", &resp); err != nil {
		http.Error(w, "Failed to read flight data: "+err.Error(), http.StatusInternalServerError)
		return
	}

	filterResult(resp.Data, req.OriginLocation, req.DestinationLocation, req.ReturnDateTime != "")
	writeJSON(w, resp)
}
