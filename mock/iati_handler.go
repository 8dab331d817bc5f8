package main

import (
	"encoding/json"
	"net/http"
)

type IATISearchRequest struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Departure  string `json:"departure_date"`
	Return     string `json:"return_date"`
	Adult      uint32 `json:"adult"`
	Child      uint32 `json:"child"`
	Infant     uint32 `json:"infant"`
	CabinClass string `json:"cabin_class"`
}

type IATIResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Result  *searchResult `json:"result,omitempty"`
}

func IATISearchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req IATISearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, IATIResponse{Success: false, Message: "invalid request body"})
		return
	}
	if req.Adult == 0 {
		writeJSON(w, IATIResponse{Success: false, Message: "at least one adult is required"})
		return
	}

	var resp IATIResponse
	if err := loadFixture("mock/files/iati_search_response.json", &resp); err != nil {
		http.Error(w, "Failed to read flight data: "+err.Error(), http.StatusInternalServerError)
		return
	}

	filterResult(resp.Result, req.From, req.To, req.Return != "")
	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
