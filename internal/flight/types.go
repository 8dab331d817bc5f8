package flight

import "time"

type ErrorCode string

const (
	ErrorCodeTimeout          ErrorCode = "TIMEOUT"
	ErrorCodeValidation       ErrorCode = "VALIDATION_ERROR"
	ErrorCodeInternalFailure  ErrorCode = "INTERNAL_FAILURE"
	ErrorCodeSupplierFailure  ErrorCode = "SUPPLIER_FAILURE"
	ErrorCodeNoResults        ErrorCode = "NO_RESULTS"
	ErrorCodeSupplierDegraded ErrorCode = "SUPPLIER_DEGRADED"
)

// Supplier identifies an upstream flight-search feed.
type Supplier string

const (
	SupplierIATI  Supplier = "iati"
	SupplierSabre Supplier = "sabre"
)

func (s Supplier) DisplayName() string {
	switch s {
	case SupplierIATI:
		return "IATI"
	case SupplierSabre:
		return "Sabre"
	default:
		return string(s)
	}
}

// DirectionKind tells the facet engine which half of a round trip it is working on.
type DirectionKind string

const (
	Departure DirectionKind = "departure"
	Return    DirectionKind = "return"
)

const (
	// DefaultMaxPrice is the price ceiling reported when no supplier returned anything.
	DefaultMaxPrice = 50000

	UnknownAirlineID   = "unknown"
	UnknownAirlineText = "Unknown airline"
)

type Point struct {
	Airport     string    `json:"airport"`
	AirportName string    `json:"airport_name"`
	City        string    `json:"city"`
	Datetime    time.Time `json:"datetime"`
	Timestamp   int64     `json:"timestamp"`
}

// Leg is one non-stop segment.
type Leg struct {
	CarrierCode     string `json:"carrier_code"`
	CarrierName     string `json:"carrier_name"`
	CarrierLogo     string `json:"carrier_logo"`
	FlightNumber    string `json:"flight_number"`
	Departure       Point  `json:"departure"`
	Arrival         Point  `json:"arrival"`
	DurationMinutes int    `json:"duration_minutes"`
	LayoverMinutes  int    `json:"layover_minutes"`
}

type Fare struct {
	TotalPrice     float64 `json:"total_price"`
	BasePrice      float64 `json:"base_price"`
	Currency       string  `json:"currency"`
	FareClass      string  `json:"fare_class"`
	CheckedBaggage string  `json:"checked_baggage"`
	CabinBaggage   string  `json:"cabin_baggage"`
}

type PackageInfo struct {
	PackageKey string `json:"package_key"`
}

// Direction is a flight offer for one direction of travel: one or more legs
// sold together under a provider package.
type Direction struct {
	ID                string      `json:"id"`
	Supplier          Supplier    `json:"supplier"`
	ProviderKey       string      `json:"provider_key"`
	ProviderName      string      `json:"provider_name"`
	PackageInfo       PackageInfo `json:"package_info"`
	Legs              []Leg       `json:"legs"`
	Fares             []Fare      `json:"fares"`
	MinPrice          float64     `json:"min_price"`
	HasCheckedBaggage bool        `json:"has_checked_baggage"`
	HasCabinBaggage   bool        `json:"has_cabin_baggage"`
	BestValueScore    *float64    `json:"best_value_score,omitempty"`
}

// Stops is the number of transfers, zero for a direct flight.
func (d Direction) Stops() int {
	if len(d.Legs) == 0 {
		return 0
	}
	return len(d.Legs) - 1
}

// Price is the total of the first fare, the one shown in listings.
func (d Direction) Price() float64 {
	if len(d.Fares) == 0 {
		return 0
	}
	return d.Fares[0].TotalPrice
}

func (d Direction) Currency() string {
	if len(d.Fares) == 0 {
		return ""
	}
	return d.Fares[0].Currency
}

func (d Direction) DepartureTime() time.Time {
	if len(d.Legs) == 0 {
		return time.Time{}
	}
	return d.Legs[0].Departure.Datetime
}

func (d Direction) ArrivalTime() time.Time {
	if len(d.Legs) == 0 {
		return time.Time{}
	}
	return d.Legs[len(d.Legs)-1].Arrival.Datetime
}

// CarrierCode is the marketing carrier of the first leg.
func (d Direction) CarrierCode() string {
	if len(d.Legs) == 0 {
		return ""
	}
	return d.Legs[0].CarrierCode
}

func (d Direction) CarrierName() string {
	if len(d.Legs) == 0 {
		return ""
	}
	return d.Legs[0].CarrierName
}

// TotalDuration is flying time plus layovers, in minutes.
func (d Direction) TotalDuration() int {
	total := 0
	for _, l := range d.Legs {
		total += l.DurationMinutes + l.LayoverMinutes
	}
	return total
}

// ProviderResult is one supplier's answer, or the merge of several.
type ProviderResult struct {
	DepartureFlights []Direction      `json:"departure_flights"`
	ReturnFlights    []Direction      `json:"return_flights"`
	FilteringOptions FilteringOptions `json:"filteringOptions"`
}

type AirlineOption struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Count string `json:"count"`
	Logo  string `json:"logo,omitempty"`
}

type StopOption struct {
	ID    int    `json:"id"`
	Text  string `json:"text"`
	Count int    `json:"count"`
}

type ProviderOption struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// FilteringOptions are the facets offered to the user for one flight set.
// For the return direction MinPrice is always zero and MaxPrice is the spread;
// the absolute bounds live in ActualMinPrice and ActualMaxPrice.
type FilteringOptions struct {
	MinPrice       float64          `json:"minPrice"`
	MaxPrice       float64          `json:"maxPrice"`
	ActualMinPrice float64          `json:"actualMinPrice,omitempty"`
	ActualMaxPrice float64          `json:"actualMaxPrice,omitempty"`
	Airline        []AirlineOption  `json:"airline"`
	Stops          []StopOption     `json:"stops"`
	Provider       []ProviderOption `json:"provider"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterSelection is what the user picked for one direction. Empty slices
// mean the facet is not filtered.
type FilterSelection struct {
	Airlines           []string    `json:"airlines,omitempty"`
	Stops              []int       `json:"stops,omitempty"`
	Providers          []string    `json:"providers,omitempty"`
	Price              *PriceRange `json:"price,omitempty"`
	FlightNumberFilter bool        `json:"flight_number_filter,omitempty"`
	FlightNumbers      []string    `json:"flight_numbers,omitempty"`
}

type SortOptions struct {
	By    string `json:"by"`    // price, duration, departure_time, arrival_time, best_value
	Order string `json:"order"` // asc, desc
}

type SearchRequest struct {
	Origin        string `json:"origin" binding:"required,len=3"`
	Destination   string `json:"destination" binding:"required,len=3"`
	DepartureDate string `json:"departure_date" binding:"required"`
	ReturnDate    string `json:"return_date"`
	Adults        uint32 `json:"adults" binding:"required,min=1"`
	Children      uint32 `json:"children"`
	Infants       uint32 `json:"infants"`
	CabinClass    string `json:"cabin_class"`
	Language      string `json:"language"`
	CurrencyID    int    `json:"currency_id"`
}

type ProviderError struct {
	Provider Supplier  `json:"provider"`
	Code     ErrorCode `json:"code"`
	Message  string    `json:"message,omitempty"`
}

type Metadata struct {
	TotalDepartures    uint32          `json:"total_departures"`
	TotalReturns       uint32          `json:"total_returns"`
	ProvidersQueried   uint32          `json:"providers_queried"`
	ProvidersSucceeded uint32          `json:"providers_succeeded"`
	ProvidersFailed    uint32          `json:"providers_failed"`
	ProviderErrors     []ProviderError `json:"provider_errors,omitempty"`
	SearchTimeMs       uint32          `json:"search_time_ms"`
	CacheHit           bool            `json:"cache_hit"`
	CacheKey           string          `json:"cache_key,omitempty"`
}

// SupplierResults is what the transport layer hands back: one optional result
// per supplier, nil when that supplier failed or had nothing.
type SupplierResults struct {
	Results  map[Supplier]*ProviderResult
	Metadata Metadata
}

type SearchResponse struct {
	Metadata         Metadata         `json:"metadata"`
	DepartureFlights []Direction      `json:"departure_flights"`
	ReturnFlights    []Direction      `json:"return_flights"`
	FilteringOptions FilteringOptions `json:"filteringOptions"`
	ReturnIndex      ReturnIndex      `json:"return_index"`
}

type FilterRequest struct {
	SearchRequest
	Departure FilterSelection `json:"departure"`
	Return    FilterSelection `json:"return"`
	Outbound  *CompositeKey   `json:"outbound,omitempty"`
	Sort      *SortOptions    `json:"sort,omitempty"`
}

type FilterResponse struct {
	Metadata          Metadata          `json:"metadata"`
	DepartureFlights  []Direction       `json:"departure_flights"`
	DepartureFacets   FilteringOptions  `json:"departure_facets"`
	ReturnFlights     []Direction       `json:"return_flights,omitempty"`
	ReturnFacets      *FilteringOptions `json:"return_facets,omitempty"`
	SelectedOutbound  *CompositeKey     `json:"selected_outbound,omitempty"`
	VisibleDepartures uint32            `json:"visible_departures"`
	VisibleReturns    uint32            `json:"visible_returns"`
}

type ReturnsRequest struct {
	SearchRequest
	Outbound CompositeKey    `json:"outbound"`
	Filter   FilterSelection `json:"filter"`
	Sort     *SortOptions    `json:"sort,omitempty"`
}

type ReturnsResponse struct {
	Outbound CompositeKey     `json:"outbound"`
	Flights  []Direction      `json:"return_flights"`
	Facets   FilteringOptions `json:"return_facets"`
	Total    uint32           `json:"total"`
}
