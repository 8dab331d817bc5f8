package flight

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"travel/pkg/cache"
	"travel/pkg/logger"
)

type FlightClient interface {
	SearchFlights(ctx context.Context, req SearchRequest) (*SupplierResults, error)
}

// supplierOrder fixes the concatenation order of the merge.
var supplierOrder = []Supplier{SupplierIATI, SupplierSabre}

type Service struct {
	flightClient FlightClient
	cache        cache.Cache
	ttl          time.Duration
	logger       logger.Client
}

func NewService(flightClient FlightClient, cache cache.Cache, ttlMinutes int, logger logger.Client) *Service {
	return &Service{
		flightClient: flightClient,
		cache:        cache,
		ttl:          time.Duration(ttlMinutes) * time.Minute,
		logger:       logger,
	}
}

// cachedSearch is what gets stored per search; the return index is rebuilt on
// every read instead of being cached.
type cachedSearch struct {
	Metadata Metadata        `json:"metadata"`
	Merged   *ProviderResult `json:"merged"`
}

// generateCacheKey creates a deterministic key from search parameters
func (s *Service) generateCacheKey(req SearchRequest) string {
	key := fmt.Sprintf("flight:%s:%s:%s:%s:%d:%d:%d:%s:%d",
		req.Origin,
		req.Destination,
		req.DepartureDate,
		req.ReturnDate,
		req.Adults,
		req.Children,
		req.Infants,
		req.CabinClass,
		req.CurrencyID,
	)

	hash := sha256.Sum256([]byte(key))
	return fmt.Sprintf("flight:search:%x", hash[:16])
}

func (s *Service) SearchFlights(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	entry, err := s.loadOrSearch(ctx, req)
	if err != nil {
		return nil, err
	}

	state := NewSearchState(entry.Merged)
	merged := state.Results()

	return &SearchResponse{
		Metadata:         entry.Metadata,
		DepartureFlights: merged.DepartureFlights,
		ReturnFlights:    merged.ReturnFlights,
		FilteringOptions: merged.FilteringOptions,
		ReturnIndex:      state.Index(),
	}, nil
}

// FilterFlights applies both directions' selections to the cached search,
// refreshing from the suppliers on a cache miss.
func (s *Service) FilterFlights(ctx context.Context, req FilterRequest) (*FilterResponse, error) {
	if err := validateSort(req.Sort); err != nil {
		s.logger.Warn("invalid_sort_criteria", logger.Field{Key: "sort_by", Value: req.Sort.By})
		return nil, err
	}

	entry, err := s.loadOrSearch(ctx, req.SearchRequest)
	if err != nil {
		return nil, err
	}

	state := NewSearchState(entry.Merged).WithSelection(Departure, req.Departure)

	departures := state.Visible(Departure)
	if req.Sort != nil {
		departures = ApplySorting(departures, *req.Sort)
	}

	resp := &FilterResponse{
		Metadata:          entry.Metadata,
		DepartureFlights:  departures,
		DepartureFacets:   state.Facets(Departure),
		VisibleDepartures: uint32(len(departures)),
	}

	if req.Outbound != nil {
		state = state.SelectOutbound(*req.Outbound).WithSelection(Return, req.Return)

		returns := state.Visible(Return)
		if req.Sort != nil {
			returns = ApplySorting(returns, *req.Sort)
		}
		facets := state.Facets(Return)

		resp.ReturnFlights = returns
		resp.ReturnFacets = &facets
		resp.SelectedOutbound = state.Outbound()
		resp.VisibleReturns = uint32(len(returns))
	}

	return resp, nil
}

// ReturnOptions lists the return offers paired with one outbound offer along
// with facets derived from just that bucket.
func (s *Service) ReturnOptions(ctx context.Context, req ReturnsRequest) (*ReturnsResponse, error) {
	if err := validateSort(req.Sort); err != nil {
		return nil, err
	}

	entry, err := s.loadOrSearch(ctx, req.SearchRequest)
	if err != nil {
		return nil, err
	}

	state := NewSearchState(entry.Merged).
		SelectOutbound(req.Outbound).
		WithSelection(Return, req.Filter)

	flights := state.Visible(Return)
	if req.Sort != nil {
		flights = ApplySorting(flights, *req.Sort)
	}

	if len(state.ReturnOptions()) == 0 {
		s.logger.Debug("no return options for outbound",
			logger.Field{Key: "outbound", Value: req.Outbound.String()},
		)
	}

	return &ReturnsResponse{
		Outbound: req.Outbound,
		Flights:  flights,
		Facets:   state.Facets(Return),
		Total:    uint32(len(flights)),
	}, nil
}

// InvalidateCache manually invalidates cache for a specific route
func (s *Service) InvalidateCache(ctx context.Context, req SearchRequest) error {
	cacheKey := s.generateCacheKey(req)
	s.logger.Info("Invalidating cache", logger.Field{Key: "cache_key", Value: cacheKey})
	return s.cache.Del(ctx, cacheKey)
}

func (s *Service) loadOrSearch(ctx context.Context, req SearchRequest) (*cachedSearch, error) {
	cacheKey := s.generateCacheKey(req)

	cached, err := s.cache.Get(ctx, cacheKey)
	switch {
	case err == nil && cached != "":
		var entry cachedSearch
		if err := json.Unmarshal([]byte(cached), &entry); err != nil {
			s.logger.Error("Failed to unmarshal cached data", logger.Field{Key: "err", Value: err})
			break
		}
		s.logger.Info("Cache hit for search", logger.Field{Key: "cache_key", Value: cacheKey})
		entry.Metadata.CacheHit = true
		entry.Metadata.CacheKey = cacheKey
		return &entry, nil
	case err != nil && !errors.Is(err, cache.ErrMiss):
		s.logger.Warn("Cache read failed", logger.Field{Key: "err", Value: err})
	}

	s.logger.Info("Cache miss for search",
		logger.Field{Key: "cache_key", Value: cacheKey},
		logger.Field{Key: "route", Value: fmt.Sprintf("%s->%s", req.Origin, req.Destination)},
	)

	startTime := time.Now()
	results, err := s.flightClient.SearchFlights(ctx, req)
	if err != nil {
		return nil, NewSupplierError(err)
	}

	ordered := make([]*ProviderResult, 0, len(supplierOrder))
	for _, sup := range supplierOrder {
		ordered = append(ordered, results.Results[sup])
	}
	merged := MergeAll(ordered...)

	meta := results.Metadata
	meta.TotalDepartures = uint32(len(merged.DepartureFlights))
	meta.TotalReturns = uint32(len(merged.ReturnFlights))
	meta.SearchTimeMs = uint32(time.Since(startTime).Milliseconds())
	meta.CacheHit = false
	meta.CacheKey = cacheKey

	if meta.ProvidersFailed > 0 {
		s.logger.Warn("Search served from partial supplier results",
			logger.Field{Key: "providers_failed", Value: int(meta.ProvidersFailed)},
			logger.Field{Key: "cache_key", Value: cacheKey},
		)
	}

	entry := &cachedSearch{Metadata: meta, Merged: merged}

	responseBytes, err := json.Marshal(entry)
	if err != nil {
		s.logger.Error("Failed to marshal response", logger.Field{Key: "err", Value: err})
		return entry, nil // Return response even if caching fails
	}

	if err := s.cache.Set(ctx, cacheKey, string(responseBytes), s.ttl); err != nil {
		s.logger.Error("Failed to cache response", logger.Field{Key: "err", Value: err})
	}

	return entry, nil
}

func validateSort(opt *SortOptions) error {
	if opt == nil {
		return nil
	}
	if !SortValid(opt.By) {
		return NewValidationError(fmt.Sprintf("unsupported sort key %q", opt.By))
	}
	if opt.Order != "" && opt.Order != "asc" && opt.Order != "desc" {
		return NewValidationError(fmt.Sprintf("unsupported sort order %q", opt.Order))
	}
	return nil
}
