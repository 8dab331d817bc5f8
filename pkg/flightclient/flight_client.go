package flightclient

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
	"travel/internal/flight"
	"travel/pkg/logger"
	"travel/pkg/ratelimit"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "travel/pkg/flightclient"

// FlightManager queries every supplier concurrently and normalizes what comes
// back. A supplier that fails is reported in the metadata and left out.
type FlightManager struct {
	suppliers []SupplierClient
	limiter   *ratelimit.SupplierLimiter
	timeout   time.Duration
	logger    logger.Client
	tracer    trace.Tracer
	failures  metric.Int64Counter
}

func NewFlightClient(suppliers []SupplierClient, limiter *ratelimit.SupplierLimiter, timeout time.Duration, log logger.Client) *FlightManager {
	failures, err := otel.Meter(instrumentationName).Int64Counter(
		"supplier.search.failures",
		metric.WithDescription("Supplier searches that returned an error"),
	)
	if err != nil {
		log.Warn("failed to create supplier failure counter", logger.Field{Key: "err", Value: err})
	}

	return &FlightManager{
		suppliers: suppliers,
		limiter:   limiter,
		timeout:   timeout,
		logger:    log,
		tracer:    otel.Tracer(instrumentationName),
		failures:  failures,
	}
}

type supplierOutcome struct {
	supplier flight.Supplier
	result   *flight.ProviderResult
	err      error
}

func (f *FlightManager) SearchFlights(ctx context.Context, req flight.SearchRequest) (*flight.SupplierResults, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	outcomes := make([]supplierOutcome, len(f.suppliers))
	var wg sync.WaitGroup

	for i, s := range f.suppliers {
		wg.Add(1)
		go func(i int, s SupplierClient) {
			defer wg.Done()
			res, err := f.searchOne(ctx, s, req)
			outcomes[i] = supplierOutcome{supplier: s.Supplier(), result: res, err: err}
		}(i, s)
	}
	wg.Wait()

	out := &flight.SupplierResults{
		Results: make(map[flight.Supplier]*flight.ProviderResult, len(outcomes)),
		Metadata: flight.Metadata{
			ProvidersQueried: uint32(len(outcomes)),
		},
	}

	var errs []error
	for _, o := range outcomes {
		if o.err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", o.supplier, o.err))
			out.Metadata.ProvidersFailed++
			out.Metadata.ProviderErrors = append(out.Metadata.ProviderErrors, flight.ProviderError{
				Provider: o.supplier,
				Code:     errorCode(o.err),
				Message:  o.err.Error(),
			})
			continue
		}
		out.Metadata.ProvidersSucceeded++
		out.Results[o.supplier] = o.result
	}

	if len(outcomes) > 0 && len(errs) == len(outcomes) {
		return nil, errors.Join(errs...)
	}

	return out, nil
}

func (f *FlightManager) searchOne(ctx context.Context, s SupplierClient, req flight.SearchRequest) (*flight.ProviderResult, error) {
	name := string(s.Supplier())

	ctx, span := f.tracer.Start(ctx, "supplier.search",
		trace.WithAttributes(
			attribute.String("supplier", name),
			attribute.String("route", req.Origin+"-"+req.Destination),
		),
	)
	defer span.End()

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, name); err != nil {
			f.recordFailure(ctx, span, name, err)
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	start := time.Now()
	raw, err := s.Search(ctx, req)
	if err != nil {
		f.recordFailure(ctx, span, name, err)
		return nil, err
	}

	result := flight.NormalizeResponse(s.Supplier(), raw)
	if result == nil || (len(result.DepartureFlights) == 0 && len(result.ReturnFlights) == 0) {
		// nothing to offer is treated the same as an absent supplier
		f.logger.Info("supplier returned no flights", logger.Field{Key: "supplier", Value: name})
		span.SetAttributes(attribute.Int("departures", 0))
		return nil, nil
	}

	span.SetAttributes(
		attribute.Int("departures", len(result.DepartureFlights)),
		attribute.Int("returns", len(result.ReturnFlights)),
	)
	f.logger.Debug("supplier search done",
		logger.Field{Key: "supplier", Value: name},
		logger.Field{Key: "departures", Value: len(result.DepartureFlights)},
		logger.Field{Key: "returns", Value: len(result.ReturnFlights)},
		logger.Field{Key: "took_ms", Value: time.Since(start).Milliseconds()},
	)
	return result, nil
}

func (f *FlightManager) recordFailure(ctx context.Context, span trace.Span, supplier string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	if f.failures != nil {
		f.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("supplier", supplier)))
	}
	f.logger.Error("supplier search failed",
		logger.Field{Key: "supplier", Value: supplier},
		logger.Field{Key: "err", Value: err},
	)
}

func errorCode(err error) flight.ErrorCode {
	if errors.Is(err, context.DeadlineExceeded) {
		return flight.ErrorCodeTimeout
	}
	return flight.ErrorCodeSupplierFailure
}
