package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// SupplierLimiter hands out one token bucket per supplier so a slow or
// throttling supplier cannot starve the others.
type SupplierLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults Config
}

type Config struct {
	RequestsPerSecond float64
	Burst             int
}

func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 10,
		Burst:             20,
	}
}

func NewSupplierLimiter(config Config) *SupplierLimiter {
	if config.RequestsPerSecond <= 0 {
		config.RequestsPerSecond = DefaultConfig().RequestsPerSecond
	}
	if config.Burst <= 0 {
		config.Burst = DefaultConfig().Burst
	}
	return &SupplierLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: config,
	}
}

func (p *SupplierLimiter) limiter(supplier string) *rate.Limiter {
	p.mu.RLock()
	limiter, exists := p.limiters[supplier]
	p.mu.RUnlock()

	if exists {
		return limiter
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if limiter, exists = p.limiters[supplier]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(p.defaults.RequestsPerSecond), p.defaults.Burst)
	p.limiters[supplier] = limiter
	return limiter
}

// Wait blocks until the supplier has a free token or ctx is done.
func (p *SupplierLimiter) Wait(ctx context.Context, supplier string) error {
	return p.limiter(supplier).Wait(ctx)
}
