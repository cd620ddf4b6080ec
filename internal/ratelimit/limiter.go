// Package ratelimit provides token-bucket rate limiters for AWS API calls.
package ratelimit

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/time/rate"
)

// ServiceRates configures per-operation request rates (requests per second).
type ServiceRates struct {
	ListExecutions    float64
	DescribeExecution float64
	ListStateMachines float64
}

// DefaultServiceRates returns conservative Step Functions rate limits. The
// list operations share a low account-level quota; describe is roomier.
func DefaultServiceRates() ServiceRates {
	return ServiceRates{
		ListExecutions:    4,
		DescribeExecution: 15,
		ListStateMachines: 4,
	}
}

// ServiceLimiter rate-limits Step Functions API calls per operation using
// token buckets.
type ServiceLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
}

// NewServiceLimiter creates a limiter with the given per-operation rates.
func NewServiceLimiter(rates ServiceRates) *ServiceLimiter {
	limiters := map[string]*rate.Limiter{
		"ListExecutions":    rate.NewLimiter(rate.Limit(rates.ListExecutions), int(rates.ListExecutions)),
		"DescribeExecution": rate.NewLimiter(rate.Limit(rates.DescribeExecution), int(rates.DescribeExecution)),
		"ListStateMachines": rate.NewLimiter(rate.Limit(rates.ListStateMachines), int(rates.ListStateMachines)),
	}
	return &ServiceLimiter{limiters: limiters}
}

// Wait blocks until a token is available for the named operation, or ctx is
// cancelled.
func (sl *ServiceLimiter) Wait(ctx context.Context, operation string) error {
	sl.mu.RLock()
	limiter, ok := sl.limiters[operation]
	sl.mu.RUnlock()
	if !ok {
		return nil // unknown operation = no limit
	}
	if err := limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit %s: %w", operation, err)
	}
	return nil
}
