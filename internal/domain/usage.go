package domain

import (
	"context"
	"time"
)

const usageKeyPrefix = "llm_requests"

// DailyUsageKey returns the usage counter key for the UTC day of t.
func DailyUsageKey(t time.Time) string {
	return usageKeyPrefix + ":day:" + t.UTC().Format("2006-01-02")
}

// MonthlyUsageKey returns the usage counter key for the UTC month of t.
func MonthlyUsageKey(t time.Time) string {
	return usageKeyPrefix + ":month:" + t.UTC().Format("2006-01")
}

// QuotaPolicy caps the number of successful provider requests.
// A zero limit disables the corresponding check.
type QuotaPolicy struct {
	Daily   int
	Monthly int
}

// UsageCounterStore persists provider request counters.
type UsageCounterStore interface {
	// Get returns the current value of the counter, zero when absent.
	Get(ctx context.Context, key string) (int, error)
	// Increment adds one to the counter, creating it when absent.
	Increment(ctx context.Context, key string) error
}

// RequestThrottle enforces a minimum spacing between provider requests.
type RequestThrottle interface {
	// Wait blocks until the next request may start or ctx is done.
	Wait(ctx context.Context) error
}
