package time

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// CurrentTimeProvider is an implementation of domain.CurrentTimeProvider.
// It always reports UTC, the zone the usage quota windows and refresh events are keyed in.
type CurrentTimeProvider struct {
	clock func() time.Time
}

// Now returns the current time in UTC.
func (ts CurrentTimeProvider) Now() time.Time {
	if ts.clock == nil {
		return time.Now().UTC()
	}
	return ts.clock().UTC()
}

// InitCurrentTimeProvider initializes the CurrentTimeProvider and registers it in the dependency container.
type InitCurrentTimeProvider struct{}

// Initialize registers the CurrentTimeProvider in the dependency container.
func (its InitCurrentTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.CurrentTimeProvider](CurrentTimeProvider{})
	return ctx, nil
}
