package time

import (
	"context"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestInitCurrentTimeProvider_Initialize(t *testing.T) {
	i := &InitCurrentTimeProvider{}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	_, err = depend.Resolve[domain.CurrentTimeProvider]()
	assert.NoError(t, err)
}

func TestCurrentTimeProvider_Now(t *testing.T) {
	tests := map[string]struct {
		provider CurrentTimeProvider
		check    func(t *testing.T, now time.Time)
	}{
		"wall-clock": {
			provider: CurrentTimeProvider{},
			check: func(t *testing.T, now time.Time) {
				assert.WithinDuration(t, time.Now(), now, time.Second)
				assert.Equal(t, time.UTC, now.Location())
			},
		},
		"converts-to-utc": {
			provider: CurrentTimeProvider{clock: func() time.Time {
				return time.Date(2026, 10, 16, 23, 30, 0, 0, time.FixedZone("UTC-3", -3*60*60))
			}},
			check: func(t *testing.T, now time.Time) {
				assert.Equal(t, time.Date(2026, 10, 17, 2, 30, 0, 0, time.UTC), now)
				assert.Equal(t, "llm_requests:day:2026-10-17", domain.DailyUsageKey(now))
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tt.check(t, tt.provider.Now())
		})
	}
}
