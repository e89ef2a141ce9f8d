package time

import (
	"context"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// CurrentTimeProvider is an implementation of domain.CurrentTimeProvider using the standard time package.
// Times are reported in the configured location so that calendar days match the users' day.
type CurrentTimeProvider struct {
	loc *time.Location
}

// NewCurrentTimeProvider creates a provider reporting times in loc. A nil loc means UTC.
func NewCurrentTimeProvider(loc *time.Location) CurrentTimeProvider {
	if loc == nil {
		loc = time.UTC
	}
	return CurrentTimeProvider{loc: loc}
}

// Now returns the current time.
func (ts CurrentTimeProvider) Now() time.Time {
	if ts.loc == nil {
		return time.Now().UTC()
	}
	return time.Now().In(ts.loc)
}

// InitCurrentTimeProvider initializes the CurrentTimeProvider and registers it in the dependency container.
type InitCurrentTimeProvider struct {
	Timezone string `config:"APP_TIMEZONE" default:"Asia/Seoul"`
}

// Initialize registers the CurrentTimeProvider in the dependency container.
func (its InitCurrentTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	loc := time.UTC
	if its.Timezone != "" {
		l, err := time.LoadLocation(its.Timezone)
		if err != nil {
			return ctx, fmt.Errorf("failed to load timezone %q: %w", its.Timezone, err)
		}
		loc = l
	}
	depend.Register[domain.CurrentTimeProvider](NewCurrentTimeProvider(loc))
	return ctx, nil
}
