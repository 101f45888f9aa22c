package logging

import (
	"time"
)

// TimingContext holds timing information for manual Start/End tracking
type TimingContext struct {
	name      string
	startTime time.Time
}

// Time executes the given function and logs its execution time.
//
// Example:
//
//	logging.Time("scan projects", func() {
//	    // ... scan logic here ...
//	})
func Time(name string, fn func()) {
	if !IsEnabled() {
		fn()
		return
	}

	start := time.Now()
	fn()
	duration := time.Since(start)

	Get().Debug(name,
		"duration", duration.String(),
		"ms", duration.Milliseconds(),
	)
}

// Start begins a timing measurement for manual control.
// Must be paired with End() to log the duration.
func Start(name string) TimingContext {
	return TimingContext{
		name:      name,
		startTime: time.Now(),
	}
}

// End completes a timing measurement started with Start() and logs the duration.
func End(ctx TimingContext) {
	if !IsEnabled() {
		return
	}

	duration := time.Since(ctx.startTime)
	Get().Debug(ctx.name,
		"duration", duration.String(),
		"ms", duration.Milliseconds(),
	)
}

// EndWithCount completes a timing measurement and logs the duration with
// an item count.
//
// Example:
//
//	tc := logging.Start("discover projects")
//	projects := scan()
//	logging.EndWithCount(tc, len(projects))
func EndWithCount(ctx TimingContext, count int) {
	if !IsEnabled() {
		return
	}

	duration := time.Since(ctx.startTime)
	Get().Debug(ctx.name,
		"duration", duration.String(),
		"ms", duration.Milliseconds(),
		"count", count,
	)
}
