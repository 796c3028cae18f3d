package formstate

// MetricsProvider allows integration with metrics systems like Prometheus, StatsD, etc.
// Implement this interface to receive callbacks on key form events.
type MetricsProvider interface {
	// OnActionDispatched is called for every dispatched action, including
	// unrecognized ones.
	OnActionDispatched(action ActionType)

	// OnValidationPass is called after each full validation pass with the
	// number of fields that failed.
	OnValidationPass(invalidCount int)

	// OnReload is called when a schema update is applied (ok=true) or
	// rejected (ok=false).
	OnReload(ok bool)
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Use this as an embedded type to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnActionDispatched(_ ActionType) {}
func (NoOpMetricsProvider) OnValidationPass(_ int)          {}
func (NoOpMetricsProvider) OnReload(_ bool)                 {}
