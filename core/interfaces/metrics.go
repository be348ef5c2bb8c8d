package interfaces

import "time"

// Lookup outcomes reported to Metrics
const (
	OutcomeSuccess     = "success"
	OutcomeEmpty       = "empty"
	OutcomeInvalid     = "invalid_query"
	OutcomeUnavailable = "unavailable"
)

// Metrics records catalog search activity
type Metrics interface {
	// ObserveLookup records one finished search with its outcome and duration
	ObserveLookup(outcome string, duration time.Duration)

	// AddExcluded counts catalog entries removed by exclusion sets
	AddExcluded(n int)
}
