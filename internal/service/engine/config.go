package engine

import (
	"time"

	domainproduct "github.com/quartermill/reviewdesk/internal/domain/product"
)

// Config carries the engine's business rules. Capacity and the SLA windows
// were hardcoded in earlier iterations of the dashboard; they are explicit
// here so tests and deployments can vary them.
type Config struct {
	// Capacity is the maximum workload (sum of product weights) an agent may
	// hold. Requests from an agent at or above capacity are rejected.
	Capacity int

	// Windows maps a priority to its SLA window. Priorities absent from the
	// map use DefaultWindow.
	Windows map[domainproduct.Priority]time.Duration

	// DefaultWindow applies to P3 and unrecognized priorities.
	DefaultWindow time.Duration
}

// DefaultConfig is the production rule set: 30 weight-units per agent,
// 2h/12h/24h SLA tiers.
var DefaultConfig = Config{
	Capacity: 30,
	Windows: map[domainproduct.Priority]time.Duration{
		domainproduct.PriorityP1: 2 * time.Hour,
		domainproduct.PriorityP2: 12 * time.Hour,
	},
	DefaultWindow: 24 * time.Hour,
}
