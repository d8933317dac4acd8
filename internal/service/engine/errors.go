package engine

import "errors"

// Business conditions returned to callers for user-facing messaging. These
// are expected states, not faults; no operation partially mutates on failure.
var (
	// ErrCapacityExceeded means the agent is at or above maximum workload and
	// must free capacity before requesting more work.
	ErrCapacityExceeded = errors.New("agent workload at capacity")

	// ErrNoAvailableWork means the candidate pool is empty.
	ErrNoAvailableWork = errors.New("no unassigned products available")

	// ErrAssignmentNotFound means the operation referenced a non-active or
	// non-existent assignment.
	ErrAssignmentNotFound = errors.New("no active assignment for agent and product")
)
