// SPDX-License-Identifier: MIT
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and mutation.
var (
	// ErrInvalidEndpoints indicates a link endpoint that is not a vertex of the graph.
	ErrInvalidEndpoints = errors.New("core: link endpoints do not belong to this graph")

	// ErrWrongLinkType indicates a link (or link option) that does not fit the graph Kind.
	ErrWrongLinkType = errors.New("core: wrong link type for this graph")

	// ErrInvalidOperation indicates a mutation that cannot be applied.
	ErrInvalidOperation = errors.New("core: invalid operation")

	// ErrLinkNotFound indicates an unknown or removed link id.
	ErrLinkNotFound = errors.New("core: link not found")

	// ErrVertexNotFound indicates a vertex id outside 1..VertexCount().
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNoDemandSet indicates a demand query on a vertex whose demand was never set.
	ErrNoDemandSet = errors.New("core: vertex demand not set")

	// ErrInconsistent is wrapped by every violation reported from Validate.
	ErrInconsistent = errors.New("core: inconsistent graph state")

	// ErrGraphInfeasible is matched (errors.Is) by every *InfeasibleError.
	ErrGraphInfeasible = errors.New("core: graph infeasible")
)

// Phase names the pipeline stage that detected infeasibility.
type Phase string

// Pipeline phases.
const (
	PhasePrecondition  Phase = "precondition"
	PhaseShortestPaths Phase = "shortest-paths"
	PhaseMatching      Phase = "matching"
	PhaseFlow          Phase = "flow"
	PhaseOrientation   Phase = "orientation"
	PhaseExtraction    Phase = "extraction"
)

// InfeasibleError is the typed result variant for "no tour exists for this input".
// It is produced by the phase that discovers the problem and never retried.
type InfeasibleError struct {
	Phase  Phase
	Reason string
	Err    error // optional package sentinel (e.g. flow.ErrInfeasible)
}

// Error implements error.
func (e *InfeasibleError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("core: graph infeasible in %s phase: %s: %v", e.Phase, e.Reason, e.Err)
	}

	return fmt.Sprintf("core: graph infeasible in %s phase: %s", e.Phase, e.Reason)
}

// Is reports ErrGraphInfeasible as a match so callers need only one check.
func (e *InfeasibleError) Is(target error) bool { return target == ErrGraphInfeasible }

// Unwrap exposes the package sentinel, if any.
func (e *InfeasibleError) Unwrap() error { return e.Err }

// Infeasible builds an *InfeasibleError for phase, wrapping cause (may be nil).
func Infeasible(phase Phase, cause error, format string, args ...any) *InfeasibleError {
	return &InfeasibleError{Phase: phase, Reason: fmt.Sprintf(format, args...), Err: cause}
}

// IsInfeasible reports whether err is (or wraps) a graph infeasibility.
func IsInfeasible(err error) bool { return errors.Is(err, ErrGraphInfeasible) }

// PhaseOf returns the phase recorded by the first *InfeasibleError in err's chain.
func PhaseOf(err error) (Phase, bool) {
	var ie *InfeasibleError
	if errors.As(err, &ie) {
		return ie.Phase, true
	}

	return "", false
}
