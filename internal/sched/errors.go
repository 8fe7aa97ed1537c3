package sched

import "errors"

var (
	// ErrInvalidAlgorithm reports an algorithm selector outside the
	// seven recognized kinds.
	ErrInvalidAlgorithm = errors.New("invalid algorithm")

	// ErrSimulationDivergence reports that a run exceeded the
	// iteration bound without completing. With well-formed input this
	// is unreachable; it exists so malformed input fails instead of
	// hanging in the idle-advance loop.
	ErrSimulationDivergence = errors.New("simulation diverged")
)
