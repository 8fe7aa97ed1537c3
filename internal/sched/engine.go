package sched

// DefaultMaxIterations bounds the simulation loops of a single run.
// Any legitimate input finishes in far fewer iterations; the bound
// only trips on malformed data that would otherwise spin forever in
// the idle-advance step.
const DefaultMaxIterations = 1_000_000

// Engine dispatches a run to the selected policy. It is stateless:
// one Engine may serve concurrent Run calls.
type Engine struct {
	maxIterations int
}

// NewEngine returns an Engine whose runs abort with
// ErrSimulationDivergence after maxIterations simulation steps.
// Values <= 0 select DefaultMaxIterations.
func NewEngine(maxIterations int) *Engine {
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	return &Engine{maxIterations: maxIterations}
}

// Run simulates the given processes under one policy and returns the
// execution segments ordered by start time. The input slice is never
// mutated. Processes with a non-positive burst produce no segments.
// An empty input yields an empty sequence, not an error.
//
// A missing or non-positive quantum is normalized to 1 for
// RoundRobin; Params.Order defaults to SmallerPriorityFirst.
func (e *Engine) Run(processes []ProcessSpec, algorithm AlgorithmKind, params Params) ([]ScheduleSegment, error) {
	procs := make([]ProcessSpec, 0, len(processes))
	for _, p := range processes {
		if p.Burst > 0 {
			procs = append(procs, p)
		}
	}

	switch algorithm {
	case FirstComeFirstServe:
		return scheduleFCFS(procs), nil
	case ShortestJobFirst:
		return scheduleSJF(procs, e.maxIterations)
	case ShortestRemainingTimeFirst:
		return scheduleSRTF(procs, e.maxIterations)
	case PriorityScheduling:
		return schedulePriority(procs, e.maxIterations, params.Order)
	case RateMonotonic:
		return scheduleRMS(procs, e.maxIterations)
	case EarliestDeadlineFirst:
		return scheduleEDF(procs, e.maxIterations)
	case RoundRobin:
		quantum := params.Quantum
		if !(quantum > 0) {
			quantum = 1
		}
		return scheduleRoundRobin(procs, quantum, e.maxIterations)
	default:
		return nil, ErrInvalidAlgorithm
	}
}
