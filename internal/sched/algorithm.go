package sched

import "fmt"

// AlgorithmKind selects one of the seven scheduling policies.
type AlgorithmKind int

const (
	FirstComeFirstServe AlgorithmKind = iota
	ShortestJobFirst
	ShortestRemainingTimeFirst
	PriorityScheduling
	RateMonotonic
	EarliestDeadlineFirst
	RoundRobin
)

// PriorityOrder controls whether Priority scheduling treats a smaller
// or a greater priority value as more urgent.
type PriorityOrder int

const (
	SmallerPriorityFirst PriorityOrder = iota
	GreaterPriorityFirst
)

// Params carries the algorithm-specific knobs. Quantum applies only to
// RoundRobin, Order only to PriorityScheduling; both have safe zero
// values (Quantum is normalized to 1 by the engine, Order defaults to
// SmallerPriorityFirst).
type Params struct {
	Quantum float64
	Order   PriorityOrder
}

var algorithmNames = map[AlgorithmKind]string{
	FirstComeFirstServe:        "fcfs",
	ShortestJobFirst:           "sjf",
	ShortestRemainingTimeFirst: "sjf_preemptive",
	PriorityScheduling:         "priority",
	RateMonotonic:              "rms",
	EarliestDeadlineFirst:      "edf",
	RoundRobin:                 "round_robin",
}

func (k AlgorithmKind) String() string {
	if name, ok := algorithmNames[k]; ok {
		return name
	}
	return fmt.Sprintf("AlgorithmKind(%d)", int(k))
}

// ParseAlgorithm maps an API selector string to its AlgorithmKind.
func ParseAlgorithm(name string) (AlgorithmKind, error) {
	for kind, n := range algorithmNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, name)
}

// AlgorithmNames lists the recognized selector strings in policy order.
func AlgorithmNames() []string {
	kinds := []AlgorithmKind{
		FirstComeFirstServe,
		ShortestJobFirst,
		ShortestRemainingTimeFirst,
		PriorityScheduling,
		RateMonotonic,
		EarliestDeadlineFirst,
		RoundRobin,
	}
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.String())
	}
	return names
}

// ParsePriorityOrder maps an API order string to its PriorityOrder.
// Anything other than "greater_first" means smaller-first.
func ParsePriorityOrder(order string) PriorityOrder {
	if order == "greater_first" {
		return GreaterPriorityFirst
	}
	return SmallerPriorityFirst
}
