package sched

import "sort"

// scheduleFCFS runs first-come-first-serve. Unlike the rest of the
// greedy family it sorts by arrival once up front instead of
// reselecting every step; ties keep input order.
func scheduleFCFS(procs []ProcessSpec) []ScheduleSegment {
	ordered := append([]ProcessSpec(nil), procs...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Arrival < ordered[j].Arrival
	})

	segments := make([]ScheduleSegment, 0, len(ordered))
	currentTime := 0.0
	for _, p := range ordered {
		start := currentTime
		if p.Arrival > start {
			start = p.Arrival
		}
		finish := start + p.Burst
		segments = append(segments, ScheduleSegment{
			Name:    p.Name,
			Arrival: p.Arrival,
			Burst:   p.Burst,
			Start:   start,
			Finish:  finish,
		})
		currentTime = finish
	}
	return segments
}

// scheduleGreedy is the shared non-preemptive loop behind SJF,
// Priority, RMS and EDF. Each step it gathers the processes that have
// arrived, picks the one prefer() likes best (the first such process
// in remaining-list order wins ties), runs it to completion, and
// repeats. When nothing has arrived yet the clock jumps to the next
// arrival, which models CPU idle time.
func scheduleGreedy(procs []ProcessSpec, maxIterations int, prefer func(a, b ProcessSpec) bool) ([]ScheduleSegment, error) {
	remaining := append([]ProcessSpec(nil), procs...)
	segments := make([]ScheduleSegment, 0, len(remaining))
	currentTime := 0.0

	for iterations := 0; len(remaining) > 0; iterations++ {
		if iterations >= maxIterations {
			return nil, ErrSimulationDivergence
		}

		chosen := -1
		for i, p := range remaining {
			if p.Arrival > currentTime {
				continue
			}
			if chosen == -1 || prefer(p, remaining[chosen]) {
				chosen = i
			}
		}
		if chosen == -1 {
			currentTime = nextArrival(remaining)
			continue
		}

		p := remaining[chosen]
		start := currentTime
		if p.Arrival > start {
			start = p.Arrival
		}
		finish := start + p.Burst
		segments = append(segments, ScheduleSegment{
			Name:    p.Name,
			Arrival: p.Arrival,
			Burst:   p.Burst,
			Start:   start,
			Finish:  finish,
		})
		currentTime = finish
		remaining = append(remaining[:chosen], remaining[chosen+1:]...)
	}
	return segments, nil
}

func scheduleSJF(procs []ProcessSpec, maxIterations int) ([]ScheduleSegment, error) {
	return scheduleGreedy(procs, maxIterations, func(a, b ProcessSpec) bool {
		return a.Burst < b.Burst
	})
}

func schedulePriority(procs []ProcessSpec, maxIterations int, order PriorityOrder) ([]ScheduleSegment, error) {
	prefer := func(a, b ProcessSpec) bool { return a.Extra < b.Extra }
	if order == GreaterPriorityFirst {
		prefer = func(a, b ProcessSpec) bool { return a.Extra > b.Extra }
	}
	return scheduleGreedy(procs, maxIterations, prefer)
}

// scheduleRMS treats Extra as the period; a shorter period means a
// higher priority.
func scheduleRMS(procs []ProcessSpec, maxIterations int) ([]ScheduleSegment, error) {
	return scheduleGreedy(procs, maxIterations, func(a, b ProcessSpec) bool {
		return a.Extra < b.Extra
	})
}

// scheduleEDF treats Extra as the absolute deadline. The candidate
// list is stably pre-sorted by deadline so equal deadlines keep input
// order through the selection loop.
func scheduleEDF(procs []ProcessSpec, maxIterations int) ([]ScheduleSegment, error) {
	ordered := append([]ProcessSpec(nil), procs...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Extra < ordered[j].Extra
	})
	return scheduleGreedy(ordered, maxIterations, func(a, b ProcessSpec) bool {
		return a.Extra < b.Extra
	})
}

// nextArrival returns the earliest arrival among procs. Callers only
// invoke it with a non-empty slice.
func nextArrival(procs []ProcessSpec) float64 {
	next := procs[0].Arrival
	for _, p := range procs[1:] {
		if p.Arrival < next {
			next = p.Arrival
		}
	}
	return next
}
