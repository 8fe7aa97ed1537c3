package sched

import "sort"

// runState holds the per-run mutable bookkeeping for one process in a
// preemptive simulation. It is built fresh for every run so nothing
// leaks between calls.
type runState struct {
	spec      ProcessSpec
	remaining float64
	segments  []ScheduleSegment
}

// scheduleSRTF runs shortest-remaining-time-first in unit time steps.
// Every step the arrived process with the least remaining work runs
// for one unit, or for the leftover fraction when less than a unit
// remains (ties keep the earlier process in input order); consecutive
// steps of the same process coalesce into one segment.
func scheduleSRTF(procs []ProcessSpec, maxIterations int) ([]ScheduleSegment, error) {
	states := make([]*runState, len(procs))
	for i, p := range procs {
		states[i] = &runState{spec: p, remaining: p.Burst}
	}

	currentTime := 0.0
	lastRan := -1
	for iterations := 0; ; iterations++ {
		if iterations >= maxIterations {
			return nil, ErrSimulationDivergence
		}

		chosen := -1
		pending := false
		for i, st := range states {
			if st.remaining <= 0 {
				continue
			}
			pending = true
			if st.spec.Arrival > currentTime {
				continue
			}
			if chosen == -1 || st.remaining < states[chosen].remaining {
				chosen = i
			}
		}
		if !pending {
			break
		}
		if chosen == -1 {
			// Nothing has arrived yet; jump to the next arrival among
			// unfinished processes.
			next := -1
			for i, st := range states {
				if st.remaining <= 0 {
					continue
				}
				if next == -1 || st.spec.Arrival < states[next].spec.Arrival {
					next = i
				}
			}
			currentTime = states[next].spec.Arrival
			lastRan = -1
			continue
		}

		st := states[chosen]
		start := currentTime
		step := 1.0
		if st.remaining < step {
			step = st.remaining
		}
		currentTime += step
		st.remaining -= step

		if chosen == lastRan && len(st.segments) > 0 && st.segments[len(st.segments)-1].Finish == start {
			st.segments[len(st.segments)-1].Finish = currentTime
		} else {
			st.segments = append(st.segments, ScheduleSegment{
				Name:    st.spec.Name,
				Arrival: st.spec.Arrival,
				Burst:   st.spec.Burst,
				Start:   start,
				Finish:  currentTime,
			})
		}
		lastRan = chosen
	}

	return flattenSegments(states), nil
}

// flattenSegments merges every process's segment list into one
// sequence ordered by start time.
func flattenSegments(states []*runState) []ScheduleSegment {
	segments := make([]ScheduleSegment, 0, len(states))
	for _, st := range states {
		segments = append(segments, st.segments...)
	}
	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].Start < segments[j].Start
	})
	return segments
}
