package sched

import "sort"

// scheduleRoundRobin slices CPU time in quantum-sized turns. The
// processes are sorted by arrival once; every pass then scans that
// fixed order and gives each arrived, unfinished process one slice of
// min(quantum, remaining). A pass that executes nothing advances the
// clock to the next arrival.
//
// Note this is a scan over the arrival order, not a FIFO ready queue:
// a process arriving mid-pass is picked up later in the same pass if
// the scan has not reached its slot yet, otherwise on the next pass.
func scheduleRoundRobin(procs []ProcessSpec, quantum float64, maxIterations int) ([]ScheduleSegment, error) {
	ordered := append([]ProcessSpec(nil), procs...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Arrival < ordered[j].Arrival
	})

	states := make([]*runState, len(ordered))
	for i, p := range ordered {
		states[i] = &runState{spec: p, remaining: p.Burst}
	}

	currentTime := 0.0
	for iterations := 0; ; iterations++ {
		if iterations >= maxIterations {
			return nil, ErrSimulationDivergence
		}

		executed := false
		for _, st := range states {
			if st.remaining <= 0 || st.spec.Arrival > currentTime {
				continue
			}
			slice := quantum
			if st.remaining < slice {
				slice = st.remaining
			}
			st.segments = append(st.segments, ScheduleSegment{
				Name:    st.spec.Name,
				Arrival: st.spec.Arrival,
				Burst:   st.spec.Burst,
				Start:   currentTime,
				Finish:  currentTime + slice,
			})
			currentTime += slice
			st.remaining -= slice
			executed = true
		}
		if executed {
			continue
		}

		next := -1
		for i, st := range states {
			if st.remaining <= 0 {
				continue
			}
			if next == -1 || st.spec.Arrival < states[next].spec.Arrival {
				next = i
			}
		}
		if next == -1 {
			break
		}
		currentTime = states[next].spec.Arrival
	}

	return flattenSegments(states), nil
}
