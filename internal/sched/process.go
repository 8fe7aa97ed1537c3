// Package sched implements a single-CPU process-scheduling simulator.
// Seven textbook policies are supported; each run is a pure function
// from a set of process specs to an ordered sequence of execution
// segments suitable for Gantt-chart rendering.
package sched

type (
	// ProcessSpec is the input record for one simulated process.
	// Extra carries the algorithm-specific field: priority for
	// Priority scheduling, period for RMS, deadline for EDF.
	// Other policies ignore it. Duplicate names are allowed and are
	// scheduled as distinct processes.
	ProcessSpec struct {
		Name    string
		Arrival float64
		Burst   float64
		Extra   float64
	}

	// ScheduleSegment is one contiguous interval during which a
	// process occupies the CPU. Arrival and Burst echo the owning
	// spec for display. Finish is always strictly greater than Start.
	ScheduleSegment struct {
		Name    string
		Arrival float64
		Burst   float64
		Start   float64
		Finish  float64
	}
)

// Duration returns the length of the segment.
func (s ScheduleSegment) Duration() float64 {
	return s.Finish - s.Start
}
