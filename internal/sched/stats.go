package sched

// ProcessStats summarizes one process's timeline derived from its
// segments. Burst is the summed segment duration, which equals the
// submitted burst for every completed process.
type ProcessStats struct {
	Name       string
	Arrival    float64
	Burst      float64
	Start      float64
	Completion float64
	Turnaround float64
	Waiting    float64
}

// RunStats aggregates one run: makespan, idle time, utilization,
// throughput and the usual averages.
type RunStats struct {
	TotalTime         float64
	IdleTime          float64
	CPUUtilization    float64
	Throughput        float64
	AverageWaiting    float64
	AverageTurnaround float64
}

// BuildStats derives per-process and whole-run statistics from a
// segment sequence. Processes appear in order of first execution.
// Segments carry no identity beyond their name, so segments sharing a
// name are attributed to one process: duplicate-name submissions get
// one row with summed burst, the earliest arrival and the last
// completion. The engine itself still schedules them as distinct
// processes.
func BuildStats(segments []ScheduleSegment) ([]ProcessStats, RunStats) {
	index := make(map[string]int)
	details := make([]ProcessStats, 0)
	var totalTime, busyTime float64

	for _, seg := range segments {
		i, ok := index[seg.Name]
		if !ok {
			i = len(details)
			index[seg.Name] = i
			details = append(details, ProcessStats{
				Name:       seg.Name,
				Arrival:    seg.Arrival,
				Start:      seg.Start,
				Completion: seg.Finish,
			})
		}
		d := &details[i]
		d.Burst += seg.Duration()
		if seg.Arrival < d.Arrival {
			d.Arrival = seg.Arrival
		}
		if seg.Start < d.Start {
			d.Start = seg.Start
		}
		if seg.Finish > d.Completion {
			d.Completion = seg.Finish
		}

		busyTime += seg.Duration()
		if seg.Finish > totalTime {
			totalTime = seg.Finish
		}
	}

	var stats RunStats
	var waitingSum, turnaroundSum float64
	for i := range details {
		d := &details[i]
		d.Turnaround = d.Completion - d.Arrival
		d.Waiting = d.Turnaround - d.Burst
		waitingSum += d.Waiting
		turnaroundSum += d.Turnaround
	}
	if count := float64(len(details)); count > 0 {
		stats.AverageWaiting = waitingSum / count
		stats.AverageTurnaround = turnaroundSum / count
	}
	stats.TotalTime = totalTime
	stats.IdleTime = totalTime - busyTime
	if totalTime > 0 {
		stats.CPUUtilization = busyTime / totalTime
		stats.Throughput = float64(len(details)) / totalTime
	}
	return details, stats
}
