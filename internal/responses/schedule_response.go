// Package responses holds the API response types.
package responses

import "schedsim/internal/sched"

type SegmentResponse struct {
	Name    string  `json:"name"`
	Arrival float64 `json:"arrival"`
	Burst   float64 `json:"burst"`
	Start   float64 `json:"start"`
	Finish  float64 `json:"finish"`
}

// ProcessResponse is one row of the timing table. Rows aggregate
// segments by process name: processes submitted under the same name
// are scheduled as distinct entities but share a single row here,
// with their bursts summed and the turnaround spanning from the
// earliest arrival to the last completion.
type ProcessResponse struct {
	Name           string  `json:"name"`
	Arrival        float64 `json:"arrival"`
	Burst          float64 `json:"burst"`
	StartTime      float64 `json:"start_time"`
	CompletionTime float64 `json:"completion_time"`
	TurnAroundTime float64 `json:"turn_around_time"`
	WaitingTime    float64 `json:"waiting_time"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	Segments              []SegmentResponse `json:"segments"`
	TotalTime             float64           `json:"total_time"`
	IdleTime              float64           `json:"idle_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	Details               []ProcessResponse `json:"details"`
}

// NewScheduleResponse assembles the full response for one run.
func NewScheduleResponse(algorithm string, segments []sched.ScheduleSegment) ScheduleResponse {
	details, stats := sched.BuildStats(segments)

	segs := make([]SegmentResponse, 0, len(segments))
	for _, s := range segments {
		segs = append(segs, SegmentResponse{
			Name:    s.Name,
			Arrival: s.Arrival,
			Burst:   s.Burst,
			Start:   s.Start,
			Finish:  s.Finish,
		})
	}

	procs := make([]ProcessResponse, 0, len(details))
	for _, d := range details {
		procs = append(procs, ProcessResponse{
			Name:           d.Name,
			Arrival:        d.Arrival,
			Burst:          d.Burst,
			StartTime:      d.Start,
			CompletionTime: d.Completion,
			TurnAroundTime: d.Turnaround,
			WaitingTime:    d.Waiting,
		})
	}

	return ScheduleResponse{
		Algorithm:             algorithm,
		Segments:              segs,
		TotalTime:             stats.TotalTime,
		IdleTime:              stats.IdleTime,
		CpuUtilization:        stats.CPUUtilization,
		CpuThroughput:         stats.Throughput,
		AverageWaitingTime:    stats.AverageWaiting,
		AverageTurnAroundTime: stats.AverageTurnaround,
		Details:               procs,
	}
}
