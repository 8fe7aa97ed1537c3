// Package requests holds the API request types and the boundary
// normalization that turns raw UI strings into engine input.
package requests

import (
	"fmt"
	"strconv"
	"strings"

	"schedsim/internal/sched"
)

// ProcessRow mirrors one row of the UI's process table. All fields
// arrive as free text; the extra column is the priority, period or
// deadline depending on the selected algorithm.
type ProcessRow struct {
	Name    string `json:"name"`
	Arrival string `json:"arrival"`
	Burst   string `json:"burst"`
	Extra   string `json:"extra"`
}

// ScheduleRequest is the body of a scheduling run.
type ScheduleRequest struct {
	Algorithm     string       `json:"algorithm"`
	TimeQuantum   string       `json:"time_quantum"`
	PriorityOrder string       `json:"priority_order"`
	Processes     []ProcessRow `json:"processes"`
}

// Specs normalizes the rows into process specs. Blank names become
// p1, p2, ... in row order; non-numeric arrival or burst becomes 0; a
// missing or non-numeric extra field defaults to arrival + burst.
// Malformed values never surface as errors here, the engine's
// documented normalization rules absorb them.
func (r *ScheduleRequest) Specs() []sched.ProcessSpec {
	specs := make([]sched.ProcessSpec, 0, len(r.Processes))
	for i, row := range r.Processes {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			name = fmt.Sprintf("p%d", i+1)
		}
		arrival := parseField(row.Arrival, 0)
		burst := parseField(row.Burst, 0)
		specs = append(specs, sched.ProcessSpec{
			Name:    name,
			Arrival: arrival,
			Burst:   burst,
			Extra:   parseField(row.Extra, arrival+burst),
		})
	}
	return specs
}

// Params normalizes the algorithm knobs. defaultQuantum fills a blank
// quantum field; a non-numeric quantum parses to 0 and is then
// normalized to 1 by the engine.
func (r *ScheduleRequest) Params(defaultQuantum float64) sched.Params {
	quantum := defaultQuantum
	if strings.TrimSpace(r.TimeQuantum) != "" {
		quantum = parseField(r.TimeQuantum, 0)
	}
	return sched.Params{
		Quantum: quantum,
		Order:   sched.ParsePriorityOrder(r.PriorityOrder),
	}
}

func parseField(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fallback
	}
	return v
}
