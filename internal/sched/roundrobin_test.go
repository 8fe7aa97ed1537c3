package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundRobinInterleavesByQuantum(t *testing.T) {
	segments := runAlgorithm(t, RoundRobin, Params{Quantum: 2}, []ProcessSpec{
		{Name: "P1", Arrival: 0, Burst: 5},
		{Name: "P2", Arrival: 1, Burst: 3},
	})

	// P2 arrives mid-pass and is picked up when the scan reaches its
	// slot at t=2.
	assert.Equal(t, []ScheduleSegment{
		{Name: "P1", Arrival: 0, Burst: 5, Start: 0, Finish: 2},
		{Name: "P2", Arrival: 1, Burst: 3, Start: 2, Finish: 4},
		{Name: "P1", Arrival: 0, Burst: 5, Start: 4, Finish: 6},
		{Name: "P2", Arrival: 1, Burst: 3, Start: 6, Finish: 7},
		{Name: "P1", Arrival: 0, Burst: 5, Start: 7, Finish: 8},
	}, segments)
}

func TestRoundRobinFinalSliceShorterThanQuantum(t *testing.T) {
	segments := runAlgorithm(t, RoundRobin, Params{Quantum: 4}, []ProcessSpec{
		{Name: "P1", Arrival: 0, Burst: 6},
	})

	assert.Equal(t, []ScheduleSegment{
		{Name: "P1", Arrival: 0, Burst: 6, Start: 0, Finish: 4},
		{Name: "P1", Arrival: 0, Burst: 6, Start: 4, Finish: 6},
	}, segments)
}

func TestRoundRobinQuantumNormalizedToOne(t *testing.T) {
	for _, quantum := range []float64{0, -3} {
		segments := runAlgorithm(t, RoundRobin, Params{Quantum: quantum}, []ProcessSpec{
			{Name: "P1", Arrival: 0, Burst: 2.5},
		})

		assert.Equal(t, []ScheduleSegment{
			{Name: "P1", Arrival: 0, Burst: 2.5, Start: 0, Finish: 1},
			{Name: "P1", Arrival: 0, Burst: 2.5, Start: 1, Finish: 2},
			{Name: "P1", Arrival: 0, Burst: 2.5, Start: 2, Finish: 2.5},
		}, segments)
	}
}

func TestRoundRobinIdleAdvance(t *testing.T) {
	segments := runAlgorithm(t, RoundRobin, Params{Quantum: 2}, []ProcessSpec{
		{Name: "P1", Arrival: 0, Burst: 1},
		{Name: "P2", Arrival: 5, Burst: 2},
	})

	assert.Equal(t, []ScheduleSegment{
		{Name: "P1", Arrival: 0, Burst: 1, Start: 0, Finish: 1},
		{Name: "P2", Arrival: 5, Burst: 2, Start: 5, Finish: 7},
	}, segments)
}
