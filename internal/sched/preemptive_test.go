package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSRTFClassic(t *testing.T) {
	segments := runAlgorithm(t, ShortestRemainingTimeFirst, Params{}, []ProcessSpec{
		{Name: "P1", Arrival: 0, Burst: 8},
		{Name: "P2", Arrival: 1, Burst: 4},
		{Name: "P3", Arrival: 2, Burst: 9},
		{Name: "P4", Arrival: 3, Burst: 5},
	})

	assert.Equal(t, []ScheduleSegment{
		{Name: "P1", Arrival: 0, Burst: 8, Start: 0, Finish: 1},
		{Name: "P2", Arrival: 1, Burst: 4, Start: 1, Finish: 5},
		{Name: "P4", Arrival: 3, Burst: 5, Start: 5, Finish: 10},
		{Name: "P1", Arrival: 0, Burst: 8, Start: 10, Finish: 17},
		{Name: "P3", Arrival: 2, Burst: 9, Start: 17, Finish: 26},
	}, segments)
}

func TestSRTFPreemptsOnShorterArrival(t *testing.T) {
	segments := runAlgorithm(t, ShortestRemainingTimeFirst, Params{}, []ProcessSpec{
		{Name: "P1", Arrival: 0, Burst: 5},
		{Name: "P2", Arrival: 1, Burst: 2},
	})

	assert.Equal(t, []ScheduleSegment{
		{Name: "P1", Arrival: 0, Burst: 5, Start: 0, Finish: 1},
		{Name: "P2", Arrival: 1, Burst: 2, Start: 1, Finish: 3},
		{Name: "P1", Arrival: 0, Burst: 5, Start: 3, Finish: 7},
	}, segments)
}

func TestSRTFCoalescesUninterruptedUnits(t *testing.T) {
	segments := runAlgorithm(t, ShortestRemainingTimeFirst, Params{}, []ProcessSpec{
		{Name: "solo", Arrival: 0, Burst: 3},
	})

	assert.Equal(t, []ScheduleSegment{
		{Name: "solo", Arrival: 0, Burst: 3, Start: 0, Finish: 3},
	}, segments)
}

func TestSRTFFractionalBurstConserved(t *testing.T) {
	segments := runAlgorithm(t, ShortestRemainingTimeFirst, Params{}, []ProcessSpec{
		{Name: "P1", Arrival: 0, Burst: 2.5},
	})

	// The final step shrinks to the leftover fraction, it never pads
	// occupancy to a whole unit.
	assert.Equal(t, []ScheduleSegment{
		{Name: "P1", Arrival: 0, Burst: 2.5, Start: 0, Finish: 2.5},
	}, segments)
}

func TestSRTFFractionalBurstWithPreemption(t *testing.T) {
	segments := runAlgorithm(t, ShortestRemainingTimeFirst, Params{}, []ProcessSpec{
		{Name: "P1", Arrival: 0, Burst: 2.5},
		{Name: "P2", Arrival: 1, Burst: 1},
	})

	assert.Equal(t, []ScheduleSegment{
		{Name: "P1", Arrival: 0, Burst: 2.5, Start: 0, Finish: 1},
		{Name: "P2", Arrival: 1, Burst: 1, Start: 1, Finish: 2},
		{Name: "P1", Arrival: 0, Burst: 2.5, Start: 2, Finish: 3.5},
	}, segments)
}

func TestSRTFIdleJumpToNextArrival(t *testing.T) {
	segments := runAlgorithm(t, ShortestRemainingTimeFirst, Params{}, []ProcessSpec{
		{Name: "P1", Arrival: 4, Burst: 2},
	})

	assert.Equal(t, []ScheduleSegment{
		{Name: "P1", Arrival: 4, Burst: 2, Start: 4, Finish: 6},
	}, segments)
}
