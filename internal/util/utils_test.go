package util

import (
	"math"
	"testing"

	"github.com/janjanko/fcfs/internal/core"
)

func TestCalculateAverages(t *testing.T) {
	schedule := []core.ScheduledProcess{
		{Process: core.Process{ID: 1, Arrival: 0, Burst: 5}, Start: 0, Completion: 5, Turnaround: 5, Waiting: 0},
		{Process: core.Process{ID: 2, Arrival: 1, Burst: 3}, Start: 5, Completion: 8, Turnaround: 7, Waiting: 4},
		{Process: core.Process{ID: 3, Arrival: 2, Burst: 8}, Start: 8, Completion: 16, Turnaround: 14, Waiting: 6},
	}

	waiting, turnaround := CalculateAverages(schedule)
	if math.Abs(waiting-10.0/3.0) > 1e-9 {
		t.Errorf("Expected average waiting 10/3, got %v", waiting)
	}
	if math.Abs(turnaround-26.0/3.0) > 1e-9 {
		t.Errorf("Expected average turnaround 26/3, got %v", turnaround)
	}
}

func TestCalculateAverages_Empty(t *testing.T) {
	waiting, turnaround := CalculateAverages(nil)
	if waiting != 0 || turnaround != 0 {
		t.Errorf("Expected 0, 0 for empty schedule, got %v, %v", waiting, turnaround)
	}
}
