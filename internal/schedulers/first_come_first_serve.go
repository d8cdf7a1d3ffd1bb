// Package schedulers implements the non-preemptive scheduling computation
// and the derivation of its aggregate statistics.
package schedulers

import (
	"fmt"
	"sort"

	"github.com/janjanko/fcfs/internal/core"
)

// Algorithm identifies the scheduling discipline in responses and logs.
const Algorithm = "first_come_first_serve"

// FirstComeFirstServe computes an FCFS schedule for the given processes.
// Execution order is determined solely by (arrival, id) ascending; burst
// never participates in ordering. The processor idles whenever the next
// process has not arrived yet, so start = max(cursor, arrival).
//
// The function is pure: it never mutates its argument, and equal inputs
// produce equal outputs. Invalid input (negative arrival or burst < 1)
// rejects the whole call; a partial schedule is never returned.
func FirstComeFirstServe(processes []core.Process) ([]core.ScheduledProcess, error) {
	for _, p := range processes {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("schedule rejected: %w", err)
		}
	}

	ordered := make([]core.Process, len(processes))
	copy(ordered, processes)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Arrival != ordered[j].Arrival {
			return ordered[i].Arrival < ordered[j].Arrival
		}
		return ordered[i].ID < ordered[j].ID
	})

	schedule := make([]core.ScheduledProcess, 0, len(ordered))
	currentTime := 0
	for _, p := range ordered {
		start := currentTime
		if p.Arrival > start {
			start = p.Arrival
		}
		completion := start + p.Burst
		schedule = append(schedule, core.ScheduledProcess{
			Process:    p,
			Start:      start,
			Completion: completion,
			Turnaround: completion - p.Arrival,
			Waiting:    start - p.Arrival,
		})
		currentTime = completion
	}
	return schedule, nil
}

// Timeline flattens a schedule into Gantt slices, one occupied interval per
// process, in execution order.
func Timeline(schedule []core.ScheduledProcess) []core.TimeSlice {
	slices := make([]core.TimeSlice, 0, len(schedule))
	for _, sp := range schedule {
		slices = append(slices, core.TimeSlice{
			ID:    sp.ID,
			Name:  sp.Name,
			Start: sp.Start,
			Stop:  sp.Completion,
		})
	}
	return slices
}
