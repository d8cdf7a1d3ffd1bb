// Package core defines the domain model for the FCFS scheduling simulator.
package core

import (
	"errors"
	"fmt"
)

// Validation errors for scheduler preconditions. Callers wrap these with
// field context, so match with errors.Is.
var (
	ErrInvalidArrival = errors.New("arrival time must be >= 0")
	ErrInvalidBurst   = errors.New("burst time must be >= 1")
)

// Process is a single simulation input record. ID is the identity key:
// removal, tie-breaking and color assignment all key on it. Name is a
// display label and carries no semantics.
type Process struct {
	ID      int
	Name    string
	Arrival int
	Burst   int
}

// Validate checks the scheduler preconditions: non-negative arrival and a
// burst of at least one time unit.
func (p Process) Validate() error {
	if p.Arrival < 0 {
		return fmt.Errorf("%w: process %d has arrival %d", ErrInvalidArrival, p.ID, p.Arrival)
	}
	if p.Burst < 1 {
		return fmt.Errorf("%w: process %d has burst %d", ErrInvalidBurst, p.ID, p.Burst)
	}
	return nil
}

// ScheduledProcess is a Process annotated with the times assigned by the
// scheduler. Completion = Start + Burst, Turnaround = Completion - Arrival
// and Waiting = Start - Arrival hold for every instance the scheduler
// produces.
type ScheduledProcess struct {
	Process
	Start      int
	Completion int
	Turnaround int
	Waiting    int
}

// TimeSlice is one occupied interval [Start, Stop) on the processor
// timeline, in the shape the Gantt renderer consumes.
type TimeSlice struct {
	ID    int
	Name  string
	Start int
	Stop  int
}
