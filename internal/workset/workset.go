// Package workset holds the mutable working set of processes the scheduler
// is asked to plan. It owns identity assignment and input validation; the
// scheduling computation itself never sees an invalid record.
package workset

import (
	"errors"
	"fmt"
	"sync"

	"github.com/janjanko/fcfs/internal/core"
)

// ErrUnknownProcess is returned by Remove for an id not in the set.
var ErrUnknownProcess = errors.New("unknown process id")

// Entry is a validated-on-admission submission: a process before the set
// has assigned it an id.
type Entry struct {
	Name    string
	Arrival int
	Burst   int
}

// Set is the working set of processes. Ids come from an explicit
// monotonically increasing sequence owned by the set, so they stay unique
// for the lifetime of the set even after removals. Safe for concurrent use.
type Set struct {
	mu     sync.Mutex
	nextID int
	procs  []core.Process
}

// New returns an empty working set. The first assigned id is 1.
func New() *Set {
	return &Set{nextID: 1}
}

// Add validates the entry, assigns the next id and appends the process to
// the set. An empty name defaults to P<n> where n counts the processes
// present at creation time, matching how interactive submissions label
// unnamed rows.
func (s *Set) Add(e Entry) (core.Process, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(e)
}

// AddAll admits all entries or none: every entry is validated before the
// first one is committed, so a bad row in a batch load cannot leave the
// set half-filled.
func (s *Set) AddAll(entries []Entry) ([]core.Process, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range entries {
		probe := core.Process{ID: s.nextID + i, Name: e.Name, Arrival: e.Arrival, Burst: e.Burst}
		if err := probe.Validate(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
	}

	added := make([]core.Process, 0, len(entries))
	for _, e := range entries {
		p, err := s.add(e)
		if err != nil {
			return nil, err
		}
		added = append(added, p)
	}
	return added, nil
}

func (s *Set) add(e Entry) (core.Process, error) {
	p := core.Process{
		ID:      s.nextID,
		Name:    e.Name,
		Arrival: e.Arrival,
		Burst:   e.Burst,
	}
	if p.Name == "" {
		p.Name = fmt.Sprintf("P%d", len(s.procs)+1)
	}
	if err := p.Validate(); err != nil {
		return core.Process{}, err
	}
	s.nextID++
	s.procs = append(s.procs, p)
	return p, nil
}

// Remove deletes the process with the given id.
func (s *Set) Remove(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.procs {
		if p.ID == id {
			s.procs = append(s.procs[:i], s.procs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %d", ErrUnknownProcess, id)
}

// Clear empties the set. The id sequence keeps counting, so ids are never
// reused within one set lifetime.
func (s *Set) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.procs = s.procs[:0]
}

// Snapshot returns a copy of the set in insertion order. Mutating the
// returned slice does not affect the set.
func (s *Set) Snapshot() []core.Process {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]core.Process, len(s.procs))
	copy(out, s.procs)
	return out
}

// Len reports the number of processes currently in the set.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.procs)
}
