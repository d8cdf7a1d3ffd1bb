package workset

import (
	"errors"
	"testing"

	"github.com/janjanko/fcfs/internal/core"
)

func TestSetAdd_AssignsSequentialIDs(t *testing.T) {
	set := New()

	for i, want := range []int{1, 2, 3} {
		p, err := set.Add(Entry{Name: "X", Arrival: i, Burst: 1})
		if err != nil {
			t.Fatalf("Add returned error: %v", err)
		}
		if p.ID != want {
			t.Errorf("Expected id %d, got %d", want, p.ID)
		}
	}
	if set.Len() != 3 {
		t.Errorf("Expected 3 processes, got %d", set.Len())
	}
}

func TestSetAdd_DefaultsName(t *testing.T) {
	set := New()

	p, err := set.Add(Entry{Arrival: 0, Burst: 1})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if p.Name != "P1" {
		t.Errorf("Expected default name P1, got %q", p.Name)
	}

	if _, err := set.Add(Entry{Name: "named", Arrival: 0, Burst: 1}); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	p, err = set.Add(Entry{Arrival: 0, Burst: 1})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if p.Name != "P3" {
		t.Errorf("Expected default name P3 from current count, got %q", p.Name)
	}
}

func TestSetAdd_RejectsInvalid(t *testing.T) {
	set := New()

	if _, err := set.Add(Entry{Arrival: -1, Burst: 1}); !errors.Is(err, core.ErrInvalidArrival) {
		t.Errorf("Expected ErrInvalidArrival, got %v", err)
	}
	if _, err := set.Add(Entry{Arrival: 0, Burst: 0}); !errors.Is(err, core.ErrInvalidBurst) {
		t.Errorf("Expected ErrInvalidBurst, got %v", err)
	}
	if set.Len() != 0 {
		t.Errorf("Expected rejected entries to leave the set empty, got %d", set.Len())
	}
}

func TestSetAddAll_AllOrNothing(t *testing.T) {
	set := New()

	_, err := set.AddAll([]Entry{
		{Name: "A", Arrival: 0, Burst: 2},
		{Name: "B", Arrival: 1, Burst: 0},
		{Name: "C", Arrival: 2, Burst: 3},
	})
	if !errors.Is(err, core.ErrInvalidBurst) {
		t.Fatalf("Expected ErrInvalidBurst, got %v", err)
	}
	if set.Len() != 0 {
		t.Errorf("Expected no processes committed after a bad batch, got %d", set.Len())
	}

	added, err := set.AddAll([]Entry{
		{Name: "A", Arrival: 0, Burst: 2},
		{Name: "C", Arrival: 2, Burst: 3},
	})
	if err != nil {
		t.Fatalf("AddAll returned error: %v", err)
	}
	if len(added) != 2 || added[0].ID != 1 || added[1].ID != 2 {
		t.Errorf("Expected ids [1 2], got %+v", added)
	}
}

func TestSetRemove(t *testing.T) {
	set := New()
	if _, err := set.AddAll([]Entry{
		{Name: "A", Arrival: 0, Burst: 1},
		{Name: "B", Arrival: 1, Burst: 1},
	}); err != nil {
		t.Fatalf("AddAll returned error: %v", err)
	}

	if err := set.Remove(1); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if set.Len() != 1 {
		t.Errorf("Expected 1 process left, got %d", set.Len())
	}

	err := set.Remove(99)
	if !errors.Is(err, ErrUnknownProcess) {
		t.Errorf("Expected ErrUnknownProcess, got %v", err)
	}
}

func TestSetIDsNotReusedAfterRemove(t *testing.T) {
	set := New()
	if _, err := set.AddAll([]Entry{
		{Name: "A", Arrival: 0, Burst: 1},
		{Name: "B", Arrival: 1, Burst: 1},
		{Name: "C", Arrival: 2, Burst: 1},
	}); err != nil {
		t.Fatalf("AddAll returned error: %v", err)
	}

	if err := set.Remove(2); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	p, err := set.Add(Entry{Name: "D", Arrival: 3, Burst: 1})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if p.ID != 4 {
		t.Errorf("Expected id 4 after removing id 2, got %d", p.ID)
	}
}

func TestSetClear(t *testing.T) {
	set := New()
	if _, err := set.AddAll([]Entry{
		{Name: "A", Arrival: 0, Burst: 1},
		{Name: "B", Arrival: 1, Burst: 1},
	}); err != nil {
		t.Fatalf("AddAll returned error: %v", err)
	}

	set.Clear()
	if set.Len() != 0 {
		t.Errorf("Expected empty set after Clear, got %d", set.Len())
	}

	p, err := set.Add(Entry{Name: "C", Arrival: 0, Burst: 1})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if p.ID != 3 {
		t.Errorf("Expected the id sequence to survive Clear, got id %d", p.ID)
	}
}

func TestSetSnapshot_IsACopy(t *testing.T) {
	set := New()
	if _, err := set.Add(Entry{Name: "A", Arrival: 0, Burst: 1}); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	snap := set.Snapshot()
	snap[0].Name = "mutated"

	if got := set.Snapshot()[0].Name; got != "A" {
		t.Errorf("Mutating a snapshot leaked into the set: name = %q", got)
	}
}
