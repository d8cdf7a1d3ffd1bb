package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/janjanko/fcfs/internal/core"
)

func TestTable(t *testing.T) {
	schedule := []core.ScheduledProcess{
		{Process: core.Process{ID: 1, Name: "web", Arrival: 0, Burst: 5}, Start: 0, Completion: 5, Turnaround: 5, Waiting: 0},
		{Process: core.Process{ID: 2, Name: "db", Arrival: 1, Burst: 3}, Start: 5, Completion: 8, Turnaround: 7, Waiting: 4},
		{Process: core.Process{ID: 3, Name: "cache", Arrival: 2, Burst: 8}, Start: 8, Completion: 16, Turnaround: 14, Waiting: 6},
	}
	m := core.Metrics{AverageWaiting: 10.0 / 3.0, AverageTurnaround: 26.0 / 3.0}

	var buf bytes.Buffer
	Table(&buf, schedule, m)
	out := buf.String()

	for _, want := range []string{"web", "db", "cache", "16"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected table output to contain %q:\n%s", want, out)
		}
	}
	lower := strings.ToLower(out)
	if !strings.Contains(lower, "avg 3.33") {
		t.Errorf("Expected footer with avg 3.33:\n%s", out)
	}
	if !strings.Contains(lower, "avg 8.67") {
		t.Errorf("Expected footer with avg 8.67:\n%s", out)
	}
}

func TestTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, nil, core.Metrics{})

	lower := strings.ToLower(buf.String())
	if !strings.Contains(lower, "avg 0.00") {
		t.Errorf("Expected zeroed footer for empty schedule:\n%s", buf.String())
	}
}

func TestSummary(t *testing.T) {
	m := core.Metrics{
		TotalTime:      16,
		BusyTime:       16,
		IdleTime:       0,
		CPUUtilization: 1.0,
		Throughput:     3.0 / 16.0,
	}

	var buf bytes.Buffer
	Summary(&buf, m, ThemeMono)

	want := "total time 16 | idle 0 | utilization 100.0% | throughput 0.19/t\n"
	if buf.String() != want {
		t.Errorf("Summary = %q, want %q", buf.String(), want)
	}
}
