// Package collect samples live host processes into simulation input. The
// sampler only observes: nothing it returns is ever executed, the records
// just seed the scheduler with realistic arrival and burst values.
package collect

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/janjanko/fcfs/internal/workset"
)

type sample struct {
	name      string
	createdAt time.Time
	cpuSecs   float64
}

// SampleHost lists host processes and maps up to limit of them (the
// busiest first) to working-set entries. Processes the host refuses to
// describe are skipped, matching how monitoring agents tolerate per-field
// permission errors.
func SampleHost(ctx context.Context, limit int) ([]workset.Entry, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list host processes: %w", err)
	}

	samples := make([]sample, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil || name == "" {
			continue
		}
		createMs, err := p.CreateTimeWithContext(ctx)
		if err != nil {
			continue
		}
		times, err := p.TimesWithContext(ctx)
		if err != nil {
			continue
		}
		samples = append(samples, sample{
			name:      name,
			createdAt: time.UnixMilli(createMs),
			cpuSecs:   times.User + times.System,
		})
	}

	return toEntries(samples, limit), nil
}

// toEntries maps observed processes onto (arrival, burst) tuples: arrival
// is whole seconds since the oldest retained process appeared, burst the
// rounded CPU seconds consumed so far, floored at one unit so no
// zero-width interval can reach the scheduler. Retention favors the
// processes that burned the most CPU; submission order is oldest first.
func toEntries(samples []sample, limit int) []workset.Entry {
	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].cpuSecs > samples[j].cpuSecs
	})
	if limit > 0 && len(samples) > limit {
		samples = samples[:limit]
	}
	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].createdAt.Before(samples[j].createdAt)
	})

	if len(samples) == 0 {
		return nil
	}
	epoch := samples[0].createdAt

	entries := make([]workset.Entry, 0, len(samples))
	for _, s := range samples {
		burst := int(math.Round(s.cpuSecs))
		if burst < 1 {
			burst = 1
		}
		entries = append(entries, workset.Entry{
			Name:    s.name,
			Arrival: int(s.createdAt.Sub(epoch) / time.Second),
			Burst:   burst,
		})
	}
	return entries
}
