package schedulers

import (
	"time"

	"github.com/google/uuid"

	"github.com/janjanko/fcfs/internal/core"
	"github.com/janjanko/fcfs/internal/responses"
	"github.com/janjanko/fcfs/internal/util"
)

// Analyze derives the aggregate metrics of a computed schedule. An empty
// schedule yields the zero value; no division by zero can occur.
func Analyze(schedule []core.ScheduledProcess) core.Metrics {
	if len(schedule) == 0 {
		return core.Metrics{}
	}

	busy := 0
	for _, sp := range schedule {
		busy += sp.Burst
	}
	total := schedule[len(schedule)-1].Completion

	averageWaiting, averageTurnaround := util.CalculateAverages(schedule)

	m := core.Metrics{
		TotalTime:         total,
		BusyTime:          busy,
		IdleTime:          total - busy,
		AverageWaiting:    averageWaiting,
		AverageTurnaround: averageTurnaround,
	}
	if total > 0 {
		m.CPUUtilization = float64(busy) / float64(total)
		m.Throughput = float64(len(schedule)) / float64(total)
	}
	return m
}

// BuildScheduleResponse assembles the wire response for a computed
// schedule: per-process details in execution order plus aggregates, stamped
// with a fresh schedule id for log correlation.
func BuildScheduleResponse(schedule []core.ScheduledProcess) responses.ScheduleResponse {
	m := Analyze(schedule)

	details := make([]responses.ProcessDetail, 0, len(schedule))
	for _, sp := range schedule {
		details = append(details, generateProcessDetail(sp))
	}

	return responses.ScheduleResponse{
		ScheduleID:            uuid.NewString(),
		Algorithm:             Algorithm,
		ComputedAt:            time.Now().UTC(),
		TotalTime:             m.TotalTime,
		IdleTime:              m.IdleTime,
		CPUUtilization:        m.CPUUtilization,
		CPUThroughput:         m.Throughput,
		AverageWaitingTime:    m.AverageWaiting,
		AverageTurnAroundTime: m.AverageTurnaround,
		Details:               details,
	}
}

func generateProcessDetail(sp core.ScheduledProcess) responses.ProcessDetail {
	return responses.ProcessDetail{
		ProcessID:  sp.ID,
		Name:       sp.Name,
		Arrival:    sp.Arrival,
		Burst:      sp.Burst,
		Start:      sp.Start,
		Completion: sp.Completion,
		TurnAround: sp.Turnaround,
		Waiting:    sp.Waiting,
	}
}
