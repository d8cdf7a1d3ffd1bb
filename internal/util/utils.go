package util

import "github.com/janjanko/fcfs/internal/core"

// CalculateAverages returns the mean waiting and turnaround times of a
// schedule. Both are defined as 0 for an empty schedule.
func CalculateAverages(schedule []core.ScheduledProcess) (averageWaitingTime, averageTurnaroundTime float64) {
	if len(schedule) == 0 {
		return 0, 0
	}

	var waitingSum float64
	var turnaroundSum float64
	for _, sp := range schedule {
		waitingSum += float64(sp.Waiting)
		turnaroundSum += float64(sp.Turnaround)
	}

	processCount := float64(len(schedule))
	averageWaitingTime = waitingSum / processCount
	averageTurnaroundTime = turnaroundSum / processCount
	return
}
