package core

// Metrics holds the aggregate statistics derived from a complete schedule.
// Every field is 0 for the empty schedule; no field is ever NaN or negative.
type Metrics struct {
	TotalTime         int     // makespan: completion time of the last process
	BusyTime          int     // total time the processor spent executing
	IdleTime          int     // TotalTime - BusyTime
	CPUUtilization    float64 // BusyTime / TotalTime
	Throughput        float64 // processes completed per time unit
	AverageWaiting    float64
	AverageTurnaround float64
}
