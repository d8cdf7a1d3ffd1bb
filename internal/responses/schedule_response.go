package responses

import "time"

type ProcessDetail struct {
	ProcessID  int    `json:"process_id"`
	Name       string `json:"name"`
	Arrival    int    `json:"arrival_time"`
	Burst      int    `json:"burst_time"`
	Start      int    `json:"start_time"`
	Completion int    `json:"completion_time"`
	TurnAround int    `json:"turn_around_time"`
	Waiting    int    `json:"waiting_time"`
}

type ScheduleResponse struct {
	ScheduleID            string          `json:"schedule_id"`
	Algorithm             string          `json:"algorithm"`
	ComputedAt            time.Time       `json:"computed_at"`
	TotalTime             int             `json:"total_time"`
	IdleTime              int             `json:"idle_time"`
	CPUUtilization        float64         `json:"cpu_utilization"`
	CPUThroughput         float64         `json:"cpu_throughput"`
	AverageWaitingTime    float64         `json:"average_waiting_time"`
	AverageTurnAroundTime float64         `json:"average_turn_around_time"`
	Details               []ProcessDetail `json:"details"`
}

type ProcessInfo struct {
	ProcessID int    `json:"process_id"`
	Name      string `json:"name"`
	Arrival   int    `json:"arrival_time"`
	Burst     int    `json:"burst_time"`
}

type ProcessListResponse struct {
	Count     int           `json:"count"`
	Processes []ProcessInfo `json:"processes"`
}
