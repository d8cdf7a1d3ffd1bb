package requests

type ProcessSpec struct {
	ProcessID int    `json:"process_id"`
	Name      string `json:"name"`
	Arrival   int    `json:"arrival_time"`
	Burst     int    `json:"burst_time"`
}

type ScheduleRequest struct {
	Processes []ProcessSpec `json:"processes"`
}

type AddProcessRequest struct {
	Name    string `json:"name"`
	Arrival int    `json:"arrival_time"`
	Burst   int    `json:"burst_time"`
}
