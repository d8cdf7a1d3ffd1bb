package api

import "github.com/gofiber/fiber/v2"

// Register mounts the v1 routes on the app.
func Register(app *fiber.App, h SchedulerHandler) {
	apiGroup := app.Group("/api")
	v1 := apiGroup.Group("/v1")
	{
		v1.Post("/schedule/fcfs", h.FirstComeFirstServe)
		v1.Get("/schedule", h.CurrentSchedule)
		v1.Post("/processes", h.AddProcess)
		v1.Get("/processes", h.ListProcesses)
		v1.Delete("/processes/:id", h.RemoveProcess)
		v1.Delete("/processes", h.ClearProcesses)
	}
}
