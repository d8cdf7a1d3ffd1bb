package api

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/janjanko/fcfs/config"
	"github.com/janjanko/fcfs/internal/core"
	"github.com/janjanko/fcfs/internal/requests"
	"github.com/janjanko/fcfs/internal/responses"
	"github.com/janjanko/fcfs/internal/schedulers"
	"github.com/janjanko/fcfs/internal/workset"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	CurrentSchedule(ctx *fiber.Ctx) error
	AddProcess(ctx *fiber.Ctx) error
	ListProcesses(ctx *fiber.Ctx) error
	RemoveProcess(ctx *fiber.Ctx) error
	ClearProcesses(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	set    *workset.Set
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, set *workset.Set) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, set: set}
}

// FirstComeFirstServe computes a one-shot schedule from the request body
// without touching the working set.
func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	if len(request.Processes) > s.config.MaxProcesses {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("too many processes: %d exceeds limit of %d", len(request.Processes), s.config.MaxProcesses),
		})
	}

	processes, err := specsToProcesses(request.Processes)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	schedule, err := schedulers.FirstComeFirstServe(processes)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(schedulers.BuildScheduleResponse(schedule))
}

// CurrentSchedule computes the schedule of the working set as it stands.
// An empty set yields an empty schedule with zeroed aggregates.
func (s *SchedulerHandlerImpl) CurrentSchedule(ctx *fiber.Ctx) error {
	schedule, err := schedulers.FirstComeFirstServe(s.set.Snapshot())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(schedulers.BuildScheduleResponse(schedule))
}

func (s *SchedulerHandlerImpl) AddProcess(ctx *fiber.Ctx) error {
	var request requests.AddProcessRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	if s.set.Len() >= s.config.MaxProcesses {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("working set is full: limit is %d processes", s.config.MaxProcesses),
		})
	}

	p, err := s.set.Add(workset.Entry{
		Name:    request.Name,
		Arrival: request.Arrival,
		Burst:   request.Burst,
	})
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(processInfo(p))
}

func (s *SchedulerHandlerImpl) ListProcesses(ctx *fiber.Ctx) error {
	procs := s.set.Snapshot()
	infos := make([]responses.ProcessInfo, 0, len(procs))
	for _, p := range procs {
		infos = append(infos, processInfo(p))
	}
	return ctx.JSON(responses.ProcessListResponse{
		Count:     len(infos),
		Processes: infos,
	})
}

func (s *SchedulerHandlerImpl) RemoveProcess(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "process id must be an integer",
		})
	}
	if err := s.set.Remove(id); err != nil {
		if errors.Is(err, workset.ErrUnknownProcess) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"removed": id})
}

func (s *SchedulerHandlerImpl) ClearProcesses(ctx *fiber.Ctx) error {
	removed := s.set.Len()
	s.set.Clear()
	return ctx.JSON(fiber.Map{"removed": removed})
}

// specsToProcesses turns wire specs into model processes. Explicit ids are
// kept and must be unique; specs without an id get the smallest positive
// integer not yet taken, in submission order.
func specsToProcesses(specs []requests.ProcessSpec) ([]core.Process, error) {
	taken := make(map[int]bool, len(specs))
	for i, spec := range specs {
		if spec.ProcessID == 0 {
			continue
		}
		if spec.ProcessID < 0 {
			return nil, fmt.Errorf("process %d: process_id must be positive", i+1)
		}
		if taken[spec.ProcessID] {
			return nil, fmt.Errorf("duplicate process_id %d", spec.ProcessID)
		}
		taken[spec.ProcessID] = true
	}

	processes := make([]core.Process, 0, len(specs))
	next := 1
	for i, spec := range specs {
		id := spec.ProcessID
		if id == 0 {
			for taken[next] {
				next++
			}
			id = next
			taken[id] = true
		}
		name := spec.Name
		if name == "" {
			name = fmt.Sprintf("P%d", i+1)
		}
		processes = append(processes, core.Process{
			ID:      id,
			Name:    name,
			Arrival: spec.Arrival,
			Burst:   spec.Burst,
		})
	}
	return processes, nil
}

func processInfo(p core.Process) responses.ProcessInfo {
	return responses.ProcessInfo{
		ProcessID: p.ID,
		Name:      p.Name,
		Arrival:   p.Arrival,
		Burst:     p.Burst,
	}
}
