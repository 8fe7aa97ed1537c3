package api

import (
	"bytes"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"schedsim/config"
	"schedsim/internal/gantt"
	"schedsim/internal/requests"
	"schedsim/internal/responses"
	"schedsim/internal/sched"
	"schedsim/internal/sysmon"
)

type SchedulerHandler interface {
	Schedule(ctx *fiber.Ctx) error
	RenderSchedule(ctx *fiber.Ctx) error
	Algorithms(ctx *fiber.Ctx) error
	Metrics(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	engine *sched.Engine
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{
		config: config,
		engine: sched.NewEngine(config.MaxIterations),
	}
}

func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	request, segments, err := s.runRequest(ctx)
	if err != nil {
		return scheduleError(ctx, err)
	}
	return ctx.JSON(responses.NewScheduleResponse(request.Algorithm, segments))
}

func (s *SchedulerHandlerImpl) RenderSchedule(ctx *fiber.Ctx) error {
	request, segments, err := s.runRequest(ctx)
	if err != nil {
		return scheduleError(ctx, err)
	}
	var buf bytes.Buffer
	gantt.Render(&buf, request.Algorithm, segments)
	ctx.Type("txt")
	return ctx.Send(buf.Bytes())
}

func (s *SchedulerHandlerImpl) Algorithms(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"algorithms": sched.AlgorithmNames()})
}

func (s *SchedulerHandlerImpl) Metrics(ctx *fiber.Ctx) error {
	return ctx.JSON(sysmon.Sample(s.config.MonitorDiskPath))
}

// runRequest parses the body, normalizes it and executes the run.
func (s *SchedulerHandlerImpl) runRequest(ctx *fiber.Ctx) (*requests.ScheduleRequest, []sched.ScheduleSegment, error) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return nil, nil, errBadRequest
	}
	algorithm, err := sched.ParseAlgorithm(request.Algorithm)
	if err != nil {
		return nil, nil, err
	}
	segments, err := s.engine.Run(request.Specs(), algorithm, request.Params(s.config.RoundRobinTimeQuantum))
	if err != nil {
		return nil, nil, err
	}
	return &request, segments, nil
}

var errBadRequest = errors.New("invalid request format")

func scheduleError(ctx *fiber.Ctx, err error) error {
	log.Println("schedule request failed:", err)
	status := fiber.StatusBadRequest
	if errors.Is(err, sched.ErrSimulationDivergence) {
		status = fiber.StatusUnprocessableEntity
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
