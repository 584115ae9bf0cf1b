// internal/workers/intake/route-facility-choice/handler.go
package routefacilitychoice

import (
	"context"
	"fmt"

	"emis-workers/internal/common/camunda"
	"emis-workers/internal/common/config"
	"emis-workers/internal/common/logger"
	"emis-workers/internal/common/observability"
	"emis-workers/internal/common/validation"
	"emis-workers/internal/emis/flow"
	"emis-workers/internal/emis/intake"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "route-facility-choice"

type Handler struct {
	config *Config
	logger logger.Logger
	runner *camunda.JobRunner
}

type HandlerOptions struct {
	AppConfig     *config.Config
	CustomConfig  *Config
	Logger        logger.Logger
	Schema        *validation.Schema
	Observability *observability.Observability
}

func NewHandler(opts HandlerOptions) (*Handler, error) {
	workerConfig := createConfigFromAppConfig(opts.AppConfig, opts.CustomConfig)
	if err := workerConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration for %s: %w", TaskType, err)
	}

	log := opts.Logger
	if log == nil {
		log = logger.NewStructured("info", "json")
	}
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})

	return &Handler{
		config: workerConfig,
		logger: log,
		runner: camunda.NewJobRunner(TaskType, workerConfig.Timeout, log, opts.Schema, opts.Observability),
	}, nil
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	var input Input
	h.runner.Run(client, job, &input, func(ctx context.Context) (interface{}, error) {
		return h.Execute(ctx, &input)
	})
}

func (h *Handler) Execute(_ context.Context, input *Input) (*Output, error) {
	step := input.Step
	if step == "" {
		step = flow.StepFacilityChoice
	}

	state := flow.State{
		Step:                   step,
		Choice:                 intake.FacilityChoice(input.FacilityType),
		AssessmentComplete:     input.AssessmentComplete,
		SpecificationsComplete: input.SpecificationsComplete,
	}

	var (
		next flow.State
		err  error
	)
	switch input.Direction {
	case "", DirectionNext:
		next, err = flow.Next(state)
	case DirectionBack:
		next, err = flow.Back(state)
	default:
		return nil, fmt.Errorf("%w: unknown direction %q", flow.ErrInvalidTransition, input.Direction)
	}
	if err != nil {
		return nil, err
	}

	h.logger.Info("wizard step resolved", map[string]interface{}{
		"from":         string(step),
		"to":           string(next.Step),
		"facilityType": string(next.Choice),
	})

	return &Output{
		FacilityType: string(next.Choice),
		NextStep:     next.Step,
		Path:         flow.Path(next.Choice),
		WithEMIS:     next.Choice == intake.WithEMIS,
	}, nil
}

func (h *Handler) GetTaskType() string {
	return TaskType
}

func (h *Handler) IsEnabled() bool {
	return h.config.Enabled
}

func (h *Handler) GetConfig() *Config {
	return h.config
}
