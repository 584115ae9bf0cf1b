// internal/workers/specifications/validate-specifications/handler.go
package validatespecifications

import (
	"context"
	"fmt"

	"emis-workers/internal/common/camunda"
	"emis-workers/internal/common/config"
	"emis-workers/internal/common/logger"
	"emis-workers/internal/common/observability"
	"emis-workers/internal/common/validation"
	"emis-workers/internal/emis/specs"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "validate-specifications"

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
	survey, err := surveyFrom(input)
	if err != nil {
		return nil, err
	}

	if input.RequireComplete {
		if err := survey.RequireComplete(); err != nil {
			h.logger.Info("specification survey incomplete", map[string]interface{}{
				"completionPercent": survey.CompletionPercent(),
			})
			return nil, err
		}
	}

	outline := survey.Outline()
	h.logger.Debug("specification survey validated", map[string]interface{}{
		"sections": len(outline),
		"complete": survey.Complete(),
	})

	return &Output{
		EMISSpecs:         survey,
		Outline:           outline,
		Complete:          survey.Complete(),
		CompletionPercent: survey.CompletionPercent(),
	}, nil
}

func surveyFrom(input *Input) (*specs.Survey, error) {
	switch {
	case len(input.EMISFlags) > 0:
		return specs.FromFlags(input.EMISFlags)
	case input.EMISSpecs != nil:
		s := input.EMISSpecs
		s.Normalize()
		if err := s.Validate(); err != nil {
			return nil, err
		}
		return s, nil
	default:
		return specs.NewSurvey(), nil
	}
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
