// internal/workers/intake/validate-organization/handler.go
package validateorganization

import (
	"context"
	stderrors "errors"
	"fmt"

	"emis-workers/internal/common/camunda"
	"emis-workers/internal/common/config"
	"emis-workers/internal/common/errors"
	"emis-workers/internal/common/logger"
	"emis-workers/internal/common/observability"
	"emis-workers/internal/common/validation"
	"emis-workers/internal/emis/intake"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "validate-organization"

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

// Execute normalizes the organization details and checks the required
// fields. The user-facing message of the first missing field is carried as
// the error details.
func (h *Handler) Execute(_ context.Context, input *Input) (*Output, error) {
	info := input.UserInfo.Normalize()
	if err := info.Validate(); err != nil {
		h.logger.Info("organization information incomplete", map[string]interface{}{
			"error": err.Error(),
		})
		stdErr := errors.NewMissingRequiredFieldError(err.Error())
		var fieldErr *intake.FieldError
		if stderrors.As(err, &fieldErr) {
			stdErr.WithMetadata("field", fieldErr.Field)
		}
		return nil, stdErr
	}

	h.logger.Info("organization information validated", map[string]interface{}{
		"appId":     info.AppID,
		"attendees": len(info.AttendeeNames),
	})

	return &Output{
		UserInfo:  info,
		Valid:     true,
		Attendees: info.Attendees(),
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
