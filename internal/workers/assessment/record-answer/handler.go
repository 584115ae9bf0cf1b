// internal/workers/assessment/record-answer/handler.go
package recordanswer

import (
	"context"
	"fmt"

	"emis-workers/internal/common/camunda"
	"emis-workers/internal/common/config"
	"emis-workers/internal/common/errors"
	"emis-workers/internal/common/logger"
	"emis-workers/internal/common/observability"
	"emis-workers/internal/common/validation"
	"emis-workers/internal/emis/assessment"
	"emis-workers/internal/emis/catalog"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const TaskType = "record-answer"

type Handler struct {
	config  *Config
	logger  logger.Logger
	catalog *catalog.Catalog
	runner  *camunda.JobRunner
}

type HandlerOptions struct {
	AppConfig     *config.Config
	CustomConfig  *Config
	Logger        logger.Logger
	Schema        *validation.Schema
	Observability *observability.Observability
	Catalog       *catalog.Catalog
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

	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	return &Handler{
		config:  workerConfig,
		logger:  log,
		catalog: cat,
		runner:  camunda.NewJobRunner(TaskType, workerConfig.Timeout, log, opts.Schema, opts.Observability),
	}, nil
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	var input Input
	h.runner.Run(client, job, &input, func(ctx context.Context) (interface{}, error) {
		return h.Execute(ctx, &input)
	})
}

// Execute applies one captured answer to the session's answer set. Answers
// for questions the catalog does not know are ignored and reported with
// Applied=false.
func (h *Handler) Execute(_ context.Context, input *Input) (*Output, error) {
	store := assessment.FromAnswers(h.catalog, input.Answers)

	applied, err := h.apply(store, input)
	if err != nil {
		return nil, err
	}

	id := input.AssessmentID
	if id == "" {
		id = uuid.New().String()
	}

	if !applied {
		h.logger.Warn("answer ignored for unknown question", map[string]interface{}{
			"assessmentId": id,
			"questionId":   input.QuestionID,
		})
	}

	return &Output{
		AssessmentID:      id,
		Answers:           store.Answers(),
		Applied:           applied,
		Complete:          store.Complete(),
		CompletionPercent: store.CompletionPercent(),
		SectionProgress:   store.SectionProgress(),
	}, nil
}

func (h *Handler) apply(store *assessment.Store, input *Input) (bool, error) {
	missing := func(field string) error {
		return errors.NewInvalidInputError(fmt.Sprintf("mode %s requires %s", input.Mode, field))
	}

	switch input.Mode {
	case ModeOption:
		if input.Index == nil {
			return false, missing("index")
		}
		return store.SelectOption(input.QuestionID, *input.Index)
	case ModeSlider:
		if input.Index == nil {
			return false, missing("index")
		}
		return store.SetSliderIndex(input.QuestionID, *input.Index)
	case ModePercentage:
		if input.Percentage == nil {
			return false, missing("percentage")
		}
		return store.SetPercentage(input.QuestionID, *input.Percentage)
	case ModeSliderScore:
		if input.Score == nil {
			return false, missing("score")
		}
		return store.SetSliderScore(input.QuestionID, *input.Score)
	default:
		return false, errors.NewInvalidInputError(fmt.Sprintf("unknown mode %q", input.Mode))
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
