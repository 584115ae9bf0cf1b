// internal/workers/assessment/calculate-results/handler.go
package calculateresults

import (
	"context"
	"fmt"

	"emis-workers/internal/common/camunda"
	"emis-workers/internal/common/config"
	"emis-workers/internal/common/errors"
	"emis-workers/internal/common/logger"
	"emis-workers/internal/common/metrics"
	"emis-workers/internal/common/observability"
	"emis-workers/internal/common/validation"
	"emis-workers/internal/emis/assessment"
	"emis-workers/internal/emis/catalog"
	"emis-workers/internal/emis/scoring"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "calculate-results"

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

// Execute scores the answer set. Partial answer sets score as previews
// unless Finalize is set, in which case every section must be complete and
// the final scores are recorded as metrics.
func (h *Handler) Execute(_ context.Context, input *Input) (*Output, error) {
	store := assessment.FromAnswers(h.catalog, input.Answers)
	complete := store.Complete()

	if input.Finalize && !complete {
		var pending []string
		for _, p := range store.SectionProgress() {
			if !p.Complete {
				pending = append(pending, fmt.Sprintf("%s (%d/%d)", p.Section, p.Answered, p.Total))
			}
		}
		return nil, errors.NewIncompleteAssessmentError(fmt.Sprintf("unanswered sections: %v", pending)).
			WithMetadata("completionPercent", store.CompletionPercent())
	}

	results := scoring.FromStore(store)

	if input.Finalize {
		metrics.AssessmentOverallPercentage.Observe(float64(results.OverallPercentage))
		for _, s := range results.Sections {
			metrics.SectionPercentage.WithLabelValues(catalog.Section(s.ID).Slug()).Observe(float64(s.Percentage))
		}
		h.logger.Info("assessment finalized", map[string]interface{}{
			"overallPercentage": results.OverallPercentage,
			"totalScore":        results.TotalScore,
			"maxTotalScore":     results.MaxTotalScore,
		})
	}

	return &Output{
		AssessmentResults:   results,
		Complete:            complete,
		CompletionPercent:   store.CompletionPercent(),
		Summary:             scoring.Summary(results.OverallPercentage),
		RecommendationTexts: results.RecommendationTexts(),
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
