// internal/workers/report/generate-report/handler.go
package generatereport

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"emis-workers/internal/common/cache"
	"emis-workers/internal/common/camunda"
	"emis-workers/internal/common/config"
	"emis-workers/internal/common/errors"
	"emis-workers/internal/common/logger"
	"emis-workers/internal/common/metrics"
	"emis-workers/internal/common/observability"
	"emis-workers/internal/common/validation"
	"emis-workers/internal/emis/intake"
	"emis-workers/internal/emis/report"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "generate-report"

	dateLayout = "2006-01-02"
	keyPrefix  = "report"
)

type Handler struct {
	config *Config
	logger logger.Logger
	cache  cache.Cache
	now    func() time.Time
	runner *camunda.JobRunner
}

type HandlerOptions struct {
	AppConfig     *config.Config
	CustomConfig  *Config
	Logger        logger.Logger
	Schema        *validation.Schema
	Observability *observability.Observability
	// Cache is optional; without it every job renders.
	Cache cache.Cache
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
		cache:  opts.Cache,
		now:    time.Now,
		runner: camunda.NewJobRunner(TaskType, workerConfig.Timeout, log, opts.Schema, opts.Observability),
	}, nil
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	var input Input
	h.runner.Run(client, job, &input, func(ctx context.Context) (interface{}, error) {
		return h.Execute(ctx, &input)
	})
}

// Execute renders the requested report, serving it from the cache when an
// identical request was rendered within the cache TTL. Cache failures are
// logged and never fail the job.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if input.ReportDate == "" {
		input.ReportDate = h.now().Format(dateLayout)
	}
	date, err := time.Parse(dateLayout, input.ReportDate)
	if err != nil {
		return nil, errors.NewInvalidInputError(fmt.Sprintf("reportDate: %v", err))
	}

	key, cacheStatus := h.cacheKey(input)
	if key != "" {
		cached, status := h.lookup(ctx, key)
		if cached != nil {
			metrics.ReportsGenerated.WithLabelValues(input.ReportKind, status).Inc()
			return h.output(cached, true), nil
		}
		cacheStatus = status
	}

	doc, err := h.render(input, date)
	if err != nil {
		return nil, err
	}

	// a failed read usually means Redis is down; skip the write
	if key != "" && cacheStatus == "miss" && !h.store(ctx, key, doc) {
		cacheStatus = "error"
	}
	metrics.ReportsGenerated.WithLabelValues(input.ReportKind, cacheStatus).Inc()

	h.logger.Info("report rendered", map[string]interface{}{
		"kind":     string(doc.Kind),
		"filename": doc.Filename,
		"bytes":    len(doc.HTML),
		"cache":    cacheStatus,
	})
	return h.output(doc, false), nil
}

func (h *Handler) render(input *Input, date time.Time) (*report.Document, error) {
	switch report.Kind(input.ReportKind) {
	case report.KindResults:
		if input.AssessmentResults == nil {
			return nil, errors.NewInvalidInputError("assessmentResults is required for a results report")
		}
		doc, err := report.RenderResults(input.AssessmentResults, report.ResultsOptions{
			Date:         date,
			Organization: input.UserInfo.OrgName,
		})
		if err != nil {
			return nil, errors.NewReportRenderFailedError(err)
		}
		return doc, nil

	case report.KindEMIS:
		choice, err := intake.ParseFacilityChoice(input.FacilityType)
		if err != nil {
			return nil, err
		}
		survey := input.EMISSpecs
		if survey != nil {
			survey.Normalize()
		}
		if choice == intake.WithoutEMIS {
			if survey == nil {
				return nil, errors.NewIncompleteSpecificationsError("emisSpecs is required for a facility without EMIS")
			}
			if err := survey.RequireComplete(); err != nil {
				return nil, err
			}
		}
		doc, err := report.RenderEMISReport(report.EMISInput{
			UserInfo:   input.UserInfo.Normalize(),
			Choice:     choice,
			Results:    input.AssessmentResults,
			Objectives: intake.MergeObjectives(input.TechnicalObjectives),
			Survey:     survey,
		})
		if err != nil {
			return nil, errors.NewReportRenderFailedError(err)
		}
		doc.Filename = h.config.DownloadBasename + ".doc"
		return doc, nil

	default:
		return nil, errors.NewInvalidInputError(fmt.Sprintf("unknown reportKind %q", input.ReportKind))
	}
}

// cacheKey is computed before rendering touches the input. An empty key
// disables caching for the job.
func (h *Handler) cacheKey(input *Input) (string, string) {
	if h.cache == nil || h.config.CacheTTL == 0 {
		return "", "disabled"
	}
	key, err := cache.Key(keyPrefix, input)
	if err != nil {
		h.logger.Warn("report cache key failed", map[string]interface{}{"error": err.Error()})
		return "", "error"
	}
	return key, "miss"
}

// lookup returns the cached document, if any, and the cache status to
// record: "hit", "miss" or "error".
func (h *Handler) lookup(ctx context.Context, key string) (*report.Document, string) {
	val, found, err := h.cache.Get(ctx, key)
	if err != nil {
		h.logger.Warn("report cache read failed", map[string]interface{}{"key": key, "error": err.Error()})
		return nil, "error"
	}
	if !found {
		return nil, "miss"
	}
	var doc report.Document
	if err := json.Unmarshal([]byte(val), &doc); err != nil {
		h.logger.Warn("discarding unreadable cached report", map[string]interface{}{"key": key, "error": err.Error()})
		return nil, "miss"
	}
	return &doc, "hit"
}

func (h *Handler) store(ctx context.Context, key string, doc *report.Document) bool {
	data, err := json.Marshal(doc)
	if err != nil {
		h.logger.Warn("report cache encode failed", map[string]interface{}{"error": err.Error()})
		return false
	}
	if err := h.cache.Set(ctx, key, string(data), h.config.CacheTTL); err != nil {
		h.logger.Warn("report cache write failed", map[string]interface{}{"key": key, "error": err.Error()})
		return false
	}
	return true
}

func (h *Handler) output(doc *report.Document, cached bool) *Output {
	return &Output{
		ReportID:    uuid.New().String(),
		Kind:        string(doc.Kind),
		Title:       doc.Title,
		Filename:    doc.Filename,
		ContentType: doc.ContentType,
		HTML:        doc.HTML,
		Cached:      cached,
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
