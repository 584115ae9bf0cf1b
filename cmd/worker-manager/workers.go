package main

import (
	"fmt"

	"emis-workers/internal/common/cache"
	"emis-workers/internal/common/camunda"
	"emis-workers/internal/common/config"
	"emis-workers/internal/common/logger"
	"emis-workers/internal/common/observability"
	"emis-workers/internal/common/validation"
	"emis-workers/internal/emis/catalog"
	"emis-workers/pkg/registry"

	// Intake
	rfc "emis-workers/internal/workers/intake/route-facility-choice"
	vo "emis-workers/internal/workers/intake/validate-organization"

	// Assessment
	cr "emis-workers/internal/workers/assessment/calculate-results"
	ra "emis-workers/internal/workers/assessment/record-answer"

	// Specifications
	vsp "emis-workers/internal/workers/specifications/validate-specifications"

	// Report
	dr "emis-workers/internal/workers/report/deliver-report"
	gr "emis-workers/internal/workers/report/generate-report"
)

type deliverMailer = dr.Mailer

type workerHandler interface {
	camunda.JobHandler
	IsEnabled() bool
}

type dependencies struct {
	cfg      *config.Config
	registry *registry.ActivityRegistry
	catalog  *catalog.Catalog
	log      logger.Logger
	obs      *observability.Observability
	cache    cache.Cache
	mailer   deliverMailer
}

// buildHandlers constructs every worker handler with its input schema from
// the activity registry.
func buildHandlers(d dependencies) ([]workerHandler, error) {
	builders := []struct {
		taskType string
		build    func(schema *validation.Schema) (workerHandler, error)
	}{
		{vo.TaskType, func(schema *validation.Schema) (workerHandler, error) {
			return vo.NewHandler(vo.HandlerOptions{AppConfig: d.cfg, Logger: d.log, Schema: schema, Observability: d.obs})
		}},
		{rfc.TaskType, func(schema *validation.Schema) (workerHandler, error) {
			return rfc.NewHandler(rfc.HandlerOptions{AppConfig: d.cfg, Logger: d.log, Schema: schema, Observability: d.obs})
		}},
		{ra.TaskType, func(schema *validation.Schema) (workerHandler, error) {
			return ra.NewHandler(ra.HandlerOptions{AppConfig: d.cfg, Logger: d.log, Schema: schema, Observability: d.obs, Catalog: d.catalog})
		}},
		{cr.TaskType, func(schema *validation.Schema) (workerHandler, error) {
			return cr.NewHandler(cr.HandlerOptions{AppConfig: d.cfg, Logger: d.log, Schema: schema, Observability: d.obs, Catalog: d.catalog})
		}},
		{vsp.TaskType, func(schema *validation.Schema) (workerHandler, error) {
			return vsp.NewHandler(vsp.HandlerOptions{AppConfig: d.cfg, Logger: d.log, Schema: schema, Observability: d.obs})
		}},
		{gr.TaskType, func(schema *validation.Schema) (workerHandler, error) {
			return gr.NewHandler(gr.HandlerOptions{AppConfig: d.cfg, Logger: d.log, Schema: schema, Observability: d.obs, Cache: d.cache})
		}},
		{dr.TaskType, func(schema *validation.Schema) (workerHandler, error) {
			return dr.NewHandler(dr.HandlerOptions{AppConfig: d.cfg, Logger: d.log, Schema: schema, Observability: d.obs, Mailer: d.mailer})
		}},
	}

	handlers := make([]workerHandler, 0, len(builders))
	for _, b := range builders {
		schema, err := d.registry.InputSchema(b.taskType)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.taskType, err)
		}
		h, err := b.build(schema)
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, h)
	}
	return handlers, nil
}
