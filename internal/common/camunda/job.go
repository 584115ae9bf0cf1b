package camunda

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"emis-workers/internal/common/errors"
	"emis-workers/internal/common/logger"
	"emis-workers/internal/common/metrics"
	"emis-workers/internal/common/observability"
	"emis-workers/internal/common/validation"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

// JobRunner is the job pipeline shared by the workers: schema gate, decode,
// bounded execute, then complete or hand the error to the ErrorHandler.
// Prometheus and otel metrics are recorded on every path.
type JobRunner struct {
	TaskType      string
	Timeout       time.Duration
	Logger        logger.Logger
	Schema        *validation.Schema
	Errors        *errors.ErrorHandler
	Observability *observability.Observability
}

// NewJobRunner fills the error handler from log; schema and obs may be nil.
func NewJobRunner(taskType string, timeout time.Duration, log logger.Logger, schema *validation.Schema, obs *observability.Observability) *JobRunner {
	if timeout <= 0 {
		timeout = DefaultJobTimeout
	}
	return &JobRunner{
		TaskType:      taskType,
		Timeout:       timeout,
		Logger:        log,
		Schema:        schema,
		Errors:        errors.NewErrorHandler(log),
		Observability: obs,
	}
}

// Run decodes job variables into input and calls execute. The returned value
// is sent as the job's output variables.
func (r *JobRunner) Run(client worker.JobClient, job entities.Job, input interface{}, execute func(ctx context.Context) (interface{}, error)) {
	start := time.Now()
	metrics.WorkerJobsActive.WithLabelValues(r.TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(r.TaskType).Dec()

	r.Logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), r.Timeout)
	defer cancel()

	output, err := r.execute(ctx, job, input, execute)
	if err != nil {
		stdErr := r.Errors.HandleJobError(ctx, client, job, err)
		metrics.WorkerJobsFailed.WithLabelValues(r.TaskType, string(stdErr.Code)).Inc()
		r.Observability.RecordJob(ctx, r.TaskType, "failed", time.Since(start))
		return
	}

	if err := Complete(ctx, client, job, output); err != nil {
		r.Logger.Error("failed to complete job", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err.Error(),
		})
		metrics.WorkerJobsFailed.WithLabelValues(r.TaskType, "COMPLETE_FAILED").Inc()
		r.Observability.RecordJob(ctx, r.TaskType, "failed", time.Since(start))
		return
	}

	metrics.WorkerJobsCompleted.WithLabelValues(r.TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(r.TaskType).Observe(time.Since(start).Seconds())
	r.Observability.RecordJob(ctx, r.TaskType, "completed", time.Since(start))
}

func (r *JobRunner) execute(ctx context.Context, job entities.Job, input interface{}, execute func(ctx context.Context) (interface{}, error)) (interface{}, error) {
	variables := job.Variables
	if strings.TrimSpace(variables) == "" {
		variables = "{}"
	}

	if r.Schema != nil {
		result, err := r.Schema.ValidateJSON(variables)
		if err != nil {
			return nil, errors.NewParseError(err)
		}
		if !result.Valid {
			return nil, errors.NewInvalidInputError(strings.Join(result.GetErrorMessages(), "; "))
		}
	}

	if err := json.Unmarshal([]byte(variables), input); err != nil {
		return nil, errors.NewParseError(err)
	}

	return execute(ctx)
}

// Complete sends the complete-job command with output as variables.
func Complete(ctx context.Context, client worker.JobClient, job entities.Job, output interface{}) error {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		return fmt.Errorf("failed to create complete job command: %w", err)
	}
	if _, err := cmd.Send(ctx); err != nil {
		return fmt.Errorf("failed to send complete job command: %w", err)
	}
	return nil
}
