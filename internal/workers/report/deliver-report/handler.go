// internal/workers/report/deliver-report/handler.go
package deliverreport

import (
	"context"
	"fmt"
	"html"
	"strings"

	"emis-workers/internal/common/aws"
	"emis-workers/internal/common/camunda"
	"emis-workers/internal/common/config"
	"emis-workers/internal/common/errors"
	"emis-workers/internal/common/logger"
	"emis-workers/internal/common/metrics"
	"emis-workers/internal/common/observability"
	"emis-workers/internal/common/validation"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "deliver-report"

	defaultContentType = "application/msword"
)

// Mailer sends a message and returns the provider's message id.
// *aws.SESClient implements it.
type Mailer interface {
	SendRawEmail(ctx context.Context, msg aws.Message) (string, error)
}

type Handler struct {
	config *Config
	logger logger.Logger
	mailer Mailer
	runner *camunda.JobRunner
}

type HandlerOptions struct {
	AppConfig     *config.Config
	CustomConfig  *Config
	Logger        logger.Logger
	Schema        *validation.Schema
	Observability *observability.Observability
	// Mailer is nil when mail delivery is disabled; jobs then complete with
	// delivered=false.
	Mailer Mailer
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
		mailer: opts.Mailer,
		runner: camunda.NewJobRunner(TaskType, workerConfig.Timeout, log, opts.Schema, opts.Observability),
	}, nil
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	var input Input
	h.runner.Run(client, job, &input, func(ctx context.Context) (interface{}, error) {
		return h.Execute(ctx, &input)
	})
}

// Execute mails the rendered report as an attachment. Transport failures are
// retryable; bad recipients are not.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	recipients, err := normalizeRecipients(input.Recipients)
	if err != nil {
		return nil, err
	}

	if h.mailer == nil {
		h.logger.Warn("mail delivery disabled, report not sent", map[string]interface{}{
			"recipients": len(recipients),
		})
		metrics.ReportsDelivered.WithLabelValues("skipped").Inc()
		return &Output{Delivered: false, Recipients: recipients, Reason: "mail delivery disabled"}, nil
	}

	subject := strings.TrimSpace(input.Subject)
	if subject == "" {
		subject = h.config.Subject
	}
	contentType := input.Report.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	id, err := h.mailer.SendRawEmail(ctx, aws.Message{
		To:       recipients,
		Subject:  subject,
		HTMLBody: body(input.Report),
		Attachments: []aws.Attachment{{
			Filename:    input.Report.Filename,
			ContentType: contentType,
			Data:        []byte(input.Report.HTML),
		}},
	})
	if err != nil {
		metrics.ReportsDelivered.WithLabelValues("failed").Inc()
		return nil, errors.NewReportDeliveryFailedError(err).WithMetadata("recipients", recipients)
	}

	metrics.ReportsDelivered.WithLabelValues("sent").Inc()
	h.logger.Info("report delivered", map[string]interface{}{
		"messageId":  id,
		"recipients": len(recipients),
		"filename":   input.Report.Filename,
	})
	return &Output{Delivered: true, MessageID: id, Recipients: recipients}, nil
}

// normalizeRecipients trims and de-duplicates addresses, keeping the first
// spelling of each.
func normalizeRecipients(in []string) ([]string, error) {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, r := range in {
		addr := strings.TrimSpace(r)
		if !validation.ValidateEmail(addr) {
			return nil, errors.NewInvalidInputError(fmt.Sprintf("invalid recipient %q", r)).
				WithMetadata("recipient", r)
		}
		if seen[strings.ToLower(addr)] {
			continue
		}
		seen[strings.ToLower(addr)] = true
		out = append(out, addr)
	}
	if len(out) == 0 {
		return nil, errors.NewInvalidInputError("at least one recipient is required")
	}
	return out, nil
}

func body(r Report) string {
	title := r.Title
	if title == "" {
		title = "EMIS report"
	}
	return fmt.Sprintf("<p>Please find the %s attached as <strong>%s</strong>.</p>",
		html.EscapeString(title), html.EscapeString(r.Filename))
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
