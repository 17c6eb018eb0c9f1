// internal/workers/timeline/calculate-deadlines/handler.go
package calculatedeadlines

import (
	"context"
	"encoding/json"
	"time"

	"legal-workers/internal/common/errors"
	"legal-workers/internal/common/logger"
	"legal-workers/internal/common/metrics"
	"legal-workers/internal/legal/locale"
	"legal-workers/internal/legal/timeline"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "legal.calculate-deadlines"

type Handler struct {
	config       *Config
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
	now          func() time.Time
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		errorHandler: errors.NewErrorHandler(log),
		logger:       log,
		now:          time.Now,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Debug("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, errors.NewInputParsingFailedError(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.failJob(client, job, err)
		return
	}

	h.completeJob(ctx, client, job, output)
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	lang := locale.Parse(input.Language)
	deadlines := input.Deadlines
	if deadlines == nil {
		deadlines = timeline.DefaultDeadlines(lang)
	}

	tl, err := timeline.Calculate(timeline.Request{
		CaseType:  timeline.CaseType(input.CaseType),
		StartDate: input.StartDate,
		Deadlines: deadlines,
		Language:  lang,
	})
	if err != nil {
		return nil, errors.NewTimelineInvalidError(err.Error())
	}

	return &Output{
		CaseType:      string(tl.CaseType),
		CaseTypeLabel: tl.CaseTypeLabel,
		Language:      string(tl.Language),
		Events:        tl.Events,
		NextDeadline:  nextDeadline(tl.Events, h.now()),
	}, nil
}

// nextDeadline is the earliest deadline falling on or after today.
func nextDeadline(events []timeline.Event, now time.Time) *timeline.Event {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	var next *timeline.Event
	for i := range events {
		e := events[i]
		if e.Initiation || e.Date.Before(today) {
			continue
		}
		if next == nil || e.Date.Before(next.Date) {
			next = &events[i]
		}
	}
	return next
}

func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{"error": err.Error()})
		return
	}
	if _, err := cmd.Send(ctx); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{"error": err.Error()})
		return
	}
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, err error) {
	stdErr := errors.Normalize(err)
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(stdErr.Code)).Inc()
	h.errorHandler.HandleJobError(context.Background(), client, job, stdErr)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
