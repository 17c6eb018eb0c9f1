// internal/workers/documents/search-documents/handler.go
package searchdocuments

import (
	"context"
	"encoding/json"
	"strings"

	"legal-workers/internal/common/errors"
	"legal-workers/internal/common/logger"
	"legal-workers/internal/common/metrics"
	"legal-workers/internal/legal/archive"
	"legal-workers/internal/legal/locale"
	"legal-workers/internal/legal/templates"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "legal.search-documents"

type Searcher interface {
	Search(ctx context.Context, q archive.Query) (*archive.SearchResult, error)
}

type Handler struct {
	config       *Config
	index        Searcher
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, index Searcher, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		index:        index,
		errorHandler: errors.NewErrorHandler(log),
		logger:       log,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
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

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	q := archive.Query{
		Text:       strings.TrimSpace(input.Query),
		OwnerEmail: strings.TrimSpace(input.OwnerEmail),
		From:       input.Pagination.From,
		Size:       input.Pagination.Size,
	}
	if input.DocumentType != "" {
		tmpl, err := templates.Lookup(templates.DocumentType(strings.ToLower(input.DocumentType)))
		if err != nil {
			return nil, errors.NewDocumentTypeUnknownError(input.DocumentType)
		}
		q.DocumentType = tmpl.Type
	}
	if input.Language != "" {
		q.Language = locale.Parse(input.Language)
	}

	result, err := h.index.Search(ctx, q)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.NewSearchTimeoutError()
		}
		return nil, errors.NewSearchQueryFailedError(err)
	}

	docs := result.Hits
	if docs == nil {
		docs = []archive.Hit{}
	}
	return &Output{
		Documents: docs,
		TotalHits: result.Total,
		Took:      result.Took,
	}, nil
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if _, err := cmd.Send(context.Background()); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err.Error(),
		})
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
