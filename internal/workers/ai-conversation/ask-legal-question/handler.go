// internal/workers/ai-conversation/ask-legal-question/handler.go
package asklegalquestion

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"strings"

	"legal-workers/internal/common/errors"
	"legal-workers/internal/common/logger"
	"legal-workers/internal/common/metrics"
	"legal-workers/internal/common/validation"
	"legal-workers/internal/legal/ask"
	"legal-workers/internal/legal/locale"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "legal.ask-question"

type Asker interface {
	Ask(ctx context.Context, question string, lang locale.Language) (*ask.Answer, error)
}

type Handler struct {
	config       *Config
	asker        Asker
	cache        *AnswerCache
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

// NewHandler builds the handler. A nil cache sends every question to the
// backend.
func NewHandler(config *Config, asker Asker, cache *AnswerCache, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		asker:        asker,
		cache:        cache,
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
		// The fallback answer is delivered once the broker has no retries
		// left to spend on the backend.
		if output != nil && job.Retries <= 1 {
			h.completeJob(client, job, output)
			return
		}
		h.failJob(client, job, err)
		return
	}

	h.completeJob(client, job, output)
}

// execute returns the fallback answer together with ASK_BACKEND_UNAVAILABLE
// when the backend fails.
func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	result, err := validation.Validate(GetInputSchema(), input)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if !result.Valid || strings.TrimSpace(input.Question) == "" {
		details := "question: must not be blank"
		if !result.Valid {
			details = strings.Join(result.GetErrorMessages(), "; ")
		}
		return nil, errors.NewInputValidationFailedError(details)
	}

	question := strings.TrimSpace(input.Question)
	lang := locale.Parse(input.Language)

	if h.cache != nil {
		answer, hit, err := h.cache.Get(ctx, question, lang)
		if err != nil {
			h.logger.Warn("answer cache read failed", map[string]interface{}{"error": err.Error()})
		}
		if hit {
			metrics.AskAnswers.WithLabelValues(string(answer.Source.Kind), "hit").Inc()
			return toOutput(answer, true), nil
		}
	}

	answer, err := h.asker.Ask(ctx, question, lang)
	if err != nil {
		if !stderrors.Is(err, ask.ErrBackendUnavailable) || answer == nil {
			return nil, errors.NewAskBackendUnavailableError(err)
		}
		metrics.AskAnswers.WithLabelValues(string(answer.Source.Kind), "fallback").Inc()
		return toOutput(answer, false), errors.NewAskBackendUnavailableError(err)
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, question, lang, answer); err != nil {
			h.logger.Warn("answer cache write failed", map[string]interface{}{"error": err.Error()})
		}
	}
	metrics.AskAnswers.WithLabelValues(string(answer.Source.Kind), "miss").Inc()
	return toOutput(answer, false), nil
}

func toOutput(answer *ask.Answer, cached bool) *Output {
	return &Output{
		Answer:      answer.Text,
		Source:      answer.Source.Raw,
		SourceKind:  string(answer.Source.Kind),
		SourceLabel: answer.Source.Label,
		Language:    string(answer.Language),
		Fallback:    answer.Fallback,
		Cached:      cached,
	}
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
