// internal/workers/documents/generate-document/handler.go
package generatedocument

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"legal-workers/internal/common/errors"
	"legal-workers/internal/common/logger"
	"legal-workers/internal/common/metrics"
	"legal-workers/internal/common/validation"
	"legal-workers/internal/legal/archive"
	"legal-workers/internal/legal/locale"
	"legal-workers/internal/legal/projector"
	"legal-workers/internal/legal/references"
	"legal-workers/internal/legal/render"
	"legal-workers/internal/legal/templates"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const TaskType = "legal.generate-document"

const cleanupTimeout = 5 * time.Second

type ArtifactSaver interface {
	Save(ctx context.Context, a archive.Artifact) error
	Delete(ctx context.Context, documentID string, formats ...string) error
}

type HistoryRecorder interface {
	Record(ctx context.Context, rec archive.Record) error
	Delete(ctx context.Context, documentID string) error
}

type DocumentIndexer interface {
	IndexDocument(ctx context.Context, rec archive.Record, text string) error
}

type Handler struct {
	config       *Config
	artifacts    ArtifactSaver
	history      HistoryRecorder
	index        DocumentIndexer
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
	now          func() time.Time
	newID        func() string
}

func NewHandler(config *Config, artifacts ArtifactSaver, history HistoryRecorder, index DocumentIndexer, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		artifacts:    artifacts,
		history:      history,
		index:        index,
		errorHandler: errors.NewErrorHandler(log),
		logger:       log,
		now:          func() time.Time { return time.Now().UTC() },
		newID:        uuid.NewString,
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
	input.DocumentID = documentIDForJob(job.Key)

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
	docType := templates.DocumentType(strings.ToLower(strings.TrimSpace(input.DocumentType)))
	schema, err := templates.InputSchema(docType)
	if err != nil {
		return nil, errors.NewDocumentTypeUnknownError(input.DocumentType)
	}

	raw := input.Fields
	if raw == nil {
		raw = map[string]interface{}{}
	}
	result, err := validation.Validate(schema, raw)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if !result.Valid {
		return nil, errors.NewFieldSetValidationFailedError(strings.Join(result.GetErrorMessages(), "; ")).
			WithMetadata("invalidFields", invalidFields(result))
	}
	fields, err := render.FieldSetFromValues(raw)
	if err != nil {
		return nil, errors.NewFieldSetValidationFailedError(err.Error())
	}

	signature, err := render.ParseSignature(input.Signature)
	if err != nil {
		return nil, errors.NewFieldSetValidationFailedError(fmt.Sprintf("signature: %v", err))
	}

	var date time.Time
	if strings.TrimSpace(input.Date) != "" {
		parsed, ok := locale.ParseDate(input.Date)
		if !ok {
			return nil, errors.NewFieldSetValidationFailedError(fmt.Sprintf("date: cannot parse %q", input.Date))
		}
		date = parsed
	}

	formats, err := h.formats(input.Formats)
	if err != nil {
		return nil, errors.NewFieldSetValidationFailedError(err.Error())
	}

	lang := locale.Parse(input.Language)
	matches := references.SuggestDetailed(fields.Get(templates.FieldDescription), lang)
	citations := make(references.CitationSet, len(matches))
	for i, m := range matches {
		citations[i] = m.Citation
		metrics.CitationsSuggested.WithLabelValues(string(m.Category)).Inc()
	}

	doc, err := render.Render(render.Request{
		Type:      docType,
		Fields:    fields,
		Citations: citations,
		Signature: signature,
		Language:  lang,
		Date:      date,
	})
	if err != nil {
		return nil, errors.NewDocumentTypeUnknownError(input.DocumentType)
	}
	metrics.DocumentsRendered.WithLabelValues(string(docType), string(lang)).Inc()

	documentID := strings.TrimSpace(input.DocumentID)
	if documentID == "" {
		documentID = h.newID()
	} else if _, err := uuid.Parse(documentID); err != nil {
		return nil, errors.NewFieldSetValidationFailedError(fmt.Sprintf("documentId: %v", err))
	}

	artifacts := make(map[projector.Format][]byte, len(formats))
	for _, format := range formats {
		data, err := projector.Project(doc, format, h.config.Paginated)
		if err != nil {
			return nil, errors.NewProjectionFailedError(string(format), err)
		}
		artifacts[format] = data
	}

	refs := make([]ArtifactRef, 0, len(formats))
	var saved []string
	for _, format := range formats {
		data := artifacts[format]
		artifact := archive.Artifact{
			DocumentID:  documentID,
			Format:      string(format),
			Filename:    projector.Filename(docType, fields.Get(templates.FieldFullName), format),
			ContentType: format.ContentType(),
			Data:        data,
		}
		if err := h.artifacts.Save(ctx, artifact); err != nil {
			h.discard(ctx, documentID, saved, false)
			return nil, errors.NewArtifactSaveFailedError(err).WithMetadata("documentId", documentID)
		}
		saved = append(saved, artifact.Format)
		metrics.ArtifactBytes.WithLabelValues(string(format)).Observe(float64(len(data)))
		refs = append(refs, ArtifactRef{
			Format:      artifact.Format,
			Filename:    artifact.Filename,
			ContentType: artifact.ContentType,
			Size:        len(data),
		})
	}

	ownerEmail := strings.TrimSpace(input.OwnerEmail)
	if ownerEmail == "" {
		ownerEmail = fields.Get(templates.FieldEmail)
	}
	rec := archive.Record{
		DocumentID:   documentID,
		DocumentType: docType,
		Title:        doc.Metadata.Title,
		OwnerName:    doc.Metadata.Owner,
		OwnerEmail:   ownerEmail,
		Language:     lang,
		Citations:    []string(citations),
		Formats:      formatNames(formats),
		AppVersion:   h.config.AppVersion,
		CreatedAt:    h.now(),
	}
	if err := h.history.Record(ctx, rec); err != nil {
		h.discard(ctx, documentID, saved, false)
		return nil, errors.NewHistoryWriteFailedError(err).WithMetadata("documentId", documentID)
	}
	if err := h.index.IndexDocument(ctx, rec, strings.Join(doc.Text(), "\n")); err != nil {
		h.discard(ctx, documentID, saved, true)
		return nil, errors.NewArchiveIndexFailedError(err).WithMetadata("documentId", documentID)
	}

	h.logger.Info("document generated", map[string]interface{}{
		"documentId":   documentID,
		"documentType": docType,
		"language":     lang,
		"citations":    len(citations),
		"formats":      rec.Formats,
	})

	return &Output{
		DocumentID:   documentID,
		DocumentType: string(docType),
		Title:        rec.Title,
		Owner:        rec.OwnerName,
		OwnerEmail:   ownerEmail,
		Language:     string(lang),
		Citations:    rec.Citations,
		Artifacts:    refs,
		Preview:      projector.Preview(doc),
		GeneratedAt:  rec.CreatedAt,
	}, nil
}

// formats resolves the requested formats, falling back to the configured
// defaults. Duplicates are dropped.
func (h *Handler) formats(requested []string) ([]projector.Format, error) {
	if len(requested) == 0 {
		requested = h.config.DefaultFormats
	}
	seen := map[projector.Format]bool{}
	out := make([]projector.Format, 0, len(requested))
	for _, name := range requested {
		f, err := projector.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out, nil
}

// discard removes what a failed generation already stored. Failures are
// logged; the job error that triggered the cleanup is what gets reported.
func (h *Handler) discard(ctx context.Context, documentID string, formats []string, recorded bool) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()

	if len(formats) > 0 {
		if err := h.artifacts.Delete(ctx, documentID, formats...); err != nil {
			h.logger.Warn("failed to discard artifacts", map[string]interface{}{
				"documentId": documentID,
				"formats":    formats,
				"error":      err.Error(),
			})
		}
	}
	if recorded {
		if err := h.history.Delete(ctx, documentID); err != nil {
			h.logger.Warn("failed to discard history record", map[string]interface{}{
				"documentId": documentID,
				"error":      err.Error(),
			})
		}
	}
}

// documentIDForJob derives the document id from the job key so every retry
// of the same job writes over the same artifacts and history row.
func documentIDForJob(jobKey int64) string {
	name := TaskType + "/" + strconv.FormatInt(jobKey, 10)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}

func formatNames(formats []projector.Format) []string {
	out := make([]string, len(formats))
	for i, f := range formats {
		out[i] = string(f)
	}
	return out
}

func invalidFields(result *validation.ValidationResult) []string {
	seen := map[string]bool{}
	var out []string
	for _, e := range result.Errors {
		if !seen[e.Field] {
			seen[e.Field] = true
			out = append(out, e.Field)
		}
	}
	sort.Strings(out)
	return out
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
