// internal/workers/documents/deliver-document/handler.go
package deliverdocument

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	awsclient "legal-workers/internal/common/aws"
	"legal-workers/internal/common/errors"
	"legal-workers/internal/common/logger"
	"legal-workers/internal/common/metrics"
	"legal-workers/internal/common/validation"
	"legal-workers/internal/legal/archive"
	"legal-workers/internal/legal/locale"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "legal.deliver-document"

type SESService interface {
	SendRawEmail(ctx context.Context, params *ses.SendRawEmailInput, optFns ...func(*ses.Options)) (*ses.SendRawEmailOutput, error)
}

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type ArtifactLoader interface {
	Load(ctx context.Context, documentID, format string) (*archive.Artifact, error)
}

type Handler struct {
	config       *Config
	artifacts    ArtifactLoader
	sesClient    SESService
	snsClient    SNSService
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
	now          func() time.Time
}

func NewHandler(config *Config, artifacts ArtifactLoader, sesClient SESService, snsClient SNSService, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		artifacts:    artifacts,
		sesClient:    sesClient,
		snsClient:    snsClient,
		errorHandler: errors.NewErrorHandler(log),
		logger:       log,
		now:          func() time.Time { return time.Now().UTC() },
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
	if err := h.validate(input); err != nil {
		return nil, err
	}

	output := &Output{
		DocumentID: input.DocumentID,
		Channel:    input.Channel,
		Recipient:  input.Recipient,
	}

	switch input.Channel {
	case ChannelEmail:
		if !h.config.EmailEnabled || h.sesClient == nil {
			output.Reason = "email delivery disabled"
			return output, nil
		}
		return h.sendEmail(ctx, input, output)
	default:
		if !h.config.SMSEnabled || h.snsClient == nil {
			output.Reason = "sms delivery disabled"
			return output, nil
		}
		return h.sendSMS(ctx, input, output)
	}
}

func (h *Handler) validate(input *Input) error {
	input.Channel = strings.ToLower(strings.TrimSpace(input.Channel))
	input.Recipient = strings.TrimSpace(input.Recipient)

	result, err := validation.Validate(GetInputSchema(), input)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if !result.Valid {
		return errors.NewInputValidationFailedError(strings.Join(result.GetErrorMessages(), "; "))
	}

	switch input.Channel {
	case ChannelEmail:
		if !validation.ValidateEmail(input.Recipient) {
			return errors.NewInputValidationFailedError(fmt.Sprintf("recipient: invalid email %q", input.Recipient))
		}
	case ChannelSMS:
		if !validation.ValidatePhone(input.Recipient) {
			return errors.NewInputValidationFailedError(fmt.Sprintf("recipient: invalid phone number %q", input.Recipient))
		}
	}
	return nil
}

func (h *Handler) loadArtifacts(ctx context.Context, documentID string, formats []string) ([]*archive.Artifact, error) {
	if len(formats) == 0 {
		formats = h.config.DefaultFormats
	}
	out := make([]*archive.Artifact, 0, len(formats))
	for _, format := range formats {
		a, err := h.artifacts.Load(ctx, documentID, strings.ToLower(format))
		if err != nil {
			if stderrors.Is(err, archive.ErrArtifactNotFound) {
				return nil, errors.NewArtifactNotFoundError(documentID, format)
			}
			return nil, errors.NewDeliveryFailedError("artifact-store", err)
		}
		out = append(out, a)
	}
	return out, nil
}

func (h *Handler) sendEmail(ctx context.Context, input *Input, output *Output) (*Output, error) {
	artifacts, err := h.loadArtifacts(ctx, input.DocumentID, input.Formats)
	if err != nil {
		return nil, err
	}

	lang := locale.Parse(input.Language)
	title := h.title(input, lang)
	email := awsclient.Email{
		From:    h.config.FromEmail,
		To:      []string{input.Recipient},
		Subject: subject(lang, title),
		Text:    emailText(lang, strings.TrimSpace(input.Name), title, input.DocumentID),
	}
	for _, a := range artifacts {
		email.Attachments = append(email.Attachments, awsclient.Attachment{
			Filename:    a.Filename,
			ContentType: a.ContentType,
			Data:        a.Data,
		})
		output.Attachments = append(output.Attachments, a.Filename)
	}

	params, err := awsclient.RawEmailInput(email)
	if err != nil {
		return nil, errors.NewDeliveryFailedError(ChannelEmail, err)
	}
	resp, err := h.sesClient.SendRawEmail(ctx, params)
	if err != nil {
		return nil, errors.NewDeliveryFailedError(ChannelEmail, err)
	}

	output.MessageID = aws.ToString(resp.MessageId)
	output.Delivered = true
	output.DeliveredAt = h.now()
	h.logger.Info("document emailed", map[string]interface{}{
		"documentId":  input.DocumentID,
		"messageId":   output.MessageID,
		"attachments": len(artifacts),
	})
	return output, nil
}

func (h *Handler) sendSMS(ctx context.Context, input *Input, output *Output) (*Output, error) {
	// The notice only makes sense while the document can still be fetched.
	if _, err := h.loadArtifacts(ctx, input.DocumentID, input.Formats); err != nil {
		return nil, err
	}

	lang := locale.Parse(input.Language)
	params := awsclient.SMSInput(input.Recipient, smsText(lang, h.title(input, lang), input.DocumentID), h.config.SMSSenderID)
	resp, err := h.snsClient.Publish(ctx, params)
	if err != nil {
		return nil, errors.NewDeliveryFailedError(ChannelSMS, err)
	}

	output.MessageID = aws.ToString(resp.MessageId)
	output.Delivered = true
	output.DeliveredAt = h.now()
	h.logger.Info("document notice sent by sms", map[string]interface{}{
		"documentId": input.DocumentID,
		"messageId":  output.MessageID,
	})
	return output, nil
}

func (h *Handler) title(input *Input, lang locale.Language) string {
	if t := strings.TrimSpace(input.Title); t != "" {
		return t
	}
	return defaultTitle.In(lang)
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
