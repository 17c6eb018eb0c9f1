package deliverdocument

import (
	"context"
	"testing"
	"time"

	"legal-workers/internal/common/errors"
	"legal-workers/internal/common/logger"
	"legal-workers/internal/legal/archive"

	"github.com/alicebob/miniredis/v2"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockSESService struct {
	SendRawEmailFunc func(ctx context.Context, params *ses.SendRawEmailInput, optFns ...func(*ses.Options)) (*ses.SendRawEmailOutput, error)
}

func (m *MockSESService) SendRawEmail(ctx context.Context, params *ses.SendRawEmailInput, optFns ...func(*ses.Options)) (*ses.SendRawEmailOutput, error) {
	return m.SendRawEmailFunc(ctx, params, optFns...)
}

type MockSNSService struct {
	PublishFunc func(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

func (m *MockSNSService) Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
	return m.PublishFunc(ctx, params, optFns...)
}

func createTestConfig() *Config {
	return &Config{
		EmailEnabled:   true,
		SMSEnabled:     true,
		FromEmail:      "documents@legal.example.cm",
		SMSSenderID:    "LegalDocs",
		DefaultFormats: []string{"pdf"},
		Timeout:        5 * time.Second,
	}
}

func newStore(t *testing.T) *archive.ArtifactStore {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	store := archive.NewArtifactStore(rdb, time.Hour)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, archive.Artifact{
		DocumentID: "doc-1", Format: "pdf", Filename: "will_Marie_Ngo.pdf",
		ContentType: "application/pdf", Data: []byte("%PDF-1.3 test"),
	}))
	require.NoError(t, store.Save(ctx, archive.Artifact{
		DocumentID: "doc-1", Format: "html", Filename: "will_Marie_Ngo.html",
		ContentType: "text/html; charset=utf-8", Data: []byte("<html></html>"),
	}))
	return store
}

func TestExecute_Email(t *testing.T) {
	var raw string
	sesMock := &MockSESService{SendRawEmailFunc: func(ctx context.Context, params *ses.SendRawEmailInput, optFns ...func(*ses.Options)) (*ses.SendRawEmailOutput, error) {
		raw = string(params.RawMessage.Data)
		return &ses.SendRawEmailOutput{MessageId: aws.String("ses-123")}, nil
	}}
	h := NewHandler(createTestConfig(), newStore(t), sesMock, nil, logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		DocumentID: "doc-1",
		Channel:    "EMAIL",
		Recipient:  "marie.ngo@example.cm",
		Name:       "Marie Ngo",
		Title:      "Last Will and Testament",
		Formats:    []string{"pdf", "html"},
	})
	require.NoError(t, err)

	assert.True(t, output.Delivered)
	assert.Equal(t, "ses-123", output.MessageID)
	assert.Equal(t, []string{"will_Marie_Ngo.pdf", "will_Marie_Ngo.html"}, output.Attachments)
	assert.False(t, output.DeliveredAt.IsZero())
	assert.Contains(t, raw, "From: documents@legal.example.cm")
	assert.Contains(t, raw, "To: marie.ngo@example.cm")
	assert.Contains(t, raw, "filename=will_Marie_Ngo.pdf")
}

func TestExecute_SMS(t *testing.T) {
	var published *sns.PublishInput
	snsMock := &MockSNSService{PublishFunc: func(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
		published = params
		return &sns.PublishOutput{MessageId: aws.String("sns-9")}, nil
	}}
	h := NewHandler(createTestConfig(), newStore(t), nil, snsMock, logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		DocumentID: "doc-1",
		Channel:    "sms",
		Recipient:  "+237 699 12 34 56",
		Language:   "fr",
	})
	require.NoError(t, err)

	assert.True(t, output.Delivered)
	assert.Equal(t, "sns-9", output.MessageID)
	require.NotNil(t, published)
	assert.Equal(t, "+237 699 12 34 56", aws.ToString(published.PhoneNumber))
	assert.Contains(t, aws.ToString(published.Message), "doc-1")
	assert.Contains(t, aws.ToString(published.Message), "Document juridique")
	assert.Equal(t, "LegalDocs", aws.ToString(published.MessageAttributes["AWS.SNS.SMS.SenderID"].StringValue))
}

func TestExecute_ChannelDisabled(t *testing.T) {
	cfg := createTestConfig()
	cfg.EmailEnabled = false
	h := NewHandler(cfg, newStore(t), nil, nil, logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{DocumentID: "doc-1", Channel: "email", Recipient: "a@b.cm"})
	require.NoError(t, err)
	assert.False(t, output.Delivered)
	assert.Equal(t, "email delivery disabled", output.Reason)
}

func TestExecute_Errors(t *testing.T) {
	failingSES := &MockSESService{SendRawEmailFunc: func(ctx context.Context, params *ses.SendRawEmailInput, optFns ...func(*ses.Options)) (*ses.SendRawEmailOutput, error) {
		return nil, assert.AnError
	}}

	tests := []struct {
		name      string
		input     Input
		code      errors.ErrorCode
		retryable bool
	}{
		{
			name:  "unknown channel",
			input: Input{DocumentID: "doc-1", Channel: "fax", Recipient: "a@b.cm"},
			code:  errors.ErrCodeInputValidationFailed,
		},
		{
			name:  "missing document id",
			input: Input{Channel: "email", Recipient: "a@b.cm"},
			code:  errors.ErrCodeInputValidationFailed,
		},
		{
			name:  "bad email",
			input: Input{DocumentID: "doc-1", Channel: "email", Recipient: "not-an-email"},
			code:  errors.ErrCodeInputValidationFailed,
		},
		{
			name:  "bad phone",
			input: Input{DocumentID: "doc-1", Channel: "sms", Recipient: "12ab"},
			code:  errors.ErrCodeInputValidationFailed,
		},
		{
			name:  "expired artifact",
			input: Input{DocumentID: "doc-2", Channel: "email", Recipient: "a@b.cm"},
			code:  errors.ErrCodeArtifactNotFound,
		},
		{
			name:      "ses failure",
			input:     Input{DocumentID: "doc-1", Channel: "email", Recipient: "a@b.cm"},
			code:      errors.ErrCodeDeliveryFailed,
			retryable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(createTestConfig(), newStore(t), failingSES, nil, logger.NewTestLogger(t))
			_, err := h.Execute(context.Background(), &tt.input)
			require.Error(t, err)
			stdErr := errors.Normalize(err)
			assert.Equal(t, tt.code, stdErr.Code)
			assert.Equal(t, tt.retryable, stdErr.Retryable)
		})
	}
}
