package calculatedeadlines

import (
	"context"
	"testing"
	"time"

	"legal-workers/internal/common/errors"
	"legal-workers/internal/common/logger"
	"legal-workers/internal/legal/timeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestHandler(t *testing.T, now time.Time) *Handler {
	h := NewHandler(&Config{Timeout: time.Second}, logger.NewTestLogger(t))
	h.now = func() time.Time { return now }
	return h
}

func TestExecute_DefaultDeadline(t *testing.T) {
	h := createTestHandler(t, time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC))

	output, err := h.Execute(context.Background(), &Input{StartDate: "2024-01-15", Language: "en"})
	require.NoError(t, err)

	assert.Equal(t, "civil", output.CaseType)
	assert.Equal(t, "Civil Case", output.CaseTypeLabel)
	require.Len(t, output.Events, 2)
	assert.True(t, output.Events[0].Initiation)
	assert.Equal(t, "File Response", output.Events[1].Description)
	assert.Equal(t, "February 14, 2024", output.Events[1].DateText)
	require.NotNil(t, output.NextDeadline)
	assert.Equal(t, "File Response", output.NextDeadline.Description)
}

func TestExecute_CustomDeadlinesFrench(t *testing.T) {
	h := createTestHandler(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))

	output, err := h.Execute(context.Background(), &Input{
		CaseType:  "commercial",
		StartDate: "2024-01-15",
		Language:  "fr",
		Deadlines: []timeline.Deadline{
			{Name: "Audience", Days: 60},
			{Name: "Mémoire", Days: 10},
			{Days: 20},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Litige Commercial", output.CaseTypeLabel)
	require.Len(t, output.Events, 4)
	assert.Equal(t, "Échéance", output.Events[3].Description)
	require.NotNil(t, output.NextDeadline)
	assert.Equal(t, "Échéance", output.NextDeadline.Description)
}

func TestExecute_NoUpcomingDeadline(t *testing.T) {
	h := createTestHandler(t, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))

	output, err := h.Execute(context.Background(), &Input{StartDate: "2024-01-15"})
	require.NoError(t, err)
	assert.Nil(t, output.NextDeadline)
}

func TestExecute_EmptyDeadlineListIsKept(t *testing.T) {
	h := createTestHandler(t, time.Now())

	output, err := h.Execute(context.Background(), &Input{StartDate: "2024-01-15", Deadlines: []timeline.Deadline{}})
	require.NoError(t, err)
	assert.Len(t, output.Events, 1)
}

func TestExecute_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input Input
	}{
		{"missing start date", Input{CaseType: "civil"}},
		{"unparseable start date", Input{StartDate: "someday"}},
		{"unknown case type", Input{CaseType: "maritime", StartDate: "2024-01-15"}},
		{"negative days", Input{StartDate: "2024-01-15", Deadlines: []timeline.Deadline{{Name: "x", Days: -1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := createTestHandler(t, time.Now()).Execute(context.Background(), &tt.input)
			require.Error(t, err)
			stdErr := errors.Normalize(err)
			assert.Equal(t, errors.ErrCodeTimelineInvalid, stdErr.Code)
			assert.False(t, stdErr.Retryable)
		})
	}
}
