package suggestreferences

import (
	"context"
	"testing"
	"time"

	"legal-workers/internal/common/logger"
	"legal-workers/internal/legal/locale"
	"legal-workers/internal/legal/references"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestHandler(t *testing.T) *Handler {
	return NewHandler(&Config{Timeout: time.Second}, logger.NewTestLogger(t))
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name       string
		input      Input
		categories []string
	}{
		{
			name:       "no trigger words",
			input:      Input{Description: "My neighbour plays loud music", Language: "en"},
			categories: []string{},
		},
		{
			name:       "empty description",
			input:      Input{Language: "fr"},
			categories: []string{},
		},
		{
			name:       "priority order",
			input:      Input{Description: "I want to file a complaint about my inherited land and my job termination", Language: "en"},
			categories: []string{"property", "inheritance", "labor"},
		},
		{
			name:       "one citation per category",
			input:      Input{Description: "land, property and a plot", Language: "en"},
			categories: []string{"property"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := createTestHandler(t).Execute(context.Background(), &tt.input)
			require.NoError(t, err)

			got := make([]string, len(output.Suggestions))
			for i, s := range output.Suggestions {
				got[i] = s.Category
			}
			assert.Equal(t, tt.categories, got)
			assert.Len(t, output.Citations, len(tt.categories))
			assert.NotNil(t, output.Citations)
		})
	}
}

func TestExecute_Language(t *testing.T) {
	output, err := createTestHandler(t).Execute(context.Background(), &Input{Description: "divorce", Language: "fr"})
	require.NoError(t, err)

	want, ok := references.Citation(references.Divorce, locale.French)
	require.True(t, ok)
	assert.Equal(t, []string{want}, output.Citations)
	assert.Equal(t, "fr", output.Language)
}

func TestExecute_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	output, err := createTestHandler(t).Execute(context.Background(), &Input{Description: "divorce", Language: "de"})
	require.NoError(t, err)
	assert.Equal(t, "en", output.Language)
}
