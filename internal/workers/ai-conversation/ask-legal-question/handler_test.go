package asklegalquestion

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"legal-workers/internal/common/errors"
	"legal-workers/internal/common/logger"
	"legal-workers/internal/legal/ask"
	"legal-workers/internal/legal/locale"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockAsker struct {
	calls   int
	AskFunc func(ctx context.Context, question string, lang locale.Language) (*ask.Answer, error)
}

func (m *MockAsker) Ask(ctx context.Context, question string, lang locale.Language) (*ask.Answer, error) {
	m.calls++
	return m.AskFunc(ctx, question, lang)
}

func answering(text, source string) *MockAsker {
	return &MockAsker{AskFunc: func(ctx context.Context, question string, lang locale.Language) (*ask.Answer, error) {
		return &ask.Answer{Text: text, Source: ask.ClassifySource(source), Language: lang}, nil
	}}
}

func createTestConfig() *Config {
	return &Config{Timeout: 2 * time.Second, CacheTTL: time.Hour}
}

func newCache(t *testing.T) (*AnswerCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewAnswerCache(rdb, time.Hour), mr
}

func TestExecute_CachesAnswers(t *testing.T) {
	cache, mr := newCache(t)
	asker := answering("You may apply to the Court of First Instance.", "Judiciary")
	h := NewHandler(createTestConfig(), asker, cache, logger.NewTestLogger(t))

	first, err := h.Execute(context.Background(), &Input{Question: "How do I contest an eviction?", Language: "en"})
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Equal(t, "judiciary", first.SourceKind)
	assert.Equal(t, "Judiciary", first.SourceLabel)

	second, err := h.Execute(context.Background(), &Input{Question: "  how do I   contest an EVICTION? ", Language: "en"})
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Answer, second.Answer)
	assert.Equal(t, 1, asker.calls)

	_, err = h.Execute(context.Background(), &Input{Question: "How do I contest an eviction?", Language: "fr"})
	require.NoError(t, err)
	assert.Equal(t, 2, asker.calls, "languages are cached separately")

	mr.FastForward(2 * time.Hour)
	_, err = h.Execute(context.Background(), &Input{Question: "How do I contest an eviction?", Language: "en"})
	require.NoError(t, err)
	assert.Equal(t, 3, asker.calls)
}

func TestExecute_WithoutCache(t *testing.T) {
	asker := answering("", "DuckDuckGo Instant Answer")
	h := NewHandler(createTestConfig(), asker, nil, logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{Question: "What is OHADA?"})
	require.NoError(t, err)
	assert.Equal(t, "search", output.SourceKind)
	assert.Equal(t, "en", output.Language)
}

func TestExecute_InvalidQuestion(t *testing.T) {
	h := NewHandler(createTestConfig(), answering("x", "AI"), nil, logger.NewTestLogger(t))

	for _, q := range []string{"", "   "} {
		_, err := h.Execute(context.Background(), &Input{Question: q})
		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeInputValidationFailed, errors.Normalize(err).Code)
	}
}

func TestExecute_BackendUnavailableReturnsFallback(t *testing.T) {
	cache, mr := newCache(t)
	asker := &MockAsker{AskFunc: func(ctx context.Context, question string, lang locale.Language) (*ask.Answer, error) {
		return &ask.Answer{
			Text:     ask.FallbackMessage(lang),
			Source:   ask.ClassifySource(ask.DefaultSource),
			Language: lang,
			Fallback: true,
		}, ask.ErrBackendUnavailable
	}}
	h := NewHandler(createTestConfig(), asker, cache, logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{Question: "Quels sont mes droits ?", Language: "fr"})
	require.Error(t, err)
	stdErr := errors.Normalize(err)
	assert.Equal(t, errors.ErrCodeAskBackendUnavailable, stdErr.Code)
	assert.True(t, stdErr.Retryable)

	require.NotNil(t, output)
	assert.True(t, output.Fallback)
	assert.Equal(t, ask.FallbackMessage(locale.French), output.Answer)
	assert.Empty(t, mr.Keys(), "fallback answers are not cached")
}

func TestExecute_CacheReadErrorFallsThrough(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.Regexp().ExpectGet(`legal:ask:en:.*`).SetErr(assert.AnError)

	asker := answering("Answer", "Government")
	h := NewHandler(createTestConfig(), asker, NewAnswerCache(db, 0), logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{Question: "Where do I register a birth?"})
	require.NoError(t, err)
	assert.Equal(t, "government", output.SourceKind)
	assert.Equal(t, 1, asker.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecute_AgainstAskBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ask", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"answer":"Contact the civil status registrar.","source":"Government"}`)
	}))
	defer srv.Close()

	client := ask.NewClient(&ask.Config{BaseURL: srv.URL, Timeout: time.Second}, nil, logger.NewTestLogger(t))
	cache, _ := newCache(t)
	h := NewHandler(createTestConfig(), client, cache, logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{Question: "Where do I register a birth?", Language: "en"})
	require.NoError(t, err)
	assert.Equal(t, "Contact the civil status registrar.", output.Answer)
	assert.Equal(t, "government", output.SourceKind)
	assert.False(t, output.Fallback)
}
