package ask

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	commonhttp "legal-workers/internal/common/http"
	"legal-workers/internal/common/logger"
	"legal-workers/internal/legal/locale"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestClient(t *testing.T, srv *httptest.Server, retries int) *Client {
	t.Helper()
	hc := commonhttp.NewClientWith(srv.Client())
	t.Cleanup(hc.CloseIdleConnections)
	return NewClient(&Config{
		BaseURL:    srv.URL + "/",
		Timeout:    2 * time.Second,
		MaxRetries: retries,
		Backoff:    time.Millisecond,
	}, hc, logger.NewTestLogger(t))
}

func TestAsk_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ask", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req askRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Comment divorcer au Cameroun ?", req.Question)
		assert.Equal(t, "fr", req.Language)

		_ = json.NewEncoder(w).Encode(askResponse{Answer: "Selon l'Ordonnance 81-02...", Source: "Judiciary"})
	}))
	defer srv.Close()

	answer, err := newTestClient(t, srv, 0).Ask(context.Background(), "Comment divorcer au Cameroun ?", locale.French)
	require.NoError(t, err)
	assert.False(t, answer.Fallback)
	assert.Equal(t, "Selon l'Ordonnance 81-02...", answer.Text)
	assert.Equal(t, SourceJudiciary, answer.Source.Kind)
	assert.Equal(t, locale.French, answer.Language)
}

func TestAsk_MissingFieldsGetDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	answer, err := newTestClient(t, srv, 0).Ask(context.Background(), "hello", locale.English)
	require.NoError(t, err)
	assert.Equal(t, "I couldn't process that question.", answer.Text)
	assert.Equal(t, "AI", answer.Source.Raw)
	assert.Equal(t, SourceAI, answer.Source.Kind)
}

func TestAsk_FailuresFallBack(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		lang    locale.Language
		want    string
	}{
		{
			name:    "server error",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) },
			lang:    locale.English,
			want:    "I'm having trouble connecting to the database. Please try again in a moment.",
		},
		{
			name:    "client error",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusBadRequest) },
			lang:    locale.French,
			want:    "J'ai des difficultés à me connecter à la base de données. Veuillez réessayer dans un instant.",
		},
		{
			name:    "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`{"answer":`)) },
			lang:    locale.English,
			want:    "I'm having trouble connecting to the database. Please try again in a moment.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			answer, err := newTestClient(t, srv, 0).Ask(context.Background(), "q", tt.lang)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrBackendUnavailable)
			require.NotNil(t, answer)
			assert.True(t, answer.Fallback)
			assert.Equal(t, tt.want, answer.Text)
		})
	}
}

func TestAsk_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := newTestClient(t, srv, 0)
	srv.Close()

	answer, err := c.Ask(context.Background(), "q", locale.English)
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.True(t, answer.Fallback)
}

func TestAsk_RetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"answer":"ok","source":"Government"}`))
	}))
	defer srv.Close()

	answer, err := newTestClient(t, srv, 2).Ask(context.Background(), "q", locale.English)
	require.NoError(t, err)
	assert.Equal(t, "ok", answer.Text)
	assert.Equal(t, SourceGovernment, answer.Source.Kind)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestAsk_DoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv, 3).Ask(context.Background(), "q", locale.English)
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestAsk_DefaultIsSingleRequest(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv, 0).Ask(context.Background(), "q", locale.English)
	assert.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestAsk_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, 5)
	c.config.Backoff = time.Second

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	answer, err := c.Ask(ctx, "q", locale.English)
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.True(t, answer.Fallback)
	assert.Less(t, time.Since(start), time.Second)
}

func TestClassifySource(t *testing.T) {
	tests := []struct {
		raw   string
		kind  SourceKind
		label string
	}{
		{"DuckDuckGo search", SourceSearch, "Search Results"},
		{"Results via DuckDuckGo", SourceSearch, "Search Results"},
		{"Government", SourceGovernment, "Government"},
		{"Judiciary", SourceJudiciary, "Judiciary"},
		{"Legal System", SourceJudiciary, "Legal System"},
		{"out_of_scope", SourceInformation, "Information"},
		{"Cameroonian Law", SourceAI, "Cameroonian Law"},
		{"", SourceAI, "AI"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			s := ClassifySource(tt.raw)
			assert.Equal(t, tt.kind, s.Kind)
			assert.Equal(t, tt.label, s.Label)
		})
	}
}
