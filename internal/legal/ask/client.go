// internal/legal/ask/client.go
package ask

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	commonhttp "legal-workers/internal/common/http"
	"legal-workers/internal/common/logger"
	"legal-workers/internal/legal/locale"
)

var ErrBackendUnavailable = errors.New("ASK_BACKEND_UNAVAILABLE")

const noAnswer = "I couldn't process that question."

var fallbackMessage = locale.Text{
	EN: "I'm having trouble connecting to the database. Please try again in a moment.",
	FR: "J'ai des difficultés à me connecter à la base de données. Veuillez réessayer dans un instant.",
}

// FallbackMessage is what the user sees when the backend cannot answer.
func FallbackMessage(lang locale.Language) string {
	return fallbackMessage.In(lang)
}

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	Backoff    time.Duration
}

// Answer is the outcome of one question. Fallback marks the localized
// connection-trouble message produced when the backend failed.
type Answer struct {
	Text     string          `json:"text"`
	Source   Source          `json:"source"`
	Language locale.Language `json:"language"`
	Fallback bool            `json:"fallback"`
}

type askRequest struct {
	Question string `json:"question"`
	Language string `json:"language"`
}

type askResponse struct {
	Answer string `json:"answer"`
	Source string `json:"source"`
}

type Client struct {
	config *Config
	http   *commonhttp.Client
	logger logger.Logger
}

func NewClient(config *Config, httpClient *commonhttp.Client, log logger.Logger) *Client {
	if httpClient == nil {
		httpClient = commonhttp.NewClient(config.Timeout)
	}
	return &Client{
		config: config,
		http:   httpClient,
		logger: log.With(map[string]interface{}{"component": "ask-client"}),
	}
}

// Ask posts the question to {BaseURL}/ask. It always returns an Answer; when
// the backend fails the Answer carries the fallback message and the cause is
// returned alongside, wrapped in ErrBackendUnavailable.
func (c *Client) Ask(ctx context.Context, question string, lang locale.Language) (*Answer, error) {
	lang = locale.Parse(string(lang))
	url := strings.TrimRight(c.config.BaseURL, "/") + "/ask"
	body := askRequest{Question: question, Language: string(lang)}

	var resp askResponse
	var lastErr error
	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := c.backoff(attempt)
			c.logger.Warn("retrying ask request", map[string]interface{}{
				"attempt": attempt,
				"backoff": backoff.String(),
				"error":   lastErr.Error(),
			})
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return c.fallback(lang, ctx.Err()), fmt.Errorf("%w: %v", ErrBackendUnavailable, ctx.Err())
			}
		}

		resp = askResponse{}
		lastErr = c.http.PostJSON(ctx, url, body, &resp)
		if lastErr == nil || !retryable(lastErr) || ctx.Err() != nil {
			break
		}
	}

	if lastErr != nil {
		return c.fallback(lang, lastErr), fmt.Errorf("%w: %v", ErrBackendUnavailable, lastErr)
	}

	text := resp.Answer
	if strings.TrimSpace(text) == "" {
		text = noAnswer
	}
	return &Answer{Text: text, Source: ClassifySource(resp.Source), Language: lang}, nil
}

func (c *Client) fallback(lang locale.Language, cause error) *Answer {
	c.logger.Error("ask backend unavailable", map[string]interface{}{"error": cause.Error()})
	return &Answer{
		Text:     FallbackMessage(lang),
		Source:   ClassifySource(DefaultSource),
		Language: lang,
		Fallback: true,
	}
}

func (c *Client) backoff(attempt int) time.Duration {
	base := c.config.Backoff
	if base <= 0 {
		base = 100 * time.Millisecond
	}
	return base * time.Duration(1<<(attempt-1))
}

// retryable reports whether another attempt could succeed: transport errors
// and 5xx answers are retried, 4xx and malformed bodies are not.
func retryable(err error) bool {
	var statusErr *commonhttp.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= 500
	}
	return !errors.Is(err, commonhttp.ErrDecode)
}
