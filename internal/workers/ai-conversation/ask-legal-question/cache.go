// internal/workers/ai-conversation/ask-legal-question/cache.go
package asklegalquestion

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"legal-workers/internal/legal/ask"
	"legal-workers/internal/legal/locale"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "legal:ask:"

// AnswerCache keeps backend answers per language and normalized question.
type AnswerCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewAnswerCache(client redis.Cmdable, ttl time.Duration) *AnswerCache {
	return &AnswerCache{client: client, ttl: ttl}
}

func cacheKey(question string, lang locale.Language) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(question)), " ")
	sum := sha256.Sum256([]byte(normalized))
	return cacheKeyPrefix + string(lang) + ":" + hex.EncodeToString(sum[:])
}

// Get reports a miss for absent, expired or undecodable entries.
func (c *AnswerCache) Get(ctx context.Context, question string, lang locale.Language) (*ask.Answer, bool, error) {
	raw, err := c.client.Get(ctx, cacheKey(question, lang)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var answer ask.Answer
	if err := json.Unmarshal(raw, &answer); err != nil {
		return nil, false, nil
	}
	return &answer, true, nil
}

func (c *AnswerCache) Set(ctx context.Context, question string, lang locale.Language, answer *ask.Answer) error {
	if c.ttl <= 0 {
		return nil
	}
	raw, err := json.Marshal(answer)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey(question, lang), raw, c.ttl).Err()
}
