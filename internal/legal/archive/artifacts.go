// internal/legal/archive/artifacts.go
package archive

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrArtifactSave     = errors.New("ARTIFACT_SAVE_FAILED")
	ErrArtifactNotFound = errors.New("ARTIFACT_NOT_FOUND")
)

const artifactKeyPrefix = "legal:artifact:"

// Artifact is one projected file of a generated document.
type Artifact struct {
	DocumentID  string `json:"documentId"`
	Format      string `json:"format"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"-"`
}

// ArtifactStore keeps projected files in Redis until their TTL runs out.
type ArtifactStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewArtifactStore(client redis.Cmdable, ttl time.Duration) *ArtifactStore {
	return &ArtifactStore{client: client, ttl: ttl}
}

func artifactKey(documentID, format string) string {
	return artifactKeyPrefix + documentID + ":" + format
}

// Save writes the artifact and its expiry in one transaction.
func (s *ArtifactStore) Save(ctx context.Context, a Artifact) error {
	if a.DocumentID == "" || a.Format == "" {
		return fmt.Errorf("%w: document id and format are required", ErrArtifactSave)
	}

	key := artifactKey(a.DocumentID, a.Format)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key,
			"filename", a.Filename,
			"contentType", a.ContentType,
			"data", a.Data,
		)
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrArtifactSave, key, err)
	}
	return nil
}

func (s *ArtifactStore) Load(ctx context.Context, documentID, format string) (*Artifact, error) {
	key := artifactKey(documentID, format)
	values, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("load artifact %s: %w", key, err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, key)
	}

	return &Artifact{
		DocumentID:  documentID,
		Format:      format,
		Filename:    values["filename"],
		ContentType: values["contentType"],
		Data:        []byte(values["data"]),
	}, nil
}

// Delete drops the listed formats of a document. Missing keys are ignored.
func (s *ArtifactStore) Delete(ctx context.Context, documentID string, formats ...string) error {
	if len(formats) == 0 {
		return nil
	}
	keys := make([]string, len(formats))
	for i, f := range formats {
		keys[i] = artifactKey(documentID, f)
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("delete artifacts of %s: %w", documentID, err)
	}
	return nil
}
