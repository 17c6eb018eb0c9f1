// internal/legal/archive/history.go
package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"legal-workers/internal/legal/locale"
	"legal-workers/internal/legal/templates"

	"github.com/lib/pq"
)

var ErrHistoryWrite = errors.New("HISTORY_WRITE_FAILED")

const defaultHistoryLimit = 20

// Record describes one generated document.
type Record struct {
	DocumentID   string                 `json:"documentId"`
	DocumentType templates.DocumentType `json:"documentType"`
	Title        string                 `json:"title"`
	OwnerName    string                 `json:"owner"`
	OwnerEmail   string                 `json:"ownerEmail"`
	Language     locale.Language        `json:"language"`
	Citations    []string               `json:"citations"`
	Formats      []string               `json:"formats"`
	AppVersion   string                 `json:"appVersion"`
	CreatedAt    time.Time              `json:"createdAt"`
}

// History is the document_generations table.
type History struct {
	db *sql.DB
}

func NewHistory(db *sql.DB) *History {
	return &History{db: db}
}

func (h *History) Record(ctx context.Context, rec Record) error {
	query := `
		INSERT INTO document_generations
			(document_id, document_type, title, owner_name, owner_email, language, citations, formats, app_version, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (document_id) DO UPDATE SET
			document_type = EXCLUDED.document_type,
			title = EXCLUDED.title,
			owner_name = EXCLUDED.owner_name,
			owner_email = EXCLUDED.owner_email,
			language = EXCLUDED.language,
			citations = EXCLUDED.citations,
			formats = EXCLUDED.formats,
			app_version = EXCLUDED.app_version,
			created_at = EXCLUDED.created_at
	`
	citations := rec.Citations
	if citations == nil {
		citations = []string{}
	}
	formats := rec.Formats
	if formats == nil {
		formats = []string{}
	}

	_, err := h.db.ExecContext(ctx, query,
		rec.DocumentID,
		string(rec.DocumentType),
		rec.Title,
		rec.OwnerName,
		rec.OwnerEmail,
		string(rec.Language),
		pq.Array(citations),
		pq.Array(formats),
		rec.AppVersion,
		rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrHistoryWrite, err)
	}
	return nil
}

// Delete removes the row of documentID, if any.
func (h *History) Delete(ctx context.Context, documentID string) error {
	if _, err := h.db.ExecContext(ctx, `DELETE FROM document_generations WHERE document_id = $1`, documentID); err != nil {
		return fmt.Errorf("delete document history %s: %w", documentID, err)
	}
	return nil
}

// ListByOwner returns the newest documents generated for email.
func (h *History) ListByOwner(ctx context.Context, email string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	query := `
		SELECT document_id, document_type, title, owner_name, owner_email, language, citations, formats, app_version, created_at
		FROM document_generations
		WHERE owner_email = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := h.db.QueryContext(ctx, query, email, limit)
	if err != nil {
		return nil, fmt.Errorf("query document history: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var (
			rec          Record
			documentType string
			language     string
		)
		if err := rows.Scan(
			&rec.DocumentID,
			&documentType,
			&rec.Title,
			&rec.OwnerName,
			&rec.OwnerEmail,
			&language,
			pq.Array(&rec.Citations),
			pq.Array(&rec.Formats),
			&rec.AppVersion,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan document history: %w", err)
		}
		rec.DocumentType = templates.DocumentType(documentType)
		rec.Language = locale.Language(language)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate document history: %w", err)
	}
	return records, nil
}
