// internal/legal/archive/index.go
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"legal-workers/internal/legal/locale"
	"legal-workers/internal/legal/templates"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

var (
	ErrIndexFailed  = errors.New("ARCHIVE_INDEX_FAILED")
	ErrSearchFailed = errors.New("SEARCH_QUERY_FAILED")
)

const (
	defaultSearchSize = 20
	maxSearchSize     = 100
)

// indexedDocument is the _source stored for every archived document.
type indexedDocument struct {
	Record
	Body string `json:"body"`
}

// Query narrows a search of the archive. Empty fields do not filter.
type Query struct {
	Text         string                 `json:"text"`
	DocumentType templates.DocumentType `json:"documentType,omitempty"`
	Language     locale.Language        `json:"language,omitempty"`
	OwnerEmail   string                 `json:"ownerEmail,omitempty"`
	From         int                    `json:"from"`
	Size         int                    `json:"size"`
}

type Hit struct {
	Record
	Score   float64 `json:"score"`
	Snippet string  `json:"snippet,omitempty"`
}

type SearchResult struct {
	Total int64 `json:"total"`
	Took  int64 `json:"took"`
	Hits  []Hit `json:"hits"`
}

// Index stores document text in Elasticsearch for full-text search.
type Index struct {
	client *elasticsearch.Client
	name   string
}

func NewIndex(client *elasticsearch.Client, name string) *Index {
	return &Index{client: client, name: name}
}

func (i *Index) IndexDocument(ctx context.Context, rec Record, text string) error {
	body, err := json.Marshal(indexedDocument{Record: rec, Body: text})
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrIndexFailed, err)
	}

	req := esapi.IndexRequest{
		Index:      i.name,
		DocumentID: rec.DocumentID,
		Body:       bytes.NewReader(body),
	}
	res, err := req.Do(ctx, i.client)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIndexFailed, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("%w: %s", ErrIndexFailed, res.String())
	}
	return nil
}

func (i *Index) Search(ctx context.Context, q Query) (*SearchResult, error) {
	size := q.Size
	if size < 1 {
		size = defaultSearchSize
	}
	if size > maxSearchSize {
		size = maxSearchSize
	}
	from := q.From
	if from < 0 {
		from = 0
	}

	body, err := json.Marshal(buildSearchQuery(q))
	if err != nil {
		return nil, fmt.Errorf("%w: encode: %v", ErrSearchFailed, err)
	}

	req := esapi.SearchRequest{
		Index: []string{i.name},
		Body:  bytes.NewReader(body),
		From:  &from,
		Size:  &size,
	}
	res, err := req.Do(ctx, i.client)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("%w: %s", ErrSearchFailed, res.String())
	}

	var r struct {
		Took int64 `json:"took"`
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Score     float64             `json:"_score"`
				Source    indexedDocument     `json:"_source"`
				Highlight map[string][]string `json:"highlight"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrSearchFailed, err)
	}

	result := &SearchResult{
		Total: r.Hits.Total.Value,
		Took:  r.Took,
		Hits:  make([]Hit, 0, len(r.Hits.Hits)),
	}
	for _, h := range r.Hits.Hits {
		hit := Hit{Record: h.Source.Record, Score: h.Score}
		if fragments := h.Highlight["body"]; len(fragments) > 0 {
			hit.Snippet = fragments[0]
		}
		result.Hits = append(result.Hits, hit)
	}
	return result, nil
}

// buildSearchQuery matches the text against title, body and citations and
// filters on the exact-value fields.
func buildSearchQuery(q Query) map[string]interface{} {
	must := []interface{}{}
	if text := strings.TrimSpace(q.Text); text != "" {
		must = append(must, map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  text,
				"fields": []string{"title^3", "citations^2", "body"},
				"type":   "best_fields",
			},
		})
	} else {
		must = append(must, map[string]interface{}{"match_all": map[string]interface{}{}})
	}

	filter := []interface{}{}
	if q.DocumentType != "" {
		filter = append(filter, map[string]interface{}{
			"term": map[string]interface{}{"documentType": string(q.DocumentType)},
		})
	}
	if q.Language != "" {
		filter = append(filter, map[string]interface{}{
			"term": map[string]interface{}{"language": string(q.Language)},
		})
	}
	if q.OwnerEmail != "" {
		filter = append(filter, map[string]interface{}{
			"term": map[string]interface{}{"ownerEmail": q.OwnerEmail},
		})
	}

	boolQuery := map[string]interface{}{"must": must}
	if len(filter) > 0 {
		boolQuery["filter"] = filter
	}

	return map[string]interface{}{
		"query": map[string]interface{}{"bool": boolQuery},
		"highlight": map[string]interface{}{
			"fields": map[string]interface{}{"body": map[string]interface{}{}},
		},
		"sort": []interface{}{
			"_score",
			map[string]interface{}{"createdAt": map[string]interface{}{"order": "desc"}},
		},
	}
}
