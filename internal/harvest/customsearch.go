package harvest

import (
	"context"
	"fmt"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

// cseMaxPageSize is the hard per-request limit of the Custom Search API.
const cseMaxPageSize = 10

// CSESearcher queries the Google Custom Search JSON API instead of scraping
// the results page. Filtering matches GoogleSearcher so the two backends are
// interchangeable.
type CSESearcher struct {
	svc   *customsearch.Service
	cseID string
}

// NewCSESearcher builds an API-backed searcher from an API key and engine ID.
func NewCSESearcher(ctx context.Context, apiKey, cseID string) (*CSESearcher, error) {
	if apiKey == "" || cseID == "" {
		return nil, fmt.Errorf("custom search requires both an API key and an engine id")
	}
	svc, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create custom search service: %w", err)
	}
	return &CSESearcher{svc: svc, cseID: cseID}, nil
}

// Search implements Searcher via the JSON API.
func (s *CSESearcher) Search(ctx context.Context, query string, maxResults int) ([]Candidate, error) {
	pageSize := maxResults
	if pageSize > cseMaxPageSize {
		pageSize = cseMaxPageSize
	}

	resp, err := s.svc.Cse.List().
		Context(ctx).
		Cx(s.cseID).
		Q(query).
		Num(int64(pageSize)).
		Do()
	if err != nil {
		return nil, fmt.Errorf("custom search %q: %w", query, err)
	}

	var candidates []Candidate
	for _, item := range resp.Items {
		cand, ok := candidateFromResult(item.Title, item.Link)
		if !ok {
			continue
		}
		candidates = append(candidates, cand)
		if len(candidates) == maxResults {
			break
		}
	}
	return candidates, nil
}
