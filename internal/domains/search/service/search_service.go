package service

import (
	"context"
	"sort"
	"strings"

	"publishing-crm/internal/domains/search"
)

type searchService struct {
	repo search.Repository
}

func NewSearchService(repo search.Repository) search.Service {
	return &searchService{repo: repo}
}

func (s *searchService) Results(ctx context.Context, query, entityType string, limit int) ([]search.Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []search.Result{}, nil
	}
	if limit <= 0 {
		limit = search.DefaultLimit
	}

	types := search.EntityTypes
	if entityType != "" && search.ValidEntityType(entityType) {
		types = []string{entityType}
	}

	var results []search.Result
	for _, t := range types {
		hits, err := s.repo.Scan(ctx, t, query, limit)
		if err != nil {
			return nil, err
		}
		for _, h := range hits {
			results = append(results, search.Result{
				Type:      t,
				ID:        h.ID,
				Display:   h.Display,
				Relevance: search.Relevance(h.Display, query),
				Highlight: search.Highlight(h.Display, query),
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})
	if len(results) > limit {
		results = results[:limit]
	}
	if results == nil {
		results = []search.Result{}
	}
	return results, nil
}

func (s *searchService) GroupedResults(ctx context.Context, query, entityType string, limit int) (map[string][]search.Result, error) {
	results, err := s.Results(ctx, query, entityType, limit)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]search.Result)
	for _, r := range results {
		grouped[r.Type] = append(grouped[r.Type], r)
	}
	return grouped, nil
}
