package services

import (
	"context"
	"strings"

	"quickhire/internal/application/interfaces"
	"quickhire/internal/domain/entities"
)

// DefaultQuery is the fallback search term when the caller submits a blank
// query, matching the dashboard's default category.
const DefaultQuery = "Project Manager"

// JobService fronts the upstream client: it owns the blank-query fallback and
// nothing else. Results are never cached server-side; every call re-queries.
type JobService struct {
	client interfaces.JobSearcher
}

func NewJobService(client interfaces.JobSearcher) *JobService {
	return &JobService{client: client}
}

func (s *JobService) Search(ctx context.Context, query string) ([]entities.Job, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		query = DefaultQuery
	}
	return s.client.Search(ctx, query)
}
