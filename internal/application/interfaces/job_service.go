package interfaces

import (
	"context"

	"quickhire/internal/domain/entities"
)

// JobSearcher forwards a query to the upstream job-search API and returns the
// normalised result. Blank queries fall back to a fixed default term.
type JobSearcher interface {
	Search(ctx context.Context, query string) ([]entities.Job, error)
}
