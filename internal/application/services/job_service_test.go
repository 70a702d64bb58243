package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"quickhire/internal/application/common"
	"quickhire/internal/domain/entities"
)

type fakeSearcher struct {
	queries []string
	jobs    []entities.Job
	err     error
}

func (f *fakeSearcher) Search(ctx context.Context, query string) ([]entities.Job, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.jobs, nil
}

func TestJobService_BlankQueryFallsBack(t *testing.T) {
	upstream := &fakeSearcher{jobs: []entities.Job{{Id: "1"}}}
	svc := NewJobService(upstream)
	ctx := context.Background()

	tests := []struct {
		query string
		want  string
	}{
		{query: "golang developer", want: "golang developer"},
		{query: "", want: DefaultQuery},
		{query: "   ", want: DefaultQuery},
	}
	for _, tt := range tests {
		upstream.queries = nil
		_, err := svc.Search(ctx, tt.query)
		require.NoError(t, err)
		assert.Equal(t, []string{tt.want}, upstream.queries)
	}
}

func TestJobService_PropagatesUpstreamError(t *testing.T) {
	upstream := &fakeSearcher{err: common.ErrUpstreamUnavailable}
	svc := NewJobService(upstream)

	_, err := svc.Search(context.Background(), "anything")
	assert.ErrorIs(t, err, common.ErrUpstreamUnavailable)
}
