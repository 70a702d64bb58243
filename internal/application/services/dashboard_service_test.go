package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"quickhire/internal/application/common"
	"quickhire/internal/domain/entities"
)

func searchFixture(n int) []entities.Job {
	jobs := make([]entities.Job, n)
	for i := range jobs {
		jobs[i] = entities.Job{Id: fmt.Sprintf("job-%d", i)}
	}
	return jobs
}

func TestDashboardService_SearchAndPage(t *testing.T) {
	upstream := &fakeSearcher{jobs: searchFixture(5)}
	svc := NewDashboardService(NewJobService(upstream), 2, time.Hour)
	ctx := context.Background()

	list, err := svc.Search(ctx, "tok", "engineer")
	require.NoError(t, err)
	assert.Len(t, list.Data, 5)

	page, err := svc.Page(ctx, "tok", 3)
	require.NoError(t, err)
	assert.Equal(t, []entities.Job{{Id: "job-4"}}, page.Data)
	assert.Equal(t, 3, page.TotalPages)

	page, err = svc.Page(ctx, "tok", 4)
	require.NoError(t, err)
	assert.Empty(t, page.Data)
}

func TestDashboardService_SearchErrorLeavesStateAlone(t *testing.T) {
	upstream := &fakeSearcher{jobs: searchFixture(3)}
	svc := NewDashboardService(NewJobService(upstream), 2, time.Hour)
	ctx := context.Background()

	_, err := svc.Search(ctx, "tok", "engineer")
	require.NoError(t, err)

	upstream.err = common.ErrUpstreamUnavailable
	_, err = svc.Search(ctx, "tok", "engineer")
	assert.ErrorIs(t, err, common.ErrUpstreamUnavailable)

	// The failed search must not wipe the cached list.
	page, err := svc.Page(ctx, "tok", 1)
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
}

func TestDashboardService_SaveApplyStats(t *testing.T) {
	upstream := &fakeSearcher{jobs: searchFixture(3)}
	svc := NewDashboardService(NewJobService(upstream), 2, time.Hour)
	ctx := context.Background()

	_, err := svc.Search(ctx, "tok", "")
	require.NoError(t, err)

	toggled, err := svc.ToggleSaved(ctx, "tok", "job-0")
	require.NoError(t, err)
	assert.True(t, toggled.Saved)
	assert.Equal(t, 15, toggled.Stats.ProfileStrength)

	stats, err := svc.MarkApplied(ctx, "tok", "job-0")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.SavedCount)
	assert.Equal(t, 1, stats.AppliedCount)
	assert.Equal(t, 20, stats.ProfileStrength)

	saved, err := svc.SavedJobs(ctx, "tok")
	require.NoError(t, err)
	assert.Empty(t, saved.Data)

	applied, err := svc.AppliedJobs(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, []entities.Job{{Id: "job-0"}}, applied.Data)
}

func TestDashboardService_StatesAreIsolatedPerSession(t *testing.T) {
	upstream := &fakeSearcher{jobs: searchFixture(2)}
	svc := NewDashboardService(NewJobService(upstream), 2, time.Hour)
	ctx := context.Background()

	_, err := svc.Search(ctx, "alice", "")
	require.NoError(t, err)
	_, err = svc.ToggleSaved(ctx, "alice", "job-0")
	require.NoError(t, err)

	stats, err := svc.Stats(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.SavedCount)
	assert.Equal(t, 0, stats.TotalJobs)
	assert.Equal(t, 10, stats.ProfileStrength)
}

func TestDashboardService_IdleStateEvictedAfterTTL(t *testing.T) {
	upstream := &fakeSearcher{jobs: searchFixture(3)}
	svc := NewDashboardService(NewJobService(upstream), 2, 20*time.Millisecond).(*DashboardService)
	defer svc.Close()
	ctx := context.Background()

	_, err := svc.Search(ctx, "tok", "engineer")
	require.NoError(t, err)

	svc.mu.Lock()
	_, present := svc.states["tok"]
	svc.mu.Unlock()
	require.True(t, present)

	// Nobody logs out; the sweep alone must reclaim the entry once the
	// session TTL has passed.
	assert.Eventually(t, func() bool {
		svc.mu.Lock()
		defer svc.mu.Unlock()
		_, present := svc.states["tok"]
		return !present
	}, time.Second, 5*time.Millisecond)
}

func TestDashboardService_ActiveStateSurvivesSweep(t *testing.T) {
	upstream := &fakeSearcher{jobs: searchFixture(3)}
	svc := NewDashboardService(NewJobService(upstream), 2, 50*time.Millisecond).(*DashboardService)
	defer svc.Close()
	ctx := context.Background()

	_, err := svc.Search(ctx, "tok", "engineer")
	require.NoError(t, err)
	_, err = svc.ToggleSaved(ctx, "tok", "job-0")
	require.NoError(t, err)

	// Keep touching the state across several sweep intervals; use refreshes
	// the idle clock, so the entry must not be reclaimed under us.
	deadline := time.Now().Add(200 * time.Millisecond)
	for time.Now().Before(deadline) {
		stats, err := svc.Stats(ctx, "tok")
		require.NoError(t, err)
		assert.Equal(t, 1, stats.SavedCount)
		time.Sleep(10 * time.Millisecond)
	}
}

func TestDashboardService_DropDiscardsState(t *testing.T) {
	upstream := &fakeSearcher{jobs: searchFixture(2)}
	svc := NewDashboardService(NewJobService(upstream), 2, time.Hour)
	ctx := context.Background()

	_, err := svc.Search(ctx, "tok", "")
	require.NoError(t, err)
	_, err = svc.ToggleSaved(ctx, "tok", "job-0")
	require.NoError(t, err)

	svc.Drop(ctx, "tok")

	stats, err := svc.Stats(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.SavedCount)
	assert.Equal(t, 0, stats.TotalJobs)
}
