package interfaces

import (
	"context"

	"quickhire/internal/application/query"
)

// DashboardService keeps per-session dashboard state: the cached job list from
// the last search, pagination over it, and the saved/applied id sets.
type DashboardService interface {
	// Search queries upstream, replaces the session's job cache wholesale and
	// rewinds to page 1.
	Search(ctx context.Context, sessionToken, searchQuery string) (*query.JobListResult, error)
	// Page slices the cached job list without touching upstream.
	Page(ctx context.Context, sessionToken string, page int) (*query.JobPageResult, error)
	ToggleSaved(ctx context.Context, sessionToken, jobId string) (*query.ToggleSavedResult, error)
	MarkApplied(ctx context.Context, sessionToken, jobId string) (*query.DashboardStatsResult, error)
	SavedJobs(ctx context.Context, sessionToken string) (*query.JobListResult, error)
	AppliedJobs(ctx context.Context, sessionToken string) (*query.JobListResult, error)
	Stats(ctx context.Context, sessionToken string) (*query.DashboardStatsResult, error)
	// Drop discards the session's state, typically on logout.
	Drop(ctx context.Context, sessionToken string)
}
