package query

import "quickhire/internal/domain/entities"

type JobListResult struct {
	Data []entities.Job `json:"data"`
}

type JobPageResult struct {
	Data       []entities.Job `json:"data"`
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
}

type DashboardStatsResult struct {
	ProfileStrength int `json:"profileStrength"`
	SavedCount      int `json:"savedCount"`
	AppliedCount    int `json:"appliedCount"`
	TotalJobs       int `json:"totalJobs"`
}

type ToggleSavedResult struct {
	Saved bool                 `json:"saved"`
	Stats DashboardStatsResult `json:"stats"`
}
