package entities

// DashboardState tracks what a logged-in user is looking at: the jobs from the
// last search, the current page, and which job ids were saved or applied to.
// The whole thing dies with the session; nothing here touches storage.
type DashboardState struct {
	SavedJobIds   map[string]struct{}
	AppliedJobIds map[string]struct{}
	AllJobs       []Job
	CurrentPage   int

	pageSize int
}

func NewDashboardState(pageSize int) *DashboardState {
	if pageSize <= 0 {
		pageSize = 2
	}
	return &DashboardState{
		SavedJobIds:   make(map[string]struct{}),
		AppliedJobIds: make(map[string]struct{}),
		CurrentPage:   1,
		pageSize:      pageSize,
	}
}

// LoadSearch replaces the job cache wholesale and rewinds to page 1. Saved and
// applied ids survive the swap; jobs they point at may no longer be in the cache.
func (s *DashboardState) LoadSearch(jobs []Job) {
	s.AllJobs = jobs
	s.CurrentPage = 1
}

// Page returns the n-th fixed-size slice of the job cache, 1-based.
// Out-of-range pages yield an empty slice.
func (s *DashboardState) Page(n int) []Job {
	if n < 1 {
		return []Job{}
	}
	start := (n - 1) * s.pageSize
	if start >= len(s.AllJobs) {
		return []Job{}
	}
	end := start + s.pageSize
	if end > len(s.AllJobs) {
		end = len(s.AllJobs)
	}
	return s.AllJobs[start:end]
}

func (s *DashboardState) TotalPages() int {
	return (len(s.AllJobs) + s.pageSize - 1) / s.pageSize
}

// ToggleSaved flips the saved flag for a job id and reports the new state.
// Applied jobs can no longer be saved.
func (s *DashboardState) ToggleSaved(jobId string) bool {
	if _, applied := s.AppliedJobIds[jobId]; applied {
		return false
	}
	if _, ok := s.SavedJobIds[jobId]; ok {
		delete(s.SavedJobIds, jobId)
		return false
	}
	s.SavedJobIds[jobId] = struct{}{}
	return true
}

// MarkApplied moves a job from saved to applied. There is no un-apply.
func (s *DashboardState) MarkApplied(jobId string) {
	delete(s.SavedJobIds, jobId)
	s.AppliedJobIds[jobId] = struct{}{}
}

func (s *DashboardState) IsApplied(jobId string) bool {
	_, ok := s.AppliedJobIds[jobId]
	return ok
}

// ProfileStrength derives the completeness metric from the current set sizes:
// min(10 + 5*saved + 10*applied, 100).
func (s *DashboardState) ProfileStrength() int {
	strength := 10 + 5*len(s.SavedJobIds) + 10*len(s.AppliedJobIds)
	if strength > 100 {
		strength = 100
	}
	return strength
}

// SavedJobs returns the saved ids intersected with the current job cache.
// Jobs saved in an earlier search that dropped out of the cache are invisible.
func (s *DashboardState) SavedJobs() []Job {
	return s.filterJobs(s.SavedJobIds)
}

// AppliedJobs returns the applied ids intersected with the current job cache.
func (s *DashboardState) AppliedJobs() []Job {
	return s.filterJobs(s.AppliedJobIds)
}

func (s *DashboardState) filterJobs(ids map[string]struct{}) []Job {
	jobs := make([]Job, 0, len(ids))
	for _, job := range s.AllJobs {
		if _, ok := ids[job.Id]; ok {
			jobs = append(jobs, job)
		}
	}
	return jobs
}
