package services

import (
	"context"
	"sync"
	"time"

	"quickhire/internal/application/interfaces"
	"quickhire/internal/application/query"
	"quickhire/internal/domain/entities"
)

type dashboardEntry struct {
	state    *entities.DashboardState
	lastSeen time.Time
}

// DashboardService holds one DashboardState per session token. State is
// in-memory only: it appears on first use and vanishes on logout or restart.
// Sessions that expire without a logout never call Drop, so a background
// sweep also evicts entries idle longer than the session TTL.
type DashboardService struct {
	mu       sync.Mutex
	states   map[string]*dashboardEntry
	searcher interfaces.JobSearcher
	pageSize int
	ttl      time.Duration
	done     chan struct{}
}

func NewDashboardService(searcher interfaces.JobSearcher, pageSize int, ttl time.Duration) interfaces.DashboardService {
	s := &DashboardService{
		states:   make(map[string]*dashboardEntry),
		searcher: searcher,
		pageSize: pageSize,
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	go s.sweep()
	return s
}

func (s *DashboardService) Search(ctx context.Context, sessionToken, searchQuery string) (*query.JobListResult, error) {
	// The upstream call happens outside the lock; it is the one suspension
	// point per request and must not block other sessions.
	jobs, err := s.searcher.Search(ctx, searchQuery)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(sessionToken)
	st.LoadSearch(jobs)
	return &query.JobListResult{Data: jobs}, nil
}

func (s *DashboardService) Page(ctx context.Context, sessionToken string, page int) (*query.JobPageResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(sessionToken)
	jobs := st.Page(page)
	if len(jobs) > 0 {
		st.CurrentPage = page
	}
	return &query.JobPageResult{
		Data:       jobs,
		Page:       page,
		TotalPages: st.TotalPages(),
	}, nil
}

func (s *DashboardService) ToggleSaved(ctx context.Context, sessionToken, jobId string) (*query.ToggleSavedResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(sessionToken)
	saved := st.ToggleSaved(jobId)
	return &query.ToggleSavedResult{Saved: saved, Stats: stats(st)}, nil
}

func (s *DashboardService) MarkApplied(ctx context.Context, sessionToken, jobId string) (*query.DashboardStatsResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(sessionToken)
	st.MarkApplied(jobId)
	result := stats(st)
	return &result, nil
}

func (s *DashboardService) SavedJobs(ctx context.Context, sessionToken string) (*query.JobListResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &query.JobListResult{Data: s.state(sessionToken).SavedJobs()}, nil
}

func (s *DashboardService) AppliedJobs(ctx context.Context, sessionToken string) (*query.JobListResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &query.JobListResult{Data: s.state(sessionToken).AppliedJobs()}, nil
}

func (s *DashboardService) Stats(ctx context.Context, sessionToken string) (*query.DashboardStatsResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := stats(s.state(sessionToken))
	return &result, nil
}

func (s *DashboardService) Drop(ctx context.Context, sessionToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, sessionToken)
}

// Close stops the background sweep.
func (s *DashboardService) Close() {
	close(s.done)
}

// state returns the session's dashboard, creating it on first use and
// refreshing its idle clock. Callers must hold s.mu.
func (s *DashboardService) state(sessionToken string) *entities.DashboardState {
	e, ok := s.states[sessionToken]
	if !ok {
		e = &dashboardEntry{state: entities.NewDashboardState(s.pageSize)}
		s.states[sessionToken] = e
	}
	e.lastSeen = time.Now()
	return e.state
}

// sweep drops dashboards idle longer than the session TTL. The session guard
// keeps expired sessions out, so anything that idle belongs to a session that
// is already gone.
func (s *DashboardService) sweep() {
	interval := s.ttl / 4
	if interval <= 0 || interval > 10*time.Minute {
		interval = 10 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-s.ttl)
			s.mu.Lock()
			for token, e := range s.states {
				if e.lastSeen.Before(cutoff) {
					delete(s.states, token)
				}
			}
			s.mu.Unlock()
		}
	}
}

func stats(st *entities.DashboardState) query.DashboardStatsResult {
	return query.DashboardStatsResult{
		ProfileStrength: st.ProfileStrength(),
		SavedCount:      len(st.SavedJobIds),
		AppliedCount:    len(st.AppliedJobIds),
		TotalJobs:       len(st.AllJobs),
	}
}
