package state

import (
	"sync"
	"time"

	"github.com/bep/debounce"

	"jobdeck-engine/internal/domain"
	"jobdeck-engine/internal/events"
	"jobdeck-engine/internal/filter"
)

// Store owns the current State and is the only writer. All mutation goes
// through transitions under one mutex; the filter engine itself stays pure
// and lock-free.
type Store struct {
	mu        sync.Mutex
	cur       State
	debounced func(func())
	hub       *events.Hub
}

// New builds a Store committing search input after the given quiet period.
// hub may be nil (tests); then no events are published.
func New(quiet time.Duration, hub *events.Hub) *Store {
	return &Store{
		debounced: debounce.New(quiet),
		hub:       hub,
	}
}

// SetQuietPeriod swaps the debounce delay; a pending commit from the old
// debouncer may still fire once.
func (s *Store) SetQuietPeriod(quiet time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debounced = debounce.New(quiet)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

func (s *Store) SetJobs(jobs []domain.Job) {
	s.mu.Lock()
	s.cur = SetJobs(s.cur, jobs)
	s.mu.Unlock()
}

func (s *Store) SetCompanies(companies []domain.Company) {
	s.mu.Lock()
	s.cur = SetCompanies(s.cur, companies)
	s.mu.Unlock()
}

// SetSearchInput records a keystroke immediately and schedules the debounced
// commit. Each call resets the quiet-period timer.
func (s *Store) SetSearchInput(raw string) {
	s.mu.Lock()
	s.cur = SetSearchInput(s.cur, raw)
	deb := s.debounced
	s.mu.Unlock()

	deb(s.commitSearch)
}

// CommitSearchNow commits the pending input without waiting out the quiet
// period (the UI's "press enter" path).
func (s *Store) CommitSearchNow() {
	s.commitSearch()
}

func (s *Store) commitSearch() {
	s.mu.Lock()
	if s.cur.SearchTerm == s.cur.SearchInput {
		s.mu.Unlock()
		return
	}
	s.cur = CommitSearch(s.cur)
	term := s.cur.SearchTerm
	s.mu.Unlock()

	s.publish(events.TypeSearchCommitted, map[string]any{"term": term})
}

// ToggleFilter flips the value's membership and reports whether it was added.
func (s *Store) ToggleFilter(value string) bool {
	s.mu.Lock()
	next, added := ToggleFilter(s.cur, value)
	s.cur = next
	selected := s.cur.Filters
	s.mu.Unlock()

	s.publish(events.TypeFiltersChanged, map[string]any{"filters": selected, "added": added})
	return added
}

func (s *Store) ClearFilters() {
	s.mu.Lock()
	s.cur = ClearFilters(s.cur)
	s.mu.Unlock()

	s.publish(events.TypeFiltersChanged, map[string]any{"filters": []string{}, "added": false})
}

// Visible recomputes the derived job list from the committed term and the
// selection. Cheap enough to run on every call; no caching.
func (s *Store) Visible() []domain.Job {
	s.mu.Lock()
	jobs, term, selected := s.cur.Jobs, s.cur.SearchTerm, s.cur.Filters
	s.mu.Unlock()

	return filter.Apply(jobs, term, selected)
}

func (s *Store) publish(typ string, data any) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(events.Make("", typ, data))
}
