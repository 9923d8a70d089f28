package state

import (
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/five82/talentdesk/internal/recruit"
	"github.com/five82/talentdesk/internal/table"
)

// Entry is the cached state of one resource.
type Entry struct {
	// Data holds the typed slice returned by recruit.Fetch.
	Data                any
	Loaded              bool
	Fetching            bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
	// Version increases on every change to the entry.
	Version uint64
}

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Entries     map[recruit.Resource]Entry
	LastUpdated time.Time
	LastError   error
	// ConsecutiveFailures is the highest failure streak of any resource.
	ConsecutiveFailures int
}

// IsOffline returns true when the API has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Entry returns the cached state of res.
func (s Snapshot) Entry(res recruit.Resource) Entry {
	return s.Entries[res]
}

// Rows returns the rows of res as a table result. A resource that was never
// loaded, or holds another row type, yields no data.
func Rows[R any](snap Snapshot, res recruit.Resource) table.Result[R] {
	e := snap.Entries[res]
	out := table.Result[R]{Loaded: e.Loaded, IsFetching: e.Fetching}
	if rows, ok := e.Data.([]R); ok {
		out.Data = slices.Clone(rows)
	}
	return out
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

func (s *Store) entry(res recruit.Resource) Entry {
	if s.snapshot.Entries == nil {
		s.snapshot.Entries = make(map[recruit.Resource]Entry)
	}
	return s.snapshot.Entries[res]
}

func (s *Store) put(res recruit.Resource, e Entry) {
	e.Version++
	s.snapshot.Entries[res] = e
}

// MarkFetching flags res as having a request in flight.
func (s *Store) MarkFetching(res recruit.Resource) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entry(res)
	if e.Fetching {
		return
	}
	e.Fetching = true
	s.put(res, e)
}

// Update records the outcome of a fetch of res. When err is non-nil the
// previous data is kept but the error is recorded for visibility.
func (s *Store) Update(res recruit.Resource, data any, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	e := s.entry(res)
	e.Fetching = false
	e.LastUpdated = now
	s.snapshot.LastUpdated = now

	if err != nil {
		e.LastError = err
		e.ConsecutiveFailures++
		s.snapshot.LastError = err
		s.put(res, e)
		s.refreshFailures()
		return
	}

	e.Data = data
	e.Loaded = true
	e.LastError = nil
	e.ConsecutiveFailures = 0
	s.put(res, e)
	s.refreshFailures()
	if s.snapshot.ConsecutiveFailures == 0 {
		s.snapshot.LastError = nil
	}
}

// ApplyRound replaces the cached copy of an interview round after a
// successful update. It reports whether the round was cached.
func (s *Store) ApplyRound(round recruit.InterviewRound) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entry(recruit.InterviewRounds)
	rows, ok := e.Data.([]recruit.InterviewRound)
	if !ok {
		return false
	}
	i := slices.IndexFunc(rows, func(r recruit.InterviewRound) bool { return r.ID == round.ID })
	if i < 0 {
		return false
	}
	dup := slices.Clone(rows)
	dup[i] = round
	e.Data = dup
	s.put(recruit.InterviewRounds, e)
	return true
}

func (s *Store) refreshFailures() {
	worst := 0
	for _, e := range s.snapshot.Entries {
		worst = max(worst, e.ConsecutiveFailures)
	}
	s.snapshot.ConsecutiveFailures = worst
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Entries = maps.Clone(s.snapshot.Entries)
	for res, e := range snap.Entries {
		if e.LastError != nil {
			e.LastError = fmt.Errorf("%w", e.LastError)
			snap.Entries[res] = e
		}
	}
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
