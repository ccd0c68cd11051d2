package state

import (
	"fmt"
	"sync"
	"time"
)

// Phase is the lookup phase the output region currently reflects.
type Phase int

const (
	PhaseEmpty Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseFailure
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseFailure:
		return "failure"
	default:
		return "empty"
	}
}

// Snapshot represents the output region and loading indicator as the UI
// should draw them.
type Snapshot struct {
	Phase     Phase
	Loading   bool
	Output    string
	Species   string // selection the output belongs to
	Err       error  // raw error of the last failed lookup, never shown verbatim
	Seq       uint64 // token of the lookup that last wrote the output
	UpdatedAt time.Time
}

// Store coordinates concurrent writes to the UI state. A single owner (the
// presenter) writes; any number of readers take snapshots.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot

	// seq is the token handed out by the most recent BeginLoading or
	// BeginClear call.
	seq uint64
	// loadingSeq is the token of the most recent lookup that raised the
	// loading flag.
	loadingSeq uint64
}

// BeginLoading takes the next sequence token, raises the loading flag and
// clears the previous output in one step, so no lookup settling in between
// can be overwritten by an older start.
func (s *Store) BeginLoading(species string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.loadingSeq = s.seq
	s.snapshot.Phase = PhaseLoading
	s.snapshot.Loading = true
	s.snapshot.Output = ""
	s.snapshot.Species = species
	s.snapshot.Err = nil
	s.snapshot.Seq = s.seq
	s.snapshot.UpdatedAt = time.Now()
	return s.seq
}

// BeginClear takes the next sequence token and empties the output region
// without touching the loading flag.
func (s *Store) BeginClear() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.snapshot.Phase = PhaseEmpty
	s.snapshot.Output = ""
	s.snapshot.Species = ""
	s.snapshot.Err = nil
	s.snapshot.Seq = s.seq
	s.snapshot.UpdatedAt = time.Now()
	return s.seq
}

// Succeed writes rendered output for a settled lookup. With onlyIfLatest set
// the write is skipped when a newer token has been handed out; the return
// value reports whether the output was written.
func (s *Store) Succeed(seq uint64, species, output string, onlyIfLatest bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if onlyIfLatest && s.seq != seq {
		return false
	}
	s.snapshot.Phase = PhaseSuccess
	s.snapshot.Output = output
	s.snapshot.Species = species
	s.snapshot.Err = nil
	s.snapshot.Seq = seq
	s.snapshot.UpdatedAt = time.Now()
	return true
}

// Fail writes the user-facing error message and records the raw error. It
// follows the same onlyIfLatest rule as Succeed.
func (s *Store) Fail(seq uint64, species, message string, err error, onlyIfLatest bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if onlyIfLatest && s.seq != seq {
		return false
	}
	s.snapshot.Phase = PhaseFailure
	s.snapshot.Output = message
	s.snapshot.Species = species
	s.snapshot.Err = err
	s.snapshot.Seq = seq
	s.snapshot.UpdatedAt = time.Now()
	return true
}

// StopLoading hides the loading flag. With onlyIfNewest set, the flag is left
// alone when a lookup newer than seq has raised it since.
func (s *Store) StopLoading(seq uint64, onlyIfNewest bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if onlyIfNewest && s.loadingSeq != seq {
		return
	}
	s.snapshot.Loading = false
	s.snapshot.UpdatedAt = time.Now()
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.Err != nil {
		snap.Err = fmt.Errorf("%w", s.snapshot.Err)
	}
	return snap
}
