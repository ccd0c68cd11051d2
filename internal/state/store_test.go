package state

import (
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ZeroValueIsEmpty(t *testing.T) {
	var s Store

	snap := s.Snapshot()
	assert.Equal(t, PhaseEmpty, snap.Phase)
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Output)
	assert.Equal(t, "empty", snap.Phase.String())
}

func TestStore_LoadingThenSuccess(t *testing.T) {
	var s Store

	before := time.Now()
	seq := s.BeginLoading("ditto")

	snap := s.Snapshot()
	assert.Equal(t, PhaseLoading, snap.Phase)
	assert.True(t, snap.Loading)
	assert.Empty(t, snap.Output)
	assert.Equal(t, "ditto", snap.Species)
	assert.Equal(t, seq, snap.Seq)
	assert.False(t, snap.UpdatedAt.Before(before))

	assert.True(t, s.Succeed(seq, "ditto", "Ditto", true))
	s.StopLoading(seq, false)

	snap = s.Snapshot()
	assert.Equal(t, PhaseSuccess, snap.Phase)
	assert.False(t, snap.Loading)
	assert.Equal(t, "Ditto", snap.Output)
	assert.Equal(t, seq, snap.Seq)
}

func TestStore_FailClonesError(t *testing.T) {
	var s Store

	origErr := errors.New("boom")
	seq := s.BeginLoading("x")
	assert.True(t, s.Fail(seq, "x", "Error", origErr, true))

	snap := s.Snapshot()
	assert.Equal(t, PhaseFailure, snap.Phase)
	assert.Equal(t, "Error", snap.Output)
	assert.EqualError(t, snap.Err, "boom")
	assert.True(t, errors.Is(snap.Err, origErr))
	assert.NotEqual(t, reflect.ValueOf(origErr).Pointer(), reflect.ValueOf(snap.Err).Pointer(),
		"Snapshot should clone error instance")
}

func TestStore_ClearLeavesLoadingFlag(t *testing.T) {
	var s Store

	s.BeginLoading("ditto")
	s.BeginClear()

	snap := s.Snapshot()
	assert.Equal(t, PhaseEmpty, snap.Phase)
	assert.True(t, snap.Loading, "clearing must not touch the loading flag")
	assert.Empty(t, snap.Output)
	assert.Empty(t, snap.Species)
}

func TestStore_SequenceTokensIncrease(t *testing.T) {
	var s Store

	a := s.BeginLoading("ditto")
	b := s.BeginClear()
	c := s.BeginLoading("pikachu")
	assert.Less(t, a, b)
	assert.Less(t, b, c)
}

func TestStore_GuardedWritesSkipSupersededTokens(t *testing.T) {
	var s Store

	a := s.BeginLoading("ditto")
	s.BeginClear()

	assert.False(t, s.Succeed(a, "ditto", "Ditto", true))
	assert.False(t, s.Fail(a, "ditto", "Error", errors.New("x"), true))
	assert.Empty(t, s.Snapshot().Output)

	assert.True(t, s.Succeed(a, "ditto", "Ditto", false), "unguarded writes always land")
	assert.Equal(t, "Ditto", s.Snapshot().Output)
}

func TestStore_StopLoadingOnlyIfNewest(t *testing.T) {
	var s Store

	a := s.BeginLoading("ditto")
	b := s.BeginLoading("pikachu")

	s.StopLoading(a, true)
	assert.True(t, s.Snapshot().Loading, "older lookup must not hide the newer one's flag")

	s.StopLoading(b, true)
	assert.False(t, s.Snapshot().Loading)

	s.BeginLoading("mew")
	s.StopLoading(a, false)
	assert.False(t, s.Snapshot().Loading, "unguarded stop always hides the flag")
}

// A lookup that settles entirely between an older lookup's start and that
// lookup's settle keeps its output.
func TestStore_OlderLookupCannotWipeSettledNewerResult(t *testing.T) {
	var s Store

	older := s.BeginLoading("ditto")
	newer := s.BeginLoading("pikachu")
	require.True(t, s.Succeed(newer, "pikachu", "Pikachu", true))
	s.StopLoading(newer, true)

	assert.False(t, s.Succeed(older, "ditto", "Ditto", true))
	s.StopLoading(older, true)

	snap := s.Snapshot()
	assert.Equal(t, PhaseSuccess, snap.Phase)
	assert.False(t, snap.Loading)
	assert.Equal(t, "Pikachu", snap.Output)
	assert.Equal(t, "pikachu", snap.Species)
	assert.Equal(t, newer, snap.Seq)
}

func TestStore_ConcurrentLookupsSettleOnNewestToken(t *testing.T) {
	var s Store

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seq := s.BeginLoading("ditto")
			s.Succeed(seq, "ditto", "Ditto", true)
			s.StopLoading(seq, true)
		}()
	}
	wg.Wait()

	snap := s.Snapshot()
	assert.False(t, snap.Loading)
	assert.Equal(t, PhaseSuccess, snap.Phase, "the newest lookup always writes its result")
	assert.Equal(t, "Ditto", snap.Output)
	assert.Equal(t, uint64(50), snap.Seq)
}
