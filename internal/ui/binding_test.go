package ui

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/dexview/internal/state"
)

// recordingDisplayer records every forwarded name and serves a fixed
// snapshot.
type recordingDisplayer struct {
	mu       sync.Mutex
	names    []string
	snapshot state.Snapshot
}

func (r *recordingDisplayer) Display(_ context.Context, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names = append(r.names, name)
}

func (r *recordingDisplayer) Snapshot() state.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot
}

func (r *recordingDisplayer) setSnapshot(s state.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshot = s
}

func (r *recordingDisplayer) calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.names...)
}

func TestBindingStartForwardsEmptyValue(t *testing.T) {
	target := &recordingDisplayer{}
	b := NewBinding(context.Background(), target)

	cmd := b.Start()
	require.NotNil(t, cmd)
	msg := cmd()

	assert.Equal(t, []string{""}, target.calls())
	assert.Equal(t, settledMsg{species: ""}, msg)
	assert.Equal(t, "", b.Current())
}

func TestBindingForwardsValuesVerbatim(t *testing.T) {
	target := &recordingDisplayer{}
	b := NewBinding(context.Background(), target)

	values := []string{"Pikachu", "pikachu", "  ditto ", "mr-mime", ""}
	for _, v := range values {
		b.Change(v)()
	}

	assert.Equal(t, values, target.calls())
}

func TestBindingCurrentTracksLatestChange(t *testing.T) {
	target := &recordingDisplayer{}
	b := NewBinding(context.Background(), target)

	first := b.Change("bulbasaur")
	second := b.Change("squirtle")
	assert.Equal(t, "squirtle", b.Current())

	// Commands are independent; running them out of order forwards both.
	second()
	first()
	assert.Equal(t, []string{"squirtle", "bulbasaur"}, target.calls())
}
