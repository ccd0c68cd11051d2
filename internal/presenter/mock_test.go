package presenter

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/five82/dexview/internal/pokeapi"
)

// mockFetcher is a mock implementation of pokeapi.Fetcher for testing
type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) FetchSubjectInfo(ctx context.Context, name string) (pokeapi.SubjectInfo, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(pokeapi.SubjectInfo), args.Error(1)
}

type mockObserver struct {
	mock.Mock
}

func (m *mockObserver) ObserveLookup(outcome Outcome, elapsed time.Duration, stale bool) {
	m.Called(outcome, elapsed, stale)
}

// panicRenderer blows up while formatting a successful lookup.
type panicRenderer struct{ TextRenderer }

func (panicRenderer) RenderSubject(pokeapi.SubjectInfo) (string, error) {
	panic("template exploded")
}
