package presenter

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/five82/dexview/internal/pokeapi"
	"github.com/five82/dexview/internal/state"
)

// Outcome classifies a settled lookup for observers.
type Outcome string

const (
	OutcomeSuccess   Outcome = "success"
	OutcomeNotFound  Outcome = "not_found"
	OutcomeStatus    Outcome = "http_status"
	OutcomeTransport Outcome = "transport"
	OutcomeParse     Outcome = "parse"
	OutcomeRender    Outcome = "render"
)

// Observer is notified once per settled lookup. Stale is true when the result
// was discarded because a newer selection superseded it.
type Observer interface {
	ObserveLookup(outcome Outcome, elapsed time.Duration, stale bool)
}

// Options configure a Presenter.
type Options struct {
	Renderer Renderer       // nil uses TextRenderer
	Logger   zerolog.Logger // diagnostic channel; the zero value discards
	Observer Observer       // optional

	// DropStaleResults discards the result of a lookup that settles after a
	// newer selection was made. When false, whichever lookup settles last
	// overwrites the output region.
	DropStaleResults bool

	newID func() string
}

// Presenter drives a lookup and owns the resulting UI state.
type Presenter struct {
	fetcher   pokeapi.Fetcher
	renderer  Renderer
	logger    zerolog.Logger
	observer  Observer
	dropStale bool
	newID     func() string

	store *state.Store
}

// New builds a Presenter around fetcher. The presenter is the only writer of
// its state; front ends read it through Snapshot.
func New(fetcher pokeapi.Fetcher, opts Options) *Presenter {
	renderer := opts.Renderer
	if renderer == nil {
		renderer = TextRenderer{}
	}
	newID := opts.newID
	if newID == nil {
		newID = uuid.NewString
	}
	return &Presenter{
		fetcher:   fetcher,
		renderer:  renderer,
		logger:    opts.Logger,
		observer:  opts.Observer,
		dropStale: opts.DropStaleResults,
		newID:     newID,
		store:     &state.Store{},
	}
}

// Snapshot returns a copy of the output region and loading flag.
func (p *Presenter) Snapshot() state.Snapshot {
	return p.store.Snapshot()
}

// Display shows the catalog entry for name. An empty name clears the output
// and leaves the loading flag alone. Display blocks until the lookup settles;
// the loading flag is lowered on every exit path of a lookup.
func (p *Presenter) Display(ctx context.Context, name string) {
	if name == "" {
		p.store.BeginClear()
		return
	}

	seq := p.store.BeginLoading(name)
	defer p.store.StopLoading(seq, p.dropStale)

	logger := p.logger.With().
		Str("lookup_id", p.newID()).
		Str("species", name).
		Uint64("seq", seq).
		Logger()
	logger.Debug().Msg("lookup started")

	started := time.Now()
	info, err := p.fetcher.FetchSubjectInfo(ctx, name)
	outcome := outcomeOf(err)
	if err == nil {
		output, renderErr := p.render(info)
		if renderErr == nil {
			written := p.store.Succeed(seq, name, output, p.dropStale)
			logTrace(logger, info)
			p.settled(logger, outcome, time.Since(started), !written)
			return
		}
		err = renderErr
		outcome = OutcomeRender
	}

	written := p.store.Fail(seq, name, p.renderer.RenderError(), err, p.dropStale)
	logger.Error().Err(err).Str("outcome", string(outcome)).Msg("error displaying species info")
	p.settled(logger, outcome, time.Since(started), !written)
}

func (p *Presenter) render(info pokeapi.SubjectInfo) (output string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render panicked: %v", r)
		}
	}()
	return p.renderer.RenderSubject(info)
}

func (p *Presenter) settled(logger zerolog.Logger, outcome Outcome, elapsed time.Duration, stale bool) {
	if stale {
		logger.Info().Str("outcome", string(outcome)).Msg("discarded stale result")
	}
	if p.observer != nil {
		p.observer.ObserveLookup(outcome, elapsed, stale)
	}
}

// logTrace writes the human-readable trace of a successful lookup.
func logTrace(logger zerolog.Logger, info pokeapi.SubjectInfo) {
	logger.Info().Msgf("Name: %s", info.Name)
	logger.Info().Msgf("Weight: %s", FormatWeight(info.WeightKg))
	logger.Info().Msg("Abilities:")
	for _, a := range info.Abilities {
		logger.Info().Msgf("- %s (Hidden: %t, Slot: %d)", a.Name, a.IsHidden, a.Slot)
	}
}

func outcomeOf(err error) Outcome {
	if err == nil {
		return OutcomeSuccess
	}
	switch pokeapi.KindOf(err) {
	case pokeapi.KindHTTPStatus:
		if pokeapi.IsNotFound(err) {
			return OutcomeNotFound
		}
		return OutcomeStatus
	case pokeapi.KindParse:
		return OutcomeParse
	default:
		return OutcomeTransport
	}
}
