package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/five82/dexview/internal/config"
	"github.com/five82/dexview/internal/logging"
	"github.com/five82/dexview/internal/metrics"
	"github.com/five82/dexview/internal/pokeapi"
	"github.com/five82/dexview/internal/prefs"
	"github.com/five82/dexview/internal/presenter"
	"github.com/five82/dexview/internal/state"
	"github.com/five82/dexview/internal/ui"
)

// ErrLookupFailed is returned by Show when the lookup ends in the failure
// state. The generic error message has already been written to the output.
var ErrLookupFailed = errors.New("lookup failed")

// Options configure the dexview application.
type Options struct {
	ConfigPath  string
	PrefsPath   string // empty uses default ~/.config/dexview/prefs.toml
	LogLevel    string // overrides log_level from the config when set
	MetricsAddr string // serve Prometheus metrics here when set
}

// Run boots the dexview TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closeLog()

	registry := prometheus.NewRegistry()
	lookups, err := metrics.NewLookups(registry)
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}
	if opts.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, opts.MetricsAddr, registry); err != nil {
				logger.Error().Err(err).Str("addr", opts.MetricsAddr).Msg("metrics server stopped")
			}
		}()
		logger.Info().Str("addr", opts.MetricsAddr).Msg("serving metrics")
	}

	// The terminal pane always shows plain text; format only applies to show.
	p, err := newPresenter(cfg, presenter.TextRenderer{}, logger, lookups)
	if err != nil {
		return err
	}

	userPrefs := prefs.Load(opts.PrefsPath)
	logger.Info().
		Str("api_base_url", cfg.APIBaseURL).
		Dur("request_timeout", cfg.RequestTimeout).
		Bool("drop_stale_results", cfg.DropStaleResults).
		Int("species", len(cfg.Species)).
		Msg("starting dexview")

	return ui.Run(ui.Options{
		Context:        ctx,
		Presenter:      p,
		Species:        cfg.Species,
		InitialSpecies: userPrefs.LastSpecies,
		LogFile:        cfg.LogFile,
		Logger:         logger,
		ThemeName:      userPrefs.Theme,
		PrefsPath:      opts.PrefsPath,
	})
}

// Show performs a single lookup for name and writes the rendered output to
// out. Diagnostics go to errOut. An empty format uses the configured one.
func Show(ctx context.Context, opts Options, name, format string, out, errOut io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	if format == "" {
		format = cfg.Format
	}
	f, err := presenter.ParseFormat(format)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(logging.Options{Level: cfg.LogLevel, Console: errOut})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closeLog()

	p, err := newPresenter(cfg, presenter.NewRenderer(f), logger, nil)
	if err != nil {
		return err
	}

	p.Display(ctx, name)
	snap := p.Snapshot()
	if snap.Output != "" {
		if _, err := fmt.Fprintln(out, snap.Output); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if snap.Phase == state.PhaseFailure {
		return fmt.Errorf("%w: %s", ErrLookupFailed, name)
	}
	return nil
}

func loadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	return cfg, nil
}

func newPresenter(cfg config.Config, renderer presenter.Renderer, logger zerolog.Logger, observer presenter.Observer) (*presenter.Presenter, error) {
	client, err := pokeapi.NewClient(pokeapi.Options{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.RequestTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("init catalog client: %w", err)
	}
	return presenter.New(client, presenter.Options{
		Renderer:         renderer,
		Logger:           logger,
		Observer:         observer,
		DropStaleResults: cfg.DropStaleResults,
	}), nil
}
