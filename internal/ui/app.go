package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/dexview/internal/logtail"
	"github.com/five82/dexview/internal/prefs"
	"github.com/five82/dexview/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewLookup View = iota
	ViewLogs
)

// Options configures the UI.
type Options struct {
	Context        context.Context
	Presenter      Displayer
	Species        []string
	InitialSpecies string // cursor position only; nothing is fetched until selected
	LogFile        string
	Logger         zerolog.Logger
	PollTick       time.Duration
	ThemeName      string
	PrefsPath      string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	presenter Displayer
	binding   *Binding
	logger    zerolog.Logger
	logFile   string
	prefsPath string
	pollTick  time.Duration

	theme       Theme
	keys        keyMap
	help        help.Model
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool

	species  list.Model
	spinner  spinner.Model
	output   viewport.Model
	logView  viewport.Model
	snapshot state.Snapshot
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = DefaultPollTick
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(opts.ThemeName)

	return Model{
		ctx:         ctx,
		presenter:   opts.Presenter,
		binding:     NewBinding(ctx, opts.Presenter),
		logger:      opts.Logger,
		logFile:     opts.LogFile,
		prefsPath:   prefsPath,
		pollTick:    pollTick,
		theme:       theme,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		currentView: ViewLookup,
		species:     newSpeciesList(opts.Species, opts.InitialSpecies, theme),
		spinner:     newSpinner(theme),
		output:      viewport.New(0, 0),
		logView:     viewport.New(0, 0),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.binding.Start(),
		m.spinner.Tick,
		tickCmd(m.pollTick),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case tickMsg:
		m.refreshSnapshot()
		return m, tickCmd(m.pollTick)

	case settledMsg:
		m.refreshSnapshot()
		return m, nil

	case logLinesMsg:
		m.logView.SetContent(joinLines(msg.lines))
		m.logView.GotoBottom()
		return m, nil

	case logErrorMsg:
		m.logView.SetContent(m.theme.Styles().DangerText.Render("read log: " + msg.err.Error()))
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil
	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewLookup
		return m, nil
	case key.Matches(msg, m.keys.Logs):
		m.currentView = ViewLogs
		return m, readLogsCmd(m.logFile)
	}

	if m.currentView == ViewLogs {
		return m.handleLogsKey(msg)
	}
	return m.handleLookupKey(msg)
}

func (m Model) handleLookupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		return m, m.selectCurrent()
	case key.Matches(msg, m.keys.Clear):
		return m, m.binding.Change("")
	case key.Matches(msg, m.keys.ScrollUp):
		m.output.HalfViewUp()
		return m, nil
	case key.Matches(msg, m.keys.ScrollDown):
		m.output.HalfViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.species, cmd = m.species.Update(msg)
	return m, cmd
}

func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.RefreshLogs):
		return m, readLogsCmd(m.logFile)
	case key.Matches(msg, m.keys.ScrollUp):
		m.logView.HalfViewUp()
		return m, nil
	case key.Matches(msg, m.keys.ScrollDown):
		m.logView.HalfViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.logView, cmd = m.logView.Update(msg)
	return m, cmd
}

// selectCurrent forwards the highlighted species and remembers it for the
// next start.
func (m Model) selectCurrent() tea.Cmd {
	item, ok := m.species.SelectedItem().(speciesItem)
	if !ok {
		return nil
	}
	value := string(item)
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, LastSpecies: value}); err != nil {
		m.logger.Warn().Err(err).Msg("save prefs")
	}
	return m.binding.Change(value)
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.species.SetDelegate(newSpeciesDelegate(m.theme))
	m.spinner.Style = m.theme.Styles().AccentText
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, LastSpecies: m.binding.Current()}); err != nil {
		m.logger.Warn().Err(err).Msg("save prefs")
	}
	m.refreshOutput()
}

func (m *Model) refreshSnapshot() {
	if m.presenter == nil {
		return
	}
	m.snapshot = m.presenter.Snapshot()
	m.refreshOutput()
}

func (m *Model) refreshOutput() {
	m.output.SetContent(m.renderOutput())
}

func (m *Model) resize() {
	listWidth, panelWidth, bodyHeight := m.layout()
	m.species.SetSize(listWidth, bodyHeight)
	// Panel border and padding take two rows and four columns; the status
	// line takes one more row.
	m.output.Width = max(panelWidth-4, 0)
	m.output.Height = max(bodyHeight-3, 0)
	m.logView.Width = max(m.width-4, 0)
	m.logView.Height = max(bodyHeight-2, 0)
	m.help.Width = m.width
	m.refreshOutput()
}

// Messages

type tickMsg time.Time

type logLinesMsg struct {
	lines []string
}

type logErrorMsg struct {
	err error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func readLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, LogTailLines)
		if err != nil {
			return logErrorMsg{err: err}
		}
		return logLinesMsg{lines: logtail.FormatLines(lines)}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, programOpts...)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && opts.Context != nil && opts.Context.Err() != nil {
		return nil
	}
	return err
}
