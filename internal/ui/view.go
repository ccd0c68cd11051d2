package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/dexview/internal/state"
)

// speciesItem is one entry of the selection control.
type speciesItem string

func (i speciesItem) FilterValue() string { return string(i) }

// speciesDelegate draws one species per line with the theme's selection
// colors.
type speciesDelegate struct {
	styles Styles
}

func newSpeciesDelegate(theme Theme) speciesDelegate {
	return speciesDelegate{styles: theme.Styles()}
}

func (d speciesDelegate) Height() int                             { return 1 }
func (d speciesDelegate) Spacing() int                            { return 0 }
func (d speciesDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d speciesDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	name, ok := item.(speciesItem)
	if !ok {
		return
	}
	width := max(m.Width()-2, 1)
	label := truncate(string(name), width)
	if index == m.Index() {
		fmt.Fprint(w, d.styles.Selected.Width(m.Width()).Render("▸ "+label))
		return
	}
	fmt.Fprint(w, d.styles.Text.Render("  "+label))
}

func newSpeciesList(species []string, initial string, theme Theme) list.Model {
	items := make([]list.Item, 0, len(species))
	cursor := 0
	for i, name := range species {
		items = append(items, speciesItem(name))
		if initial != "" && strings.EqualFold(name, initial) {
			cursor = i
		}
	}

	l := list.New(items, newSpeciesDelegate(theme), 0, 0)
	l.Title = "Species"
	l.Styles.Title = theme.Styles().AccentText
	l.SetShowTitle(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Select(cursor)
	return l
}

func newSpinner(theme Theme) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.Styles().AccentText
	return s
}

// renderMain renders the header, body and command bar.
func (m Model) renderMain() string {
	header := m.renderHeader()
	footer := m.renderCommandBar()

	var body string
	switch m.currentView {
	case ViewLogs:
		body = m.renderLogs()
	default:
		body = m.renderLookup()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// renderHeader renders the title row with the current phase badge.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	title := styles.Logo.Render("dexview")
	badge := styles.PhaseStyle(m.snapshot.Phase).Render(strings.ToUpper(m.snapshot.Phase.String()))

	parts := []string{title, badge}
	if m.snapshot.Species != "" {
		parts = append(parts, styles.Text.Render(m.snapshot.Species))
	}
	if !m.snapshot.UpdatedAt.IsZero() {
		parts = append(parts, styles.FaintText.Render(m.snapshot.UpdatedAt.Format("15:04:05")))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

func (m Model) renderLookup() string {
	styles := m.theme.Styles()
	listWidth, panelWidth, bodyHeight := m.layout()

	left := lipgloss.NewStyle().Width(listWidth).Height(bodyHeight).Render(m.species.View())

	panelContent := lipgloss.JoinVertical(lipgloss.Left, m.renderLoading(), m.output.View())
	panel := styles.Panel
	if m.snapshot.Loading {
		panel = styles.PanelFocus
	}
	out := panel.
		Width(max(panelWidth-2, 0)).
		Height(max(bodyHeight-2, 0)).
		Render(panelContent)

	if m.width < LayoutCompactWidth {
		return lipgloss.JoinVertical(lipgloss.Left, left, out)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, out)
}

// renderLoading renders the loading indicator line. It is blank while the
// loading flag is down.
func (m Model) renderLoading() string {
	if !m.snapshot.Loading {
		return ""
	}
	return m.spinner.View() + " " + m.theme.Styles().InfoText.Render("Loading...")
}

// renderOutput renders the output region text for the current snapshot.
func (m Model) renderOutput() string {
	styles := m.theme.Styles()
	switch m.snapshot.Phase {
	case state.PhaseFailure:
		return styles.DangerText.Render(m.snapshot.Output)
	case state.PhaseSuccess:
		return styles.SuccessText.Render(m.snapshot.Output)
	case state.PhaseEmpty:
		return styles.FaintText.Render("Select a species and press enter.")
	default:
		return ""
	}
}

func (m Model) renderLogs() string {
	styles := m.theme.Styles()
	_, _, bodyHeight := m.layout()
	title := styles.AccentText.Render("Logs") + "  " + styles.FaintText.Render(truncate(m.logFile, max(m.width-12, 8)))
	return styles.Panel.
		Width(max(m.width-2, 0)).
		Height(max(bodyHeight-2, 0)).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, m.logView.View()))
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	type cmd struct{ key, desc string }
	var commands []cmd
	switch m.currentView {
	case ViewLogs:
		commands = []cmd{
			{"r", "Reload"},
			{"pgup/pgdn", "Scroll"},
			{"esc", "Back"},
			{"?", "More"},
		}
	default:
		commands = []cmd{
			{"enter", "Look up"},
			{"x", "Clear"},
			{"j/k", "Navigate"},
			{"l", "Logs"},
			{"?", "More"},
		}
	}

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments, styles.AccentText.Render(c.key)+":"+styles.MutedText.Render(c.desc))
	}
	segments = append(segments, styles.AccentText.Render("T")+":"+styles.FaintText.Render(m.theme.Name))

	return styles.Footer.Width(m.width).Render(strings.Join(segments, "  "))
}
