package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the species list and
	// output panel are stacked instead of side by side.
	LayoutCompactWidth = 70

	// SpeciesListWidth is the width of the species list in wide layouts.
	SpeciesListWidth = 24
)

// LogTailLines is the number of log lines shown in the logs view.
const LogTailLines = 500

// DefaultPollTick is the default interval between snapshot reads.
const DefaultPollTick = 150 * time.Millisecond

// chromeHeight is the number of rows taken by the header and command bar.
const chromeHeight = 2

// layout returns the list width, output panel width and body height for
// the current terminal size.
func (m Model) layout() (listWidth, panelWidth, bodyHeight int) {
	bodyHeight = max(m.height-chromeHeight, 0)
	if m.width < LayoutCompactWidth {
		return m.width, m.width, bodyHeight / 2
	}
	listWidth = SpeciesListWidth
	panelWidth = max(m.width-listWidth, 0)
	return listWidth, panelWidth, bodyHeight
}
