package cli

import (
	"fmt"
	"image/color"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/regiolab/regio/pkg/render"
)

// frameMsg carries one growth round's grid state into the TUI.
type frameMsg struct {
	rows      [][]int
	remaining int
}

// doneMsg signals that growth finished (or failed).
type doneMsg struct {
	err error
}

// watchModel is the bubbletea model for live growth display. Each cell pair
// is drawn as a half-block character so two grid rows share one terminal row.
type watchModel struct {
	rows      [][]int
	remaining int
	total     int
	frames    int
	done      bool
	err       error

	palette render.Palette
	styles  map[[2]int]lipgloss.Style
}

// newWatchModel creates a model for a grid of the given size.
func newWatchModel(width, height int) watchModel {
	return watchModel{
		total:  width * height,
		styles: make(map[[2]int]lipgloss.Style),
	}
}

func (m watchModel) Init() tea.Cmd {
	return nil
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case frameMsg:
		m.rows = msg.rows
		m.remaining = msg.remaining
		m.frames++
		if m.palette == nil {
			m.palette = render.NewPalette(labelsIn(msg.rows))
		}
	case doneMsg:
		m.done = true
		m.err = msg.err
	}
	return m, nil
}

func (m watchModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Region Growth"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("q quit"))
	b.WriteString("\n\n")

	for y := 0; y+1 < len(m.rows); y += 2 {
		top, bottom := m.rows[y], m.rows[y+1]
		for x := range top {
			b.WriteString(m.cellStyle(top[x], bottom[x]).Render("▀"))
		}
		b.WriteString("\n")
	}
	if len(m.rows)%2 == 1 {
		last := m.rows[len(m.rows)-1]
		for x := range last {
			b.WriteString(m.cellStyle(last[x], 0).Render("▀"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	labeled := m.total - m.remaining
	status := fmt.Sprintf("  round %d · %d/%d cells labeled", m.frames, labeled, m.total)
	if m.done {
		if m.err != nil {
			status = "  stopped: " + m.err.Error()
		} else {
			status += " · " + StyleSuccess.Render("complete")
		}
	}
	b.WriteString(StyleDim.Render(status))
	b.WriteString("\n")

	return b.String()
}

// cellStyle returns a style drawing the top label as foreground and the
// bottom label as background. Styles are memoized per label pair.
func (m watchModel) cellStyle(top, bottom int) lipgloss.Style {
	key := [2]int{top, bottom}
	if s, ok := m.styles[key]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexRGBA(m.palette.Color(top)))).
		Background(lipgloss.Color(hexRGBA(m.palette.Color(bottom))))
	m.styles[key] = s
	return s
}

func hexRGBA(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// labelsIn collects the distinct nonzero labels present in rows.
func labelsIn(rows [][]int) []int {
	seen := make(map[int]bool)
	var labels []int
	for _, row := range rows {
		for _, v := range row {
			if v != 0 && !seen[v] {
				seen[v] = true
				labels = append(labels, v)
			}
		}
	}
	return labels
}
