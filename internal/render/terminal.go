package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lifewatch/internal/status"
	"lifewatch/pkg/core"
)

const (
	aliveGlyph = "█"
	deadGlyph  = "·"
)

// Terminal renders boards and status panels as styled text. Colors are only
// emitted when the target writer is a color-capable terminal.
type Terminal struct {
	alive  lipgloss.Style
	dead   lipgloss.Style
	board  lipgloss.Style
	panel  lipgloss.Style
	header lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	note   lipgloss.Style
}

// NewTerminal builds a renderer whose color profile matches w.
func NewTerminal(w io.Writer) *Terminal {
	r := lipgloss.NewRenderer(w)
	return &Terminal{
		alive:  r.NewStyle().Foreground(lipgloss.Color("82")),
		dead:   r.NewStyle().Foreground(lipgloss.Color("238")),
		board:  r.NewStyle().Padding(0, 1),
		panel:  r.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2),
		header: r.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),
		label:  r.NewStyle().Foreground(lipgloss.Color("245")).Width(12),
		value:  r.NewStyle().Foreground(lipgloss.Color("252")),
		note:   r.NewStyle().Foreground(lipgloss.Color("220")),
	}
}

// Board renders one line per row.
func (t *Terminal) Board(v core.View) string {
	aliveCell := t.alive.Render(aliveGlyph)
	deadCell := t.dead.Render(deadGlyph)
	var b strings.Builder
	for y := 0; y < v.Rows(); y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < v.Columns(); x++ {
			if v.At(x, y) == core.Alive {
				b.WriteString(aliveCell)
				continue
			}
			b.WriteString(deadCell)
		}
	}
	return b.String()
}

// Status renders the panel groups and the last message.
func (t *Terminal) Status(s status.Snapshot) string {
	var lines []string
	for i, g := range s.Groups {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, t.header.Render(g.Name))
		for _, f := range g.Fields {
			lines = append(lines, t.label.Render(f.Label)+t.value.Render(f.Value))
		}
	}
	if s.Message != "" {
		lines = append(lines, "", t.note.Render(s.Message))
	}
	return strings.Join(lines, "\n")
}

// Frame places the board and the status panel side by side.
func (t *Terminal) Frame(v core.View, s status.Snapshot) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, t.board.Render(t.Board(v)), t.panel.Render(t.Status(s)))
}
