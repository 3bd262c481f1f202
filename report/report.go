package report

import (
	"fmt"
	"hunt/agent"
	"hunt/dracula"
	"hunt/game"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	styleTitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	styleLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Width(8)

	styleMove = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228")).
			Bold(true)

	styleDim = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// Render draws a decision and the view it was made from as a boxed summary.
func Render(d agent.Decision, v *dracula.View) string {
	title := styleTitle.Render(fmt.Sprintf("Dracula, round %d", v.Round()))
	status := styleDim.Render(fmt.Sprintf("score %d | blood %d", v.Score(), v.Health(game.Dracula)))

	lines := []string{
		title + "  " + status,
		row("at", v.WhereAmI().String()),
		row("trail", trailLine(v.Trail())),
		row("hunters", huntersLine(v)),
		row("legal", movesLine(d.Legal)),
		row("move", styleMove.Render(d.Move.String())+" "+styleDim.Render(sourceLine(d))),
	}
	return styleBox.Render(strings.Join(lines, "\n"))
}

func row(label, value string) string {
	return styleLabel.Render(label) + value
}

// trailLine lists the trail most recent first, with pseudo-moves resolved.
func trailLine(trail dracula.Trail) string {
	if trail.Len() == 0 {
		return "-"
	}
	moves, locations := trail.Moves(), trail.Locations()
	parts := make([]string, len(moves))
	for i, m := range moves {
		if m.IsLocation() {
			parts[i] = m.String()
		} else {
			parts[i] = fmt.Sprintf("%s(%s)", m, locations[i])
		}
	}
	return strings.Join(parts, " ")
}

func huntersLine(v *dracula.View) string {
	parts := make([]string, 0, len(game.Hunters()))
	for _, h := range game.Hunters() {
		parts = append(parts, fmt.Sprintf("%s:%s", h.String()[:1], v.Location(h)))
	}
	return strings.Join(parts, " ")
}

func movesLine(moves []game.Move) string {
	if len(moves) == 0 {
		return "-"
	}
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

func sourceLine(d agent.Decision) string {
	if d.Source == agent.SourceHotspot || d.Source == agent.SourceFallback {
		return fmt.Sprintf("%s, sequence %d %s", d.Source, d.Step.Sequence, d.Step.Status)
	}
	return d.Source.String()
}
