package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/burrow/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// Styled output is only produced for terminals; otherwise the markdown is rendered without colors.
func NewRenderer(styled bool) (func(string) (string, error), error) {
	opt := glamour.WithStandardStyle("notty")
	if styled {
		// Automatically detect light/dark background
		opt = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(100))
	if err != nil {
		return nil, err
	}
	return r.Render, nil
}

// StateMarkdown describes a game state as markdown: a player table followed by the track.
func StateMarkdown(room string, state domain.GameState) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Room `%s`\n\n", room)
	sb.WriteString("| Player | Color | Field | Carrots | Salads | Cards |\n")
	sb.WriteString("|---|---|---:|---:|---:|---|\n")
	for _, p := range []domain.Player{state.Red, state.Blue} {
		cards := make([]string, 0, len(p.Cards))
		for _, c := range p.Cards {
			cards = append(cards, c.Type)
		}
		fmt.Fprintf(&sb, "| %s | %s | %d | %d | %d | %s |\n",
			escapeCell(p.DisplayName), p.Color, p.Index, p.Carrots, p.Salads, strings.Join(cards, ", "))
	}

	sb.WriteString("\n## Track\n\n")
	sb.WriteString("| Field | Type | Occupied |\n")
	sb.WriteString("|---:|---|---|\n")
	for _, f := range state.Board.Fields {
		var who []string
		if f.Index == state.Red.Index {
			who = append(who, "red")
		}
		if f.Index == state.Blue.Index {
			who = append(who, "blue")
		}
		fmt.Fprintf(&sb, "| %d | %s | %s |\n", f.Index, f.Type, strings.Join(who, ", "))
	}
	return sb.String()
}

var cellEscaper = strings.NewReplacer("|", `\|`, "*", `\*`, "_", `\_`)

func escapeCell(s string) string {
	return cellEscaper.Replace(s)
}
