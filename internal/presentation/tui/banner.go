package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// PrintBanner writes the ASCII banner to w. Colors are only used when w is a terminal.
func PrintBanner(w io.Writer, version string) {
	p := termenv.Ascii
	if f, ok := w.(*os.File); ok && IsTerminal(f) {
		p = termenv.ColorProfile()
	}

	// Earthy gradient, top to bottom.
	lines := []struct{ text, color string }{
		{` _                               `, "#a3e635"},
		{`| |__  _   _ _ __ _ __ _____      __`, "#84cc16"},
		{`| '_ \| | | | '__| '__/ _ \ \ /\ / /`, "#65a30d"},
		{`| |_) | |_| | |  | | | (_) \ V  V / `, "#ca8a04"},
		{`|_.__/ \__,_|_|  |_|  \___/ \_/\_/  `, "#a16207"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintf(w, "%s\n\n", p.String("  hase und igel client "+version).Faint())
}
