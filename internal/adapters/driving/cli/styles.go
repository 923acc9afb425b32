package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// palette is the colour set for styled terminal output.
var palette = struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
}{
	Primary: lipgloss.Color("#7C3AED"),
	Muted:   lipgloss.Color("#6C7086"),
	Success: lipgloss.Color("#A6E3A1"),
	Warning: lipgloss.Color("#F9E2AF"),
}

// styles renders labels and values. The zero value prints plain text.
type styles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Muted lipgloss.Style
	Warn  lipgloss.Style
}

func plainStyles() styles {
	s := lipgloss.NewStyle()
	return styles{Title: s, Label: s, Value: s, Muted: s, Warn: s}
}

func colourStyles() styles {
	return styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(palette.Primary),
		Label: lipgloss.NewStyle().Foreground(palette.Muted).Width(14),
		Value: lipgloss.NewStyle().Foreground(palette.Success),
		Muted: lipgloss.NewStyle().Foreground(palette.Muted).Italic(true),
		Warn:  lipgloss.NewStyle().Foreground(palette.Warning),
	}
}

// stylesFor colours output only when w is a terminal.
func stylesFor(w io.Writer) styles {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return colourStyles()
	}
	return plainStyles()
}
