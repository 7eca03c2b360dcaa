// Package text renders a published schedule as ANSI-styled plain text for
// terminal consumers (`curl` against the schedule endpoint). It offers a
// per-day talk list and a box-drawing timetable.
package text

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/text/message"
)

// Localizer provides translated strings for text rendering.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// Output is always piped over HTTP to a terminal, never to a local TTY, so
// color support cannot be auto-detected. Force an ANSI profile; the explicit
// SetColorProfile is required because lipgloss re-detects from the
// environment otherwise.
var styleRenderer = func() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard, termenv.WithProfile(termenv.ANSI))
	r.SetColorProfile(termenv.ANSI)
	return r
}()

var (
	dateStyle    = styleRenderer.NewStyle().Foreground(lipgloss.Color("3"))
	timeStyle    = styleRenderer.NewStyle().Foreground(lipgloss.Color("3"))
	titleStyle   = styleRenderer.NewStyle().Bold(true)
	speakerStyle = styleRenderer.NewStyle().Foreground(lipgloss.Color("3"))
	localeStyle  = styleRenderer.NewStyle().Faint(true)
)

func localize(loc Localizer, key message.Reference, args ...any) string {
	if loc == nil {
		if asString, ok := key.(string); ok {
			return asString
		}
		return ""
	}
	return loc.Sprintf(key, args...)
}

// padRight pads value with spaces to exactly width cells, truncating with an
// ellipsis when it is too long. Styling is applied after padding so ANSI
// escapes never disturb column alignment.
func padRight(value string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(value)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	return value + strings.Repeat(" ", width-len(runes))
}

// wrapText greedily word-wraps value into lines of at most width cells.
func wrapText(value string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var current strings.Builder
	for _, word := range strings.Fields(value) {
		wordLen := len([]rune(word))
		currentLen := len([]rune(current.String()))
		if currentLen == 0 {
			current.WriteString(word)
			continue
		}
		if currentLen+1+wordLen > width {
			lines = append(lines, current.String())
			current.Reset()
			current.WriteString(word)
			continue
		}
		current.WriteString(" ")
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
