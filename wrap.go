package labels

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// NoWrap is the wrap width that keeps the whole text on one line.
const NoWrap = 0

// DefaultWrapWidths are the wrap widths tried in turn when placing a label, from the full text on one line to a narrow column.
var DefaultWrapWidths = []int{NoWrap, 30, 15}

// Wrap collapses whitespace and breaks s into lines of at most width columns, breaking at spaces where possible and within words that are longer than width. A width below one keeps everything on one line.
func Wrap(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	if width < 1 || ansi.StringWidth(s) <= width {
		return s
	}

	lines := []string{}
	for _, line := range strings.Split(ansi.Wrap(s, width, ""), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
