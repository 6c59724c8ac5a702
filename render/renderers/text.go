package renderers

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapText breaks a paragraph into lines of at most width display
// columns, on word boundaries where possible
func wrapText(s string, width int) []string {
	if width < 1 {
		return nil
	}

	var lines []string
	for _, word := range strings.Fields(s) {
		if len(lines) == 0 {
			lines = append(lines, word)
			continue
		}

		last := lines[len(lines)-1]
		if runewidth.StringWidth(last)+1+runewidth.StringWidth(word) <= width {
			lines[len(lines)-1] = last + " " + word
			continue
		}
		lines = append(lines, word)
	}

	// Hard-break any single word wider than the line
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		for runewidth.StringWidth(line) > width {
			head := runewidth.Truncate(line, width, "")
			out = append(out, head)
			line = line[len(head):]
		}
		out = append(out, line)
	}
	return out
}

// centerX returns the x offset that centers a string of the given
// display width inside total columns
func centerX(total int, s string) int {
	x := (total - runewidth.StringWidth(s)) / 2
	if x < 0 {
		x = 0
	}
	return x
}
