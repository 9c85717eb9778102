package emit

import "strings"

// Reindent normalizes a docstring or code block to the given indent
// column: the common leading whitespace of non-blank lines is stripped,
// every non-blank line is re-indented with spaces, blank lines stay
// empty, and the result always ends with a newline unless the input was
// empty.
func Reindent(text string, spaces int) string {
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	common := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lead := len(line) - len(strings.TrimLeft(line, " \t"))
		if common == -1 || lead < common {
			common = lead
		}
	}
	if common < 0 {
		common = 0
	}

	pad := strings.Repeat(" ", spaces)

	var b strings.Builder
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString(pad)
		b.WriteString(line[common:])
		b.WriteString("\n")
	}

	return b.String()
}
