package section

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// File permission constant.
const filePerm = 0o644

// ErrMarkers reports a malformed marker layout in the destination file:
// a lone begin or end marker, or an end marker at or before its begin
// marker. The file cannot be updated safely in that state.
var ErrMarkers = errors.New("malformed section markers")

// Placement selects where a missing section is inserted.
type Placement int

const (
	// AtEnd appends the section to the end of the file.
	AtEnd Placement = iota

	// AfterHeader inserts the section right after the leading comment
	// header of the file.
	AfterHeader
)

// String returns a human-readable placement name.
func (p Placement) String() string {
	switch p {
	case AtEnd:
		return "at-end"
	case AfterHeader:
		return "after-header"
	default:
		return "unknown"
	}
}

// Markers returns the begin and end sentinel lines for a section name.
// The name is embedded in distinct sentinel text so multiple sections
// can coexist in one file without collision.
func Markers(name string) (begin, end string) {
	return fmt.Sprintf("#-- begin-%s --#", name), fmt.Sprintf("#-- end-%s --#", name)
}

// EnsureFile creates the destination file with the given boilerplate
// header and optional top-level docstring if it does not exist yet.
// An existing file is left untouched.
func EnsureFile(path, header, docstring string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking destination %s: %w", path, err)
	}

	var b strings.Builder
	b.WriteString(header)
	if docstring != "" {
		if !strings.HasSuffix(docstring, "\n") {
			docstring += "\n"
		}
		b.WriteString("\n\"\"\"\n" + docstring + "\"\"\"\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), filePerm); err != nil {
		return fmt.Errorf("creating destination %s: %w", path, err)
	}

	return nil
}

// Write replaces the named section of the destination file with body.
//
// When both markers are present, the lines strictly between them are
// replaced and everything else is preserved byte-for-byte. When the
// section is missing it is inserted according to placement. The whole
// file is rewritten in one pass.
func Write(path, name, body string, placement Placement) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading destination %s: %w", path, err)
	}

	updated, err := Splice(string(data), name, body, placement)
	if err != nil {
		return fmt.Errorf("section %q in %s: %w", name, path, err)
	}

	if err := os.WriteFile(path, []byte(updated), filePerm); err != nil {
		return fmt.Errorf("writing destination %s: %w", path, err)
	}

	return nil
}

// Splice performs the section replacement on in-memory content. It is
// the pure core of Write.
func Splice(content, name, body string, placement Placement) (string, error) {
	begin, end := Markers(name)
	lines := splitLines(content)

	beginIdx, endIdx := -1, -1
	for i, line := range lines {
		if strings.HasPrefix(line, begin) {
			beginIdx = i
		}
		if strings.HasPrefix(line, end) {
			endIdx = i
		}
	}

	if body != "" && !strings.HasSuffix(body, "\n") {
		body += "\n"
	}

	switch {
	case beginIdx == -1 && endIdx == -1:
		lines = insertSection(lines, begin, body, end, placement)

	case beginIdx == -1 || endIdx == -1:
		return "", fmt.Errorf("%w: lone marker", ErrMarkers)

	case endIdx <= beginIdx:
		return "", fmt.Errorf("%w: end marker at line %d does not follow begin marker at line %d",
			ErrMarkers, endIdx+1, beginIdx+1)

	default:
		// Replace the lines strictly between the markers, keeping the
		// marker lines themselves.
		replaced := make([]string, 0, beginIdx+2+len(lines)-endIdx)
		replaced = append(replaced, lines[:beginIdx+1]...)
		replaced = append(replaced, body)
		replaced = append(replaced, lines[endIdx:]...)
		lines = replaced
	}

	return strings.Join(lines, ""), nil
}

// insertSection adds a brand new section to the file lines.
func insertSection(lines []string, begin, body, end string, placement Placement) []string {
	block := []string{begin + "\n", body, end + "\n"}

	if placement == AtEnd {
		return append(lines, block...)
	}

	// AfterHeader: skip the run of leading comment lines and the first
	// line terminating it (usually the blank separator after the
	// header), then insert the block there.
	at := len(lines)
	for i, line := range lines {
		if !strings.HasPrefix(line, "#") {
			at = i + 1
			break
		}
	}

	inserted := make([]string, 0, len(lines)+len(block))
	inserted = append(inserted, lines[:at]...)
	inserted = append(inserted, block...)
	inserted = append(inserted, lines[at:]...)
	return inserted
}

// splitLines splits content into lines keeping the terminators, so
// joining the slice reproduces the content byte-for-byte.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}

	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
