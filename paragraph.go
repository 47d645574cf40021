package somajo

import (
	"bufio"
	"io"
	"strings"
)

// How paragraphs are separated in plain text input.
const (
	// SingleNewline treats every non-empty line as one paragraph.
	SingleNewline = "single_newline"
	// EmptyLine treats blank lines as paragraph separators; a paragraph
	// may span several lines.
	EmptyLine = "empty_line"
)

// Paragraphs reads plain text from r and splits it into paragraphs
// according to separator. Blank-line runs never produce empty paragraphs.
func Paragraphs(r io.Reader, separator string) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var paragraphs []string
	switch separator {
	case SingleNewline:
		for scanner.Scan() {
			if line := scanner.Text(); strings.TrimSpace(line) != "" {
				paragraphs = append(paragraphs, line)
			}
		}
	case EmptyLine:
		var current []string
		for scanner.Scan() {
			line := scanner.Text()
			if strings.TrimSpace(line) == "" {
				if len(current) > 0 {
					paragraphs = append(paragraphs, strings.Join(current, "\n"))
					current = current[:0]
				}
				continue
			}
			current = append(current, line)
		}
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, "\n"))
		}
	default:
		return nil, ErrUnknownSeparator
	}
	return paragraphs, scanner.Err()
}
