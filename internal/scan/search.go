package scan

import (
	"errors"
	"strings"

	"github.com/sasqc/qcheck/internal/report"
)

// ErrEmptyTerm is returned before any file is read when the search
// term is empty.
var ErrEmptyTerm = errors.New("search term must not be empty")

// SearchContent finds every line of content containing term as a
// case-insensitive substring. Each match carries the full original
// line text and its 1-based line number.
func SearchContent(path, content, term string) []report.Match {
	term = strings.ToLower(term)

	lines := strings.Split(content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	var matches []report.Match
	for i, text := range lines {
		text = strings.TrimSuffix(text, "\r")
		if strings.Contains(strings.ToLower(text), term) {
			matches = append(matches, report.Match{Path: path, Line: i + 1, Text: text})
		}
	}
	return matches
}
