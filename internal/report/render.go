package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Render writes the summary as a human-readable table. For compare
// mode, filter restricts the rows shown (empty shows all); the footer
// counters always describe the full scan.
func (s *Summary) Render(w io.Writer, filter Status) {
	if s.Mode == ModeSearch {
		s.renderSearch(w)
	} else {
		s.renderCompare(w, filter)
	}

	if len(s.Warnings) > 0 {
		fmt.Fprintf(w, "\nWarnings (%d):\n", len(s.Warnings))
		for _, warn := range s.Warnings {
			if warn.Path != "" {
				fmt.Fprintf(w, "  %s: %s\n", warn.Path, warn.Message)
			} else {
				fmt.Fprintf(w, "  %s\n", warn.Message)
			}
		}
	}
}

func (s *Summary) renderSearch(w io.Writer) {
	for _, m := range s.Matches {
		fmt.Fprintf(w, "%s [line %d]: %s\n", s.rel(m.Path), m.Line, strings.TrimSpace(m.Text))
	}
	fmt.Fprintf(w, "\nFound %d matches in %d file(s)\n", s.Stats.TotalMatches, s.Stats.TotalFiles)
}

func (s *Summary) renderCompare(w io.Writer, filter Status) {
	rows := s.FilterOutcomes(filter)

	width := 0
	for _, o := range rows {
		if n := len(s.rel(o.Path)); n > width {
			width = n
		}
	}

	for _, o := range rows {
		fmt.Fprintf(w, "%-*s  %s", width, s.rel(o.Path), statusLabel(o.Status))
		if o.UnequalCount != nil {
			fmt.Fprintf(w, " (unequal: %d)", *o.UnequalCount)
		}
		if o.Reason != "" {
			fmt.Fprintf(w, " (%s)", o.Reason)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "\nScanned %d files: %d passed, %d failed, %d unreadable\n",
		s.Stats.TotalFiles, s.Stats.Passed, s.Stats.Failed, s.Stats.Unreadable)
}

// rel shortens a detail path relative to the scan root for display.
func (s *Summary) rel(path string) string {
	rel, err := filepath.Rel(s.Root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

func statusLabel(status Status) string {
	switch status {
	case StatusPassed:
		return color.New(color.FgGreen).Sprint(string(status))
	case StatusFailed:
		return color.New(color.FgRed).Sprint(string(status))
	default:
		return color.New(color.FgYellow).Sprint(string(status))
	}
}
