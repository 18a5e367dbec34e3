package scan

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/sasqc/qcheck/internal/report"
)

// PickMatch presents an interactive selector over search matches and
// returns the chosen one.
func PickMatch(matches []report.Match) (*report.Match, error) {
	if len(matches) == 0 {
		return nil, nil
	}

	options := make([]huh.Option[int], len(matches))
	for i, m := range matches {
		label := fmt.Sprintf("%s [line %d]: %s", filepath.Base(m.Path), m.Line, strings.TrimSpace(m.Text))
		options[i] = huh.NewOption(label, i)
	}

	var selected int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Select a match to open").
				Description("Use / to filter, enter to open in editor").
				Options(options...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}
	return &matches[selected], nil
}

// PickOutcome presents an interactive selector over compare outcomes
// and returns the chosen one.
func PickOutcome(outcomes []report.Outcome) (*report.Outcome, error) {
	if len(outcomes) == 0 {
		return nil, nil
	}

	options := make([]huh.Option[int], len(outcomes))
	for i, o := range outcomes {
		label := fmt.Sprintf("%s: %s", filepath.Base(o.Path), o.Status)
		if o.UnequalCount != nil {
			label = fmt.Sprintf("%s (unequal: %d)", label, *o.UnequalCount)
		}
		options[i] = huh.NewOption(label, i)
	}

	var selected int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Select a report to open").
				Description("Use / to filter, enter to open in editor").
				Options(options...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}
	return &outcomes[selected], nil
}
