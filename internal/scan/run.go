package scan

import (
	"fmt"
	"os"
	"strings"

	"github.com/sasqc/qcheck/internal/extract"
	"github.com/sasqc/qcheck/internal/report"
)

// RunSearch scans the target for lines containing term. Invalid input
// (empty term, missing root) is rejected before any file is read; a
// file that fails extraction is recorded as a warning and the scan
// continues.
func RunSearch(target Target, term string) (*report.Summary, error) {
	if strings.TrimSpace(term) == "" {
		return nil, ErrEmptyTerm
	}
	if err := checkRoot(target.Root); err != nil {
		return nil, err
	}

	paths, walkErrs := Walk(target)

	summary := report.NewSummary(report.ModeSearch, target.Root)
	summary.Term = term
	for _, we := range walkErrs {
		summary.AddWarning(we.Path, fmt.Sprintf("skipped: %v", we.Err))
	}

	for _, path := range paths {
		content, err := extract.Text(path)
		if err != nil {
			summary.AddWarning(path, fmt.Sprintf("unreadable: %v", err))
			summary.RecordSearch(nil)
			continue
		}
		summary.RecordSearch(SearchContent(path, content, term))
	}

	return summary, nil
}

// RunCompare scans the target and classifies every compare report as
// Passed, Failed, or Unreadable. One unreadable file never aborts the
// batch.
func RunCompare(target Target) (*report.Summary, error) {
	if err := checkRoot(target.Root); err != nil {
		return nil, err
	}

	paths, walkErrs := Walk(target)

	summary := report.NewSummary(report.ModeCompare, target.Root)
	for _, we := range walkErrs {
		summary.AddWarning(we.Path, fmt.Sprintf("skipped: %v", we.Err))
	}

	for _, path := range paths {
		content, err := extract.Text(path)
		if err != nil {
			reason := "read-failed"
			if xerr, ok := err.(*extract.Error); ok {
				reason = xerr.Reason
			}
			summary.RecordOutcome(report.Outcome{
				Path:   path,
				Status: report.StatusUnreadable,
				Reason: reason,
			})
			continue
		}
		summary.RecordOutcome(Classify(path, content))
	}

	return summary, nil
}

// checkRoot validates the scan root before anything is read.
func checkRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("cannot access folder: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a folder: %s", root)
	}
	return nil
}
