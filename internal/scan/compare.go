package scan

import (
	"regexp"
	"strconv"

	"github.com/sasqc/qcheck/internal/report"
)

// Phrase is the diagnostic marker PROC COMPARE prints before the count
// of observations with unequal values.
const Phrase = "Number of Observations with Some Compared Variables Unequal"

var phraseRE = regexp.MustCompile(`(?i)` + Phrase)

// Classify decides the Pass/Fail status of one compare report from its
// extracted content. A report without the diagnostic phrase is a clean
// compare and passes. When the phrase is present, the first occurrence
// is authoritative: a count of zero passes, a positive count fails, and
// an unparseable count token fails with no count so the file surfaces
// for manual review rather than silently passing.
func Classify(path, content string) report.Outcome {
	loc := phraseRE.FindStringIndex(content)
	if loc == nil {
		return report.Outcome{Path: path, Status: report.StatusPassed}
	}

	count, ok := parseCount(content[loc[1]:])
	if !ok {
		return report.Outcome{Path: path, Status: report.StatusFailed, Reason: "count not parseable"}
	}

	status := report.StatusFailed
	if count == 0 {
		status = report.StatusPassed
	}
	return report.Outcome{Path: path, Status: status, UnequalCount: &count}
}

// parseCount reads the integer token following the diagnostic phrase,
// skipping the ":" separator and surrounding whitespace. Only a plain
// run of digits is accepted.
func parseCount(s string) (int, bool) {
	i := 0
	for i < len(s) && (s[i] == ':' || s[i] == ' ' || s[i] == '\t' || s[i] == '\r' || s[i] == '\n') {
		i++
	}

	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0, false
	}

	n, err := strconv.Atoi(s[i:j])
	if err != nil {
		return 0, false
	}
	return n, true
}
