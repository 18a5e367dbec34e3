package report

// Mode identifies which kind of scan produced a summary.
type Mode string

const (
	ModeSearch  Mode = "search"
	ModeCompare Mode = "compare"
)

// Status is the classification of one PROC COMPARE report file.
type Status string

const (
	StatusPassed     Status = "Passed"
	StatusFailed     Status = "Failed"
	StatusUnreadable Status = "Unreadable"
)

// Match is one line containing the search term.
type Match struct {
	Path string `json:"path" yaml:"path"`
	Line int    `json:"line" yaml:"line"`
	Text string `json:"text" yaml:"text"`
}

// Outcome is the classification of one compare report file.
// UnequalCount is nil when the diagnostic phrase was absent, the count
// token was unparseable, or the file was unreadable.
type Outcome struct {
	Path         string `json:"path" yaml:"path"`
	Status       Status `json:"status" yaml:"status"`
	UnequalCount *int   `json:"unequalCount,omitempty" yaml:"unequalCount,omitempty"`
	Reason       string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Warning is a non-fatal problem encountered during a scan, such as an
// unreadable directory or a file that failed extraction in search mode.
type Warning struct {
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	Message string `json:"message" yaml:"message"`
}

// Stats holds the aggregate counters for a scan. The counters always
// equal the cardinality of the matching subset of the summary details.
type Stats struct {
	TotalFiles   int `json:"totalFiles" yaml:"totalFiles"`
	MatchedFiles int `json:"matchedFiles,omitempty" yaml:"matchedFiles,omitempty"`
	TotalMatches int `json:"totalMatches,omitempty" yaml:"totalMatches,omitempty"`
	Passed       int `json:"passed,omitempty" yaml:"passed,omitempty"`
	Failed       int `json:"failed,omitempty" yaml:"failed,omitempty"`
	Unreadable   int `json:"unreadable,omitempty" yaml:"unreadable,omitempty"`
}

// Summary is the complete result of one scan. It is rebuilt from
// scratch on every run; details keep the enumerator's yield order.
type Summary struct {
	Mode     Mode      `json:"mode" yaml:"mode"`
	Root     string    `json:"root" yaml:"root"`
	Term     string    `json:"term,omitempty" yaml:"term,omitempty"`
	Matches  []Match   `json:"matches,omitempty" yaml:"matches,omitempty"`
	Outcomes []Outcome `json:"outcomes,omitempty" yaml:"outcomes,omitempty"`
	Warnings []Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Stats    Stats     `json:"stats" yaml:"stats"`
}

// NewSummary creates an empty summary for a scan of root.
func NewSummary(mode Mode, root string) *Summary {
	return &Summary{Mode: mode, Root: root}
}

// RecordSearch records the matches found in one file. Files with zero
// matches still count toward TotalFiles.
func (s *Summary) RecordSearch(matches []Match) {
	s.Stats.TotalFiles++
	if len(matches) == 0 {
		return
	}
	s.Stats.MatchedFiles++
	s.Stats.TotalMatches += len(matches)
	s.Matches = append(s.Matches, matches...)
}

// RecordOutcome records the classification of one compare report file.
func (s *Summary) RecordOutcome(o Outcome) {
	s.Stats.TotalFiles++
	switch o.Status {
	case StatusPassed:
		s.Stats.Passed++
	case StatusFailed:
		s.Stats.Failed++
	case StatusUnreadable:
		s.Stats.Unreadable++
	}
	s.Outcomes = append(s.Outcomes, o)
}

// AddWarning attaches a non-fatal warning to the summary.
func (s *Summary) AddWarning(path, message string) {
	s.Warnings = append(s.Warnings, Warning{Path: path, Message: message})
}

// FilterOutcomes returns the outcomes matching status, in their
// original order. An empty status returns all outcomes. The underlying
// summary is never mutated.
func (s *Summary) FilterOutcomes(status Status) []Outcome {
	if status == "" {
		out := make([]Outcome, len(s.Outcomes))
		copy(out, s.Outcomes)
		return out
	}
	out := make([]Outcome, 0, len(s.Outcomes))
	for _, o := range s.Outcomes {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}
