package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

func intPtr(n int) *int { return &n }

func sampleCompare() *Summary {
	s := NewSummary(ModeCompare, "/study")
	s.RecordOutcome(Outcome{Path: "/study/a.lst", Status: StatusPassed, UnequalCount: intPtr(0)})
	s.RecordOutcome(Outcome{Path: "/study/b.lst", Status: StatusFailed, UnequalCount: intPtr(5)})
	s.RecordOutcome(Outcome{Path: "/study/c.pdf", Status: StatusUnreadable, Reason: "pdf-parse-failed"})
	s.RecordOutcome(Outcome{Path: "/study/d.lst", Status: StatusPassed})
	return s
}

func TestCountersMatchDetails(t *testing.T) {
	s := sampleCompare()

	if s.Stats.TotalFiles != len(s.Outcomes) {
		t.Errorf("TotalFiles %d != details %d", s.Stats.TotalFiles, len(s.Outcomes))
	}
	if s.Stats.Passed != len(s.FilterOutcomes(StatusPassed)) {
		t.Errorf("Passed counter %d != passed subset %d", s.Stats.Passed, len(s.FilterOutcomes(StatusPassed)))
	}
	if s.Stats.Failed != len(s.FilterOutcomes(StatusFailed)) {
		t.Errorf("Failed counter %d != failed subset %d", s.Stats.Failed, len(s.FilterOutcomes(StatusFailed)))
	}
	if s.Stats.Unreadable != len(s.FilterOutcomes(StatusUnreadable)) {
		t.Errorf("Unreadable counter %d != unreadable subset %d", s.Stats.Unreadable, len(s.FilterOutcomes(StatusUnreadable)))
	}
}

func TestRecordSearchCountsFiles(t *testing.T) {
	s := NewSummary(ModeSearch, "/study")
	s.RecordSearch([]Match{
		{Path: "/study/a.log", Line: 3, Text: "ERROR: disk full"},
		{Path: "/study/a.log", Line: 9, Text: "error again"},
	})
	s.RecordSearch(nil) // file with zero matches still counts

	if s.Stats.TotalFiles != 2 {
		t.Errorf("Expected totalFiles=2, got %d", s.Stats.TotalFiles)
	}
	if s.Stats.MatchedFiles != 1 {
		t.Errorf("Expected matchedFiles=1, got %d", s.Stats.MatchedFiles)
	}
	if s.Stats.TotalMatches != 2 {
		t.Errorf("Expected totalMatches=2, got %d", s.Stats.TotalMatches)
	}
}

func TestFilterOutcomesDoesNotMutate(t *testing.T) {
	s := sampleCompare()
	before := len(s.Outcomes)

	failed := s.FilterOutcomes(StatusFailed)
	if len(failed) != 1 || failed[0].Path != "/study/b.lst" {
		t.Errorf("Unexpected failed subset: %+v", failed)
	}

	all := s.FilterOutcomes("")
	all[0].Path = "mutated"

	if len(s.Outcomes) != before {
		t.Error("Filter view changed detail count")
	}
	if s.Outcomes[0].Path != "/study/a.lst" {
		t.Error("Filter view aliased the underlying summary")
	}
}

func TestFilterOutcomesPreservesOrder(t *testing.T) {
	s := NewSummary(ModeCompare, "/study")
	s.RecordOutcome(Outcome{Path: "z.lst", Status: StatusPassed})
	s.RecordOutcome(Outcome{Path: "a.lst", Status: StatusPassed})

	passed := s.FilterOutcomes(StatusPassed)
	if passed[0].Path != "z.lst" || passed[1].Path != "a.lst" {
		t.Errorf("Expected enumeration order preserved, got %+v", passed)
	}
}

func TestYAMLWriterRoundTrip(t *testing.T) {
	s := sampleCompare()
	s.AddWarning("/study/sub", "skipped: permission denied")

	var buf bytes.Buffer
	if err := NewYAMLSummaryWriter(&buf).WriteSummary(s); err != nil {
		t.Fatalf("WriteSummary failed: %v", err)
	}

	var decoded Summary
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid YAML: %v", err)
	}
	if decoded.Stats.TotalFiles != 4 || decoded.Stats.Failed != 1 {
		t.Errorf("Round trip lost counters: %+v", decoded.Stats)
	}
	if len(decoded.Outcomes) != 4 {
		t.Errorf("Round trip lost outcomes: %d", len(decoded.Outcomes))
	}
	if decoded.Outcomes[1].UnequalCount == nil || *decoded.Outcomes[1].UnequalCount != 5 {
		t.Errorf("Round trip lost unequal count: %+v", decoded.Outcomes[1])
	}
}

func TestJSONWriterOutput(t *testing.T) {
	s := sampleCompare()

	var buf bytes.Buffer
	if err := NewJSONSummaryWriter(&buf).WriteSummary(s); err != nil {
		t.Fatalf("WriteSummary failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded["mode"] != "compare" {
		t.Errorf("Expected mode=compare, got %v", decoded["mode"])
	}
}

func TestNewWriterUnknownFormat(t *testing.T) {
	if _, err := NewWriter("xml", &bytes.Buffer{}); err == nil {
		t.Error("Expected error for unsupported format")
	}
	if _, err := NewWriter("yml", &bytes.Buffer{}); err != nil {
		t.Errorf("Expected yml accepted as alias, got %v", err)
	}
}

func TestRenderCompareFooter(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	var buf bytes.Buffer
	sampleCompare().Render(&buf, "")

	out := buf.String()
	if !strings.Contains(out, "Scanned 4 files: 2 passed, 1 failed, 1 unreadable") {
		t.Errorf("Missing summary footer in:\n%s", out)
	}
	if !strings.Contains(out, "b.lst") || !strings.Contains(out, "(unequal: 5)") {
		t.Errorf("Missing failed row detail in:\n%s", out)
	}
}

func TestRenderCompareFilterKeepsFooterCounters(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	var buf bytes.Buffer
	sampleCompare().Render(&buf, StatusFailed)

	out := buf.String()
	if strings.Contains(out, "a.lst") {
		t.Errorf("Filtered render should not show passed rows:\n%s", out)
	}
	if !strings.Contains(out, "Scanned 4 files") {
		t.Errorf("Footer should describe the full scan:\n%s", out)
	}
}

func TestRenderSearchFooter(t *testing.T) {
	s := NewSummary(ModeSearch, "/study")
	s.Term = "error"
	s.RecordSearch([]Match{{Path: "/study/a.log", Line: 3, Text: "ERROR: disk full"}})
	s.RecordSearch(nil)

	var buf bytes.Buffer
	s.Render(&buf, "")

	out := buf.String()
	if !strings.Contains(out, "a.log [line 3]: ERROR: disk full") {
		t.Errorf("Missing match row in:\n%s", out)
	}
	if !strings.Contains(out, "Found 1 matches in 2 file(s)") {
		t.Errorf("Missing summary footer in:\n%s", out)
	}
}
