package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Error represents a per-file extraction failure. One file failing to
// extract never aborts a batch; callers record the failure and move on.
type Error struct {
	Path   string
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Func extracts the textual content of a single file.
type Func func(path string) (string, error)

// ForPath returns the extractor for a file based on its extension.
// PDF files get page-text extraction; everything else (.sas, .log,
// .txt, .lst) is read as plain text.
func ForPath(path string) Func {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return PDF
	default:
		return PlainText
	}
}

// Text extracts content from path using the extractor for its extension.
func Text(path string) (string, error) {
	return ForPath(path)(path)
}

// PlainText reads a file as text. Invalid UTF-8 sequences are replaced
// rather than treated as errors, since SAS logs frequently carry stray
// Latin-1 bytes.
func PlainText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &Error{Path: path, Reason: "read-failed", Err: err}
	}
	return strings.ToValidUTF8(string(data), "�"), nil
}
