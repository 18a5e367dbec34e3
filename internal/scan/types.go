package scan

import (
	"path/filepath"
	"strings"
)

// SearchExts are the file types searched in text-search mode.
var SearchExts = []string{"sas", "log", "txt"}

// CompareExts are the file types checked in compare mode.
var CompareExts = []string{"pdf", "lst", "txt"}

// Target describes one scan: the root folder, the extensions to
// include (lowercase, without dot; nil means all files), and whether to
// descend into subfolders. A Target is not modified once a scan starts.
type Target struct {
	Root      string
	Exts      []string
	Recursive bool
}

// wantsFile reports whether a file name passes the extension filter.
func (t Target) wantsFile(name string) bool {
	if len(t.Exts) == 0 {
		return true
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	for _, want := range t.Exts {
		if ext == want {
			return true
		}
	}
	return false
}

// WalkError is a non-fatal error encountered while walking the tree,
// such as a permission-denied directory. It never aborts the scan.
type WalkError struct {
	Path string
	Err  error
}
