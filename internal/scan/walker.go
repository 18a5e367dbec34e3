package scan

import (
	"os"
	"path/filepath"
)

// Walk traverses the target's root folder and returns the paths of
// regular files passing the extension filter, in traversal order.
// Unreadable directories are skipped and reported as soft errors; a
// fresh traversal is started on every call.
func Walk(target Target) ([]string, []WalkError) {
	var paths []string
	var soft []WalkError

	_ = filepath.WalkDir(target.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			// Skip directories we can't access
			soft = append(soft, WalkError{Path: path, Err: err})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if !target.Recursive && path != target.Root {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if target.wantsFile(d.Name()) {
			paths = append(paths, path)
		}
		return nil
	})

	return paths, soft
}
