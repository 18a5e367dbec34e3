package editor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// LaunchError means the external editor could not be started. It is a
// warning to surface to the user, never a scan failure.
type LaunchError struct {
	Editor string
	Path   string
	Err    error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to open '%s' in %s: %v", e.Path, e.Editor, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Launcher opens files in an external editor.
type Launcher struct {
	Command string
	Args    []string
}

// Detect resolves which editor to use: the configured command first,
// then $VISUAL and $EDITOR, then a few common editors on PATH.
func Detect(configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}

	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor, nil
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor, nil
	}

	for _, e := range []string{"notepad++", "code", "vim", "nano"} {
		if _, err := exec.LookPath(e); err == nil {
			return e, nil
		}
	}

	return "", fmt.Errorf("no editor found. Set $EDITOR or $VISUAL, or set 'editor' in the config file")
}

// Open launches the editor on path. A positive line jumps to that line
// when the editor is known to support it.
func (l Launcher) Open(path string, line int) error {
	args := make([]string, 0, len(l.Args)+2)
	args = append(args, l.Args...)
	args = append(args, lineArgs(l.Command, path, line)...)

	cmd := exec.Command(l.Command, args...)
	if err := cmd.Start(); err != nil {
		return &LaunchError{Editor: l.Command, Path: path, Err: err}
	}
	return nil
}

// lineArgs builds the editor arguments for opening path at line. Each
// editor family spells the line hint differently; unknown editors get
// the bare path.
func lineArgs(command, path string, line int) []string {
	if line <= 0 {
		return []string{path}
	}

	base := strings.TrimSuffix(strings.ToLower(filepath.Base(command)), ".exe")
	switch base {
	case "notepad++":
		return []string{fmt.Sprintf("-n%d", line), path}
	case "code", "code-insiders":
		return []string{"--goto", fmt.Sprintf("%s:%d", path, line)}
	case "vim", "nvim", "vi", "nano", "emacs", "gedit":
		return []string{fmt.Sprintf("+%d", line), path}
	default:
		return []string{path}
	}
}
