package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/sasqc/qcheck/internal/completions"
	"github.com/sasqc/qcheck/internal/config"
	"github.com/sasqc/qcheck/internal/editor"
	"github.com/sasqc/qcheck/internal/report"
	"github.com/sasqc/qcheck/internal/scan"
)

// Version is set at build time via ldflags
var Version = "dev"

const usage = `qcheck - Text search and PROC COMPARE checker for QC review

Usage:
  qcheck search [flags] <folder> <text>   Search text in .sas/.log/.txt files
  qcheck compare [flags] <folder>         Check PROC COMPARE results in .pdf/.lst/.txt files
  qcheck open <file> [line]               Open a file in the external editor
  qcheck config                           Show effective configuration
  qcheck completions <shell>              Generate shell completions (bash/zsh/fish)
  qcheck debug                            Show debug information
  qcheck help                             Show this help message
  qcheck version                          Show version information

Search flags:
  --ext <ext>        Limit to one extension (sas, log, txt) or 'all'
  --recursive=false  Do not descend into subfolders
  --output <fmt>     Write results as yaml or json instead of a table
  --pick             Interactively pick a match and open it in the editor

Compare flags:
  --ext <ext>        Limit to one extension (pdf, lst, txt) or 'all'
  --status <s>       Show only 'passed' or 'failed' results (default all)
  --recursive=false  Do not descend into subfolders
  --output <fmt>     Write results as yaml or json instead of a table
  --pick             Interactively pick a report and open it in the editor

Compare status:
  A report passes when the phrase "Number of Observations with Some
  Compared Variables Unequal" is absent or followed by a count of 0.
  Any positive count fails. Files that cannot be read are reported
  separately as Unreadable.

Examples:
  qcheck search ./study "ERROR:"            Find every ERROR line in logs
  qcheck search --ext sas ./study merge     Search only .sas programs
  qcheck compare ./study/compare            Pass/fail every compare report
  qcheck compare --status failed ./study    Show only failing compares
  qcheck compare --output yaml ./study      Machine-readable results
  qcheck open report.lst 42                 Open report.lst at line 42
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		return nil
	}

	command := os.Args[1]

	switch command {
	case "search":
		return handleSearch()
	case "compare":
		return handleCompare()
	case "open":
		return handleOpen()
	case "config":
		return handleConfig()
	case "completions":
		return handleCompletions()
	case "debug":
		return handleDebug()
	case "help", "--help", "-h":
		fmt.Print(usage)
		return nil
	case "version", "--version", "-v":
		fmt.Printf("qcheck version %s\n", Version)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		fmt.Print(usage)
		return nil
	}
}

func handleSearch() error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	ext := fs.String("ext", "all", "extension filter")
	output := fs.String("output", "", "output format (yaml or json)")
	recursive := fs.Bool("recursive", true, "descend into subfolders")
	pick := fs.Bool("pick", false, "interactively pick a match")
	if err := fs.Parse(os.Args[2:]); err != nil {
		return err
	}

	if fs.NArg() != 2 {
		return fmt.Errorf("usage: qcheck search [flags] <folder> <text>")
	}

	term := fs.Arg(1)
	if strings.TrimSpace(term) == "" {
		return scan.ErrEmptyTerm
	}

	root, err := resolvePath(fs.Arg(0))
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	exts, err := resolveExts(*ext, cfg.SearchExts)
	if err != nil {
		return err
	}

	summary, err := scan.RunSearch(scan.Target{Root: root, Exts: exts, Recursive: *recursive}, term)
	if err != nil {
		return err
	}

	if *output != "" {
		writer, err := report.NewWriter(*output, os.Stdout)
		if err != nil {
			return err
		}
		return writer.WriteSummary(summary)
	}

	if summary.Stats.TotalFiles == 0 {
		fmt.Println("No files found.")
		return nil
	}

	summary.Render(os.Stdout, "")

	if *pick && len(summary.Matches) > 0 {
		if _, err := pickAndConfirm(func() (string, int, error) {
			m, err := scan.PickMatch(summary.Matches)
			if err != nil || m == nil {
				return "", 0, err
			}
			return m.Path, m.Line, nil
		}); err != nil {
			return err
		}
	}

	return nil
}

func handleCompare() error {
	fs := flag.NewFlagSet("compare", flag.ContinueOnError)
	ext := fs.String("ext", "all", "extension filter")
	status := fs.String("status", "all", "status filter (all, passed, failed)")
	output := fs.String("output", "", "output format (yaml or json)")
	recursive := fs.Bool("recursive", true, "descend into subfolders")
	pick := fs.Bool("pick", false, "interactively pick a report")
	if err := fs.Parse(os.Args[2:]); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: qcheck compare [flags] <folder>")
	}

	root, err := resolvePath(fs.Arg(0))
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	exts, err := resolveExts(*ext, cfg.CompareExts)
	if err != nil {
		return err
	}

	filter, err := statusFilter(*status)
	if err != nil {
		return err
	}

	summary, err := scan.RunCompare(scan.Target{Root: root, Exts: exts, Recursive: *recursive})
	if err != nil {
		return err
	}

	if *output != "" {
		writer, err := report.NewWriter(*output, os.Stdout)
		if err != nil {
			return err
		}
		return writer.WriteSummary(summary)
	}

	if summary.Stats.TotalFiles == 0 {
		fmt.Println("No files found.")
		return nil
	}

	summary.Render(os.Stdout, filter)

	if *pick {
		outcomes := summary.FilterOutcomes(filter)
		if len(outcomes) > 0 {
			_, err := pickAndConfirm(func() (string, int, error) {
				o, err := scan.PickOutcome(outcomes)
				if err != nil || o == nil {
					return "", 0, err
				}
				return o.Path, 0, nil
			})
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// pickAndConfirm runs an interactive picker and opens the selection in
// the external editor. Picking requires a terminal on both ends; editor
// launch failures are warnings, not errors.
func pickAndConfirm(pick func() (string, int, error)) (string, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "Warning: --pick needs an interactive terminal, skipping")
		return "", nil
	}

	path, line, err := pick()
	if err != nil || path == "" {
		return "", err
	}

	if err := openInEditor(path, line); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return path, nil
}

func handleOpen() error {
	if len(os.Args) < 3 {
		return fmt.Errorf("usage: qcheck open <file> [line]")
	}

	path, err := resolvePath(os.Args[2])
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}

	line := 0
	if len(os.Args) >= 4 {
		line, err = strconv.Atoi(os.Args[3])
		if err != nil || line < 1 {
			return fmt.Errorf("invalid line number: %s", os.Args[3])
		}
	}

	if err := openInEditor(path, line); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return nil
	}
	fmt.Printf("Opened: %s\n", path)
	return nil
}

func openInEditor(path string, line int) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	command, err := editor.Detect(cfg.Editor)
	if err != nil {
		return err
	}

	launcher := editor.Launcher{Command: command, Args: cfg.EditorArgs}
	return launcher.Open(path, line)
}

func handleConfig() error {
	path, err := config.Path()
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("# %s\n", path)
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

func handleCompletions() error {
	if len(os.Args) < 3 {
		return fmt.Errorf("usage: qcheck completions <shell>\nSupported shells: bash, zsh, fish")
	}

	script, err := completions.Generate(os.Args[2])
	if err != nil {
		return err
	}

	fmt.Print(script)
	return nil
}

func handleDebug() error {
	configPath, _ := config.Path()
	cfg, _ := config.Load()

	fmt.Println("qcheck Debug Information")
	fmt.Println("========================")
	fmt.Printf("Version:      %s\n", Version)
	fmt.Printf("OS/Arch:      %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("Go version:   %s\n", runtime.Version())
	fmt.Printf("Config:       %s\n", configPath)

	if cfg != nil {
		fmt.Printf("Search exts:  %s\n", strings.Join(cfg.SearchExts, ", "))
		fmt.Printf("Compare exts: %s\n", strings.Join(cfg.CompareExts, ", "))

		command, err := editor.Detect(cfg.Editor)
		if err != nil {
			fmt.Printf("Editor:       (none found)\n")
		} else {
			fmt.Printf("Editor:       %s\n", command)
		}
	}

	return nil
}

// resolveExts turns the --ext flag into the effective extension set
// for a scan mode. 'all' keeps the mode's whole set; a single
// extension must belong to it.
func resolveExts(flagValue string, modeExts []string) ([]string, error) {
	flagValue = strings.TrimPrefix(strings.TrimSpace(strings.ToLower(flagValue)), ".")
	if flagValue == "" || flagValue == "all" {
		return modeExts, nil
	}
	for _, ext := range modeExts {
		if flagValue == ext {
			return []string{flagValue}, nil
		}
	}
	return nil, fmt.Errorf("unsupported extension '%s' (supported: %s, all)", flagValue, strings.Join(modeExts, ", "))
}

func statusFilter(value string) (report.Status, error) {
	switch strings.ToLower(value) {
	case "", "all":
		return "", nil
	case "passed":
		return report.StatusPassed, nil
	case "failed":
		return report.StatusFailed, nil
	case "unreadable":
		return report.StatusUnreadable, nil
	default:
		return "", fmt.Errorf("unsupported status filter: %s (supported: all, passed, failed, unreadable)", value)
	}
}

// resolvePath converts a path (including .) to an absolute path
func resolvePath(path string) (string, error) {
	// Handle current directory
	if path == "." {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		return cwd, nil
	}

	// Expand home directory
	if strings.HasPrefix(path, "~") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[1:])
	}

	// Get absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	return absPath, nil
}
