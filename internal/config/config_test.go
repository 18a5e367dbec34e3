package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadFileMissingUsesDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Editor != "" {
		t.Errorf("Expected no default editor, got %q", cfg.Editor)
	}
	if !reflect.DeepEqual(cfg.SearchExts, []string{"sas", "log", "txt"}) {
		t.Errorf("Unexpected default search exts: %v", cfg.SearchExts)
	}
	if !reflect.DeepEqual(cfg.CompareExts, []string{"pdf", "lst", "txt"}) {
		t.Errorf("Unexpected default compare exts: %v", cfg.CompareExts)
	}
}

func TestLoadFileParsesAndNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `editor: notepad++
editor_args: ["-multiInst"]
search_exts: [".SAS", "Log", "", "txt"]
compare_exts: [".pdf", "LST"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Editor != "notepad++" {
		t.Errorf("Expected editor notepad++, got %q", cfg.Editor)
	}
	if !reflect.DeepEqual(cfg.EditorArgs, []string{"-multiInst"}) {
		t.Errorf("Unexpected editor args: %v", cfg.EditorArgs)
	}
	if !reflect.DeepEqual(cfg.SearchExts, []string{"sas", "log", "txt"}) {
		t.Errorf("Expected normalized search exts, got %v", cfg.SearchExts)
	}
	if !reflect.DeepEqual(cfg.CompareExts, []string{"pdf", "lst"}) {
		t.Errorf("Expected normalized compare exts, got %v", cfg.CompareExts)
	}
}

func TestLoadFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("editor: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("Expected parse error for invalid YAML")
	}
}

func TestLoadFileEmptyExtListFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("search_exts: [\"\", \"  \"]\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if !reflect.DeepEqual(cfg.SearchExts, []string{"sas", "log", "txt"}) {
		t.Errorf("Expected fallback to defaults, got %v", cfg.SearchExts)
	}
}

func TestDirCreatesConfigDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir failed: %v", err)
	}

	if dir != filepath.Join(tmpDir, ".config", "qcheck") {
		t.Errorf("Unexpected config dir: %s", dir)
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Errorf("Config directory was not created at %s", dir)
	}
}
