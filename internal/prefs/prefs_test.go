package prefs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
	if p.SortFor("candidates") != "" {
		t.Fatalf("SortFor = %q, want empty", p.SortFor("candidates"))
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "talentdesk")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	prefsFile := filepath.Join(prefsDir, "prefs.toml")
	body := "theme = \"Paper\"\n\n[sort]\ncandidates = \"Oldest\"\n"
	if err := os.WriteFile(prefsFile, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != "Paper" {
		t.Fatalf("Theme = %q, want %q", p.Theme, "Paper")
	}
	if p.SortFor("candidates") != "Oldest" {
		t.Fatalf("SortFor(candidates) = %q, want Oldest", p.SortFor("candidates"))
	}
}

func TestSave_RoundTripsSortChoices(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "subdir", "prefs.toml")

	base := Prefs{Theme: "Paper"}
	p := base.WithSort("contracts", "Oldest").WithSort("documents", "Newest")
	if base.Sort != nil {
		t.Fatalf("WithSort must not modify the receiver")
	}
	if err := Save(prefsFile, p); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Theme != "Paper" {
		t.Fatalf("Theme = %q, want %q", loaded.Theme, "Paper")
	}
	if loaded.SortFor("contracts") != "Oldest" || loaded.SortFor("documents") != "Newest" {
		t.Fatalf("Sort = %#v", loaded.Sort)
	}
}

func TestLoad_EmptyThemeFallsBackToDefault(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("theme = \"\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
}

func TestLoad_InvalidTOMLReportsErrorWithDefaults(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(prefsFile)
	if err == nil || !strings.Contains(err.Error(), "parse prefs") {
		t.Fatalf("Load error = %v, want parse prefs error", err)
	}
	if p.Theme != defaultTheme || p.Sort != nil {
		t.Fatalf("Load = %#v, want defaults", p)
	}
}

func TestLoad_DropsBlankSortChoices(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "prefs.toml")
	body := "[sort]\ncandidates = \"\"\ncontracts = \"Oldest\"\n"
	if err := os.WriteFile(prefsFile, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if _, ok := p.Sort["candidates"]; ok {
		t.Fatalf("blank sort choice kept: %#v", p.Sort)
	}
	if p.SortFor("contracts") != "Oldest" {
		t.Fatalf("SortFor(contracts) = %q, want Oldest", p.SortFor("contracts"))
	}
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	prefsFile := filepath.Join(dir, "prefs.toml")
	for _, theme := range []string{"Paper", "Slate"} {
		if err := Save(prefsFile, Prefs{Theme: theme}); err != nil {
			t.Fatalf("Save returned error: %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "prefs.toml" {
		t.Fatalf("dir entries = %v, want only prefs.toml", entries)
	}
	p, err := Load(prefsFile)
	if err != nil || p.Theme != "Slate" {
		t.Fatalf("Load = %#v, %v; want Slate", p, err)
	}
}
