package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Units != defaultUnits {
		t.Fatalf("Units = %q, want %q", p.Units, defaultUnits)
	}
	if p.LastCity != "" {
		t.Fatalf("LastCity = %q, want empty", p.LastCity)
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("units = \"imperial\"\nlast_city = \"Paris\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Units != "imperial" {
		t.Fatalf("Units = %q, want %q", p.Units, "imperial")
	}
	if p.LastCity != "Paris" {
		t.Fatalf("LastCity = %q, want %q", p.LastCity, "Paris")
	}
}

func TestSave_CreatesFileAndDirs(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "subdir", "prefs.toml")

	p := Prefs{Units: "imperial", LastCity: "Oslo"}
	if err := Save(prefsFile, p); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Units != "imperial" || loaded.LastCity != "Oslo" {
		t.Fatalf("loaded = %+v, want saved values", loaded)
	}
}

func TestLoad_EmptyUnitsFallsBackToDefault(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("units = \"\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Units != defaultUnits {
		t.Fatalf("Units = %q, want %q", p.Units, defaultUnits)
	}
}

func TestLoad_InvalidTOMLFallsBackToDefault(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Units != defaultUnits {
		t.Fatalf("Units = %q, want %q", p.Units, defaultUnits)
	}
}
