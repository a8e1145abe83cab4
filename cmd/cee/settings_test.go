package main

import (
	"path/filepath"
	"strings"
	"testing"

	"cee/internal/diag"
	"cee/internal/driver"
)

func TestReadColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    colorMode
		wantErr bool
	}{
		{"", colorAuto, false},
		{"AUTO", colorAuto, false},
		{"on", colorOn, false},
		{"never", colorOff, false},
		{"sometimes", "", true},
	}
	for _, tt := range tests {
		got, err := readColorMode(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("readColorMode(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestReadUIMode(t *testing.T) {
	if m, err := readUIMode(" On "); err != nil || m != uiModeOn {
		t.Errorf("readUIMode = %q, %v", m, err)
	}
	if _, err := readUIMode("maybe"); err == nil {
		t.Error("want error")
	}
	if !shouldUseTUI(uiModeOn, 1) || shouldUseTUI(uiModeOff, 10) {
		t.Error("explicit modes ignored")
	}
}

func TestManifestSearchesUpward(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, manifestName, "[diagnostics]\nmax = 7\ncolor = \"off\"\n\n[trace]\nlevel = \"phase\"\n\n[check]\njobs = 2\n")
	nested := filepath.Join(root, "src", "deep")
	if err := mkdirAll(nested); err != nil {
		t.Fatal(err)
	}

	m, err := loadProjectManifest(nested)
	if err != nil || m == nil {
		t.Fatalf("manifest = %v, %v", m, err)
	}
	if m.Root != root {
		t.Errorf("root = %s", m.Root)
	}
	cfg := m.Config
	if cfg.Diagnostics.Max != 7 || cfg.Diagnostics.Color != "off" || cfg.Trace.Level != "phase" || cfg.Check.Jobs != 2 {
		t.Errorf("config = %+v", cfg)
	}
}

func TestManifestRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", "[diagnostics]\nmaxx = 1\n", "unknown keys: diagnostics.maxx"},
		{"bad max", "[diagnostics]\nmax = 0\n", "must be positive"},
		{"bad color", "[diagnostics]\ncolor = \"pink\"\n", "invalid color value"},
		{"bad severity", "[diagnostics]\nmin-severity = \"loud\"\n", "unknown severity"},
		{"bad toml", "[diagnostics\n", "failed to parse TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), manifestName, tt.content)
			_, err := loadProjectConfig(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestManifestOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, manifestName, "[diagnostics]\nmax = 3\nmin-severity = \"error\"\n")
	t.Chdir(dir)

	if _, err := runCLI(t, "version"); err != nil {
		t.Fatal(err)
	}
	if currentSettings.maxDiagnostics != 3 || currentSettings.minSeverity != diag.SevError || currentSettings.manifest == nil {
		t.Errorf("settings = %+v", currentSettings)
	}
}

func TestCheckSummary(t *testing.T) {
	r := &driver.CheckResult{Files: make([]driver.FileResult, 3), Errors: 2, Warnings: 1, Cached: 1}
	if got := checkSummary(r); got != "3 files: 2 errors, 1 warnings (1 cached)" {
		t.Errorf("summary = %q", got)
	}
}
