package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

// loadAt points the config file at a temp dir so tests never touch the
// real user config.
func loadAt(t *testing.T, dir string) *Preferences {
	t.Helper()
	t.Setenv("PANELDOCK_CONFIG", filepath.Join(dir, "config.toml"))
	p, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	return p
}

func TestDefaults(t *testing.T) {
	p := loadAt(t, t.TempDir())

	if got := p.ActiveLayoutID(); got != "" {
		t.Errorf("ActiveLayoutID() = %q, want empty", got)
	}
	if got := p.TimelinePosition(); got != "bottom" {
		t.Errorf("TimelinePosition() = %q, want bottom", got)
	}
	if got := p.TimelineSplitter(); got != 75.0 {
		t.Errorf("TimelineSplitter() = %v, want 75.0", got)
	}
	if got := p.Scale(); got != 1 {
		t.Errorf("Scale() = %d, want 1", got)
	}
}

func TestSplitterClamped(t *testing.T) {
	p := loadAt(t, t.TempDir())

	tests := []struct {
		set  float64
		want float64
	}{
		{50, 50},
		{0.2, 1},
		{-10, 1},
		{99.5, 99},
		{500, 99},
	}
	for _, tt := range tests {
		p.SetTimelineSplitter(tt.set)
		if got := p.TimelineSplitter(); got != tt.want {
			t.Errorf("SetTimelineSplitter(%v): TimelineSplitter() = %v, want %v", tt.set, got, tt.want)
		}
	}
}

func TestScaleFloor(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[ui]\nscale = 0\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	p := loadAt(t, dir)

	if got := p.Scale(); got != 1 {
		t.Errorf("Scale() with configured 0 = %d, want floor of 1", got)
	}
}

func TestConfigFileRead(t *testing.T) {
	dir := t.TempDir()
	cfg := "[workspace]\nlayout = \"u1\"\n\n[timeline]\nposition = \"left\"\nsplitter = 60.0\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(cfg), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	p := loadAt(t, dir)

	if got := p.ActiveLayoutID(); got != "u1" {
		t.Errorf("ActiveLayoutID() = %q, want u1", got)
	}
	if got := p.TimelinePosition(); got != "left" {
		t.Errorf("TimelinePosition() = %q, want left", got)
	}
	if got := p.TimelineSplitter(); got != 60.0 {
		t.Errorf("TimelineSplitter() = %v, want 60.0", got)
	}
}

func TestEnvOverride(t *testing.T) {
	p := loadAt(t, t.TempDir())
	t.Setenv("PANELDOCK_WORKSPACE_LAYOUT", "from-env")

	if got := p.ActiveLayoutID(); got != "from-env" {
		t.Errorf("ActiveLayoutID() = %q, want env override", got)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	p := loadAt(t, dir)
	p.SetActiveLayoutID("u9")
	p.SetTimelinePosition("right")
	p.SetTimelineSplitter(42)
	p.Save()

	again := loadAt(t, dir)
	if got := again.ActiveLayoutID(); got != "u9" {
		t.Errorf("ActiveLayoutID() after reload = %q, want u9", got)
	}
	if got := again.TimelinePosition(); got != "right" {
		t.Errorf("TimelinePosition() after reload = %q, want right", got)
	}
	if got := again.TimelineSplitter(); got != 42.0 {
		t.Errorf("TimelineSplitter() after reload = %v, want 42", got)
	}
}
