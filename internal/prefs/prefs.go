// Package prefs is the preferences collaborator for the docking engine:
// the last active layout id, the legacy timeline splitter percentage and
// the UI scale factor, read from an optional config file with env
// overrides under the PANELDOCK_ prefix.
package prefs

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	keyWorkspaceLayout  = "workspace.layout"
	keyTimelinePosition = "timeline.position"
	keyTimelineSplitter = "timeline.splitter"
	keyUIScale          = "ui.scale"
)

// Preferences wraps a viper instance. Pass it explicitly to whoever needs
// it; there is no package-level singleton.
type Preferences struct {
	v    *viper.Viper
	path string
}

// Load reads preferences from the standard location (or $PANELDOCK_CONFIG)
// with defaults applied. A missing file is not an error.
func Load() (*Preferences, error) {
	v := viper.New()

	v.SetDefault(keyWorkspaceLayout, "")
	v.SetDefault(keyTimelinePosition, "bottom")
	v.SetDefault(keyTimelineSplitter, 75.0)
	v.SetDefault(keyUIScale, 1)

	v.SetConfigType("toml")

	path := os.Getenv("PANELDOCK_CONFIG")
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		path = filepath.Join(dir, "paneldock", "config.toml")
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("PANELDOCK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	return &Preferences{v: v, path: path}, nil
}

// ActiveLayoutID returns the id of the layout active at the end of the
// last session, or "" if none was recorded.
func (p *Preferences) ActiveLayoutID() string {
	return p.v.GetString(keyWorkspaceLayout)
}

// SetActiveLayoutID records the active layout id.
func (p *Preferences) SetActiveLayoutID(id string) {
	p.v.Set(keyWorkspaceLayout, id)
}

// TimelinePosition returns the persisted timeline side name.
func (p *Preferences) TimelinePosition() string {
	return p.v.GetString(keyTimelinePosition)
}

// SetTimelinePosition records the timeline side name.
func (p *Preferences) SetTimelinePosition(side string) {
	p.v.Set(keyTimelinePosition, side)
}

// TimelineSplitter returns the legacy splitter position as a percentage
// in [1, 99]. It feeds the default size computed for the timeline panel
// when it is redocked.
func (p *Preferences) TimelineSplitter() float64 {
	pct := p.v.GetFloat64(keyTimelineSplitter)
	return clampPct(pct)
}

// SetTimelineSplitter records the splitter percentage, clamped to [1, 99].
func (p *Preferences) SetTimelineSplitter(pct float64) {
	p.v.Set(keyTimelineSplitter, clampPct(pct))
}

// Scale returns the UI scale factor, at least 1.
func (p *Preferences) Scale() int {
	s := p.v.GetInt(keyUIScale)
	if s < 1 {
		return 1
	}
	return s
}

// Save writes the preferences file. Failures are logged, not propagated;
// losing one save only means the next session starts from older values.
func (p *Preferences) Save() {
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		log.Printf("prefs: creating config dir: %v", err)
		return
	}
	if err := p.v.WriteConfigAs(p.path); err != nil {
		log.Printf("prefs: saving %s: %v", p.path, err)
	}
}

func clampPct(pct float64) float64 {
	if pct < 1 {
		return 1
	}
	if pct > 99 {
		return 99
	}
	return pct
}
