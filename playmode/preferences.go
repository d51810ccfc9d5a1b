// This file is part of Framepace.
//
// Framepace is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Framepace is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Framepace.  If not, see <https://www.gnu.org/licenses/>.

package playmode

import (
	"fmt"

	"github.com/jetsetilly/framepace/curated"
	"github.com/jetsetilly/framepace/emulation"
	"github.com/jetsetilly/framepace/gamekey"
	"github.com/jetsetilly/framepace/paths"
	"github.com/jetsetilly/framepace/prefs"
)

// Sentinel error patterns for preferences.
const (
	InvalidMaxFPS = "playmode: invalid maximum frame rate (%d)"
	NoPrefsFile   = "playmode: preferences are not backed by a file"
)

// Preferences for the play loop. Values are read once when the loop starts.
type Preferences struct {
	dsk *prefs.Disk

	MaxFPS          prefs.Int
	EnableFrameStep prefs.Bool
	ShowFPS         prefs.Bool
	PerfectFPSMode  prefs.Bool
	PerfectYield    prefs.Bool
	SyncDisplay     prefs.Bool
	ScreenshotDir   prefs.String

	// in-game and navigation keymaps for each player
	Keymap    [emulation.MaxPlayers]*gamekey.Keymap
	KeymapNav [emulation.MaxPlayers]*gamekey.Keymap
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. If the path is empty then the default preferences file in
// the resource directory is used.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	if path == "" {
		var err error
		path, err = paths.ResourcePath("", prefs.DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	for _, v := range []struct {
		key string
		p   value
	}{
		{"option.maxfps", &p.MaxFPS},
		{"option.enableframestep", &p.EnableFrameStep},
		{"option.showfps", &p.ShowFPS},
		{"option.perfectFPSMode", &p.PerfectFPSMode},
		{"option.perfectYield", &p.PerfectYield},
		{"option.syncDisplay", &p.SyncDisplay},
		{"custom.screenshot.directory", &p.ScreenshotDir},
	} {
		if err := p.dsk.Add(v.key, v.p); err != nil {
			return nil, err
		}
	}

	for i := 0; i < emulation.MaxPlayers; i++ {
		if err := p.Keymap[i].Register(p.dsk, fmt.Sprintf("key.p%d", i)); err != nil {
			return nil, err
		}
		if err := p.KeymapNav[i].Register(p.dsk, fmt.Sprintf("nav.p%d", i)); err != nil {
			return nil, err
		}
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// the methods required by prefs.Disk.Add()
type value interface {
	String() string
	Set(prefs.Value) error
	Get() prefs.Value
	Reset() error
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	p.MaxFPS.SetHookPre(func(v prefs.Value) error {
		if fps := v.(int); fps < 0 {
			return curated.Errorf(InvalidMaxFPS, fps)
		}
		return nil
	})
	p.MaxFPS.Set(60)
	p.EnableFrameStep.Set(false)
	p.ShowFPS.Set(true)
	p.PerfectFPSMode.Set(false)
	p.PerfectYield.Set(true)
	p.SyncDisplay.Set(true)
	p.ScreenshotDir.Set("screenshots")

	for i := 0; i < emulation.MaxPlayers; i++ {
		if p.Keymap[i] == nil {
			p.Keymap[i] = &gamekey.Keymap{}
			p.KeymapNav[i] = &gamekey.Keymap{}
		}
		setKeymap(p.Keymap[i], gamekey.DefaultKeymap(i))
		setKeymap(p.KeymapNav[i], gamekey.DefaultKeymapNav(i))
	}
}

// buttons missing from the defaults have no keys
func setKeymap(km *gamekey.Keymap, defaults []string) {
	for b := gamekey.Button(0); b < gamekey.NumButtons; b++ {
		if int(b) < len(defaults) {
			km.Set(b, defaults[b])
		} else {
			km.Set(b)
		}
	}
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return curated.Errorf(NoPrefsFile)
	}
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return curated.Errorf(NoPrefsFile)
	}
	return p.dsk.Save()
}

// Set the preference with the named key.
func (p *Preferences) Set(key string, v prefs.Value) error {
	if p.dsk == nil {
		return curated.Errorf(NoPrefsFile)
	}
	return p.dsk.Set(key, v)
}

// settings is a copy of the preferences taken when the loop starts.
type settings struct {
	maxFPS        int
	frameStep     bool
	showFPS       bool
	perfect       bool
	perfectYield  bool
	syncDisplay   bool
	screenshotDir string
}

func (p *Preferences) snapshot() settings {
	return settings{
		maxFPS:        p.MaxFPS.Get().(int),
		frameStep:     p.EnableFrameStep.Get().(bool),
		showFPS:       p.ShowFPS.Get().(bool),
		perfect:       p.PerfectFPSMode.Get().(bool),
		perfectYield:  p.PerfectYield.Get().(bool),
		syncDisplay:   p.SyncDisplay.Get().(bool),
		screenshotDir: p.ScreenshotDir.String(),
	}
}
