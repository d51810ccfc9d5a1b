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

package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/jetsetilly/framepace/curated"
	"gopkg.in/ini.v1"
)

// DefaultPrefsFile is the name of the preferences file in the resource
// directory.
const DefaultPrefsFile = "preferences.ini"

// Sentinel error patterns.
const (
	DuplicateKey = "prefs: key already registered (%s)"
	NoSuchKey    = "prefs: no such key (%s)"
	DiskError    = "prefs: %v"
)

// Disk represents preference values as stored on disk. The file format is
// that of an ini file. The section of each entry is the part of the key
// before the first dot. For example, the key "option.maxfps" is stored as:
//
//	[option]
//	maxfps = 60
//
// Keys without a dot are stored in the unnamed default section.
type Disk struct {
	crit    sync.Mutex
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:    path,
		entries: make(map[string]pref),
	}
	return dsk, nil
}

func (dsk *Disk) String() string {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, dsk.entries[k]))
	}
	return s.String()
}

// sorted list of keys. the critical section should be locked by the caller.
func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// splitKey returns the ini section and key name for a prefs key.
func splitKey(key string) (string, string) {
	section, name, ok := strings.Cut(key, ".")
	if !ok {
		return ini.DefaultSection, key
	}
	return section, name
}

// Add preference value to list of values to store/load from Disk.
func (dsk *Disk) Add(key string, p pref) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p

	return nil
}

// Set the value of a registered key.
func (dsk *Disk) Set(key string, v Value) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	p, ok := dsk.entries[key]
	if !ok {
		return curated.Errorf(NoSuchKey, key)
	}
	if err := p.Set(v); err != nil {
		return curated.Errorf(DiskError, err)
	}
	return nil
}

// open the ini file. a missing file is not an error, an empty ini.File is
// returned instead.
func (dsk *Disk) open() (*ini.File, error) {
	f, err := ini.LoadSources(ini.LoadOptions{Loose: true}, dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ini.Empty(), nil
		}
		return nil, err
	}
	return f, nil
}

// Load all the preference values registered with the Disk from the file.
// Entries in the file that have not been registered are ignored. Any
// values in the command line stack override the values in the file.
func (dsk *Disk) Load() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	f, err := dsk.open()
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	for _, k := range dsk.keys() {
		section, name := splitKey(k)
		if !f.Section(section).HasKey(name) {
			continue
		}
		if err := dsk.entries[k].Set(f.Section(section).Key(name).String()); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}

	for _, k := range dsk.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return curated.Errorf(DiskError, err)
			}
		}
	}

	return nil
}

// Save all the preference values registered with the Disk to the file.
// Entries already in the file that have not been registered with this
// instance of Disk are preserved.
func (dsk *Disk) Save() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	f, err := dsk.open()
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	for _, k := range dsk.keys() {
		section, name := splitKey(k)
		f.Section(section).Key(name).SetValue(dsk.entries[k].String())
	}

	if err := f.SaveTo(dsk.path); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

// Reset all registered values to their zero value.
func (dsk *Disk) Reset() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}
	return nil
}

// Remove the preferences file from disk.
func (dsk *Disk) Remove() error {
	if err := os.Remove(dsk.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return curated.Errorf(DiskError, err)
	}
	return nil
}
