package plugin

import (
	"github.com/Beed-git/endless-sky/internal/datafile"
)

// Settings persists per-plugin enabled state. State is read from two files:
// the global defaults shipped with the game's resources, then the user's
// local file, whose entries win when both mention the same plugin. Saves go
// only to the local file.
type Settings struct {
	registry   *Registry
	globalPath string
	localPath  string
}

// NewSettings creates a synchronizer for the given registry and settings
// file paths.
func NewSettings(registry *Registry, globalPath, localPath string) *Settings {
	return &Settings{
		registry:   registry,
		globalPath: globalPath,
		localPath:  localPath,
	}
}

// Load overlays persisted enabled state onto the registry, global file first
// and local file second. A missing file is empty input, not an error.
//
// Entries are matched by the literal token in the settings file. A token
// that names no loaded plugin creates an invalid placeholder carrying the
// state, which merges with real metadata only if a plugin of exactly that
// name loads under the same key.
func (s *Settings) Load() {
	s.loadFile(s.globalPath)
	s.loadFile(s.localPath)
}

func (s *Settings) loadFile(path string) {
	for _, node := range datafile.Read(path) {
		if node.Token(0) != "state" {
			continue
		}
		for _, child := range node.Children() {
			if child.Size() != 2 {
				continue
			}
			p := s.registry.GetOrCreate(child.Token(0))
			p.Enabled = child.Bool(1)
			p.CurrentState = child.Bool(1)
		}
	}
}

// Save writes the live state of every valid plugin to the local settings
// file, sorted by name. An empty registry writes nothing at all, leaving any
// existing file untouched.
func (s *Settings) Save() error {
	if s.registry.Count() == 0 {
		return nil
	}

	w := datafile.NewWriter(s.localPath)
	w.Write("state")
	w.BeginChild()
	for _, p := range s.registry.All() {
		if p.IsValid() {
			w.WriteBool(p.CurrentState, p.Name)
		}
	}
	w.EndChild()
	return w.Save()
}
