package plugin

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Beed-git/endless-sky/internal/datafile"
	"github.com/Beed-git/endless-sky/internal/files"
	"github.com/Beed-git/endless-sky/internal/logger"
)

// descriptorFile is the per-plugin metadata file inside a plugin directory.
const descriptorFile = "plugin.txt"

// legacyAboutFile is the deprecated plain-text description file, read only
// when the descriptor declares no about text.
const legacyAboutFile = "about.txt"

// Loader parses plugin directories into Plugin records and registers them.
type Loader struct {
	registry *Registry
	log      logger.Logger
}

// NewLoader creates a loader that registers into registry and reports
// diagnostics through log.
func NewLoader(registry *Registry, log logger.Logger) *Loader {
	return &Loader{registry: registry, log: log}
}

// Load parses the descriptor of the plugin directory at dir, validates it,
// and registers it. It returns the registered record, or nil when the plugin
// was rejected: because another plugin already claimed the same name (first
// loaded wins) or because its dependency declarations contradict themselves.
// Every rejection and every structural problem in the descriptor is reported
// through the logger; Load never fails the host.
func (l *Loader) Load(dir string) *Plugin {
	// The directory name is the fallback if the descriptor declares no name.
	name := filepath.Base(filepath.Clean(dir))

	descriptorPath := filepath.Join(dir, descriptorFile)

	var about strings.Builder
	var version string
	authors := NewSet()
	tags := NewSet()
	deps := NewDependencies()
	hasName := false

	for _, node := range datafile.Read(descriptorPath) {
		switch {
		case node.Token(0) == "name" && node.Size() >= 2:
			name = node.Token(1)
			hasName = true
		case node.Token(0) == "about" && node.Size() >= 2:
			about.WriteString(node.Token(1))
			about.WriteByte('\n')
		case node.Token(0) == "version" && node.Size() >= 2:
			version = node.Token(1)
		case node.Token(0) == "authors" && node.HasChildren():
			for _, child := range node.Children() {
				authors.Add(child.Token(0))
			}
		case node.Token(0) == "tags" && node.HasChildren():
			for _, child := range node.Children() {
				tags.Add(child.Token(0))
			}
		case node.Token(0) == "dependencies" && node.HasChildren():
			l.parseDependencies(node, &deps, descriptorPath)
		default:
			l.log.LogError(fmt.Sprintf(
				"Skipping unrecognized attribute %q in %q.", node.Token(0), descriptorPath))
		}
	}

	// A descriptor file is expected to name its plugin.
	if files.Exists(descriptorPath) && !hasName {
		l.log.LogError(fmt.Sprintf(
			"Warning: Missing required \"name\" field inside %q.", descriptorPath))
	}

	record := l.registry.GetOrCreate(name)
	if record.IsValid() {
		l.log.LogError(fmt.Sprintf(
			"Warning: Skipping plugin located at %q because another plugin with the same name has already been loaded from %q.",
			dir, record.Path))
		return nil
	}

	if !deps.IsValid(l.log) {
		l.log.LogError(fmt.Sprintf(
			"Warning: Skipping plugin located at %q because plugin has errors in its dependencies.", dir))
		return nil
	}

	record.Name = name
	record.Path = dir
	record.AboutText = about.String()
	if record.AboutText == "" {
		record.AboutText = files.ReadText(filepath.Join(dir, legacyAboutFile))
	}
	record.Version = version
	record.Authors = authors
	record.Tags = tags
	record.Dependencies = deps

	return record
}

// parseDependencies fills deps from the children of a dependencies node.
func (l *Loader) parseDependencies(node *datafile.Node, deps *Dependencies, descriptorPath string) {
	for _, child := range node.Children() {
		switch {
		case child.Token(0) == "game version" && child.Size() >= 2:
			deps.GameVersion = child.Token(1)
		case child.Token(0) == "requires" && child.HasChildren():
			for _, grand := range child.Children() {
				deps.Required.Add(grand.Token(0))
			}
		case child.Token(0) == "optional" && child.HasChildren():
			for _, grand := range child.Children() {
				deps.Optional.Add(grand.Token(0))
			}
		case child.Token(0) == "conflicts" && child.HasChildren():
			for _, grand := range child.Children() {
				deps.Conflicted.Add(grand.Token(0))
			}
		default:
			l.log.LogError(fmt.Sprintf(
				"Skipping unrecognized attribute %q in %q.", child.Token(0), descriptorPath))
		}
	}
}

// IsPluginDirectory reports whether path holds a plugin: it must contain at
// least one of the conventional asset directories, which may be empty.
func IsPluginDirectory(path string) bool {
	return files.Exists(filepath.Join(path, "data")) ||
		files.Exists(filepath.Join(path, "images")) ||
		files.Exists(filepath.Join(path, "sounds"))
}
