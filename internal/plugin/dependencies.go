package plugin

import (
	"fmt"

	"github.com/Beed-git/endless-sky/internal/logger"
)

// Dependencies holds a plugin's declared relationships to other plugins:
// names it cannot run without, names that merely enhance it, and names it
// must never be active alongside. GameVersion is the minimum game version
// the plugin supports, kept as an opaque string at this layer.
type Dependencies struct {
	GameVersion string
	Required    Set
	Optional    Set
	Conflicted  Set
}

// NewDependencies returns an empty Dependencies with initialized sets.
func NewDependencies() Dependencies {
	return Dependencies{
		Required:   NewSet(),
		Optional:   NewSet(),
		Conflicted: NewSet(),
	}
}

// IsEmpty reports whether no dependencies of any kind are declared. The game
// version does not count as a dependency.
func (d *Dependencies) IsEmpty() bool {
	return d.Required.Len() == 0 && d.Optional.Len() == 0 && d.Conflicted.Len() == 0
}

// IsValid reports whether the declared sets are mutually consistent. A name
// listed as both optional and required only earns a warning, but a name
// listed as conflicting and also as required or optional marks the whole
// declaration invalid. Every entry is checked before returning so the plugin
// developer sees all problems in one pass, not just the first.
func (d *Dependencies) IsValid(log logger.Logger) bool {
	valid := true

	// Required entries cannot collide with themselves, so only the optional
	// and conflicted sets need checking.
	for _, dep := range d.Optional.Sorted() {
		if d.Required.Has(dep) {
			log.LogError(fmt.Sprintf(
				"Warning: Optional dependency %q was already found in required dependencies list.", dep))
		}
	}
	for _, dep := range d.Conflicted.Sorted() {
		if d.Required.Has(dep) {
			valid = false
			log.LogError(fmt.Sprintf(
				"Warning: Conflicts dependency %q was already found in required dependencies list.", dep))
		} else if d.Optional.Has(dep) {
			valid = false
			log.LogError(fmt.Sprintf(
				"Warning: Conflicts dependency %q was already found in optional dependencies list.", dep))
		}
	}

	return valid
}
