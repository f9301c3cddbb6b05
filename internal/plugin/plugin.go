package plugin

// Plugin describes one installed plugin: its identity, the metadata declared
// in its descriptor file, and its enabled state.
type Plugin struct {
	// Name uniquely identifies the plugin. A plugin with an empty name is a
	// placeholder that has not been loaded from disk.
	Name string

	// Path is the directory the plugin was loaded from.
	Path string

	// AboutText is the plugin's description, either the accumulated about
	// lines from the descriptor or the contents of a legacy about.txt.
	AboutText string

	// Version is the plugin's own version string.
	Version string

	// Authors and Tags are free-form descriptive sets from the descriptor.
	Authors Set
	Tags    Set

	// Dependencies are the plugin's declared relationships to other plugins.
	Dependencies Dependencies

	// Enabled is the state the plugin had when the process launched.
	Enabled bool

	// CurrentState is the live toggle. It diverges from Enabled once the
	// user toggles the plugin and takes effect only after a restart.
	CurrentState bool
}

// IsValid reports whether the plugin was actually loaded, i.e. it has a
// name. Registry lookups create invalid placeholder records, and a settings
// entry that matches no installed plugin stays invalid forever.
func (p *Plugin) IsValid() bool {
	return p.Name != ""
}
