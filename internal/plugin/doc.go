// Package plugin tracks the content plugins installed for the game.
//
// A plugin is a directory of assets with an optional plugin.txt descriptor
// naming it and declaring its dependencies on other plugins. The package
// parses descriptors into Plugin records, keeps them in a Registry keyed by
// plugin name, and persists each plugin's enabled state across restarts
// through a pair of settings files (global defaults overlaid by local
// overrides).
//
// Nothing here refuses to register a plugin because a dependency is missing:
// dependency problems are surfaced as diagnostics through the injected
// logger, and only internally contradictory declarations (the same name both
// required and conflicting) reject a plugin outright.
//
// Toggling a plugin takes effect at the next restart: Plugin.Enabled is the
// state the process launched with, Plugin.CurrentState the live toggle, and
// Registry.HasChanged reports whether the two have diverged anywhere.
package plugin
