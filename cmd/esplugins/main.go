// Package main is the entry point for the esplugins maintenance tool.
//
// esplugins inspects and toggles the content plugins installed for the game
// without launching it: it discovers plugin directories, loads each plugin's
// descriptor into a registry, overlays the persisted enabled state, and
// writes toggles back to the local settings file.
package main

import "os"

func main() {
	os.Exit(run())
}

func run() int {
	if err := newRootCommand().Execute(); err != nil {
		return 1
	}
	return 0
}
