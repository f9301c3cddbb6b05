// Package files provides the small filesystem surface the plugin subsystem
// depends on: existence checks, tolerant text reads, and the default
// locations of the global and local settings files.
package files

import (
	"os"
	"path/filepath"
)

// Exists reports whether a file or directory is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadText returns the contents of the file at path, or "" if the file is
// missing or unreadable. Callers treat absent files as empty input.
func ReadText(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

// ConfigDir returns the per-user configuration directory where local plugin
// settings live.
func ConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "endless-sky")
	}
	return "."
}

// ResourcesDir returns the shared resources directory where global plugin
// settings live. The ENDLESS_SKY_RESOURCES environment variable overrides
// the installed default.
func ResourcesDir() string {
	if dir := os.Getenv("ENDLESS_SKY_RESOURCES"); dir != "" {
		return dir
	}
	return filepath.Join("/usr", "share", "endless-sky")
}
