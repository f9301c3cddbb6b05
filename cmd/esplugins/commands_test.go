package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Beed-git/endless-sky/internal/logger"
)

// writeTree creates a plugins dir with two plugin directories and a stray
// non-plugin directory, plus global settings enabling one of them.
func writeTree(t *testing.T) *options {
	t.Helper()
	root := t.TempDir()
	pluginsDir := filepath.Join(root, "plugins")

	for name, descriptor := range map[string]string{
		"alpha": "name Alpha\nversion 1.0\n",
		"beta":  "name Beta\n",
	} {
		dir := filepath.Join(pluginsDir, name)
		if err := os.MkdirAll(filepath.Join(dir, "data"), 0o755); err != nil {
			t.Fatalf("MkdirAll() error = %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, "plugin.txt"), []byte(descriptor), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
	}
	// A directory without asset folders is not a plugin.
	if err := os.MkdirAll(filepath.Join(pluginsDir, "notes"), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	globalSettings := filepath.Join(root, "global-plugins.txt")
	if err := os.WriteFile(globalSettings, []byte("state\n\tAlpha 1\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	return &options{
		pluginsDir:     pluginsDir,
		globalSettings: globalSettings,
		localSettings:  filepath.Join(root, "local-plugins.txt"),
	}
}

func TestLoadDiscovery(t *testing.T) {
	opts := writeTree(t)

	registry, _ := load(opts, logger.Discard)

	alpha, ok := registry.Get("Alpha")
	if !ok || !alpha.IsValid() {
		t.Fatal("Alpha not loaded")
	}
	if !alpha.CurrentState {
		t.Error("Alpha should be enabled by the global settings")
	}
	if beta, ok := registry.Get("Beta"); !ok || beta.CurrentState {
		t.Error("Beta should be loaded and disabled")
	}
	if _, ok := registry.Get("notes"); ok {
		t.Error("non-plugin directory was registered")
	}
}

func TestListCommand(t *testing.T) {
	opts := writeTree(t)

	var out bytes.Buffer
	cmd := newListCommand(opts)
	cmd.SetOut(&out)
	if err := cmd.RunE(cmd, nil); err != nil {
		t.Fatalf("list error = %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "Alpha") || !strings.Contains(text, "Beta") {
		t.Errorf("list output missing plugins:\n%s", text)
	}
	if !strings.Contains(text, "1.0") {
		t.Errorf("list output missing version:\n%s", text)
	}
}

func TestToggleCommandPersists(t *testing.T) {
	opts := writeTree(t)

	var out bytes.Buffer
	cmd := newToggleCommand(opts)
	cmd.SetOut(&out)
	if err := cmd.RunE(cmd, []string{"Beta"}); err != nil {
		t.Fatalf("toggle error = %v", err)
	}
	if !strings.Contains(out.String(), "Beta will be enabled") {
		t.Errorf("toggle output = %q", out.String())
	}

	// A fresh load sees the persisted toggle.
	registry, _ := load(opts, logger.Discard)
	beta, _ := registry.Get("Beta")
	if !beta.CurrentState {
		t.Error("toggle was not persisted to the local settings file")
	}
}

func TestToggleCommandUnknownPlugin(t *testing.T) {
	opts := writeTree(t)

	cmd := newToggleCommand(opts)
	cmd.SetOut(new(bytes.Buffer))
	if err := cmd.RunE(cmd, []string{"Gamma"}); err == nil {
		t.Error("toggling an unknown plugin should fail")
	}

	// Nothing may be written when validation fails.
	if _, err := os.Stat(opts.localSettings); !os.IsNotExist(err) {
		t.Error("failed toggle wrote the local settings file")
	}
}

func TestShowCommand(t *testing.T) {
	opts := writeTree(t)

	var out bytes.Buffer
	cmd := newShowCommand(opts)
	cmd.SetOut(&out)
	if err := cmd.RunE(cmd, []string{"Alpha"}); err != nil {
		t.Fatalf("show error = %v", err)
	}
	if !strings.Contains(out.String(), "version: 1.0") {
		t.Errorf("show output = %q", out.String())
	}
}
