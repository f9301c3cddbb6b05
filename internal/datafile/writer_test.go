package datafile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriterOutput(t *testing.T) {
	w := NewWriter("")
	w.Write("state")
	w.BeginChild()
	w.WriteBool(true, "My Plugin")
	w.WriteBool(false, "other")
	w.EndChild()

	want := "state\n\t\"My Plugin\" 1\n\tother 0\n"
	if got := w.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestWriterQuoting(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"plain", "plain", "plain\n"},
		{"spaces", "two words", "\"two words\"\n"},
		{"empty", "", "\"\"\n"},
		{"embedded quote", `say "hi"`, "`say \"hi\"`\n"},
		{"hash", "#tag", "\"#tag\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter("")
			w.Write(tt.token)
			if got := w.String(); got != tt.want {
				t.Errorf("Write(%q) produced %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestWriterEndChildAtRoot(t *testing.T) {
	w := NewWriter("")
	w.EndChild() // must not underflow
	w.Write("top")
	if got := w.String(); got != "top\n" {
		t.Errorf("String() = %q, want top\\n", got)
	}
}

func TestWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plugins.txt")

	w := NewWriter(path)
	w.Write("state")
	w.BeginChild()
	w.WriteBool(false, "Alpha Pack")
	w.WriteBool(true, "beta")
	w.EndChild()
	if err := w.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	roots := Read(path)
	if len(roots) != 1 || roots[0].Token(0) != "state" {
		t.Fatalf("Read() = %v roots, want single state node", len(roots))
	}
	children := roots[0].Children()
	if len(children) != 2 {
		t.Fatalf("state has %d children, want 2", len(children))
	}
	if children[0].Token(0) != "Alpha Pack" || children[0].Bool(1) {
		t.Errorf("child 0 = %q %v, want Alpha Pack false", children[0].Token(0), children[0].Bool(1))
	}
	if children[1].Token(0) != "beta" || !children[1].Bool(1) {
		t.Errorf("child 1 = %q %v, want beta true", children[1].Token(0), children[1].Bool(1))
	}
}

func TestWriterSaveError(t *testing.T) {
	w := NewWriter(filepath.Join(t.TempDir(), "missing", "plugins.txt"))
	w.Write("state")
	if err := w.Save(); err == nil {
		t.Error("Save() into missing directory should return error")
	}
}

func TestParseWriterOutputOfStrings(t *testing.T) {
	// A token that parses back across a full file write.
	path := filepath.Join(t.TempDir(), "out.txt")
	w := NewWriter(path)
	w.Write("name", "Galactic War: Remastered")
	if err := w.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), `"Galactic War: Remastered"`) {
		t.Errorf("file content %q missing quoted token", string(data))
	}

	roots := Read(path)
	if len(roots) != 1 || roots[0].Token(1) != "Galactic War: Remastered" {
		t.Errorf("round trip lost token: %+v", roots)
	}
}
