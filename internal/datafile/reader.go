package datafile

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Read parses the file at path into top-level nodes. A missing or unreadable
// file yields an empty result and no error; absent files are valid empty
// input for every caller in this codebase.
func Read(path string) []*Node {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads nodes from r. Nesting is determined by indentation depth: a
// line indented deeper than the previous line is a child of it.
func Parse(r io.Reader) []*Node {
	var roots []*Node

	// Stack of (indent, node) pairs for the current ancestry.
	type frame struct {
		indent int
		node   *Node
	}
	var stack []frame

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		indent, rest := splitIndent(line)
		if rest == "" || strings.HasPrefix(rest, "#") {
			continue
		}

		node := NewNode(tokenize(rest)...)

		// Pop frames until the top is shallower than this line.
		for len(stack) > 0 && stack[len(stack)-1].indent >= indent {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			roots = append(roots, node)
		} else {
			stack[len(stack)-1].node.AddChild(node)
		}
		stack = append(stack, frame{indent: indent, node: node})
	}

	return roots
}

// splitIndent separates leading whitespace from the line content. Tabs and
// spaces each count one level.
func splitIndent(line string) (int, string) {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return i, line[i:]
		}
	}
	return len(line), ""
}

// tokenize splits a line into tokens. Tokens are separated by runs of spaces
// or tabs; a token beginning with '"' or '`' extends to the matching closing
// character and may contain whitespace.
func tokenize(s string) []string {
	var tokens []string
	i := 0
	for i < len(s) {
		// Skip separators.
		for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
			i++
		}
		if i >= len(s) {
			break
		}

		if s[i] == '"' || s[i] == '`' {
			quote := s[i]
			i++
			start := i
			for i < len(s) && s[i] != quote {
				i++
			}
			tokens = append(tokens, s[start:i])
			if i < len(s) {
				i++ // closing quote
			}
			continue
		}

		start := i
		for i < len(s) && s[i] != ' ' && s[i] != '\t' {
			i++
		}
		tokens = append(tokens, s[start:i])
	}
	return tokens
}
