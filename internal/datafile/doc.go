// Package datafile reads and writes the indentation-nested token format used
// by plugin descriptor and settings files.
//
// A file is a sequence of lines. Each line holds one or more tokens separated
// by spaces or tabs; tokens containing whitespace are wrapped in double quotes
// or, when they contain a quote, in backticks. A line indented deeper than the
// previous one becomes a child of it, so a file parses into a forest of nodes:
//
//	state
//		"Some Plugin" 1
//		"Other Plugin" 0
//
// Lines whose first non-whitespace character is '#' are comments. Blank lines
// are ignored but do not reset nesting.
package datafile
