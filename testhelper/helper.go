// Package testhelper contains helpers shared by the package tests.
package testhelper

import (
	"regexp"
	"strings"
	"testing"
)

var leadingWhitespace = regexp.MustCompile(`^\s+`)

// TrimIndent strips the indentation of the first content line from every line
// of a raw string literal, so expected tables can be written inline:
//
//	want := testhelper.TrimIndent(t, `
//		a : a : Result
//		==============
//	`)
//
// The line holding the opening backtick is dropped and a whitespace-only last
// line becomes the trailing newline.
func TrimIndent(t *testing.T, src string) string {
	t.Helper()

	lines := strings.Split(src, "\n")
	if len(lines) < 2 {
		return src
	}

	indent := leadingWhitespace.FindString(lines[1])

	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, indent)
	}

	if last := len(lines) - 1; strings.TrimSpace(lines[last]) == "" {
		lines[last] = ""
	}

	return strings.Join(lines[1:], "\n")
}
