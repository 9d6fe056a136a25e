// Package scan classifies raw INI source lines. It is the stateless half
// of the deserializer: one line in, one tagged record out. Attaching lines
// to sections and entries is the caller's job.
package scan

import (
	"strings"
	"unicode"
)

// Kind identifies what a source line is.
type Kind uint8

const (
	// Raw is any line that matched no other classification. Depending on
	// parser state it continues the previous value or accumulates as
	// dangling text.
	Raw Kind = iota
	// Comment is a line starting with a comment prefix, ignoring leading
	// whitespace.
	Comment
	// SectionHeader is a line carrying a [name] header.
	SectionHeader
	// KeyValue is a key=value entry line.
	KeyValue
)

// Line is one classified source line. Only the fields relevant to its
// Kind are set; no trimming has been applied.
type Line struct {
	Kind  Kind
	Name  string // SectionHeader: text between the first '[' and last ']'
	Key   string // KeyValue: text before the first '='
	Value string // KeyValue: text after the first '='
	Text  string // Comment: text after the prefix; Raw: the whole line
}

// Classify tags a single source line, applying the classifications in
// strict priority order: comment, section header, key/value, raw. A
// malformed header (no ']' after the first '[') falls through to the next
// classification instead of failing; every line classifies as something.
//
// A line is a comment when its first non-whitespace characters equal one
// of the prefixes; the first matching prefix in the given order wins.
func Classify(line string, prefixes []string) Line {
	stripped := strings.TrimLeftFunc(line, unicode.IsSpace)
	for _, p := range prefixes {
		if strings.HasPrefix(stripped, p) {
			return Line{Kind: Comment, Text: stripped[len(p):]}
		}
	}

	if open := strings.IndexByte(line, '['); open >= 0 {
		if end := strings.LastIndexByte(line, ']'); end > open {
			return Line{Kind: SectionHeader, Name: line[open+1 : end]}
		}
	}

	if eq := strings.IndexByte(line, '='); eq >= 0 {
		return Line{Kind: KeyValue, Key: line[:eq], Value: line[eq+1:]}
	}

	return Line{Kind: Raw, Text: line}
}
