package scan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var prefixes = []string{";", "#"}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Line
	}{
		{"comment at column zero", "; hello", Line{Kind: Comment, Text: " hello"}},
		{"comment after whitespace", "  \t# hi", Line{Kind: Comment, Text: " hi"}},
		{"hash prefix", "#x", Line{Kind: Comment, Text: "x"}},
		{"prefix mid line is not a comment", "a ; b", Line{Kind: Raw, Text: "a ; b"}},
		{"section header", "[server]", Line{Kind: SectionHeader, Name: "server"}},
		{"header with inner brackets", "[a[b]c]", Line{Kind: SectionHeader, Name: "a[b]c"}},
		{"header with surrounding text", "x[name]y", Line{Kind: SectionHeader, Name: "name"}},
		{"header beats key value", "x=[1]", Line{Kind: SectionHeader, Name: "1"}},
		{"key value", "a=b", Line{Kind: KeyValue, Key: "a", Value: "b"}},
		{"first equals wins", "a=b=c", Line{Kind: KeyValue, Key: "a", Value: "b=c"}},
		{"empty key and value", "=", Line{Kind: KeyValue, Key: "", Value: ""}},
		{"open bracket without close falls to key value", "[a=b", Line{Kind: KeyValue, Key: "[a", Value: "b"}},
		{"close before open falls through", "]a[", Line{Kind: Raw, Text: "]a["}},
		{"plain text", "hello world", Line{Kind: Raw, Text: "hello world"}},
		{"empty line", "", Line{Kind: Raw, Text: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Classify(tt.line, prefixes))
		})
	}
}

func TestClassify_PrefixOrder(t *testing.T) {
	// When one prefix starts with another, the first configured prefix
	// that matches wins.
	got := Classify(";;x", []string{";;", ";"})
	require.Equal(t, Line{Kind: Comment, Text: "x"}, got)

	got = Classify(";;x", []string{";", ";;"})
	require.Equal(t, Line{Kind: Comment, Text: ";x"}, got)
}
