package ini_test

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ini "github.com/Snowlt/go-ini"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

// TestGolden parses each testdata INI file and formats it back under the
// default options; the .golden file holds the canonical output.
func TestGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.ini")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			src, err := os.ReadFile(file)
			require.NoError(t, err)

			doc, err := ini.Parse(src)
			require.NoError(t, err)
			actual, err := ini.Marshal(doc)
			require.NoError(t, err)

			goldenFile := strings.Replace(file, ".ini", ".golden", 1)
			if *update {
				err := os.WriteFile(goldenFile, actual, 0o644)
				require.NoError(t, err)
			}

			expected, err := os.ReadFile(goldenFile)
			require.NoError(t, err, "Golden file not found. Run with -update to create it.")

			require.Equal(t, string(expected), string(actual), "Formatted output does not match golden file.")
		})
	}
}

// The canonical output must be a fixed point: formatting it and parsing
// it back reproduces the same document and the same text.
func TestGoldenStable(t *testing.T) {
	files, err := filepath.Glob("testdata/*.golden")
	require.NoError(t, err)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			src, err := os.ReadFile(file)
			require.NoError(t, err)

			doc, err := ini.Parse(src)
			require.NoError(t, err)
			out, err := ini.Marshal(doc)
			require.NoError(t, err)
			require.Equal(t, string(src), string(out))

			again, err := ini.Parse(out)
			require.NoError(t, err)
			require.True(t, doc.Equal(again))
		})
	}
}
