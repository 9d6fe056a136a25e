package main

import (
	"encoding/json"
	"fmt"
	"os"

	ini "github.com/Snowlt/go-ini"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose     bool
	jsonOut     bool
	encodingArg string
)

var rootCmd = &cobra.Command{
	Use:   "inictl",
	Short: "Inspect and edit INI configuration files",
	Long: `inictl reads, edits and reformats INI files while preserving the
original order of sections, keys and comments. Files in non-UTF-8
character encodings are handled with --encoding.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&encodingArg, "encoding", "", "Character encoding of the file (e.g. utf-16le, windows-1252)")
}

func main() {
	execute()
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// fileOptions translates the global flags into library options.
func fileOptions() []ini.Option {
	var opts []ini.Option
	if encodingArg != "" {
		opts = append(opts, ini.Encoding(encodingArg))
	}
	return opts
}

// printVerbose prints a progress message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// lookupSection resolves a section argument; the empty string addresses
// the untitled section.
func lookupSection(doc *ini.Document, name string) (*ini.Section, error) {
	if name == "" {
		return doc.Untitled(), nil
	}
	sec, ok := doc.Section(name)
	if !ok {
		return nil, fmt.Errorf("section %q not found", name)
	}
	return sec, nil
}
