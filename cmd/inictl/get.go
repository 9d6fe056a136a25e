package main

import (
	"fmt"

	ini "github.com/Snowlt/go-ini"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <section> <key>",
		Short: "Print the value of a key",
		Long: `The get command prints the raw value bound to a key. Use an empty
section name for content before the first [section] header.

Example:
  inictl get app.ini server host
  inictl get app.ini "" greeting
  inictl get legacy.ini server host --encoding windows-1252`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
}

func runGet(args []string) error {
	path, section, key := args[0], args[1], args[2]

	printVerbose("Loading %s\n", path)
	doc, err := ini.Load(path, fileOptions()...)
	if err != nil {
		return err
	}

	sec, err := lookupSection(doc, section)
	if err != nil {
		return err
	}
	value, ok := sec.Get(key)
	if !ok {
		return fmt.Errorf("key %q not found in section %q", key, section)
	}

	if jsonOut {
		return printJSON(map[string]string{"section": section, "key": key, "value": value})
	}
	fmt.Println(value)
	return nil
}
