package main

import (
	"fmt"

	ini "github.com/Snowlt/go-ini"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDelCmd())
}

func newDelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "del <file> <section> [key]",
		Short: "Delete a key or a whole section",
		Long: `The del command removes a key from a section, or the section itself
when no key is given. Comments that followed a removed key stay attached
to the neighboring entry. The untitled section cannot be removed, only
its keys can.

Example:
  inictl del app.ini server port
  inictl del app.ini obsolete`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDel(args)
		},
	}
}

func runDel(args []string) error {
	path, section := args[0], args[1]

	printVerbose("Loading %s\n", path)
	doc, err := ini.Load(path, fileOptions()...)
	if err != nil {
		return err
	}

	if len(args) == 2 {
		if section == "" {
			return fmt.Errorf("the untitled section cannot be removed; delete its keys instead")
		}
		if !doc.RemoveSection(section) {
			return fmt.Errorf("section %q not found", section)
		}
	} else {
		key := args[2]
		sec, err := lookupSection(doc, section)
		if err != nil {
			return err
		}
		if !sec.Remove(key) {
			return fmt.Errorf("key %q not found in section %q", key, section)
		}
	}

	printVerbose("Writing %s\n", path)
	return ini.Save(path, doc, fileOptions()...)
}
