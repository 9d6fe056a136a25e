package main

import (
	"fmt"

	ini "github.com/Snowlt/go-ini"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newSectionsCmd())
}

func newSectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections <file>",
		Short: "List section names in document order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSections(args)
		},
	}
}

func runSections(args []string) error {
	doc, err := ini.Load(args[0], fileOptions()...)
	if err != nil {
		return err
	}

	names := doc.Names()
	if jsonOut {
		return printJSON(names)
	}
	if !doc.Untitled().IsEmpty() {
		fmt.Println("(untitled)")
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
