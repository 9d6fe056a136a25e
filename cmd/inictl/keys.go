package main

import (
	"fmt"

	ini "github.com/Snowlt/go-ini"
	"github.com/spf13/cobra"
)

var keysWithValues bool

func init() {
	cmd := newKeysCmd()
	cmd.Flags().BoolVar(&keysWithValues, "values", false, "Print key=value pairs")
	rootCmd.AddCommand(cmd)
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys <file> <section>",
		Short: "List the keys of a section in document order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(args)
		},
	}
}

func runKeys(args []string) error {
	path, section := args[0], args[1]

	doc, err := ini.Load(path, fileOptions()...)
	if err != nil {
		return err
	}
	sec, err := lookupSection(doc, section)
	if err != nil {
		return err
	}

	keys := sec.Keys()
	if jsonOut {
		if keysWithValues {
			pairs := make([]map[string]string, len(keys))
			for i, k := range keys {
				v, _ := sec.Get(k)
				pairs[i] = map[string]string{"key": k, "value": v}
			}
			return printJSON(pairs)
		}
		return printJSON(keys)
	}
	for _, k := range keys {
		if keysWithValues {
			v, _ := sec.Get(k)
			fmt.Printf("%s=%s\n", k, v)
		} else {
			fmt.Println(k)
		}
	}
	return nil
}
