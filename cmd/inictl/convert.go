package main

import (
	ini "github.com/Snowlt/go-ini"
	"github.com/spf13/cobra"
)

var convertTo string

func init() {
	cmd := newConvertCmd()
	cmd.Flags().StringVar(&convertTo, "to", "utf-8", "Character encoding of the output file")
	rootCmd.AddCommand(cmd)
}

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Re-encode an INI file between character encodings",
		Long: `The convert command reads a file in the encoding given by --encoding
and writes it to a new path in the encoding given by --to.

Example:
  inictl convert legacy.ini app.ini --encoding windows-1252
  inictl convert app.ini exported.ini --to utf-16le`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args)
		},
	}
}

func runConvert(args []string) error {
	in, out := args[0], args[1]

	printVerbose("Loading %s\n", in)
	doc, err := ini.Load(in, fileOptions()...)
	if err != nil {
		return err
	}

	printVerbose("Writing %s\n", out)
	return ini.Save(out, doc, ini.Encoding(convertTo))
}
