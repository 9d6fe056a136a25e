package main

import (
	"os"

	ini "github.com/Snowlt/go-ini"
	"github.com/spf13/cobra"
)

var (
	fmtWrite         bool
	fmtSpacedEquals  bool
	fmtCommentPrefix string
	fmtCRLF          bool
)

func init() {
	cmd := newFmtCmd()
	cmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Rewrite the file instead of printing")
	cmd.Flags().BoolVar(&fmtSpacedEquals, "spaced-equals", false, "Emit spaces around =")
	cmd.Flags().StringVar(&fmtCommentPrefix, "comment-prefix", ";", "Comment marker to emit")
	cmd.Flags().BoolVar(&fmtCRLF, "crlf", false, "Emit CRLF line endings")
	rootCmd.AddCommand(cmd)
}

func newFmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <file>",
		Short: "Reformat an INI file",
		Long: `The fmt command parses a file and reprints it under uniform
formatting: one comment marker, consistent spacing around = and a single
line-ending style. Section, key and comment order is preserved.

Example:
  inictl fmt app.ini
  inictl fmt app.ini -w --spaced-equals --comment-prefix "#"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(args)
		},
	}
}

func runFmt(args []string) error {
	path := args[0]

	doc, err := ini.Load(path, fileOptions()...)
	if err != nil {
		return err
	}

	opts := append(fileOptions(),
		ini.SpaceAroundEquals(fmtSpacedEquals),
		ini.CommentPrefix(fmtCommentPrefix),
	)
	if fmtCRLF {
		opts = append(opts, ini.LineSeparator("\r\n"))
	}

	if fmtWrite {
		printVerbose("Writing %s\n", path)
		return ini.Save(path, doc, opts...)
	}
	return ini.SaveTo(os.Stdout, doc, opts...)
}
