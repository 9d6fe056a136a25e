package main

import (
	ini "github.com/Snowlt/go-ini"
	"github.com/spf13/cobra"
)

var setComment string

func init() {
	cmd := newSetCmd()
	cmd.Flags().StringVar(&setComment, "comment", "", "Attach a comment after the key")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <file> <section> <key> <value>",
		Short: "Set a key to a value",
		Long: `The set command binds a key to a value and writes the file back,
creating the section if needed. Existing keys keep their position and
comments; new keys are appended to the section.

Example:
  inictl set app.ini server port 8080
  inictl set app.ini server host 10.0.0.1 --comment "moved to the new subnet"`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
}

func runSet(args []string) error {
	path, section, key, value := args[0], args[1], args[2], args[3]

	printVerbose("Loading %s\n", path)
	doc, err := ini.Load(path, fileOptions()...)
	if err != nil {
		return err
	}

	var sec *ini.Section
	if section == "" {
		sec = doc.Untitled()
	} else {
		sec = doc.SectionOrCreate(section)
	}
	sec.Set(key, value)
	if setComment != "" {
		if err := sec.AddCommentsAfter(key, setComment); err != nil {
			return err
		}
	}

	printVerbose("Writing %s\n", path)
	return ini.Save(path, doc, fileOptions()...)
}
