package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mtrevisan/Hunspeller-sub002/autocorrect"
)

var autocorrectCmd = &cobra.Command{
	Use:   "autocorrect",
	Short: "check or apply an autocorrect block list (DocumentList.xml)",
}

var autocorrectLintCmd = &cobra.Command{
	Use:   "lint DocumentList.xml",
	Short: "report duplicate, self-correcting, contained and cascading entries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := readEntries(args[0])
		if err != nil {
			return err
		}
		issues, err := autocorrect.Lint(entries)
		if err != nil {
			return err
		}
		for _, issue := range issues {
			fmt.Fprintln(cmd.OutOrStdout(), issue)
		}
		if len(issues) > 0 {
			return fmt.Errorf("%s: %d issues in %d entries", args[0], len(issues), len(entries))
		}
		logger.Info("no issues", "file", args[0], "entries", len(entries))
		return nil
	},
}

var autocorrectApplyCmd = &cobra.Command{
	Use:   "apply DocumentList.xml [text-file]",
	Short: "correct a text file, or stdin, and write it to stdout",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := readEntries(args[0])
		if err != nil {
			return err
		}
		table, err := autocorrect.NewTable(entries)
		if err != nil {
			return err
		}
		in := cmd.InOrStdin()
		if len(args) == 2 {
			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}
		text, err := io.ReadAll(in)
		if err != nil {
			return err
		}
		corrected, n := table.Apply(string(text))
		logger.Debug("applied autocorrect", "replacements", n)
		_, err = io.WriteString(cmd.OutOrStdout(), corrected)
		return err
	},
}

func init() {
	autocorrectCmd.AddCommand(autocorrectLintCmd, autocorrectApplyCmd)
}

func readEntries(path string) ([]autocorrect.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return autocorrect.ReadXML(f)
}
