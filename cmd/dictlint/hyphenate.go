package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mtrevisan/Hunspeller-sub002/tex"
)

var (
	patternsPath string
	showStats    bool
)

var hyphenateCmd = &cobra.Command{
	Use:   "hyphenate [word...]",
	Short: "hyphenate words with TeX patterns; reads words from stdin if none are given",
	RunE: func(cmd *cobra.Command, args []string) error {
		if patternsPath == "" {
			return fmt.Errorf("missing --patterns")
		}
		f, err := os.Open(patternsPath)
		if err != nil {
			return err
		}
		defer f.Close()
		dict, err := tex.LoadDictionary(patternsPath, f)
		if err != nil {
			return err
		}
		dict.LeftMin = cfg.Hyphenation.LeftMin
		dict.RightMin = cfg.Hyphenation.RightMin
		logger.Debug("loaded dictionary", "patterns", dict.PatternCount(), "exceptions", dict.ExceptionCount())
		if showStats {
			logger.Info("pattern trie", "stats", dict.PatternTrieStats())
		}
		out := bufio.NewWriter(cmd.OutOrStdout())
		defer out.Flush()
		if len(args) > 0 {
			for _, word := range args {
				fmt.Fprintln(out, dict.HyphenationString(word))
			}
			return nil
		}
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			for _, word := range strings.Fields(scanner.Text()) {
				fmt.Fprintln(out, dict.HyphenationString(word))
			}
		}
		return scanner.Err()
	},
}

func init() {
	hyphenateCmd.Flags().StringVarP(&patternsPath, "patterns", "p", "", "TeX pattern file (hyph-*.tex)")
	hyphenateCmd.Flags().BoolVar(&showStats, "stats", false, "log density of the pattern automaton")
}
