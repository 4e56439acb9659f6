/*
Command dictlint checks and uses spell-checker resources.

	dictlint hyphenate --patterns hyph-de.tex Silbentrennung
	dictlint scan --forbid 'ß=use ss' de_CH.dic
	dictlint autocorrect lint DocumentList.xml
	dictlint autocorrect apply DocumentList.xml < draft.txt

Options shared by all commands are read from a TOML file given with
--config; see package internal/config for its layout.
*/
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mtrevisan/Hunspeller-sub002/internal/config"
)

var (
	configPath string
	verbose    bool
	cfg        = config.DefaultConfig()
	logger     = newLogger(log.InfoLevel)
)

var rootCmd = &cobra.Command{
	Use:           "dictlint",
	Short:         "dictlint checks hyphenation patterns, word lists and autocorrect tables",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}
		if configPath == "" {
			return nil
		}
		c, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = c
		logger.Debug("loaded config", "path", configPath)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		if err := cmd.Help(); err != nil {
			return
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug messages")
	rootCmd.AddCommand(hyphenateCmd, scanCmd, autocorrectCmd)
}

func newLogger(level log.Level) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "dictlint",
		Level:           level,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
