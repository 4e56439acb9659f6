package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mtrevisan/Hunspeller-sub002/wordscan"
)

var (
	forbidFlags []string
	workers     int
)

var scanCmd = &cobra.Command{
	Use:   "scan file.dic",
	Short: "report words of a Hunspell word list containing forbidden substrings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		forbidden := cfg.Forbidden()
		for _, flag := range forbidFlags {
			key, reason, _ := strings.Cut(flag, "=")
			if key == "" {
				return fmt.Errorf("invalid --forbid %q", flag)
			}
			forbidden[key] = reason
		}
		if len(forbidden) == 0 {
			return fmt.Errorf("nothing to scan for: use --forbid or scan.forbidden in the config")
		}
		opts, err := cfg.AutomatonOptions()
		if err != nil {
			return err
		}
		scanner, err := wordscan.NewScanner(forbidden, opts...)
		if err != nil {
			return err
		}
		scanner.Workers = cfg.Scan.Workers
		if workers > 0 {
			scanner.Workers = workers
		}
		scanner.Progress = func(done, total int) {
			if done%100000 == 0 || done == total {
				logger.Debug("scanning", "done", done, "total", total)
			}
		}
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		findings, err := scanner.Scan(cmd.Context(), f)
		if err != nil {
			return err
		}
		for _, finding := range findings {
			fmt.Fprintln(cmd.OutOrStdout(), finding)
		}
		if len(findings) > 0 {
			return fmt.Errorf("%s: %d findings", args[0], len(findings))
		}
		logger.Info("no findings", "file", args[0])
		return nil
	},
}

func init() {
	scanCmd.Flags().StringArrayVarP(&forbidFlags, "forbid", "f", nil, "forbidden substring as substring=reason, repeatable")
	scanCmd.Flags().IntVarP(&workers, "workers", "w", 0, "number of workers, overrides scan.workers")
}
