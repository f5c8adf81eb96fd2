package main

import (
	"github.com/spf13/cobra"

	"github.com/framefold/instancer/internal/check"
)

var checkCmd = &cobra.Command{
	Use:   "check [document.json]",
	Short: "Diagnose the environment: document, pattern tokens, state file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(args, true)
		if err != nil {
			return err
		}
		log, _, err := openRuntime(cfg)
		if err != nil {
			return err
		}
		defer log.Close()

		check.RunCheck(cfg, log)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
