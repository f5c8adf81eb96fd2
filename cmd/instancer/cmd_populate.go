package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framefold/instancer/internal/display"
	"github.com/framefold/instancer/internal/pipeline"
)

var populateCmd = &cobra.Command{
	Use:     "populate <document.json>",
	Aliases: []string{"run", "scan"},
	Short:   "Scan component sets and fill the generated container",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(args, false)
		if err != nil {
			return err
		}
		log, st, err := openRuntime(cfg)
		if err != nil {
			return err
		}
		defer log.Close()

		display.PrintBanner()
		stats, err := pipeline.Run(cmd.Context(), cfg, log, st)
		if err != nil {
			return err
		}
		if stats.Failed > 0 {
			return fmt.Errorf("%d of %d instances failed", stats.Failed, stats.Unique)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(populateCmd)
}
