package main

import (
	"github.com/spf13/cobra"

	"github.com/framefold/instancer/internal/pipeline"
)

var resetCmd = &cobra.Command{
	Use:   "reset <document.json>",
	Short: "Remove the generated container and clear the scan state",
	Args:  cobra.ExactArgs(1),
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

		return pipeline.Reset(cfg, log, st)
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
