package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/framefold/instancer/internal/pipeline"
	"github.com/framefold/instancer/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <document.json>",
	Short: "Run once, then re-run whenever the document changes on disk",
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

		if _, err := pipeline.Run(cmd.Context(), cfg, log, st); err != nil {
			return err
		}

		w, err := watch.New(cfg.DocumentPath, cfg.WatchDebounce, cfg.Verbose, log,
			func(ctx context.Context) error {
				_, err := pipeline.Run(ctx, cfg, log, st)
				return err
			})
		if err != nil {
			return err
		}
		return w.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
