package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framefold/instancer/internal/display"
	"github.com/framefold/instancer/internal/state"
	"github.com/framefold/instancer/internal/variant"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the persisted settings and last scan summary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(nil, true)
		if err != nil {
			return err
		}
		st, err := state.Open(cfg.StateFile)
		if err != nil {
			return err
		}

		pattern := st.Settings.Pattern
		if pattern == "" {
			pattern = string(variant.DefaultPattern) + " (default)"
		}
		lastScan := "never"
		if !st.Settings.LastScan.IsZero() {
			lastScan = st.Settings.LastScan.Local().Format("2006-01-02 15:04:05")
		}

		fmt.Print(display.Summary("Settings", [][2]string{
			{"State file", st.Path()},
			{"Pattern", pattern},
			{"Keywords", keywordsLabel(st.Settings.Keywords)},
		}))
		fmt.Println()
		fmt.Print(display.Summary("Last scan", [][2]string{
			{"When", lastScan},
			{"Container", st.Settings.ContainerName},
			{"Component sets", fmt.Sprintf("%d", st.Settings.LastSets)},
			{"Members", fmt.Sprintf("%d", st.Settings.LastMembers)},
			{"Instances created", fmt.Sprintf("%d", st.Settings.LastCreated)},
		}))
		return nil
	},
}

func keywordsLabel(kw []string) string {
	if len(kw) == 0 {
		return fmt.Sprintf("%v (default)", []string(variant.DefaultKeywords))
	}
	return fmt.Sprintf("%v", kw)
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
