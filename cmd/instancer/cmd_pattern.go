package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framefold/instancer/internal/state"
	"github.com/framefold/instancer/internal/variant"
)

var patternClear bool

var patternCmd = &cobra.Command{
	Use:   "pattern [new-pattern]",
	Short: "Show or persist the name pattern",
	Long: `Without an argument, prints the persisted pattern. With one, stores it
so every later run uses it. Tokens are {componentSetName}, {allVariants},
or any variant property key; unknown tokens stay verbatim in names.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(nil, true)
		if err != nil {
			return err
		}
		st, err := state.Open(cfg.StateFile)
		if err != nil {
			return err
		}

		switch {
		case patternClear:
			st.Settings.Pattern = ""
			if err := st.Save(); err != nil {
				return err
			}
			fmt.Printf("Pattern cleared; runs use %q\n", variant.DefaultPattern)

		case len(args) == 1:
			p := variant.Pattern(args[0])
			st.Settings.Pattern = string(p)
			if err := st.Save(); err != nil {
				return err
			}
			if toks := p.Tokens(); len(toks) > 0 {
				fmt.Printf("Pattern set to %q (tokens: %v)\n", p, toks)
			} else {
				fmt.Printf("Pattern set to %q; note: no tokens, all instances get this exact name\n", p)
			}

		default:
			if st.Settings.Pattern == "" {
				fmt.Printf("%s (default)\n", variant.DefaultPattern)
			} else {
				fmt.Println(st.Settings.Pattern)
			}
		}
		return nil
	},
}

func init() {
	patternCmd.Flags().BoolVar(&patternClear, "clear", false, "forget the persisted pattern")
	rootCmd.AddCommand(patternCmd)
}
