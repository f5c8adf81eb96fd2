package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/framefold/instancer/internal/config"
	"github.com/framefold/instancer/internal/logging"
	"github.com/framefold/instancer/internal/state"
	"github.com/framefold/instancer/internal/term"
)

// Persistent flag storage. Flags overlay the loaded config only when the
// operator actually set them, so config file and environment values hold
// otherwise.
var (
	flagConfig    string
	flagOutput    string
	flagPage      string
	flagPattern   string
	flagKeywords  []string
	flagContainer string
	flagLayout    string
	flagSpacing   float64
	flagPadding   float64
	flagMaxRow    float64
	flagGutter    float64
	flagDryRun    bool
	flagVerbose   bool
	flagColor     string
	flagLogFile   string
	flagStateFile string
	flagDebounce  time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "instancer",
	Short: "Generate instances of every component variant in a canvas document",
	Long: `instancer scans the component sets on a page of a canvas document,
renders a name for each variant from a {token} pattern, drops duplicate
names (first occurrence wins), and places one instance per unique name
into an auto-layout container. Re-running replaces the container's
contents instead of accumulating.`,
	Version:       fmt.Sprintf("%s (%s)", version, commit),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "config file (default ./instancer.toml)")
	pf.StringVarP(&flagOutput, "output", "o", "", "write the document here instead of in place")
	pf.StringVar(&flagPage, "page", "", "page to scan (default: first page)")
	pf.StringVar(&flagPattern, "pattern", "", "name pattern, e.g. \"{componentSetName}/{allVariants}\"")
	pf.StringSliceVar(&flagKeywords, "keywords", nil, "fallback classification vocabulary")
	pf.StringVar(&flagContainer, "container", "", "name of the generated container")
	pf.StringVar(&flagLayout, "layout", "", "container layout: horizontal or vertical")
	pf.Float64Var(&flagSpacing, "spacing", 0, "gap between instances")
	pf.Float64Var(&flagPadding, "padding", 0, "inner container padding")
	pf.Float64Var(&flagMaxRow, "max-row-width", 0, "wrap width for horizontal layout")
	pf.Float64Var(&flagGutter, "gutter", 0, "clearance from existing page content")
	pf.BoolVarP(&flagDryRun, "dry-run", "n", false, "report what would happen without saving")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&flagColor, "color", "", "color output: auto, always, or never")
	pf.StringVar(&flagLogFile, "log-file", "", "append plain logs to this file")
	pf.StringVar(&flagStateFile, "state-file", "", "state file location")
	pf.DurationVar(&flagDebounce, "debounce", 0, "watch mode debounce window")
}

// buildConfig loads configuration, overlays changed flags and the
// positional document argument, validates, and configures terminal colors.
func buildConfig(args []string, checkOnly bool) (*config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{ConfigFile: flagConfig})
	if err != nil {
		return nil, err
	}

	pf := rootCmd.PersistentFlags()
	if pf.Changed("output") {
		cfg.OutputPath = flagOutput
	}
	if pf.Changed("page") {
		cfg.PageName = flagPage
	}
	if pf.Changed("pattern") {
		cfg.Pattern = flagPattern
	}
	if pf.Changed("keywords") {
		cfg.Keywords = flagKeywords
	}
	if pf.Changed("container") {
		cfg.ContainerName = flagContainer
	}
	if pf.Changed("layout") {
		cfg.Layout = config.LayoutMode(flagLayout)
	}
	if pf.Changed("spacing") {
		cfg.Spacing = flagSpacing
	}
	if pf.Changed("padding") {
		cfg.Padding = flagPadding
	}
	if pf.Changed("max-row-width") {
		cfg.MaxRowWidth = flagMaxRow
	}
	if pf.Changed("gutter") {
		cfg.Gutter = flagGutter
	}
	if pf.Changed("dry-run") {
		cfg.DryRun = flagDryRun
	}
	if pf.Changed("verbose") {
		cfg.Verbose = flagVerbose
	}
	if pf.Changed("color") {
		cfg.ColorMode = config.ColorMode(flagColor)
	}
	if pf.Changed("log-file") {
		cfg.LogFile = flagLogFile
	}
	if pf.Changed("state-file") {
		cfg.StateFile = flagStateFile
	}
	if pf.Changed("debounce") {
		cfg.WatchDebounce = flagDebounce
	}

	if len(args) > 0 {
		cfg.DocumentPath = args[0]
	}
	cfg.CheckOnly = checkOnly
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	term.Configure(cfg.ColorMode)
	return cfg, nil
}

// openRuntime builds the logger and state store for a command run.
func openRuntime(cfg *config.Config) (*logging.Logger, *state.Store, error) {
	log, err := logging.NewLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	st, err := state.Open(cfg.StateFile)
	if err != nil {
		log.Close()
		return nil, nil, err
	}
	return log, st, nil
}
