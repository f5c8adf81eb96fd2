package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// AppName is used for config and state directory names.
	AppName = "instancer"
	// ConfigFileName is the config file name without extension.
	ConfigFileName = "instancer"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
)

// LoadOptions controls where Load looks for a config file.
type LoadOptions struct {
	// ConfigFile, when set, is used exclusively; a missing file is an error.
	ConfigFile string
}

// Load builds a Config from defaults, an optional TOML config file, and
// INSTANCER_* environment variables. Search order when no explicit file is
// given: ./instancer.toml, then the per-user config directory. A missing
// file is not an error; defaults apply.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", opts.ConfigFile, err)
		}
	} else {
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, AppName))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	v.SetEnvPrefix("INSTANCER")
	v.AutomaticEnv()

	cfg := DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// setDefaults registers every field's default so partial config files and
// environment overrides merge cleanly.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("output", d.OutputPath)
	v.SetDefault("page", d.PageName)
	v.SetDefault("pattern", d.Pattern)
	v.SetDefault("keywords", d.Keywords)
	v.SetDefault("container", d.ContainerName)
	v.SetDefault("layout", string(d.Layout))
	v.SetDefault("spacing", d.Spacing)
	v.SetDefault("padding", d.Padding)
	v.SetDefault("max_row_width", d.MaxRowWidth)
	v.SetDefault("gutter", d.Gutter)
	v.SetDefault("dry_run", d.DryRun)
	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("color", string(d.ColorMode))
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("state_file", d.StateFile)
	v.SetDefault("watch_debounce", d.WatchDebounce)
}
