package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framefold/instancer/internal/config"
)

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"populate", "reset", "check", "watch", "status", "pattern"} {
		assert.True(t, names[want], "missing command %q", want)
	}
}

func TestBuildConfigFlagOverlay(t *testing.T) {
	pf := rootCmd.PersistentFlags()
	require.NoError(t, pf.Set("pattern", "{type}"))
	require.NoError(t, pf.Set("spacing", "42"))
	require.NoError(t, pf.Set("color", "never"))
	t.Cleanup(func() {
		for _, name := range []string{"pattern", "spacing", "color"} {
			f := pf.Lookup(name)
			f.Changed = false
			_ = f.Value.Set(f.DefValue)
		}
	})

	cfg, err := buildConfig([]string{"doc.json"}, false)
	require.NoError(t, err)

	assert.Equal(t, "{type}", cfg.Pattern)
	assert.Equal(t, 42.0, cfg.Spacing)
	assert.Equal(t, config.ColorNever, cfg.ColorMode)
	assert.Equal(t, "doc.json", cfg.DocumentPath)
	assert.Equal(t, "Generated Instances", cfg.ContainerName, "untouched fields keep defaults")
}

func TestBuildConfigRequiresDocument(t *testing.T) {
	_, err := buildConfig(nil, false)
	assert.Error(t, err)

	_, err = buildConfig(nil, true)
	assert.NoError(t, err, "check mode relaxes the document requirement")
}

func TestBuildConfigRejectsBadLayout(t *testing.T) {
	pf := rootCmd.PersistentFlags()
	require.NoError(t, pf.Set("layout", "diagonal"))
	t.Cleanup(func() {
		f := pf.Lookup("layout")
		f.Changed = false
		_ = f.Value.Set(f.DefValue)
	})

	_, err := buildConfig([]string{"doc.json"}, false)
	assert.Error(t, err)
}
