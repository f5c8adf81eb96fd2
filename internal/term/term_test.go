package term

import (
	"testing"

	"github.com/muesli/termenv"

	"github.com/framefold/instancer/internal/config"
)

func TestProfileNever(t *testing.T) {
	if p := Profile(config.ColorNever); p != termenv.Ascii {
		t.Errorf("never: got %v", p)
	}
}

func TestProfileAlways(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if p := Profile(config.ColorAlways); p == termenv.Ascii {
		t.Error("always must override NO_COLOR")
	}
}

func TestProfileAutoRespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if p := Profile(config.ColorAuto); p != termenv.Ascii {
		t.Errorf("auto with NO_COLOR: got %v", p)
	}
}

func TestProfileAutoDumbTerm(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "dumb")
	if p := Profile(config.ColorAuto); p != termenv.Ascii {
		t.Errorf("auto with TERM=dumb: got %v", p)
	}
}

func TestConfigureEnabled(t *testing.T) {
	Configure(config.ColorNever)
	if Enabled() {
		t.Error("never must disable")
	}
	Configure(config.ColorAlways)
	if !Enabled() {
		t.Error("always must enable")
	}
}
