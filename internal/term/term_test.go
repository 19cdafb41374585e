package term

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mnrn/VKGraphics/internal/config"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { Configure(config.ColorNever, nil) })

	Configure(config.ColorAlways, nil)
	if !Enabled() || Red == "" {
		t.Error("ColorAlways should enable colors")
	}

	Configure(config.ColorNever, nil)
	if Enabled() || Red != "" {
		t.Error("ColorNever should disable colors")
	}
}

func TestConfigure_AutoOnRegularFile(t *testing.T) {
	t.Cleanup(func() { Configure(config.ColorNever, nil) })

	f, err := os.Create(filepath.Join(t.TempDir(), "out.log"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	Configure(config.ColorAuto, f)
	if Enabled() {
		t.Error("ColorAuto should stay off for a non-terminal")
	}
}

func TestIsTerminal_Nil(t *testing.T) {
	if IsTerminal(nil) {
		t.Error("IsTerminal(nil) should be false")
	}
}

func TestWrap(t *testing.T) {
	t.Cleanup(func() { Configure(config.ColorNever, nil) })

	Configure(config.ColorNever, nil)
	if got := Wrap(Red, "ERROR"); got != "ERROR" {
		t.Errorf("Wrap with colors off = %q", got)
	}

	Configure(config.ColorAlways, nil)
	if got, want := Wrap(Red, "ERROR"), "\033[1;91mERROR\033[0m"; got != want {
		t.Errorf("Wrap(Red) = %q, want %q", got, want)
	}
	if got := Wrap("", "plain"); got != "plain" {
		t.Errorf("Wrap with empty color = %q", got)
	}
}

func TestConfigure_NoColorEnv(t *testing.T) {
	t.Cleanup(func() { Configure(config.ColorNever, nil) })
	t.Setenv("NO_COLOR", "1")

	Configure(config.ColorAuto, os.Stderr)
	if Enabled() {
		t.Error("NO_COLOR should disable colors in auto mode")
	}
	Configure(config.ColorAlways, os.Stderr)
	if !Enabled() {
		t.Error("ColorAlways should win over NO_COLOR")
	}
}
