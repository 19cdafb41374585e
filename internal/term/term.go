// Package term holds the ANSI color state shared by the logger and the
// banner, and decides from the color mode and the log stream whether it is on.
package term

import (
	"os"
	"strings"

	"github.com/mnrn/VKGraphics/internal/config"
)

// Escape sequences, one per log level plus the banner. All are empty while
// colors are off.
var (
	Red     = "" // ERROR
	Yellow  = "" // WARNING
	Blue    = "" // INFO
	Cyan    = "" // DEBUG
	Magenta = "" // Banner.
	NC      = "" // Reset.
)

type palette struct {
	red, yellow, blue, cyan, magenta, reset string
}

var ansi = palette{
	red:     "\033[1;91m",
	yellow:  "\033[1;93m",
	blue:    "\033[1;94m",
	cyan:    "\033[1;96m",
	magenta: "\033[1;95m",
	reset:   "\033[0m",
}

// Configure switches colors on or off for output written to out.
// ColorAuto enables them only for a terminal, honoring NO_COLOR and
// TERM=dumb.
func Configure(mode config.ColorMode, out *os.File) {
	var p palette
	if wantColor(mode, out) {
		p = ansi
	}
	Red, Yellow, Blue, Cyan, Magenta, NC = p.red, p.yellow, p.blue, p.cyan, p.magenta, p.reset
}

// Enabled reports whether colors are on.
func Enabled() bool { return NC != "" }

// Wrap surrounds s with color and a reset. It returns s unchanged when color
// is empty.
func Wrap(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + NC
}

func wantColor(mode config.ColorMode, out *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" || strings.EqualFold(os.Getenv("TERM"), "dumb") {
		return false
	}
	return IsTerminal(out)
}

// IsTerminal reports whether f is a character device.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
