// Package check provides tool diagnostics (-check mode) and the pre-run
// lookup of the external compilers each command needs.
package check

import (
	"context"
	"errors"
	"os/exec"
	"runtime/debug"
	"strings"

	"github.com/mnrn/VKGraphics/internal/config"
)

// ErrToolNotFound is wrapped by lookup failures.
var ErrToolNotFound = errors.New("tool not found")

// Logger is the minimal logging interface needed by this package.
type Logger interface {
	Info(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// Tool is an external program a command invokes.
type Tool struct {
	Name        string   // Display name: "glslc", "toktx", "convert".
	Bin         string   // Configured binary, a PATH name or a path.
	VersionArgs []string // Arguments that print a version line.
}

// Required returns the external tools cmd invokes under cfg. spvconv with
// only WGSL selected needs none.
func Required(cfg *config.Config, cmd config.Command) []Tool {
	var tools []Tool
	switch cmd {
	case config.CommandSpvconv:
		if cfg.HasLanguage(config.LangGLSL) || cfg.HasLanguage(config.LangHLSL) {
			tools = append(tools, Tool{Name: "glslc", Bin: cfg.Glslc, VersionArgs: []string{"--version"}})
		}
	case config.CommandTexconv:
		if cfg.HasFormat(config.FormatKTX) {
			tools = append(tools, Tool{Name: "toktx", Bin: cfg.Toktx, VersionArgs: []string{"--version"}})
		}
		if cfg.HasFormat(config.FormatDDS) {
			tools = append(tools, Tool{Name: "convert", Bin: cfg.Convert, VersionArgs: []string{"-version"}})
		}
	}
	return tools
}

// Lookup resolves t.Bin to an executable path.
func Lookup(t Tool) (string, error) {
	path, err := exec.LookPath(t.Bin)
	if err != nil {
		return "", errors.Join(ErrToolNotFound, err)
	}
	return path, nil
}

// MissingTools logs a WARNING for every required tool that cannot be found
// and returns them. The run goes on; each affected file then fails on its own.
func MissingTools(cfg *config.Config, cmd config.Command, log Logger) []Tool {
	var missing []Tool
	for _, t := range Required(cfg, cmd) {
		if _, err := Lookup(t); err != nil {
			log.Warn("%s not found (%s); every file it handles will fail", t.Name, t.Bin)
			missing = append(missing, t)
		}
	}
	return missing
}

// RunCheck runs the -check flow: reports where each required tool lives and
// its version line. This is informational only; it does not stop on failure.
// It returns the number of tools that were not found.
func RunCheck(ctx context.Context, cfg *config.Config, cmd config.Command, log Logger) int {
	log.Info("=== System Check ===")

	missing := 0
	for _, t := range Required(cfg, cmd) {
		if !checkTool(ctx, t, log) {
			missing++
		}
	}
	if cmd == config.CommandSpvconv {
		log.Info("WGSL: in-process (%s)", nagaVersion())
	}
	return missing
}

// checkTool logs the location and version of one tool.
func checkTool(ctx context.Context, t Tool, log Logger) bool {
	path, err := Lookup(t)
	if err != nil {
		log.Error("%s not found (%s)", t.Name, t.Bin)
		return false
	}
	line, err := VersionLine(ctx, path, t.VersionArgs...)
	if err != nil {
		log.Warn("%s found at %s but version query failed: %v", t.Name, path, err)
		return true
	}
	log.Info("%s: %s (%s)", t.Name, line, path)
	return true
}

// VersionLine runs bin with args and returns the first non-empty line of its
// combined output.
func VersionLine(ctx context.Context, bin string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, bin, args...).CombinedOutput()
	if err != nil {
		return "", err
	}
	return firstLine(string(out)), nil
}

func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

// nagaVersion reports the linked naga module version.
func nagaVersion() string {
	const mod = "github.com/gogpu/naga"
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, d := range bi.Deps {
			if d.Path == mod {
				return mod + " " + d.Version
			}
		}
	}
	return mod
}
