// Package config holds runtime configuration for the asset tools: defaults,
// environment overrides, CLI flag parsing, and validation. With no flags and
// no environment each command walks its whole asset tree with stock tool names.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// --- Enum types for validated string fields ---

// Language is a shader source language handled by spvconv.
type Language string

const (
	LangGLSL Language = "GLSL" // Compiled with glslc.
	LangHLSL Language = "HLSL" // Compiled with glslc (HLSL front end).
	LangWGSL Language = "WGSL" // Compiled in-process.
)

// Format is a texture output format handled by texconv.
type Format string

const (
	FormatKTX Format = "ktx" // toktx, 2D with generated mipmaps.
	FormatDDS Format = "dds" // ImageMagick convert, DXT5 block compression.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stderr is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// overlaid by [ApplyEnv], and then mutated by the flag parsers before being
// passed (by pointer) to packages that need it.
type Config struct {
	// Root is the project root; assets live under Root/Assets.
	// Empty means the parent of the working directory.
	Root string

	// External tool binaries (name on PATH or absolute path).
	Glslc   string // Default: "glslc".
	Toktx   string // Default: "toktx".
	Convert string // Default: "convert".

	// Selection.
	Languages []Language // spvconv; default GLSL, HLSL.
	Formats   []Format   // texconv; default ktx, dds.

	// Behavior flags.
	DryRun   bool
	Strict   bool // Abort the run on an unrecognized shader stage code.
	MakeDirs bool // Default: true. Create destination directories before invoking tools.
	Verify   bool // Default: true. Check SPIR-V magic number of compiled output.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns the stock configuration: tools from PATH, GLSL and
// HLSL shaders, both texture formats, directory creation and verification on.
func DefaultConfig() Config {
	return Config{
		Glslc:     "glslc",
		Toktx:     "toktx",
		Convert:   "convert",
		Languages: []Language{LangGLSL, LangHLSL},
		Formats:   []Format{FormatKTX, FormatDDS},
		MakeDirs:  true,
		Verify:    true,
		ColorMode: ColorAuto,
	}
}

// Validate checks that enum fields hold valid values and that tool names are set.
func (c *Config) Validate() error {
	for _, l := range c.Languages {
		if _, err := ParseLanguage(string(l)); err != nil {
			return err
		}
	}
	for _, f := range c.Formats {
		if _, err := ParseFormat(string(f)); err != nil {
			return err
		}
	}
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}
	if strings.TrimSpace(c.Glslc) == "" || strings.TrimSpace(c.Toktx) == "" || strings.TrimSpace(c.Convert) == "" {
		return errors.New("tool paths must not be empty")
	}
	return nil
}

// ResolveRoot returns the absolute project root. When Root is empty the
// parent of the working directory is used, so the tools work when run from
// <root>/Scripts.
func (c *Config) ResolveRoot() (string, error) {
	if c.Root != "" {
		return filepath.Abs(c.Root)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return filepath.Dir(wd), nil
}

// AssetsDir returns <root>/Assets.
func AssetsDir(root string) string {
	return filepath.Join(root, "Assets")
}

// ShadersDir returns <root>/Assets/Shaders.
func ShadersDir(root string) string {
	return filepath.Join(AssetsDir(root), "Shaders")
}

// TexturesDir returns <root>/Assets/Textures.
func TexturesDir(root string) string {
	return filepath.Join(AssetsDir(root), "Textures")
}

// HasLanguage reports whether l is selected.
func (c *Config) HasLanguage(l Language) bool {
	for _, x := range c.Languages {
		if x == l {
			return true
		}
	}
	return false
}

// HasFormat reports whether f is selected.
func (c *Config) HasFormat(f Format) bool {
	for _, x := range c.Formats {
		if x == f {
			return true
		}
	}
	return false
}

// ParseLanguage accepts a language name in any case.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "GLSL":
		return LangGLSL, nil
	case "HLSL":
		return LangHLSL, nil
	case "WGSL":
		return LangWGSL, nil
	}
	return "", fmt.Errorf("invalid language %q (use 'GLSL', 'HLSL' or 'WGSL')", s)
}

// ParseFormat accepts a texture format name in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ktx":
		return FormatKTX, nil
	case "dds":
		return FormatDDS, nil
	}
	return "", fmt.Errorf("invalid format %q (use 'ktx' or 'dds')", s)
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}
