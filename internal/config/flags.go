package config

// This file implements CLI flag parsing and help text for both commands.
// Flags shared by spvconv and texconv are registered once; command-specific
// flags (languages, strict, verify vs. formats) are added per command.
// Negated flags (e.g. -no-mkdir) are applied after Parse so Config defaults hold unless set.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// Command identifies which tool is parsing flags.
type Command string

const (
	CommandSpvconv Command = "spvconv"
	CommandTexconv Command = "texconv"
)

// ParseFlags parses args (normally os.Args[1:]) into cfg for the given
// command. On -help or -version it prints and exits. On error it returns
// non-nil (unknown flag, bad enum value, stray positional args).
func ParseFlags(cfg *Config, cmd Command, version string, args []string) error {
	fs := flag.NewFlagSet(string(cmd), flag.ContinueOnError)
	fs.Usage = func() { printUsage(cmd, version) }

	var negated negatedFlags

	defineCommonFlags(fs, cfg, &negated)
	switch cmd {
	case CommandSpvconv:
		defineShaderFlags(fs, cfg, &negated)
	case CommandTexconv:
		defineTextureFlags(fs, cfg)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		printUsage(cmd, version)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintf(os.Stdout, "%s v%s\n", cmd, version)
		os.Exit(0)
	}

	if rest := fs.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " "))
	}
	cfg.Root = NormalizeDirArg(cfg.Root)
	return nil
}

// negatedFlags holds boolean flags that are applied after Parse.
type negatedFlags struct {
	noMkdir     bool
	noVerify    bool
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineCommonFlags registers flags understood by both commands.
func defineCommonFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.StringVar(&cfg.Root, "root", cfg.Root, "Project root (default: parent of working directory)")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Log planned commands; do not run tools")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as -dry-run")
	fs.BoolVar(&n.noMkdir, "no-mkdir", false, "Do not create destination directories")
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Debug logging and tool stderr")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as -verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run tool diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as -check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as -log")
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as -version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as -help")
}

// defineShaderFlags registers -lang, -glslc, -strict, -no-verify.
func defineShaderFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.Var(&languageListValue{&cfg.Languages}, "lang", "Languages to compile: GLSL,HLSL,WGSL")
	fs.StringVar(&cfg.Glslc, "glslc", cfg.Glslc, "Shader compiler binary")
	fs.BoolVar(&cfg.Strict, "strict", false, "Abort on an unrecognized shader stage code")
	fs.BoolVar(&n.noVerify, "no-verify", false, "Skip SPIR-V header check of compiled output")
}

// defineTextureFlags registers -format, -toktx, -convert.
func defineTextureFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Var(&formatListValue{&cfg.Formats}, "format", "Conversions to run: ktx,dds")
	fs.StringVar(&cfg.Toktx, "toktx", cfg.Toktx, "KTX tool binary")
	fs.StringVar(&cfg.Convert, "convert", cfg.Convert, "ImageMagick convert binary")
}

// applyNegatedFlags copies negated and override flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noMkdir {
		cfg.MakeDirs = false
	}
	if n.noVerify {
		cfg.Verify = false
	}
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(cmd Command, version string) {
	const col1 = 26
	type line struct{ flags, desc string }

	head := []line{
		{"", string(cmd) + " v" + version},
	}
	var body []line
	switch cmd {
	case CommandSpvconv:
		head = append(head, line{"", "Compile Assets/Shaders/{GLSL,HLSL} to Assets/Shaders/SPIR-V"},
			line{"", ""}, line{"  spvconv [OPTIONS]", ""})
		body = []line{
			{"", ""},
			{"Shaders", ""},
			{"  -lang <list>", "Languages (default: GLSL,HLSL; WGSL opt-in)"},
			{"  -glslc <path>", "Shader compiler (default: glslc, env VKG_GLSLC)"},
			{"  -strict", "Abort on an unrecognized stage code"},
			{"  -no-verify", "Skip SPIR-V header check"},
		}
	case CommandTexconv:
		head = append(head, line{"", "Convert Assets/Textures/png to ktx and dds/dxt5"},
			line{"", ""}, line{"  texconv [OPTIONS]", ""})
		body = []line{
			{"", ""},
			{"Textures", ""},
			{"  -format <list>", "Conversions (default: ktx,dds)"},
			{"  -toktx <path>", "KTX tool (default: toktx, env VKG_TOKTX)"},
			{"  -convert <path>", "ImageMagick convert (default: convert, env VKG_CONVERT)"},
		}
	}
	common := []line{
		{"", ""},
		{"Paths & behavior", ""},
		{"  -root <dir>", "Project root (default: .., env VKG_ROOT)"},
		{"  -no-mkdir", "Do not create destination directories"},
		{"  -d, -dry-run", "Log planned commands only"},
		{"", ""},
		{"Display", ""},
		{"  -color", "Force colored logs"},
		{"  -no-color", "Disable colored logs"},
		{"  -v, -verbose", "Debug logging and tool stderr"},
		{"", ""},
		{"Utility", ""},
		{"  -l, -log <path>", "Append logs to file"},
		{"  -c, -check", "Tool diagnostics and exit"},
		{"  -V, -version", "Print version and exit"},
		{"  -h, -help", "Show this help and exit"},
	}

	all := append(append(head, body...), common...)
	for _, l := range all {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// flag.Value adapters for comma-separated enum lists.

type languageListValue struct{ p *[]Language }

func (v *languageListValue) String() string {
	if v.p == nil {
		return ""
	}
	parts := make([]string, len(*v.p))
	for i, l := range *v.p {
		parts[i] = string(l)
	}
	return strings.Join(parts, ",")
}

func (v *languageListValue) Set(s string) error {
	var out []Language
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		l, err := ParseLanguage(part)
		if err != nil {
			return err
		}
		out = append(out, l)
	}
	if len(out) == 0 {
		return fmt.Errorf("empty language list")
	}
	*v.p = out
	return nil
}

type formatListValue struct{ p *[]Format }

func (v *formatListValue) String() string {
	if v.p == nil {
		return ""
	}
	parts := make([]string, len(*v.p))
	for i, f := range *v.p {
		parts[i] = string(f)
	}
	return strings.Join(parts, ",")
}

func (v *formatListValue) Set(s string) error {
	var out []Format
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		f, err := ParseFormat(part)
		if err != nil {
			return err
		}
		out = append(out, f)
	}
	if len(out) == 0 {
		return fmt.Errorf("empty format list")
	}
	*v.p = out
	return nil
}
