package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvRoot    = "VKG_ROOT"
	EnvGlslc   = "VKG_GLSLC"
	EnvToktx   = "VKG_TOKTX"
	EnvConvert = "VKG_CONVERT"
)

// LoadDotEnv loads KEY=VALUE pairs from the given files (".env" when none are
// named) into the process environment. Variables already set are kept.
// A missing file is not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return err
		}
	}
	return nil
}

// ApplyEnv overlays non-empty environment variables onto cfg. Call it after
// DefaultConfig and before flag parsing so flags take precedence.
func ApplyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvRoot)); v != "" {
		cfg.Root = NormalizeDirArg(v)
	}
	cfg.Glslc = firstNonEmpty(strings.TrimSpace(os.Getenv(EnvGlslc)), cfg.Glslc)
	cfg.Toktx = firstNonEmpty(strings.TrimSpace(os.Getenv(EnvToktx)), cfg.Toktx)
	cfg.Convert = firstNonEmpty(strings.TrimSpace(os.Getenv(EnvConvert)), cfg.Convert)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
