package check

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnrn/VKGraphics/internal/config"
)

func TestRequired(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.Equal(t, []string{"glslc"}, names(Required(&cfg, config.CommandSpvconv)))
	assert.Equal(t, []string{"toktx", "convert"}, names(Required(&cfg, config.CommandTexconv)))

	cfg.Languages = []config.Language{config.LangWGSL}
	assert.Empty(t, Required(&cfg, config.CommandSpvconv))

	cfg.Formats = []config.Format{config.FormatDDS}
	assert.Equal(t, []string{"convert"}, names(Required(&cfg, config.CommandTexconv)))
}

func TestMissingTools(t *testing.T) {
	bin := fakeBinDir(t, map[string]string{"toktx": "toktx v4.3.2"})
	t.Setenv("PATH", bin)

	cfg := config.DefaultConfig()
	log := &mockLogger{}
	missing := MissingTools(&cfg, config.CommandTexconv, log)

	assert.Equal(t, []string{"convert"}, names(missing))
	require.Len(t, log.warns, 1)
	assert.Contains(t, log.warns[0], "convert not found")
}

func TestLookup_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	_, err := Lookup(Tool{Name: "glslc", Bin: "glslc"})
	assert.ErrorIs(t, err, ErrToolNotFound)
}

func TestRunCheck(t *testing.T) {
	bin := fakeBinDir(t, map[string]string{"glslc": "shaderc v2023.8\nspirv-tools v2023.6"})
	t.Setenv("PATH", bin)

	cfg := config.DefaultConfig()
	log := &mockLogger{}
	missing := RunCheck(context.Background(), &cfg, config.CommandSpvconv, log)

	assert.Zero(t, missing)
	assert.Contains(t, log.infos, "=== System Check ===")
	assert.Contains(t, strings.Join(log.infos, "\n"), "glslc: shaderc v2023.8 ("+filepath.Join(bin, "glslc")+")")
	assert.Contains(t, strings.Join(log.infos, "\n"), "WGSL: in-process")
}

func TestRunCheck_Missing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	cfg := config.DefaultConfig()
	log := &mockLogger{}
	missing := RunCheck(context.Background(), &cfg, config.CommandTexconv, log)

	assert.Equal(t, 2, missing)
	assert.Len(t, log.errors, 2)
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "Version: ImageMagick 6.9", firstLine("\n  Version: ImageMagick 6.9\nCopyright"))
	assert.Equal(t, "", firstLine(" \n\n"))
}

// --- Helpers ---

type mockLogger struct {
	infos, warns, errors []string
}

func (m *mockLogger) Info(f string, a ...interface{})  { m.infos = append(m.infos, fmt.Sprintf(f, a...)) }
func (m *mockLogger) Warn(f string, a ...interface{})  { m.warns = append(m.warns, fmt.Sprintf(f, a...)) }
func (m *mockLogger) Error(f string, a ...interface{}) { m.errors = append(m.errors, fmt.Sprintf(f, a...)) }

// fakeBinDir writes shell scripts that print the given output and returns
// their directory.
func fakeBinDir(t *testing.T, tools map[string]string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fakes need a POSIX shell")
	}
	dir := t.TempDir()
	for name, out := range tools {
		script := "#!/bin/sh\nprintf '%s\\n' '" + strings.ReplaceAll(out, "\n", "' '") + "'\n"
		if err := os.WriteFile(filepath.Join(dir, name), []byte(script), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func names(tools []Tool) []string {
	var out []string
	for _, t := range tools {
		out = append(out, t.Name)
	}
	return out
}
