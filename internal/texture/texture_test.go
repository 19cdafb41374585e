package texture

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnrn/VKGraphics/internal/config"
	"github.com/mnrn/VKGraphics/internal/logging"
	"github.com/mnrn/VKGraphics/internal/tool"
)

func TestPNGToKTX(t *testing.T) {
	root := t.TempDir()
	png := filepath.Join(config.TexturesDir(root), "png")
	writeFile(t, filepath.Join(png, "UI", "button.png"))
	writeFile(t, filepath.Join(png, "UI", "notes.txt"))

	fx := &fakeTool{}
	c, buf := newTestConverter(t, root, fx, nil)
	stats, err := c.PNGToKTX(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.Succeeded)

	src := filepath.Join(png, "UI", "button.png")
	dst := filepath.Join(config.TexturesDir(root), "ktx", "UI", "button.ktx")
	require.Len(t, fx.calls, 1)
	assert.Equal(t, []string{"toktx", "--2d", "--genmipmap", dst, src}, fx.calls[0])
	assert.FileExists(t, dst)

	out := buf.String()
	assert.Contains(t, out, "INFO: png -> ktx: start convert.")
	assert.Contains(t, out, "INFO: Start convert: "+src)
	assert.Contains(t, out, "INFO: Finished convert: "+src)
	assert.Contains(t, out, "INFO: png -> ktx: finished convert.")
}

func TestPNGToDDS(t *testing.T) {
	root := t.TempDir()
	png := filepath.Join(config.TexturesDir(root), "png")
	writeFile(t, filepath.Join(png, "Terrain", "grass.png"))

	fx := &fakeTool{}
	c, buf := newTestConverter(t, root, fx, func(cfg *config.Config) { cfg.Convert = "/opt/im/convert" })
	_, err := c.PNGToDDS(context.Background())
	require.NoError(t, err)

	src := filepath.Join(png, "Terrain", "grass.png")
	dst := filepath.Join(config.TexturesDir(root), "dds", "dxt5", "Terrain", "grass.dds")
	require.Len(t, fx.calls, 1)
	assert.Equal(t, []string{"/opt/im/convert", "-format", "dds", "-define", "dds:compression=dxt5", src, dst}, fx.calls[0])
	assert.Contains(t, buf.String(), "INFO: png -> dds(dxt5): finished convert.")
}

func TestConvert_FailureContinues(t *testing.T) {
	root := t.TempDir()
	png := filepath.Join(config.TexturesDir(root), "png", "A")
	writeFile(t, filepath.Join(png, "a.png"))
	writeFile(t, filepath.Join(png, "b.png"))
	writeFile(t, filepath.Join(png, "c.png"))

	fx := &fakeTool{fail: map[string]bool{"b.png": true}}
	c, buf := newTestConverter(t, root, fx, nil)
	stats, err := c.PNGToKTX(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Succeeded)
	assert.Equal(t, 1, stats.Failed)
	assert.Len(t, fx.calls, 3)
	assert.Contains(t, buf.String(), "ERROR: Failed to convert: "+filepath.Join(png, "b.png"))
}

func TestConvert_UppercaseExtensionSkipped(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(config.TexturesDir(root), "png", "A", "LOUD.PNG"))

	fx := &fakeTool{}
	c, _ := newTestConverter(t, root, fx, nil)
	stats, err := c.PNGToDDS(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.Empty(t, fx.calls)
}

func TestConvertAll_Formats(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(config.TexturesDir(root), "png", "A", "a.png"))

	fx := &fakeTool{}
	c, buf := newTestConverter(t, root, fx, nil)
	stats, err := c.ConvertAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Succeeded)
	require.Len(t, fx.calls, 2)
	assert.Equal(t, "toktx", fx.calls[0][0])
	assert.Equal(t, "convert", fx.calls[1][0])

	out := buf.String()
	assert.Less(t, strings.Index(out, "png -> ktx: finished"), strings.Index(out, "png -> dds(dxt5): start"))

	fx = &fakeTool{}
	c, _ = newTestConverter(t, root, fx, func(cfg *config.Config) { cfg.Formats = []config.Format{config.FormatDDS} })
	_, err = c.ConvertAll(context.Background())
	require.NoError(t, err)
	require.Len(t, fx.calls, 1)
	assert.Equal(t, "convert", fx.calls[0][0])
}

func TestConvertAll_Cancelled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(config.TexturesDir(root), "png", "A", "a.png"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fx := &fakeTool{}
	c, _ := newTestConverter(t, root, fx, nil)
	_, err := c.ConvertAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, fx.calls)
}

func TestOutputDir(t *testing.T) {
	c, _ := newTestConverter(t, "/proj", &fakeTool{}, nil)
	assert.Equal(t, filepath.FromSlash("/proj/Assets/Textures/ktx"), c.OutputDir(config.FormatKTX))
	assert.Equal(t, filepath.FromSlash("/proj/Assets/Textures/dds/dxt5"), c.OutputDir(config.FormatDDS))
	assert.Equal(t, filepath.FromSlash("/proj/Assets/Textures/png"), c.SourceDir())
}

// --- Helpers ---

// fakeTool records argv and, unless the source base name is in fail, writes
// an output file. toktx takes the output first, convert last.
type fakeTool struct {
	calls [][]string
	fail  map[string]bool
}

func (f *fakeTool) Execute(_ context.Context, argv []string) tool.ExecResult {
	f.calls = append(f.calls, argv)
	src, dst := argv[len(argv)-2], argv[len(argv)-1]
	if filepath.Base(argv[0]) == "toktx" {
		src, dst = dst, src
	}
	if f.fail[filepath.Base(src)] {
		return tool.ExecResult{ExitCode: 1, Stderr: "decode failed\n", Err: errors.New("exit status 1")}
	}
	_ = os.WriteFile(dst, []byte("tex"), 0o644)
	return tool.ExecResult{}
}

func newTestConverter(t *testing.T, root string, fx tool.Executor, mutate func(*config.Config)) (*Converter, *bytes.Buffer) {
	t.Helper()
	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	var buf bytes.Buffer
	return NewConverter(&cfg, root, logging.New(&buf, logging.LevelDebug), fx), &buf
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte{0x89, 'P', 'N', 'G'}, 0o644); err != nil {
		t.Fatal(err)
	}
}
