// Package texture converts the project's PNG sources into GPU texture
// containers: KTX through toktx and DXT5 compressed DDS through ImageMagick.
package texture

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/mnrn/VKGraphics/internal/config"
	"github.com/mnrn/VKGraphics/internal/pipeline"
	"github.com/mnrn/VKGraphics/internal/tool"
)

// Converter runs the PNG conversion batches for one project root.
type Converter struct {
	cfg    *config.Config
	root   string
	runner *pipeline.Runner
}

// NewConverter returns a Converter for the project at root. log and exec may
// be nil; see pipeline.NewRunner.
func NewConverter(cfg *config.Config, root string, log pipeline.Logger, exec tool.Executor) *Converter {
	return &Converter{
		cfg:    cfg,
		root:   root,
		runner: pipeline.NewRunner(cfg, log, exec),
	}
}

// SourceDir returns Assets/Textures/png.
func (c *Converter) SourceDir() string {
	return filepath.Join(config.TexturesDir(c.root), "png")
}

// OutputDir returns the destination tree for a format:
// Assets/Textures/ktx or Assets/Textures/dds/dxt5.
func (c *Converter) OutputDir(f config.Format) string {
	switch f {
	case config.FormatDDS:
		return filepath.Join(config.TexturesDir(c.root), "dds", "dxt5")
	default:
		return filepath.Join(config.TexturesDir(c.root), string(f))
	}
}

// PNGToKTX converts every PNG to a mipmapped 2D KTX texture.
func (c *Converter) PNGToKTX(ctx context.Context) (pipeline.RunStats, error) {
	return c.runner.Run(ctx, c.batch(config.FormatKTX))
}

// PNGToDDS converts every PNG to a DXT5 compressed DDS texture.
func (c *Converter) PNGToDDS(ctx context.Context) (pipeline.RunStats, error) {
	return c.runner.Run(ctx, c.batch(config.FormatDDS))
}

// ConvertAll runs the batch for each configured format in order and stops at
// the first aborted batch.
func (c *Converter) ConvertAll(ctx context.Context) (pipeline.RunStats, error) {
	var total pipeline.RunStats
	for _, f := range c.cfg.Formats {
		var (
			stats pipeline.RunStats
			err   error
		)
		switch f {
		case config.FormatKTX:
			stats, err = c.PNGToKTX(ctx)
		case config.FormatDDS:
			stats, err = c.PNGToDDS(ctx)
		default:
			return total, fmt.Errorf("unsupported texture format %q", f)
		}
		total.Add(stats)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (c *Converter) batch(f config.Format) pipeline.Batch {
	srcRoot, dstRoot := c.SourceDir(), c.OutputDir(f)
	b := pipeline.Batch{
		Verb:   "convert",
		Root:   srcRoot,
		Suffix: "png",
	}
	var argv func(src, dst string) []string
	switch f {
	case config.FormatDDS:
		b.Name = "png -> dds(dxt5):"
		argv = func(src, dst string) []string { return tool.ConvertDDS(c.cfg.Convert, src, dst) }
	default:
		b.Name = "png -> ktx:"
		argv = func(src, dst string) []string { return tool.Toktx(c.cfg.Toktx, src, dst) }
	}
	ext := "." + string(f)
	b.Plan = func(src string) (pipeline.Job, error) {
		dst, err := pipeline.MirrorPath(srcRoot, dstRoot, src, ext)
		if err != nil {
			return pipeline.Job{}, err
		}
		return pipeline.Job{Src: src, Dst: dst, Argv: argv(src, dst)}, nil
	}
	return b
}
