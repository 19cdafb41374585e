package shader

import (
	"context"
	"path/filepath"

	"github.com/mnrn/VKGraphics/internal/config"
	"github.com/mnrn/VKGraphics/internal/pipeline"
	"github.com/mnrn/VKGraphics/internal/tool"
)

// OutputDir is the directory under Assets/Shaders that receives SPIR-V.
const OutputDir = "SPIR-V"

// Compiler turns the shader trees under a project root into SPIR-V.
type Compiler struct {
	cfg    *config.Config
	root   string
	runner *pipeline.Runner
}

// NewCompiler returns a Compiler for the project at root. log and exec may be
// nil; see pipeline.NewRunner.
func NewCompiler(cfg *config.Config, root string, log pipeline.Logger, exec tool.Executor) *Compiler {
	return &Compiler{
		cfg:    cfg,
		root:   root,
		runner: pipeline.NewRunner(cfg, log, exec),
	}
}

// SourceDir returns Assets/Shaders/<lang>.
func (c *Compiler) SourceDir(lang config.Language) string {
	return filepath.Join(config.ShadersDir(c.root), string(lang))
}

// OutputRoot returns Assets/Shaders/SPIR-V.
func (c *Compiler) OutputRoot() string {
	return filepath.Join(config.ShadersDir(c.root), OutputDir)
}

// Compiles compiles every source of one language. Per-file failures are
// logged and counted; the error is non-nil only when the batch aborted.
func (c *Compiler) Compiles(ctx context.Context, lang config.Language) (pipeline.RunStats, error) {
	return c.runner.Run(ctx, c.batch(lang))
}

// CompileAll compiles every configured language in order and stops at the
// first aborted batch.
func (c *Compiler) CompileAll(ctx context.Context) (pipeline.RunStats, error) {
	var total pipeline.RunStats
	for _, lang := range c.cfg.Languages {
		stats, err := c.Compiles(ctx, lang)
		total.Add(stats)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (c *Compiler) batch(lang config.Language) pipeline.Batch {
	srcRoot := c.SourceDir(lang)
	b := pipeline.Batch{
		Name:   string(lang) + " -",
		Verb:   "compile",
		Root:   srcRoot,
		Suffix: "lsl",
	}
	if lang == config.LangWGSL {
		b.Suffix = ".wgsl"
		b.Plan = func(src string) (pipeline.Job, error) { return c.planWGSL(srcRoot, src) }
	} else {
		b.Plan = func(src string) (pipeline.Job, error) { return c.planGLSL(srcRoot, src) }
	}
	return b
}

// planGLSL resolves the stage before anything is spawned, so an
// unrecognized code never reaches glslc.
func (c *Compiler) planGLSL(srcRoot, src string) (pipeline.Job, error) {
	stage, err := StageFor(src)
	if err != nil {
		return pipeline.Job{}, err
	}
	dst, err := pipeline.MirrorPath(srcRoot, c.OutputRoot(), src, ".spv")
	if err != nil {
		return pipeline.Job{}, err
	}
	return c.withVerify(pipeline.Job{
		Src:  src,
		Dst:  dst,
		Argv: tool.Glslc(c.cfg.Glslc, stage, src, dst),
	}), nil
}

func (c *Compiler) planWGSL(srcRoot, src string) (pipeline.Job, error) {
	dst, err := pipeline.MirrorPath(srcRoot, c.OutputRoot(), src, ".spv")
	if err != nil {
		return pipeline.Job{}, err
	}
	debug := c.cfg.Verbose
	return c.withVerify(pipeline.Job{
		Src: src,
		Dst: dst,
		Build: func(ctx context.Context) error {
			return CompileWGSL(ctx, src, dst, debug)
		},
	}), nil
}

func (c *Compiler) withVerify(job pipeline.Job) pipeline.Job {
	if c.cfg.Verify {
		job.Verify = VerifySPIRV
	}
	return job
}
