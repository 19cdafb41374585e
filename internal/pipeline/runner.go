package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mnrn/VKGraphics/internal/config"
	"github.com/mnrn/VKGraphics/internal/logging"
	"github.com/mnrn/VKGraphics/internal/tool"
)

// Logger is the logging surface the runner needs. *logging.Logger satisfies it.
type Logger interface {
	Debug(string, ...interface{})
	Info(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// Job is the planned work for one source file.
type Job struct {
	Src string
	Dst string

	// Argv is the external command producing Dst. Ignored when Build is set.
	Argv []string

	// Build produces Dst in-process instead of running Argv.
	Build func(ctx context.Context) error

	// Verify, when set, checks Dst after a successful run.
	Verify func(dst string) error
}

// Batch describes one pass over a source tree.
type Batch struct {
	Name   string // Log prefix, e.g. "GLSL -" or "png -> ktx:".
	Verb   string // "compile" or "convert".
	Root   string // Directory to walk.
	Suffix string // File-name suffix to pick up.
	Plan   func(src string) (Job, error)
}

// Runner executes batches sequentially.
type Runner struct {
	cfg  *config.Config
	log  Logger
	exec tool.Executor
}

// NewRunner returns a Runner. A nil log falls back to logging.Default() and
// a nil exec to a plain tool.CommandExecutor.
func NewRunner(cfg *config.Config, log Logger, exec tool.Executor) *Runner {
	if log == nil {
		log = logging.Default()
	}
	if exec == nil {
		exec = tool.CommandExecutor{}
	}
	return &Runner{cfg: cfg, log: log, exec: exec}
}

// Run processes every file of the batch. Per-file failures are logged and
// counted in the returned stats. The error is non-nil only when the batch was
// aborted: a planning error in strict mode, or ctx cancellation. An aborted
// batch does not log its finish line.
func (r *Runner) Run(ctx context.Context, b Batch) (RunStats, error) {
	var stats RunStats
	r.log.Info("%s start %s.", b.Name, b.Verb)

	files, err := Discover(b.Root, b.Suffix)
	if err != nil {
		r.log.Warn("%s nothing to %s: %v", b.Name, b.Verb, err)
	}
	stats.Total = len(files)

	for i, src := range files {
		stats.Current = i + 1
		if err := ctx.Err(); err != nil {
			r.log.Warn("Interrupted after %d/%d files", i, stats.Total)
			return stats, err
		}
		if err := r.runOne(ctx, b, src, &stats); err != nil {
			return stats, err
		}
	}

	r.log.Info("%s finished %s.", b.Name, b.Verb)
	return stats, nil
}

// runOne plans and executes a single file. It returns an error only when the
// batch must abort.
func (r *Runner) runOne(ctx context.Context, b Batch, src string, stats *RunStats) error {
	job, err := b.Plan(src)
	if err != nil {
		r.log.Error("Failed to %s: %s", b.Verb, src)
		r.log.Error("  %v", err)
		if r.cfg.Strict {
			return fmt.Errorf("%s %s aborted: %w", b.Name, b.Verb, err)
		}
		stats.Failed++
		return nil
	}

	r.log.Debug("src - %s", job.Src)
	r.log.Debug("dst - %s", job.Dst)

	if r.cfg.MakeDirs && !r.cfg.DryRun {
		if err := os.MkdirAll(filepath.Dir(job.Dst), 0o755); err != nil {
			r.log.Error("Failed to %s: %s", b.Verb, src)
			r.log.Error("  cannot create output directory: %v", err)
			stats.Failed++
			return nil
		}
	}

	r.log.Info("Start %s: %s", b.Verb, src)

	if r.cfg.DryRun {
		if job.Build != nil {
			r.log.Info("[DRY] would build %s in-process", job.Dst)
		} else {
			r.log.Info("[DRY] %s", strings.Join(job.Argv, " "))
		}
		stats.Succeeded++
		return nil
	}

	if reason := r.execute(ctx, job); reason != "" {
		r.log.Error("Failed to %s: %s", b.Verb, src)
		r.log.Error("  %s", reason)
		stats.Failed++
		return nil
	}

	if job.Verify != nil {
		if err := job.Verify(job.Dst); err != nil {
			r.log.Error("Failed to %s: %s", b.Verb, src)
			r.log.Error("  %v", err)
			stats.Failed++
			return nil
		}
	}

	if fi, err := os.Stat(job.Dst); err == nil {
		stats.TotalOutputBytes += fi.Size()
	}
	stats.Succeeded++
	r.log.Info("Finished %s: %s", b.Verb, src)
	return nil
}

// execute runs the job and returns a failure description, or "" on success.
func (r *Runner) execute(ctx context.Context, job Job) string {
	if job.Build != nil {
		if err := job.Build(ctx); err != nil {
			return err.Error()
		}
		return ""
	}

	res := r.exec.Execute(ctx, job.Argv)
	if res.OK() {
		return ""
	}
	kind := tool.Classify(res, job.Dst)
	reason := fmt.Sprintf("%s (exit %d)", kind, res.ExitCode)
	if kind == tool.FailureToolMissing && res.Err != nil {
		reason += ": " + res.Err.Error()
	} else if last := tool.LastLine(res.Stderr); last != "" {
		reason += ": " + last
	}
	return reason
}
