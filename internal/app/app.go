// Package app is the startup sequence shared by spvconv and texconv: config
// from defaults, .env, environment and flags; logger; banner; -check; tool
// preflight; the run itself under a signal-cancelled context; summary.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mnrn/VKGraphics/internal/check"
	"github.com/mnrn/VKGraphics/internal/config"
	"github.com/mnrn/VKGraphics/internal/display"
	"github.com/mnrn/VKGraphics/internal/logging"
	"github.com/mnrn/VKGraphics/internal/pipeline"
	"github.com/mnrn/VKGraphics/internal/tool"
)

// Task is the work of one command over the project at root.
type Task func(ctx context.Context, cfg *config.Config, root string, log *logging.Logger, exec tool.Executor) (pipeline.RunStats, error)

// Options carries the process surroundings; tests replace them.
type Options struct {
	Banner io.Writer // Default: os.Stdout.
	Stderr io.Writer // Config errors before the logger exists. Default: os.Stderr.
}

// Main runs cmd with the given arguments and returns the process exit code:
// 0 after a completed run regardless of per-file failures, 1 on a
// configuration error or an aborted run.
func Main(cmd config.Command, version string, args []string, task Task, opts Options) int {
	if opts.Banner == nil {
		opts.Banner = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	fail := func(err error) int {
		fmt.Fprintf(opts.Stderr, "%s: %v\n", cmd, err)
		return 1
	}

	// 1. Config: defaults, then .env and environment, then flags.
	cfg := config.DefaultConfig()
	if err := config.LoadDotEnv(); err != nil {
		return fail(err)
	}
	config.ApplyEnv(&cfg)
	if err := config.ParseFlags(&cfg, cmd, version, args); err != nil {
		return fail(err)
	}
	if err := cfg.Validate(); err != nil {
		return fail(err)
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		return fail(err)
	}
	defer log.Close()

	display.PrintBanner(opts.Banner, string(cmd), version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. -check: diagnostics only.
	if cfg.CheckOnly {
		check.RunCheck(ctx, &cfg, cmd, log)
		return 0
	}

	root, err := cfg.ResolveRoot()
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	log.Info("=== %s v%s ===", cmd, version)
	log.Info("Root: %s", root)
	if cfg.DryRun {
		log.Warn("DRY RUN")
	}

	// 3. Missing tools are reported but do not stop the run.
	if !cfg.DryRun {
		check.MissingTools(&cfg, cmd, log)
	}

	exec := tool.CommandExecutor{}
	if cfg.Verbose {
		exec.Tee = os.Stderr
	}

	// 4. Run.
	start := time.Now()
	stats, err := task(ctx, &cfg, root, log, exec)
	log.Info("%s", display.Summary(stats, time.Since(start)))
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("Interrupted")
		} else {
			log.Error("%v", err)
		}
		return 1
	}
	return 0
}
