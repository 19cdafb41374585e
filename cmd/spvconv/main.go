// Command spvconv compiles the project's GLSL and HLSL shaders (and, on
// request, WGSL) to SPIR-V under Assets/Shaders/SPIR-V.
package main

import (
	"context"
	"os"

	"github.com/mnrn/VKGraphics/internal/app"
	"github.com/mnrn/VKGraphics/internal/config"
	"github.com/mnrn/VKGraphics/internal/logging"
	"github.com/mnrn/VKGraphics/internal/pipeline"
	"github.com/mnrn/VKGraphics/internal/shader"
	"github.com/mnrn/VKGraphics/internal/tool"
)

// version is set at build time via -ldflags.
var version = "1.0.0-dev"

func main() {
	os.Exit(app.Main(config.CommandSpvconv, version, os.Args[1:], compile, app.Options{}))
}

func compile(ctx context.Context, cfg *config.Config, root string, log *logging.Logger, exec tool.Executor) (pipeline.RunStats, error) {
	return shader.NewCompiler(cfg, root, log, exec).CompileAll(ctx)
}
