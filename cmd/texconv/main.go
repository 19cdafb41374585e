// Command texconv converts the project's PNG textures under
// Assets/Textures/png to KTX and DXT5 DDS.
package main

import (
	"context"
	"os"

	"github.com/mnrn/VKGraphics/internal/app"
	"github.com/mnrn/VKGraphics/internal/config"
	"github.com/mnrn/VKGraphics/internal/logging"
	"github.com/mnrn/VKGraphics/internal/pipeline"
	"github.com/mnrn/VKGraphics/internal/texture"
	"github.com/mnrn/VKGraphics/internal/tool"
)

// version is set at build time via -ldflags.
var version = "1.0.0-dev"

func main() {
	os.Exit(app.Main(config.CommandTexconv, version, os.Args[1:], convert, app.Options{}))
}

func convert(ctx context.Context, cfg *config.Config, root string, log *logging.Logger, exec tool.Executor) (pipeline.RunStats, error) {
	return texture.NewConverter(cfg, root, log, exec).ConvertAll(ctx)
}
