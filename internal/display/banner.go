// Package display renders the startup banner and end-of-run summary.
package display

import (
	"fmt"
	"io"

	"github.com/mnrn/VKGraphics/internal/term"
)

// PrintBanner prints the ASCII art banner in magenta, then the command and
// version.
func PrintBanner(w io.Writer, command, version string) {
	fmt.Fprint(w, term.Wrap(term.Magenta, ` __     ___  _____ ____                 _     _
 \ \   / / |/ / ___|  _ \ __ _ _ __ | |__ (_) ___ ___
  \ \ / /| ' / |  _| |_) / _` + "`" + ` | '_ \| '_ \| |/ __/ __|
   \ V / | . \ |_| |  _ < (_| | |_) | | | | | (__\__ \
    \_/  |_|\_\____|_| \_\__,_| .__/|_| |_|_|\___|___/
                              |_|
`))
	fmt.Fprintf(w, "%s %s\n\n", command, version)
}
