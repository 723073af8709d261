// internal/launch/xterm.go

package launch

import (
	"fmt"
	"strconv"

	"github.com/vuul/spackle-ssh/internal/models"
)

// emulatorPlan invokes a generic X11 terminal emulator with flags for
// title, geometry, scrollback, font and colors. Everything after -e is
// the protocol command.
func (pl *Planner) emulatorPlan(command []string, title string, opts models.TerminalOptions) Plan {
	args := []string{
		"-T", title,
		"-geometry", opts.Geometry.Normalize().String(),
		"-sl", strconv.Itoa(opts.Scrollback),
		"-fa", fmt.Sprintf("mono-%d", opts.FontSize),
		"-fg", opts.Foreground.XTermSpec(),
		"-bg", opts.Background.XTermSpec(),
		"-e",
	}
	args = append(args, command...)
	return Plan{
		Executable: pl.EmulatorPath,
		Args:       args,
		Strategy:   GenericEmulator,
		Title:      title,
	}
}
