// internal/launch/native.go

package launch

import (
	"fmt"
	"strings"

	"github.com/vuul/spackle-ssh/internal/models"
)

// nativePlan drives Terminal.app through osascript. The window runs
// the protocol command followed by exit, so the terminal's own
// lifecycle ends with the remote session.
func (pl *Planner) nativePlan(command []string, title string, opts models.TerminalOptions) Plan {
	cols, rows := opts.Geometry.Size()
	script := buildAppleScript(appleScriptParams{
		Command:    strings.Join(command, " ") + "; exit",
		Title:      title,
		Cols:       cols,
		Rows:       rows,
		Foreground: opts.Foreground.AppleScriptTriple(),
		Background: opts.Background.AppleScriptTriple(),
		FontSize:   opts.FontSize,
	})
	return Plan{
		Executable: pl.ScriptPath,
		Args:       []string{"-e", script},
		Strategy:   NativeTerminal,
		Title:      title,
	}
}

type appleScriptParams struct {
	Command    string
	Title      string
	Cols, Rows int
	Foreground string
	Background string
	FontSize   int
}

func buildAppleScript(p appleScriptParams) string {
	return fmt.Sprintf(`
tell application "Terminal"
    activate
    do script "%s"
    set targetWindow to front window
    set custom title of targetWindow to "%s"
    set number of columns of targetWindow to %d
    set number of rows of targetWindow to %d
    set background color of current settings of selected tab of targetWindow to %s
    set normal text color of current settings of selected tab of targetWindow to %s
    set font size of current settings of selected tab of targetWindow to %d
end tell
`,
		escapeAppleScript(p.Command), escapeAppleScript(p.Title),
		p.Cols, p.Rows, p.Background, p.Foreground, p.FontSize)
}

// escapeAppleScript protects backslashes and double quotes inside an
// AppleScript string literal.
func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
