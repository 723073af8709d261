// internal/launch/plan.go

package launch

import (
	"os"
	"os/exec"
	"os/user"
	"path/filepath"
	"strconv"

	"github.com/vuul/spackle-ssh/internal/apperr"
	"github.com/vuul/spackle-ssh/internal/models"
)

// Strategy selects how the terminal window hosting the session is
// produced.
type Strategy int

const (
	// NativeTerminal drives the platform's own terminal through its
	// automation mechanism (Terminal.app via osascript).
	NativeTerminal Strategy = iota
	// GenericEmulator invokes a standalone X11 terminal emulator
	// (xterm) with command-line flags.
	GenericEmulator
)

func (s Strategy) String() string {
	switch s {
	case NativeTerminal:
		return "native-terminal"
	case GenericEmulator:
		return "generic-emulator"
	}
	return "unknown"
}

// DetectStrategy picks the strategy for a GOOS value once at startup.
func DetectStrategy(goos string) (Strategy, error) {
	switch goos {
	case "darwin":
		return NativeTerminal, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return GenericEmulator, nil
	}
	return 0, apperr.Newf(apperr.UnsupportedPlatform, "no terminal strategy for platform %q", goos)
}

// Plan is the fully resolved executable, ordered argument list and
// strategy for one launch attempt.
type Plan struct {
	Executable string
	Args       []string
	Strategy   Strategy
	Title      string
}

// KeyLocator reports the private key file to pass to ssh -i, or ""
// when ssh should fall back to its own agent/default lookup. Injected
// so planning stays a pure function under test.
type KeyLocator func() string

// DefaultKeyLocator checks ~/.ssh/id_rsa then ~/.ssh/id_dsa for
// existence only; contents are never interpreted.
func DefaultKeyLocator() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	for _, name := range []string{"id_rsa", "id_dsa"} {
		path := filepath.Join(home, ".ssh", name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Planner assembles launch plans. It carries no state between calls;
// identical inputs always produce identical plans.
type Planner struct {
	Strategy    Strategy
	LocateKey   KeyLocator
	CurrentUser func() string
	LookPath    func(string) (string, error)

	SSHPath      string
	TelnetPath   string
	EmulatorPath string
	ScriptPath   string // the automation interpreter for NativeTerminal
}

// NewPlanner returns a planner wired to the real environment.
func NewPlanner(strategy Strategy) *Planner {
	return &Planner{
		Strategy:     strategy,
		LocateKey:    DefaultKeyLocator,
		CurrentUser:  currentUserName,
		LookPath:     exec.LookPath,
		SSHPath:      "ssh",
		TelnetPath:   "telnet",
		EmulatorPath: "xterm",
		ScriptPath:   "osascript",
	}
}

func currentUserName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return os.Getenv("LOGNAME")
}

// Plan combines a descriptor with terminal options into a concrete
// plan. Anomalies in the options degrade to defaults; an unknown
// strategy or a missing protocol client binary fails the plan.
func (pl *Planner) Plan(d models.ConnectionDescriptor, opts models.TerminalOptions) (Plan, error) {
	if pl.Strategy != NativeTerminal && pl.Strategy != GenericEmulator {
		return Plan{}, apperr.Newf(apperr.UnsupportedPlatform, "unknown launch strategy %d", int(pl.Strategy))
	}

	opts = normalizeOptions(opts)

	effectiveUser := d.User
	if effectiveUser == "" {
		effectiveUser = pl.CurrentUser()
	}
	title := d.Target(effectiveUser)

	client, err := pl.resolveClient(d.Protocol)
	if err != nil {
		return Plan{}, err
	}
	command := pl.protocolCommand(client, d, opts, effectiveUser)

	switch pl.Strategy {
	case NativeTerminal:
		return pl.nativePlan(command, title, opts), nil
	default:
		return pl.emulatorPlan(command, title, opts), nil
	}
}

// normalizeOptions degrades missing or out-of-range option values to
// the documented defaults instead of failing the plan.
func normalizeOptions(opts models.TerminalOptions) models.TerminalOptions {
	opts.Geometry = opts.Geometry.Normalize()
	if !opts.Foreground.IsSet() {
		opts.Foreground = models.DefaultForeground
	}
	if !opts.Background.IsSet() {
		opts.Background = models.DefaultBackground
	}
	if opts.FontSize < models.MinFontSize || opts.FontSize > models.MaxFontSize {
		opts.FontSize = models.DefaultFontSize
	}
	if opts.Scrollback < models.MinScrollback {
		opts.Scrollback = models.MinScrollback
	} else if opts.Scrollback > models.MaxScrollback {
		opts.Scrollback = models.MaxScrollback
	}
	return opts
}

// resolveClient locates the protocol client binary while planning, so
// a missing ssh or telnet fails here instead of inside the spawned
// terminal window where nobody sees it.
func (pl *Planner) resolveClient(proto models.Protocol) (string, error) {
	name := pl.SSHPath
	if proto == models.ProtocolTelnet {
		name = pl.TelnetPath
	}
	path, err := pl.LookPath(name)
	if err != nil {
		return "", apperr.New(apperr.Launch, "client binary not found: "+name, err)
	}
	return path, nil
}

// protocolCommand builds the client invocation run inside the
// terminal window.
func (pl *Planner) protocolCommand(client string, d models.ConnectionDescriptor, opts models.TerminalOptions, effectiveUser string) []string {
	if d.Protocol == models.ProtocolTelnet {
		return []string{client, d.Host, strconv.Itoa(d.Port)}
	}

	args := []string{client, "-p", strconv.Itoa(d.Port)}
	key := opts.KeyPath
	if key == "" && pl.LocateKey != nil {
		key = pl.LocateKey()
	}
	if key != "" {
		args = append(args, "-i", key)
	}
	return append(args, effectiveUser+"@"+d.Host)
}
