// internal/models/profile.go

package models

// Bounds for the tunable terminal options. Values set through the
// setters are clamped into these ranges, never stored out of range.
const (
	MinFontSize       = 6
	MaxFontSize       = 20
	DefaultFontSize   = 10
	MinScrollback     = 0
	MaxScrollback     = 20000
	DefaultScrollback = 10000
)

// DefaultProfileName is the reserved sentinel under which the global
// default options are persisted. The sentinel never stores a hostname,
// port or protocol, only option fields.
const DefaultProfileName = "default"

// Profile is a named, persisted bundle of connection and terminal
// display defaults.
type Profile struct {
	Name     string
	Host     string
	User     string // empty means "current OS user at launch time"
	Port     int
	Protocol Protocol

	// KeyPath empty means default key discovery (~/.ssh/id_rsa then
	// ~/.ssh/id_dsa, first existing).
	KeyPath string

	Foreground Color
	Background Color
	Geometry   Geometry

	fontSize   int
	scrollback int
}

// NewProfile returns a profile carrying the documented defaults.
func NewProfile(name string) *Profile {
	return &Profile{
		Name:       name,
		Protocol:   ProtocolSSH,
		Foreground: DefaultForeground,
		Background: DefaultBackground,
		Geometry:   Geometry80x24,
		fontSize:   DefaultFontSize,
		scrollback: DefaultScrollback,
	}
}

func (p *Profile) FontSize() int {
	if p.fontSize == 0 {
		return DefaultFontSize
	}
	return p.fontSize
}

// SetFontSize clamps into [MinFontSize, MaxFontSize].
func (p *Profile) SetFontSize(size int) {
	if size < MinFontSize {
		size = MinFontSize
	} else if size > MaxFontSize {
		size = MaxFontSize
	}
	p.fontSize = size
}

func (p *Profile) Scrollback() int {
	return p.scrollback
}

// SetScrollback clamps into [MinScrollback, MaxScrollback].
func (p *Profile) SetScrollback(lines int) {
	if lines < MinScrollback {
		lines = MinScrollback
	} else if lines > MaxScrollback {
		lines = MaxScrollback
	}
	p.scrollback = lines
}

// EffectivePort resolves an unset port to the protocol default.
func (p *Profile) EffectivePort() int {
	if p.Port == 0 {
		return p.Protocol.DefaultPort()
	}
	return p.Port
}

// Descriptor folds the connection half of the profile into a transient
// ConnectionDescriptor for one launch attempt.
func (p *Profile) Descriptor() ConnectionDescriptor {
	return ConnectionDescriptor{
		User:     p.User,
		Host:     p.Host,
		Port:     p.EffectivePort(),
		Protocol: p.Protocol,
	}
}

// Options returns the terminal-display half of the profile.
func (p *Profile) Options() TerminalOptions {
	return TerminalOptions{
		KeyPath:    p.KeyPath,
		Foreground: p.Foreground,
		Background: p.Background,
		Geometry:   p.Geometry,
		FontSize:   p.FontSize(),
		Scrollback: p.Scrollback(),
	}
}

// ApplyOptions copies option fields from opts onto the profile,
// re-clamping the bounded values.
func (p *Profile) ApplyOptions(opts TerminalOptions) {
	p.KeyPath = opts.KeyPath
	p.Foreground = opts.Foreground
	p.Background = opts.Background
	p.Geometry = opts.Geometry.Normalize()
	p.SetFontSize(opts.FontSize)
	p.SetScrollback(opts.Scrollback)
}

// TerminalOptions is the display/behavior bundle the launch planner
// consumes alongside a connection descriptor.
type TerminalOptions struct {
	KeyPath    string
	Foreground Color
	Background Color
	Geometry   Geometry
	FontSize   int
	Scrollback int
}

// DefaultTerminalOptions mirrors the defaults of a fresh profile.
func DefaultTerminalOptions() TerminalOptions {
	return NewProfile("").Options()
}
