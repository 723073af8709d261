// internal/models/protocol.go

package models

import "fmt"

// Protocol selects the client binary a session is launched with. The
// string values match the legacy "mode" property values.
type Protocol string

const (
	ProtocolSSH    Protocol = "ssh"
	ProtocolTelnet Protocol = "telnet"
)

// ParseProtocol accepts the legacy mode strings.
func ParseProtocol(s string) (Protocol, error) {
	switch Protocol(s) {
	case ProtocolSSH:
		return ProtocolSSH, nil
	case ProtocolTelnet:
		return ProtocolTelnet, nil
	}
	return "", fmt.Errorf("unknown protocol %q", s)
}

// DefaultPort returns 22 for SSH and 23 for Telnet.
func (p Protocol) DefaultPort() int {
	if p == ProtocolTelnet {
		return 23
	}
	return 22
}

func (p Protocol) String() string {
	return string(p)
}

// MaxPort is the highest valid TCP port.
const MaxPort = 65535
