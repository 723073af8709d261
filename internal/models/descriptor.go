// internal/models/descriptor.go

package models

import "fmt"

// ConnectionDescriptor is the normalized user/host/port/protocol tuple
// for a single launch attempt. It is never persisted directly; storage
// always goes through a Profile.
type ConnectionDescriptor struct {
	User     string // empty until resolved against the OS user at launch time
	Host     string
	Port     int
	Protocol Protocol
}

// Target renders the descriptor the way it appears in a window title:
// "user@host" for SSH, "telnet: host" for Telnet.
func (d ConnectionDescriptor) Target(effectiveUser string) string {
	if d.Protocol == ProtocolTelnet {
		return fmt.Sprintf("telnet: %s", d.Host)
	}
	return fmt.Sprintf("%s@%s", effectiveUser, d.Host)
}

// Addr returns the host:port dial address for the descriptor.
func (d ConnectionDescriptor) Addr() string {
	return fmt.Sprintf("%s:%d", d.Host, d.Port)
}
