// internal/parse/parse_test.go

package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuul/spackle-ssh/internal/apperr"
	"github.com/vuul/spackle-ssh/internal/models"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		host      string
		port      string
		proto     models.Protocol
		want      models.ConnectionDescriptor
		wantError bool
	}{
		{
			name:  "user at host with default ssh port",
			host:  "alice@example.com",
			proto: models.ProtocolSSH,
			want:  models.ConnectionDescriptor{User: "alice", Host: "example.com", Port: 22, Protocol: models.ProtocolSSH},
		},
		{
			name:  "bare host with explicit port",
			host:  "example.com",
			port:  "2222",
			proto: models.ProtocolSSH,
			want:  models.ConnectionDescriptor{Host: "example.com", Port: 2222, Protocol: models.ProtocolSSH},
		},
		{
			name:  "telnet default port",
			host:  "bbs.example.com",
			proto: models.ProtocolTelnet,
			want:  models.ConnectionDescriptor{Host: "bbs.example.com", Port: 23, Protocol: models.ProtocolTelnet},
		},
		{
			name:  "surrounding whitespace trimmed",
			host:  "  alice@example.com  ",
			port:  " 22 ",
			proto: models.ProtocolSSH,
			want:  models.ConnectionDescriptor{User: "alice", Host: "example.com", Port: 22, Protocol: models.ProtocolSSH},
		},
		{name: "empty host", host: "", port: "22", proto: models.ProtocolSSH, wantError: true},
		{name: "double at", host: "a@b@c", port: "22", proto: models.ProtocolSSH, wantError: true},
		{name: "empty user", host: "@example.com", proto: models.ProtocolSSH, wantError: true},
		{name: "empty host after at", host: "alice@", proto: models.ProtocolSSH, wantError: true},
		{name: "internal whitespace", host: "bad host", proto: models.ProtocolSSH, wantError: true},
		{name: "non-numeric port", host: "example.com", port: "abc", proto: models.ProtocolSSH, wantError: true},
		{name: "port zero", host: "example.com", port: "0", proto: models.ProtocolSSH, wantError: true},
		{name: "port too high", host: "example.com", port: "65536", proto: models.ProtocolSSH, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.host, tt.port, tt.proto)
			if tt.wantError {
				require.Error(t, err)
				assert.True(t, apperr.IsKind(err, apperr.InvalidInput), "expected invalid-input error, got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
