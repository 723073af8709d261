// internal/parse/parse.go

package parse

import (
	"strconv"
	"strings"

	"github.com/vuul/spackle-ssh/internal/apperr"
	"github.com/vuul/spackle-ssh/internal/models"
)

// Parse normalizes the raw host and port fields into a connection
// descriptor. The host field may carry an embedded "user@host"; the
// user stays unset otherwise and is resolved against the OS user at
// launch time, not here, so the descriptor stays environment
// independent.
func Parse(hostField, portField string, proto models.Protocol) (models.ConnectionDescriptor, error) {
	var d models.ConnectionDescriptor
	d.Protocol = proto

	host := strings.TrimSpace(hostField)
	if host == "" {
		return d, apperr.Newf(apperr.InvalidInput, "hostname is required")
	}

	switch strings.Count(host, "@") {
	case 0:
		// User resolved later.
	case 1:
		i := strings.Index(host, "@")
		user := strings.TrimSpace(host[:i])
		host = strings.TrimSpace(host[i+1:])
		if user == "" || host == "" {
			return d, apperr.Newf(apperr.InvalidInput, "invalid hostname format %q", hostField)
		}
		d.User = user
	default:
		return d, apperr.Newf(apperr.InvalidInput, "invalid hostname format %q", hostField)
	}

	if strings.ContainsAny(d.User, " \t") || strings.ContainsAny(host, " \t") {
		return d, apperr.Newf(apperr.InvalidInput, "hostname contains whitespace")
	}
	d.Host = host

	port, err := parsePort(portField, proto)
	if err != nil {
		return d, err
	}
	d.Port = port
	return d, nil
}

// parsePort resolves an empty field to the protocol default and
// rejects anything outside [1, 65535].
func parsePort(portField string, proto models.Protocol) (int, error) {
	port := strings.TrimSpace(portField)
	if port == "" {
		return proto.DefaultPort(), nil
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return 0, apperr.Newf(apperr.InvalidInput, "port %q is not a number", port)
	}
	if n < 1 || n > models.MaxPort {
		return 0, apperr.Newf(apperr.InvalidInput, "port %d out of range 1-%d", n, models.MaxPort)
	}
	return n, nil
}
