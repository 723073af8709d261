// internal/apperr/apperr.go

package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// InvalidInput covers bad host/port/user syntax; recoverable, the
	// caller should re-prompt.
	InvalidInput Kind = iota
	// NotFound means a named profile does not exist in the store;
	// recoverable, the caller should pick another name.
	NotFound
	// Persistence covers profile store read/write failures; the
	// operation is aborted and prior in-memory state preserved.
	Persistence
	// UnsupportedPlatform means no launch strategy exists for the host
	// platform; fatal for planning.
	UnsupportedPlatform
	// Launch means an external binary was missing or could not be
	// spawned; terminal for the attempt, never retried.
	Launch
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid input"
	case NotFound:
		return "not found"
	case Persistence:
		return "persistence"
	case UnsupportedPlatform:
		return "unsupported platform"
	case Launch:
		return "launch"
	}
	return "unknown"
}

// Error is the typed failure returned across the core's boundaries.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is (or wraps) an Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}
