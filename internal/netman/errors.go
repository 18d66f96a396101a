// Package netman contains the configuration lifecycle core: persistence,
// effective configuration resolution, connection state tracking and the
// manager service that ties them to a network interface.
package netman

import (
	"errors"
	"fmt"
)

// Kind classifies manager failures.
type Kind int

const (
	// KindAlreadyInitialized is returned by Init on an initialized manager.
	KindAlreadyInitialized Kind = iota
	// KindNotInitialized is returned by operations requiring a ready manager.
	KindNotInitialized
	// KindOutOfMemory reports resource exhaustion in a collaborator.
	KindOutOfMemory
	// KindPersistenceNotFound reports an absent or incomplete stored record.
	KindPersistenceNotFound
	// KindPersistenceVersionMismatch reports a stored record newer than this
	// build understands.
	KindPersistenceVersionMismatch
	// KindPersistenceIOError reports a store access failure.
	KindPersistenceIOError
	// KindInterfaceError reports a failure applying to or querying the
	// interface; the cause carries the collaborator error.
	KindInterfaceError
	// KindInvalidArgument reports a rejected input.
	KindInvalidArgument
)

// String returns a stable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindAlreadyInitialized:
		return "already initialized"
	case KindNotInitialized:
		return "not initialized"
	case KindOutOfMemory:
		return "out of memory"
	case KindPersistenceNotFound:
		return "persistence record not found"
	case KindPersistenceVersionMismatch:
		return "persistence version mismatch"
	case KindPersistenceIOError:
		return "persistence i/o error"
	case KindInterfaceError:
		return "interface error"
	case KindInvalidArgument:
		return "invalid argument"
	default:
		return fmt.Sprintf("unknown error kind %d", int(k))
	}
}

// Error tags a failure with its kind and carries the collaborator's
// underlying error as the cause.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a tagged error wrapping cause. A nil cause is allowed.
func NewError(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Err: cause}
}

// Errorf creates a tagged error from a format string.
func Errorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf extracts the kind of err. The second return is false when err does
// not carry one.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
