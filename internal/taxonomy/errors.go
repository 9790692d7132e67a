package taxonomy

import (
	"errors"
	"fmt"
)

// Kind is the closed set of failure classes for taxonomy and
// classification operations. The transport layer inspects the kind to
// pick an HTTP status; nothing else about an error is load-bearing.
type Kind int

const (
	// KindNotFound marks a missing group, category, or transaction reference.
	KindNotFound Kind = iota
	// KindConflict marks a duplicate normalized name or a concurrent
	// assignment collision.
	KindConflict
	// KindProtected marks any mutation targeting a sentinel category.
	KindProtected
	// KindValidation marks rejected input: empty names, malformed decimals,
	// ambiguous filter combinations, unsupported sort keys.
	KindValidation
	// KindFatalInvariant marks a corrupted bootstrap (a required sentinel
	// is missing). Not user-recoverable; the operation must abort.
	KindFatalInvariant
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindProtected:
		return "protected"
	case KindValidation:
		return "validation"
	case KindFatalInvariant:
		return "fatal_invariant"
	default:
		return "unknown"
	}
}

// Error is a kind-tagged error carrying a human-readable message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a KindNotFound error.
func NotFoundf(format string, args ...any) *Error {
	return newError(KindNotFound, format, args...)
}

// Conflictf builds a KindConflict error.
func Conflictf(format string, args ...any) *Error {
	return newError(KindConflict, format, args...)
}

// Protectedf builds a KindProtected error.
func Protectedf(format string, args ...any) *Error {
	return newError(KindProtected, format, args...)
}

// Validationf builds a KindValidation error.
func Validationf(format string, args ...any) *Error {
	return newError(KindValidation, format, args...)
}

// FatalInvariantf builds a KindFatalInvariant error.
func FatalInvariantf(format string, args ...any) *Error {
	return newError(KindFatalInvariant, format, args...)
}

// KindOf extracts the kind from err, unwrapping as needed. The second
// return is false when err carries no taxonomy kind.
func KindOf(err error) (Kind, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind, true
	}
	return 0, false
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
