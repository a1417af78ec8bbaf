package caddr

import (
	"errors"
	"fmt"
)

// Kind is a stable category for programmatic error handling.
//
// Callers should branch on Kind rather than matching error strings;
// messages are for humans and may evolve. Digest parse failures are
// propagated from package digest untouched and carry no Kind.
type Kind string

const (
	// KindMalformed: the input is not a content address at all (no
	// '<prefix>:<rest>' shape).
	KindMalformed Kind = "Malformed"
	// KindMissingHashType: a recognized method prefix is not followed
	// by a ':'-delimited digest algorithm token.
	KindMissingHashType Kind = "MissingHashType"
	// KindUnrecognizedPrefix: the top-level token is neither "text"
	// nor "fixed".
	KindUnrecognizedPrefix Kind = "UnrecognizedPrefix"
	// KindInvalidReferences: a reference combination the addressing
	// method cannot express, such as a self reference under text
	// hashing.
	KindInvalidReferences Kind = "InvalidReferences"
)

// Error is the package's structured error type.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func errorf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
