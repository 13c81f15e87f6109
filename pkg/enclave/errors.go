// Copyright (c) 2026 Jeremy Hahn
// Copyright (c) 2026 Automate The Things, LLC
//
// This file is part of go-enclave.
//
// go-enclave is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package enclave

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrorKind classifies an enclave failure for control-flow branching.
//
// The taxonomy is closed: every backend-native failure (platform status
// codes, HSM return codes) must be translated at the boundary into
// exactly one of these kinds. No backend-specific error type crosses
// the contract.
type ErrorKind string

const (
	// KindConnectionFailure occurs when a connection cannot be made to
	// the enclave. Transient or environmental (network, USB, driver
	// unavailable); safe to retry with backoff.
	KindConnectionFailure ErrorKind = "connection-failure"

	// KindAccessDenied occurs when the enclave rejects the supplied
	// credentials. Not safe to retry without new credentials.
	KindAccessDenied ErrorKind = "access-denied"

	// KindItemNotFound occurs when a requested item does not exist in
	// the enclave. The caller decides whether to create it.
	KindItemNotFound ErrorKind = "item-not-found"

	// KindGeneralError is the catch-all for failures that do not meet
	// another category. Treat conservatively; do not retry automatically.
	KindGeneralError ErrorKind = "general-error"
)

// String returns the string representation.
func (k ErrorKind) String() string {
	return string(k)
}

// IsValid returns true if the kind is part of the taxonomy.
func (k ErrorKind) IsValid() bool {
	switch k {
	case KindConnectionFailure, KindAccessDenied, KindItemNotFound, KindGeneralError:
		return true
	default:
		return false
	}
}

// Retryable returns true for kinds that are safe to retry with backoff.
func (k ErrorKind) Retryable() bool {
	return k == KindConnectionFailure
}

// ParseErrorKind parses a string into an ErrorKind. Returns an empty
// ErrorKind if the string does not name a cataloged kind.
func ParseErrorKind(s string) ErrorKind {
	k := ErrorKind(s)
	if k.IsValid() {
		return k
	}
	return ErrorKind("")
}

// Error is the typed failure every enclave operation reports. It owns a
// classification kind, a human-readable message, an optional chained
// cause, and the call site where the failure was first detected or
// translated. Errors are immutable after construction.
type Error struct {
	kind  ErrorKind
	msg   string
	cause error
	file  string
	line  int
}

// FromContext constructs a new error rooted at the current call site.
func FromContext(kind ErrorKind, msg string) *Error {
	return newError(kind, msg, nil)
}

// Errorf constructs a new error with a formatted message.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return newError(kind, fmt.Sprintf(format, args...), nil)
}

// Wrap adds context around an existing error, preserving it as a
// cause. The kind supplied here becomes the error's classification
// regardless of the cause's own kind.
func Wrap(kind ErrorKind, msg string, cause error) *Error {
	return newError(kind, msg, cause)
}

func newError(kind ErrorKind, msg string, cause error) *Error {
	e := &Error{kind: kind, msg: msg, cause: cause}
	// Skip newError and the exported constructor.
	if _, file, line, ok := runtime.Caller(2); ok {
		e.file = file
		e.line = line
	}
	return e
}

// Kind returns the classification. Wrapping does not alter it: the
// top-level error's kind wins regardless of chain depth.
func (e *Error) Kind() ErrorKind {
	return e.kind
}

// Message returns the human-readable message without the cause chain.
func (e *Error) Message() string {
	return e.msg
}

// Error renders the conventional single-line form, most recent context
// first, entries joined with ": ".
func (e *Error) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

// Unwrap returns the chained cause for errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// Format implements fmt.Formatter. The %+v verb renders the full cause
// chain one entry per line, most recent first: the root line prefixed
// "Error:" with its capture site, every subsequent line prefixed
// "Caused by:". All other verbs fall back to the single-line form.
func (e *Error) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('+') {
		var b strings.Builder
		fmt.Fprintf(&b, "Error: %s", e.msg)
		if e.file != "" {
			fmt.Fprintf(&b, " (%s:%d)", e.file, e.line)
		}
		for cause := e.cause; cause != nil; cause = errors.Unwrap(cause) {
			entry := cause.Error()
			if ce, ok := cause.(*Error); ok {
				entry = ce.msg
			}
			fmt.Fprintf(&b, "\nCaused by: %s", entry)
		}
		fmt.Fprint(f, b.String())
		return
	}
	fmt.Fprint(f, e.Error())
}

// IsKind reports whether any error in the chain is an *Error with the
// given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.kind == kind
	}
	return false
}

// Kind extracts the classification of the outermost *Error in the
// chain, or KindGeneralError if the error was never translated.
func Kind(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindGeneralError
}

// ensure ensures an error crossing the contract boundary is typed.
// Untranslated errors are conservatively classified as general errors
// with the original preserved as the cause.
func ensure(err error, msg string) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(KindGeneralError, msg, err)
}
