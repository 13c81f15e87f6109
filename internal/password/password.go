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

// Package password provides secure secret handling for go-enclave.
//
// It implements the types.Password interface for managing sensitive
// credential data in memory, with explicit zeroization when the secret
// is no longer needed. Go's garbage collector gives no timing guarantee,
// so scrubbing must happen at the last point of use rather than waiting
// for collection.
package password

import (
	"crypto/subtle"
	"errors"

	"github.com/jeremyhahn/go-enclave/pkg/types"
)

var (
	// ErrEmptyPassword is returned when an empty password is provided.
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrPasswordCleared is returned when the password has been cleared.
	ErrPasswordCleared = errors.New("password has been cleared")
)

// Zeroize overwrites a byte slice with zeros to clear sensitive data
// from memory. The subtle copy prevents the compiler from eliminating
// the store as dead code.
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
}

// ClearPassword stores a secret in memory as cleartext.
//
// While stored in cleartext, the backing memory can be securely
// zeroed with Clear when no longer needed.
type ClearPassword struct {
	password []byte
}

// New creates a new cleartext password stored in memory.
//
// The provided byte slice is copied to prevent external modification.
// Returns an error if the password is empty.
func New(password []byte) (types.Password, error) {
	if len(password) == 0 {
		return nil, ErrEmptyPassword
	}
	p := make([]byte, len(password))
	copy(p, password)
	return &ClearPassword{password: p}, nil
}

// FromString creates a new cleartext password from a string.
//
// Returns an error if the password is empty.
func FromString(password string) (types.Password, error) {
	if len(password) == 0 {
		return nil, ErrEmptyPassword
	}
	return &ClearPassword{password: []byte(password)}, nil
}

// String returns the secret as a string.
//
// Note: this exposes the secret as an immutable string that cannot be
// scrubbed. Prefer Bytes where possible.
func (p *ClearPassword) String() (string, error) {
	if p.password == nil {
		return "", ErrPasswordCleared
	}
	return string(p.password), nil
}

// Bytes returns the secret as a byte slice.
//
// The returned slice is a copy; callers should Zeroize it when done.
// Returns nil after Clear.
func (p *ClearPassword) Bytes() []byte {
	if p.password == nil {
		return nil
	}
	result := make([]byte, len(p.password))
	copy(result, p.password)
	return result
}

// Clear overwrites the backing memory with zeros.
//
// After Clear the secret cannot be retrieved: String returns an error
// and Bytes returns nil. This operation is irreversible.
func (p *ClearPassword) Clear() {
	if p.password != nil {
		Zeroize(p.password)
		p.password = nil
	}
}

// Equal compares two passwords in constant time to prevent timing attacks.
//
// Returns an error if either password has been cleared.
func Equal(a, b types.Password) (bool, error) {
	aBytes := a.Bytes()
	if aBytes == nil {
		return false, ErrPasswordCleared
	}
	defer Zeroize(aBytes)

	bBytes := b.Bytes()
	if bBytes == nil {
		return false, ErrPasswordCleared
	}
	defer Zeroize(bBytes)

	return subtle.ConstantTimeCompare(aBytes, bBytes) == 1, nil
}

// Verify interface compliance at compile time
var _ types.Password = (*ClearPassword)(nil)
