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

// Package types defines the shared leaf types of go-enclave: the closed
// key/algorithm catalog every backend must map onto, and the Password
// contract for secret values that must be scrubbed from memory after use.
package types

// Password represents a secret used to authenticate to an enclave.
//
// The interface separates the concept of a secret from its storage
// mechanism. Implementations own the backing memory and must overwrite
// it when Clear is called; after Clear the value is unrecoverable.
//
// A nil Password in a configuration means "not specified": the backend
// prompts the user or applies its own default. It is never equivalent
// to an empty string.
//
// Password values are single-owner. Sharing one across goroutines
// without synchronization is undefined, since Clear from one goroutine
// while another reads races on the backing memory.
type Password interface {
	// String returns the secret as a string.
	// Returns an error if the secret has been cleared.
	String() (string, error)

	// Bytes returns a copy of the secret bytes, or nil after Clear.
	// Callers should zeroize the copy when done with it.
	Bytes() []byte

	// Clear overwrites the backing memory with zeros. Irreversible.
	Clear()
}
