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

package password

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/jeremyhahn/go-enclave/pkg/types"
)

// ErrNotATerminal is returned when a prompt is requested but stdin is
// not an interactive terminal.
var ErrNotATerminal = errors.New("password: stdin is not a terminal")

// Prompt reads a secret from the terminal without echoing it.
//
// The raw input buffer is zeroized after the secret is copied into the
// returned Password. Returns ErrNotATerminal when stdin is not
// interactive so non-interactive callers fail fast instead of hanging.
func Prompt(label string) (types.Password, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotATerminal
	}

	fmt.Fprintf(os.Stderr, "%s: ", label)
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("password: reading from terminal: %w", err)
	}
	defer Zeroize(raw)

	return New(raw)
}
