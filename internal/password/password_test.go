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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroize(t *testing.T) {
	b := []byte("super-secret")
	Zeroize(b)
	assert.Equal(t, make([]byte, 12), b)

	// Empty and nil slices are no-ops.
	Zeroize(nil)
	Zeroize([]byte{})
}

func TestNew(t *testing.T) {
	src := []byte("hunter2")
	p, err := New(src)
	require.NoError(t, err)

	// The input slice is copied; mutating it does not affect the secret.
	src[0] = 'X'
	s, err := p.String()
	require.NoError(t, err)
	assert.Equal(t, "hunter2", s)
}

func TestNew_Empty(t *testing.T) {
	p, err := New(nil)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrEmptyPassword)

	p, err = New([]byte{})
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestFromString(t *testing.T) {
	p, err := FromString("hunter2")
	require.NoError(t, err)

	b := p.Bytes()
	assert.Equal(t, []byte("hunter2"), b)

	_, err = FromString("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestBytes_ReturnsCopy(t *testing.T) {
	p, err := FromString("hunter2")
	require.NoError(t, err)

	b := p.Bytes()
	b[0] = 'X'

	s, err := p.String()
	require.NoError(t, err)
	assert.Equal(t, "hunter2", s)
}

func TestClear(t *testing.T) {
	p, err := FromString("hunter2")
	require.NoError(t, err)

	cp := p.(*ClearPassword)
	backing := cp.password

	p.Clear()

	// The backing memory no longer holds the original bytes.
	assert.False(t, bytes.Contains(backing, []byte("hunter2")))
	assert.Equal(t, make([]byte, len(backing)), backing)

	// After Clear the secret cannot be retrieved.
	_, err = p.String()
	assert.ErrorIs(t, err, ErrPasswordCleared)
	assert.Nil(t, p.Bytes())

	// Safe to call again.
	p.Clear()
}

func TestEqual(t *testing.T) {
	a, err := FromString("secret")
	require.NoError(t, err)
	b, err := FromString("secret")
	require.NoError(t, err)
	c, err := FromString("other")
	require.NoError(t, err)

	eq, err := Equal(a, b)
	require.NoError(t, err)
	assert.True(t, eq)

	eq, err = Equal(a, c)
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestEqual_Cleared(t *testing.T) {
	a, err := FromString("secret")
	require.NoError(t, err)
	b, err := FromString("secret")
	require.NoError(t, err)

	b.Clear()

	_, err = Equal(a, b)
	assert.ErrorIs(t, err, ErrPasswordCleared)

	// The intact operand was not leaked or consumed by the comparison.
	s, err := a.String()
	require.NoError(t, err)
	assert.Equal(t, "secret", s)
}
