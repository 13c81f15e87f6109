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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/go-enclave/internal/password"
	"github.com/jeremyhahn/go-enclave/pkg/types"
)

func mustPassword(t *testing.T, s string) types.Password {
	t.Helper()
	p, err := password.FromString(s)
	require.NoError(t, err)
	return p
}

func TestConfig_Backend(t *testing.T) {
	slot := 0
	tests := []struct {
		name string
		cfg  *Config
		want Backend
	}{
		{"OSKeyRing", &Config{OSKeyRing: &OSKeyRingConfig{}}, BackendOSKeyRing},
		{"HSM", &Config{HSM: &HSMConfig{Library: "/usr/lib/libsofthsm2.so", Slot: &slot}}, BackendHSM},
		{"None", &Config{}, BackendUnknown},
		{"Nil", nil, BackendUnknown},
		{"Both", &Config{OSKeyRing: &OSKeyRingConfig{}, HSM: &HSMConfig{}}, BackendUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Backend())
		})
	}
}

func TestParseBackend(t *testing.T) {
	assert.Equal(t, BackendOSKeyRing, ParseBackend("oskeyring"))
	assert.Equal(t, BackendHSM, ParseBackend("HSM"))
	assert.Equal(t, BackendUnknown, ParseBackend("tpm"))
	assert.Equal(t, BackendUnknown, ParseBackend(""))
}

func TestConfig_Validate(t *testing.T) {
	t.Run("NoVariant", func(t *testing.T) {
		assert.ErrorIs(t, (&Config{}).Validate(), ErrNoBackendConfigured)
	})

	t.Run("MultipleVariants", func(t *testing.T) {
		cfg := &Config{OSKeyRing: &OSKeyRingConfig{}, HSM: &HSMConfig{}}
		assert.ErrorIs(t, cfg.Validate(), ErrMultipleBackendsConfigured)
	})

	t.Run("OSKeyRingDefaults", func(t *testing.T) {
		assert.NoError(t, (&Config{OSKeyRing: &OSKeyRingConfig{}}).Validate())
	})

	t.Run("HSMMissingLibrary", func(t *testing.T) {
		cfg := &Config{HSM: &HSMConfig{TokenLabel: "token"}}
		assert.Error(t, cfg.Validate())
	})

	t.Run("HSMMissingTokenSelector", func(t *testing.T) {
		cfg := &Config{HSM: &HSMConfig{Library: "/usr/lib/libsofthsm2.so"}}
		assert.Error(t, cfg.Validate())
	})

	t.Run("HSMShortPIN", func(t *testing.T) {
		cfg := &Config{HSM: &HSMConfig{
			Library:    "/usr/lib/libsofthsm2.so",
			TokenLabel: "token",
			PIN:        mustPassword(t, "123"),
		}}
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidPINLength)
	})

	t.Run("HSMValid", func(t *testing.T) {
		cfg := &Config{HSM: &HSMConfig{
			Library:    "/usr/lib/libsofthsm2.so",
			TokenLabel: "token",
			PIN:        mustPassword(t, "123456"),
		}}
		assert.NoError(t, cfg.Validate())
	})
}

func TestOSKeyRingConfig_Redaction(t *testing.T) {
	cfg := &OSKeyRingConfig{
		Path:     "/home/alice/.keyrings/default",
		Username: mustPassword(t, "alice"),
		Password: mustPassword(t, "hunter2"),
	}

	for _, rendered := range []string{
		cfg.String(),
		fmt.Sprintf("%v", cfg),
		fmt.Sprintf("%s", cfg),
		fmt.Sprintf("%#v", cfg),
		(&Config{OSKeyRing: cfg}).String(),
	} {
		assert.NotContains(t, rendered, "hunter2")
		// Username and the path's directory portion both identify the user.
		assert.NotContains(t, rendered, "alice")
		assert.Contains(t, rendered, "default")
		assert.Contains(t, rendered, "*********")
	}
}

func TestOSKeyRingConfig_UnsetFieldsRendered(t *testing.T) {
	cfg := &OSKeyRingConfig{}
	rendered := cfg.String()

	assert.Contains(t, rendered, "path: <default>")
	assert.Contains(t, rendered, "username: <unset>")
	assert.Contains(t, rendered, "password: <unset>")
}

func TestHSMConfig_Redaction(t *testing.T) {
	slot := 2
	cfg := &HSMConfig{
		Library:    "/opt/nfast/toolkits/pkcs11/libcknfast.so",
		TokenLabel: "prod-hsm",
		Slot:       &slot,
		PIN:        mustPassword(t, "123456"),
	}

	for _, rendered := range []string{cfg.String(), fmt.Sprintf("%#v", cfg)} {
		assert.NotContains(t, rendered, "123456")
		assert.NotContains(t, rendered, "/opt/nfast")
		assert.Contains(t, rendered, "libcknfast.so")
		assert.Contains(t, rendered, "prod-hsm")
		assert.Contains(t, rendered, "slot: 2")
		assert.Contains(t, rendered, "*********")
	}
}

func TestOSKeyRingConfig_Zeroize(t *testing.T) {
	cfg := &OSKeyRingConfig{
		Username: mustPassword(t, "alice"),
		Password: mustPassword(t, "hunter2"),
	}

	cfg.Zeroize()

	assert.Nil(t, cfg.Username.Bytes())
	assert.Nil(t, cfg.Password.Bytes())

	// Safe to call again.
	cfg.Zeroize()
}

func TestConfig_ZeroizeNested(t *testing.T) {
	pin := mustPassword(t, "123456")
	cfg := &Config{HSM: &HSMConfig{Library: "/usr/lib/libsofthsm2.so", TokenLabel: "t", PIN: pin}}

	cfg.Zeroize()

	assert.Nil(t, pin.Bytes())
}

func TestOSKeyRingConfig_Equal(t *testing.T) {
	a := &OSKeyRingConfig{Path: "/tmp/ring", Password: mustPassword(t, "secret")}
	b := &OSKeyRingConfig{Path: "/tmp/ring", Password: mustPassword(t, "secret")}
	c := &OSKeyRingConfig{Path: "/tmp/ring", Password: mustPassword(t, "other")}
	d := &OSKeyRingConfig{Path: "/tmp/elsewhere", Password: mustPassword(t, "secret")}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(&OSKeyRingConfig{Path: "/tmp/ring"}))
	assert.True(t, (&OSKeyRingConfig{}).Equal(&OSKeyRingConfig{}))
}

func TestHSMConfig_Equal(t *testing.T) {
	slot1, slot2 := 1, 2
	a := &HSMConfig{Library: "/lib/a.so", TokenLabel: "t", Slot: &slot1, PIN: mustPassword(t, "1234")}
	b := &HSMConfig{Library: "/lib/a.so", TokenLabel: "t", Slot: &slot1, PIN: mustPassword(t, "1234")}
	c := &HSMConfig{Library: "/lib/a.so", TokenLabel: "t", Slot: &slot2, PIN: mustPassword(t, "1234")}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
