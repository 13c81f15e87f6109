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
	"path/filepath"
	"strings"

	"github.com/jeremyhahn/go-enclave/internal/password"
	"github.com/jeremyhahn/go-enclave/pkg/types"
)

var (
	// ErrNoBackendConfigured is returned when a Config carries no
	// backend variant.
	ErrNoBackendConfigured = errors.New("enclave: no backend configured")

	// ErrMultipleBackendsConfigured is returned when a Config carries
	// more than one backend variant. Exactly one must be active per
	// connection attempt.
	ErrMultipleBackendsConfigured = errors.New("enclave: multiple backends configured")

	// ErrInvalidPINLength is returned when a PIN shorter than four
	// characters is supplied. PKCS#11 tokens require at least four.
	ErrInvalidPINLength = errors.New("enclave: invalid pin length, must be at least 4 characters")
)

// redacted replaces secret material in rendered output.
const redacted = "*********"

// Backend identifies a class of enclave implementation.
type Backend string

const (
	// BackendOSKeyRing is the operating system credential store.
	BackendOSKeyRing Backend = "oskeyring"

	// BackendHSM is a PKCS#11 hardware security module.
	BackendHSM Backend = "hsm"

	// BackendUnknown is the zero value for an unconfigured backend.
	BackendUnknown Backend = "unknown"
)

// String returns the string representation.
func (b Backend) String() string {
	return string(b)
}

// IsValid returns true if the backend identifier is known.
func (b Backend) IsValid() bool {
	return b == BackendOSKeyRing || b == BackendHSM
}

// ParseBackend parses a string into a Backend, case-insensitively.
// Returns BackendUnknown if the string does not name a known backend.
func ParseBackend(s string) Backend {
	for _, b := range []Backend{BackendOSKeyRing, BackendHSM} {
		if strings.EqualFold(string(b), s) {
			return b
		}
	}
	return BackendUnknown
}

// Config selects and configures the enclave backend for a connection
// attempt. It is a closed tagged union: exactly one variant pointer
// must be non-nil.
//
// A Config and its nested secrets are owned exclusively by the caller
// until passed to Connect. Connect takes ownership and scrubs every
// nested secret before it returns, on success and failure alike.
type Config struct {
	// OSKeyRing connects to the operating system credential store.
	OSKeyRing *OSKeyRingConfig `yaml:"oskeyring,omitempty" json:"oskeyring,omitempty" mapstructure:"oskeyring"`

	// HSM connects to a PKCS#11 hardware security module.
	HSM *HSMConfig `yaml:"hsm,omitempty" json:"hsm,omitempty" mapstructure:"hsm"`
}

// Backend reports the active variant.
func (c *Config) Backend() Backend {
	switch {
	case c == nil:
		return BackendUnknown
	case c.OSKeyRing != nil && c.HSM != nil:
		return BackendUnknown
	case c.OSKeyRing != nil:
		return BackendOSKeyRing
	case c.HSM != nil:
		return BackendHSM
	default:
		return BackendUnknown
	}
}

// Validate checks that exactly one variant is configured and that the
// variant's own invariants hold.
func (c *Config) Validate() error {
	if c == nil || (c.OSKeyRing == nil && c.HSM == nil) {
		return ErrNoBackendConfigured
	}
	if c.OSKeyRing != nil && c.HSM != nil {
		return ErrMultipleBackendsConfigured
	}
	if c.HSM != nil {
		return c.HSM.Validate()
	}
	return nil
}

// Zeroize scrubs every secret field in the active variant. Safe to
// call more than once.
func (c *Config) Zeroize() {
	if c == nil {
		return
	}
	if c.OSKeyRing != nil {
		c.OSKeyRing.Zeroize()
	}
	if c.HSM != nil {
		c.HSM.Zeroize()
	}
}

// String renders the active variant with all secrets redacted.
func (c *Config) String() string {
	switch c.Backend() {
	case BackendOSKeyRing:
		return fmt.Sprintf("EnclaveConfig(%s)", c.OSKeyRing)
	case BackendHSM:
		return fmt.Sprintf("EnclaveConfig(%s)", c.HSM)
	default:
		return "EnclaveConfig(unconfigured)"
	}
}

// OSKeyRingConfig configures a connection to the OS credential store,
// which may itself be backed by a hardware enclave.
//
// Username and Password are three-state: a nil field means the backend
// prompts the user or applies its own default, never that the
// credential is the empty string.
type OSKeyRingConfig struct {
	// Path locates the keyring. Empty means the default OS keyring.
	Path string `yaml:"path,omitempty" json:"path,omitempty" mapstructure:"path"`

	// Username for logging in. If nil, the user will be prompted.
	Username types.Password `yaml:"-" json:"-" mapstructure:"-"`

	// Password for logging in. If nil, the user will be prompted.
	Password types.Password `yaml:"-" json:"-" mapstructure:"-"`
}

// Zeroize scrubs the username and password. Safe to call more than once.
func (c *OSKeyRingConfig) Zeroize() {
	if c == nil {
		return
	}
	if c.Username != nil {
		c.Username.Clear()
	}
	if c.Password != nil {
		c.Password.Clear()
	}
}

// Equal compares two configurations without exposing secret bytes.
// Secrets are compared in constant time; a cleared secret never
// compares equal to anything.
func (c *OSKeyRingConfig) Equal(other *OSKeyRingConfig) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.Path != other.Path {
		return false
	}
	return secretsEqual(c.Username, other.Username) && secretsEqual(c.Password, other.Password)
}

// String renders the configuration with credentials masked and the
// path reduced to its final element.
func (c *OSKeyRingConfig) String() string {
	return fmt.Sprintf("OSKeyRingConfig(path: %s, username: %s, password: %s)",
		redactPath(c.Path), redactSecret(c.Username), redactSecret(c.Password))
}

// GoString renders the same masked form for %#v so debug output never
// leaks credentials either.
func (c *OSKeyRingConfig) GoString() string {
	return c.String()
}

// HSMConfig configures a connection to a PKCS#11 hardware security
// module.
type HSMConfig struct {
	// Library is the path to the vendor PKCS#11 library file.
	// Examples:
	//   - /usr/lib/softhsm/libsofthsm2.so (SoftHSM)
	//   - /usr/lib/libykcs11.so (YubiKey)
	Library string `yaml:"library" json:"library" mapstructure:"library"`

	// TokenLabel selects the token. Alternative to Slot.
	TokenLabel string `yaml:"label,omitempty" json:"label,omitempty" mapstructure:"label"`

	// Slot selects the token by slot number. Can be nil if TokenLabel
	// is used instead.
	Slot *int `yaml:"slot,omitempty" json:"slot,omitempty" mapstructure:"slot"`

	// PIN is the user PIN for the token. If nil, the user will be
	// prompted.
	PIN types.Password `yaml:"-" json:"-" mapstructure:"-"`
}

// Validate checks that the configuration is complete enough to attempt
// a connection.
func (c *HSMConfig) Validate() error {
	if c.Library == "" {
		return errors.New("enclave: hsm library path is required")
	}
	if c.TokenLabel == "" && c.Slot == nil {
		return errors.New("enclave: hsm token label or slot is required")
	}
	if c.PIN != nil {
		pin := c.PIN.Bytes()
		defer password.Zeroize(pin)
		if len(pin) < 4 {
			return ErrInvalidPINLength
		}
	}
	return nil
}

// Zeroize scrubs the PIN. Safe to call more than once.
func (c *HSMConfig) Zeroize() {
	if c == nil {
		return
	}
	if c.PIN != nil {
		c.PIN.Clear()
	}
}

// Equal compares two configurations without exposing secret bytes.
func (c *HSMConfig) Equal(other *HSMConfig) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.Library != other.Library || c.TokenLabel != other.TokenLabel {
		return false
	}
	if (c.Slot == nil) != (other.Slot == nil) {
		return false
	}
	if c.Slot != nil && *c.Slot != *other.Slot {
		return false
	}
	return secretsEqual(c.PIN, other.PIN)
}

// String renders the configuration with the PIN masked and the library
// path reduced to its final element.
func (c *HSMConfig) String() string {
	slot := "-"
	if c.Slot != nil {
		slot = fmt.Sprintf("%d", *c.Slot)
	}
	return fmt.Sprintf("HSMConfig(library: %s, label: %s, slot: %s, pin: %s)",
		redactPath(c.Library), c.TokenLabel, slot, redactSecret(c.PIN))
}

// GoString renders the same masked form for %#v.
func (c *HSMConfig) GoString() string {
	return c.String()
}

func redactSecret(p types.Password) string {
	if p == nil {
		return "<unset>"
	}
	return redacted
}

// redactPath keeps only the final path element. The directory portion
// of a keyring or library path can identify a user's home directory;
// the base name is enough for diagnostics.
func redactPath(p string) string {
	if p == "" {
		return "<default>"
	}
	return filepath.Base(p)
}

func secretsEqual(a, b types.Password) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	eq, err := password.Equal(a, b)
	return err == nil && eq
}
