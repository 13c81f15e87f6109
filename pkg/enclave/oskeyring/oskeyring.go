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

// Package oskeyring implements the enclave connection contract on top
// of the operating system credential store (macOS Keychain, Linux
// Secret Service, Windows Credential Manager, or an encrypted file
// keyring when a path is configured).
//
// The OS keyring is a software enclave. It stores credential material
// and symmetric keys but performs no hardware-backed asymmetric
// operations; a typical composition stores the PIN for a hardware
// module here and uses it to connect to the hsm backend.
//
// Reconnecting is cheap and local. The backend performs no internal
// serialization; each Connect yields an independent handle.
package oskeyring

import (
	"github.com/99designs/keyring"

	"github.com/jeremyhahn/go-enclave/internal/password"
	"github.com/jeremyhahn/go-enclave/pkg/enclave"
	"github.com/jeremyhahn/go-enclave/pkg/types"
)

// serviceName namespaces go-enclave items in the OS credential store.
const serviceName = "go-enclave"

// promptPassword is the backend's prompting mechanism for the file
// keyring password. Package variable so tests can record prompts.
var promptPassword = func(prompt string) (string, error) {
	p, err := password.Prompt(prompt)
	if err != nil {
		return "", err
	}
	defer p.Clear()
	return p.String()
}

func init() {
	enclave.Register(enclave.BackendOSKeyRing, connect)
}

// KeyRing is a live connection to the OS credential store.
type KeyRing struct {
	ring keyring.Keyring
}

// connect opens the credential store described by cfg.OSKeyRing.
//
// A nil Password installs the backend's own prompting mechanism rather
// than assuming an empty password; the OS-native backends additionally
// run their own unlock dialogs. A configured Path pins the encrypted
// file keyring at that location instead of the platform default.
func connect(cfg *enclave.Config) (enclave.Enclave, error) {
	kc := cfg.OSKeyRing

	ringCfg := keyring.Config{
		ServiceName: service(kc.Username),
	}
	if kc.Path != "" {
		ringCfg.AllowedBackends = []keyring.BackendType{keyring.FileBackend}
		ringCfg.FileDir = kc.Path
	}
	if kc.Password != nil {
		secret, err := kc.Password.String()
		if err != nil {
			return nil, enclave.Wrap(enclave.KindAccessDenied,
				"os keyring password unavailable", err)
		}
		ringCfg.FilePasswordFunc = keyring.FixedStringPrompt(secret)
	} else {
		ringCfg.FilePasswordFunc = promptPassword
	}

	ring, err := keyring.Open(ringCfg)
	if err != nil {
		return nil, translate(err, "opening os keyring")
	}
	return &KeyRing{ring: ring}, nil
}

// service derives the credential store namespace. A configured
// username isolates items per user on shared keyrings; nil defers to
// the ambient OS user context.
func service(username types.Password) string {
	if username == nil {
		return serviceName
	}
	user, err := username.String()
	if err != nil || user == "" {
		return serviceName
	}
	return serviceName + ":" + user
}

// Backend reports the backend identifier.
func (k *KeyRing) Backend() enclave.Backend {
	return enclave.BackendOSKeyRing
}

// Supports answers whether the keyring can hold the described key.
//
// The keyring stores raw key material, so it supports key types whose
// material is an opaque byte string: Ed25519, X25519, HMAC and
// wrapping keys. Asymmetric RSA/ECDSA/ECDH operations belong in a
// hardware module and are rejected rather than emulated.
func (k *KeyRing) Supports(key types.EnclaveKey) error {
	if err := key.Validate(); err != nil {
		return enclave.Wrap(enclave.KindGeneralError, "invalid key descriptor", err)
	}
	switch key.Type {
	case types.KeyTypeEd25519, types.KeyTypeX25519, types.KeyTypeHMAC,
		types.KeyTypeAESWrap, types.KeyTypeXChaCha20Poly1305:
		return nil
	default:
		return enclave.Errorf(enclave.KindGeneralError,
			"os keyring does not support %s keys; use a hardware module", key)
	}
}

// Close releases the connection. The OS keyring holds no session
// state, so close never fails, but the handle must not be reused.
func (k *KeyRing) Close() error {
	k.ring = nil
	return nil
}

// StoreCredential stores a named secret in the keyring. The secret is
// read once and the local copy zeroized before returning.
func (k *KeyRing) StoreCredential(name string, secret types.Password) error {
	data := secret.Bytes()
	if data == nil {
		return enclave.FromContext(enclave.KindGeneralError,
			"credential secret has been cleared")
	}
	defer password.Zeroize(data)

	err := k.ring.Set(keyring.Item{
		Key:  name,
		Data: data,
	})
	if err != nil {
		return translate(err, "storing credential in os keyring")
	}
	return nil
}

// Credential retrieves a named secret from the keyring.
func (k *KeyRing) Credential(name string) (types.Password, error) {
	item, err := k.ring.Get(name)
	if err != nil {
		return nil, translate(err, "retrieving credential from os keyring")
	}
	defer password.Zeroize(item.Data)
	p, err := password.New(item.Data)
	if err != nil {
		return nil, enclave.Wrap(enclave.KindGeneralError,
			"decoding credential from os keyring", err)
	}
	return p, nil
}

// DeleteCredential removes a named secret from the keyring.
func (k *KeyRing) DeleteCredential(name string) error {
	if err := k.ring.Remove(name); err != nil {
		return translate(err, "removing credential from os keyring")
	}
	return nil
}

// ListCredentials returns the names of all stored secrets.
func (k *KeyRing) ListCredentials() ([]string, error) {
	names, err := k.ring.Keys()
	if err != nil {
		return nil, translate(err, "listing credentials in os keyring")
	}
	return names, nil
}

// Verify interface compliance at compile time
var _ enclave.Enclave = (*KeyRing)(nil)
