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

//go:build pkcs11

package hsm

import (
	"github.com/ThalesGroup/crypto11"

	"github.com/jeremyhahn/go-enclave/internal/password"
	"github.com/jeremyhahn/go-enclave/pkg/enclave"
	"github.com/jeremyhahn/go-enclave/pkg/types"
)

// promptPIN is the backend's prompting mechanism for an unset PIN.
// Package variable so tests can record prompts.
var promptPIN = func() (types.Password, error) {
	return password.Prompt("HSM PIN")
}

func init() {
	enclave.Register(enclave.BackendHSM, connect)
}

// Module is a live connection to a PKCS#11 hardware security module.
type Module struct {
	ctx *crypto11.Context
}

// connect opens the token described by cfg.HSM.
//
// A nil PIN triggers the backend's own prompt rather than an empty
// PIN login. Nothing leaks on failure: the crypto11 context is the
// only resource acquired and it is only retained on success.
func connect(cfg *enclave.Config) (enclave.Enclave, error) {
	hc := cfg.HSM

	pin := hc.PIN
	if pin == nil {
		prompted, err := promptPIN()
		if err != nil {
			return nil, enclave.Wrap(enclave.KindAccessDenied,
				"hsm pin unavailable", err)
		}
		defer prompted.Clear()
		pin = prompted
	}
	pinStr, err := pin.String()
	if err != nil {
		return nil, enclave.Wrap(enclave.KindAccessDenied, "hsm pin unavailable", err)
	}

	ctx, err := crypto11.Configure(&crypto11.Config{
		Path:       hc.Library,
		TokenLabel: hc.TokenLabel,
		SlotNumber: hc.Slot,
		Pin:        pinStr,
	})
	if err != nil {
		return nil, translate(err, "configuring pkcs#11 context")
	}
	return &Module{ctx: ctx}, nil
}

// Backend reports the backend identifier.
func (m *Module) Backend() enclave.Backend {
	return enclave.BackendHSM
}

// Supports answers whether the token can create and operate the
// described key, based on the PKCS#11 v2.x mechanism catalog.
//
// Unsupported descriptors are rejected, never substituted: secp256k1
// and the EdDSA/Curve25519 types are absent from most classic tokens,
// and the XChaCha20-Poly1305 and AES GCM-SIV mechanisms have no
// PKCS#11 assignment.
func (m *Module) Supports(key types.EnclaveKey) error {
	if err := key.Validate(); err != nil {
		return enclave.Wrap(enclave.KindGeneralError, "invalid key descriptor", err)
	}
	switch key.Type {
	case types.KeyTypeECDSA, types.KeyTypeECDH:
		if key.Curve == types.CurveSecp256k1 {
			return enclave.Errorf(enclave.KindGeneralError,
				"pkcs#11 token does not support %s", key)
		}
		return nil
	case types.KeyTypeRSAOAEP, types.KeyTypeRSAPKCS1v15, types.KeyTypeRSAPSS,
		types.KeyTypeHMAC:
		return nil
	case types.KeyTypeAESWrap:
		if key.AESMode != types.AESModeGCM {
			return enclave.Errorf(enclave.KindGeneralError,
				"pkcs#11 token does not support AES mode %s", key.AESMode)
		}
		return nil
	default:
		return enclave.Errorf(enclave.KindGeneralError,
			"pkcs#11 token does not support %s keys", key)
	}
}

// Close releases the PKCS#11 context. The handle must not be used
// afterwards.
func (m *Module) Close() error {
	ctx := m.ctx
	m.ctx = nil
	if ctx == nil {
		return nil
	}
	if err := ctx.Close(); err != nil {
		return translate(err, "closing pkcs#11 context")
	}
	return nil
}

// Verify interface compliance at compile time
var _ enclave.Enclave = (*Module)(nil)
