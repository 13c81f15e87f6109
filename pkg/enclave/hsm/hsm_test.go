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
	"errors"
	"fmt"
	"testing"

	"github.com/miekg/pkcs11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/go-enclave/pkg/enclave"
	"github.com/jeremyhahn/go-enclave/pkg/types"
)

func TestModule_Backend(t *testing.T) {
	assert.Equal(t, enclave.BackendHSM, (&Module{}).Backend())
}

func TestModule_Supports(t *testing.T) {
	m := &Module{}

	tests := []struct {
		name      string
		key       types.EnclaveKey
		supported bool
	}{
		{"ECDSA_P256", types.ECDSAKey(types.CurveP256, types.HashSHA256), true},
		{"ECDSA_P521", types.ECDSAKey(types.CurveP521, types.HashSHA512), true},
		{"ECDH_P384", types.ECDHKey(types.CurveP384), true},
		{"RSAOAEP", types.RSAOAEPKey(types.MGFSHA256), true},
		{"RSAPKCS1v15", types.RSAPKCS1v15Key(types.MGFSHA256), true},
		{"RSAPSS", types.RSAPSSKey(types.MGFSHA384), true},
		{"HMAC", types.HMACKey(types.HashSHA256), true},
		{"AESWrapGCM", types.AESWrapKey(types.AES256, types.AESModeGCM), true},

		{"ECDSA_Secp256k1", types.ECDSAKey(types.CurveSecp256k1, types.HashSHA256), false},
		{"ECDH_Secp256k1", types.ECDHKey(types.CurveSecp256k1), false},
		{"AESWrapCCM", types.AESWrapKey(types.AES256, types.AESModeCCM), false},
		{"AESWrapGCMSIV", types.AESWrapKey(types.AES256, types.AESModeGCMSIV), false},
		{"Ed25519", types.Ed25519Key(), false},
		{"X25519", types.X25519Key(), false},
		{"XChaCha", types.XChaCha20Poly1305Key(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := m.Supports(tt.key)
			if tt.supported {
				assert.NoError(t, err)
			} else {
				assert.True(t, enclave.IsKind(err, enclave.KindGeneralError))
			}
		})
	}
}

func TestModule_SupportsInvalidDescriptor(t *testing.T) {
	err := (&Module{}).Supports(types.EnclaveKey{Type: types.KeyTypeECDSA})

	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidKeyDescriptor)
}

func TestModule_CloseWithoutContext(t *testing.T) {
	m := &Module{}

	assert.NoError(t, m.Close())
	assert.NoError(t, m.Close())
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		rv   pkcs11.Error
		want enclave.ErrorKind
	}{
		{"PinIncorrect", pkcs11.Error(pkcs11.CKR_PIN_INCORRECT), enclave.KindAccessDenied},
		{"PinLocked", pkcs11.Error(pkcs11.CKR_PIN_LOCKED), enclave.KindAccessDenied},
		{"NotLoggedIn", pkcs11.Error(pkcs11.CKR_USER_NOT_LOGGED_IN), enclave.KindAccessDenied},
		{"TokenNotPresent", pkcs11.Error(pkcs11.CKR_TOKEN_NOT_PRESENT), enclave.KindConnectionFailure},
		{"DeviceRemoved", pkcs11.Error(pkcs11.CKR_DEVICE_REMOVED), enclave.KindConnectionFailure},
		{"SlotInvalid", pkcs11.Error(pkcs11.CKR_SLOT_ID_INVALID), enclave.KindConnectionFailure},
		{"NotInitialized", pkcs11.Error(pkcs11.CKR_CRYPTOKI_NOT_INITIALIZED), enclave.KindConnectionFailure},
		{"ObjectHandleInvalid", pkcs11.Error(pkcs11.CKR_OBJECT_HANDLE_INVALID), enclave.KindItemNotFound},
		{"KeyHandleInvalid", pkcs11.Error(pkcs11.CKR_KEY_HANDLE_INVALID), enclave.KindItemNotFound},
		{"MechanismInvalid", pkcs11.Error(pkcs11.CKR_MECHANISM_INVALID), enclave.KindGeneralError},
		{"FunctionFailed", pkcs11.Error(pkcs11.CKR_FUNCTION_FAILED), enclave.KindGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			translated := translate(tt.rv, "logging in to token")

			assert.Equal(t, tt.want, translated.Kind())
			assert.True(t, errors.Is(translated, tt.rv))
		})
	}
}

func TestTranslate_WrappedReturnCode(t *testing.T) {
	rv := pkcs11.Error(pkcs11.CKR_PIN_INCORRECT)
	wrapped := fmt.Errorf("crypto11: login: %w", rv)

	translated := translate(wrapped, "configuring pkcs#11 context")

	assert.Equal(t, enclave.KindAccessDenied, translated.Kind())
	assert.True(t, errors.Is(translated, rv))
}

func TestTranslate_NonPKCS11Error(t *testing.T) {
	native := errors.New("dlopen: cannot open shared object file")

	translated := translate(native, "configuring pkcs#11 context")

	assert.Equal(t, enclave.KindGeneralError, translated.Kind())
	assert.True(t, errors.Is(translated, native))
}
