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

package oskeyring

import (
	"errors"
	"fmt"
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/go-enclave/pkg/enclave"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want enclave.ErrorKind
	}{
		{"KeyNotFound", keyring.ErrKeyNotFound, enclave.KindItemNotFound},
		{"WrappedKeyNotFound", fmt.Errorf("get: %w", keyring.ErrKeyNotFound), enclave.KindItemNotFound},
		{"AccessDenied", errors.New("keychain: Access Denied"), enclave.KindAccessDenied},
		{"PermissionDenied", errors.New("open ring: permission denied"), enclave.KindAccessDenied},
		{"NotAuthorized", errors.New("caller not authorized for item"), enclave.KindAccessDenied},
		{"AuthFailed", errors.New("authentication failed for collection"), enclave.KindAccessDenied},
		{"NoSecretService", errors.New("The name org.freedesktop.secrets was not provided by any .service files: no such service"), enclave.KindConnectionFailure},
		{"DBusDown", errors.New("dbus: session bus not available"), enclave.KindConnectionFailure},
		{"ConnectionRefused", errors.New("dial unix: connection refused"), enclave.KindConnectionFailure},
		{"Unclassified", errors.New("item data corrupt"), enclave.KindGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			translated := translate(tt.err, "operating on os keyring")

			assert.Equal(t, tt.want, translated.Kind())
			assert.True(t, errors.Is(translated, tt.err))
		})
	}
}

func TestTranslate_PreservesChain(t *testing.T) {
	native := errors.New("dbus: session bus not available")
	translated := translate(native, "opening os keyring")

	rendered := fmt.Sprintf("%+v", translated)
	assert.Contains(t, rendered, "opening os keyring")
	assert.Contains(t, rendered, "Caused by: dbus: session bus not available")
}

func TestTranslateDarwinStatus(t *testing.T) {
	tests := []struct {
		name string
		code int32
		want enclave.ErrorKind
	}{
		{"UserCanceled", -128, enclave.KindAccessDenied},
		{"AuthFailed", -25293, enclave.KindAccessDenied},
		{"InteractionNotAllowed", -25308, enclave.KindAccessDenied},
		{"ItemNotFound", -25300, enclave.KindItemNotFound},
		{"Unknown", -26275, enclave.KindGeneralError},
		{"Zero", 0, enclave.KindGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TranslateDarwinStatus(tt.code, "SecItemCopyMatching")
			assert.Equal(t, tt.want, err.Kind())
		})
	}
}

func TestTranslateDarwinStatus_UnknownPreservesCode(t *testing.T) {
	err := TranslateDarwinStatus(-26275, "SecItemCopyMatching")

	require.Equal(t, enclave.KindGeneralError, err.Kind())
	assert.Contains(t, err.Error(), "-26275")
	assert.Contains(t, err.Error(), "SecItemCopyMatching")
}
