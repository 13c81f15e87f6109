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
	"os"
	"strings"

	"github.com/99designs/keyring"

	"github.com/jeremyhahn/go-enclave/pkg/enclave"
)

// translate maps a keyring-native error into the enclave taxonomy,
// preserving the original as the chained cause. No keyring error type
// escapes this package.
func translate(err error, msg string) *enclave.Error {
	switch {
	case errors.Is(err, keyring.ErrKeyNotFound):
		return enclave.Wrap(enclave.KindItemNotFound, msg, err)
	case os.IsPermission(err) || containsAny(err,
		"access denied", "permission denied", "not authorized", "authentication failed"):
		return enclave.Wrap(enclave.KindAccessDenied, msg, err)
	case containsAny(err,
		"no such service", "service unknown", "dbus", "connection refused", "unavailable"):
		return enclave.Wrap(enclave.KindConnectionFailure, msg, err)
	default:
		return enclave.Wrap(enclave.KindGeneralError, msg, err)
	}
}

func containsAny(err error, substrs ...string) bool {
	text := strings.ToLower(err.Error())
	for _, s := range substrs {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

// Security framework OSStatus codes surfaced by the macOS keychain.
const (
	darwinAccessDenied = -128   // errSecUserCanceled: user denied access
	darwinItemNotFound = -25300 // errSecItemNotFound
	darwinAuthFailed   = -25293 // errSecAuthFailed
	darwinInteraction  = -25308 // errSecInteractionNotAllowed
)

// TranslateDarwinStatus maps a macOS Security framework OSStatus code
// into the enclave taxonomy. Unrecognized codes classify as general
// errors with the native code preserved in the message; translation
// never fails.
func TranslateDarwinStatus(code int32, detail string) *enclave.Error {
	switch code {
	case darwinAccessDenied, darwinAuthFailed, darwinInteraction:
		return enclave.Errorf(enclave.KindAccessDenied,
			"keychain access denied (OSStatus %d): %s", code, detail)
	case darwinItemNotFound:
		return enclave.FromContext(enclave.KindItemNotFound,
			"item not found in keychain")
	default:
		return enclave.Errorf(enclave.KindGeneralError,
			"unrecognized keychain status (OSStatus %d): %s", code, detail)
	}
}
