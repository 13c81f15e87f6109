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

	"github.com/miekg/pkcs11"

	"github.com/jeremyhahn/go-enclave/pkg/enclave"
)

// translate maps a PKCS#11 return code into the enclave taxonomy,
// preserving the original error as the chained cause. Codes outside
// the table classify as general errors with the CKR code kept in the
// chain rather than discarded; translation never fails.
func translate(err error, msg string) *enclave.Error {
	var rv pkcs11.Error
	if !errors.As(err, &rv) {
		return enclave.Wrap(enclave.KindGeneralError, msg, err)
	}

	switch rv {
	case pkcs11.CKR_PIN_INCORRECT,
		pkcs11.CKR_PIN_INVALID,
		pkcs11.CKR_PIN_EXPIRED,
		pkcs11.CKR_PIN_LOCKED,
		pkcs11.CKR_USER_NOT_LOGGED_IN,
		pkcs11.CKR_SESSION_READ_ONLY:
		return enclave.Wrap(enclave.KindAccessDenied, msg, err)

	case pkcs11.CKR_SLOT_ID_INVALID,
		pkcs11.CKR_TOKEN_NOT_PRESENT,
		pkcs11.CKR_TOKEN_NOT_RECOGNIZED,
		pkcs11.CKR_DEVICE_ERROR,
		pkcs11.CKR_DEVICE_REMOVED,
		pkcs11.CKR_SESSION_HANDLE_INVALID,
		pkcs11.CKR_CRYPTOKI_NOT_INITIALIZED:
		return enclave.Wrap(enclave.KindConnectionFailure, msg, err)

	case pkcs11.CKR_OBJECT_HANDLE_INVALID,
		pkcs11.CKR_KEY_HANDLE_INVALID,
		pkcs11.CKR_ATTRIBUTE_TYPE_INVALID:
		return enclave.Wrap(enclave.KindItemNotFound, msg, err)

	default:
		return enclave.Wrap(enclave.KindGeneralError, msg, err)
	}
}
