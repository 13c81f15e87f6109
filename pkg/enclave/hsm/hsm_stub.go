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

//go:build !pkcs11

package hsm

import (
	"github.com/jeremyhahn/go-enclave/pkg/enclave"
)

func init() {
	enclave.Register(enclave.BackendHSM, connectStub)
}

// connectStub fails hardware-module connections when the binary was
// built without the pkcs11 tag, so callers see a classified error
// instead of an unregistered backend.
func connectStub(cfg *enclave.Config) (enclave.Enclave, error) {
	return nil, enclave.FromContext(enclave.KindConnectionFailure,
		"hsm backend unavailable: built without pkcs11 support")
}
