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

// Package enclave defines the portable connection contract for secure
// enclaves: hardware or software modules that hold private key material
// and perform cryptographic operations without exposing raw keys to the
// calling process.
//
// Enclaves are assumed to be specialized crypto modules, usually in
// hardware, audited for compliance and security. Hardware gives the
// strongest protection against side channels and key extraction, but
// keys usually cannot leave the device, which complicates backup and
// recovery; keys that need recovery should be wrapped by the hardware
// rather than stored solely inside it. Software enclaves such as the
// OS credential store trade those guarantees for portability. A common
// composition is to keep the credentials for a hardware module inside
// the OS keyring and use them to connect.
//
// The package fixes three things that must stay stable across radically
// different backends:
//
//   - the Config model selecting and parameterizing a backend, with
//     secret fields that are scrubbed from memory on every exit path
//   - the ErrorKind taxonomy with causal chaining, into which every
//     backend-native failure is translated at the boundary
//   - the connection contract itself: Connect dispatches on the active
//     configuration variant to a registered backend; Close consumes
//     the handle
//
// Backend implementations live in subpackages (oskeyring, hsm) and
// register themselves at init time. Callers that want a backend
// compiled in import it for side effects:
//
//	import (
//	    "github.com/jeremyhahn/go-enclave/pkg/enclave"
//	    _ "github.com/jeremyhahn/go-enclave/pkg/enclave/oskeyring"
//	)
//
//	cfg := &enclave.Config{OSKeyRing: &enclave.OSKeyRingConfig{}}
//	enc, err := enclave.Connect(cfg)
//	if err != nil {
//	    // branch on enclave.Kind(err)
//	}
//	defer enc.Close()
package enclave
