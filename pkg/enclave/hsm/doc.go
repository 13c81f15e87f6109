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

// Package hsm implements the enclave connection contract for PKCS#11
// hardware security modules (YubiKey, Nitrokey, SoftHSM, network HSMs).
//
// The real implementation requires cgo and is gated behind the pkcs11
// build tag:
//
//	go build -tags pkcs11 ./...
//
// Without the tag a stub registers in its place that fails connection
// attempts with a connection-failure error, so importing callers keep
// a single code path.
//
// PKCS#11 tokens commonly support one in-flight transaction; the
// underlying crypto11 library serializes sessions internally. That
// serialization is this backend's concern, not part of the contract.
// Reconnecting can be expensive (USB or network attached); callers
// wanting retry apply their own backoff.
package hsm
