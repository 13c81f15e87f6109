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

package types

import "strings"

// =============================================================================
// Elliptic Curve Constants
// =============================================================================
// Curve names follow NIST naming conventions (P-256, P-384, P-521).

// EcCurve represents elliptic curve identifiers valid for enclave keys.
type EcCurve string

const (
	// CurveP256 is NIST P-256 (secp256r1, prime256v1).
	// This is the most commonly supported curve across enclaves.
	CurveP256 EcCurve = "P-256"

	// CurveP384 is NIST P-384 (secp384r1).
	CurveP384 EcCurve = "P-384"

	// CurveP521 is NIST P-521 (secp521r1).
	CurveP521 EcCurve = "P-521"

	// CurveSecp256k1 is the Koblitz curve used in Bitcoin/Ethereum.
	// Few hardware enclaves support it; check backend capabilities.
	CurveSecp256k1 EcCurve = "secp256k1"
)

// String returns the string representation.
func (c EcCurve) String() string {
	return string(c)
}

// IsValid returns true if the curve is part of the catalog.
func (c EcCurve) IsValid() bool {
	switch c {
	case CurveP256, CurveP384, CurveP521, CurveSecp256k1:
		return true
	default:
		return false
	}
}

// Equals performs case-insensitive comparison for protocol compatibility.
func (c EcCurve) Equals(s string) bool {
	return strings.EqualFold(string(c), s)
}

// ParseEcCurve parses a string into an EcCurve. Returns an empty
// EcCurve if the string does not name a cataloged curve.
func ParseEcCurve(s string) EcCurve {
	for _, c := range []EcCurve{CurveP256, CurveP384, CurveP521, CurveSecp256k1} {
		if c.Equals(s) {
			return c
		}
	}
	return EcCurve("")
}

// =============================================================================
// Hash Algorithm Constants
// =============================================================================

// HashAlgorithm represents hash algorithm identifiers used for ECDSA
// signatures, HMAC tags and RSA mask generation.
type HashAlgorithm string

const (
	// HashSHA1 is SHA-1. Considered broken; representable only for
	// interoperability with legacy systems and strongly discouraged.
	HashSHA1 HashAlgorithm = "SHA-1"

	// HashSHA256 is SHA-256 (recommended minimum).
	HashSHA256 HashAlgorithm = "SHA-256"

	// HashSHA384 is SHA-384.
	HashSHA384 HashAlgorithm = "SHA-384"

	// HashSHA512 is SHA-512.
	HashSHA512 HashAlgorithm = "SHA-512"
)

// String returns the string representation.
func (h HashAlgorithm) String() string {
	return string(h)
}

// IsValid returns true if the hash is part of the catalog.
func (h HashAlgorithm) IsValid() bool {
	switch h {
	case HashSHA1, HashSHA256, HashSHA384, HashSHA512:
		return true
	default:
		return false
	}
}

// IsLegacy returns true for algorithms retained only for
// interoperability with legacy systems.
func (h HashAlgorithm) IsLegacy() bool {
	return h == HashSHA1
}

// Equals performs case-insensitive comparison for protocol compatibility.
func (h HashAlgorithm) Equals(s string) bool {
	return strings.EqualFold(string(h), s)
}

// ParseHashAlgorithm parses a string into a HashAlgorithm. Returns an
// empty HashAlgorithm if the string does not name a cataloged hash.
func ParseHashAlgorithm(s string) HashAlgorithm {
	for _, h := range []HashAlgorithm{HashSHA1, HashSHA256, HashSHA384, HashSHA512} {
		if h.Equals(s) {
			return h
		}
	}
	return HashAlgorithm("")
}

// =============================================================================
// RSA Mask Generation Function Constants
// =============================================================================

// MGFHash identifies the hash used by the RSA mask generation function
// in OAEP and PSS padding schemes. It carries the same hash identities
// as HashAlgorithm but is a distinct type so an ECDSA digest choice can
// never be passed where an MGF is required.
type MGFHash string

const (
	// MGFSHA1 uses SHA-1 for mask generation. Legacy only.
	MGFSHA1 MGFHash = "SHA-1"

	// MGFSHA256 uses SHA-256 for mask generation.
	MGFSHA256 MGFHash = "SHA-256"

	// MGFSHA384 uses SHA-384 for mask generation.
	MGFSHA384 MGFHash = "SHA-384"

	// MGFSHA512 uses SHA-512 for mask generation.
	MGFSHA512 MGFHash = "SHA-512"
)

// String returns the string representation.
func (m MGFHash) String() string {
	return string(m)
}

// IsValid returns true if the MGF hash is part of the catalog.
func (m MGFHash) IsValid() bool {
	switch m {
	case MGFSHA1, MGFSHA256, MGFSHA384, MGFSHA512:
		return true
	default:
		return false
	}
}

// IsLegacy returns true for mask generation hashes retained only for
// interoperability with legacy systems.
func (m MGFHash) IsLegacy() bool {
	return m == MGFSHA1
}

// ParseMGFHash parses a string into an MGFHash. Returns an empty
// MGFHash if the string does not name a cataloged hash.
func ParseMGFHash(s string) MGFHash {
	for _, m := range []MGFHash{MGFSHA1, MGFSHA256, MGFSHA384, MGFSHA512} {
		if strings.EqualFold(string(m), s) {
			return m
		}
	}
	return MGFHash("")
}

// =============================================================================
// AES Parameters
// =============================================================================

// AESKeySize represents valid AES key sizes in bits.
type AESKeySize int

const (
	// AES128 is AES with 128 bit keys.
	AES128 AESKeySize = 128

	// AES192 is AES with 192 bit keys.
	AES192 AESKeySize = 192

	// AES256 is AES with 256 bit keys.
	AES256 AESKeySize = 256
)

// Bits returns the key size in bits.
func (s AESKeySize) Bits() int {
	return int(s)
}

// Bytes returns the key size in bytes.
func (s AESKeySize) Bytes() int {
	return int(s) / 8
}

// IsValid returns true if the key size is part of the catalog.
func (s AESKeySize) IsValid() bool {
	switch s {
	case AES128, AES192, AES256:
		return true
	default:
		return false
	}
}

// AESMode represents AEAD modes of operation for AES wrapping keys.
type AESMode string

const (
	// AESModeCCM is Counter with CBC-MAC, NIST SP 800-38C.
	AESModeCCM AESMode = "CCM"

	// AESModeGCM is Galois/Counter Mode, NIST SP 800-38D.
	AESModeGCM AESMode = "GCM"

	// AESModeGCMSIV is Galois/Counter Mode with Synthetic IV, RFC 8452.
	AESModeGCMSIV AESMode = "GCM-SIV"
)

// String returns the string representation.
func (m AESMode) String() string {
	return string(m)
}

// IsValid returns true if the mode is part of the catalog.
func (m AESMode) IsValid() bool {
	switch m {
	case AESModeCCM, AESModeGCM, AESModeGCMSIV:
		return true
	default:
		return false
	}
}

// ParseAESMode parses a string into an AESMode. Returns an empty
// AESMode if the string does not name a cataloged mode.
func ParseAESMode(s string) AESMode {
	for _, m := range []AESMode{AESModeCCM, AESModeGCM, AESModeGCMSIV} {
		if strings.EqualFold(string(m), s) {
			return m
		}
	}
	return AESMode("")
}
