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

import (
	"errors"
	"fmt"
)

// ErrInvalidKeyDescriptor is returned when an EnclaveKey carries an
// algorithm parameter combination that is not part of the catalog.
var ErrInvalidKeyDescriptor = errors.New("types: invalid key descriptor")

// KeyType identifies a class of key an enclave may hold.
//
// The catalog is closed and versioned. Adding a key type is a breaking
// contract change: every backend must be audited for correct support
// before a new variant is accepted. Backends must reject descriptors
// they do not support rather than silently substituting algorithms.
type KeyType string

const (
	// KeyTypeEd25519 is a twisted Edwards signing key.
	KeyTypeEd25519 KeyType = "Ed25519"

	// KeyTypeX25519 is a key-exchange key on Curve25519.
	KeyTypeX25519 KeyType = "X25519"

	// KeyTypeECDH is an elliptic curve Diffie-Hellman key-exchange key.
	KeyTypeECDH KeyType = "ECDH"

	// KeyTypeECDSA is an elliptic curve signing key.
	KeyTypeECDSA KeyType = "ECDSA"

	// KeyTypeRSAOAEP is an RSA encryption key using Optimal Asymmetric
	// Encryption Padding.
	KeyTypeRSAOAEP KeyType = "RSA-OAEP"

	// KeyTypeRSAPKCS1v15 is an RSA signing key using legacy PKCS#1 v1.5
	// signatures. Strongly consider ECDSA, Ed25519 or RSA-PSS instead.
	KeyTypeRSAPKCS1v15 KeyType = "RSA-PKCS1v15"

	// KeyTypeRSAPSS is an RSASSA-PSS signing key.
	KeyTypeRSAPSS KeyType = "RSA-PSS"

	// KeyTypeHMAC is a key for hash-based message authentication codes.
	KeyTypeHMAC KeyType = "HMAC"

	// KeyTypeAESWrap is a symmetric AES key used to wrap other keys.
	KeyTypeAESWrap KeyType = "AES-Wrap"

	// KeyTypeXChaCha20Poly1305 is a symmetric XChaCha20-Poly1305 key
	// used to wrap other keys.
	KeyTypeXChaCha20Poly1305 KeyType = "XChaCha20-Poly1305"
)

// String returns the string representation.
func (k KeyType) String() string {
	return string(k)
}

// IsValid returns true if the key type is part of the catalog.
func (k KeyType) IsValid() bool {
	switch k {
	case KeyTypeEd25519, KeyTypeX25519, KeyTypeECDH, KeyTypeECDSA,
		KeyTypeRSAOAEP, KeyTypeRSAPKCS1v15, KeyTypeRSAPSS,
		KeyTypeHMAC, KeyTypeAESWrap, KeyTypeXChaCha20Poly1305:
		return true
	default:
		return false
	}
}

// IsAsymmetric returns true for public-key key types.
func (k KeyType) IsAsymmetric() bool {
	switch k {
	case KeyTypeEd25519, KeyTypeX25519, KeyTypeECDH, KeyTypeECDSA,
		KeyTypeRSAOAEP, KeyTypeRSAPKCS1v15, KeyTypeRSAPSS:
		return true
	default:
		return false
	}
}

// IsWrapping returns true for symmetric wrapping key types.
func (k KeyType) IsWrapping() bool {
	return k == KeyTypeAESWrap || k == KeyTypeXChaCha20Poly1305
}

// EnclaveKey describes a key an enclave may create or hold: the key
// type plus the algorithm parameters that type requires. It is a pure
// descriptor with no behavior; callers use it to state intent and
// backends answer whether the combination is supported.
//
// The struct is comparable: two descriptors built with identical
// parameters compare equal with ==. Fields that do not apply to the
// key type stay zero-valued. Use the constructors rather than struct
// literals so nonsensical combinations cannot be built.
type EnclaveKey struct {
	// Type is the key class.
	Type KeyType

	// Curve applies to ECDH and ECDSA keys.
	Curve EcCurve

	// Hash applies to ECDSA and HMAC keys.
	Hash HashAlgorithm

	// MGF applies to the RSA key types.
	MGF MGFHash

	// AESSize applies to AES wrapping keys.
	AESSize AESKeySize

	// AESMode applies to AES wrapping keys.
	AESMode AESMode
}

// Ed25519Key describes a twisted Edwards signing key.
func Ed25519Key() EnclaveKey {
	return EnclaveKey{Type: KeyTypeEd25519}
}

// X25519Key describes a Curve25519 key-exchange key.
func X25519Key() EnclaveKey {
	return EnclaveKey{Type: KeyTypeX25519}
}

// ECDHKey describes an elliptic curve key-exchange key on the given curve.
func ECDHKey(curve EcCurve) EnclaveKey {
	return EnclaveKey{Type: KeyTypeECDH, Curve: curve}
}

// ECDSAKey describes an elliptic curve signing key on the given curve
// signing digests of the given hash.
func ECDSAKey(curve EcCurve, hash HashAlgorithm) EnclaveKey {
	return EnclaveKey{Type: KeyTypeECDSA, Curve: curve, Hash: hash}
}

// RSAOAEPKey describes an RSA encryption key with OAEP padding and the
// given mask generation hash.
func RSAOAEPKey(mgf MGFHash) EnclaveKey {
	return EnclaveKey{Type: KeyTypeRSAOAEP, MGF: mgf}
}

// RSAPKCS1v15Key describes a legacy RSA PKCS#1 v1.5 signing key.
func RSAPKCS1v15Key(mgf MGFHash) EnclaveKey {
	return EnclaveKey{Type: KeyTypeRSAPKCS1v15, MGF: mgf}
}

// RSAPSSKey describes an RSASSA-PSS signing key with the given mask
// generation hash.
func RSAPSSKey(mgf MGFHash) EnclaveKey {
	return EnclaveKey{Type: KeyTypeRSAPSS, MGF: mgf}
}

// HMACKey describes an HMAC key producing tags with the given hash.
func HMACKey(hash HashAlgorithm) EnclaveKey {
	return EnclaveKey{Type: KeyTypeHMAC, Hash: hash}
}

// AESWrapKey describes an AES wrapping key of the given size operating
// in the given AEAD mode.
func AESWrapKey(size AESKeySize, mode AESMode) EnclaveKey {
	return EnclaveKey{Type: KeyTypeAESWrap, AESSize: size, AESMode: mode}
}

// XChaCha20Poly1305Key describes an XChaCha20-Poly1305 wrapping key.
func XChaCha20Poly1305Key() EnclaveKey {
	return EnclaveKey{Type: KeyTypeXChaCha20Poly1305}
}

// Validate checks that the descriptor carries a cataloged parameter
// combination: required parameters present and valid, inapplicable
// parameters zero.
func (k EnclaveKey) Validate() error {
	switch k.Type {
	case KeyTypeEd25519, KeyTypeX25519, KeyTypeXChaCha20Poly1305:
		if k.Curve != "" || k.Hash != "" || k.MGF != "" || k.AESSize != 0 || k.AESMode != "" {
			return fmt.Errorf("%w: %s takes no parameters", ErrInvalidKeyDescriptor, k.Type)
		}
	case KeyTypeECDH:
		if !k.Curve.IsValid() {
			return fmt.Errorf("%w: ECDH requires a curve, got %q", ErrInvalidKeyDescriptor, k.Curve)
		}
		if k.Hash != "" || k.MGF != "" || k.AESSize != 0 || k.AESMode != "" {
			return fmt.Errorf("%w: ECDH takes only a curve", ErrInvalidKeyDescriptor)
		}
	case KeyTypeECDSA:
		if !k.Curve.IsValid() {
			return fmt.Errorf("%w: ECDSA requires a curve, got %q", ErrInvalidKeyDescriptor, k.Curve)
		}
		if !k.Hash.IsValid() {
			return fmt.Errorf("%w: ECDSA requires a hash, got %q", ErrInvalidKeyDescriptor, k.Hash)
		}
		if k.MGF != "" || k.AESSize != 0 || k.AESMode != "" {
			return fmt.Errorf("%w: ECDSA takes only a curve and hash", ErrInvalidKeyDescriptor)
		}
	case KeyTypeRSAOAEP, KeyTypeRSAPKCS1v15, KeyTypeRSAPSS:
		if !k.MGF.IsValid() {
			return fmt.Errorf("%w: %s requires a mask generation hash, got %q",
				ErrInvalidKeyDescriptor, k.Type, k.MGF)
		}
		if k.Curve != "" || k.Hash != "" || k.AESSize != 0 || k.AESMode != "" {
			return fmt.Errorf("%w: %s takes only a mask generation hash", ErrInvalidKeyDescriptor, k.Type)
		}
	case KeyTypeHMAC:
		if !k.Hash.IsValid() {
			return fmt.Errorf("%w: HMAC requires a hash, got %q", ErrInvalidKeyDescriptor, k.Hash)
		}
		if k.Curve != "" || k.MGF != "" || k.AESSize != 0 || k.AESMode != "" {
			return fmt.Errorf("%w: HMAC takes only a hash", ErrInvalidKeyDescriptor)
		}
	case KeyTypeAESWrap:
		if !k.AESSize.IsValid() {
			return fmt.Errorf("%w: AES requires a key size of 128, 192 or 256, got %d",
				ErrInvalidKeyDescriptor, k.AESSize)
		}
		if !k.AESMode.IsValid() {
			return fmt.Errorf("%w: AES requires a mode, got %q", ErrInvalidKeyDescriptor, k.AESMode)
		}
		if k.Curve != "" || k.Hash != "" || k.MGF != "" {
			return fmt.Errorf("%w: AES takes only a key size and mode", ErrInvalidKeyDescriptor)
		}
	default:
		return fmt.Errorf("%w: unknown key type %q", ErrInvalidKeyDescriptor, k.Type)
	}
	return nil
}

// IsLegacy returns true if the descriptor uses an algorithm retained
// only for interoperability with legacy systems (SHA-1 in any role, or
// PKCS#1 v1.5 signatures).
func (k EnclaveKey) IsLegacy() bool {
	return k.Type == KeyTypeRSAPKCS1v15 || k.Hash.IsLegacy() || k.MGF.IsLegacy()
}

// String renders the descriptor with its parameters, e.g.
// "ECDSA(P-256, SHA-256)" or "AES-Wrap(256, GCM)".
func (k EnclaveKey) String() string {
	switch k.Type {
	case KeyTypeECDH:
		return fmt.Sprintf("%s(%s)", k.Type, k.Curve)
	case KeyTypeECDSA:
		return fmt.Sprintf("%s(%s, %s)", k.Type, k.Curve, k.Hash)
	case KeyTypeRSAOAEP, KeyTypeRSAPKCS1v15, KeyTypeRSAPSS:
		return fmt.Sprintf("%s(MGF1-%s)", k.Type, k.MGF)
	case KeyTypeHMAC:
		return fmt.Sprintf("%s(%s)", k.Type, k.Hash)
	case KeyTypeAESWrap:
		return fmt.Sprintf("%s(%d, %s)", k.Type, k.AESSize, k.AESMode)
	default:
		return string(k.Type)
	}
}
