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

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-enclave/pkg/enclave"
	"github.com/jeremyhahn/go-enclave/pkg/types"
)

var (
	keyTypeFlag string
	curveFlag   string
	hashFlag    string
	mgfFlag     string
	aesSizeFlag int
	aesModeFlag string
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Inspect the key/algorithm catalog",
}

// catalogEntry is one printable row of the key catalog.
type catalogEntry struct {
	Type       string `json:"type" yaml:"type"`
	Parameters string `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Legacy     bool   `json:"legacy,omitempty" yaml:"legacy,omitempty"`
}

var keysListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the closed key type catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := []catalogEntry{
			{Type: types.KeyTypeEd25519.String()},
			{Type: types.KeyTypeX25519.String()},
			{Type: types.KeyTypeECDH.String(), Parameters: "curve"},
			{Type: types.KeyTypeECDSA.String(), Parameters: "curve, hash"},
			{Type: types.KeyTypeRSAOAEP.String(), Parameters: "mgf"},
			{Type: types.KeyTypeRSAPKCS1v15.String(), Parameters: "mgf", Legacy: true},
			{Type: types.KeyTypeRSAPSS.String(), Parameters: "mgf"},
			{Type: types.KeyTypeHMAC.String(), Parameters: "hash"},
			{Type: types.KeyTypeAESWrap.String(), Parameters: "size, mode"},
			{Type: types.KeyTypeXChaCha20Poly1305.String()},
		}
		printer := NewPrinter(getConfig().OutputFormat, os.Stdout)
		return printer.Print(entries)
	},
}

// checkResult is the printable outcome of a support check.
type checkResult struct {
	Key       string `json:"key" yaml:"key"`
	Backend   string `json:"backend" yaml:"backend"`
	Supported bool   `json:"supported" yaml:"supported"`
	Legacy    bool   `json:"legacy,omitempty" yaml:"legacy,omitempty"`
	Reason    string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

var keysCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether the configured backend supports a key descriptor",
	Long: `Check builds a key descriptor from the given flags, connects to the
configured backend and asks it whether the descriptor is supported.
Legacy algorithms (SHA-1 in any role, PKCS#1 v1.5 signatures) remain
representable for interoperability but are flagged as discouraged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := buildKey()
		if err != nil {
			handleError(err)
		}

		cfg := getConfig()
		if err := cfg.Load(); err != nil {
			handleError(err)
		}
		enclaveCfg, err := cfg.EnclaveConfig()
		if err != nil {
			handleError(err)
		}

		enc, err := enclave.Connect(enclaveCfg)
		if err != nil {
			handleError(err)
		}
		defer enc.Close()

		result := checkResult{
			Key:     key.String(),
			Backend: cfg.Backend,
			Legacy:  key.IsLegacy(),
		}
		if serr := enc.Supports(key); serr != nil {
			result.Reason = serr.Error()
		} else {
			result.Supported = true
		}

		printer := NewPrinter(cfg.OutputFormat, os.Stdout)
		return printer.Print(result)
	},
}

// buildKey assembles an EnclaveKey descriptor from the command flags.
func buildKey() (types.EnclaveKey, error) {
	var key types.EnclaveKey
	switch types.KeyType(keyTypeFlag) {
	case types.KeyTypeEd25519:
		key = types.Ed25519Key()
	case types.KeyTypeX25519:
		key = types.X25519Key()
	case types.KeyTypeECDH:
		key = types.ECDHKey(types.ParseEcCurve(curveFlag))
	case types.KeyTypeECDSA:
		key = types.ECDSAKey(types.ParseEcCurve(curveFlag), types.ParseHashAlgorithm(hashFlag))
	case types.KeyTypeRSAOAEP:
		key = types.RSAOAEPKey(types.ParseMGFHash(mgfFlag))
	case types.KeyTypeRSAPKCS1v15:
		key = types.RSAPKCS1v15Key(types.ParseMGFHash(mgfFlag))
	case types.KeyTypeRSAPSS:
		key = types.RSAPSSKey(types.ParseMGFHash(mgfFlag))
	case types.KeyTypeHMAC:
		key = types.HMACKey(types.ParseHashAlgorithm(hashFlag))
	case types.KeyTypeAESWrap:
		key = types.AESWrapKey(types.AESKeySize(aesSizeFlag), types.ParseAESMode(aesModeFlag))
	case types.KeyTypeXChaCha20Poly1305:
		key = types.XChaCha20Poly1305Key()
	default:
		return key, fmt.Errorf("unknown key type %q", keyTypeFlag)
	}
	if err := key.Validate(); err != nil {
		return key, err
	}
	return key, nil
}

func init() {
	keysCheckCmd.Flags().StringVar(&keyTypeFlag, "type", "", "key type (e.g. ECDSA, AES-Wrap)")
	keysCheckCmd.Flags().StringVar(&curveFlag, "curve", "", "elliptic curve (P-256, P-384, P-521, secp256k1)")
	keysCheckCmd.Flags().StringVar(&hashFlag, "hash", "", "hash algorithm (SHA-1, SHA-256, SHA-384, SHA-512)")
	keysCheckCmd.Flags().StringVar(&mgfFlag, "mgf", "", "RSA mask generation hash")
	keysCheckCmd.Flags().IntVar(&aesSizeFlag, "size", 0, "AES key size in bits (128, 192, 256)")
	keysCheckCmd.Flags().StringVar(&aesModeFlag, "mode", "", "AES mode (CCM, GCM, GCM-SIV)")
	_ = keysCheckCmd.MarkFlagRequired("type")

	keysCmd.AddCommand(keysListCmd)
	keysCmd.AddCommand(keysCheckCmd)
}
