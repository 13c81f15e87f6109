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
	"os"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-enclave/pkg/enclave"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List the enclave backends compiled into this binary",
	RunE: func(cmd *cobra.Command, args []string) error {
		backends := enclave.RegisteredBackends()
		names := make([]string, len(backends))
		for i, b := range backends {
			names[i] = b.String()
		}
		printer := NewPrinter(getConfig().OutputFormat, os.Stdout)
		return printer.Print(names)
	},
}
