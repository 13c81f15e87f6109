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
	"time"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-enclave/pkg/enclave"
)

// connectResult is the printable outcome of a connection probe.
type connectResult struct {
	Backend   string `json:"backend" yaml:"backend"`
	Connected bool   `json:"connected" yaml:"connected"`
	Elapsed   string `json:"elapsed" yaml:"elapsed"`
	ErrorKind string `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Probe a connection to the configured enclave backend",
	Long: `Connect builds a configuration for the selected backend, attempts a
connection through the enclave contract, reports the classified outcome
and closes the handle. Secrets supplied via environment variables are
scrubbed from memory before the command returns.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		if err := cfg.Load(); err != nil {
			handleError(err)
		}
		enclaveCfg, err := cfg.EnclaveConfig()
		if err != nil {
			handleError(err)
		}

		result := connectResult{Backend: cfg.Backend}
		start := time.Now()
		enc, err := enclave.Connect(enclaveCfg)
		result.Elapsed = time.Since(start).String()
		if err != nil {
			result.ErrorKind = enclave.Kind(err).String()
			result.Error = err.Error()
			if cfg.Verbose {
				fmt.Fprintf(os.Stderr, "%+v\n", err)
			}
		} else {
			result.Connected = true
			defer func() {
				if cerr := enc.Close(); cerr != nil {
					fmt.Fprintf(os.Stderr, "warning: close failed: %v\n", cerr)
				}
			}()
		}

		printer := NewPrinter(cfg.OutputFormat, os.Stdout)
		return printer.Print(result)
	},
}
