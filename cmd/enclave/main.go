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

package main

import (
	"os"

	"github.com/jeremyhahn/go-enclave/internal/cli"

	// Register enclave backends.
	_ "github.com/jeremyhahn/go-enclave/pkg/enclave/hsm"
	_ "github.com/jeremyhahn/go-enclave/pkg/enclave/oskeyring"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
