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
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Printer renders command output in the requested format.
type Printer struct {
	format string
	out    io.Writer
}

// NewPrinter creates a printer for the given format (text, json, yaml).
// Unknown formats fall back to text.
func NewPrinter(format string, out io.Writer) *Printer {
	return &Printer{format: format, out: out}
}

// Print renders a value. Text output relies on the value's String
// method where present, so redacting types stay redacted.
func (p *Printer) Print(v any) error {
	switch p.format {
	case "json":
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = p.out.Write(data)
		return err
	default:
		_, err := fmt.Fprintf(p.out, "%v\n", v)
		return err
	}
}

// PrintError renders an error in the requested format.
func (p *Printer) PrintError(err error) error {
	switch p.format {
	case "json", "yaml":
		return p.Print(map[string]string{"error": err.Error()})
	default:
		_, werr := fmt.Fprintf(p.out, "error: %v\n", err)
		return werr
	}
}
