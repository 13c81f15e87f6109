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
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/jeremyhahn/go-enclave/internal/password"
	"github.com/jeremyhahn/go-enclave/pkg/enclave"
)

// Config holds the CLI configuration, merged from flags, the config
// file and ENCLAVE_* environment variables.
type Config struct {
	ConfigFile   string
	Backend      string `mapstructure:"backend"`
	OutputFormat string `mapstructure:"output"`
	Verbose      bool   `mapstructure:"verbose"`

	OSKeyRing OSKeyRingSettings `mapstructure:"oskeyring"`
	HSM       HSMSettings       `mapstructure:"hsm"`
}

// OSKeyRingSettings configures the oskeyring backend. Credentials are
// deliberately not file-configurable; they come from the environment
// or an interactive prompt.
type OSKeyRingSettings struct {
	Path string `mapstructure:"path"`
}

// HSMSettings configures the hsm backend. The PIN may be set through
// the ENCLAVE_HSM_PIN environment variable; leaving it unset defers to
// the backend's interactive prompt.
type HSMSettings struct {
	Library string `mapstructure:"library"`
	Label   string `mapstructure:"label"`
	Slot    *int   `mapstructure:"slot"`
	PIN     string `mapstructure:"pin"`
}

// NewConfig returns a Config with defaults applied.
func NewConfig() *Config {
	return &Config{
		Backend:      "oskeyring",
		OutputFormat: "text",
	}
}

// Load merges the config file and environment into the receiver.
// Flags already bound to the struct take precedence over the file.
func (c *Config) Load() error {
	v := viper.New()
	if c.ConfigFile != "" {
		v.SetConfigFile(c.ConfigFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(".enclave")
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix("ENCLAVE")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicit one must load.
		if c.ConfigFile != "" {
			return fmt.Errorf("reading config file %s: %w", c.ConfigFile, err)
		}
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return fmt.Errorf("reading config: %w", err)
		}
		return nil
	}
	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	return nil
}

// EnclaveConfig builds the connection configuration for the selected
// backend. Secrets are wrapped in clearable containers; enclave.Connect
// scrubs them on return.
func (c *Config) EnclaveConfig() (*enclave.Config, error) {
	switch enclave.ParseBackend(c.Backend) {
	case enclave.BackendOSKeyRing:
		cfg := &enclave.OSKeyRingConfig{Path: c.OSKeyRing.Path}
		if pw := os.Getenv("ENCLAVE_KEYRING_PASSWORD"); pw != "" {
			secret, err := password.FromString(pw)
			if err != nil {
				return nil, err
			}
			cfg.Password = secret
		}
		return &enclave.Config{OSKeyRing: cfg}, nil

	case enclave.BackendHSM:
		cfg := &enclave.HSMConfig{
			Library:    c.HSM.Library,
			TokenLabel: c.HSM.Label,
			Slot:       c.HSM.Slot,
		}
		if c.HSM.PIN != "" {
			pin, err := password.FromString(c.HSM.PIN)
			if err != nil {
				return nil, err
			}
			cfg.PIN = pin
		}
		return &enclave.Config{HSM: cfg}, nil

	default:
		return nil, fmt.Errorf("unknown backend %q (expected oskeyring or hsm)", c.Backend)
	}
}
