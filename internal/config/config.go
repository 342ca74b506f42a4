// Package config loads and validates the gateway configuration.
//
// Configuration is written as YAML and validated against an embedded CUE
// schema, so a malformed file is rejected with a field-level message before
// any component starts.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// Config holds the gateway's runtime settings.
type Config struct {
	// ListenAddr is the HTTP listen address, e.g. ":8545".
	ListenAddr string `yaml:"listen_addr" json:"listen_addr"`

	// DatabasePath is the SQLite file backing the result store.
	DatabasePath string `yaml:"database_path" json:"database_path"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// MaxPayloadBytes bounds the size of an envelope accepted over HTTP.
	MaxPayloadBytes int `yaml:"max_payload_bytes" json:"max_payload_bytes"`

	// DefaultDecimals is the fixed-point scale used when a request does not
	// specify one. 18 matches the EVM's common token precision.
	DefaultDecimals uint8 `yaml:"default_decimals" json:"default_decimals"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		ListenAddr:      ":8545",
		DatabasePath:    "infernet.db",
		LogLevel:        "info",
		MaxPayloadBytes: 1 << 24, // 16 MiB
		DefaultDecimals: 18,
	}
}

// Load reads a YAML config file, fills unset fields from Default, and
// validates the result against the embedded CUE schema.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate unifies the config with the #Config schema and requires the
// result to be concrete.
func (c *Config) Validate() error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}

	val := ctx.Encode(c)
	if err := val.Err(); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Config")).Unify(val)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
