// Package config loads the pfrange HCL configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultPath is the configuration file read when no path is given.
const DefaultPath = "pfrange.hcl"

// Mode selects how much of a position chart is shown.
type Mode string

const (
	// Beginner shows raise/fold decisions only.
	Beginner Mode = "beginner"
	// Advanced also shows the mixed raise-or-fold hands.
	Advanced Mode = "advanced"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == Beginner || m == Advanced
}

// Config represents the complete pfrange configuration
type Config struct {
	LogLevel string        `hcl:"log_level,optional"`
	Mode     string        `hcl:"mode,optional"`
	Chart    string        `hcl:"chart,optional"`
	REPL     *REPLSettings `hcl:"repl,block"`
}

// REPLSettings contains interactive loop settings
type REPLSettings struct {
	Prompt  string `hcl:"prompt,optional"`
	Plain   bool   `hcl:"plain,optional"`
	Grid    bool   `hcl:"grid,optional"`
	History int    `hcl:"history,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Mode:     string(Beginner),
		REPL: &REPLSettings{
			Prompt:  "Enter ranges: ",
			History: 50,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults; unset values are filled from the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults(Default())
	return &cfg, nil
}

func (c *Config) applyDefaults(defaults *Config) {
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.Mode == "" {
		c.Mode = defaults.Mode
	}
	if c.REPL == nil {
		c.REPL = defaults.REPL
		return
	}
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = defaults.REPL.Prompt
	}
	if c.REPL.History == 0 {
		c.REPL.History = defaults.REPL.History
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	if !Mode(c.Mode).Valid() {
		return fmt.Errorf("invalid mode: %s", c.Mode)
	}

	if c.REPL != nil && c.REPL.History < 0 {
		return fmt.Errorf("repl history cannot be negative")
	}

	return nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
