// Package config loads the optional mylang.toml project file that
// controls which report sections the CLI prints.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the full project configuration.
type Config struct {
	Project Project `toml:"project"`
	Report  Report  `toml:"report"`
}

// Project names the project. Informational only.
type Project struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// Report selects which sections of the scan report are printed.
type Report struct {
	Tokens      bool `toml:"tokens"`
	SymbolTable bool `toml:"symbol-table"`
	Statistics  bool `toml:"statistics"`
	Errors      bool `toml:"errors"`
}

// Default returns the configuration used when no mylang.toml exists:
// every report section enabled.
func Default() Config {
	return Config{
		Project: Project{Name: "untitled", Version: "0.1.0"},
		Report: Report{
			Tokens:      true,
			SymbolTable: true,
			Statistics:  true,
			Errors:      true,
		},
	}
}

// Load reads a TOML configuration file. A missing file is not an
// error; the defaults are returned.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}
