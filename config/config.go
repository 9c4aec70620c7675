// Package config reads the settings of cb from a yaml file and the environment.
package config

import (
	"errors"
	"io/fs"
	"os"

	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/etnz/cashbook"
)

const (
	DefaultFile        = "cashbook.yaml"
	DefaultLedgerFile  = "expenses.json"
	DefaultGeminiModel = "gemini-2.5-flash"
)

// Environment variables overriding the file.
const (
	EnvLedgerFile  = "CASHBOOK_LEDGER_FILE"
	EnvCurrency    = "CASHBOOK_CURRENCY"
	EnvGeminiModel = "CASHBOOK_GEMINI_MODEL"
)

type Config struct {
	LedgerFile  string `yaml:"ledger-file"`
	Currency    string `yaml:"currency"`
	GeminiModel string `yaml:"gemini-model"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		LedgerFile:  DefaultLedgerFile,
		GeminiModel: DefaultGeminiModel,
	}
}

// Load reads the configuration file at path, then applies the environment.
//
// A missing file is not an error, the defaults are used instead.
func Load(path string) (*Config, error) {
	c := Default()

	rawYAML, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, pkgerrors.Wrap(err, "reading config file")
	default:
		if err := yaml.Unmarshal(rawYAML, c); err != nil {
			return nil, pkgerrors.Wrapf(err, "parsing yaml %s", path)
		}
	}

	c.applyEnv()
	c.fillDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLedgerFile); v != "" {
		c.LedgerFile = v
	}
	if v := os.Getenv(EnvCurrency); v != "" {
		c.Currency = v
	}
	if v := os.Getenv(EnvGeminiModel); v != "" {
		c.GeminiModel = v
	}
}

// fillDefaults restores defaults that the file explicitly emptied.
func (c *Config) fillDefaults() {
	if c.LedgerFile == "" {
		c.LedgerFile = DefaultLedgerFile
	}
	if c.GeminiModel == "" {
		c.GeminiModel = DefaultGeminiModel
	}
}

// Validate checks the currency code, an empty one is valid.
func (c *Config) Validate() error {
	if c.Currency == "" {
		return nil
	}
	return pkgerrors.Wrap(cashbook.ValidateCurrency(c.Currency), "invalid currency")
}
