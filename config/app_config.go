package config

import (
	"errors"
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// This is the global app config for the ledger.
type AppConfig struct {
	// How many leading hex 0s form a valid hash. 4 means the "0000" prefix.
	DIFFICULTY int `yaml:"DIFFICULTY"`
	// Funds credited to the genesis block.
	INITIAL_FUNDS int64 `yaml:"INITIAL_FUNDS"`
	// How many transactions an open block takes before it must be closed.
	MAX_TRANSACTIONS int `yaml:"MAX_TRANSACTIONS"`
	// Cap on nonce attempts per close, 0 means unbounded.
	MAX_MINING_ITERATIONS int64 `yaml:"MAX_MINING_ITERATIONS"`
	// Close and mine the block as soon as it is full.
	AUTO_CLOSE bool `yaml:"AUTO_CLOSE"`
}

// DefaultAppConfig returns the standard single-node setup.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DIFFICULTY:            4,
		INITIAL_FUNDS:         10_000_000,
		MAX_TRANSACTIONS:      3,
		MAX_MINING_ITERATIONS: 0,
		AUTO_CLOSE:            true,
	}
}

// ParseAppConfig reads a yaml config on top of the defaults, keys missing in
// the file keep their default value.
func ParseAppConfig(path string) (AppConfig, error) {
	c := DefaultAppConfig()
	yamlFile, err := ioutil.ReadFile(path)
	if err != nil {
		return AppConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(yamlFile, &c); err != nil {
		return AppConfig{}, fmt.Errorf("unmarshal config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return AppConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

func (c AppConfig) Validate() error {
	if c.DIFFICULTY < 0 || c.DIFFICULTY > 64 {
		return errors.New("DIFFICULTY must be between 0 and 64")
	}
	if c.MAX_TRANSACTIONS <= 0 {
		return errors.New("MAX_TRANSACTIONS must be positive")
	}
	if c.MAX_MINING_ITERATIONS < 0 {
		return errors.New("MAX_MINING_ITERATIONS must not be negative")
	}
	return nil
}
