package configs

import (
	"fmt"
	"os"
	"time"
)

// Config is the optional user configuration file.
type Config struct {
	VaultDir  string          `toml:"vault_dir"`
	Generator GeneratorConfig `toml:"generator"`
	Clipboard ClipboardConfig `toml:"clipboard"`
	Storage   StorageConfig   `toml:"storage"`
}

type GeneratorConfig struct {
	Length  int  `toml:"length"`
	Symbols bool `toml:"symbols"`
}

type ClipboardConfig struct {
	// SettleMS bounds how long a helper process is given to fail after its input is closed.
	SettleMS int `toml:"settle_ms"`
	// AwaitExit waits for each helper to exit and requires a zero status.
	AwaitExit bool `toml:"await_exit"`
	// DisableHelpers skips helper processes and uses the clipboard library directly.
	DisableHelpers bool `toml:"disable_helpers"`
}

type StorageConfig struct {
	// Sealed enables the passphrase-sealed vault codec.
	Sealed bool `toml:"sealed"`
}

const (
	defaultGeneratorLength = 12
	defaultSettleMS        = 100
)

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Generator: GeneratorConfig{Length: defaultGeneratorLength},
		Clipboard: ClipboardConfig{SettleMS: defaultSettleMS},
	}
}

// Settle returns the clipboard settle window as a duration.
func (c ClipboardConfig) Settle() time.Duration {
	return time.Duration(c.SettleMS) * time.Millisecond
}

// LoadConfig loads the config file at path, filling unset values with defaults.
// A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path == "" {
		return config, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(path, config); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	if config.Generator.Length < 0 {
		return nil, fmt.Errorf("invalid config %s: generator.length must not be negative", path)
	}
	if config.Generator.Length == 0 {
		config.Generator.Length = defaultGeneratorLength
	}
	if config.Clipboard.SettleMS < 0 {
		return nil, fmt.Errorf("invalid config %s: clipboard.settle_ms must not be negative", path)
	}

	return config, nil
}

// SaveConfig writes config to path, creating parent directories.
func SaveConfig(path string, config *Config) error {
	if err := SaveTOML(path, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// EnsureConfig writes the default configuration to path if no file exists
// there yet. It reports whether a file was created.
func EnsureConfig(path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to check config %s: %w", path, err)
	}

	if err := SaveConfig(path, DefaultConfig()); err != nil {
		return false, err
	}
	return true, nil
}
