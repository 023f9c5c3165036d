package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// AppName names the per-user data and config directories.
	AppName = "walkpwd"

	// VaultDirEnv overrides the resolved vault directory.
	VaultDirEnv = "WALKPWD_VAULT_DIR"

	// PassphraseEnv supplies the sealing passphrase non-interactively.
	PassphraseEnv = "WALKPWD_PASSPHRASE"
)

// Settings holds the paths resolved once per process.
type Settings struct {
	VaultDir   string
	ConfigPath string
}

// WalkpwdSettings is populated by InitSettings and read by every command.
var WalkpwdSettings = &Settings{}

// InitSettings resolves the vault directory and config path for this process.
// An empty configPath selects the platform default. The vault directory is
// chosen by precedence: WALKPWD_VAULT_DIR, the config file's vault_dir, then
// the platform data directory.
func InitSettings(configPath string, cfg *Config) error {
	if configPath == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return err
		}
		configPath = p
	}

	vaultDir := os.Getenv(VaultDirEnv)
	if vaultDir == "" && cfg != nil {
		vaultDir = cfg.VaultDir
	}
	if vaultDir == "" {
		d, err := DefaultVaultDir()
		if err != nil {
			return err
		}
		vaultDir = d
	}

	WalkpwdSettings = &Settings{
		VaultDir:   vaultDir,
		ConfigPath: configPath,
	}
	return nil
}

// DefaultConfigPath returns <UserConfigDir>/walkpwd/config.toml.
func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("error getting config directory: %w", err)
	}
	return filepath.Join(configDir, AppName, "config.toml"), nil
}

// DefaultVaultDir returns the per-user data directory for the current platform.
func DefaultVaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error getting home directory: %w", err)
	}
	return dataDirFor(runtime.GOOS, homeDir, os.Getenv), nil
}

// dataDirFor follows the platform data-directory conventions:
// XDG on Linux and BSDs, Application Support on macOS, roaming AppData on Windows.
func dataDirFor(goos, homeDir string, getenv func(string) string) string {
	switch goos {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Application Support", AppName)
	case "windows":
		appData := getenv("APPDATA")
		if appData == "" {
			appData = filepath.Join(homeDir, "AppData", "Roaming")
		}
		return filepath.Join(appData, AppName, "data")
	default:
		dataDir := getenv("XDG_DATA_HOME")
		// XDG Base Directory requires absolute paths; relative values are ignored.
		if dataDir == "" || !filepath.IsAbs(dataDir) {
			dataDir = filepath.Join(homeDir, ".local", "share")
		}
		return filepath.Join(dataDir, AppName)
	}
}
