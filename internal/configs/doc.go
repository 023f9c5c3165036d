// Package configs resolves where walkpwd keeps its state and loads the
// optional user configuration.
//
// # Settings
//
// WalkpwdSettings is populated once per process by InitSettings:
//   - VaultDir: the directory holding vault.json and the init marker
//   - ConfigPath: the TOML configuration file
//
// The vault directory follows the platform per-user data convention
// ($XDG_DATA_HOME/walkpwd, ~/Library/Application Support/walkpwd,
// %APPDATA%\walkpwd\data) unless WALKPWD_VAULT_DIR or vault_dir in the
// config file overrides it.
//
// # Configuration File
//
// The file is TOML and every key is optional:
//
//	vault_dir = "/path/to/vault"
//
//	[generator]
//	length = 12
//	symbols = false
//
//	[clipboard]
//	settle_ms = 100
//	await_exit = false
//	disable_helpers = false
//
//	[storage]
//	sealed = false
package configs
