package workflows

import (
	"context"
	"fmt"

	"github.com/walkpwd/walkpwd/internal/configs"
	"github.com/walkpwd/walkpwd/internal/vault"
)

// InitOptions configures the init workflow.
type InitOptions struct {
	// Force resets an existing vault to an empty collection.
	Force bool

	// Codec encodes the empty collection. Nil selects plaintext JSON.
	Codec vault.Codec
}

// InitResult contains the outcome of an init operation.
type InitResult struct {
	// VaultDir is the directory that was initialized.
	VaultDir string

	// AlreadyInitialized is true when the marker existed before this run.
	AlreadyInitialized bool

	// Reset is true when existing entries were discarded because of Force.
	Reset bool

	// ConfigPath is the config file location; ConfigCreated is true when
	// Init wrote the defaults there because no file existed.
	ConfigPath    string
	ConfigCreated bool
}

// Init prepares the configured vault directory.
//
// Running Init on an initialized vault keeps its entries unless Force is
// set. A default config file is written when none exists at the configured
// path. Returns ErrInitialization if the directory, marker or record file
// cannot be created.
func Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	dir, err := vaultDir()
	if err != nil {
		return nil, err
	}

	res, err := vault.Init(dir, vault.InitOptions{
		Overwrite: opts.Force,
		Codec:     opts.Codec,
	})
	if err != nil {
		return nil, err
	}

	configPath := configs.WalkpwdSettings.ConfigPath
	configCreated, err := configs.EnsureConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("writing default config: %w", err)
	}

	return &InitResult{
		VaultDir:           res.Dir,
		AlreadyInitialized: !res.MarkerCreated,
		Reset:              res.VaultReset,
		ConfigPath:         configPath,
		ConfigCreated:      configCreated,
	}, nil
}
