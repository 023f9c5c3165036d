package workflows

import (
	"context"
	"fmt"

	"github.com/walkpwd/walkpwd/internal/configs"
	kerrors "github.com/walkpwd/walkpwd/internal/errors"
	"github.com/walkpwd/walkpwd/internal/vault"
)

// Clipboard delivers text to the system clipboard and names the mechanism
// that accepted it. *clipboard.Chain satisfies it.
type Clipboard interface {
	Deliver(ctx context.Context, text string) (string, error)
}

// vaultDir returns the configured vault directory.
func vaultDir() (string, error) {
	dir := configs.WalkpwdSettings.VaultDir
	if dir == "" {
		return "", fmt.Errorf("vault directory is not configured")
	}
	return dir, nil
}

// EnsureInitialized returns ErrVaultNotInitialized unless the init marker
// exists in the configured vault directory.
func EnsureInitialized() error {
	dir, err := vaultDir()
	if err != nil {
		return err
	}

	initialized, err := vault.IsInitialized(dir)
	if err != nil {
		return err
	}
	if !initialized {
		return kerrors.ErrVaultNotInitialized
	}
	return nil
}

// openStore checks the init marker and returns a store for the vault.
func openStore(codec vault.Codec) (*vault.Store, error) {
	if err := EnsureInitialized(); err != nil {
		return nil, err
	}
	dir, err := vaultDir()
	if err != nil {
		return nil, err
	}
	return vault.NewStore(dir, codec), nil
}

// copyToClipboard delivers text when a clipboard is configured. It returns
// the name of the strategy that succeeded, or "" when cb is nil.
func copyToClipboard(ctx context.Context, cb Clipboard, text string) (string, error) {
	if cb == nil {
		return "", nil
	}
	return cb.Deliver(ctx, text)
}
