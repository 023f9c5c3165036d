package vault

import (
	"fmt"
	"os"
	"path/filepath"

	kerrors "github.com/walkpwd/walkpwd/internal/errors"
)

// InitOptions configures Init.
type InitOptions struct {
	// Overwrite resets an existing record file to an empty vault.
	Overwrite bool

	// Codec encodes the empty collection. Nil selects plaintext JSON.
	Codec Codec
}

// InitResult reports what Init changed on disk.
type InitResult struct {
	Dir string

	// MarkerCreated is false when the vault was already initialized.
	MarkerCreated bool

	// VaultCreated is true when no record file existed before.
	VaultCreated bool

	// VaultReset is true when an existing record file was overwritten.
	VaultReset bool
}

// IsInitialized reports whether the init marker exists in dir.
func IsInitialized(dir string) (bool, error) {
	_, err := os.Stat(filepath.Join(dir, MarkerFileName))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("checking init marker: %w", err)
}

// Init prepares dir as a vault. It is idempotent: an existing record file is
// left untouched unless opts.Overwrite is set.
func Init(dir string, opts InitOptions) (*InitResult, error) {
	result := &InitResult{Dir: dir}

	if err := os.MkdirAll(dir, dirMode); err != nil {
		return nil, fmt.Errorf("%w: creating %s: %w", kerrors.ErrInitialization, dir, err)
	}

	initialized, err := IsInitialized(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrInitialization, err)
	}
	if !initialized {
		markerPath := filepath.Join(dir, MarkerFileName)
		if err := os.WriteFile(markerPath, []byte("initialized"), fileMode); err != nil {
			return nil, fmt.Errorf("%w: creating %s: %w", kerrors.ErrInitialization, markerPath, err)
		}
		result.MarkerCreated = true
	}

	store := NewStore(dir, opts.Codec)
	_, statErr := os.Stat(store.Path())
	switch {
	case os.IsNotExist(statErr):
		result.VaultCreated = true
	case statErr != nil:
		return nil, fmt.Errorf("%w: checking %s: %w", kerrors.ErrInitialization, store.Path(), statErr)
	case opts.Overwrite:
		result.VaultReset = true
	default:
		return result, nil
	}

	if err := store.Save(nil); err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrInitialization, err)
	}
	return result, nil
}
