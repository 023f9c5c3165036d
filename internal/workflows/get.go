package workflows

import (
	"context"
	"errors"

	kerrors "github.com/walkpwd/walkpwd/internal/errors"
	"github.com/walkpwd/walkpwd/internal/vault"
)

// GetOptions configures the get workflow.
type GetOptions struct {
	Name      string
	Codec     vault.Codec
	Clipboard Clipboard
}

// GetResult contains the outcome of a get operation.
type GetResult struct {
	Name string

	// Found is false when no entry has this name. No clipboard delivery is
	// attempted in that case.
	Found bool

	Password   string
	CopiedWith string
}

// Get looks up an entry by exact name and copies its password to the
// clipboard. Returns ErrClipboardUnavailable, along with the result, if the
// entry exists but no clipboard strategy succeeded.
func Get(ctx context.Context, opts GetOptions) (*GetResult, error) {
	store, err := openStore(opts.Codec)
	if err != nil {
		return nil, err
	}

	result := &GetResult{Name: opts.Name}
	entry, err := store.Get(opts.Name)
	if errors.Is(err, kerrors.ErrEntryNotFound) {
		return result, nil
	}
	if err != nil {
		return nil, err
	}
	result.Found = true
	result.Password = entry.Password

	result.CopiedWith, err = copyToClipboard(ctx, opts.Clipboard, entry.Password)
	if err != nil {
		return result, err
	}
	return result, nil
}
