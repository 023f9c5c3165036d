package workflows

import (
	"context"

	"github.com/walkpwd/walkpwd/internal/vault"
)

// DeleteOptions configures the delete workflow.
type DeleteOptions struct {
	Name  string
	Codec vault.Codec
}

// DeleteResult contains the outcome of a delete operation.
type DeleteResult struct {
	Name string

	// Deleted is false when no entry had this name; the vault is unchanged.
	Deleted bool
}

// Delete removes the named entry.
func Delete(ctx context.Context, opts DeleteOptions) (*DeleteResult, error) {
	store, err := openStore(opts.Codec)
	if err != nil {
		return nil, err
	}

	deleted, err := store.Delete(opts.Name)
	if err != nil {
		return nil, err
	}
	return &DeleteResult{Name: opts.Name, Deleted: deleted}, nil
}
