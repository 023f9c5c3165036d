package workflows

import (
	"context"

	"github.com/walkpwd/walkpwd/internal/vault"
)

// ListOptions configures the list workflow.
type ListOptions struct {
	Codec vault.Codec
}

// ListResult contains the entry names in storage order.
type ListResult struct {
	Names []string
}

// List returns the names of all stored entries. Passwords are never read
// into the result.
func List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	store, err := openStore(opts.Codec)
	if err != nil {
		return nil, err
	}

	names, err := store.List()
	if err != nil {
		return nil, err
	}
	return &ListResult{Names: names}, nil
}
