package workflows

import (
	"context"

	kerrors "github.com/walkpwd/walkpwd/internal/errors"
	"github.com/walkpwd/walkpwd/internal/generator"
	"github.com/walkpwd/walkpwd/internal/vault"
)

// AddOptions configures the add workflow.
type AddOptions struct {
	// Name identifies the new entry.
	Name string

	// Password is stored as given when ExplicitPassword is set.
	Password         string
	ExplicitPassword bool

	// Policy shapes the generated password when none is supplied.
	Policy generator.Policy

	// PolicyRequested is true when the caller asked for a specific length or
	// for symbols. It conflicts with an explicit password.
	PolicyRequested bool

	Codec     vault.Codec
	Clipboard Clipboard
}

// AddResult contains the outcome of an add operation.
type AddResult struct {
	Name string

	// Password is the stored secret.
	Password string

	// Generated is true when the password came from the generator.
	Generated bool

	// CopiedWith names the clipboard strategy that accepted the password.
	CopiedWith string
}

// Add stores a new entry and copies its password to the clipboard.
//
// Flag conflicts are rejected before the vault is read. Returns
// ErrDuplicateEntry without writing if the name is taken. When the entry is
// stored but clipboard delivery fails, both the result and an error wrapping
// ErrClipboardUnavailable are returned.
func Add(ctx context.Context, opts AddOptions) (*AddResult, error) {
	if opts.ExplicitPassword && opts.PolicyRequested {
		return nil, kerrors.ErrConflictingPasswordFlags
	}

	password := opts.Password
	generated := false
	if !opts.ExplicitPassword {
		var err error
		password, err = opts.Policy.Generate()
		if err != nil {
			return nil, err
		}
		generated = true
	}

	store, err := openStore(opts.Codec)
	if err != nil {
		return nil, err
	}

	stored, err := store.Add(opts.Name, password)
	if err != nil {
		return nil, err
	}

	result := &AddResult{
		Name:      opts.Name,
		Password:  stored,
		Generated: generated,
	}

	result.CopiedWith, err = copyToClipboard(ctx, opts.Clipboard, stored)
	if err != nil {
		return result, err
	}
	return result, nil
}
