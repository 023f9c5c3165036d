package workflows

import (
	"context"

	"github.com/walkpwd/walkpwd/internal/generator"
)

// GenerateOptions configures the generate workflow.
type GenerateOptions struct {
	Policy generator.Policy

	// Copy delivers the password to Clipboard after generating it.
	Copy      bool
	Clipboard Clipboard
}

// GenerateResult contains a generated password.
type GenerateResult struct {
	Password   string
	CopiedWith string
}

// Generate produces a password without reading or writing the vault.
func Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	password, err := opts.Policy.Generate()
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{Password: password}
	if !opts.Copy {
		return result, nil
	}

	result.CopiedWith, err = copyToClipboard(ctx, opts.Clipboard, password)
	if err != nil {
		return result, err
	}
	return result, nil
}
