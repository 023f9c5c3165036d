package utils

import (
	"fmt"
	"os"

	kerrors "github.com/walkpwd/walkpwd/internal/errors"
	"golang.org/x/term"
)

// ReadPassphrase prompts on stderr and reads a passphrase from stdin without echo.
// Returns an error if stdin is not a terminal.
func ReadPassphrase(prompt string) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("cannot read passphrase: stdin is not a terminal")
	}

	fmt.Fprint(os.Stderr, prompt)
	passphrase, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr) // Add newline after hidden input
	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}
	return passphrase, nil
}

// ResolvePassphrase returns the value of envKey when it is set, otherwise
// prompts for the passphrase on the terminal. Without either it returns an
// error wrapping ErrPassphraseRequired.
func ResolvePassphrase(envKey, prompt string) ([]byte, error) {
	if v, ok := os.LookupEnv(envKey); ok {
		return []byte(v), nil
	}
	if !IsTerminal() {
		return nil, fmt.Errorf("%w: %s is not set and stdin is not a terminal", kerrors.ErrPassphraseRequired, envKey)
	}
	return ReadPassphrase(prompt)
}

// IsTerminal returns true if stdin is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
