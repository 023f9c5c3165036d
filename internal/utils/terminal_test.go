package utils

import (
	"errors"
	"os"
	"testing"

	kerrors "github.com/walkpwd/walkpwd/internal/errors"
)

func TestResolvePassphraseFromEnv(t *testing.T) {
	t.Setenv("WALKPWD_TEST_PASSPHRASE", "correct horse")

	got, err := ResolvePassphrase("WALKPWD_TEST_PASSPHRASE", "Passphrase: ")
	if err != nil {
		t.Fatalf("ResolvePassphrase failed: %v", err)
	}
	if string(got) != "correct horse" {
		t.Errorf("Expected %q, got %q", "correct horse", got)
	}
}

func TestResolvePassphraseWithoutTerminal(t *testing.T) {
	devNull, err := os.Open(os.DevNull)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", os.DevNull, err)
	}
	defer devNull.Close()

	originalStdin := os.Stdin
	os.Stdin = devNull
	t.Cleanup(func() { os.Stdin = originalStdin })

	_, err = ResolvePassphrase("WALKPWD_TEST_UNSET_PASSPHRASE", "Passphrase: ")
	if !errors.Is(err, kerrors.ErrPassphraseRequired) {
		t.Fatalf("Expected ErrPassphraseRequired, got %v", err)
	}
}
