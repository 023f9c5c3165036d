package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/walkpwd/walkpwd/internal/clipboard"
	"github.com/walkpwd/walkpwd/internal/configs"
	kerrors "github.com/walkpwd/walkpwd/internal/errors"
	"github.com/walkpwd/walkpwd/internal/ui"
	"github.com/walkpwd/walkpwd/internal/utils"
	"github.com/walkpwd/walkpwd/internal/vault"
	"github.com/walkpwd/walkpwd/internal/workflows"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// calls ui.EnsureNewline() on the final message before printing it.
func startSpinner(message string) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if quiet {
			log.SetOutput(os.Stderr)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// userError is an error with the text shown to the user and an optional hint.
type userError struct {
	msg  string
	hint string
	err  error
}

func (e *userError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

func (e *userError) Unwrap() error {
	return e.err
}

// toUserError maps sentinel errors to user-facing messages. Errors that are
// already a *userError are returned unchanged.
func toUserError(err error) *userError {
	var ue *userError
	if errors.As(err, &ue) {
		return ue
	}

	switch {
	case errors.Is(err, kerrors.ErrVaultNotInitialized):
		return &userError{msg: "Vault is not initialized. Please run 'walkpwd init' first.", err: err}
	case errors.Is(err, kerrors.ErrPassphraseRequired):
		return &userError{
			msg:  "A passphrase is required to open the vault",
			hint: "Set " + configs.PassphraseEnv + " or run walkpwd from a terminal",
			err:  err,
		}
	case errors.Is(err, kerrors.ErrDecryptFailed):
		return &userError{msg: "Failed to unseal the vault. Is the passphrase correct?", err: err}
	case errors.Is(err, kerrors.ErrInitialization):
		return &userError{
			msg:  "Failed to initialize the vault",
			hint: "Check that " + ui.Path.Sprint(configs.WalkpwdSettings.VaultDir) + " is writable",
			err:  err,
		}
	case errors.Is(err, kerrors.ErrSealed):
		return &userError{
			msg:  "The vault file is sealed with a passphrase",
			hint: "Set " + ui.Code.Sprint("sealed = true") + " under [storage] in your config",
			err:  err,
		}
	case errors.Is(err, kerrors.ErrSerialization):
		return &userError{
			msg:  "The vault file is malformed",
			hint: "Inspect or restore " + ui.Path.Sprint(vault.NewStore(configs.WalkpwdSettings.VaultDir, nil).Path()),
			err:  err,
		}
	case errors.Is(err, kerrors.ErrConflictingPasswordFlags):
		return &userError{
			msg:  "Cannot use --password together with --length or --symbols",
			hint: "Pass either an explicit password or generator options, not both",
			err:  err,
		}
	case errors.Is(err, kerrors.ErrGeneration):
		return &userError{msg: "Failed to generate a password", err: err}
	case errors.Is(err, kerrors.ErrClipboardUnavailable):
		return &userError{
			msg:  "Could not copy to the clipboard",
			hint: "Install wl-clipboard, xclip or xsel, or re-run with --debug to see each attempt",
			err:  err,
		}
	}
	return &userError{msg: err.Error()}
}

// clipboardOverride replaces the system clipboard chain in tests.
var clipboardOverride workflows.Clipboard

// newClipboard returns the clipboard chain configured by the loaded config.
func newClipboard() workflows.Clipboard {
	if clipboardOverride != nil {
		return clipboardOverride
	}

	chain := clipboard.DefaultChain(clipboard.Options{
		Settle:         appConfig.Clipboard.Settle(),
		AwaitExit:      appConfig.Clipboard.AwaitExit,
		DisableHelpers: appConfig.Clipboard.DisableHelpers,
	})
	chain.OnAttempt = func(name string, err error) {
		if err != nil {
			Logger.Debugf("Clipboard strategy %q failed: %v", name, err)
			return
		}
		Logger.Debugf("Clipboard strategy %q succeeded", name)
	}
	Logger.Debugf("Clipboard strategies: %v", chain.Applicable())
	return chain
}

// newCodec returns the sealed codec when enabled in config, otherwise nil for
// plaintext JSON. A running spinner is paused while the passphrase is read.
func newCodec(s *spinner.Spinner) vault.Codec {
	if !appConfig.Storage.Sealed {
		return nil
	}

	return vault.NewSealedCodec(func() (pass []byte, err error) {
		Logger.Debugf("Reading vault passphrase")
		withSpinnerPaused(s, func() {
			pass, err = utils.ResolvePassphrase(configs.PassphraseEnv, "Vault passphrase: ")
		})
		return pass, err
	})
}

// withSpinnerPaused runs fn with s stopped. The spinner is restarted only if
// it was running, so verbose and debug runs never start one.
func withSpinnerPaused(s *spinner.Spinner, fn func()) {
	if s == nil || !s.Active() {
		fn()
		return
	}
	s.Stop()
	defer s.Restart()
	fn()
}

// validateLength rejects an explicitly requested non-positive length.
func validateLength(cmd *cobra.Command, length int) error {
	if cmd.Flags().Changed("length") && length <= 0 {
		return &userError{
			msg: fmt.Sprintf("Password length must be a positive number, got %d", length),
			err: kerrors.ErrGeneration,
		}
	}
	return nil
}

// Helper functions for testing

// SetClipboard replaces the clipboard chain used by get, add and generate.
// Pass nil to restore the system clipboard.
func SetClipboard(cb workflows.Clipboard) {
	clipboardOverride = cb
}

// ResetGlobalState resets flags and package state to their defaults for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	configFile = ""
	appConfig = configs.DefaultConfig()
	clipboardOverride = nil
	resetFlags(RootCmd)
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}
