package cmd

import (
	"errors"

	kerrors "github.com/walkpwd/walkpwd/internal/errors"
	"github.com/walkpwd/walkpwd/internal/generator"
	"github.com/walkpwd/walkpwd/internal/ui"
	"github.com/walkpwd/walkpwd/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	addName     string
	addPassword string
	addLength   int
	addSymbols  bool
)

func init() {
	addCmd.Flags().StringVarP(&addName, "name", "n", "", "name of the password entry")
	addCmd.Flags().StringVarP(&addPassword, "password", "p", "", "store this password instead of generating one")
	addCmd.Flags().IntVarP(&addLength, "length", "l", 0, "length of the generated password (default from config, 12)")
	addCmd.Flags().BoolVarP(&addSymbols, "symbols", "s", false, "include symbols in the generated password")
	_ = addCmd.MarkFlagRequired("name")
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Stores a new password and copies it to the clipboard",
	Long: `Stores a password under a new name. Without --password a random password
is generated, shaped by --length and --symbols.`,
	Example:     "  walkpwd add --name github\n  walkpwd add -n github -l 24 -s\n  walkpwd add -n wifi -p 'correct horse'",
	Annotations: requiresVault,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting add command for %q", addName)

		explicit := cmd.Flags().Changed("password")
		lengthSet := cmd.Flags().Changed("length")
		policyRequested := lengthSet || addSymbols
		if explicit && policyRequested {
			return kerrors.ErrConflictingPasswordFlags
		}
		if !explicit {
			if err := validateLength(cmd, addLength); err != nil {
				return err
			}
		}

		policy := generator.Policy{
			Length:  appConfig.Generator.Length,
			Symbols: appConfig.Generator.Symbols,
		}
		if lengthSet {
			policy.Length = addLength
		}
		if cmd.Flags().Changed("symbols") {
			policy.Symbols = addSymbols
		}
		Logger.Debugf("Explicit password: %t, policy: length=%d symbols=%t", explicit, policy.Length, policy.Symbols)

		spinner, cleanup := startSpinner("Adding password...")
		defer cleanup()

		result, err := workflows.Add(cmd.Context(), workflows.AddOptions{
			Name:             addName,
			Password:         addPassword,
			ExplicitPassword: explicit,
			Policy:           policy,
			PolicyRequested:  policyRequested,
			Codec:            newCodec(spinner),
			Clipboard:        newClipboard(),
		})
		if errors.Is(err, kerrors.ErrDuplicateEntry) {
			return &userError{
				msg:  "Password entry for " + ui.Highlight.Sprint(addName) + " already exists",
				hint: "Run " + ui.Code.Sprint("walkpwd delete --name "+addName) + " first to replace it",
				err:  err,
			}
		}
		if result == nil {
			return err
		}

		if err != nil {
			// Stored, but the clipboard could not take it.
			spinner.FinalMSG = ui.SuccessLine("Password added for " + ui.Highlight.Sprint(result.Name))
			return err
		}

		Logger.Infof("Password for %q copied with %s", result.Name, result.CopiedWith)
		spinner.FinalMSG = ui.SuccessLine("Password added for " + ui.Highlight.Sprint(result.Name) + " + copied to clipboard")
		return nil
	},
}
