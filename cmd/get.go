package cmd

import (
	"fmt"
	"os"

	"github.com/walkpwd/walkpwd/internal/ui"
	"github.com/walkpwd/walkpwd/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	getName   string
	getReveal bool
)

func init() {
	getCmd.Flags().StringVarP(&getName, "name", "n", "", "name of the password entry")
	getCmd.Flags().BoolVarP(&getReveal, "reveal", "r", false, "also print the password to stdout")
	_ = getCmd.MarkFlagRequired("name")
}

// getCmd keeps stdout for the secret alone, so status and log lines go to stderr.
var getCmd = &cobra.Command{
	Use:         "get",
	Short:       "Copies a stored password to the clipboard",
	Example:     "  walkpwd get --name github\n  walkpwd get -n github --reveal",
	Annotations: map[string]string{
		annotationRequiresVault: "true",
		annotationSecretOutput:  "true",
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting get command for %q", getName)

		result, err := workflows.Get(cmd.Context(), workflows.GetOptions{
			Name:      getName,
			Codec:     newCodec(nil),
			Clipboard: newClipboard(),
		})
		if result == nil {
			return err
		}

		if !result.Found {
			fmt.Fprintln(os.Stderr, ui.WarningLine("No password found for "+ui.Highlight.Sprint(getName)))
			return nil
		}

		if getReveal {
			fmt.Println(result.Password)
		}
		if err != nil {
			return err
		}

		Logger.Infof("Copied with %s", result.CopiedWith)
		fmt.Fprintln(os.Stderr, ui.SuccessLine("Password for "+ui.Highlight.Sprint(getName)+" copied to clipboard"))
		return nil
	},
}
