package cmd

import (
	"github.com/walkpwd/walkpwd/internal/ui"
	"github.com/walkpwd/walkpwd/internal/workflows"

	"github.com/spf13/cobra"
)

var deleteName string

func init() {
	deleteCmd.Flags().StringVarP(&deleteName, "name", "n", "", "name of the password entry")
	_ = deleteCmd.MarkFlagRequired("name")
}

var deleteCmd = &cobra.Command{
	Use:         "delete",
	Short:       "Removes a stored password",
	Annotations: requiresVault,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting delete command for %q", deleteName)
		spinner, cleanup := startSpinner("Deleting password...")
		defer cleanup()

		result, err := workflows.Delete(cmd.Context(), workflows.DeleteOptions{
			Name:  deleteName,
			Codec: newCodec(spinner),
		})
		if err != nil {
			return err
		}

		if !result.Deleted {
			spinner.FinalMSG = ui.WarningLine("No password found for " + ui.Highlight.Sprint(deleteName))
			return nil
		}

		Logger.Infof("Deleted entry %q", deleteName)
		spinner.FinalMSG = ui.SuccessLine("Password entry for " + ui.Highlight.Sprint(deleteName) + " deleted")
		return nil
	},
}
