package cmd

import (
	"fmt"

	"github.com/walkpwd/walkpwd/internal/ui"
	"github.com/walkpwd/walkpwd/internal/workflows"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:         "list",
	Short:       "Lists the names of stored passwords",
	Annotations: requiresVault,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting list command")

		result, err := workflows.List(cmd.Context(), workflows.ListOptions{
			Codec: newCodec(nil),
		})
		if err != nil {
			return err
		}
		Logger.Debugf("Found %d entries", len(result.Names))

		if len(result.Names) == 0 {
			fmt.Println("No passwords stored.")
			return nil
		}

		fmt.Println("Stored passwords:")
		fmt.Print(ui.Bullets(result.Names))
		return nil
	},
}
