package cmd

import (
	"github.com/walkpwd/walkpwd/internal/ui"
	"github.com/walkpwd/walkpwd/internal/workflows"

	"github.com/spf13/cobra"
)

var initForce bool

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "reset an existing vault, removing every stored password")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Creates the vault directory and an empty vault",
	Long: `Creates the per-user vault directory, the init marker and an empty vault file.

Running init again is safe: stored passwords are kept unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting init command")
		spinner, cleanup := startSpinner("Initializing vault...")
		defer cleanup()

		if initForce {
			Logger.Infof("Force flag set, existing entries will be removed")
			withSpinnerPaused(spinner, func() {
				Logger.WarnfUser("Using --force removes every stored password")
			})
		}

		result, err := workflows.Init(cmd.Context(), workflows.InitOptions{
			Force: initForce,
			Codec: newCodec(spinner),
		})
		if err != nil {
			return err
		}
		Logger.Infof("Vault directory: %s", result.VaultDir)

		configLine := ""
		if result.ConfigCreated {
			configLine = ui.HintLine("Config file: " + ui.Path.Sprint(result.ConfigPath) + " " + ui.Muted.Sprint("created with defaults"))
		}

		switch {
		case result.Reset:
			spinner.FinalMSG = ui.Lines(
				ui.SuccessLine("Vault reset at "+ui.Path.Sprint(result.VaultDir)),
				ui.HintLine("All previously stored passwords were removed"),
				configLine,
			)
		case result.AlreadyInitialized:
			spinner.FinalMSG = ui.Lines(
				ui.SuccessLine("Vault already initialized at "+ui.Path.Sprint(result.VaultDir)),
				ui.HintLine("Existing passwords were kept. Run "+ui.Code.Sprint("walkpwd init --force")+" to start over"),
				configLine,
			)
		default:
			spinner.FinalMSG = ui.Lines(
				ui.SuccessLine("Vault initialized successfully!"),
				ui.HintLine("Vault location: "+ui.Path.Sprint(result.VaultDir)),
				configLine,
				ui.HintLine("Run "+ui.Code.Sprint("walkpwd add --name <name>")+" to store your first password"),
			)
		}
		return nil
	},
}
