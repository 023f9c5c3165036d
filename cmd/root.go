package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/walkpwd/walkpwd/internal/configs"
	kerrors "github.com/walkpwd/walkpwd/internal/errors"
	logger "github.com/walkpwd/walkpwd/internal/logging"
	"github.com/walkpwd/walkpwd/internal/ui"
	"github.com/walkpwd/walkpwd/internal/workflows"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

const (
	// annotationRequiresVault marks commands that refuse to run before `walkpwd init`.
	annotationRequiresVault = "walkpwd/requires-vault"

	// annotationSecretOutput marks commands whose stdout may carry a secret;
	// their log lines go to stderr.
	annotationSecretOutput = "walkpwd/secret-output"
)

var requiresVault = map[string]string{annotationRequiresVault: "true"}

var (
	verbose    bool
	debug      bool
	configFile string
	Logger     logger.Logger

	// appConfig is replaced by the loaded config file before every command.
	appConfig = configs.DefaultConfig()

	RootCmd = &cobra.Command{
		Use:   "walkpwd",
		Short: "walkpwd - a local password vault for the command line",
		Long: `walkpwd stores named passwords in a per-user vault file and copies them
to the clipboard on demand.

Run 'walkpwd init' once, then:
  walkpwd add --name github           store a generated password
  walkpwd get --name github           copy it to the clipboard
  walkpwd list                        show stored names
  walkpwd delete --name github        remove it`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		Run: func(cmd *cobra.Command, args []string) {
			figure.NewColorFigure("walkpwd", "", "green", true).Print()
			fmt.Println()
			fmt.Println("Run " + ui.Code.Sprint("walkpwd --help") + " to see available commands.")
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	RootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to config file (default is the user config directory)")

	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(addCmd)
	RootCmd.AddCommand(getCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(deleteCmd)
	RootCmd.AddCommand(generateCmd)
	RootCmd.AddCommand(versionCmd)
}

// setup builds the logger, loads configuration and enforces the init gate.
func setup(cmd *cobra.Command, args []string) error {
	Logger = logger.Logger{
		Verbose: verbose,
		Debug:   debug,
	}
	if cmd.Annotations[annotationSecretOutput] == "true" {
		Logger.Out = os.Stderr
	}
	Logger.Debugf("Running %s with verbose=%t, debug=%t", cmd.CommandPath(), verbose, debug)

	path := configFile
	if path == "" {
		p, err := configs.DefaultConfigPath()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to locate config file: %v", err)
		}
		path = p
	}

	Logger.Debugf("Loading config from: %s", path)
	cfg, err := configs.LoadConfig(path)
	if err != nil {
		return &userError{
			msg:  "Failed to load config file",
			hint: "Check " + ui.Path.Sprint(path) + " for typos",
			err:  err,
		}
	}
	appConfig = cfg

	if err := configs.InitSettings(path, cfg); err != nil {
		return Logger.ErrorfAndReturn("failed to resolve vault directory: %v", err)
	}
	Logger.Debugf("Config file: %s", configs.WalkpwdSettings.ConfigPath)
	Logger.Debugf("Vault directory: %s", configs.WalkpwdSettings.VaultDir)

	if cmd.Annotations[annotationRequiresVault] != "true" {
		return nil
	}

	if err := workflows.EnsureInitialized(); err != nil {
		if errors.Is(err, kerrors.ErrVaultNotInitialized) {
			return &userError{
				msg: "Vault is not initialized. Please run 'walkpwd init' first.",
				err: err,
			}
		}
		return err
	}
	return nil
}

// Execute runs the root command and prints any error it returns.
func Execute() error {
	err := RootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func printError(err error) {
	ue := toUserError(err)
	Logger.Errorf("%v", err)
	fmt.Fprintln(os.Stderr, ui.ErrorLine(ue.msg))
	if ue.hint != "" {
		fmt.Fprintln(os.Stderr, ui.HintLine(ue.hint))
	}
}
