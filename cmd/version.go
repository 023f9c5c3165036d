package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X github.com/walkpwd/walkpwd/cmd.Version=...".
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the walkpwd version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("walkpwd " + Version)
	},
}
