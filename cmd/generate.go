package cmd

import (
	"fmt"
	"os"

	"github.com/walkpwd/walkpwd/internal/generator"
	"github.com/walkpwd/walkpwd/internal/ui"
	"github.com/walkpwd/walkpwd/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	generateLength  int
	generateSymbols bool
	generateCopy    bool
)

func init() {
	generateCmd.Flags().IntVarP(&generateLength, "length", "l", 0, "length of the password (default from config, 12)")
	generateCmd.Flags().BoolVarP(&generateSymbols, "symbols", "s", false, "include symbols")
	generateCmd.Flags().BoolVarP(&generateCopy, "copy", "c", false, "also copy the password to the clipboard")
}

// generateCmd does not touch the vault, so it runs before init.
var generateCmd = &cobra.Command{
	Use:         "generate",
	Short:       "Prints a random password without storing it",
	Annotations: map[string]string{annotationSecretOutput: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateLength(cmd, generateLength); err != nil {
			return err
		}

		policy := generator.Policy{
			Length:  appConfig.Generator.Length,
			Symbols: appConfig.Generator.Symbols,
		}
		if cmd.Flags().Changed("length") {
			policy.Length = generateLength
		}
		if cmd.Flags().Changed("symbols") {
			policy.Symbols = generateSymbols
		}

		opts := workflows.GenerateOptions{Policy: policy, Copy: generateCopy}
		if generateCopy {
			opts.Clipboard = newClipboard()
		}

		result, err := workflows.Generate(cmd.Context(), opts)
		if result == nil {
			return err
		}

		fmt.Println(result.Password)
		if err != nil {
			return err
		}
		if generateCopy {
			fmt.Fprintln(os.Stderr, ui.SuccessLine("Password copied to clipboard"))
		}
		return nil
	},
}
