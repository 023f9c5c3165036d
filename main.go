package main

import (
	"os"

	"github.com/walkpwd/walkpwd/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
