package main

import (
	"os"

	"github.com/arthur-debert/plugreg/internal/cli"

	// Import plug-in packages so their init() functions register
	// every implementation before the CLI runs
	_ "github.com/arthur-debert/plugreg/pkg/animals"
	_ "github.com/arthur-debert/plugreg/pkg/codecs"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
