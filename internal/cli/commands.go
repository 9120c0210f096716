// Package cli wires the plugreg commands together. The plug-in
// packages themselves are pulled in by cmd/plugreg/main.go through
// blank imports, so everything is registered before any command runs.
package cli

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/plugreg/internal/version"
	"github.com/arthur-debert/plugreg/pkg/config"
	"github.com/arthur-debert/plugreg/pkg/logging"
)

//go:embed help/*.md
var helpFiles embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		noColor   bool
	)

	rootCmd := &cobra.Command{
		Use:   "plugreg",
		Short: "Link-time plug-in registry explorer",
		Long: `plugreg demonstrates link-time plug-in registration: every plug-in
compiled into this binary registered itself before main ran, and these
commands enumerate the resulting registries without naming a single
concrete implementation.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable styled output")

	// Add all commands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newListCmd(&noColor))
	rootCmd.AddCommand(newDemoCmd(&noColor))
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newTopicsCmd(&noColor))
	rootCmd.AddCommand(newGenConfigCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "plugreg version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genconfig",
		Short: "Print the default configuration as TOML",
		Long: fmt.Sprintf(`Print the default configuration in TOML format.
Redirect the output to %s to customize it.`, config.Path()),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := config.DefaultTOML()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// loadConfig reads the user config, folding in the --no-color flag
func loadConfig(noColor bool) config.Config {
	cfg, err := config.LoadDefault()
	if err != nil {
		log.Warn().Err(err).Msg("Could not load config, using defaults")
		cfg = config.Default()
	}
	if noColor {
		cfg.Output.NoColor = true
	}
	return cfg
}

// helpTopicsFS returns the embedded help topics as a rooted fs
func helpTopicsFS() (fs.FS, error) {
	return fs.Sub(helpFiles, "help")
}
