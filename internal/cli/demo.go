package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/plugreg/pkg/animals"
	"github.com/arthur-debert/plugreg/pkg/style"
)

func newDemoCmd(noColor *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the animal demo",
		Long: `Enumerate the animal family and let each registered animal speak.
The animals registered themselves before main ran; this command only
observes the result.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(*noColor)
			r := style.NewRenderer(cfg.Output.NoColor)

			for _, a := range animals.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s says %s\n", r.Bold(a.Name()), a.Sound())
			}
			return nil
		},
	}
}
