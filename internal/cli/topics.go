package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/plugreg/pkg/topics"
)

func newTopicsCmd(noColor *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "topics [name]",
		Short: "List help topics or show one",
		Long:  "Display the bundled documentation topics that go beyond command help.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(*noColor)

			fsys, err := helpTopicsFS()
			if err != nil {
				return err
			}

			// Styled rendering follows the output config; with color
			// disabled, glamour's notty style keeps the markdown
			// structure without escape codes.
			styleName := cfg.Output.Style
			if cfg.Output.NoColor {
				styleName = "notty"
			}

			manager, err := topics.New(fsys, topics.Options{
				Renderer: topics.NewGlamourRenderer(styleName, cfg.Output.Width),
			})
			if err != nil {
				return err
			}

			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Available topics:")
				for _, name := range manager.Names() {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "\nUse 'plugreg topics <name>' to read one.")
				return nil
			}

			content, err := manager.Render(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	}
}
