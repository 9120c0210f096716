package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/plugreg/pkg/animals"
	"github.com/arthur-debert/plugreg/pkg/codecs"
	"github.com/arthur-debert/plugreg/pkg/errors"
	"github.com/arthur-debert/plugreg/pkg/plugin"
	"github.com/arthur-debert/plugreg/pkg/style"
)

func newListCmd(noColor *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "list [family]",
		Short: "List plug-in families or the plug-ins in one family",
		Long: `Without arguments, list every plug-in family registered in this
binary together with its plug-in count. With a family name ("animals"
or "codecs"), list that family's plug-ins in registration order.`,
		ValidArgs: []string{"animals", "codecs"},
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(*noColor)
			r := style.NewRenderer(cfg.Output.NoColor)

			if len(args) == 0 {
				items := make([]style.Item, 0)
				for _, info := range plugin.Families() {
					items = append(items, style.Item{
						Name:   info.Name,
						Detail: fmt.Sprintf("%d plugin(s)", info.Count),
					})
				}
				fmt.Fprint(cmd.OutOrStdout(), r.List("Plugin families", items))
				return nil
			}

			switch args[0] {
			case "animals":
				items := make([]style.Item, 0)
				for _, a := range animals.All() {
					if cfg.IsHidden(a.Name()) {
						continue
					}
					items = append(items, style.Item{Name: a.Name(), Detail: a.Sound()})
				}
				fmt.Fprint(cmd.OutOrStdout(), r.List("Animals", items))
			case "codecs":
				items := make([]style.Item, 0)
				for _, c := range codecs.All() {
					if cfg.IsHidden(c.Name()) {
						continue
					}
					items = append(items, style.Item{
						Name:   c.Name(),
						Detail: strings.Join(c.Extensions(), ", "),
					})
				}
				fmt.Fprint(cmd.OutOrStdout(), r.List("Codecs", items))
			default:
				return errors.Newf(errors.ErrNotFound, "unknown family %q (try animals or codecs)", args[0])
			}
			return nil
		},
	}
}
