package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/plugreg/pkg/codecs"
	"github.com/arthur-debert/plugreg/pkg/errors"
)

func newConvertCmd() *cobra.Command {
	var (
		from string
		to   string
	)

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert data between formats using codec plug-ins",
		Long: `Read a document from a file (or stdin), decode it with the --from
codec and re-encode it with the --to codec. Both codecs are resolved
from the registry by name or extension.`,
		Example: `  # JSON to YAML
  plugreg convert --to yaml settings.json

  # TOML from stdin to XML
  cat settings.toml | plugreg convert --from toml --to xml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			decoder, err := codecs.Lookup(from)
			if err != nil {
				return err
			}
			encoder, err := codecs.Lookup(to)
			if err != nil {
				return err
			}

			var data []byte
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
				if err != nil {
					return errors.Wrapf(err, errors.ErrInvalidInput, "could not read %s", args[0])
				}
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return errors.Wrap(err, errors.ErrInvalidInput, "could not read stdin")
				}
			}

			value := map[string]any{}
			if err := decoder.Unmarshal(data, &value); err != nil {
				return err
			}

			out, err := encoder.Marshal(value)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "json", "Codec to decode the input with (name or extension)")
	cmd.Flags().StringVar(&to, "to", "yaml", "Codec to encode the output with (name or extension)")

	return cmd
}
