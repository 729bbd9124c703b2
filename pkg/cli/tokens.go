package cli

import (
	"io"

	"github.com/Slach/dashboard-kit/pkg/theme"
	"github.com/alecthomas/chroma/v2/quick"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newTokensCommand(s *session) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Print the design tokens as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(theme.Tokens())
			if err != nil {
				return errors.Wrap(err, "failed to marshal design tokens")
			}
			return writeYAML(cmd.OutOrStdout(), data, s.color && !plain)
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable syntax highlighting")
	return cmd
}

// writeYAML writes data, highlighted for a 256 color terminal when asked to
func writeYAML(out io.Writer, data []byte, highlight bool) error {
	if highlight {
		err := quick.Highlight(out, string(data), "yaml", "terminal256", "monokai")
		if err == nil {
			return nil
		}
		log.Warn().Err(err).Msg("highlighting failed, printing plain YAML")
	}
	_, err := out.Write(data)
	return err
}
