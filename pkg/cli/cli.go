package cli

import (
	"io"

	"github.com/Slach/dashboard-kit/pkg/clock"
	"github.com/Slach/dashboard-kit/pkg/config"
	"github.com/Slach/dashboard-kit/pkg/formatters"
	"github.com/Slach/dashboard-kit/pkg/logging"
	"github.com/Slach/dashboard-kit/pkg/output"
	"github.com/Slach/dashboard-kit/pkg/timezone"
	"github.com/Slach/dashboard-kit/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// session is the resolved configuration shared by all subcommands
type session struct {
	cli       *types.CLI
	version   string
	formatter *formatters.Formatter
	decimals  int
	color     bool
}

func NewRootCommand(cli *types.CLI, version string) *cobra.Command {
	s := &session{cli: cli, version: version}

	rootCmd := &cobra.Command{
		Use:           "dashboard-kit",
		Short:         "dashboard-kit - analytics dashboard formatters, fixtures and design tokens",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.init(cmd.OutOrStdout())
		},
	}

	rootCmd.PersistentFlags().StringVar(&cli.ConfigPath, "config", "", "Path to config file (default: ~/.dashboard-kit/dashboard-kit.yml)")
	rootCmd.PersistentFlags().StringVar(&cli.LogPath, "log", "", "Path to log file (default: log to stderr)")
	rootCmd.PersistentFlags().StringVar(&cli.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&cli.Timezone, "timezone", "", "IANA timezone used to render dates (default: Local)")
	rootCmd.PersistentFlags().StringVar(&cli.Now, "now", "", "Pin the current time (in any parsable format, see https://github.com/araddon/dateparse)")
	rootCmd.PersistentFlags().IntVar(&cli.Decimals, "decimals", -1, "Decimal places for numbers and percentages (default: 1)")

	rootCmd.AddCommand(newFormatCommand(s))
	rootCmd.AddCommand(newKPIsCommand(s))
	rootCmd.AddCommand(newActiveUsersCommand(s))
	rootCmd.AddCommand(newFunnelCommand(s))
	rootCmd.AddCommand(newFeaturesCommand(s))
	rootCmd.AddCommand(newAlertsCommand(s))
	rootCmd.AddCommand(newTokensCommand(s))

	return rootCmd
}

func (s *session) init(out io.Writer) error {
	if err := logging.InitLogFile(s.cli, s.version); err != nil {
		return err
	}

	cfg, err := config.Load(s.cli.ConfigPath)
	if err != nil {
		return err
	}
	cfg.ApplyCLI(s.cli)

	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		return err
	}

	loc, err := timezone.Resolve(cfg.Timezone)
	if err != nil {
		return err
	}

	var c clock.Clock = clock.NewRealClock()
	pinned, ok, err := cfg.PinnedNow(loc)
	if err != nil {
		return err
	}
	if ok {
		c = clock.NewFixedClock(pinned)
	}

	s.formatter = formatters.NewFormatter(c, loc)
	s.decimals = cfg.DecimalCount(formatters.DefaultDecimals)
	s.color = output.IsTerminal(out)

	log.Debug().
		Str("timezone", timezone.Describe(loc, c.Now()).DisplayText).
		Bool("pinned", ok).
		Int("decimals", s.decimals).
		Msg("session initialized")
	return nil
}
