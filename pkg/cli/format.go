package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Slach/dashboard-kit/pkg/formatters"
	"github.com/Slach/dashboard-kit/pkg/theme"
	"github.com/Slach/dashboard-kit/pkg/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newFormatCommand(s *session) *cobra.Command {
	formatCmd := &cobra.Command{
		Use:   "format",
		Short: "Format raw values the way the dashboard displays them",
		Example: `  dashboard-kit format number 12450 1234567
  dashboard-kit format percent -- 8.3 -1.2
  dashboard-kit format relative "2025-12-06 09:15"`,
	}

	formatCmd.AddCommand(
		numericCommand("number <value>...", "Abbreviate with K/M/B suffixes", formatters.CheckValue,
			func(v float64) string { return formatters.FormatNumber(v, s.decimals) }),
		numericCommand("raw <value>...", "Render with German digit grouping", formatters.CheckValue,
			formatters.FormatRawNumber),
		numericCommand("percent <value>...", "Render a signed percentage change", formatters.CheckValue,
			func(v float64) string { return formatters.FormatPercent(v, s.decimals) }),
		numericCommand("percent-simple <value>...", "Render a percentage without sign prefix", formatters.CheckValue,
			func(v float64) string { return formatters.FormatPercentSimple(v, s.decimals) }),
		numericCommand("duration <minutes>...", "Render a duration given in minutes", formatters.CheckDuration,
			formatters.FormatDuration),
		numericCommand("trend <value>...", "Classify values as up, down or neutral", formatters.CheckValue,
			func(v float64) string {
				dir := formatters.GetTrendDirection(v)
				return s.style(theme.TrendStyle(dir), string(dir))
			}),
		&cobra.Command{
			Use:   "conversion <current> <previous>",
			Short: "Render current as a whole percentage of previous",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				values, err := parseValues(args, formatters.CheckValue)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), formatters.FormatConversionRate(values[0], values[1]))
				return err
			},
		},
		instantCommand(s, "relative <time>...", "Render a time relative to now", (*formatters.Formatter).RelativeDate),
		instantCommand(s, "date <time>...", "Render a time as DD.MM.YYYY", (*formatters.Formatter).Date),
		instantCommand(s, "timestamp <time>...", "Render a time as DD.MM.YYYY, HH:MM", (*formatters.Formatter).Timestamp),
	)

	return formatCmd
}

func numericCommand(use, short string, check func(float64) error, render func(float64) string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValues(args, check)
			if err != nil {
				return err
			}
			for _, v := range values {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), render(v)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func instantCommand(s *session, use, short string, render func(*formatters.Formatter, time.Time) string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				t, err := types.ParseTime(arg, s.formatter.Location())
				if err != nil {
					return errors.Wrapf(formatters.ErrInvalidArgument, "can't parse time %q: %v", arg, err)
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), render(s.formatter, t)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// parseValues parses plain Go float syntax, "_" digit separators are allowed
func parseValues(args []string, check func(float64) error) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(strings.ReplaceAll(arg, "_", ""), 64)
		if err != nil {
			return nil, errors.Wrapf(formatters.ErrInvalidArgument, "can't parse number %q", arg)
		}
		if err := check(v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
