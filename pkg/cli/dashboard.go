package cli

import (
	"fmt"
	"strings"

	"github.com/Slach/dashboard-kit/pkg/formatters"
	"github.com/Slach/dashboard-kit/pkg/mockdata"
	"github.com/Slach/dashboard-kit/pkg/output"
	"github.com/Slach/dashboard-kit/pkg/theme"
	"github.com/spf13/cobra"
)

func dashboardArg(args []string) string {
	if len(args) == 0 {
		return mockdata.DashboardOverview
	}
	return args[0]
}

func dashboardUsage() string {
	return "one of: " + strings.Join(mockdata.Dashboards(), ", ")
}

func newKPIsCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "kpis [dashboard] [key]",
		Short: "List the KPIs of a dashboard (default: overview)",
		Long:  "List the KPIs of a dashboard, " + dashboardUsage() + ". A key limits the listing to one KPI.",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := dashboardArg(args)
			var kpis []mockdata.KPI
			if len(args) == 2 {
				k, err := mockdata.FindKPI(name, args[1])
				if err != nil {
					return err
				}
				kpis = []mockdata.KPI{k}
			} else {
				var err error
				if kpis, err = mockdata.KPIs(name); err != nil {
					return err
				}
			}

			table := output.NewTable(cmd.OutOrStdout(), []string{"kpi", "value", "change", "target", "range"})
			for _, k := range kpis {
				table.AddRow(
					k.Label,
					s.kpiValue(k),
					s.change(k.Change),
					s.style(theme.MutedStyle(), k.Target),
					sparklineRange(k, s.decimals),
				)
			}
			return table.Render()
		},
	}
}

func newActiveUsersCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "active-users",
		Short: "Show daily, weekly and monthly active users per calendar week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := output.NewTable(cmd.OutOrStdout(), []string{"week", "dau", "wau", "mau"})
			for _, p := range mockdata.ActiveUsers(s.formatter) {
				table.AddRow(
					p.Week,
					formatters.FormatNumber(p.DAU, s.decimals),
					formatters.FormatNumber(p.WAU, s.decimals),
					formatters.FormatNumber(p.MAU, s.decimals),
				)
			}
			return table.Render()
		},
	}
}

// sparklineRange renders the lowest and highest sparkline value, both
// formatted like the KPI itself
func sparklineRange(k mockdata.KPI, decimals int) string {
	if len(k.Sparkline) == 0 {
		return formatters.NotAvailable
	}
	lo, hi := k.Sparkline[0], k.Sparkline[0]
	for _, v := range k.Sparkline {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return formatValue(k.Unit, lo, decimals) + " - " + formatValue(k.Unit, hi, decimals)
}

func newFunnelCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "funnel [dashboard]",
		Short: "Show funnel stages with step and overall conversion rates",
		Long:  "Show funnel stages with step and overall conversion rates, " + dashboardUsage(),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := dashboardArg(args)
			stages, err := mockdata.Funnel(name)
			if err != nil {
				return err
			}
			if len(stages) == 0 {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "dashboard %s has no funnel\n", name)
				return err
			}

			table := output.NewTable(cmd.OutOrStdout(), []string{"stage", "users", "step", "overall"})
			first := stages[0].Value
			prev := first
			for i, st := range stages {
				step := "-"
				if i > 0 {
					step = formatters.FormatConversionRate(st.Value, prev)
				}
				table.AddRow(st.Label, formatters.FormatRawNumber(st.Value), step, formatters.FormatConversionRate(st.Value, first))
				prev = st.Value
			}
			return table.Render()
		},
	}
}

func newFeaturesCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "features",
		Short: "Show feature adoption against targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := output.NewTable(cmd.OutOrStdout(), []string{"feature", "adoption", "target", "gap"})
			for _, f := range mockdata.FeatureAdoptionData() {
				gap := f.Gap()
				dir := formatters.GetTrendDirection(gap)
				table.AddRow(
					f.Feature,
					formatters.FormatPercentSimple(f.Adoption, 0),
					formatters.FormatPercentSimple(f.Target, 0),
					s.style(theme.TrendStyle(dir), formatters.FormatPercent(gap, 0)),
				)
			}
			return table.Render()
		},
	}
}

func newAlertsCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "alerts",
		Short: "List overview alerts with relative timestamps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			meta := mockdata.Meta(s.formatter)
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "%s - %s (%s, Stand: %s)\n\n",
				s.style(theme.HeaderStyle(), meta.Title), meta.Subtitle, meta.DataRange, s.formatter.Timestamp(meta.LastUpdated)); err != nil {
				return err
			}

			for _, a := range mockdata.Alerts(s.formatter) {
				title := s.style(theme.AlertStyle(theme.AlertKind(a.Type)), "["+string(a.Type)+"] "+a.Title)
				if _, err := fmt.Fprintf(out, "%s  %s\n  %s\n", title,
					s.style(theme.MutedStyle(), s.formatter.RelativeDate(a.Timestamp)), a.Message); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
