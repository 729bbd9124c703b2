package cli

import (
	"charm.land/lipgloss/v2"
	"github.com/Slach/dashboard-kit/pkg/formatters"
	"github.com/Slach/dashboard-kit/pkg/mockdata"
	"github.com/Slach/dashboard-kit/pkg/theme"
)

// style applies st only when writing to a terminal
func (s *session) style(st lipgloss.Style, text string) string {
	if !s.color {
		return text
	}
	return st.Render(text)
}

// kpiValue renders a KPI value according to its unit
func (s *session) kpiValue(k mockdata.KPI) string {
	return formatValue(k.Unit, k.Value, s.decimals)
}

func formatValue(unit mockdata.Unit, v float64, decimals int) string {
	switch unit {
	case mockdata.UnitCount:
		return formatters.FormatNumber(v, decimals)
	case mockdata.UnitPercent:
		return formatters.FormatPercentSimple(v, decimals)
	case mockdata.UnitMinutes:
		return formatters.FormatDuration(v)
	case mockdata.UnitMillis:
		return formatters.FormatRawNumber(v) + " ms"
	case mockdata.UnitSeconds:
		return formatters.FormatRawNumber(v) + " s"
	default:
		return formatters.FormatRawNumber(v)
	}
}

// change renders a signed delta with its trend arrow, colored by direction
func (s *session) change(delta float64) string {
	dir := formatters.GetTrendDirection(delta)
	return s.style(theme.TrendStyle(dir), dir.Arrow()+" "+formatters.FormatPercent(delta, s.decimals))
}
