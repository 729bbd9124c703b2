package theme

import (
	"charm.land/lipgloss/v2"
	"github.com/Slach/dashboard-kit/pkg/formatters"
)

// AlertKind mirrors the severity of a dashboard alert
type AlertKind string

const (
	AlertWarning AlertKind = "warning"
	AlertError   AlertKind = "error"
	AlertInfo    AlertKind = "info"
	AlertSuccess AlertKind = "success"
)

// TrendColor maps a direction to its semantic color token
func TrendColor(d formatters.TrendDirection) string {
	switch d {
	case formatters.TrendUp:
		return palette.Success
	case formatters.TrendDown:
		return palette.Error
	default:
		return palette.TextMuted
	}
}

// AlertColor maps an alert kind to its semantic color token
func AlertColor(kind AlertKind) string {
	switch kind {
	case AlertWarning:
		return palette.Warning
	case AlertError:
		return palette.Error
	case AlertSuccess:
		return palette.Success
	default:
		return palette.Info
	}
}

func TrendStyle(d formatters.TrendDirection) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(TrendColor(d)))
}

func AlertStyle(kind AlertKind) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(AlertColor(kind))).Bold(true)
}

// HeaderStyle is used for table headers and titles
func HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(palette.PrimaryBlue)).Bold(true)
}

// MutedStyle is used for secondary text such as targets and timestamps
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(palette.TextSecondary))
}
