package mockdata

import (
	"fmt"
	"time"

	"github.com/Slach/dashboard-kit/pkg/clock"
)

type AlertType string

const (
	AlertWarning AlertType = "warning"
	AlertError   AlertType = "error"
	AlertInfo    AlertType = "info"
	AlertSuccess AlertType = "success"
)

type Alert struct {
	ID        string
	Type      AlertType
	Title     string
	Message   string
	Metric    string
	Timestamp time.Time
}

// Alerts returns the overview alerts, timestamped hours before c.Now()
func Alerts(c clock.Clock) []Alert {
	now := c.Now()
	return []Alert{
		{
			ID:        "1",
			Type:      AlertWarning,
			Title:     "D7 Retention unter Ziel",
			Message:   "Die 7-Tage-Retention liegt bei 42.3% (Ziel: >40%). Trend ist leicht negativ.",
			Metric:    "d7Retention",
			Timestamp: now.Add(-2 * time.Hour),
		},
		{
			ID:        "2",
			Type:      AlertSuccess,
			Title:     "MAU Wachstum stark",
			Message:   "+12.1% MAU Wachstum diese Woche. Stärkstes Wachstum seit 3 Monaten.",
			Metric:    "mau",
			Timestamp: now.Add(-4 * time.Hour),
		},
		{
			ID:        "3",
			Type:      AlertInfo,
			Title:     "Knowledge Base Adoption",
			Message:   "Knowledge Base Adoption bei 42% - 8% unter Ziel. Onboarding-Verbesserung empfohlen.",
			Metric:    "knowledgeBase",
			Timestamp: now.Add(-8 * time.Hour),
		},
	}
}

type DashboardMeta struct {
	Title       string
	Subtitle    string
	LastUpdated time.Time
	DataRange   string
}

func Meta(c clock.Clock) DashboardMeta {
	return DashboardMeta{
		Title:       "Executive Overview",
		Subtitle:    "Wichtigste KPIs auf einen Blick",
		LastUpdated: c.Now(),
		DataRange:   "Letzte 30 Tage",
	}
}

// WeekLabels returns "KW <iso week>" for the last count weeks, oldest first
func WeekLabels(c clock.Clock, count int) []string {
	if count <= 0 {
		return nil
	}
	now := c.Now()
	labels := make([]string, 0, count)
	for i := count - 1; i >= 0; i-- {
		_, week := now.AddDate(0, 0, -i*7).ISOWeek()
		labels = append(labels, fmt.Sprintf("KW %d", week))
	}
	return labels
}

// ActiveUsersPoint is one week of the active users chart
type ActiveUsersPoint struct {
	Week string
	DAU  float64
	WAU  float64
	MAU  float64
}

// ActiveUsers zips the last twelve week labels with the DAU/WAU/MAU sparklines
func ActiveUsers(c clock.Clock) []ActiveUsersPoint {
	set := kpiSets[DashboardOverview]
	dau, wau, mau := set[0].Sparkline, set[1].Sparkline, set[2].Sparkline

	weeks := WeekLabels(c, len(dau))
	points := make([]ActiveUsersPoint, len(weeks))
	for i, week := range weeks {
		points[i] = ActiveUsersPoint{Week: week, DAU: dau[i], WAU: wau[i], MAU: mau[i]}
	}
	return points
}
