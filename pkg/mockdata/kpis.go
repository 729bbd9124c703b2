// Package mockdata provides the fixture datasets the dashboards are built from.
// Values are static, only timestamps and week labels depend on the clock.
package mockdata

import (
	"sort"

	"github.com/pkg/errors"
)

var ErrUnknownDashboard = errors.New("unknown dashboard")

// KPI is a named metric with its current value, change against the previous
// period in percent, a twelve point sparkline and a textual target.
type KPI struct {
	Key       string
	Label     string
	Value     float64
	Change    float64
	Sparkline []float64
	Target    string
	// Unit tells presentation code how to render Value
	Unit Unit
}

type Unit string

const (
	UnitCount   Unit = "count"
	UnitPercent Unit = "percent"
	UnitMinutes Unit = "minutes"
	UnitMillis  Unit = "ms"
	UnitSeconds Unit = "s"
	UnitScore   Unit = "score"
)

const (
	DashboardOverview    = "overview"
	DashboardPerformance = "performance"
	DashboardJourney     = "journey"
	DashboardKnowledge   = "knowledge"
	DashboardIntegration = "integration"
	DashboardChat        = "chat"
)

var kpiSets = map[string][]KPI{
	DashboardOverview: {
		{Key: "dau", Label: "Daily Active Users", Value: 12450, Change: 8.3, Unit: UnitCount, Target: "Wachstum",
			Sparkline: []float64{9800, 10200, 10800, 11100, 11400, 11200, 11800, 12100, 12000, 12300, 12200, 12450}},
		{Key: "wau", Label: "Weekly Active Users", Value: 45230, Change: 5.2, Unit: UnitCount, Target: "Wachstum",
			Sparkline: []float64{38000, 39500, 40200, 41000, 42100, 42800, 43200, 43900, 44200, 44600, 45000, 45230}},
		{Key: "mau", Label: "Monthly Active Users", Value: 98500, Change: 12.1, Unit: UnitCount, Target: "Wachstum",
			Sparkline: []float64{78000, 80500, 82000, 84500, 86000, 88200, 90100, 92000, 94000, 95800, 97200, 98500}},
		{Key: "messagesPerDay", Label: "Nachrichten pro Tag", Value: 78500, Change: 15.2, Unit: UnitCount, Target: ">5/User",
			Sparkline: []float64{58000, 61000, 63500, 65000, 67200, 69000, 71500, 73000, 75000, 76200, 77800, 78500}},
		{Key: "avgSessionDuration", Label: "Ø Sitzungsdauer", Value: 12.5, Change: 2.1, Unit: UnitMinutes, Target: ">10 min",
			Sparkline: []float64{9.8, 10.1, 10.4, 10.8, 11.0, 11.2, 11.5, 11.8, 12.0, 12.2, 12.3, 12.5}},
		{Key: "d7Retention", Label: "D7 Retention", Value: 42.3, Change: -1.2, Unit: UnitPercent, Target: ">40%",
			Sparkline: []float64{44.5, 44.2, 43.8, 43.5, 43.2, 42.8, 42.5, 42.8, 42.6, 42.4, 42.5, 42.3}},
	},
	DashboardPerformance: {
		{Key: "errorRate", Label: "Fehlerrate", Value: 0.42, Change: -15.2, Unit: UnitPercent, Target: "<0.5%",
			Sparkline: []float64{0.65, 0.62, 0.58, 0.55, 0.52, 0.50, 0.48, 0.46, 0.44, 0.43, 0.42, 0.42}},
		{Key: "apiP95Latency", Label: "API P95 Latenz", Value: 245, Change: -8.5, Unit: UnitMillis, Target: "<300ms",
			Sparkline: []float64{320, 305, 295, 285, 275, 268, 262, 258, 252, 248, 246, 245}},
		{Key: "webSocketUptime", Label: "WebSocket Uptime", Value: 99.97, Change: 0.02, Unit: UnitPercent, Target: ">99.9%",
			Sparkline: []float64{99.92, 99.93, 99.94, 99.94, 99.95, 99.95, 99.96, 99.96, 99.97, 99.97, 99.97, 99.97}},
		{Key: "slowRequestsPercent", Label: "Langsame Requests", Value: 2.8, Change: -22.2, Unit: UnitPercent, Target: "<3%",
			Sparkline: []float64{5.2, 4.8, 4.5, 4.2, 3.9, 3.7, 3.4, 3.2, 3.0, 2.9, 2.8, 2.8}},
	},
	DashboardJourney: {
		{Key: "signups30d", Label: "Registrierungen (30 Tage)", Value: 8450, Change: 22.5, Unit: UnitCount, Target: "Wachstum",
			Sparkline: []float64{5200, 5600, 5900, 6300, 6700, 7100, 7400, 7700, 7950, 8150, 8300, 8450}},
		{Key: "activationRate", Label: "Aktivierungsrate", Value: 78, Change: 4.2, Unit: UnitPercent, Target: ">70%",
			Sparkline: []float64{68, 70, 71, 72, 73, 74, 75, 76, 77, 77.5, 78, 78}},
		{Key: "d7Retention", Label: "D7 Retention", Value: 42.3, Change: -1.2, Unit: UnitPercent, Target: ">40%",
			Sparkline: []float64{44.5, 44.2, 43.8, 43.5, 43.2, 42.8, 42.5, 42.8, 42.6, 42.4, 42.5, 42.3}},
		{Key: "d30Retention", Label: "D30 Retention", Value: 28.5, Change: 2.8, Unit: UnitPercent, Target: ">25%",
			Sparkline: []float64{24, 24.5, 25, 25.5, 26, 26.5, 27, 27.3, 27.8, 28, 28.3, 28.5}},
	},
	DashboardKnowledge: {
		{Key: "totalKnowledgeBases", Label: "Knowledge Bases", Value: 2340, Change: 18.5, Unit: UnitCount, Target: "Wachstum",
			Sparkline: []float64{1800, 1900, 1980, 2050, 2120, 2180, 2220, 2260, 2290, 2310, 2330, 2340}},
		{Key: "totalFilesUploaded", Label: "Hochgeladene Dateien", Value: 45600, Change: 22.3, Unit: UnitCount, Target: "Wachstum",
			Sparkline: []float64{32000, 34500, 36800, 38500, 40200, 41800, 43000, 44100, 44800, 45200, 45400, 45600}},
		{Key: "usageInChat", Label: "Nutzung im Chat", Value: 42, Change: 8.2, Unit: UnitPercent, Target: ">50%",
			Sparkline: []float64{35, 36, 37, 38, 38.5, 39, 40, 40.5, 41, 41.5, 42, 42}},
		{Key: "processingSuccessRate", Label: "Verarbeitung erfolgreich", Value: 98.2, Change: 0.5, Unit: UnitPercent, Target: ">98%",
			Sparkline: []float64{96.5, 96.8, 97.0, 97.2, 97.5, 97.7, 97.9, 98.0, 98.1, 98.15, 98.18, 98.2}},
	},
	DashboardIntegration: {
		{Key: "connectedUsers", Label: "Verbundene Nutzer", Value: 27580, Change: 12.4, Unit: UnitCount, Target: "Wachstum",
			Sparkline: []float64{22000, 23100, 24000, 24800, 25500, 26100, 26600, 27000, 27200, 27400, 27500, 27580}},
		{Key: "oauthSuccessRate", Label: "OAuth Erfolgsrate", Value: 94.5, Change: 2.1, Unit: UnitPercent, Target: ">95%",
			Sparkline: []float64{91, 91.5, 92, 92.5, 93, 93.3, 93.6, 94, 94.2, 94.3, 94.4, 94.5}},
		{Key: "usageInChat", Label: "Nutzung im Chat", Value: 28, Change: 5.8, Unit: UnitPercent, Target: ">35%",
			Sparkline: []float64{22, 23, 23.5, 24, 25, 25.5, 26, 26.5, 27, 27.5, 28, 28}},
		{Key: "disconnectRate", Label: "Trennungsrate", Value: 4.2, Change: -1.5, Unit: UnitPercent, Target: "<5%",
			Sparkline: []float64{6.5, 6.2, 5.9, 5.6, 5.3, 5.1, 4.9, 4.7, 4.5, 4.3, 4.2, 4.2}},
	},
	DashboardChat: {
		{Key: "messagesPerDay", Label: "Nachrichten pro Tag", Value: 78500, Change: 15.2, Unit: UnitCount, Target: ">50K",
			Sparkline: []float64{58000, 61000, 63500, 65000, 67200, 69000, 71500, 73000, 75000, 76200, 77800, 78500}},
		{Key: "avgResponseTime", Label: "Ø Antwortzeit", Value: 1.8, Change: -12.5, Unit: UnitSeconds, Target: "<2s",
			Sparkline: []float64{2.4, 2.3, 2.2, 2.1, 2.0, 1.95, 1.9, 1.85, 1.82, 1.8, 1.79, 1.8}},
		{Key: "generationStopRate", Label: "Generierung gestoppt", Value: 3.2, Change: -0.8, Unit: UnitPercent, Target: "<5%",
			Sparkline: []float64{4.5, 4.2, 4.0, 3.8, 3.6, 3.5, 3.4, 3.3, 3.25, 3.22, 3.2, 3.2}},
		{Key: "feedbackScore", Label: "Feedback Score", Value: 4.2, Change: 0.3, Unit: UnitScore, Target: ">4.0",
			Sparkline: []float64{3.8, 3.85, 3.9, 3.95, 4.0, 4.05, 4.1, 4.12, 4.15, 4.18, 4.2, 4.2}},
	},
}

// Dashboards returns the known dashboard names in sorted order
func Dashboards() []string {
	names := make([]string, 0, len(kpiSets))
	for name := range kpiSets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// KPIs returns a copy of the KPI set of a dashboard
func KPIs(dashboard string) ([]KPI, error) {
	set, ok := kpiSets[dashboard]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownDashboard, "%q", dashboard)
	}
	out := make([]KPI, len(set))
	for i, k := range set {
		k.Sparkline = append([]float64(nil), k.Sparkline...)
		out[i] = k
	}
	return out, nil
}

// FindKPI looks a KPI up by key within a dashboard
func FindKPI(dashboard, key string) (KPI, error) {
	set, err := KPIs(dashboard)
	if err != nil {
		return KPI{}, err
	}
	for _, k := range set {
		if k.Key == key {
			return k, nil
		}
	}
	return KPI{}, errors.Errorf("dashboard %q has no KPI %q", dashboard, key)
}
