package mockdata

import "github.com/pkg/errors"

// FunnelStage is one step of a sequential drop-off
type FunnelStage struct {
	Stage string
	Value float64
	Label string
}

var funnels = map[string][]FunnelStage{
	DashboardOverview: {
		{Stage: "visited", Value: 10000, Label: "App besucht"},
		{Stage: "signup", Value: 4500, Label: "Registriert"},
		{Stage: "firstChat", Value: 3510, Label: "Erster Chat"},
		{Stage: "d7Active", Value: 2282, Label: "Tag 7 aktiv"},
	},
	DashboardJourney: {
		{Stage: "visitApp", Value: 45000, Label: "App besucht"},
		{Stage: "signup", Value: 8450, Label: "Registriert"},
		{Stage: "firstChat", Value: 6591, Label: "Erster Chat"},
		{Stage: "secondChat", Value: 5436, Label: "Zweiter Chat"},
		{Stage: "d7Return", Value: 3574, Label: "Tag 7 zurück"},
		{Stage: "d30Return", Value: 2408, Label: "Tag 30 zurück"},
	},
	DashboardKnowledge: {
		{Stage: "created", Value: 2340, Label: "KB erstellt"},
		{Stage: "filesAdded", Value: 2106, Label: "Dateien hinzugefügt"},
		{Stage: "usedInChat", Value: 1521, Label: "Im Chat genutzt"},
		{Stage: "regularUse", Value: 982, Label: "Regelmäßig genutzt"},
	},
	DashboardIntegration: {
		{Stage: "viewed", Value: 45000, Label: "Integration angesehen"},
		{Stage: "connectClicked", Value: 32400, Label: "Verbinden geklickt"},
		{Stage: "oauthComplete", Value: 30618, Label: "OAuth abgeschlossen"},
		{Stage: "usedInChat", Value: 21200, Label: "Im Chat genutzt"},
	},
}

// Funnel returns a copy of the dashboard's funnel. Dashboards without a
// funnel return an empty slice, unknown dashboards ErrUnknownDashboard.
func Funnel(dashboard string) ([]FunnelStage, error) {
	if _, ok := kpiSets[dashboard]; !ok {
		return nil, errors.Wrapf(ErrUnknownDashboard, "%q", dashboard)
	}
	return append([]FunnelStage{}, funnels[dashboard]...), nil
}

// FeatureAdoption compares the share of users of a feature with its target, both in percent
type FeatureAdoption struct {
	Feature  string
	Adoption float64
	Target   float64
}

// Gap is adoption minus target in percentage points
func (f FeatureAdoption) Gap() float64 {
	return f.Adoption - f.Target
}

var featureAdoption = []FeatureAdoption{
	{Feature: "Chat", Adoption: 95, Target: 90},
	{Feature: "Mehrere Agenten", Adoption: 68, Target: 60},
	{Feature: "Knowledge Base", Adoption: 42, Target: 50},
	{Feature: "Integrationen", Adoption: 28, Target: 35},
	{Feature: "Custom Prompts", Adoption: 15, Target: 20},
	{Feature: "Bildgenerierung", Adoption: 12, Target: 15},
}

func FeatureAdoptionData() []FeatureAdoption {
	return append([]FeatureAdoption{}, featureAdoption...)
}
