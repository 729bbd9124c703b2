package theme

import (
	"regexp"
	"testing"

	"github.com/Slach/dashboard-kit/pkg/formatters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var hexColor = regexp.MustCompile(`^#[0-9A-F]{6}$`)

func TestChartPalettesHaveSixHexColors(t *testing.T) {
	c := Tokens().ChartColors
	for name, p := range map[string][]string{
		"primary":     c.Primary,
		"sequential":  c.Sequential,
		"diverging":   c.Diverging,
		"categorical": c.Categorical,
	} {
		require.Len(t, p, 6, name)
		for _, color := range p {
			assert.Regexp(t, hexColor, color, name)
		}
	}
}

func TestTokensReturnsCopy(t *testing.T) {
	a := Tokens()
	a.ChartColors.Primary[0] = "#000000"
	a.Spacing[1] = "5px"
	a.Colors.Success = "#000000"

	b := Tokens()
	assert.Equal(t, "#003D8F", b.ChartColors.Primary[0])
	assert.Equal(t, "4px", b.Spacing[1])
	assert.Equal(t, "#10B981", Palette().Success)
}

func TestTokensYAML(t *testing.T) {
	out, err := yaml.Marshal(Tokens())
	require.NoError(t, err)

	var decoded TokenSet
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, 600, decoded.Typography.FontWeight.Semibold)
	assert.Equal(t, "9999px", decoded.BorderRadius["full"])
	assert.Equal(t, 400, decoded.ZIndex.Tooltip)
	assert.Contains(t, string(out), "primary_dark:")
	assert.Equal(t, "#001B41", decoded.Colors.PrimaryDark)
}

func TestTrendColor(t *testing.T) {
	assert.Equal(t, "#10B981", TrendColor(formatters.TrendUp))
	assert.Equal(t, "#EF4444", TrendColor(formatters.TrendDown))
	assert.Equal(t, "#97A3B4", TrendColor(formatters.TrendNeutral))
	assert.Equal(t, "#97A3B4", TrendColor(formatters.GetTrendDirection(0)))
}

func TestAlertColor(t *testing.T) {
	assert.Equal(t, "#F59E0B", AlertColor(AlertWarning))
	assert.Equal(t, "#EF4444", AlertColor(AlertError))
	assert.Equal(t, "#10B981", AlertColor(AlertSuccess))
	assert.Equal(t, "#3B82F6", AlertColor(AlertInfo))
	assert.Equal(t, "#3B82F6", AlertColor("unknown"))
}

func TestStylesKeepText(t *testing.T) {
	assert.Contains(t, TrendStyle(formatters.TrendUp).Render("+8.3%"), "+8.3%")
	assert.Contains(t, AlertStyle(AlertWarning).Render("D7 Retention"), "D7 Retention")
	assert.Contains(t, HeaderStyle().Render("KPI"), "KPI")
	assert.Contains(t, MutedStyle().Render(">40%"), ">40%")
}
