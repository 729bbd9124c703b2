// Package theme holds the dashboard design tokens.
package theme

type Colors struct {
	PrimaryDark   string `yaml:"primary_dark"`
	PrimaryBlue   string `yaml:"primary_blue"`
	PrimaryPurple string `yaml:"primary_purple"`

	AccentMagenta string `yaml:"accent_magenta"`
	AccentCyan    string `yaml:"accent_cyan"`

	BgLight     string `yaml:"bg_light"`
	BgCard      string `yaml:"bg_card"`
	BgCardHover string `yaml:"bg_card_hover"`
	BgSidebar   string `yaml:"bg_sidebar"`

	TextPrimary   string `yaml:"text_primary"`
	TextSecondary string `yaml:"text_secondary"`
	TextMuted     string `yaml:"text_muted"`
	White         string `yaml:"white"`

	Success string `yaml:"success"`
	Warning string `yaml:"warning"`
	Error   string `yaml:"error"`
	Info    string `yaml:"info"`
}

type Gradients struct {
	Hero      string `yaml:"hero"`
	Text      string `yaml:"text"`
	Card      string `yaml:"card"`
	CardHover string `yaml:"card_hover"`
}

type Shadows struct {
	Soft   string `yaml:"soft"`
	Medium string `yaml:"medium"`
	Card   string `yaml:"card"`
	Glow   string `yaml:"glow"`
	Focus  string `yaml:"focus"`
}

// ChartColors are six-entry palettes for data visualization
type ChartColors struct {
	Primary     []string `yaml:"primary"`
	Sequential  []string `yaml:"sequential"`
	Diverging   []string `yaml:"diverging"`
	Categorical []string `yaml:"categorical"`
}

type Typography struct {
	FontFamily struct {
		Headlines string `yaml:"headlines"`
		Body      string `yaml:"body"`
	} `yaml:"font_family"`
	FontWeight struct {
		Light    int `yaml:"light"`
		Regular  int `yaml:"regular"`
		Medium   int `yaml:"medium"`
		Semibold int `yaml:"semibold"`
	} `yaml:"font_weight"`
	FontSize map[string]string `yaml:"font_size"`
}

type Transitions struct {
	Fast   string `yaml:"fast"`
	Normal string `yaml:"normal"`
	Slow   string `yaml:"slow"`
}

type ZIndex struct {
	Base     int `yaml:"base"`
	Dropdown int `yaml:"dropdown"`
	Sticky   int `yaml:"sticky"`
	Modal    int `yaml:"modal"`
	Tooltip  int `yaml:"tooltip"`
}

type TokenSet struct {
	Colors       Colors            `yaml:"colors"`
	Gradients    Gradients         `yaml:"gradients"`
	Shadows      Shadows           `yaml:"shadows"`
	ChartColors  ChartColors       `yaml:"chart_colors"`
	Typography   Typography        `yaml:"typography"`
	Spacing      map[int]string    `yaml:"spacing"`
	BorderRadius map[string]string `yaml:"border_radius"`
	Transitions  Transitions       `yaml:"transitions"`
	ZIndex       ZIndex            `yaml:"z_index"`
}

var palette = Colors{
	PrimaryDark:   "#001B41",
	PrimaryBlue:   "#003D8F",
	PrimaryPurple: "#560E8A",

	AccentMagenta: "#D746F5",
	AccentCyan:    "#00D4FF",

	BgLight:     "#FAFAFA",
	BgCard:      "#F4F7FA",
	BgCardHover: "#EDF2F7",
	BgSidebar:   "linear-gradient(180deg, #FDFBFF 0%, #F8F5FC 50%, #F4F7FA 100%)",

	TextPrimary:   "#001B41",
	TextSecondary: "#718095",
	TextMuted:     "#97A3B4",
	White:         "#FFFFFF",

	Success: "#10B981",
	Warning: "#F59E0B",
	Error:   "#EF4444",
	Info:    "#3B82F6",
}

// Tokens returns a fresh copy of the full token set, callers may modify it
func Tokens() TokenSet {
	t := TokenSet{
		Colors: palette,
		Gradients: Gradients{
			Hero:      "linear-gradient(135deg, #003D8F 0%, #560E8A 50%, #D746F5 100%)",
			Text:      "linear-gradient(90deg, #095BB1 0%, #560E8A 80%)",
			Card:      "linear-gradient(135deg, rgba(0, 61, 143, 0.03) 0%, rgba(86, 14, 138, 0.05) 100%)",
			CardHover: "linear-gradient(135deg, rgba(0, 61, 143, 0.06) 0%, rgba(86, 14, 138, 0.08) 100%)",
		},
		Shadows: Shadows{
			Soft:   "0 4px 20px rgba(0, 27, 65, 0.08)",
			Medium: "0 8px 32px rgba(0, 27, 65, 0.12)",
			Card:   "0 2px 12px rgba(0, 27, 65, 0.06)",
			Glow:   "0 0 40px rgba(215, 70, 245, 0.25)",
			Focus:  "0 0 0 4px rgba(86, 14, 138, 0.12)",
		},
		ChartColors: ChartColors{
			Primary:     []string{"#003D8F", "#560E8A", "#D746F5", "#00D4FF", "#10B981", "#F59E0B"},
			Sequential:  []string{"#003D8F", "#1A5AAE", "#3478CD", "#4E96EC", "#68B4FF", "#82D2FF"},
			Diverging:   []string{"#EF4444", "#F59E0B", "#FBBF24", "#A3E635", "#22C55E", "#10B981"},
			Categorical: []string{"#003D8F", "#560E8A", "#10B981", "#F59E0B", "#EF4444", "#00D4FF"},
		},
		Spacing: map[int]string{
			0: "0", 1: "4px", 2: "8px", 3: "12px", 4: "16px", 5: "20px",
			6: "24px", 8: "32px", 10: "40px", 12: "48px", 16: "64px",
		},
		BorderRadius: map[string]string{
			"sm": "4px", "md": "8px", "lg": "12px", "xl": "16px", "2xl": "20px", "full": "9999px",
		},
		Transitions: Transitions{Fast: "0.15s ease", Normal: "0.2s ease", Slow: "0.3s ease"},
		ZIndex:      ZIndex{Base: 0, Dropdown: 100, Sticky: 200, Modal: 300, Tooltip: 400},
	}

	t.Typography.FontFamily.Headlines = "'Overpass', sans-serif"
	t.Typography.FontFamily.Body = "'Open Sans', sans-serif"
	t.Typography.FontWeight.Light = 300
	t.Typography.FontWeight.Regular = 400
	t.Typography.FontWeight.Medium = 500
	t.Typography.FontWeight.Semibold = 600
	t.Typography.FontSize = map[string]string{
		"xs": "11px", "sm": "12px", "base": "14px", "lg": "16px",
		"xl": "20px", "2xl": "24px", "3xl": "32px", "4xl": "40px",
	}
	return t
}

// Palette returns the color tokens
func Palette() Colors {
	return palette
}
