package formatters

// TrendDirection classifies the sign of a delta
type TrendDirection string

const (
	TrendUp      TrendDirection = "up"
	TrendDown    TrendDirection = "down"
	TrendNeutral TrendDirection = "neutral"
)

// GetTrendDirection returns TrendUp for positive values, TrendDown for
// negative ones and TrendNeutral for zero and NaN.
func GetTrendDirection(value float64) TrendDirection {
	if value > 0 {
		return TrendUp
	}
	if value < 0 {
		return TrendDown
	}
	return TrendNeutral
}

// Arrow returns a single glyph for the direction
func (d TrendDirection) Arrow() string {
	switch d {
	case TrendUp:
		return "↑"
	case TrendDown:
		return "↓"
	default:
		return "→"
	}
}
