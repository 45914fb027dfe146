package ticks

// annualSpacing returns the default minor and major tick spacing, in
// years, for a span of nyears.
func annualSpacing(nyears float64) (int64, int64) {
	switch {
	case nyears < 11:
		return 1, 1
	case nyears < 20:
		return 1, 2
	case nyears < 50:
		return 1, 5
	case nyears < 100:
		return 5, 10
	case nyears < 200:
		return 5, 25
	case nyears < 600:
		return 10, 50
	default:
		factor := int64(nyears/1000) + 1
		return factor * 20, factor * 100
	}
}
