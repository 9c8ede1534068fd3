package effects

import "math"

func clamp01(u float64) float64 {
	return math.Max(0, math.Min(1, u))
}

func easeOutQuad(u float64) float64 {
	u = clamp01(u)
	return 1 - (1-u)*(1-u)
}

func easeOutCubic(u float64) float64 {
	u = clamp01(u)
	return 1 - math.Pow(1-u, 3)
}

func lerp(a, b, u float64) float64 {
	return a + (b-a)*u
}
