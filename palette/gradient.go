package palette

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// NoData fills map regions without a value.
const NoData Token = "#e5e7eb"

// choroplethStops runs from very light to very deep purple.
var choroplethStops = []Token{
	"#f3e8ff", "#ddc4f4", "#ba95e0", "#957dad", "#7c5d9e", "#584081", "#3b2863",
}

// Choropleth colors pop on a log10 scale relative to maxPop.
func Choropleth(pop, maxPop int64) Token {
	if pop <= 0 || maxPop <= 0 {
		return NoData
	}
	ratio := 1.0
	if logMax := math.Log10(float64(maxPop)); logMax > 0 {
		ratio = math.Min(math.Log10(float64(pop))/logMax, 1)
	}
	if ratio < 0 {
		ratio = 0
	}
	return Blend(choroplethStops, ratio)
}

// Blend interpolates along stops in Lab space. t is clamped to [0, 1].
func Blend(stops []Token, t float64) Token {
	switch len(stops) {
	case 0:
		return NoData
	case 1:
		return stops[0]
	}
	t = math.Max(0, math.Min(1, t))
	pos := t * float64(len(stops)-1)
	i := int(math.Floor(pos))
	if i >= len(stops)-1 {
		i = len(stops) - 2
	}
	frac := pos - float64(i)
	if frac <= 0 {
		return stops[i]
	}
	if frac >= 1 {
		return stops[i+1]
	}

	c1, err1 := colorful.Hex(string(stops[i]))
	c2, err2 := colorful.Hex(string(stops[i+1]))
	if err1 != nil || err2 != nil {
		return stops[i]
	}
	return Token(c1.BlendLab(c2, frac).Clamped().Hex())
}
