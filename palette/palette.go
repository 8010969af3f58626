// Package palette assigns each country a display color that stays the same
// for the lifetime of a session, whatever order countries are selected in.
package palette

import (
	"math"
)

// Token is a "#rrggbb" color.
type Token string

// goldenFraction spreads consecutive hash values across the palette.
const goldenFraction = 0.6180339887498949

// Colors is the 30-entry series palette.
var Colors = []Token{
	"#FFB3BA", "#BAFFC9", "#BAE1FF", "#FFFFBA", "#FFDFBA",
	"#E0BBE4", "#957DAD", "#D4A5A5", "#A8E6CF", "#DCEDC1",
	"#FFD3B6", "#FFAAA5", "#FF8B94", "#B5EAD7", "#C7CEEA",
	"#E2F0CB", "#F3B0C3", "#C6DBDA", "#FEE1E8", "#FED7C3",
	"#F6EAC2", "#ECD5E3", "#97C1A9", "#CCE2CB", "#B6CFB6",
	"#8FCACA", "#A2E1DB", "#55CBCD", "#CBAACB", "#ABDEE6",
}

// Others colors the aggregated pie slice.
const Others Token = "#9CA3AF"

// Assigner memoizes code -> color. The zero value is not usable; call New.
type Assigner struct {
	colors   []Token
	assigned map[string]Token
}

// New returns an Assigner over the default palette.
func New() *Assigner {
	return NewWithPalette(Colors)
}

// NewWithPalette returns an Assigner over a custom palette. An empty palette
// falls back to the default one.
func NewWithPalette(colors []Token) *Assigner {
	if len(colors) == 0 {
		colors = Colors
	}
	return &Assigner{
		colors:   colors,
		assigned: make(map[string]Token),
	}
}

// ColorFor returns the color for code, committing it on first use.
func (a *Assigner) ColorFor(code string) Token {
	if tok, ok := a.assigned[code]; ok {
		return tok
	}
	tok := a.colors[Index(code, len(a.colors))]
	a.assigned[code] = tok
	return tok
}

// Reset forgets every assignment. Only a full data reload should call it.
func (a *Assigner) Reset() {
	a.assigned = make(map[string]Token)
}

// Len is the number of codes assigned so far.
func (a *Assigner) Len() int {
	return len(a.assigned)
}

// Index maps code to a palette slot in [0, n).
func Index(code string, n int) int {
	if n <= 0 {
		return 0
	}
	h := math.Abs(float64(hash(code)))
	return int(math.Floor(h*goldenFraction*float64(n))) % n
}

// hash is a 31-multiplier rolling hash with int32 wraparound.
func hash(s string) int32 {
	var h int32
	for _, r := range s {
		h = h*31 + int32(r)
	}
	return h
}
