package projection

import (
	"sort"
	"strings"
)

// DefaultBarCount is how many bars the bar view shows.
const DefaultBarCount = 15

// BarOrder keeps bar positions fixed while playback changes the values. The
// order is recomputed only when the set of codes changes.
type BarOrder struct {
	N int

	key   string
	order []string
}

// NewBarOrder returns an order showing at most n bars.
func NewBarOrder(n int) *BarOrder {
	if n <= 0 {
		n = DefaultBarCount
	}
	return &BarOrder{N: n}
}

// Apply returns values arranged in the stable order.
func (b *BarOrder) Apply(values []Value) []Value {
	byCode := make(map[string]Value, len(values))
	codes := make([]string, 0, len(values))
	for _, v := range values {
		byCode[v.Code] = v
		codes = append(codes, v.Code)
	}
	sort.Strings(codes)
	key := strings.Join(codes, ",")

	if key != b.key || len(b.order) == 0 {
		sorted := make([]Value, len(values))
		copy(sorted, values)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Population > sorted[j].Population })
		if len(sorted) > b.N {
			sorted = sorted[:b.N]
		}
		b.order = b.order[:0]
		for _, v := range sorted {
			b.order = append(b.order, v.Code)
		}
		b.key = key
	}

	out := make([]Value, 0, len(b.order))
	for _, code := range b.order {
		if v, ok := byCode[code]; ok {
			out = append(out, v)
		}
	}
	return out
}

// Reset forgets the current order.
func (b *BarOrder) Reset() {
	b.key = ""
	b.order = nil
}
