package projection

import (
	"sort"

	"github.com/andareed/popviz/palette"
	"github.com/andareed/popviz/selection"
)

const (
	// MaxPieSlices is the slice count above which small slices are folded.
	MaxPieSlices = 10
	// MinLabelShare is the smallest share, in percent, that gets a label.
	MinLabelShare = 3.0
	// OthersName names the folded slice.
	OthersName = "Others"
)

// PieSlice is one wedge. Share is a percentage of the total of all values.
type PieSlice struct {
	Code       string
	Name       string
	Population int64
	Share      float64
	Color      palette.Token
	ShowLabel  bool
	Others     bool
}

// PieSlices sorts values by population descending. With more than maxSlices
// values, the largest maxSlices-1 are kept and the rest become one Others
// slice. A slice is labelled when its code is in labels and its share is at
// least MinLabelShare.
func PieSlices(values []Value, labels *selection.Set, maxSlices int) []PieSlice {
	if len(values) == 0 {
		return nil
	}
	if maxSlices < 2 {
		maxSlices = MaxPieSlices
	}
	sorted := make([]Value, len(values))
	copy(sorted, values)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Population > sorted[j].Population })

	var total int64
	for _, v := range sorted {
		total += v.Population
	}
	share := func(pop int64) float64 {
		if total <= 0 {
			return 0
		}
		return float64(pop) / float64(total) * 100
	}

	keep := sorted
	var others int64
	if len(sorted) > maxSlices {
		keep = sorted[:maxSlices-1]
		for _, v := range sorted[maxSlices-1:] {
			others += v.Population
		}
	}

	out := make([]PieSlice, 0, len(keep)+1)
	for _, v := range keep {
		s := share(v.Population)
		out = append(out, PieSlice{
			Code:       v.Code,
			Name:       v.Name,
			Population: v.Population,
			Share:      s,
			Color:      v.Color,
			ShowLabel:  labels.Has(v.Code) && s >= MinLabelShare,
		})
	}
	if others > 0 {
		out = append(out, PieSlice{
			Name:       OthersName,
			Population: others,
			Share:      share(others),
			Color:      palette.Others,
			Others:     true,
		})
	}
	return out
}
