package export

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/andareed/popviz/dashboard"
	"github.com/andareed/popviz/projection"
	"github.com/andareed/popviz/view"
)

// FrameTSV renders the active view's numbers as tab-separated text for the
// clipboard. The trend view gets a column per year of its range.
func FrameTSV(f dashboard.Frame) (string, error) {
	if f.Empty() {
		return "", ErrNothingToRender
	}
	var b strings.Builder
	tw := csv.NewWriter(&b)
	tw.Comma = '\t'

	var records [][]string
	switch f.Kind {
	case view.Trend:
		records = trendRecords(f)
	case view.Pie:
		records = append(records, []string{"code", "name", "population", "share"})
		for _, s := range f.Pie {
			records = append(records, []string{
				s.Code, s.Name,
				strconv.FormatInt(s.Population, 10),
				strconv.FormatFloat(s.Share, 'f', 2, 64),
			})
		}
	case view.Bar:
		records = valueRecords(f.Bars)
	case view.Map:
		records = valueRecords(f.Map)
	default:
		return "", ErrUnsupportedView
	}

	if err := tw.WriteAll(records); err != nil {
		return "", err
	}
	return b.String(), nil
}

func trendRecords(f dashboard.Frame) [][]string {
	r, _ := f.Window.Range()
	var years []int
	for y := r.Start; y <= r.End; y++ {
		years = append(years, y)
	}
	records := [][]string{tableHeader(years)}
	for _, e := range f.Trend {
		byYear := make(map[int]int64, len(e.Points))
		for _, p := range e.Points {
			byYear[p.Year] = p.Population
		}
		rec := []string{e.Code, e.Name}
		for _, y := range years {
			if v, ok := byYear[y]; ok {
				rec = append(rec, strconv.FormatInt(v, 10))
			} else {
				rec = append(rec, "")
			}
		}
		records = append(records, rec)
	}
	return records
}

func valueRecords(values []projection.Value) [][]string {
	records := [][]string{{"code", "name", "population"}}
	for _, v := range values {
		records = append(records, []string{v.Code, v.Name, strconv.FormatInt(v.Population, 10)})
	}
	return records
}
