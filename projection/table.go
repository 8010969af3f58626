package projection

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/andareed/popviz/timewindow"
)

// TableSummary is a row of the simple table: values at both ends of the
// table's own year range. Nil means no data for that year.
type TableSummary struct {
	TableRow
	First         *int64
	Last          *int64
	Change        *int64
	PercentChange *float64
	Spark         []int64
}

// Summarize computes first/last/change figures over r for every row.
func Summarize(rows []TableRow, r timewindow.Range) []TableSummary {
	out := make([]TableSummary, 0, len(rows))
	for _, row := range rows {
		s := TableSummary{TableRow: row}
		if v, ok := row.ByYear[r.Start]; ok {
			s.First = &v
		}
		if v, ok := row.ByYear[r.End]; ok {
			s.Last = &v
		}
		if s.First != nil && s.Last != nil {
			change := *s.Last - *s.First
			s.Change = &change
			if *s.First > 0 {
				pct := float64(change) / float64(*s.First) * 100
				s.PercentChange = &pct
			}
		}
		for y := r.Start; y <= r.End; y++ {
			if v, ok := row.ByYear[y]; ok {
				s.Spark = append(s.Spark, v)
			}
		}
		out = append(out, s)
	}
	return out
}

// Field is a sortable table column.
type Field int

const (
	ByName Field = iota
	ByFirst
	ByLast
	ByChange
	ByPercentChange
	ByYear
)

// SortKey selects the column. Year is read only for ByYear.
type SortKey struct {
	Field Field
	Year  int
}

func (k SortKey) String() string {
	switch k.Field {
	case ByName:
		return "name"
	case ByFirst:
		return "first"
	case ByLast:
		return "last"
	case ByChange:
		return "change"
	case ByPercentChange:
		return "%change"
	case ByYear:
		return strconv.Itoa(k.Year)
	}
	return fmt.Sprintf("Field(%d)", int(k.Field))
}

// Direction is the sort direction.
type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) Arrow() string {
	if d == Asc {
		return "↑"
	}
	return "↓"
}

// SortSummaries sorts rows in place by key. Rows without a value sort last in
// either direction.
func SortSummaries(rows []TableSummary, key SortKey, dir Direction) {
	sort.SliceStable(rows, func(i, j int) bool {
		if key.Field == ByName {
			c := strings.Compare(strings.ToLower(rows[i].Name), strings.ToLower(rows[j].Name))
			if dir == Desc {
				return c > 0
			}
			return c < 0
		}
		a, aok := sortValue(rows[i], key)
		b, bok := sortValue(rows[j], key)
		switch {
		case !aok && !bok:
			return false
		case !aok:
			return false
		case !bok:
			return true
		}
		if dir == Desc {
			return a > b
		}
		return a < b
	})
}

func sortValue(s TableSummary, key SortKey) (float64, bool) {
	switch key.Field {
	case ByFirst:
		return deref(s.First)
	case ByLast:
		return deref(s.Last)
	case ByChange:
		return deref(s.Change)
	case ByPercentChange:
		if s.PercentChange == nil {
			return 0, false
		}
		return *s.PercentChange, true
	case ByYear:
		v, ok := s.ByYear[key.Year]
		return float64(v), ok
	}
	return 0, false
}

func deref(p *int64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return float64(*p), true
}

// Paginate returns the [start, end) slice bounds for offset and limit over n
// items, clamped to n. A non-positive limit means everything.
func Paginate(n, offset, limit int) (start, end int) {
	if offset < 0 {
		offset = 0
	}
	if offset >= n {
		return n, n
	}
	if limit <= 0 {
		limit = n
	}
	end = offset + limit
	if end > n {
		end = n
	}
	return offset, end
}
