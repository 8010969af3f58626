// Package registry turns the bulk population payload into an ordered country
// list and a per-country year series.
package registry

import (
	"fmt"
	"io"
	"math"
	"sort"

	json "github.com/goccy/go-json"
)

// Country is one entry of the registry. LatestPopulation and Rank are nil when
// the source has no value.
type Country struct {
	Code             string
	Name             string
	LatestPopulation *int64
	Rank             *int
}

// Point is a single year/population observation.
type Point struct {
	Year       int
	Population int64
}

// Series maps a country code to its points, strictly increasing by year.
type Series map[string][]Point

// RawCountry is the compact [code, name, latestPopulation, rank] tuple.
type RawCountry []any

// Payload is the wire shape of the bulk data response.
type Payload struct {
	Countries  []RawCountry            `json:"countries"`
	Population map[string][][2]float64 `json:"population"`
}

// Dataset is a parsed payload. It is never mutated after Decode.
type Dataset struct {
	Countries []Country
	Series    Series

	index map[string]int
}

// NewDataset builds a Dataset from already parsed parts.
func NewDataset(countries []Country, series Series) *Dataset {
	if series == nil {
		series = Series{}
	}
	ds := &Dataset{
		Countries: countries,
		Series:    series,
		index:     make(map[string]int, len(countries)),
	}
	for i, c := range countries {
		ds.index[c.Code] = i
	}
	return ds
}

// Decode reads a bulk payload from r.
func Decode(r io.Reader) (*Dataset, error) {
	var p Payload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return FromPayload(p)
}

// FromPayload parses an already decoded payload.
func FromPayload(p Payload) (*Dataset, error) {
	countries, err := Parse(p.Countries)
	if err != nil {
		return nil, err
	}
	series, err := ParseSeries(p.Population)
	if err != nil {
		return nil, err
	}
	return NewDataset(countries, series), nil
}

// Parse converts raw tuples into countries, preserving input order. The input
// is assumed to be rank-sorted by the data source.
func Parse(raw []RawCountry) ([]Country, error) {
	out := make([]Country, 0, len(raw))
	for i, rc := range raw {
		c, err := parseCountry(rc)
		if err != nil {
			return nil, &RecordError{Index: i, Err: err}
		}
		out = append(out, c)
	}
	return out, nil
}

func parseCountry(rc RawCountry) (Country, error) {
	if len(rc) < 1 {
		return Country{}, fmt.Errorf("%w: empty tuple", ErrMalformedRecord)
	}
	code, ok := rc[0].(string)
	if !ok || code == "" {
		return Country{}, fmt.Errorf("%w: missing code", ErrMalformedRecord)
	}
	c := Country{Code: code, Name: code}
	if len(rc) > 1 {
		if name, ok := rc[1].(string); ok && name != "" {
			c.Name = name
		}
	}
	if len(rc) > 2 {
		if v, ok := asInt64(rc[2]); ok {
			c.LatestPopulation = &v
		}
	}
	if len(rc) > 3 {
		if v, ok := asInt64(rc[3]); ok {
			r := int(v)
			c.Rank = &r
		}
	}
	return c, nil
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(math.Round(n)), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		if err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return int64(math.Round(f)), true
	default:
		return 0, false
	}
}

// ParseSeries sorts each country's pairs by year and rejects duplicates.
func ParseSeries(raw map[string][][2]float64) (Series, error) {
	out := make(Series, len(raw))
	for code, pairs := range raw {
		pts := make([]Point, 0, len(pairs))
		for _, p := range pairs {
			pts = append(pts, Point{Year: int(p[0]), Population: int64(math.Round(p[1]))})
		}
		sort.Slice(pts, func(i, j int) bool { return pts[i].Year < pts[j].Year })
		for i := 1; i < len(pts); i++ {
			if pts[i].Year == pts[i-1].Year {
				return nil, fmt.Errorf("%w: %s %d", ErrDuplicateYear, code, pts[i].Year)
			}
		}
		out[code] = pts
	}
	return out, nil
}

// Bounds returns the min and max year present anywhere in the series. ok is
// false when there is no point at all.
func (ds *Dataset) Bounds() (min, max int, ok bool) {
	if ds == nil {
		return 0, 0, false
	}
	for _, pts := range ds.Series {
		if len(pts) == 0 {
			continue
		}
		first, last := pts[0].Year, pts[len(pts)-1].Year
		if !ok {
			min, max, ok = first, last, true
			continue
		}
		if first < min {
			min = first
		}
		if last > max {
			max = last
		}
	}
	return min, max, ok
}

// Lookup returns the country with the given code.
func (ds *Dataset) Lookup(code string) (Country, bool) {
	i := ds.Index(code)
	if i < 0 {
		return Country{}, false
	}
	return ds.Countries[i], true
}

// Index returns the registry position of code, or -1.
func (ds *Dataset) Index(code string) int {
	if ds == nil {
		return -1
	}
	if i, ok := ds.index[code]; ok {
		return i
	}
	return -1
}

// Value returns the population of code at exactly year.
func (ds *Dataset) Value(code string, year int) (int64, bool) {
	if ds == nil {
		return 0, false
	}
	pts := ds.Series[code]
	i := sort.Search(len(pts), func(i int) bool { return pts[i].Year >= year })
	if i < len(pts) && pts[i].Year == year {
		return pts[i].Population, true
	}
	return 0, false
}

// Payload re-encodes the dataset into its wire shape.
func (ds *Dataset) Payload() Payload {
	p := Payload{
		Countries:  make([]RawCountry, 0, len(ds.Countries)),
		Population: make(map[string][][2]float64, len(ds.Series)),
	}
	for _, c := range ds.Countries {
		var latest, rank any
		if c.LatestPopulation != nil {
			latest = *c.LatestPopulation
		}
		if c.Rank != nil {
			rank = *c.Rank
		}
		p.Countries = append(p.Countries, RawCountry{c.Code, c.Name, latest, rank})
	}
	for code, pts := range ds.Series {
		pairs := make([][2]float64, 0, len(pts))
		for _, pt := range pts {
			pairs = append(pairs, [2]float64{float64(pt.Year), float64(pt.Population)})
		}
		p.Population[code] = pairs
	}
	return p
}
