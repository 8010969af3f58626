package server

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/andareed/popviz/registry"
)

// csvHeader is the expected long-format header.
var csvHeader = []string{"code", "name", "year", "population"}

// Load reads path as CSV or JSON according to its extension.
func Load(path string) Loader {
	return func(ctx context.Context) (*registry.Dataset, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".csv":
			return LoadCSV(path)
		default:
			return LoadJSON(path)
		}
	}
}

// LoadJSON reads a bulk payload file.
func LoadJSON(path string) (*registry.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return registry.Decode(f)
}

// LoadCSV reads a long-format code,name,year,population file. Latest
// population and rank are derived here: rank orders countries by their most
// recent population, largest first, ties broken by code.
func LoadCSV(path string) (*registry.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV is LoadCSV over a reader.
func ReadCSV(r io.Reader) (*registry.Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i, want := range csvHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return nil, fmt.Errorf("csv header column %d is %q, want %q", i+1, header[i], want)
		}
	}

	names := map[string]string{}
	var order []string
	raw := map[string][][2]float64{}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		code := strings.TrimSpace(rec[0])
		if code == "" {
			return nil, &registry.RecordError{Index: line, Err: fmt.Errorf("%w: missing code", registry.ErrMalformedRecord)}
		}
		if _, ok := names[code]; !ok {
			names[code] = strings.TrimSpace(rec[1])
			order = append(order, code)
		}
		if strings.TrimSpace(rec[2]) == "" || strings.TrimSpace(rec[3]) == "" {
			// Country listed without a value for this row.
			continue
		}
		year, err := strconv.Atoi(strings.TrimSpace(rec[2]))
		if err != nil {
			return nil, &registry.RecordError{Index: line, Err: fmt.Errorf("%w: year: %v", registry.ErrMalformedRecord, err)}
		}
		pop, err := strconv.ParseFloat(strings.TrimSpace(rec[3]), 64)
		if err != nil {
			return nil, &registry.RecordError{Index: line, Err: fmt.Errorf("%w: population: %v", registry.ErrMalformedRecord, err)}
		}
		raw[code] = append(raw[code], [2]float64{float64(year), pop})
	}

	series, err := registry.ParseSeries(raw)
	if err != nil {
		return nil, err
	}
	return registry.NewDataset(rankCountries(order, names, series), series), nil
}

func rankCountries(codes []string, names map[string]string, series registry.Series) []registry.Country {
	countries := make([]registry.Country, 0, len(codes))
	for _, code := range codes {
		c := registry.Country{Code: code, Name: names[code]}
		if c.Name == "" {
			c.Name = code
		}
		if pts := series[code]; len(pts) > 0 {
			latest := pts[len(pts)-1].Population
			c.LatestPopulation = &latest
		}
		countries = append(countries, c)
	}
	sort.SliceStable(countries, func(i, j int) bool {
		a, b := countries[i].LatestPopulation, countries[j].LatestPopulation
		switch {
		case a == nil && b == nil:
			return countries[i].Code < countries[j].Code
		case a == nil:
			return false
		case b == nil:
			return true
		case *a != *b:
			return *a > *b
		}
		return countries[i].Code < countries[j].Code
	})
	rank := 0
	for i := range countries {
		if countries[i].LatestPopulation == nil {
			continue
		}
		rank++
		r := rank
		countries[i].Rank = &r
	}
	return countries
}
