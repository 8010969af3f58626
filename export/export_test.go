package export

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	geojson "github.com/paulmach/go.geojson"
	"github.com/xuri/excelize/v2"

	"github.com/andareed/popviz/dashboard"
	"github.com/andareed/popviz/palette"
	"github.com/andareed/popviz/projection"
	"github.com/andareed/popviz/registry"
	"github.com/andareed/popviz/timewindow"
	"github.com/andareed/popviz/view"
)

func testRows() ([]projection.TableRow, []int) {
	return []projection.TableRow{
		{Code: "CHN", Name: "China", ByYear: map[int]int64{2000: 1262645000, 2001: 1271850000}},
		{Code: "TUV", Name: "Tuvalu", ByYear: map[int]int64{2001: 9419}},
	}, []int{2000, 2001}
}

func TestTableCSV(t *testing.T) {
	rows, years := testRows()
	var buf bytes.Buffer
	if err := TableCSV(&buf, rows, years); err != nil {
		t.Fatal(err)
	}
	want := "code,name,2000,2001\nCHN,China,1262645000,1271850000\nTUV,Tuvalu,,9419\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("csv (-want +got):\n%s", diff)
	}
}

func TestTableXLSX(t *testing.T) {
	rows, years := testRows()
	var buf bytes.Buffer
	if err := TableXLSX(&buf, rows, years); err != nil {
		t.Fatal(err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetRows(SheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{
		{"code", "name", "2000", "2001"},
		{"CHN", "China", "1262645000", "1271850000"},
		{"TUV", "Tuvalu", "", "9419"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sheet rows (-want +got):\n%s", diff)
	}
}

func trendFrame() dashboard.Frame {
	return dashboard.Frame{
		Kind:   view.Trend,
		Window: timewindow.NewRange(2000, 2002),
		Trend: []projection.SeriesEntry{
			{Code: "CHN", Name: "China", Color: "#FFB3BA", Points: []registry.Point{{Year: 2000, Population: 10}, {Year: 2002, Population: 12}}},
			{Code: "TUV", Name: "Tuvalu", Color: "#BAFFC9", Points: []registry.Point{{Year: 2001, Population: 1}}},
			{Code: "XKX", Name: "Kosovo", Color: "#BAE1FF", Points: []registry.Point{}},
		},
	}
}

func TestChartPNG(t *testing.T) {
	for _, test := range []struct {
		description string
		frame       dashboard.Frame
	}{
		{"line", trendFrame()},
		{"pie", dashboard.Frame{Kind: view.Pie, Window: timewindow.NewSingle(2001), Pie: []projection.PieSlice{
			{Code: "CHN", Name: "China", Population: 90, Share: 90, Color: "#FFB3BA", ShowLabel: true},
			{Name: projection.OthersName, Population: 10, Share: 10, Color: palette.Others, Others: true},
		}}},
		{"bar", dashboard.Frame{Kind: view.Bar, Window: timewindow.NewSingle(2001), Bars: []projection.Value{
			{Code: "CHN", Name: "China", Population: 90, Color: "#FFB3BA"},
			{Code: "TUV", Name: "Tuvalu", Population: 10, Color: "#BAFFC9"},
		}}},
	} {
		t.Run(test.description, func(t *testing.T) {
			var buf bytes.Buffer
			if err := ChartPNG(&buf, test.frame); err != nil {
				t.Fatalf("ChartPNG: %v", err)
			}
			if _, err := png.Decode(&buf); err != nil {
				t.Errorf("output is not a PNG: %v", err)
			}
		})
	}
}

func TestChartPNGErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := ChartPNG(&buf, dashboard.Frame{Kind: view.Trend}); !errors.Is(err, ErrNothingToRender) {
		t.Errorf("empty frame err = %v", err)
	}
	mapFrame := dashboard.Frame{Kind: view.Map, Map: []projection.Value{{Code: "CHN", Population: 1}}}
	if err := ChartPNG(&buf, mapFrame); !errors.Is(err, ErrUnsupportedView) {
		t.Errorf("map frame err = %v", err)
	}
	onlyEmpty := dashboard.Frame{Kind: view.Trend, Trend: []projection.SeriesEntry{{Code: "XKX", Points: []registry.Point{}}}}
	if err := ChartPNG(&buf, onlyEmpty); !errors.Is(err, ErrNothingToRender) {
		t.Errorf("all-empty trend err = %v", err)
	}
}

func TestMapGeoJSONWithoutBoundaries(t *testing.T) {
	values := []projection.Value{{Code: "CHN", Name: "China", Population: 1000}, {Code: "TUV", Name: "Tuvalu", Population: 10}}
	b, err := MapGeoJSON(values, nil)
	if err != nil {
		t.Fatal(err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(b)
	if err != nil {
		t.Fatalf("output is not GeoJSON: %v", err)
	}
	if len(fc.Features) != 2 {
		t.Fatalf("got %d features", len(fc.Features))
	}
	f := fc.Features[0]
	if f.Geometry != nil {
		t.Errorf("expected null geometry, got %v", f.Geometry)
	}
	if got := f.Properties["fill"]; got != string(palette.Choropleth(1000, 1000)) {
		t.Errorf("CHN fill = %v", got)
	}
}

func TestMapGeoJSONAnnotatesBoundaries(t *testing.T) {
	boundaries := []byte(`{"type":"FeatureCollection","features":[
	  {"type":"Feature","properties":{"ISO_A3":"CHN"},"geometry":{"type":"Point","coordinates":[104,35]}},
	  {"type":"Feature","properties":{"iso_a3":"ATA"},"geometry":{"type":"Point","coordinates":[0,-90]}}
	]}`)
	b, err := MapGeoJSON([]projection.Value{{Code: "CHN", Name: "China", Population: 1000}}, boundaries)
	if err != nil {
		t.Fatal(err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(b)
	if err != nil {
		t.Fatal(err)
	}
	if got := fc.Features[0].Properties["population"]; got != float64(1000) {
		t.Errorf("CHN population = %v", got)
	}
	if got := fc.Features[1].Properties["fill"]; got != string(palette.NoData) {
		t.Errorf("ATA fill = %v, want no-data", got)
	}
	if _, err := MapGeoJSON(nil, []byte("not json")); err == nil {
		t.Errorf("bad boundaries should fail")
	}
}

func TestToFile(t *testing.T) {
	dir := t.TempDir()
	rows, years := testRows()
	req := Request{Frame: trendFrame(), Rows: rows, Years: years}

	for _, test := range []struct {
		name string
		want Format
	}{
		{"table.csv", CSV},
		{"table.XLSX", XLSX},
		{"chart.png", PNG},
	} {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(dir, test.name)
			got, err := ToFile(path, req)
			if err != nil {
				t.Fatalf("ToFile: %v", err)
			}
			if got != test.want {
				t.Errorf("format = %v, want %v", got, test.want)
			}
			if st, err := os.Stat(path); err != nil || st.Size() == 0 {
				t.Errorf("file not written: %v", err)
			}
		})
	}

	if _, err := ToFile(filepath.Join(dir, "out.txt"), req); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("unknown extension err = %v", err)
	}
	path := filepath.Join(dir, "map.geojson")
	if _, err := ToFile(path, req); !errors.Is(err, ErrNothingToRender) {
		t.Errorf("geojson without map values err = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("failed export left a file behind")
	}
	if !strings.Contains(GeoJSON.String(), "geojson") {
		t.Errorf("GeoJSON.String() = %q", GeoJSON.String())
	}
}
