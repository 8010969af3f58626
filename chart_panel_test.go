package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/muesli/reflow/ansi"

	"github.com/andareed/popviz/dashboard"
	"github.com/andareed/popviz/projection"
	"github.com/andareed/popviz/registry"
	"github.com/andareed/popviz/timewindow"
	"github.com/andareed/popviz/view"
)

func TestSampleYears(t *testing.T) {
	r := timewindow.Range{Start: 2000, End: 2004}
	for _, test := range []struct {
		cols int
		want []int
	}{
		{10, []int{2000, 2001, 2002, 2003, 2004}},
		{3, []int{2000, 2002, 2004}},
		{1, []int{2004}},
		{0, nil},
	} {
		if diff := cmp.Diff(test.want, sampleYears(r, test.cols)); diff != "" {
			t.Errorf("sampleYears(%d) (-want +got):\n%s", test.cols, diff)
		}
	}
}

func TestSparkline(t *testing.T) {
	for _, test := range []struct {
		description string
		byYear      map[int]int64
		want        string
	}{
		{"scaled to its own range", map[int]int64{1: 1, 2: 5, 3: 9}, "▁▅█ "},
		{"flat series", map[int]int64{1: 7, 2: 7, 3: 7, 4: 7}, "▁▁▁▁"},
		{"no data", map[int]int64{}, "    "},
	} {
		t.Run(test.description, func(t *testing.T) {
			if got := sparkline(test.byYear, []int{1, 2, 3, 4}); got != test.want {
				t.Errorf("sparkline = %q, want %q", got, test.want)
			}
		})
	}
}

func TestRenderChartPanel(t *testing.T) {
	for _, test := range []struct {
		description string
		frame       dashboard.Frame
		want        []string
	}{
		{
			description: "empty trend",
			frame:       dashboard.Frame{Kind: view.Trend, Window: timewindow.NewRange(2000, 2005)},
			want:        []string{"No countries selected"},
		},
		{
			description: "trend",
			frame: dashboard.Frame{Kind: view.Trend, Window: timewindow.NewRange(2000, 2001), Trend: []projection.SeriesEntry{
				{Code: "CHN", Name: "China", Color: "#FFB3BA", Points: []registry.Point{{Year: 2000, Population: 1_262_645_000}, {Year: 2001, Population: 1_271_850_000}}},
				{Code: "XKX", Name: "Kosovo", Color: "#BAFFC9"},
			}},
			want: []string{"2000", "China", "1.27B", "Kosovo", "no data in range"},
		},
		{
			description: "pie labels only where shown",
			frame: dashboard.Frame{Kind: view.Pie, Window: timewindow.NewSingle(2001), Pie: []projection.PieSlice{
				{Code: "CHN", Name: "China", Population: 90, Share: 90, Color: "#FFB3BA", ShowLabel: true},
				{Name: projection.OthersName, Population: 10, Share: 10, Others: true},
			}},
			want: []string{"90.0%", "Others"},
		},
		{
			description: "map sorted by population",
			frame: dashboard.Frame{Kind: view.Map, Window: timewindow.NewSingle(2001), MaxPopulation: 100, Map: []projection.Value{
				{Code: "TUV", Name: "Tuvalu", Population: 1},
				{Code: "CHN", Name: "China", Population: 100},
			}},
			want: []string{"low", "high", "1 ", "China"},
		},
	} {
		t.Run(test.description, func(t *testing.T) {
			got := renderChartPanel(test.frame, 80)
			for _, w := range test.want {
				if !strings.Contains(got, w) {
					t.Errorf("panel missing %q:\n%s", w, got)
				}
			}
		})
	}
}

func TestRenderPieHidesUnlabelledShare(t *testing.T) {
	got := renderPie([]projection.PieSlice{{Name: "Others", Population: 10, Share: 10}}, 80)
	if strings.Contains(got, "10.0%") {
		t.Errorf("unlabelled slice shows its share:\n%s", got)
	}
}

func TestRenderMapOrder(t *testing.T) {
	values := []projection.Value{
		{Code: "TUV", Name: "Tuvalu", Population: 1},
		{Code: "CHN", Name: "China", Population: 100},
	}
	got := renderMap(values, 100, 80)
	if strings.Index(got, "China") > strings.Index(got, "Tuvalu") {
		t.Errorf("map list not sorted by population:\n%s", got)
	}
	if values[0].Code != "TUV" {
		t.Errorf("renderMap reordered its input")
	}
}

func TestRenderBarsFitWidth(t *testing.T) {
	got := renderBars([]projection.Value{{Code: "CHN", Name: "China", Population: 10}}, 60)
	for _, line := range strings.Split(got, "\n") {
		if w := ansi.PrintableRuneWidth(line); w > 60 {
			t.Errorf("line is %d cells wide, want <= 60", w)
		}
	}
}
