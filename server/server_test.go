package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/andareed/popviz/registry"
)

const sampleCSV = `code,name,year,population
USA,United States,2000,282162411
USA,United States,2001,284968955
IND,India,2000,1056575549
IND,India,2001,1075000085
TUV,Tuvalu,2000,9419
ZZZ,Nowhere,,
AAA,Also Tuvalu,2000,9419
`

func sampleDataset(t *testing.T) *registry.Dataset {
	t.Helper()
	ds, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	return ds
}

func TestReadCSVRanksByLatestPopulation(t *testing.T) {
	ds := sampleDataset(t)

	var got []string
	for _, c := range ds.Countries {
		r := 0
		if c.Rank != nil {
			r = *c.Rank
		}
		got = append(got, c.Code+":"+string(rune('0'+r)))
	}
	// Ties on population break by code; countries without data are unranked
	// and last.
	want := []string{"IND:1", "USA:2", "AAA:3", "TUV:4", "ZZZ:0"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rank order (-want +got):\n%s", diff)
	}
	if c, _ := ds.Lookup("USA"); c.LatestPopulation == nil || *c.LatestPopulation != 284968955 {
		t.Errorf("USA latest = %v", c.LatestPopulation)
	}
}

func TestReadCSVErrors(t *testing.T) {
	for _, test := range []struct {
		description string
		input       string
		wantErr     error
	}{
		{"missing code", "code,name,year,population\n,Nowhere,2000,1\n", registry.ErrMalformedRecord},
		{"bad year", "code,name,year,population\nUSA,US,twenty,1\n", registry.ErrMalformedRecord},
		{"duplicate year", "code,name,year,population\nUSA,US,2000,1\nUSA,US,2000,2\n", registry.ErrDuplicateYear},
	} {
		t.Run(test.description, func(t *testing.T) {
			if _, err := ReadCSV(strings.NewReader(test.input)); !errors.Is(err, test.wantErr) {
				t.Errorf("err = %v, want %v", err, test.wantErr)
			}
		})
	}
	if _, err := ReadCSV(strings.NewReader("iso,label,yr,pop\n")); err == nil {
		t.Errorf("wrong header should fail")
	}
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestDataUnavailableWhileLoading(t *testing.T) {
	s := New(io.Discard)
	if rec := get(t, s, "/api/data"); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("GET /api/data before load = %d", rec.Code)
	}
	rec := get(t, s, "/api/health")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"loading"`) {
		t.Errorf("health before load = %d %s", rec.Code, rec.Body.String())
	}
}

func TestDataRoundTrip(t *testing.T) {
	s := New(io.Discard)
	s.SetData(sampleDataset(t))

	rec := get(t, s, "/api/data")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/data = %d", rec.Code)
	}
	ds, err := registry.Decode(rec.Body)
	if err != nil {
		t.Fatalf("decode served payload: %v", err)
	}
	if len(ds.Countries) != 5 {
		t.Errorf("served %d countries", len(ds.Countries))
	}
	if v, ok := ds.Value("IND", 2001); !ok || v != 1075000085 {
		t.Errorf("IND 2001 = %d, %v", v, ok)
	}
}

func TestCountriesPagination(t *testing.T) {
	s := New(io.Discard)
	s.SetData(sampleDataset(t))

	rec := get(t, s, "/api/countries?limit=2&offset=1")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/countries = %d", rec.Code)
	}
	var body struct {
		Data []struct {
			Code string `json:"code"`
		} `json:"data"`
		Total  int `json:"total"`
		Limit  int `json:"limit"`
		Offset int `json:"offset"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Total != 5 || body.Limit != 2 || body.Offset != 1 {
		t.Errorf("page header = %+v", body)
	}
	var codes []string
	for _, d := range body.Data {
		codes = append(codes, d.Code)
	}
	if diff := cmp.Diff([]string{"USA", "AAA"}, codes); diff != "" {
		t.Errorf("page (-want +got):\n%s", diff)
	}

	rec = get(t, s, "/api/countries?offset=99")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Errorf("offset past end = %d %s", rec.Code, rec.Body.String())
	}
}

func TestRunLoadsInBackground(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pop.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	s := New(io.Discard)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, "127.0.0.1:0", Load(path)) }()

	deadline := time.Now().Add(5 * time.Second)
	for {
		if rec := get(t, s, "/api/data"); rec.Code == http.StatusOK {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("data never became available")
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}

func TestRunLoadFailure(t *testing.T) {
	s := New(io.Discard)
	boom := errors.New("boom")
	err := s.Run(context.Background(), "127.0.0.1:0", func(context.Context) (*registry.Dataset, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("Run err = %v, want boom", err)
	}
	if rec := get(t, s, "/api/health"); !strings.Contains(rec.Body.String(), `"error"`) {
		t.Errorf("health after failure = %s", rec.Body.String())
	}
}
