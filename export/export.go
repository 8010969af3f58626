// Package export writes the dashboard's data and charts to files: the table
// as CSV or a workbook, the active chart as a PNG and the map as GeoJSON.
package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andareed/popviz/dashboard"
	"github.com/andareed/popviz/projection"
	"github.com/andareed/popviz/view"
)

// Format is an output file type.
type Format int

const (
	CSV Format = iota
	XLSX
	PNG
	GeoJSON
)

func (f Format) String() string {
	switch f {
	case CSV:
		return "csv"
	case XLSX:
		return "xlsx"
	case PNG:
		return "png"
	case GeoJSON:
		return "geojson"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFor picks a format from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return CSV, nil
	case ".xlsx":
		return XLSX, nil
	case ".png":
		return PNG, nil
	case ".geojson", ".json":
		return GeoJSON, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Request is everything an export may draw from.
type Request struct {
	Frame      dashboard.Frame
	Rows       []projection.TableRow
	Years      []int
	Boundaries []byte
	// MapValues is used for GeoJSON when the frame is not the map view.
	MapValues []projection.Value
}

// Write renders req into w in format f.
func Write(w io.Writer, f Format, req Request) error {
	switch f {
	case CSV:
		return TableCSV(w, req.Rows, req.Years)
	case XLSX:
		return TableXLSX(w, req.Rows, req.Years)
	case PNG:
		return ChartPNG(w, req.Frame)
	case GeoJSON:
		values := req.MapValues
		if req.Frame.Kind == view.Map {
			values = req.Frame.Map
		}
		if len(values) == 0 {
			return ErrNothingToRender
		}
		b, err := MapGeoJSON(values, req.Boundaries)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}
	return ErrUnknownFormat
}

// ToFile renders req to path, choosing the format by extension. Nothing is
// written to disk if rendering fails.
func ToFile(path string, req Request) (Format, error) {
	f, err := FormatFor(path)
	if err != nil {
		return 0, err
	}
	var buf bytes.Buffer
	if err := Write(&buf, f, req); err != nil {
		return f, fmt.Errorf("export %s: %w", f, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return f, fmt.Errorf("export %s: %w", f, err)
	}
	return f, nil
}
