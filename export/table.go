package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/andareed/popviz/projection"
)

// SheetName is the worksheet written by TableXLSX.
const SheetName = "Population"

func tableHeader(years []int) []string {
	header := []string{"code", "name"}
	for _, y := range years {
		header = append(header, strconv.Itoa(y))
	}
	return header
}

// TableCSV writes one row per country with a column per year. Missing years
// are left blank.
func TableCSV(w io.Writer, rows []projection.TableRow, years []int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tableHeader(years)); err != nil {
		return err
	}
	for _, row := range rows {
		rec := []string{row.Code, row.Name}
		for _, y := range years {
			if v, ok := row.ByYear[y]; ok {
				rec = append(rec, strconv.FormatInt(v, 10))
			} else {
				rec = append(rec, "")
			}
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// TableXLSX writes the same layout as TableCSV into a workbook.
func TableXLSX(w io.Writer, rows []projection.TableRow, years []int) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	for col, title := range tableHeader(years) {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(SheetName, cell, title); err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
	}
	for i, row := range rows {
		r := i + 2
		codeCell, _ := excelize.CoordinatesToCellName(1, r)
		nameCell, _ := excelize.CoordinatesToCellName(2, r)
		f.SetCellValue(SheetName, codeCell, row.Code)
		f.SetCellValue(SheetName, nameCell, row.Name)
		for j, y := range years {
			v, ok := row.ByYear[y]
			if !ok {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(j+3, r)
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return fmt.Errorf("xlsx: %w", err)
			}
		}
	}
	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		XSplit:      2,
		YSplit:      1,
		TopLeftCell: "C2",
		ActivePane:  "bottomRight",
	}); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	return f.Write(w)
}
