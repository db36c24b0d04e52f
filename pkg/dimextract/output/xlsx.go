package output

import (
	"strconv"
	"strings"

	"github.com/PremnathSundarrajan/Convert-PDF-to-EXCEL-sub000/pkg/dimextract/models"
	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the name of the sheet holding the structured rows.
const DefaultSheet = "Dimensions"

// SkippedSheet is the name of the sheet listing rejected rows.
const SkippedSheet = "Skipped"

// Header is the column header row of the dimensions sheet.
var Header = []string{"Order", "Client", "Pcs", "Item", "Material", "Length", "Width", "Thick", "m3"}

var skippedHeader = []string{"Document", "Line", "Tokens", "Reason"}

// WriteXLSX writes results to a new workbook at path.
func WriteXLSX(path string, results []*models.Result, sheet string) error {
	f, err := NewWorkbook(results, sheet)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.SaveAs(path)
}

// NewWorkbook builds a workbook with one row per structured row, followed by
// a sheet of rejected rows when there are any. An empty sheet name selects
// DefaultSheet.
func NewWorkbook(results []*models.Result, sheet string) (*excelize.File, error) {
	if sheet == "" {
		sheet = DefaultSheet
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}

	if err := writeRow(f, sheet, 1, toCells(Header)); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		f.Close()
		return nil, err
	}

	rowNum := 2
	var skipped [][]interface{}
	for _, res := range results {
		for _, row := range res.Rows {
			if err := writeRow(f, sheet, rowNum, rowCells(row)); err != nil {
				f.Close()
				return nil, err
			}
			rowNum++
		}
		for _, s := range res.Skipped {
			skipped = append(skipped, []interface{}{res.Name, s.Line, strings.Join(s.Tokens, " "), s.Reason})
		}
	}

	if len(skipped) > 0 {
		if _, err := f.NewSheet(SkippedSheet); err != nil {
			f.Close()
			return nil, err
		}
		if err := writeRow(f, SkippedSheet, 1, toCells(skippedHeader)); err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetRowStyle(SkippedSheet, 1, 1, bold); err != nil {
			f.Close()
			return nil, err
		}
		for i, cells := range skipped {
			if err := writeRow(f, SkippedSheet, i+2, cells); err != nil {
				f.Close()
				return nil, err
			}
		}
	}

	return f, nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &cells)
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}

// rowCells lays out a structured row in Header order. Numeric columns are
// written as numbers; ranges and text stay strings.
func rowCells(row models.Row) []interface{} {
	return []interface{}{
		row.Order,
		row.Client,
		parseValue(row.Pcs),
		row.Item,
		row.Material,
		parseValue(row.Length),
		parseValue(row.Width),
		parseValue(row.Thick),
		parseValue(row.M3),
	}
}

// parseValue returns a rendered field as int64 or float64 when it is a
// plain number, and unchanged otherwise.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
