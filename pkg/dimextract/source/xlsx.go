package source

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/PremnathSundarrajan/Convert-PDF-to-EXCEL-sub000/pkg/dimextract/models"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads rows of an existing workbook sheet as document text, one
// table row per sheet row with cells separated by spaces. An empty sheet
// name selects the first sheet.
func ReadXLSX(path, sheet string, params TableParams) (*models.Document, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("no sheets found")
		}
		sheet = sheets[0]
	}

	lines, err := ExtractLines(f, sheet)
	if err != nil {
		return nil, err
	}

	return BuildDocument(filepath.Base(path), lines, params), nil
}

// ExtractLines returns one text line per sheet row, joining the non-empty
// cells with spaces. Empty rows yield empty lines so line numbers match
// sheet row numbers.
func ExtractLines(f *excelize.File, sheetName string) ([]string, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	lines := make([]string, len(rows))
	for rowIdx, row := range rows {
		var cells []string
		for _, cellValue := range row {
			if cellValue = strings.TrimSpace(cellValue); cellValue != "" {
				cells = append(cells, cellValue)
			}
		}
		lines[rowIdx] = strings.Join(cells, " ")
	}
	return lines, nil
}
