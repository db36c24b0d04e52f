package source

import "github.com/PremnathSundarrajan/Convert-PDF-to-EXCEL-sub000/pkg/dimextract/parser"

// TableParams holds parameters for table-region detection.
type TableParams struct {
	// DensityMin is the minimum share of data rows within the region.
	DensityMin float64
	// MinTokens is the minimum number of tokens a data row carries.
	MinTokens int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableParams {
	return TableParams{
		DensityMin: 0.3,
		MinTokens:  3,
	}
}

// IsDataRow reports whether tokens look like a dimension table row: enough
// tokens and at least one volume figure, possibly glued to a count.
func IsDataRow(tokens []string, params TableParams) bool {
	if len(tokens) < params.MinTokens {
		return false
	}
	for _, tok := range tokens {
		if parser.IsVolume(tok) || hasGluedVolume(tok) {
			return true
		}
	}
	return false
}

func hasGluedVolume(tok string) bool {
	parts := parser.ResolveMerges([]string{tok}, 1)
	return len(parts) > 1 && parser.IsVolume(parts[len(parts)-1])
}

// DetectTable detects the table region among tokenized lines.
// It returns the first and last line index (inclusive) of the region.
func DetectTable(lines [][]string, params TableParams) (start, end int, ok bool) {
	start, end = findDataBounds(lines, params)
	if start < 0 {
		return 0, 0, false
	}

	nonEmpty := 0
	dataRows := countDataRows(lines, start, end, params)
	for i := start; i <= end; i++ {
		if len(lines[i]) > 0 {
			nonEmpty++
		}
	}

	density := float64(dataRows) / float64(nonEmpty)
	if density < params.DensityMin {
		return 0, 0, false
	}
	return start, end, true
}

// findDataBounds finds the first and last data row.
func findDataBounds(lines [][]string, params TableParams) (start, end int) {
	start, end = -1, -1
	for i, tokens := range lines {
		if !IsDataRow(tokens, params) {
			continue
		}
		if start < 0 {
			start = i
		}
		end = i
	}
	return
}

// countDataRows counts data rows within bounds.
func countDataRows(lines [][]string, start, end int, params TableParams) int {
	count := 0
	for i := start; i <= end && i < len(lines); i++ {
		if IsDataRow(lines[i], params) {
			count++
		}
	}
	return count
}
