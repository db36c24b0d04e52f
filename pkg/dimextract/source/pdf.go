package source

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/PremnathSundarrajan/Convert-PDF-to-EXCEL-sub000/pkg/dimextract/models"
	"github.com/ledongthuc/pdf"
)

// glyphGapRatio is the horizontal gap, relative to the font size, above
// which two adjacent text runs are separated by a space.
const glyphGapRatio = 0.2

// ReadPDF reads the text rows of every page of a PDF document.
func ReadPDF(path string, params TableParams) (*models.Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var lines []string
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		rows, err := p.GetTextByRow()
		if err != nil {
			return nil, fmt.Errorf("failed to extract text of page %d: %w", i, err)
		}
		for _, row := range rows {
			if line := joinGlyphs(row.Content); strings.TrimSpace(line) != "" {
				lines = append(lines, line)
			}
		}
	}

	return BuildDocument(filepath.Base(path), lines, params), nil
}

// joinGlyphs concatenates the text runs of one row left to right, inserting
// a space wherever the gap to the previous run exceeds glyphGapRatio of the
// font size. Distinct columns are never merged without a space.
func joinGlyphs(texts []pdf.Text) string {
	sorted := make([]pdf.Text, len(texts))
	copy(sorted, texts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	var b strings.Builder
	for i, t := range sorted {
		if i > 0 {
			prev := sorted[i-1]
			size := t.FontSize
			if size <= 0 {
				size = 1
			}
			if t.X-(prev.X+prev.W) > glyphGapRatio*size {
				b.WriteByte(' ')
			}
		}
		b.WriteString(t.S)
	}
	return b.String()
}
