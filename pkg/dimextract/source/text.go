package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/PremnathSundarrajan/Convert-PDF-to-EXCEL-sub000/pkg/dimextract/models"
)

// maxLineSize bounds a single line read from a text source.
const maxLineSize = 1024 * 1024

// ReadTextFile reads a plain text document from path.
func ReadTextFile(path string, params TableParams) (*models.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadText(f, filepath.Base(path), params)
}

// ReadText reads a plain text document, one table row per line.
func ReadText(r io.Reader, name string, params TableParams) (*models.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read text: %w", err)
	}

	return BuildDocument(name, lines, params), nil
}

// BuildDocument tokenizes lines, picks up order and client headers and keeps
// the rows of the detected table region.
func BuildDocument(name string, lines []string, params TableParams) *models.Document {
	doc := &models.Document{Name: name}

	tokenized := make([][]string, len(lines))
	for i, line := range lines {
		tokenized[i] = Tokenize(line)
	}

	for i, line := range lines {
		if IsDataRow(tokenized[i], params) {
			continue
		}
		key, value, ok := ParseHeader(line)
		if !ok {
			continue
		}
		switch {
		case key == HeaderOrder && doc.Order == "":
			doc.Order = value
		case key == HeaderClient && doc.Client == "":
			doc.Client = value
		}
	}

	start, end, ok := DetectTable(tokenized, params)
	if !ok {
		return doc
	}
	for i := start; i <= end; i++ {
		if len(tokenized[i]) == 0 {
			continue
		}
		if _, _, isHeader := ParseHeader(lines[i]); isHeader {
			continue
		}
		doc.Rows = append(doc.Rows, models.RowInput{
			Line:   i + 1,
			Tokens: tokenized[i],
		})
	}
	return doc
}
