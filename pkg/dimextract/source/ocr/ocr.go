// Package ocr reads dimension tables from scanned images.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr libtesseract-dev
package ocr

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/PremnathSundarrajan/Convert-PDF-to-EXCEL-sub000/pkg/dimextract/models"
	"github.com/PremnathSundarrajan/Convert-PDF-to-EXCEL-sub000/pkg/dimextract/source"
	"github.com/otiai10/gosseract/v2"
)

// Extensions lists the image file extensions this package reads.
var Extensions = []string{".png", ".jpg", ".jpeg", ".tif", ".tiff"}

// IsImage reports whether path has an image extension.
func IsImage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client for the given languages ("eng" when none).
// The client should be closed when no longer needed to release resources.
func New(languages ...string) (*Client, error) {
	client := gosseract.NewClient()
	if len(languages) > 0 {
		if err := client.SetLanguage(languages...); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to set language: %w", err)
		}
	}
	// Keep runs of spaces between columns so adjacent values stay separate.
	if err := client.SetVariable("preserve_interword_spaces", "1"); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to configure tesseract: %w", err)
	}
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// ReadImage recognizes the text of the image at path and reads it as a
// plain text document.
func (c *Client) ReadImage(path string, params source.TableParams) (*models.Document, error) {
	if err := c.client.SetImage(path); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	return source.ReadText(strings.NewReader(text), filepath.Base(path), params)
}
