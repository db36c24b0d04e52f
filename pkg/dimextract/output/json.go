// Package output renders extraction results for downstream consumers.
package output

import (
	"encoding/json"

	"github.com/PremnathSundarrajan/Convert-PDF-to-EXCEL-sub000/pkg/dimextract/models"
)

// ToJSON serializes extraction results to JSON.
func ToJSON(results []*models.Result, pretty bool) ([]byte, error) {
	return marshal(results, pretty)
}

// RowToJSON serializes a single structured row to JSON.
func RowToJSON(row *models.Row, pretty bool) ([]byte, error) {
	return marshal(row, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
