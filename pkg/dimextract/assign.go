package dimextract

import (
	"fmt"
	"strings"

	"github.com/PremnathSundarrajan/Convert-PDF-to-EXCEL-sub000/pkg/dimextract/models"
	"github.com/PremnathSundarrajan/Convert-PDF-to-EXCEL-sub000/pkg/dimextract/parser"
)

// AssignRow recovers the structured row from one row's tokens.
//
// It fails with ErrInsufficientTokens when fewer than MinTokens non-blank
// tokens are supplied and with ErrMissingVolume when no volume figure is
// found. Dimensions that cannot be assigned without guessing are left blank;
// in strict mode a blank length, width or thickness fails with a
// *DimensionError instead.
func AssignRow(tokens []string, order, client string, opts Options) (models.Row, error) {
	var clean []string
	for _, tok := range tokens {
		if tok = strings.TrimSpace(tok); tok != "" {
			clean = append(clean, tok)
		}
	}
	if len(clean) < MinTokens {
		return models.Row{}, fmt.Errorf("%w: got %d, need %d", ErrInsufficientTokens, len(clean), MinTokens)
	}

	row := parser.BuildRow(clean)
	if row.M3 == "" {
		return models.Row{}, ErrMissingVolume
	}
	row.Order = order
	row.Client = client

	if opts.IsStrict() {
		for _, f := range []struct {
			name  string
			value string
		}{
			{"length", row.Length},
			{"width", row.Width},
			{"thick", row.Thick},
		} {
			if f.value == "" {
				return models.Row{}, &DimensionError{Field: f.name}
			}
		}
	}

	return row, nil
}
