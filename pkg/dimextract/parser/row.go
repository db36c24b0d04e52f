package parser

import (
	"strconv"
	"strings"

	"github.com/PremnathSundarrajan/Convert-PDF-to-EXCEL-sub000/pkg/dimextract/models"
)

// DefaultPcs is the piece count used when a row lists none.
const DefaultPcs = "1"

// modifiers are orientation words that belong to the item name.
var modifiers = map[string]bool{
	"left":  true,
	"right": true,
	"front": true,
	"back":  true,
}

// IsModifier reports whether token is an orientation modifier.
func IsModifier(token string) bool {
	return modifiers[strings.ToLower(strings.TrimSpace(token))]
}

// BuildRow assembles a structured row from one row's tokens. Order and
// client are left for the caller. The volume anchor is not required here:
// M3 is empty when the row has none. Every numeric field either satisfies its
// column constraint or is empty.
func BuildRow(tokens []string) models.Row {
	var clean []string
	for _, tok := range tokens {
		if tok = strings.TrimSpace(tok); tok != "" {
			clean = append(clean, tok)
		}
	}

	row := models.Row{Pcs: DefaultPcs}
	textStart := len(clean)
	for i, tok := range clean {
		if IsText(tok) {
			textStart = i
			break
		}
	}
	pcsIdx := -1
	for i := 0; i < textStart; i++ {
		if IsPcs(clean[i]) {
			pcsIdx = i
			row.Pcs = clean[i]
			break
		}
	}

	textEnd := textStart
	for textEnd < len(clean) && IsText(clean[textEnd]) {
		textEnd++
	}
	row.Item, row.Material = splitText(clean[textStart:textEnd])

	var tail []string
	if textStart < len(clean) {
		tail = append(tail, clean[textEnd:]...)
	} else {
		for i, tok := range clean {
			if i != pcsIdx {
				tail = append(tail, tok)
			}
		}
	}

	pcs, _ := strconv.Atoi(row.Pcs)
	tail, partitioned := resolveMerges(tail, pcs)

	numeric := Tail{Pcs: pcs}
	vi := volumeIndex(tail)
	for i, tok := range tail {
		switch {
		case i == vi:
			numeric.Volume = tok
		case !IsText(tok):
			numeric.Tokens = append(numeric.Tokens, tok)
			numeric.Partitioned = append(numeric.Partitioned, partitioned[i])
		}
	}
	volume := numeric.Volume

	a := AssignTail(numeric)
	dims, repair := CrossCheck(a.Dimensions, volume, pcs)

	row.Length = renderField(dims.Length, IsLengthWidth)
	row.Width = renderField(dims.Width, IsLengthWidth)
	row.Thick = renderField(dims.Thick, IsThick)
	row.M3 = renderVolume(volume)
	row.Ambiguous = stillBlank(a.Ambiguous, dims)
	row.Repair = string(repair)
	return row
}

// stillBlank keeps the ambiguous field names whose field a repair did not fill.
func stillBlank(names []string, d models.Dimensions) []string {
	var out []string
	for _, name := range names {
		var v string
		switch name {
		case fieldLength.String():
			v = d.Length
		case fieldWidth.String():
			v = d.Width
		case fieldThick.String():
			v = d.Thick
		}
		if v == "" {
			out = append(out, name)
		}
	}
	return out
}

// splitText separates the item name (first text token plus orientation
// modifiers) from the material (remaining text tokens).
func splitText(text []string) (item, material string) {
	if len(text) == 0 {
		return "", ""
	}
	itemParts := []string{text[0]}
	var materialParts []string
	for _, tok := range text[1:] {
		if IsModifier(tok) {
			itemParts = append(itemParts, tok)
		} else {
			materialParts = append(materialParts, tok)
		}
	}
	return strings.Join(itemParts, " "), strings.Join(materialParts, " ")
}

// RenderNumber normalizes a numeric token for output: dots as decimal
// separators and ranges rendered "A - B".
func RenderNumber(token string) string {
	n := Normalize(token)
	if lo, hi, ok := splitRange(n); ok {
		return lo + " - " + hi
	}
	return n
}

// renderField renders token when it satisfies its column constraint and
// returns the empty string otherwise. A bare zero is treated as empty.
func renderField(token string, validFn func(string) bool) string {
	if token == "" || !validFn(token) {
		return ""
	}
	if v, ok := FirstNumber(token); ok && v == 0 && !strings.Contains(token, "-") {
		return ""
	}
	return RenderNumber(token)
}

func renderVolume(token string) string {
	if !IsVolume(token) {
		return ""
	}
	return Normalize(token)
}
