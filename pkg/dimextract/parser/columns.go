package parser

import "github.com/PremnathSundarrajan/Convert-PDF-to-EXCEL-sub000/pkg/dimextract/models"

// overlongLengthDigits is the digit count of a plain integer accepted as a
// provisional length in the positional layout, pending a volume repair.
const overlongLengthDigits = 4

// Assignment is the outcome of assigning candidate tokens to dimension columns.
type Assignment struct {
	models.Dimensions
	// Ambiguous lists the blank fields that an unassigned candidate could have filled.
	Ambiguous []string
	// Positional reports that the candidates were taken in document order.
	Positional bool
}

// Tail is the numeric part of a row handed to the column assigner.
type Tail struct {
	// Tokens are the numeric candidate tokens in document order.
	Tokens []string
	// Partitioned marks the tokens split out of a merged digit token. It is
	// either nil or as long as Tokens.
	Partitioned []bool
	// Volume is the row's volume token, empty when the row has none.
	Volume string
	// Pcs is the row's piece count.
	Pcs int
}

type candidate struct {
	token       string
	kind        Kind
	pos         int
	partitioned bool
	assigned    bool
}

// AssignColumns assigns the numeric candidate tokens of a row without a
// volume figure. See AssignTail.
func AssignColumns(tokens []string) Assignment {
	return AssignTail(Tail{Tokens: tokens, Pcs: 1})
}

// AssignTail assigns the numeric candidate tokens of a row to length, width
// and thickness. Tokens that match no dimension column are dropped.
//
// Three candidates shaped length, width, thickness (with the thickness not
// exceeding the width) are taken in document order unless two single-digit
// tokens contest the thickness, the volume figure contradicts them, or the
// length equals the width without both coming from a merged digit token.
// Otherwise a token valid both as length/width and as thickness is never
// assigned unless it is the only thickness candidate and follows the
// length/width-only tokens; two or more such tokens leave the thickness
// blank; one length/width-only token is the length, or the width when a
// thickness was found; two are ordered by value; equal values or three or
// more leave both blank.
func AssignTail(t Tail) Assignment {
	var cands []*candidate
	for i, tok := range t.Tokens {
		k := Classify(tok)
		if k.Dimension() || isOverlongLength(tok) {
			cands = append(cands, &candidate{
				token:       tok,
				kind:        k,
				pos:         i,
				partitioned: i < len(t.Partitioned) && t.Partitioned[i],
			})
		}
	}
	if d, ok := positional(cands, t.Volume, t.Pcs); ok {
		return Assignment{Dimensions: d, Positional: true}
	}

	var lwOnly, thickOnly, ambiguous []*candidate
	for _, c := range cands {
		switch {
		case c.kind.Ambiguous():
			ambiguous = append(ambiguous, c)
		case c.kind.Has(KindLengthWidth):
			lwOnly = append(lwOnly, c)
		case c.kind.Has(KindThick):
			thickOnly = append(thickOnly, c)
		}
	}

	var a Assignment
	switch {
	case len(thickOnly) == 1 && len(ambiguous) == 0:
		a.Thick = take(thickOnly[0])
	case len(thickOnly) == 0 && len(ambiguous) == 1 && len(lwOnly) > 0 &&
		ambiguous[0].pos > lwOnly[len(lwOnly)-1].pos:
		a.Thick = take(ambiguous[0])
	}

	switch len(lwOnly) {
	case 1:
		if a.Thick != "" {
			a.Width = take(lwOnly[0])
		} else {
			a.Length = take(lwOnly[0])
		}
	case 2:
		first, _ := FirstNumber(lwOnly[0].token)
		second, _ := FirstNumber(lwOnly[1].token)
		switch {
		case first > second:
			a.Length, a.Width = take(lwOnly[0]), take(lwOnly[1])
		case second > first:
			a.Length, a.Width = take(lwOnly[1]), take(lwOnly[0])
		}
	}

	a.Ambiguous = ambiguousFields(a.Dimensions, cands)
	return a
}

func take(c *candidate) string {
	c.assigned = true
	return c.token
}

func isOverlongLength(tok string) bool {
	return isDigits(tok) && len(tok) == overlongLengthDigits
}

// positional accepts exactly three candidates in length, width, thickness
// order. The length may be an overlong integer left for the volume repair.
func positional(cands []*candidate, volume string, pcs int) (models.Dimensions, bool) {
	if len(cands) != 3 {
		return models.Dimensions{}, false
	}
	l, w, t := cands[0], cands[1], cands[2]
	overlong := isOverlongLength(l.token)
	if !(l.kind.Has(KindLengthWidth) || overlong) ||
		!w.kind.Has(KindLengthWidth) || !t.kind.Has(KindThick) {
		return models.Dimensions{}, false
	}
	lv, _ := FirstNumber(l.token)
	wv, _ := FirstNumber(w.token)
	tv, _ := FirstNumber(t.token)
	if tv > wv || contestedThickness(cands) {
		return models.Dimensions{}, false
	}
	if lv == wv && !(l.partitioned && w.partitioned) {
		return models.Dimensions{}, false
	}

	d := models.Dimensions{Length: l.token, Width: w.token, Thick: t.token}
	if overlong || lv == 0 || wv == 0 || tv == 0 {
		return d, true
	}
	if target, ok := ParseVolume(volume); ok {
		if r, _ := CrossCheck(d, volume, pcs); !volumeOf(r, target, pcs) {
			return models.Dimensions{}, false
		}
	}
	return d, true
}

// contestedThickness reports whether two or more candidates are non-zero
// single-digit integers, each a plausible thickness.
func contestedThickness(cands []*candidate) bool {
	n := 0
	for _, c := range cands {
		if len(c.token) == 1 && isDigits(c.token) && c.token != "0" {
			n++
		}
	}
	return n > 1
}

// ambiguousFields lists, in column order, the blank fields that some
// unassigned candidate was structurally valid for.
func ambiguousFields(d models.Dimensions, cands []*candidate) []string {
	var lw, thick bool
	for _, c := range cands {
		if c.assigned {
			continue
		}
		lw = lw || c.kind.Has(KindLengthWidth)
		thick = thick || c.kind.Has(KindThick)
	}
	var out []string
	if lw && d.Length == "" {
		out = append(out, fieldLength.String())
	}
	if lw && d.Width == "" {
		out = append(out, fieldWidth.String())
	}
	if thick && d.Thick == "" {
		out = append(out, fieldThick.String())
	}
	return out
}
