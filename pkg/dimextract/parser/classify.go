// Package parser recovers dimension columns from OCR-quality table row tokens.
//
// The pipeline for one row is: merge resolution, per-token classification,
// column assignment and an optional volume cross-check. Every function in
// this package is pure and safe for concurrent use.
package parser

import (
	"regexp"
	"strings"
	"unicode"
)

// Kind is a bit set of the columns a token structurally matches.
type Kind uint8

const (
	// KindPcs marks a 1-2 digit piece count.
	KindPcs Kind = 1 << iota
	// KindLengthWidth marks a length or width value.
	KindLengthWidth
	// KindThick marks a thickness value.
	KindThick
	// KindVolume marks a cubic meter figure.
	KindVolume
	// KindText marks a token containing a letter.
	KindText
)

// KindInvalid is the empty set: the token matches no column.
const KindInvalid Kind = 0

var kindNames = []struct {
	kind Kind
	name string
}{
	{KindPcs, "pcs"},
	{KindLengthWidth, "lw"},
	{KindThick, "thick"},
	{KindVolume, "volume"},
	{KindText, "text"},
}

// Has reports whether k contains every kind in other.
func (k Kind) Has(other Kind) bool {
	return other != 0 && k&other == other
}

// Ambiguous reports whether the token is valid both as length/width and as thickness.
func (k Kind) Ambiguous() bool {
	return k.Has(KindLengthWidth | KindThick)
}

// Dimension reports whether the token can fill any dimension column.
func (k Kind) Dimension() bool {
	return k&(KindLengthWidth|KindThick) != 0
}

func (k Kind) String() string {
	if k == KindInvalid {
		return "invalid"
	}
	var names []string
	for _, kn := range kindNames {
		if k.Has(kn.kind) {
			names = append(names, kn.name)
		}
	}
	return strings.Join(names, "|")
}

var (
	pcsPattern    = regexp.MustCompile(`^[1-9]\d?$`)
	lwPattern     = regexp.MustCompile(`^\d{1,3}(\.\d{1,3})?(-\d{1,3}(\.\d{1,3})?)?$`)
	thickPattern  = regexp.MustCompile(`^\d{1,2}(-\d{1,2})?$`)
	volumePattern = regexp.MustCompile(`^0[.,]\d+$`)
	digitsPattern = regexp.MustCompile(`^\d+$`)
)

var dashReplacer = strings.NewReplacer("–", "-", "—", "-", "−", "-")

// Normalize replaces comma decimal separators with dots and unifies dash
// characters to '-'.
func Normalize(token string) string {
	token = strings.TrimSpace(token)
	token = dashReplacer.Replace(token)
	return strings.ReplaceAll(token, ",", ".")
}

// IsPcs reports whether token is a piece count.
func IsPcs(token string) bool {
	return pcsPattern.MatchString(strings.TrimSpace(token))
}

// IsLengthWidth reports whether token is a valid length or width value:
// 1-3 digits with up to 3 fractional digits, or a range of two such numbers.
func IsLengthWidth(token string) bool {
	return lwPattern.MatchString(Normalize(token))
}

// IsThick reports whether token is a valid thickness: 1-2 digits or a range
// of two such numbers.
func IsThick(token string) bool {
	return thickPattern.MatchString(Normalize(token))
}

// IsVolume reports whether token is a cubic meter figure such as "0,026".
func IsVolume(token string) bool {
	return volumePattern.MatchString(strings.TrimSpace(token))
}

// IsText reports whether token contains an alphabetic character.
func IsText(token string) bool {
	for _, r := range token {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	return digitsPattern.MatchString(s)
}

// Classify returns the set of columns token structurally matches.
func Classify(token string) Kind {
	var k Kind
	if IsText(token) {
		return KindText
	}
	if IsPcs(token) {
		k |= KindPcs
	}
	if IsLengthWidth(token) {
		k |= KindLengthWidth
	}
	if IsThick(token) {
		k |= KindThick
	}
	if IsVolume(token) {
		k |= KindVolume
	}
	return k
}
