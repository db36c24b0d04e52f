// Package source reads document text and splits it into table row tokens.
package source

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var dashReplacer = strings.NewReplacer("–", "-", "—", "-", "−", "-")

// rangeBound matches a token that can sit on either side of a spaced range
// dash ("63,3 - 10").
var rangeBound = regexp.MustCompile(`^\d+(?:[.,]\d+)?$`)

// Tokenize splits one line of document text into whitespace-delimited
// tokens. The line is NFKC-normalized, dashes are unified, column rules
// ("|") are dropped, and ranges written with a spaced dash are joined into
// a single token.
func Tokenize(line string) []string {
	line = norm.NFKC.String(line)
	line = dashReplacer.Replace(line)

	var fields []string
	for _, f := range strings.Fields(line) {
		if strings.Trim(f, "|") == "" {
			continue
		}
		fields = append(fields, f)
	}
	return joinSpacedRanges(fields)
}

// joinSpacedRanges joins "A", "-", "B" (and "A-", "B" or "A", "-B") into "A-B"
// when both bounds are numbers.
func joinSpacedRanges(fields []string) []string {
	out := make([]string, 0, len(fields))
	for i := 0; i < len(fields); i++ {
		f := fields[i]
		switch {
		case i+2 < len(fields) && fields[i+1] == "-" && rangeBound.MatchString(f) && rangeBound.MatchString(fields[i+2]):
			out = append(out, f+"-"+fields[i+2])
			i += 2
		case i+1 < len(fields) && strings.HasSuffix(f, "-") && rangeBound.MatchString(strings.TrimSuffix(f, "-")) && rangeBound.MatchString(fields[i+1]):
			out = append(out, f+fields[i+1])
			i++
		case i+1 < len(fields) && strings.HasPrefix(fields[i+1], "-") && rangeBound.MatchString(f) && rangeBound.MatchString(strings.TrimPrefix(fields[i+1], "-")):
			out = append(out, f+fields[i+1])
			i++
		default:
			out = append(out, f)
		}
	}
	return out
}
