package parser

import (
	"regexp"
	"strings"
)

// Merge patterns, in precedence order. The range patterns only detect the shape of
// the token; split points are chosen by enumerating candidates so that every
// part is a valid dimension token.
var (
	volumeGluedPattern = regexp.MustCompile(`^(\d+)(0[.,]\d{3})$`)
	rangePairPattern   = regexp.MustCompile(`^(\d{1,4})-(\d{2,8})-(\d{1,4})$`)
	numberRangePattern = regexp.MustCompile(`^(\d{2,})-(\d{1,2})$`)
	rangeNumberPattern = regexp.MustCompile(`^(\d+(?:[.,]\d+)?)-(\d{2,5})$`)
)

// tokenSplitter reverses one concatenation pattern on a single token.
type tokenSplitter func(token string) ([]string, bool)

var tokenSplitters = []tokenSplitter{
	splitRangePair,
	splitNumberRange,
	splitRangeNumber,
}

// ResolveMerges reverses the known concatenation patterns in tokens and
// returns the resolved list. Parts replace the merged token in place and the
// resolver runs until no further split applies. pcs is the row's piece
// count, used when a merged dimension token is checked against the volume.
func ResolveMerges(tokens []string, pcs int) []string {
	out, _ := resolveMerges(tokens, pcs)
	return out
}

// resolveMerges is ResolveMerges that also marks the resolved tokens
// produced by partitioning a merged digit token.
func resolveMerges(tokens []string, pcs int) ([]string, []bool) {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	partitioned := make([]bool, len(out))
	for {
		i, parts, byPartition, ok := resolveOnce(out, pcs)
		if !ok {
			return out, partitioned
		}
		flags := make([]bool, len(parts))
		for j := range flags {
			flags[j] = byPartition
		}
		out = splice(out, i, parts)
		partitioned = splice(partitioned, i, flags)
	}
}

// resolveOnce applies the first split that matches and returns the index of
// the split token, its parts and whether the parts came from a partition.
func resolveOnce(tokens []string, pcs int) (int, []string, bool, bool) {
	if i, parts, ok := splitVolumeGlued(tokens); ok {
		return i, parts, false, true
	}
	for _, split := range tokenSplitters {
		for i, tok := range tokens {
			if parts, ok := split(tok); ok {
				return i, parts, false, true
			}
		}
	}
	if i, parts, ok := partitionMerged(tokens, pcs); ok {
		return i, parts, true, true
	}
	return 0, nil, false, false
}

func splice[T any](s []T, i int, parts []T) []T {
	out := make([]T, 0, len(s)+len(parts)-1)
	out = append(out, s[:i]...)
	out = append(out, parts...)
	return append(out, s[i+1:]...)
}

// volumeIndex returns the index of the last volume token, or -1.
func volumeIndex(tokens []string) int {
	for i := len(tokens) - 1; i >= 0; i-- {
		if IsVolume(tokens[i]) {
			return i
		}
	}
	return -1
}

// splitVolumeGlued separates a count glued to the volume ("80,026" -> "8",
// "0,026"). It only applies when the row has no standalone volume token.
func splitVolumeGlued(tokens []string) (int, []string, bool) {
	if volumeIndex(tokens) >= 0 {
		return 0, nil, false
	}
	for i := len(tokens) - 1; i >= 0; i-- {
		m := volumeGluedPattern.FindStringSubmatch(tokens[i])
		if m != nil {
			return i, []string{m[1], m[2]}, true
		}
	}
	return 0, nil, false
}

// validPart reports whether s is a digit run without a leading zero beyond a
// single "0".
func validPart(s string) bool {
	return isDigits(s) && (s == "0" || s[0] != '0')
}

// nonZeroPart is validPart without the bare "0".
func nonZeroPart(s string) bool {
	return isDigits(s) && s[0] != '0'
}

func balance(a, b string) int {
	d := len(a) - len(b)
	if d < 0 {
		return -d
	}
	return d
}

// bestSplit picks the lowest-cost candidate. A tie for the lowest cost
// leaves the token unsplit.
type splitCandidate struct {
	parts []string
	cost  int
}

func bestSplit(cands []splitCandidate) ([]string, bool) {
	if len(cands) == 0 {
		return nil, false
	}
	best, tie := 0, false
	for i := 1; i < len(cands); i++ {
		switch {
		case cands[i].cost < cands[best].cost:
			best, tie = i, false
		case cands[i].cost == cands[best].cost:
			tie = true
		}
	}
	if tie {
		return nil, false
	}
	return cands[best].parts, true
}

// splitRangePair separates two ranges glued on a digit ("10-2030-40" ->
// "10-20", "30-40").
func splitRangePair(token string) ([]string, bool) {
	m := rangePairPattern.FindStringSubmatch(token)
	if m == nil {
		return nil, false
	}
	a, mid, d := m[1], m[2], m[3]
	var cands []splitCandidate
	for cut := 1; cut < len(mid); cut++ {
		b, c := mid[:cut], mid[cut:]
		if len(b) > 4 || len(c) > 4 || !validPart(b) || !validPart(c) {
			continue
		}
		first, second := a+"-"+b, c+"-"+d
		if !IsLengthWidth(first) || !IsLengthWidth(second) {
			continue
		}
		cands = append(cands, splitCandidate{
			parts: []string{first, second},
			cost:  balance(a, b) + balance(c, d),
		})
	}
	return bestSplit(cands)
}

// splitNumberRange separates a number glued to the front of a range
// ("10020-25" -> "100", "20-25").
func splitNumberRange(token string) ([]string, bool) {
	if Classify(token).Dimension() {
		return nil, false
	}
	m := numberRangePattern.FindStringSubmatch(token)
	if m == nil {
		return nil, false
	}
	lead, hi := m[1], m[2]
	var cands []splitCandidate
	for cut := 1; cut < len(lead); cut++ {
		n, lo := lead[:cut], lead[cut:]
		if len(lo) > 3 || !nonZeroPart(n) || !validPart(lo) {
			continue
		}
		rng := lo + "-" + hi
		if !IsLengthWidth(n) || !IsLengthWidth(rng) {
			continue
		}
		cands = append(cands, splitCandidate{
			parts: []string{n, rng},
			cost:  balance(lo, hi),
		})
	}
	return bestSplit(cands)
}

// splitRangeNumber separates a thickness glued to the end of a range
// ("63,3-105" -> "63,3-10", "5"). A token that is already a valid range is
// split only when its upper bound has three digits and more digits than the
// integer part of its lower bound.
func splitRangeNumber(token string) ([]string, bool) {
	m := rangeNumberPattern.FindStringSubmatch(token)
	if m == nil {
		return nil, false
	}
	lo, tail := m[1], m[2]
	intPart, _, _ := strings.Cut(Normalize(lo), ".")
	if Classify(token).Dimension() && (len(tail) < 3 || len(tail) <= len(intPart)) {
		return nil, false
	}
	var cands []splitCandidate
	for cut := 1; cut < len(tail); cut++ {
		hi, t := tail[:cut], tail[cut:]
		if len(hi) > 3 || len(t) > 2 || !validPart(hi) || !nonZeroPart(t) {
			continue
		}
		rng := lo + "-" + hi
		if !IsLengthWidth(rng) || !IsThick(t) {
			continue
		}
		cands = append(cands, splitCandidate{
			parts: []string{rng, t},
			cost:  balance(intPart, hi),
		})
	}
	return bestSplit(cands)
}
