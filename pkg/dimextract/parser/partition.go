package parser

import "strings"

const (
	mergedMinDigits = 4
	mergedMaxDigits = 6

	// Partitions whose length/width ratio falls outside this band are implausible.
	minSideRatio = 0.05
	maxSideRatio = 20.0
)

// Partition scoring weights. Only their ordering matters.
const (
	scoreOrientation = 2
	scoreThinner     = 1
	scoreRatio       = 1
	scoreDigits      = 1
	scoreEqualSplit  = 1
	scoreVolume      = 5
)

// field identifies a dimension column.
type field int

const (
	fieldLength field = iota
	fieldWidth
	fieldThick
)

func (f field) String() string {
	switch f {
	case fieldLength:
		return "length"
	case fieldWidth:
		return "width"
	default:
		return "thick"
	}
}

func (f field) maxDigits() int {
	if f == fieldThick {
		return 2
	}
	return 3
}

// partitionMerged finds a single all-digit token of 4-6 digits holding glued
// dimension values and splits it into the columns the other dimension tokens
// leave uncovered: all three when it stands alone, width and thickness when
// a length precedes it, length and width when a thickness follows it. It
// requires the volume anchor and picks the unique best-scoring partition.
func partitionMerged(tokens []string, pcs int) (int, []string, bool) {
	vi := volumeIndex(tokens)
	if vi < 0 {
		return 0, nil, false
	}
	target, _ := ParseVolume(tokens[vi])

	merged := -1
	var others []int
	for i, tok := range tokens {
		if i == vi {
			continue
		}
		switch {
		case isMergedDigits(tok):
			if merged >= 0 {
				return 0, nil, false
			}
			merged = i
		case Classify(tok).Dimension():
			others = append(others, i)
		}
	}
	if merged < 0 || merged > vi || len(others) > 1 {
		return 0, nil, false
	}

	var dims [3]string
	fields := []field{fieldLength, fieldWidth, fieldThick}
	if len(others) == 1 {
		known := tokens[others[0]]
		if others[0] < merged {
			dims[fieldLength] = known
			fields = []field{fieldWidth, fieldThick}
		} else {
			dims[fieldThick] = known
			fields = []field{fieldLength, fieldWidth}
		}
	}

	var (
		bestParts []string
		bestScore int
		tie       bool
	)
	for _, parts := range partitions(tokens[merged], fields) {
		for j, f := range fields {
			dims[f] = parts[j]
		}
		score, ok := scorePartition(dims, parts, target, pcs)
		if !ok {
			continue
		}
		switch {
		case bestParts == nil || score > bestScore:
			bestParts, bestScore, tie = parts, score, false
		case score == bestScore:
			tie = true
		}
	}
	if bestParts == nil || tie || bestScore <= 0 {
		return 0, nil, false
	}
	return merged, bestParts, true
}

func isMergedDigits(tok string) bool {
	return isDigits(tok) && len(tok) >= mergedMinDigits && len(tok) <= mergedMaxDigits
}

// partitions enumerates every way to cut digits into len(fields) contiguous
// parts that respect each field's digit limit and carry no leading zero.
func partitions(digits string, fields []field) [][]string {
	if len(fields) == 0 {
		if digits == "" {
			return [][]string{nil}
		}
		return nil
	}
	var out [][]string
	limit := fields[0].maxDigits()
	for n := 1; n <= limit && n <= len(digits); n++ {
		head := digits[:n]
		if !nonZeroPart(head) {
			continue
		}
		for _, rest := range partitions(digits[n:], fields[1:]) {
			out = append(out, append([]string{head}, rest...))
		}
	}
	return out
}

// scorePartition rates a candidate length/width/thickness triple. It rejects
// partitions where the thickness exceeds the width or the length is smaller
// than the width by an extreme ratio.
func scorePartition(dims [3]string, parts []string, target float64, pcs int) (int, bool) {
	l, okL := FirstNumber(dims[fieldLength])
	w, okW := FirstNumber(dims[fieldWidth])
	t, okT := FirstNumber(dims[fieldThick])
	if !okL || !okW || !okT || w == 0 {
		return 0, false
	}
	ratio := l / w
	if t > w || (l < w && ratio < minSideRatio) {
		return 0, false
	}

	score := 0
	if l >= w {
		score += scoreOrientation
	}
	if t <= w {
		score += scoreThinner
	}
	if ratio >= minSideRatio && ratio <= maxSideRatio {
		score += scoreRatio
	}
	if n := intDigits(dims[fieldLength]); n >= 2 && n <= 3 {
		score += scoreDigits
	}
	if n := intDigits(dims[fieldWidth]); n >= 2 && n <= 3 {
		score += scoreDigits
	}
	if equalLengths(parts) {
		score += scoreEqualSplit
	}
	if VolumeMatches(CubicMeters(l, w, t), target, pcs) {
		score += scoreVolume
	}
	return score, true
}

// intDigits counts the integer digits of the token's first number.
func intDigits(token string) int {
	lo, _, _ := splitRange(Normalize(token))
	whole, _, _ := strings.Cut(lo, ".")
	return len(whole)
}

func equalLengths(parts []string) bool {
	for _, p := range parts[1:] {
		if len(p) != len(parts[0]) {
			return false
		}
	}
	return true
}
