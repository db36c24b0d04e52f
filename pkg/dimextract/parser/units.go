package parser

import (
	"strconv"
	"strings"
)

// CubicCentimetersPerCubicMeter converts cm³ (length × width × thickness in
// centimeters) to m³.
const CubicCentimetersPerCubicMeter = 1_000_000

// Volume tolerances used when comparing a computed volume to the anchor.
const (
	// VolumeRelativeTolerance applies to targets of at least SmallVolume.
	VolumeRelativeTolerance = 0.10
	// VolumeAbsoluteTolerance applies to targets below SmallVolume.
	VolumeAbsoluteTolerance = 0.002
	// SmallVolume is the threshold below which the absolute tolerance is used.
	SmallVolume = 0.01
)

// CubicMeters returns the volume in m³ of a piece measured in centimeters.
func CubicMeters(length, width, thick float64) float64 {
	return length * width * thick / CubicCentimetersPerCubicMeter
}

// VolumeMatches reports whether computed matches target for a single piece
// or for pcs pieces listed in bulk.
func VolumeMatches(computed, target float64, pcs int) bool {
	if target <= 0 || computed <= 0 {
		return false
	}
	if withinTolerance(computed, target) {
		return true
	}
	return pcs > 1 && withinTolerance(computed*float64(pcs), target)
}

func withinTolerance(v, target float64) bool {
	diff := v - target
	if diff < 0 {
		diff = -diff
	}
	if target < SmallVolume {
		return diff <= VolumeAbsoluteTolerance
	}
	return diff/target <= VolumeRelativeTolerance
}

// splitRange splits a normalized token into its range bounds. For a plain
// number hi is empty.
func splitRange(token string) (lo, hi string, isRange bool) {
	lo, hi, isRange = strings.Cut(token, "-")
	return lo, hi, isRange
}

// FirstNumber returns the numeric value of token, or of its lower bound
// when token is a range.
func FirstNumber(token string) (float64, bool) {
	lo, _, _ := splitRange(Normalize(token))
	v, err := strconv.ParseFloat(lo, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseVolume parses a volume token such as "0,026".
func ParseVolume(token string) (float64, bool) {
	if !IsVolume(token) {
		return 0, false
	}
	v, err := strconv.ParseFloat(Normalize(token), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
