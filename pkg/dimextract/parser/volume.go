package parser

import "github.com/PremnathSundarrajan/Convert-PDF-to-EXCEL-sub000/pkg/dimextract/models"

// Repair names a digit-shift applied by CrossCheck.
type Repair string

const (
	// RepairNone means the dimensions were returned unmodified.
	RepairNone Repair = ""
	// RepairWidthToNewThick moves the last 1-2 width digits into a missing thickness.
	RepairWidthToNewThick Repair = "width-to-new-thick"
	// RepairLengthToWidth moves the last length digit onto the front of the width.
	RepairLengthToWidth Repair = "length-to-width"
	// RepairWidthToLength moves the first width digit onto the end of the length.
	RepairWidthToLength Repair = "width-to-length"
	// RepairWidthToThick moves the last width digit onto the front of the thickness.
	RepairWidthToThick Repair = "width-to-thick"
	// RepairThickToWidth moves the first thickness digit onto the end of the width.
	RepairThickToWidth Repair = "thick-to-width"
	// RepairForcedLengthShift moves the last digit of an overlong length to the
	// width without volume confirmation.
	RepairForcedLengthShift Repair = "forced-length-shift"
)

// repairFunc proposes repaired dimensions, or false when it does not apply.
type repairFunc func(d models.Dimensions) (models.Dimensions, bool)

var repairs = []struct {
	name Repair
	fn   repairFunc
}{
	{RepairLengthToWidth, lengthToWidth},
	{RepairWidthToLength, widthToLength},
	{RepairWidthToThick, widthToThick},
	{RepairThickToWidth, thickToWidth},
}

// CrossCheck validates length × width × thickness against the volume token
// and, on mismatch, tries a fixed sequence of digit shifts between adjacent
// fields, returning the first whose volume matches. Digits are only moved,
// never invented. Only plain integer fields are shifted.
//
// When the thickness is missing only the width-to-new-thick shift is tried.
// A length that still exceeds three digits after every attempt has its last
// digit forced onto the width.
func CrossCheck(d models.Dimensions, volume string, pcs int) (models.Dimensions, Repair) {
	target, ok := ParseVolume(volume)
	if !ok || d.Length == "" || d.Width == "" {
		return d, RepairNone
	}

	if d.Thick == "" {
		for _, n := range []int{1, 2} {
			if r, ok := widthToNewThick(d, n); ok && volumeOf(r, target, pcs) {
				return r, RepairWidthToNewThick
			}
		}
		return forceLengthShift(d)
	}

	if volumeOf(d, target, pcs) {
		return d, RepairNone
	}
	for _, r := range repairs {
		if cand, ok := r.fn(d); ok && volumeOf(cand, target, pcs) {
			return cand, r.name
		}
	}
	return forceLengthShift(d)
}

func volumeOf(d models.Dimensions, target float64, pcs int) bool {
	l, okL := FirstNumber(d.Length)
	w, okW := FirstNumber(d.Width)
	t, okT := FirstNumber(d.Thick)
	if !okL || !okW || !okT {
		return false
	}
	return VolumeMatches(CubicMeters(l, w, t), target, pcs)
}

// valid reports whether every field satisfies its column constraint.
func valid(d models.Dimensions) bool {
	return IsLengthWidth(d.Length) && IsLengthWidth(d.Width) && IsThick(d.Thick)
}

func widthToNewThick(d models.Dimensions, n int) (models.Dimensions, bool) {
	w := d.Width
	if !isDigits(w) || len(w) <= n {
		return d, false
	}
	r := models.Dimensions{Length: d.Length, Width: w[:len(w)-n], Thick: w[len(w)-n:]}
	if !nonZeroPart(r.Thick) || !IsLengthWidth(r.Length) || !IsLengthWidth(r.Width) || !IsThick(r.Thick) {
		return d, false
	}
	return r, true
}

func lengthToWidth(d models.Dimensions) (models.Dimensions, bool) {
	l := d.Length
	if !isDigits(l) || len(l) < 2 || !isDigits(d.Width) {
		return d, false
	}
	r := models.Dimensions{Length: l[:len(l)-1], Width: l[len(l)-1:] + d.Width, Thick: d.Thick}
	return r, nonZeroPart(r.Width) && valid(r)
}

func widthToLength(d models.Dimensions) (models.Dimensions, bool) {
	w := d.Width
	if !isDigits(d.Length) || !isDigits(w) || (len(d.Length) <= 3 && len(w) <= 1) || len(w) < 2 {
		return d, false
	}
	r := models.Dimensions{Length: d.Length + w[:1], Width: w[1:], Thick: d.Thick}
	return r, nonZeroPart(r.Width) && valid(r)
}

func widthToThick(d models.Dimensions) (models.Dimensions, bool) {
	w := d.Width
	if !isDigits(w) || len(w) < 2 || !isDigits(d.Thick) {
		return d, false
	}
	r := models.Dimensions{Length: d.Length, Width: w[:len(w)-1], Thick: w[len(w)-1:] + d.Thick}
	return r, nonZeroPart(r.Thick) && valid(r)
}

func thickToWidth(d models.Dimensions) (models.Dimensions, bool) {
	t := d.Thick
	if !isDigits(t) || len(t) < 2 || !isDigits(d.Width) {
		return d, false
	}
	r := models.Dimensions{Length: d.Length, Width: d.Width + t[:1], Thick: t[1:]}
	return r, nonZeroPart(r.Thick) && valid(r)
}

// forceLengthShift moves the last digit of a length longer than three digits
// onto the front of the width. The result may still fail validation.
func forceLengthShift(d models.Dimensions) (models.Dimensions, Repair) {
	l := d.Length
	if !isDigits(l) || len(l) <= 3 {
		return d, RepairNone
	}
	return models.Dimensions{Length: l[:len(l)-1], Width: l[len(l)-1:] + d.Width, Thick: d.Thick}, RepairForcedLengthShift
}
