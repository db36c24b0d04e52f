// Package models defines data structures for dimension extraction.
package models

// Row represents one structured dimension row recovered from a document table.
type Row struct {
	// Order is the order number taken from the document header.
	Order string `json:"order"`
	// Client is the client name taken from the document header.
	Client string `json:"client"`
	// Pcs is the piece count (1-2 digits).
	Pcs string `json:"pcs"`
	// Item is the item name plus any orientation modifiers.
	Item string `json:"item"`
	// Material is the remaining descriptive text.
	Material string `json:"material"`
	// Length is the length in centimeters, a decimal or a range "A - B".
	Length string `json:"length"`
	// Width is the width in centimeters, a decimal or a range "A - B".
	Width string `json:"width"`
	// Thick is the thickness in centimeters, an integer or a range "A - B".
	Thick string `json:"thick"`
	// M3 is the volume in cubic meters ("0." followed by digits).
	M3 string `json:"m3"`
	// Ambiguous lists the dimension fields left blank because several tokens
	// competed for them.
	Ambiguous []string `json:"ambiguous,omitempty"`
	// Repair names the volume repair applied to the dimensions, if any.
	Repair string `json:"repair,omitempty"`
}

// Dimensions holds the three dimension columns of a row.
type Dimensions struct {
	Length string `json:"length"`
	Width  string `json:"width"`
	Thick  string `json:"thick"`
}

// Dimensions returns the dimension columns of the row.
func (r Row) Dimensions() Dimensions {
	return Dimensions{Length: r.Length, Width: r.Width, Thick: r.Thick}
}
