package models

// SkippedRow records a row the engine rejected.
type SkippedRow struct {
	// Line is the source line number of the rejected row.
	Line int `json:"line"`
	// Tokens holds the original row tokens.
	Tokens []string `json:"tokens"`
	// Reason is the rejection message.
	Reason string `json:"reason"`
}

// Result represents the extraction output for one document.
type Result struct {
	// Name is the source file name (no path).
	Name string `json:"name"`
	// Order is the order number found in the document header.
	Order string `json:"order,omitempty"`
	// Client is the client name found in the document header.
	Client string `json:"client,omitempty"`
	// Rows contains the structured rows in document order.
	Rows []Row `json:"rows"`
	// Skipped contains rows that could not be processed.
	Skipped []SkippedRow `json:"skipped,omitempty"`
}
