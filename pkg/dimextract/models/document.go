package models

// RowInput represents one table row split into whitespace-delimited tokens.
type RowInput struct {
	// Line is the 1-based line (or sheet row) number in the source document.
	Line int `json:"line"`
	// Tokens holds the row tokens in left-to-right document order.
	Tokens []string `json:"tokens"`
}

// Document represents the rows and header metadata read from one source document.
type Document struct {
	// Name is the source file name (no path).
	Name string `json:"name"`
	// Order is the order number found in the document header.
	Order string `json:"order,omitempty"`
	// Client is the client name found in the document header.
	Client string `json:"client,omitempty"`
	// Rows contains the table rows in document order.
	Rows []RowInput `json:"rows"`
}
