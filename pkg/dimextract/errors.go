package dimextract

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the input file type has no text source.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// ErrInsufficientTokens indicates a row has fewer tokens than a row needs.
var ErrInsufficientTokens = errors.New("insufficient tokens")

// ErrMissingVolume indicates no token of the row parses as a volume figure.
var ErrMissingVolume = errors.New("missing volume")

// ErrInvalidDimension indicates a required dimension resolved empty in strict mode.
var ErrInvalidDimension = errors.New("invalid dimension")

// DimensionError names the dimension field that resolved empty in strict mode.
type DimensionError struct {
	Field string // "length", "width", "thick"
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("invalid dimension: %s is empty", e.Field)
}

func (e *DimensionError) Unwrap() error {
	return ErrInvalidDimension
}

// RowError represents a row that could not be processed.
type RowError struct {
	Line   int
	Tokens []string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d %q: %v", e.Line, strings.Join(e.Tokens, " "), e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// NewRowError creates a new RowError.
func NewRowError(line int, tokens []string, err error) *RowError {
	return &RowError{
		Line:   line,
		Tokens: tokens,
		Err:    err,
	}
}
