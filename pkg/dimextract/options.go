// Package dimextract extracts dimension tables (pieces, item, material,
// length, width, thickness, volume) from OCR-quality document text.
package dimextract

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/PremnathSundarrajan/Convert-PDF-to-EXCEL-sub000/pkg/dimextract/source"
	"go.uber.org/zap"
)

// Mode represents how rows with blank dimensions are treated.
type Mode string

const (
	// ModeLenient returns rows with blank dimension fields as partial successes.
	ModeLenient Mode = "lenient"
	// ModeStrict rejects rows whose length, width or thickness resolved empty.
	ModeStrict Mode = "strict"
)

// MinTokens is the minimum number of tokens a row must carry.
const MinTokens = 2

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeLenient:
		return ModeLenient, nil
	case ModeStrict:
		return ModeStrict, nil
	default:
		return "", fmt.Errorf("invalid mode: %s (must be lenient or strict)", s)
	}
}

// Options configures extraction behavior.
type Options struct {
	// Mode specifies how blank dimensions are treated (lenient, strict).
	Mode Mode
	// Workers bounds the rows processed concurrently.
	// If zero or negative, defaults to the number of CPUs.
	Workers int
	// Logger receives extraction events. If nil, logging is disabled.
	Logger *zap.Logger
	// Table configures table-region detection in source documents.
	Table source.TableParams
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Mode:  ModeLenient,
		Table: source.DefaultTableParams(),
	}
}

// IsStrict returns whether blank dimensions reject the row.
func (o Options) IsStrict() bool {
	return o.Mode == ModeStrict
}

// WorkerCount returns the number of rows processed concurrently.
func (o Options) WorkerCount() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.NumCPU()
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
