package dimextract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PremnathSundarrajan/Convert-PDF-to-EXCEL-sub000/pkg/dimextract/models"
	"github.com/PremnathSundarrajan/Convert-PDF-to-EXCEL-sub000/pkg/dimextract/source"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Extract reads a document from path and extracts its dimension rows.
// Supported inputs are .pdf, .txt and .xlsx files.
func Extract(ctx context.Context, path string, opts Options) (*models.Result, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	var (
		doc *models.Document
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		doc, err = source.ReadPDF(path, opts.Table)
	case ".txt":
		doc, err = source.ReadTextFile(path, opts.Table)
	case ".xlsx":
		doc, err = source.ReadXLSX(path, "", opts.Table)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return ExtractDocument(ctx, doc, opts)
}

// ExtractDocument assigns every row of doc concurrently and returns the
// structured rows in document order. Rows that cannot be processed are
// reported in Result.Skipped and never fail the document. It returns an
// error only when ctx is cancelled.
func ExtractDocument(ctx context.Context, doc *models.Document, opts Options) (*models.Result, error) {
	log := opts.logger().With(
		zap.String("run_id", uuid.NewString()),
		zap.String("document", doc.Name),
	)
	log.Debug("Extracting document", zap.Int("rows", len(doc.Rows)), zap.String("mode", string(opts.Mode)))

	rows := make([]models.Row, len(doc.Rows))
	errs := make([]error, len(doc.Rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.WorkerCount())
	for i, in := range doc.Rows {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row, err := AssignRow(in.Tokens, doc.Order, doc.Client, opts)
			if err != nil {
				errs[i] = NewRowError(in.Line, in.Tokens, err)
				return nil
			}
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &models.Result{
		Name:   doc.Name,
		Order:  doc.Order,
		Client: doc.Client,
		Rows:   make([]models.Row, 0, len(doc.Rows)),
	}
	for i, in := range doc.Rows {
		if errs[i] != nil {
			log.Debug("Skipping row", zap.Int("line", in.Line), zap.Error(errs[i]))
			result.Skipped = append(result.Skipped, models.SkippedRow{
				Line:   in.Line,
				Tokens: in.Tokens,
				Reason: errors.Unwrap(errs[i]).Error(),
			})
			continue
		}
		if len(rows[i].Ambiguous) > 0 {
			log.Debug("Ambiguous columns left blank", zap.Int("line", in.Line), zap.Strings("fields", rows[i].Ambiguous))
		}
		result.Rows = append(result.Rows, rows[i])
	}

	log.Info("Document extracted",
		zap.Int("rows", len(result.Rows)),
		zap.Int("skipped", len(result.Skipped)))
	return result, nil
}
