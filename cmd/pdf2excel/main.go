// Package main provides the CLI entry point for pdf2excel.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PremnathSundarrajan/Convert-PDF-to-EXCEL-sub000/internal/config"
	"github.com/PremnathSundarrajan/Convert-PDF-to-EXCEL-sub000/internal/logging"
	"github.com/PremnathSundarrajan/Convert-PDF-to-EXCEL-sub000/pkg/dimextract"
	"github.com/PremnathSundarrajan/Convert-PDF-to-EXCEL-sub000/pkg/dimextract/models"
	"github.com/PremnathSundarrajan/Convert-PDF-to-EXCEL-sub000/pkg/dimextract/output"
	"github.com/PremnathSundarrajan/Convert-PDF-to-EXCEL-sub000/pkg/dimextract/source"
	"github.com/PremnathSundarrajan/Convert-PDF-to-EXCEL-sub000/pkg/dimextract/source/ocr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	outputPath string
	format     string
	mode       string
	configPath string
	pretty     bool
	workers    int
	verbose    bool
	order      string
	client     string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pdf2excel [input...]",
		Short: "Extract dimension tables from PDF documents",
		Long: `pdf2excel extracts piece count, item, material, length, width,
thickness and volume columns from PDF, text, spreadsheet or scanned image
documents and writes them to an Excel workbook or JSON.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Configuration file")
	rootCmd.PersistentFlags().StringVar(&mode, "mode", "", "Row mode: lenient, strict (default from config)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: <input>.xlsx, or stdout for json)")
	rootCmd.Flags().StringVar(&format, "format", "", "Output format: xlsx, json (default from config)")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "Rows processed concurrently (default from config)")

	rowCmd := &cobra.Command{
		Use:   "row <token>...",
		Short: "Assign the columns of a single row and print it as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runRow,
	}
	rowCmd.Flags().StringVar(&order, "order", "", "Order number")
	rowCmd.Flags().StringVar(&client, "client", "", "Client name")
	rootCmd.AddCommand(rowCmd)

	return rootCmd
}

// settings resolves the configuration file, environment and flags.
func settings(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if cmd.Flags().Changed("mode") {
		cfg.Mode = mode
	}
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		cfg.Output.Format = format
	}
	if f := cmd.Flags().Lookup("workers"); f != nil && f.Changed {
		cfg.Workers = workers
	}
	if pretty {
		cfg.Output.Pretty = true
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func options(cfg *config.Config, logger *zap.Logger) (dimextract.Options, error) {
	m, err := dimextract.ParseMode(cfg.Mode)
	if err != nil {
		return dimextract.Options{}, err
	}
	return dimextract.Options{
		Mode:    m,
		Workers: cfg.Workers,
		Logger:  logger,
		Table: source.TableParams{
			DensityMin: cfg.Table.DensityMin,
			MinTokens:  cfg.Table.MinTokens,
		},
	}, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, logger, err := settings(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	opts, err := options(cfg, logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var results []*models.Result
	for _, inputPath := range args {
		res, err := extractInput(ctx, inputPath, opts)
		if err != nil {
			return fmt.Errorf("extraction failed: %w", err)
		}
		results = append(results, res)
	}

	switch strings.ToLower(cfg.Output.Format) {
	case "json":
		jsonData, err := output.ToJSON(results, cfg.Output.Pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if outputPath == "" {
			fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
			return nil
		}
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	default:
		path := outputPath
		if path == "" {
			path = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".xlsx"
		}
		if err := output.WriteXLSX(path, results, cfg.Output.Sheet); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Info("Workbook written", zap.String("path", path))
	}

	return nil
}

// extractInput reads one input, routing images through OCR.
func extractInput(ctx context.Context, path string, opts dimextract.Options) (*models.Result, error) {
	if !ocr.IsImage(path) {
		return dimextract.Extract(ctx, path, opts)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", dimextract.ErrFileNotFound, path)
	}

	c, err := ocr.New()
	if err != nil {
		return nil, err
	}
	defer c.Close()

	doc, err := c.ReadImage(path, opts.Table)
	if err != nil {
		return nil, err
	}
	return dimextract.ExtractDocument(ctx, doc, opts)
}

func runRow(cmd *cobra.Command, args []string) error {
	cfg, logger, err := settings(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	opts, err := options(cfg, logger)
	if err != nil {
		return err
	}

	var tokens []string
	for _, arg := range args {
		tokens = append(tokens, source.Tokenize(arg)...)
	}

	row, err := dimextract.AssignRow(tokens, order, client, opts)
	if err != nil {
		return err
	}

	jsonData, err := output.RowToJSON(&row, cfg.Output.Pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}
