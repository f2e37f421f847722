package import_pkg

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/tx-address/internal/property"
)

// Upserter stores one property
type Upserter interface {
	Upsert(ctx context.Context, p property.Property) error
}

// Result summarises an import run
type Result struct {
	Imported int
	Skipped  int
}

// CSVImporter loads property CSV files into the property store
type CSVImporter struct {
	store  Upserter
	logger *zap.Logger
}

// NewCSVImporter creates a new CSV importer. A nil logger discards output.
func NewCSVImporter(store Upserter, logger *zap.Logger) *CSVImporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CSVImporter{store: store, logger: logger}
}

// ImportFile imports a property CSV from disk
func (ci *CSVImporter) ImportFile(ctx context.Context, filename string) (Result, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer file.Close()

	ci.logger.Info("Importing properties", zap.String("file", filename))
	return ci.Import(ctx, file)
}

// Import reads a headed property CSV and upserts every row. Rows that can't
// be mapped are logged and skipped; store errors abort the import.
func (ci *CSVImporter) Import(ctx context.Context, r io.Reader) (Result, error) {
	var res Result

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return res, fmt.Errorf("failed to read header: %w", err)
	}
	cols, err := mapColumns(header)
	if err != nil {
		return res, err
	}

	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			ci.logger.Warn("Error reading CSV line", zap.Int("line", line), zap.Error(err))
			res.Skipped++
			continue
		}

		p, err := cols.property(record)
		if err != nil {
			ci.logger.Warn("Skipping CSV line", zap.Int("line", line), zap.Error(err))
			res.Skipped++
			continue
		}

		if err := ci.store.Upsert(ctx, p); err != nil {
			return res, fmt.Errorf("line %d: %w", line, err)
		}

		res.Imported++
		if res.Imported%1000 == 0 {
			ci.logger.Info("Import progress", zap.Int("imported", res.Imported))
		}
	}

	ci.logger.Info("Import complete", zap.Int("imported", res.Imported), zap.Int("skipped", res.Skipped))
	return res, nil
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
