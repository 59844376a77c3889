// Package exporter turns resolved dataset tables into CSV downloads and
// files, plus the number formatting used on the dashboard.
package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"campusboard/internal/dataset"
	"campusboard/pkg/contracts/domain"
)

// utf8BOM helps Excel recognize the encoding of downloaded files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteOptions configures CSV output.
type WriteOptions struct {
	// BOMPrefix prepends a UTF-8 BOM. Column names carry Portuguese
	// accents, so downloads default to true.
	BOMPrefix bool
	// Delimiter defaults to comma.
	Delimiter rune
}

// WriteTable streams a dataset table as CSV.
func WriteTable(w io.Writer, t dataset.Table, opts WriteOptions) error {
	if opts.BOMPrefix {
		if _, err := w.Write(utf8BOM); err != nil {
			return fmt.Errorf("write BOM: %w", err)
		}
	}

	cw := csv.NewWriter(w)
	if opts.Delimiter != 0 {
		cw.Comma = opts.Delimiter
	}

	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSVWriter exports dataset tables to files under a base directory.
type CSVWriter struct {
	dir    string
	logger *slog.Logger
}

// NewCSVWriter creates a CSVWriter rooted at dir.
func NewCSVWriter(dir string, logger *slog.Logger) *CSVWriter {
	return &CSVWriter{
		dir:    dir,
		logger: logger.With(slog.String("component", "exporter")),
	}
}

// FileName returns the CSV file name for a domain, mirroring the workbook
// naming.
func FileName(d domain.Domain) string {
	name := dataset.FileName(d)
	return name[:len(name)-len(filepath.Ext(name))] + ".csv"
}

// Export writes a domain table to <dir>/<dados_domínio>.csv and returns
// the path written.
func (w *CSVWriter) Export(d domain.Domain, t dataset.Table) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	path := filepath.Join(w.dir, FileName(d))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	if err := WriteTable(f, t, WriteOptions{BOMPrefix: true}); err != nil {
		return "", err
	}

	w.logger.Info("table exported",
		slog.String("domain", d.String()),
		slog.String("file", FileName(d)),
		slog.Int("rows", len(t.Rows)))
	return path, nil
}
