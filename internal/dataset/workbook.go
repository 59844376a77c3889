package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"campusboard/pkg/contracts/domain"
)

// Metadata sheet row labels. Kept in Portuguese to match cached files
// produced by earlier versions of the system.
const (
	metaKeyUpdatedAt = "Data de Atualização"
	metaKeyRecords   = "Total de Registros"
	metaKeyPeriod    = "Período dos Dados"
	metaKeySchema    = "Versão do Esquema"
	metaKeyRunID     = "Identificador da Execução"
	metaKeySource    = "Fonte"
)

// MetaTimeLayout is the human-readable timestamp format used on the
// metadata sheet.
const MetaTimeLayout = "02/01/2006 às 15:04"

// WriteGuards gate workbook writes. ReadOnly blocks everything; AllowCreate
// and AllowOverwrite control creation of new files and replacement of
// existing ones.
type WriteGuards struct {
	ReadOnly       bool
	AllowCreate    bool
	AllowOverwrite bool
}

// Check returns ErrWriteBlocked when the guards refuse a write to path.
func (g WriteGuards) Check(path string) error {
	if g.ReadOnly {
		return fmt.Errorf("read-only mode: %w", ErrWriteBlocked)
	}
	_, err := os.Stat(path)
	exists := err == nil
	if exists && !g.AllowOverwrite {
		return fmt.Errorf("%s exists and overwrite is disabled: %w", filepath.Base(path), ErrWriteBlocked)
	}
	if !exists && !g.AllowCreate {
		return fmt.Errorf("workbook creation is disabled: %w", ErrWriteBlocked)
	}
	return nil
}

// WriteWorkbook persists a table and its metadata as a two-sheet workbook.
func WriteWorkbook(path string, t Table, meta domain.DatasetMeta, guards WriteGuards) error {
	if err := guards.Check(path); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetData); err != nil {
		return fmt.Errorf("rename data sheet: %w", err)
	}

	header := make([]interface{}, len(t.Header))
	for i, h := range t.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetData, "A1", &header); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}
	for i, row := range t.Rows {
		cells := make([]interface{}, len(row))
		for j, c := range row {
			cells[j] = c
		}
		start, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("resolve cell for row %d: %w", i, err)
		}
		if err := f.SetSheetRow(SheetData, start, &cells); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	if err := writeMetaSheet(f, meta); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", filepath.Base(path), err)
	}
	return nil
}

func writeMetaSheet(f *excelize.File, meta domain.DatasetMeta) error {
	if _, err := f.NewSheet(SheetMeta); err != nil {
		return fmt.Errorf("create metadata sheet: %w", err)
	}
	rows := [][]interface{}{
		{"Informação", "Valor"},
		{metaKeyUpdatedAt, meta.UpdatedAt},
		{metaKeyRecords, formatInt(meta.Records)},
		{metaKeyPeriod, fmt.Sprintf("%d - %d", meta.YearMin, meta.YearMax)},
		{metaKeySchema, formatInt(meta.SchemaVersion)},
		{metaKeyRunID, meta.RunID},
		{metaKeySource, meta.Source},
	}
	for i, row := range rows {
		start, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("resolve metadata cell: %w", err)
		}
		if err := f.SetSheetRow(SheetMeta, start, &row); err != nil {
			return fmt.Errorf("write metadata row: %w", err)
		}
	}
	return nil
}

// ReadTable loads the data sheet of a workbook. It prefers the Dados sheet
// and falls back to the first sheet so hand-made spreadsheets load too.
func ReadTable(path string) (Table, error) {
	if _, err := os.Stat(path); err != nil {
		return Table{}, fmt.Errorf("%s: %w", filepath.Base(path), ErrNotFound)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("open workbook %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetData)
	if err != nil {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return Table{}, fmt.Errorf("workbook %s has no sheets", filepath.Base(path))
		}
		rows, err = f.GetRows(sheets[0])
		if err != nil {
			return Table{}, fmt.Errorf("read sheet %s: %w", sheets[0], err)
		}
	}

	if len(rows) == 0 {
		return Table{}, fmt.Errorf("workbook %s is empty", filepath.Base(path))
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}
	return Table{Header: header, Rows: rows[1:]}, nil
}

// ReadMeta loads the metadata sheet of a cached workbook. Workbooks not
// produced by this system have no metadata sheet; that is reported as an
// error so callers can fall back to on-the-fly metadata.
func ReadMeta(path string, d domain.Domain) (domain.DatasetMeta, error) {
	if _, err := os.Stat(path); err != nil {
		return domain.DatasetMeta{}, fmt.Errorf("%s: %w", filepath.Base(path), ErrNotFound)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return domain.DatasetMeta{}, fmt.Errorf("open workbook %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetMeta)
	if err != nil {
		return domain.DatasetMeta{}, fmt.Errorf("workbook %s has no metadata sheet: %w", filepath.Base(path), err)
	}

	meta := domain.DatasetMeta{Domain: d, SchemaVersion: 1, Source: domain.SourceCache}
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		key, value := strings.TrimSpace(row[0]), strings.TrimSpace(row[1])
		switch key {
		case metaKeyUpdatedAt:
			meta.UpdatedAt = value
		case metaKeyRecords:
			meta.Records, _ = parseIntCell(value)
		case metaKeyPeriod:
			parts := strings.SplitN(value, "-", 2)
			if len(parts) == 2 {
				meta.YearMin, _ = parseIntCell(strings.TrimSpace(parts[0]))
				meta.YearMax, _ = parseIntCell(strings.TrimSpace(parts[1]))
			}
		case metaKeySchema:
			meta.SchemaVersion, _ = parseIntCell(value)
		case metaKeyRunID:
			meta.RunID = value
		case metaKeySource:
			if value != "" {
				meta.Source = value
			}
		}
	}
	return meta, nil
}
