// Package dataset reads and writes the per-domain Excel workbooks: loading
// with schema validation and type coercion, and persisting generated tables
// together with a metadata sheet.
package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"campusboard/pkg/contracts/domain"
)

// Sheet names inside every cached workbook.
const (
	SheetData = "Dados"
	SheetMeta = "Metadados"
)

// SchemaVersion is written to the metadata sheet of every workbook this
// system produces. Version 1 workbooks predate the research keyword column.
const SchemaVersion = 2

// FileName returns the fixed workbook file name for a domain. These names
// are a compatibility contract with existing cached files.
func FileName(d domain.Domain) string {
	switch d {
	case domain.DomainTeaching:
		return "dados_ensino.xlsx"
	case domain.DomainAssistance:
		return "dados_assistencia.xlsx"
	case domain.DomainResearch:
		return "dados_pesquisa.xlsx"
	case domain.DomainOutreach:
		return "dados_extensao.xlsx"
	case domain.DomainBudget:
		return "dados_orcamento.xlsx"
	case domain.DomainStaff:
		return "dados_servidores.xlsx"
	case domain.DomainOmbudsman:
		return "dados_ouvidoria.xlsx"
	case domain.DomainAudit:
		return "dados_auditoria.xlsx"
	case domain.DomainLabor:
		return "dados_mundo_trabalho.xlsx"
	}
	return ""
}

// Table is the rectangular intermediate between typed records and workbook
// cells. Rows hold raw cell strings exactly as excelize returns them.
type Table struct {
	Header []string
	Rows   [][]string
}

// ColumnIndex maps each header name to its position.
func (t Table) ColumnIndex() map[string]int {
	idx := make(map[string]int, len(t.Header))
	for i, name := range t.Header {
		idx[name] = i
	}
	return idx
}

// HasColumn reports whether the table carries the named column.
func (t Table) HasColumn(name string) bool {
	for _, h := range t.Header {
		if h == name {
			return true
		}
	}
	return false
}

// cell returns the raw cell at the named column, or "" when the row is
// ragged or the column absent.
func cell(row []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseYear coerces the year column. Unlike measures, a missing year is an
// error: every observation must be anchored to a year.
func parseYear(row []string, idx map[string]int) (int, error) {
	raw := cell(row, idx, "ano")
	if raw == "" {
		return 0, fmt.Errorf("column %q must not be empty", "ano")
	}
	year, err := parseIntCell(raw)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", "ano", err)
	}
	return year, nil
}

// intCell coerces a numeric cell, zero-filling blanks.
func intCell(row []string, idx map[string]int, name string) (int, error) {
	raw := cell(row, idx, name)
	if raw == "" {
		return 0, nil
	}
	v, err := parseIntCell(raw)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", name, err)
	}
	return v, nil
}

// floatCell coerces a numeric cell, zero-filling blanks.
func floatCell(row []string, idx map[string]int, name string) (float64, error) {
	raw := cell(row, idx, name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("column %q: invalid number %q", name, raw)
	}
	return v, nil
}

func parseIntCell(raw string) (int, error) {
	raw = strings.ReplaceAll(raw, ",", "")
	if v, err := strconv.Atoi(raw); err == nil {
		return v, nil
	}
	// Excel sometimes stores integers as floats ("2023.0").
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", raw)
	}
	return int(f), nil
}

func formatInt(v int) string {
	return strconv.Itoa(v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
