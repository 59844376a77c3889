package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"campusboard/pkg/contracts/domain"
)

var openGuards = WriteGuards{AllowCreate: true, AllowOverwrite: true}

func sampleAuditTable() Table {
	return Table{
		Header: AuditColumns,
		Rows: [][]string{
			{"2020", "IFPB - Campus Monteiro", "20", "15", "75"},
			{"2021", "IFPB - Campus Monteiro", "10", "8", "80"},
		},
	}
}

func sampleMeta(d domain.Domain, records int) domain.DatasetMeta {
	return domain.DatasetMeta{
		Domain:        d,
		UpdatedAt:     time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC).Format(MetaTimeLayout),
		Records:       records,
		YearMin:       2020,
		YearMax:       2021,
		SchemaVersion: SchemaVersion,
		RunID:         "run-123",
		Source:        domain.SourceSynthetic,
	}
}

func TestWriteWorkbookRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName(domain.DomainAudit))
	table := sampleAuditTable()

	require.NoError(t, WriteWorkbook(path, table, sampleMeta(domain.DomainAudit, 2), openGuards))

	got, err := ReadTable(path)
	require.NoError(t, err)
	assert.Equal(t, table.Header, got.Header)
	assert.Equal(t, table.Rows, got.Rows)
}

func TestWriteWorkbookMetadataSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName(domain.DomainAudit))
	meta := sampleMeta(domain.DomainAudit, 2)

	require.NoError(t, WriteWorkbook(path, sampleAuditTable(), meta, openGuards))

	got, err := ReadMeta(path, domain.DomainAudit)
	require.NoError(t, err)
	assert.Equal(t, meta.UpdatedAt, got.UpdatedAt)
	assert.Equal(t, 2, got.Records)
	assert.Equal(t, 2020, got.YearMin)
	assert.Equal(t, 2021, got.YearMax)
	assert.Equal(t, SchemaVersion, got.SchemaVersion)
	assert.Equal(t, "run-123", got.RunID)
	assert.Equal(t, domain.SourceSynthetic, got.Source)
}

func TestReadTableFallsBackToFirstSheet(t *testing.T) {
	// A hand-made spreadsheet with a default sheet name instead of Dados.
	path := filepath.Join(t.TempDir(), "manual.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"ano", "unidade"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"2024", "IFPB - Campus Areia"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	got, err := ReadTable(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ano", "unidade"}, got.Header)
	require.Len(t, got.Rows, 1)
}

func TestReadTableMissingFile(t *testing.T) {
	_, err := ReadTable(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestReadMetaDefaultsForForeignWorkbook(t *testing.T) {
	// Workbooks made outside the system have no metadata sheet.
	path := filepath.Join(t.TempDir(), "foreign.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := ReadMeta(path, domain.DomainStaff)
	require.Error(t, err)
}

func TestWriteGuards(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "existing.xlsx")
	require.NoError(t, os.WriteFile(existing, []byte("x"), 0o644))
	fresh := filepath.Join(dir, "fresh.xlsx")

	tests := []struct {
		name    string
		guards  WriteGuards
		path    string
		blocked bool
	}{
		{"read only blocks everything", WriteGuards{ReadOnly: true, AllowCreate: true, AllowOverwrite: true}, fresh, true},
		{"create allowed", WriteGuards{AllowCreate: true}, fresh, false},
		{"create disabled", WriteGuards{}, fresh, true},
		{"overwrite disabled", WriteGuards{AllowCreate: true}, existing, true},
		{"overwrite allowed", WriteGuards{AllowOverwrite: true}, existing, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.guards.Check(tt.path)
			if tt.blocked {
				require.ErrorIs(t, err, ErrWriteBlocked)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestWriteWorkbookRespectsGuards(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName(domain.DomainAudit))

	err := WriteWorkbook(path, sampleAuditTable(), sampleMeta(domain.DomainAudit, 2), WriteGuards{ReadOnly: true})
	require.ErrorIs(t, err, ErrWriteBlocked)
	assert.NoFileExists(t, path)
}
