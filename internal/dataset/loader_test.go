package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusboard/internal/shared/testutil"
	"campusboard/pkg/contracts/domain"
)

func writeTestWorkbook(t *testing.T, dir string, d domain.Domain, table Table) {
	t.Helper()
	meta := domain.DatasetMeta{
		Domain:        d,
		UpdatedAt:     "01/01/2025 às 00:00",
		Records:       len(table.Rows),
		SchemaVersion: SchemaVersion,
		Source:        domain.SourceSynthetic,
	}
	path := filepath.Join(dir, FileName(d))
	require.NoError(t, WriteWorkbook(path, table, meta, WriteGuards{AllowCreate: true, AllowOverwrite: true}))
}

func TestLoaderTeaching(t *testing.T) {
	dir := t.TempDir()
	writeTestWorkbook(t, dir, domain.DomainTeaching, Table{
		Header: TeachingColumns,
		Rows: [][]string{
			{"2021", "IFPB - Campus Guarabira", "Engenharia Civil", "Presencial", "80", "20", "8", "3"},
		},
	})

	l := NewLoader(dir, testutil.NewTestLogger(), true)
	records, err := l.Teaching()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 2021, records[0].Year)
	assert.Equal(t, 80, records[0].Enrolled)
}

func TestLoaderMissingWorkbook(t *testing.T) {
	l := NewLoader(t.TempDir(), testutil.NewTestLogger(), true)
	_, err := l.Staff()
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLoaderSchemaMismatch(t *testing.T) {
	dir := t.TempDir()
	writeTestWorkbook(t, dir, domain.DomainTeaching, Table{
		Header: []string{"ano", "campus", "curso", "modalidade"},
		Rows:   [][]string{{"2021", "IFPB - Campus Sousa", "Engenharia Civil", "Presencial"}},
	})

	l := NewLoader(dir, testutil.NewTestLogger(), true)
	_, err := l.Teaching()
	require.Error(t, err)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, schemaErr.Missing, "matriculados")
	assert.Contains(t, schemaErr.Missing, "formados")
}

func TestLoaderResearchKeywordBackfill(t *testing.T) {
	dir := t.TempDir()
	// A version-1 workbook: required columns only, no palavras_chave.
	writeTestWorkbook(t, dir, domain.DomainResearch, Table{
		Header: ResearchColumns,
		Rows: [][]string{
			{"2018", "IFPB - Campus Cajazeiras", "Artigos", "Engenharias", "7"},
		},
	})

	l := NewLoader(dir, testutil.NewTestLogger(), true)
	l.KeywordFn = func(area string) string { return "palavra-" + area }

	records, err := l.Research()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "palavra-Engenharias", records[0].Keywords)
}

func TestLoaderResearchKeepsExistingKeywords(t *testing.T) {
	dir := t.TempDir()
	header := append(append([]string{}, ResearchColumns...), ResearchOptionalColumns...)
	writeTestWorkbook(t, dir, domain.DomainResearch, Table{
		Header: header,
		Rows: [][]string{
			{"2023", "IFPB - Campus Sousa", "Livros", "Educação", "3", "ensino, didática", "Prof. Ana Silva"},
		},
	})

	l := NewLoader(dir, testutil.NewTestLogger(), true)
	l.KeywordFn = func(string) string { return "should not be used" }

	records, err := l.Research()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ensino, didática", records[0].Keywords)
	assert.Equal(t, "Prof. Ana Silva", records[0].LeadAuthor)
}

func TestLoaderValidationRejectsBadRecords(t *testing.T) {
	dir := t.TempDir()
	// Attended exceeds issued, which the audit invariant forbids.
	writeTestWorkbook(t, dir, domain.DomainAudit, Table{
		Header: AuditColumns,
		Rows:   [][]string{{"2022", "IFPB - Campus Patos", "10", "15", "150"}},
	})

	strict := NewLoader(dir, testutil.NewTestLogger(), true)
	_, err := strict.Audit()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")

	relaxed := NewLoader(dir, testutil.NewTestLogger(), false)
	records, err := relaxed.Audit()
	require.NoError(t, err)
	require.Len(t, records, 1)
}
