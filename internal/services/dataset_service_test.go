package services

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusboard/internal/config"
	"campusboard/internal/dataset"
	"campusboard/internal/shared/testutil"
	"campusboard/pkg/contracts/domain"
)

type fakeNotifier struct {
	mu     sync.Mutex
	events []domain.Domain
}

func (f *fakeNotifier) DatasetRefreshed(d domain.Domain, _ domain.DatasetMeta) {
	f.mu.Lock()
	f.events = append(f.events, d)
	f.mu.Unlock()
}

func testDataConfig(dir string) config.DataConfig {
	return config.DataConfig{
		Dir:               dir,
		ValidateData:      true,
		FallbackSynthetic: true,
		CacheEnabled:      false,
		AllowCreate:       true,
		Seed:              42,
	}
}

func newTestService(t *testing.T, cfg config.DataConfig, n Notifier) *DatasetService {
	t.Helper()
	return NewDatasetService(cfg, cfg.Dir, testutil.NewTestLogger(), nil, n)
}

func TestDatasetSyntheticResolution(t *testing.T) {
	s := newTestService(t, testDataConfig(t.TempDir()), nil)

	ds, err := s.Dataset(context.Background(), domain.DomainAudit)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceSynthetic, ds.Meta.Source)
	assert.Equal(t, dataset.SchemaVersion, ds.Meta.SchemaVersion)
	assert.NotEmpty(t, ds.Meta.RunID)
	assert.Equal(t, len(ds.Table.Rows), ds.Meta.Records)

	years := domain.DomainAudit.Years()
	assert.Equal(t, years.Min, ds.Meta.YearMin)
	assert.Equal(t, years.Max, ds.Meta.YearMax)

	records, ok := ds.Records.([]domain.AuditRecord)
	require.True(t, ok)
	require.NotEmpty(t, records)
}

func TestDatasetMemoization(t *testing.T) {
	s := newTestService(t, testDataConfig(t.TempDir()), nil)

	first, err := s.Dataset(context.Background(), domain.DomainStaff)
	require.NoError(t, err)
	second, err := s.Dataset(context.Background(), domain.DomainStaff)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestDatasetCachePersistence(t *testing.T) {
	dir := t.TempDir()
	cfg := testDataConfig(dir)
	cfg.CacheEnabled = true

	s := newTestService(t, cfg, nil)
	ds, err := s.Dataset(context.Background(), domain.DomainLabor)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceSynthetic, ds.Meta.Source)

	path := filepath.Join(dir, dataset.FileName(domain.DomainLabor))
	require.FileExists(t, path)

	// A fresh service must serve the cached workbook instead of
	// regenerating.
	s2 := newTestService(t, cfg, nil)
	ds2, err := s2.Dataset(context.Background(), domain.DomainLabor)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceSynthetic, ds2.Meta.Source) // from metadata sheet
	assert.Equal(t, ds.Meta.RunID, ds2.Meta.RunID)
	assert.Equal(t, ds.Table.Rows, ds2.Table.Rows)
}

func TestDatasetReadOnlyBlocksCacheWrite(t *testing.T) {
	dir := t.TempDir()
	cfg := testDataConfig(dir)
	cfg.CacheEnabled = true
	cfg.ReadOnly = true

	s := newTestService(t, cfg, nil)
	ds, err := s.Dataset(context.Background(), domain.DomainOmbudsman)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceSynthetic, ds.Meta.Source)
	assert.NoFileExists(t, filepath.Join(dir, dataset.FileName(domain.DomainOmbudsman)))
}

func TestDatasetRealDataFallsBackToSynthetic(t *testing.T) {
	cfg := testDataConfig(t.TempDir())
	cfg.UseRealData = true

	s := newTestService(t, cfg, nil)
	ds, err := s.Dataset(context.Background(), domain.DomainBudget)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceSynthetic, ds.Meta.Source)
}

func TestDatasetRealDataWithoutFallbackFails(t *testing.T) {
	cfg := testDataConfig(t.TempDir())
	cfg.UseRealData = true
	cfg.FallbackSynthetic = false

	s := newTestService(t, cfg, nil)
	_, err := s.Dataset(context.Background(), domain.DomainBudget)
	require.ErrorIs(t, err, dataset.ErrNotFound)
}

func TestDatasetRealDataFromFile(t *testing.T) {
	dir := t.TempDir()
	table := dataset.Table{
		Header: dataset.StaffColumns,
		Rows: [][]string{
			{"2019", "IFPB - Campus Itabaiana", "35", "22", "57"},
			{"2020", "IFPB - Campus Itabaiana", "38", "23", "61"},
		},
	}
	meta := domain.DatasetMeta{Domain: domain.DomainStaff, Records: 2, SchemaVersion: dataset.SchemaVersion}
	path := filepath.Join(dir, dataset.FileName(domain.DomainStaff))
	require.NoError(t, dataset.WriteWorkbook(path, table, meta, dataset.WriteGuards{AllowCreate: true}))

	cfg := testDataConfig(dir)
	cfg.UseRealData = true
	cfg.FallbackSynthetic = false

	s := newTestService(t, cfg, nil)
	ds, err := s.Dataset(context.Background(), domain.DomainStaff)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceFile, ds.Meta.Source)
	assert.Equal(t, 2, ds.Meta.Records)
	assert.Equal(t, 2019, ds.Meta.YearMin)
	assert.Equal(t, 2020, ds.Meta.YearMax)
}

func TestRefreshNotifies(t *testing.T) {
	n := &fakeNotifier{}
	s := newTestService(t, testDataConfig(t.TempDir()), n)

	_, err := s.Dataset(context.Background(), domain.DomainResearch)
	require.NoError(t, err)
	require.Empty(t, n.events)

	_, err = s.Refresh(context.Background(), domain.DomainResearch)
	require.NoError(t, err)
	assert.Equal(t, []domain.Domain{domain.DomainResearch}, n.events)
}

func TestMetadata(t *testing.T) {
	s := newTestService(t, testDataConfig(t.TempDir()), nil)

	meta, err := s.Metadata(context.Background(), domain.DomainTeaching)
	require.NoError(t, err)
	assert.Equal(t, domain.DomainTeaching, meta.Domain)
	assert.Positive(t, meta.Records)
}

func TestDatasetConcurrentAccess(t *testing.T) {
	s := newTestService(t, testDataConfig(t.TempDir()), &fakeNotifier{})
	domains := []domain.Domain{
		domain.DomainAudit, domain.DomainStaff,
		domain.DomainLabor, domain.DomainBudget,
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(domains)*8)
	for _, d := range domains {
		for range 4 {
			wg.Add(2)
			go func() {
				defer wg.Done()
				if _, err := s.Dataset(context.Background(), d); err != nil {
					errs <- err
				}
			}()
			go func() {
				defer wg.Done()
				if _, err := s.Refresh(context.Background(), d); err != nil {
					errs <- err
				}
			}()
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent resolution: %v", err)
	}

	// Each domain must still resolve to a single memoized copy.
	for _, d := range domains {
		first, err := s.Dataset(context.Background(), d)
		require.NoError(t, err)
		second, err := s.Dataset(context.Background(), d)
		require.NoError(t, err)
		assert.Same(t, first, second, "domain %s", d)
	}
}

func TestGenerationIndependentOfRequestOrder(t *testing.T) {
	forward := newTestService(t, testDataConfig(t.TempDir()), nil)
	backward := newTestService(t, testDataConfig(t.TempDir()), nil)

	domains := []domain.Domain{
		domain.DomainAudit, domain.DomainStaff, domain.DomainLabor,
	}
	for _, d := range domains {
		_, err := forward.Dataset(context.Background(), d)
		require.NoError(t, err)
	}
	for i := len(domains) - 1; i >= 0; i-- {
		_, err := backward.Dataset(context.Background(), domains[i])
		require.NoError(t, err)
	}

	for _, d := range domains {
		a, err := forward.Dataset(context.Background(), d)
		require.NoError(t, err)
		b, err := backward.Dataset(context.Background(), d)
		require.NoError(t, err)
		assert.Equal(t, a.Table.Rows, b.Table.Rows, "domain %s", d)
	}
}

func TestRefreshReproducesSameRows(t *testing.T) {
	s := newTestService(t, testDataConfig(t.TempDir()), nil)

	before, err := s.Dataset(context.Background(), domain.DomainLabor)
	require.NoError(t, err)
	after, err := s.Refresh(context.Background(), domain.DomainLabor)
	require.NoError(t, err)
	assert.Equal(t, before.Table.Rows, after.Table.Rows)
}

func TestSpan(t *testing.T) {
	lo, hi := span([]domain.StaffRecord{{Year: 2015}, {Year: 2013}, {Year: 2020}},
		func(r domain.StaffRecord) int { return r.Year })
	assert.Equal(t, 2013, lo)
	assert.Equal(t, 2020, hi)

	lo, hi = span(nil, func(r domain.StaffRecord) int { return r.Year })
	assert.Zero(t, lo)
	assert.Zero(t, hi)
}
