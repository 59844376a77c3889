// Package services implements the dataset resolution layer: it decides
// whether a domain's data comes from the synthetic generator, a cached
// workbook or a real spreadsheet, and memoizes the result.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"campusboard/internal/config"
	"campusboard/internal/dataset"
	"campusboard/internal/infrastructure"
	"campusboard/internal/metrics"
	"campusboard/internal/synthetic"
	"campusboard/pkg/contracts/domain"
)

// Notifier receives dataset refresh events. The websocket hub implements
// it; a nil notifier disables push updates.
type Notifier interface {
	DatasetRefreshed(d domain.Domain, meta domain.DatasetMeta)
}

// Dataset is a resolved domain dataset: the typed records, the flat table
// used for spreadsheet and CSV output, and the metadata describing where
// the data came from.
type Dataset struct {
	Domain  domain.Domain
	Meta    domain.DatasetMeta
	Table   dataset.Table
	Records any
}

// DatasetService resolves datasets for the nine reporting domains.
type DatasetService struct {
	cfg      config.DataConfig
	dir      string
	logger   *slog.Logger
	loader   *dataset.Loader
	metrics  *metrics.Metrics
	notifier Notifier
	tracer   trace.Tracer

	// mu serializes resolution, not just memo access: the loader's keyword
	// source is a non-thread-safe *rand.Rand, and closing the check-then-act
	// gap keeps two goroutines from resolving the same domain twice and
	// double-writing the cache workbook.
	mu   sync.Mutex
	memo map[domain.Domain]*Dataset
}

// NewDatasetService wires a service from configuration. dir is the
// resolved data directory. metrics and notifier may be nil.
func NewDatasetService(cfg config.DataConfig, dir string, logger *slog.Logger, m *metrics.Metrics, n Notifier) *DatasetService {
	s := &DatasetService{
		cfg:      cfg,
		dir:      dir,
		logger:   logger.With(slog.String("component", "dataset-service")),
		loader:   dataset.NewLoader(dir, logger, cfg.ValidateData),
		metrics:  m,
		notifier: n,
		tracer:   infrastructure.Tracer(),
		memo:     make(map[domain.Domain]*Dataset),
	}
	// Keyword backfill for older research workbooks draws from its own
	// source so loading order cannot disturb the per-domain streams. Only
	// touched under mu.
	kw := synthetic.New(cfg.Seed + keywordSeedOffset)
	s.loader.KeywordFn = kw.KeywordsFor
	return s
}

// keywordSeedOffset keeps the backfill source clear of every per-domain
// generator seed (base + domain index).
const keywordSeedOffset = 1000

// seedFor derives the generator seed for a domain from the configured base
// seed. Giving each domain its own stream makes generation independent of
// the order requests arrive in and matches the batch generator's output.
func seedFor(base int64, d domain.Domain) int64 {
	for i, known := range domain.AllDomains() {
		if d == known {
			return base + int64(i)
		}
	}
	return base
}

// Dataset resolves the dataset for a domain, reusing the in-memory copy
// when one exists.
func (s *DatasetService) Dataset(ctx context.Context, d domain.Domain) (*Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.datasetLocked(ctx, d)
}

func (s *DatasetService) datasetLocked(ctx context.Context, d domain.Domain) (*Dataset, error) {
	if ds, ok := s.memo[d]; ok {
		return ds, nil
	}
	ds, err := s.resolve(ctx, d)
	if err != nil {
		return nil, err
	}
	s.memo[d] = ds
	return ds, nil
}

// Metadata returns the metadata of a resolved dataset.
func (s *DatasetService) Metadata(ctx context.Context, d domain.Domain) (domain.DatasetMeta, error) {
	ds, err := s.Dataset(ctx, d)
	if err != nil {
		return domain.DatasetMeta{}, err
	}
	return ds.Meta, nil
}

// Refresh discards the in-memory copy, resolves the dataset again and
// notifies connected clients.
func (s *DatasetService) Refresh(ctx context.Context, d domain.Domain) (*Dataset, error) {
	s.mu.Lock()
	delete(s.memo, d)
	ds, err := s.datasetLocked(ctx, d)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if s.notifier != nil {
		s.notifier.DatasetRefreshed(d, ds.Meta)
	}
	return ds, nil
}

func (s *DatasetService) resolve(ctx context.Context, d domain.Domain) (*Dataset, error) {
	ctx, span := s.tracer.Start(ctx, "dataset.resolve",
		trace.WithAttributes(attribute.String("domain", d.String())))
	defer span.End()

	start := time.Now()
	var (
		ds  *Dataset
		err error
	)
	if s.cfg.UseRealData {
		ds, err = s.fromFile(ctx, d)
		if err != nil && s.cfg.FallbackSynthetic {
			s.logger.WarnContext(ctx, "real data unavailable, falling back to synthetic",
				slog.String("domain", d.String()),
				slog.String("error", err.Error()))
			ds, err = s.fromSynthetic(ctx, d), nil
		}
	} else {
		ds = s.fromCacheOrSynthetic(ctx, d)
	}
	if err != nil {
		s.metrics.ObserveFailure(d)
		span.RecordError(err)
		return nil, err
	}

	s.metrics.ObserveLoad(d, ds.Meta.Source, time.Since(start).Seconds())
	span.SetAttributes(
		attribute.String("source", ds.Meta.Source),
		attribute.Int("records", ds.Meta.Records),
	)
	s.logger.InfoContext(ctx, "dataset resolved",
		slog.String("domain", d.String()),
		slog.String("source", ds.Meta.Source),
		slog.Int("records", ds.Meta.Records),
		slog.Duration("duration", time.Since(start)))
	return ds, nil
}

// fromFile loads a real spreadsheet through the validating loader.
func (s *DatasetService) fromFile(ctx context.Context, d domain.Domain) (*Dataset, error) {
	records, table, yearMin, yearMax, err := s.load(d)
	if err != nil {
		return nil, err
	}
	meta := domain.DatasetMeta{
		Domain:        d,
		UpdatedAt:     time.Now().Format(dataset.MetaTimeLayout),
		Records:       len(table.Rows),
		YearMin:       yearMin,
		YearMax:       yearMax,
		SchemaVersion: dataset.SchemaVersion,
		Source:        domain.SourceFile,
	}
	if d == domain.DomainResearch && !table.HasColumn("palavras_chave") {
		meta.SchemaVersion = 1
	}
	s.logger.DebugContext(ctx, "real workbook loaded",
		slog.String("domain", d.String()),
		slog.Int("rows", len(table.Rows)))
	return &Dataset{Domain: d, Meta: meta, Table: table, Records: records}, nil
}

// fromCacheOrSynthetic serves the cached workbook when one exists and
// synthesizes otherwise, persisting the result for the next run.
func (s *DatasetService) fromCacheOrSynthetic(ctx context.Context, d domain.Domain) *Dataset {
	if s.cfg.CacheEnabled {
		ds, err := s.fromCache(ctx, d)
		if err == nil {
			return ds
		}
		if !errors.Is(err, dataset.ErrNotFound) {
			s.logger.WarnContext(ctx, "cached workbook unusable, regenerating",
				slog.String("domain", d.String()),
				slog.String("error", err.Error()))
		}
	}
	return s.fromSynthetic(ctx, d)
}

func (s *DatasetService) fromCache(ctx context.Context, d domain.Domain) (*Dataset, error) {
	records, table, yearMin, yearMax, err := s.load(d)
	if err != nil {
		return nil, err
	}
	meta, err := dataset.ReadMeta(s.loader.Path(d), d)
	if err != nil {
		s.logger.DebugContext(ctx, "cached workbook has no metadata sheet",
			slog.String("domain", d.String()))
		meta = domain.DatasetMeta{
			Domain:        d,
			UpdatedAt:     time.Now().Format(dataset.MetaTimeLayout),
			Records:       len(table.Rows),
			YearMin:       yearMin,
			YearMax:       yearMax,
			SchemaVersion: 1,
			Source:        domain.SourceCache,
		}
	}
	return &Dataset{Domain: d, Meta: meta, Table: table, Records: records}, nil
}

func (s *DatasetService) fromSynthetic(ctx context.Context, d domain.Domain) *Dataset {
	records, table := s.generate(d)
	years := d.Years()
	meta := domain.DatasetMeta{
		Domain:        d,
		UpdatedAt:     time.Now().Format(dataset.MetaTimeLayout),
		Records:       len(table.Rows),
		YearMin:       years.Min,
		YearMax:       years.Max,
		SchemaVersion: dataset.SchemaVersion,
		RunID:         uuid.NewString(),
		Source:        domain.SourceSynthetic,
	}
	ds := &Dataset{Domain: d, Meta: meta, Table: table, Records: records}

	if s.cfg.CacheEnabled {
		s.persist(ctx, ds)
	}
	return ds
}

// persist writes the synthesized dataset to the workbook cache. A blocked
// write is an operating mode, not a failure.
func (s *DatasetService) persist(ctx context.Context, ds *Dataset) {
	guards := dataset.WriteGuards{
		ReadOnly:       s.cfg.ReadOnly,
		AllowCreate:    s.cfg.AllowCreate,
		AllowOverwrite: s.cfg.AllowOverwrite,
	}
	path := s.loader.Path(ds.Domain)
	err := dataset.WriteWorkbook(path, ds.Table, ds.Meta, guards)
	switch {
	case errors.Is(err, dataset.ErrWriteBlocked):
		s.metrics.ObserveCacheWrite(ds.Domain, "blocked")
		s.logger.InfoContext(ctx, "cache write blocked",
			slog.String("domain", ds.Domain.String()),
			slog.String("reason", err.Error()))
	case err != nil:
		s.metrics.ObserveCacheWrite(ds.Domain, "error")
		s.logger.ErrorContext(ctx, "cache write failed",
			slog.String("domain", ds.Domain.String()),
			slog.String("error", err.Error()))
	default:
		s.metrics.ObserveCacheWrite(ds.Domain, "written")
		s.logger.InfoContext(ctx, "cache workbook written",
			slog.String("domain", ds.Domain.String()),
			slog.String("file", dataset.FileName(ds.Domain)))
	}
}

// load reads and decodes the workbook for a domain, returning the typed
// records alongside the raw table and the observed year span.
func (s *DatasetService) load(d domain.Domain) (any, dataset.Table, int, int, error) {
	switch d {
	case domain.DomainTeaching:
		r, err := s.loader.Teaching()
		if err != nil {
			return nil, dataset.Table{}, 0, 0, err
		}
		lo, hi := span(r, func(x domain.TeachingRecord) int { return x.Year })
		return r, dataset.EncodeTeaching(r), lo, hi, nil
	case domain.DomainAssistance:
		r, err := s.loader.Assistance()
		if err != nil {
			return nil, dataset.Table{}, 0, 0, err
		}
		lo, hi := span(r, func(x domain.AssistanceRecord) int { return x.Year })
		return r, dataset.EncodeAssistance(r), lo, hi, nil
	case domain.DomainResearch:
		r, err := s.loader.Research()
		if err != nil {
			return nil, dataset.Table{}, 0, 0, err
		}
		lo, hi := span(r, func(x domain.ResearchRecord) int { return x.Year })
		return r, dataset.EncodeResearch(r), lo, hi, nil
	case domain.DomainOutreach:
		r, err := s.loader.Outreach()
		if err != nil {
			return nil, dataset.Table{}, 0, 0, err
		}
		lo, hi := span(r, func(x domain.OutreachRecord) int { return x.Year })
		return r, dataset.EncodeOutreach(r), lo, hi, nil
	case domain.DomainBudget:
		r, err := s.loader.Budget()
		if err != nil {
			return nil, dataset.Table{}, 0, 0, err
		}
		lo, hi := span(r, func(x domain.BudgetRecord) int { return x.Year })
		return r, dataset.EncodeBudget(r), lo, hi, nil
	case domain.DomainStaff:
		r, err := s.loader.Staff()
		if err != nil {
			return nil, dataset.Table{}, 0, 0, err
		}
		lo, hi := span(r, func(x domain.StaffRecord) int { return x.Year })
		return r, dataset.EncodeStaff(r), lo, hi, nil
	case domain.DomainOmbudsman:
		r, err := s.loader.Ombudsman()
		if err != nil {
			return nil, dataset.Table{}, 0, 0, err
		}
		lo, hi := span(r, func(x domain.OmbudsmanRecord) int { return x.Year })
		return r, dataset.EncodeOmbudsman(r), lo, hi, nil
	case domain.DomainAudit:
		r, err := s.loader.Audit()
		if err != nil {
			return nil, dataset.Table{}, 0, 0, err
		}
		lo, hi := span(r, func(x domain.AuditRecord) int { return x.Year })
		return r, dataset.EncodeAudit(r), lo, hi, nil
	case domain.DomainLabor:
		r, err := s.loader.Labor()
		if err != nil {
			return nil, dataset.Table{}, 0, 0, err
		}
		lo, hi := span(r, func(x domain.LaborRecord) int { return x.Year })
		return r, dataset.EncodeLabor(r), lo, hi, nil
	}
	return nil, dataset.Table{}, 0, 0, fmt.Errorf("unknown domain: %q", d)
}

// generate synthesizes the dataset for a domain from a fresh generator
// seeded per domain, so every resolution of a domain yields the same rows
// regardless of what was generated before it.
func (s *DatasetService) generate(d domain.Domain) (any, dataset.Table) {
	g := synthetic.New(seedFor(s.cfg.Seed, d))
	switch d {
	case domain.DomainTeaching:
		r := g.Teaching()
		return r, dataset.EncodeTeaching(r)
	case domain.DomainAssistance:
		r := g.Assistance()
		return r, dataset.EncodeAssistance(r)
	case domain.DomainResearch:
		r := g.Research()
		return r, dataset.EncodeResearch(r)
	case domain.DomainOutreach:
		r := g.Outreach()
		return r, dataset.EncodeOutreach(r)
	case domain.DomainBudget:
		r := g.Budget()
		return r, dataset.EncodeBudget(r)
	case domain.DomainStaff:
		r := g.Staff()
		return r, dataset.EncodeStaff(r)
	case domain.DomainOmbudsman:
		r := g.Ombudsman()
		return r, dataset.EncodeOmbudsman(r)
	case domain.DomainAudit:
		r := g.Audit()
		return r, dataset.EncodeAudit(r)
	case domain.DomainLabor:
		r := g.Labor()
		return r, dataset.EncodeLabor(r)
	}
	return nil, dataset.Table{}
}

// span returns the min and max year across records.
func span[T any](records []T, year func(T) int) (int, int) {
	if len(records) == 0 {
		return 0, 0
	}
	lo, hi := year(records[0]), year(records[0])
	for _, r := range records[1:] {
		y := year(r)
		if y < lo {
			lo = y
		}
		if y > hi {
			hi = y
		}
	}
	return lo, hi
}
