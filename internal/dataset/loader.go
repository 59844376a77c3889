package dataset

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"campusboard/pkg/contracts/domain"
)

// Loader reads domain workbooks from the data directory, validating their
// schema and coercing cell types.
type Loader struct {
	dir      string
	logger   *slog.Logger
	validate *validator.Validate

	// KeywordFn backfills the research keyword column when loading a
	// version-1 workbook that predates it. Nil leaves the column blank.
	KeywordFn func(area string) string
}

// NewLoader creates a Loader for the given data directory. With
// validateData false, loaded records skip field validation and only the
// column schema is checked.
func NewLoader(dir string, logger *slog.Logger, validateData bool) *Loader {
	l := &Loader{
		dir:    dir,
		logger: logger.With(slog.String("component", "loader")),
	}
	if validateData {
		l.validate = validator.New()
	}
	return l
}

// Path returns the workbook path for a domain.
func (l *Loader) Path(d domain.Domain) string {
	return filepath.Join(l.dir, FileName(d))
}

func (l *Loader) table(d domain.Domain) (Table, error) {
	path := l.Path(d)
	t, err := ReadTable(path)
	if err != nil {
		l.logger.Warn("workbook load failed",
			slog.String("domain", d.String()),
			slog.String("file", FileName(d)),
			slog.String("error", err.Error()))
		return Table{}, err
	}
	if err := validateColumns(d, t, RequiredColumns(d)); err != nil {
		l.logger.Warn("workbook schema validation failed",
			slog.String("domain", d.String()),
			slog.String("error", err.Error()))
		return Table{}, err
	}
	l.logger.Info("workbook loaded",
		slog.String("domain", d.String()),
		slog.String("file", FileName(d)),
		slog.Int("rows", len(t.Rows)))
	return t, nil
}

func (l *Loader) check(d domain.Domain, i int, rec any) error {
	if l.validate == nil {
		return nil
	}
	if err := l.validate.Struct(rec); err != nil {
		return fmt.Errorf("%s row %d: %w", d, i+2, err)
	}
	return nil
}

// Teaching loads the teaching workbook.
func (l *Loader) Teaching() ([]domain.TeachingRecord, error) {
	t, err := l.table(domain.DomainTeaching)
	if err != nil {
		return nil, err
	}
	records, err := decodeTeaching(t)
	if err != nil {
		return nil, err
	}
	for i, rec := range records {
		if err := l.check(domain.DomainTeaching, i, rec); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// Assistance loads the student-assistance workbook.
func (l *Loader) Assistance() ([]domain.AssistanceRecord, error) {
	t, err := l.table(domain.DomainAssistance)
	if err != nil {
		return nil, err
	}
	records, err := decodeAssistance(t)
	if err != nil {
		return nil, err
	}
	for i, rec := range records {
		if err := l.check(domain.DomainAssistance, i, rec); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// Research loads the research workbook. A version-1 workbook without the
// keyword column is backfilled through KeywordFn; the file on disk is left
// untouched.
func (l *Loader) Research() ([]domain.ResearchRecord, error) {
	t, err := l.table(domain.DomainResearch)
	if err != nil {
		return nil, err
	}
	records, err := decodeResearch(t)
	if err != nil {
		return nil, err
	}
	if !t.HasColumn("palavras_chave") && l.KeywordFn != nil {
		for i := range records {
			records[i].Keywords = l.KeywordFn(records[i].KnowledgeArea)
		}
		l.logger.Info("backfilled research keywords for version-1 workbook",
			slog.Int("rows", len(records)))
	}
	for i, rec := range records {
		if err := l.check(domain.DomainResearch, i, rec); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// Outreach loads the outreach workbook.
func (l *Loader) Outreach() ([]domain.OutreachRecord, error) {
	t, err := l.table(domain.DomainOutreach)
	if err != nil {
		return nil, err
	}
	records, err := decodeOutreach(t)
	if err != nil {
		return nil, err
	}
	for i, rec := range records {
		if err := l.check(domain.DomainOutreach, i, rec); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// Budget loads the budget workbook.
func (l *Loader) Budget() ([]domain.BudgetRecord, error) {
	t, err := l.table(domain.DomainBudget)
	if err != nil {
		return nil, err
	}
	records, err := decodeBudget(t)
	if err != nil {
		return nil, err
	}
	for i, rec := range records {
		if err := l.check(domain.DomainBudget, i, rec); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// Staff loads the staff workbook.
func (l *Loader) Staff() ([]domain.StaffRecord, error) {
	t, err := l.table(domain.DomainStaff)
	if err != nil {
		return nil, err
	}
	records, err := decodeStaff(t)
	if err != nil {
		return nil, err
	}
	for i, rec := range records {
		if err := l.check(domain.DomainStaff, i, rec); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// Ombudsman loads the ombudsman workbook.
func (l *Loader) Ombudsman() ([]domain.OmbudsmanRecord, error) {
	t, err := l.table(domain.DomainOmbudsman)
	if err != nil {
		return nil, err
	}
	records, err := decodeOmbudsman(t)
	if err != nil {
		return nil, err
	}
	for i, rec := range records {
		if err := l.check(domain.DomainOmbudsman, i, rec); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// Audit loads the audit workbook.
func (l *Loader) Audit() ([]domain.AuditRecord, error) {
	t, err := l.table(domain.DomainAudit)
	if err != nil {
		return nil, err
	}
	records, err := decodeAudit(t)
	if err != nil {
		return nil, err
	}
	for i, rec := range records {
		if err := l.check(domain.DomainAudit, i, rec); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// Labor loads the labor-market workbook.
func (l *Loader) Labor() ([]domain.LaborRecord, error) {
	t, err := l.table(domain.DomainLabor)
	if err != nil {
		return nil, err
	}
	records, err := decodeLabor(t)
	if err != nil {
		return nil, err
	}
	for i, rec := range records {
		if err := l.check(domain.DomainLabor, i, rec); err != nil {
			return nil, err
		}
	}
	return records, nil
}
