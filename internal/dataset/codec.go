package dataset

import (
	"fmt"

	"campusboard/pkg/contracts/domain"
)

// Required column lists per domain. Matching against loaded workbooks is
// exact and case-sensitive; these names are the compatibility contract with
// existing cached files.
var (
	TeachingColumns = []string{
		"ano", "campus", "curso", "modalidade",
		"matriculados", "formados", "desistentes", "transferidos",
	}
	AssistanceColumns = []string{
		"ano", "mes", "unidade", "programa", "nivel_curso",
		"parcelas", "alunos_beneficiados", "valor_total", "faixa_idade", "genero",
	}
	ResearchColumns = []string{
		"ano", "unidade", "tipo_publicacao", "area_conhecimento", "quantidade",
	}
	// ResearchOptionalColumns were introduced with schema version 2;
	// version 1 workbooks lack them and get backfilled on load.
	ResearchOptionalColumns = []string{"palavras_chave", "autor_principal"}

	OutreachColumns = []string{
		"ano", "unidade", "curso", "modalidade", "genero",
		"estagios_concluidos", "pne_ingressantes", "tipo_necessidade",
	}
	BudgetColumns = []string{
		"ano", "unidade", "categoria", "dotacao", "empenhado", "pago",
	}
	StaffColumns = []string{
		"ano", "unidade", "docentes", "tecnicos", "total_servidores",
	}
	OmbudsmanColumns = []string{
		"ano", "mes", "unidade", "tipo_manifestacao", "tipo_usuario",
		"quantidade", "dias_atendimento",
	}
	AuditColumns = []string{
		"ano", "unidade", "recomendacoes_emitidas", "recomendacoes_atendidas",
		"percentual_atendimento",
	}
	LaborColumns = []string{
		"ano", "regiao", "setor_atividade", "admissoes", "desligamentos", "saldo",
	}
)

// RequiredColumns returns the required column list for a domain.
func RequiredColumns(d domain.Domain) []string {
	switch d {
	case domain.DomainTeaching:
		return TeachingColumns
	case domain.DomainAssistance:
		return AssistanceColumns
	case domain.DomainResearch:
		return ResearchColumns
	case domain.DomainOutreach:
		return OutreachColumns
	case domain.DomainBudget:
		return BudgetColumns
	case domain.DomainStaff:
		return StaffColumns
	case domain.DomainOmbudsman:
		return OmbudsmanColumns
	case domain.DomainAudit:
		return AuditColumns
	case domain.DomainLabor:
		return LaborColumns
	}
	return nil
}

// rowIsEmpty reports whether every cell in the row is blank. Spreadsheets
// edited by hand often carry trailing blank rows.
func rowIsEmpty(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}

// EncodeTeaching converts teaching records to a table for persistence.
func EncodeTeaching(records []domain.TeachingRecord) Table {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			formatInt(r.Year), r.Campus, r.Course, r.Modality,
			formatInt(r.Enrolled), formatInt(r.Graduated),
			formatInt(r.Dropped), formatInt(r.Transferred),
		})
	}
	return Table{Header: TeachingColumns, Rows: rows}
}

func decodeTeaching(t Table) ([]domain.TeachingRecord, error) {
	idx := t.ColumnIndex()
	records := make([]domain.TeachingRecord, 0, len(t.Rows))
	for i, row := range t.Rows {
		if rowIsEmpty(row) {
			continue
		}
		rec := domain.TeachingRecord{
			Campus:   cell(row, idx, "campus"),
			Course:   cell(row, idx, "curso"),
			Modality: cell(row, idx, "modalidade"),
		}
		var err error
		if rec.Year, err = parseYear(row, idx); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if rec.Enrolled, err = intCell(row, idx, "matriculados"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if rec.Graduated, err = intCell(row, idx, "formados"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if rec.Dropped, err = intCell(row, idx, "desistentes"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if rec.Transferred, err = intCell(row, idx, "transferidos"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// EncodeAssistance converts assistance records to a table for persistence.
func EncodeAssistance(records []domain.AssistanceRecord) Table {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			formatInt(r.Year), formatInt(r.Month), r.Unit, r.Program, r.CourseLevel,
			formatInt(r.Installments), formatInt(r.Beneficiaries),
			formatFloat(r.TotalValue), r.AgeBracket, r.Gender,
		})
	}
	return Table{Header: AssistanceColumns, Rows: rows}
}

func decodeAssistance(t Table) ([]domain.AssistanceRecord, error) {
	idx := t.ColumnIndex()
	records := make([]domain.AssistanceRecord, 0, len(t.Rows))
	for i, row := range t.Rows {
		if rowIsEmpty(row) {
			continue
		}
		rec := domain.AssistanceRecord{
			Unit:        cell(row, idx, "unidade"),
			Program:     cell(row, idx, "programa"),
			CourseLevel: cell(row, idx, "nivel_curso"),
			AgeBracket:  cell(row, idx, "faixa_idade"),
			Gender:      cell(row, idx, "genero"),
		}
		var err error
		if rec.Year, err = parseYear(row, idx); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if rec.Month, err = intCell(row, idx, "mes"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if rec.Installments, err = intCell(row, idx, "parcelas"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if rec.Beneficiaries, err = intCell(row, idx, "alunos_beneficiados"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if rec.TotalValue, err = floatCell(row, idx, "valor_total"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// EncodeResearch converts research records to a table for persistence.
// Always writes the full version-2 schema including keyword columns.
func EncodeResearch(records []domain.ResearchRecord) Table {
	header := append(append([]string{}, ResearchColumns...), ResearchOptionalColumns...)
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			formatInt(r.Year), r.Unit, r.PublicationType, r.KnowledgeArea,
			formatInt(r.Quantity), r.Keywords, r.LeadAuthor,
		})
	}
	return Table{Header: header, Rows: rows}
}

func decodeResearch(t Table) ([]domain.ResearchRecord, error) {
	idx := t.ColumnIndex()
	records := make([]domain.ResearchRecord, 0, len(t.Rows))
	for i, row := range t.Rows {
		if rowIsEmpty(row) {
			continue
		}
		rec := domain.ResearchRecord{
			Unit:            cell(row, idx, "unidade"),
			PublicationType: cell(row, idx, "tipo_publicacao"),
			KnowledgeArea:   cell(row, idx, "area_conhecimento"),
			Keywords:        cell(row, idx, "palavras_chave"),
			LeadAuthor:      cell(row, idx, "autor_principal"),
		}
		var err error
		if rec.Year, err = parseYear(row, idx); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if rec.Quantity, err = intCell(row, idx, "quantidade"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// EncodeOutreach converts outreach records to a table for persistence.
func EncodeOutreach(records []domain.OutreachRecord) Table {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			formatInt(r.Year), r.Unit, r.Course, r.Modality, r.Gender,
			formatInt(r.CompletedInternships), formatInt(r.SpecialNeedsAdmitted),
			r.NeedType,
		})
	}
	return Table{Header: OutreachColumns, Rows: rows}
}

func decodeOutreach(t Table) ([]domain.OutreachRecord, error) {
	idx := t.ColumnIndex()
	records := make([]domain.OutreachRecord, 0, len(t.Rows))
	for i, row := range t.Rows {
		if rowIsEmpty(row) {
			continue
		}
		rec := domain.OutreachRecord{
			Unit:     cell(row, idx, "unidade"),
			Course:   cell(row, idx, "curso"),
			Modality: cell(row, idx, "modalidade"),
			Gender:   cell(row, idx, "genero"),
			NeedType: cell(row, idx, "tipo_necessidade"),
		}
		var err error
		if rec.Year, err = parseYear(row, idx); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if rec.CompletedInternships, err = intCell(row, idx, "estagios_concluidos"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if rec.SpecialNeedsAdmitted, err = intCell(row, idx, "pne_ingressantes"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// EncodeBudget converts budget records to a table for persistence.
func EncodeBudget(records []domain.BudgetRecord) Table {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			formatInt(r.Year), r.Unit, r.Category,
			formatFloat(r.Allocated), formatFloat(r.Committed), formatFloat(r.Paid),
		})
	}
	return Table{Header: BudgetColumns, Rows: rows}
}

func decodeBudget(t Table) ([]domain.BudgetRecord, error) {
	idx := t.ColumnIndex()
	records := make([]domain.BudgetRecord, 0, len(t.Rows))
	for i, row := range t.Rows {
		if rowIsEmpty(row) {
			continue
		}
		rec := domain.BudgetRecord{
			Unit:     cell(row, idx, "unidade"),
			Category: cell(row, idx, "categoria"),
		}
		var err error
		if rec.Year, err = parseYear(row, idx); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if rec.Allocated, err = floatCell(row, idx, "dotacao"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if rec.Committed, err = floatCell(row, idx, "empenhado"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if rec.Paid, err = floatCell(row, idx, "pago"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// EncodeStaff converts staff records to a table for persistence.
func EncodeStaff(records []domain.StaffRecord) Table {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			formatInt(r.Year), r.Unit,
			formatInt(r.Faculty), formatInt(r.Technicians), formatInt(r.Total),
		})
	}
	return Table{Header: StaffColumns, Rows: rows}
}

func decodeStaff(t Table) ([]domain.StaffRecord, error) {
	idx := t.ColumnIndex()
	records := make([]domain.StaffRecord, 0, len(t.Rows))
	for i, row := range t.Rows {
		if rowIsEmpty(row) {
			continue
		}
		rec := domain.StaffRecord{Unit: cell(row, idx, "unidade")}
		var err error
		if rec.Year, err = parseYear(row, idx); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if rec.Faculty, err = intCell(row, idx, "docentes"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if rec.Technicians, err = intCell(row, idx, "tecnicos"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if rec.Total, err = intCell(row, idx, "total_servidores"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// EncodeOmbudsman converts ombudsman records to a table for persistence.
func EncodeOmbudsman(records []domain.OmbudsmanRecord) Table {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			formatInt(r.Year), formatInt(r.Month), r.Unit,
			r.ManifestationType, r.UserType,
			formatInt(r.Quantity), formatInt(r.ResponseDays),
		})
	}
	return Table{Header: OmbudsmanColumns, Rows: rows}
}

func decodeOmbudsman(t Table) ([]domain.OmbudsmanRecord, error) {
	idx := t.ColumnIndex()
	records := make([]domain.OmbudsmanRecord, 0, len(t.Rows))
	for i, row := range t.Rows {
		if rowIsEmpty(row) {
			continue
		}
		rec := domain.OmbudsmanRecord{
			Unit:              cell(row, idx, "unidade"),
			ManifestationType: cell(row, idx, "tipo_manifestacao"),
			UserType:          cell(row, idx, "tipo_usuario"),
		}
		var err error
		if rec.Year, err = parseYear(row, idx); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if rec.Month, err = intCell(row, idx, "mes"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if rec.Quantity, err = intCell(row, idx, "quantidade"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if rec.ResponseDays, err = intCell(row, idx, "dias_atendimento"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// EncodeAudit converts audit records to a table for persistence.
func EncodeAudit(records []domain.AuditRecord) Table {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			formatInt(r.Year), r.Unit,
			formatInt(r.Issued), formatInt(r.Attended),
			formatFloat(r.AttendanceRate),
		})
	}
	return Table{Header: AuditColumns, Rows: rows}
}

func decodeAudit(t Table) ([]domain.AuditRecord, error) {
	idx := t.ColumnIndex()
	records := make([]domain.AuditRecord, 0, len(t.Rows))
	for i, row := range t.Rows {
		if rowIsEmpty(row) {
			continue
		}
		rec := domain.AuditRecord{Unit: cell(row, idx, "unidade")}
		var err error
		if rec.Year, err = parseYear(row, idx); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if rec.Issued, err = intCell(row, idx, "recomendacoes_emitidas"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if rec.Attended, err = intCell(row, idx, "recomendacoes_atendidas"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if rec.AttendanceRate, err = floatCell(row, idx, "percentual_atendimento"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// EncodeLabor converts labor records to a table for persistence.
func EncodeLabor(records []domain.LaborRecord) Table {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			formatInt(r.Year), r.Region, r.Sector,
			formatInt(r.Hired), formatInt(r.Dismissed), formatInt(r.Balance),
		})
	}
	return Table{Header: LaborColumns, Rows: rows}
}

func decodeLabor(t Table) ([]domain.LaborRecord, error) {
	idx := t.ColumnIndex()
	records := make([]domain.LaborRecord, 0, len(t.Rows))
	for i, row := range t.Rows {
		if rowIsEmpty(row) {
			continue
		}
		rec := domain.LaborRecord{
			Region: cell(row, idx, "regiao"),
			Sector: cell(row, idx, "setor_atividade"),
		}
		var err error
		if rec.Year, err = parseYear(row, idx); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if rec.Hired, err = intCell(row, idx, "admissoes"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if rec.Dismissed, err = intCell(row, idx, "desligamentos"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if rec.Balance, err = intCell(row, idx, "saldo"); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
