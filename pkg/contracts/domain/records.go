package domain

// TeachingRecord is one teaching observation: a campus/course/modality cell
// for a given year. Column names of the backing workbook are the Portuguese
// originals kept for compatibility with existing cached files.
type TeachingRecord struct {
	Year        int    `json:"ano" validate:"required,gte=2000,lte=2100"`
	Campus      string `json:"campus" validate:"required"`
	Course      string `json:"curso" validate:"required"`
	Modality    string `json:"modalidade" validate:"required"`
	Enrolled    int    `json:"matriculados" validate:"min=0"`
	Graduated   int    `json:"formados" validate:"min=0"`
	Dropped     int    `json:"desistentes" validate:"min=0"`
	Transferred int    `json:"transferidos" validate:"min=0"`
}

// AssistanceRecord is one student-assistance observation: a program/unit/level
// cell for a given month.
type AssistanceRecord struct {
	Year          int     `json:"ano" validate:"required,gte=2000,lte=2100"`
	Month         int     `json:"mes" validate:"min=1,max=12"`
	Unit          string  `json:"unidade" validate:"required"`
	Program       string  `json:"programa" validate:"required"`
	CourseLevel   string  `json:"nivel_curso" validate:"required"`
	Installments  int     `json:"parcelas" validate:"min=0"`
	Beneficiaries int     `json:"alunos_beneficiados" validate:"min=0"`
	TotalValue    float64 `json:"valor_total" validate:"min=0"`
	AgeBracket    string  `json:"faixa_idade"`
	Gender        string  `json:"genero"`
}

// ResearchRecord is one scientific-production observation per unit,
// publication type and knowledge area. Keywords and lead author are optional
// columns; older cached workbooks may not carry them.
type ResearchRecord struct {
	Year            int    `json:"ano" validate:"required,gte=2000,lte=2100"`
	Unit            string `json:"unidade" validate:"required"`
	PublicationType string `json:"tipo_publicacao" validate:"required"`
	KnowledgeArea   string `json:"area_conhecimento" validate:"required"`
	Quantity        int    `json:"quantidade" validate:"min=0"`
	Keywords        string `json:"palavras_chave,omitempty"`
	LeadAuthor      string `json:"autor_principal,omitempty"`
}

// OutreachRecord is one outreach/inclusion observation per unit, course,
// modality and gender.
type OutreachRecord struct {
	Year                 int    `json:"ano" validate:"required,gte=2000,lte=2100"`
	Unit                 string `json:"unidade" validate:"required"`
	Course               string `json:"curso" validate:"required"`
	Modality             string `json:"modalidade" validate:"required"`
	Gender               string `json:"genero" validate:"required"`
	CompletedInternships int    `json:"estagios_concluidos" validate:"min=0"`
	SpecialNeedsAdmitted int    `json:"pne_ingressantes" validate:"min=0"`
	NeedType             string `json:"tipo_necessidade"`
}

// BudgetRecord is one budget-execution observation per unit and expense
// category.
type BudgetRecord struct {
	Year      int     `json:"ano" validate:"required,gte=2000,lte=2100"`
	Unit      string  `json:"unidade" validate:"required"`
	Category  string  `json:"categoria" validate:"required"`
	Allocated float64 `json:"dotacao" validate:"min=0"`
	Committed float64 `json:"empenhado" validate:"min=0"`
	Paid      float64 `json:"pago" validate:"min=0"`
}

// StaffRecord is one staffing observation per unit and year.
type StaffRecord struct {
	Year        int    `json:"ano" validate:"required,gte=2000,lte=2100"`
	Unit        string `json:"unidade" validate:"required"`
	Faculty     int    `json:"docentes" validate:"min=0"`
	Technicians int    `json:"tecnicos" validate:"min=0"`
	Total       int    `json:"total_servidores" validate:"min=0"`
}

// OmbudsmanRecord is one ombudsman observation per unit, manifestation type
// and user profile for a given month.
type OmbudsmanRecord struct {
	Year              int    `json:"ano" validate:"required,gte=2000,lte=2100"`
	Month             int    `json:"mes" validate:"min=1,max=12"`
	Unit              string `json:"unidade" validate:"required"`
	ManifestationType string `json:"tipo_manifestacao" validate:"required"`
	UserType          string `json:"tipo_usuario" validate:"required"`
	Quantity          int    `json:"quantidade" validate:"min=0"`
	ResponseDays      int    `json:"dias_atendimento" validate:"min=0"`
}

// AuditRecord is one internal-audit observation per unit and year.
// Attended recommendations never exceed issued ones.
type AuditRecord struct {
	Year           int     `json:"ano" validate:"required,gte=2000,lte=2100"`
	Unit           string  `json:"unidade" validate:"required"`
	Issued         int     `json:"recomendacoes_emitidas" validate:"min=0"`
	Attended       int     `json:"recomendacoes_atendidas" validate:"min=0,ltefield=Issued"`
	AttendanceRate float64 `json:"percentual_atendimento" validate:"min=0,max=100"`
}

// LaborRecord is one labor-market observation per region and economic
// sector. Balance is signed: a region can shed more jobs than it creates.
type LaborRecord struct {
	Year      int    `json:"ano" validate:"required,gte=2000,lte=2100"`
	Region    string `json:"regiao" validate:"required"`
	Sector    string `json:"setor_atividade" validate:"required"`
	Hired     int    `json:"admissoes" validate:"min=0"`
	Dismissed int    `json:"desligamentos" validate:"min=0"`
	Balance   int    `json:"saldo"`
}
