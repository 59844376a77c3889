// Package synthetic produces deterministic pseudo-random datasets for every
// reporting domain. A Generator owns its own seeded rand source so tests and
// callers can run in isolation; two Generators built with the same seed yield
// identical tables.
package synthetic

import (
	"fmt"
	"math/rand"
	"strings"

	"campusboard/pkg/contracts/domain"
)

// Generator synthesizes domain datasets.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator with the given seed.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// campusSizeFactor scales measures by campus size: the two large campuses
// carry more students, the three mid-size ones a baseline, the rest less.
func campusSizeFactor(campus string) float64 {
	switch {
	case strings.Contains(campus, "João Pessoa"), strings.Contains(campus, "Campina Grande"):
		return 1.5
	case strings.Contains(campus, "Cajazeiras"), strings.Contains(campus, "Sousa"), strings.Contains(campus, "Patos"):
		return 1.0
	default:
		return 0.6
	}
}

// uniform draws from [lo, hi).
func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// between draws an int from [lo, hi] inclusive.
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

func (g *Generator) choice(values []string) string {
	return values[g.rng.Intn(len(values))]
}

// sample draws n distinct values preserving no particular order.
func (g *Generator) sample(values []string, n int) []string {
	idx := g.rng.Perm(len(values))
	out := make([]string, 0, n)
	for _, i := range idx[:n] {
		out = append(out, values[i])
	}
	return out
}

// Teaching synthesizes the teaching dataset: enrolment, graduation, dropout
// and transfer counts per year, campus, course and modality. The 2020-2022
// rows carry the pandemic adjustment (dropouts up 30%, graduates down 20%).
func (g *Generator) Teaching() []domain.TeachingRecord {
	years := domain.DomainTeaching.Years()
	var records []domain.TeachingRecord

	for year := years.Min; year <= years.Max; year++ {
		for _, campus := range Units {
			sizeFactor := campusSizeFactor(campus)

			// Smaller campuses offer a narrower slice of the catalogue.
			campusCourses := g.sample(Courses, g.between(8, 15))

			for _, course := range campusCourses {
				for _, modality := range Modalities {
					// Most courses are classroom-only.
					if modality == "EAD" && g.rng.Float64() < 0.7 {
						continue
					}
					if modality == "Semipresencial" && g.rng.Float64() < 0.8 {
						continue
					}

					base := g.between(30, 150)
					growth := float64(year-years.Min) * 0.05
					enrolled := int(float64(base) * sizeFactor * (1 + growth))
					if enrolled < 10 {
						enrolled = 10
					}

					graduated := int(float64(enrolled) * g.uniform(0.15, 0.30))
					dropped := int(float64(enrolled) * g.uniform(0.05, 0.20))
					transferred := int(float64(enrolled) * g.uniform(0.02, 0.10))

					if year >= 2020 && year <= 2022 {
						dropped = int(float64(dropped) * 1.3)
						graduated = int(float64(graduated) * 0.8)
					}

					records = append(records, domain.TeachingRecord{
						Year:        year,
						Campus:      campus,
						Course:      course,
						Modality:    modality,
						Enrolled:    enrolled,
						Graduated:   graduated,
						Dropped:     dropped,
						Transferred: transferred,
					})
				}
			}
		}
	}
	return records
}

// Assistance synthesizes monthly assistance-program grants per unit,
// program and course level.
func (g *Generator) Assistance() []domain.AssistanceRecord {
	years := domain.DomainAssistance.Years()
	var records []domain.AssistanceRecord

	for year := years.Min; year <= years.Max; year++ {
		for _, unit := range Units {
			for _, program := range AssistancePrograms {
				for _, level := range CourseLevels {
					for month := 1; month <= 12; month++ {
						installments := g.between(10, 100)
						beneficiaries := int(float64(installments) * g.uniform(0.7, 1.0))
						totalValue := float64(installments) * g.uniform(200, 800)

						records = append(records, domain.AssistanceRecord{
							Year:          year,
							Month:         month,
							Unit:          unit,
							Program:       program,
							CourseLevel:   level,
							Installments:  installments,
							Beneficiaries: beneficiaries,
							TotalValue:    totalValue,
							AgeBracket:    g.choice(AgeBrackets),
							Gender:        g.choice(Genders),
						})
					}
				}
			}
		}
	}
	return records
}

// Research synthesizes scientific production per unit, publication type and
// knowledge area, with a keyword list and lead author per row.
func (g *Generator) Research() []domain.ResearchRecord {
	years := domain.DomainResearch.Years()
	var records []domain.ResearchRecord

	for year := years.Min; year <= years.Max; year++ {
		for _, unit := range Units {
			for _, pubType := range PublicationTypes {
				for _, area := range KnowledgeAreas {
					records = append(records, domain.ResearchRecord{
						Year:            year,
						Unit:            unit,
						PublicationType: pubType,
						KnowledgeArea:   area,
						Quantity:        g.between(5, 50),
						Keywords:        g.KeywordsFor(area),
						LeadAuthor:      fmt.Sprintf("Prof. %s Silva", g.choice(leadAuthorFirstNames)),
					})
				}
			}
		}
	}
	return records
}

// KeywordsFor draws a keyword list for a knowledge area: up to four
// area-specific terms plus two or three general ones. Also used by the
// loader to backfill cached research workbooks from the previous schema.
func (g *Generator) KeywordsFor(area string) string {
	bank := areaKeywords[area]
	if bank == nil {
		bank = generalKeywords[:4]
	}
	n := 4
	if n > len(bank) {
		n = len(bank)
	}
	words := g.sample(bank, n)
	words = append(words, g.sample(generalKeywords, g.between(2, 3))...)
	return strings.Join(words, ", ")
}

// Outreach synthesizes internship completion and special-needs admission
// counts per unit, course, modality and gender.
func (g *Generator) Outreach() []domain.OutreachRecord {
	years := domain.DomainOutreach.Years()
	var records []domain.OutreachRecord

	for year := years.Min; year <= years.Max; year++ {
		for _, unit := range Units {
			sizeFactor := campusSizeFactor(unit)
			unitCourses := g.sample(Courses, g.between(6, 12))

			for _, course := range unitCourses {
				for _, modality := range Modalities[:2] { // Presencial, EAD
					if modality == "EAD" && g.rng.Float64() < 0.6 {
						continue
					}
					for _, gender := range Genders {
						growth := float64(year-years.Min) * 0.05
						internships := int(float64(g.between(5, 40)) * sizeFactor * (1 + growth))
						pne := g.between(0, 8)
						needType := ""
						if pne > 0 {
							needType = g.choice(NeedTypes)
						}

						records = append(records, domain.OutreachRecord{
							Year:                 year,
							Unit:                 unit,
							Course:               course,
							Modality:             modality,
							Gender:               gender,
							CompletedInternships: internships,
							SpecialNeedsAdmitted: pne,
							NeedType:             needType,
						})
					}
				}
			}
		}
	}
	return records
}

// Budget synthesizes budget execution per unit and expense category.
// Committed never exceeds allocated and paid never exceeds committed.
func (g *Generator) Budget() []domain.BudgetRecord {
	years := domain.DomainBudget.Years()
	var records []domain.BudgetRecord

	for year := years.Min; year <= years.Max; year++ {
		for _, unit := range Units {
			for _, category := range BudgetCategories {
				allocated := g.uniform(500_000, 5_000_000)
				committed := allocated * g.uniform(0.7, 0.95)
				paid := committed * g.uniform(0.8, 1.0)

				records = append(records, domain.BudgetRecord{
					Year:      year,
					Unit:      unit,
					Category:  category,
					Allocated: allocated,
					Committed: committed,
					Paid:      paid,
				})
			}
		}
	}
	return records
}

// Staff synthesizes faculty and technician headcounts per unit with gradual
// institutional growth.
func (g *Generator) Staff() []domain.StaffRecord {
	years := domain.DomainStaff.Years()
	var records []domain.StaffRecord

	for year := years.Min; year <= years.Max; year++ {
		for _, unit := range Units {
			growth := float64(year-years.Min) * 0.05
			faculty := int(float64(g.between(30, 80)) * (1 + growth))
			technicians := int(float64(g.between(20, 60)) * (1 + growth))

			records = append(records, domain.StaffRecord{
				Year:        year,
				Unit:        unit,
				Faculty:     faculty,
				Technicians: technicians,
				Total:       faculty + technicians,
			})
		}
	}
	return records
}

// Ombudsman synthesizes monthly manifestation counts per unit, manifestation
// type and user profile.
func (g *Generator) Ombudsman() []domain.OmbudsmanRecord {
	years := domain.DomainOmbudsman.Years()
	var records []domain.OmbudsmanRecord

	for year := years.Min; year <= years.Max; year++ {
		for month := 1; month <= 12; month++ {
			for _, unit := range Units {
				for _, manType := range ManifestationTypes {
					for _, userType := range UserTypes {
						records = append(records, domain.OmbudsmanRecord{
							Year:              year,
							Month:             month,
							Unit:              unit,
							ManifestationType: manType,
							UserType:          userType,
							Quantity:          g.between(1, 20),
							ResponseDays:      g.between(1, 30),
						})
					}
				}
			}
		}
	}
	return records
}

// Audit synthesizes issued/attended recommendation counts per unit. The
// attended count is a 60-90% share of the issued count, so the attendance
// rate always lands in [0, 100].
func (g *Generator) Audit() []domain.AuditRecord {
	years := domain.DomainAudit.Years()
	var records []domain.AuditRecord

	for year := years.Min; year <= years.Max; year++ {
		for _, unit := range Units {
			issued := g.between(5, 30)
			attended := int(float64(issued) * g.uniform(0.6, 0.9))

			records = append(records, domain.AuditRecord{
				Year:           year,
				Unit:           unit,
				Issued:         issued,
				Attended:       attended,
				AttendanceRate: float64(attended) / float64(issued) * 100,
			})
		}
	}
	return records
}

// Labor synthesizes hiring and dismissal counts per region and economic
// sector. The balance is hired minus dismissed and may be negative.
func (g *Generator) Labor() []domain.LaborRecord {
	years := domain.DomainLabor.Years()
	var records []domain.LaborRecord

	for year := years.Min; year <= years.Max; year++ {
		for _, region := range Regions {
			for _, sector := range Sectors {
				hired := g.between(50, 500)
				dismissed := g.between(30, 400)

				records = append(records, domain.LaborRecord{
					Year:      year,
					Region:    region,
					Sector:    sector,
					Hired:     hired,
					Dismissed: dismissed,
					Balance:   hired - dismissed,
				})
			}
		}
	}
	return records
}
