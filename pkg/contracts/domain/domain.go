// Package domain defines the typed dataset records shared between the
// synthetic generator, the workbook loader and the HTTP transport.
package domain

import "fmt"

// Domain identifies one of the nine institutional reporting areas.
type Domain string

const (
	DomainTeaching   Domain = "teaching"
	DomainAssistance Domain = "assistance"
	DomainResearch   Domain = "research"
	DomainOutreach   Domain = "outreach"
	DomainBudget     Domain = "budget"
	DomainStaff      Domain = "staff"
	DomainOmbudsman  Domain = "ombudsman"
	DomainAudit      Domain = "audit"
	DomainLabor      Domain = "labor"
)

// AllDomains lists every reporting domain in presentation order.
func AllDomains() []Domain {
	return []Domain{
		DomainTeaching,
		DomainAssistance,
		DomainResearch,
		DomainOutreach,
		DomainBudget,
		DomainStaff,
		DomainOmbudsman,
		DomainAudit,
		DomainLabor,
	}
}

// ParseDomain converts a URL/CLI string into a Domain.
func ParseDomain(s string) (Domain, error) {
	d := Domain(s)
	for _, known := range AllDomains() {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown domain: %q", s)
}

// String implements fmt.Stringer.
func (d Domain) String() string { return string(d) }

// YearRange is the inclusive synthesis range for each domain. Loaded
// workbooks may cover any sub-range; synthesized tables cover it exactly.
type YearRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Years returns the synthesis year range for the domain.
func (d Domain) Years() YearRange {
	switch d {
	case DomainTeaching:
		return YearRange{2019, 2025}
	case DomainAssistance:
		return YearRange{2015, 2025}
	case DomainResearch:
		return YearRange{2010, 2025}
	case DomainOutreach:
		return YearRange{2019, 2023}
	case DomainBudget:
		return YearRange{2015, 2025}
	case DomainStaff:
		return YearRange{2013, 2025}
	case DomainOmbudsman:
		return YearRange{2015, 2025}
	case DomainAudit:
		return YearRange{2011, 2025}
	case DomainLabor:
		return YearRange{2010, 2025}
	}
	return YearRange{}
}

// DatasetMeta is the small side-table persisted on the metadata sheet of
// every cached workbook and exposed on the metadata endpoint.
type DatasetMeta struct {
	Domain        Domain `json:"domain"`
	UpdatedAt     string `json:"updated_at"`
	Records       int    `json:"records"`
	YearMin       int    `json:"year_min"`
	YearMax       int    `json:"year_max"`
	SchemaVersion int    `json:"schema_version"`
	RunID         string `json:"run_id,omitempty"`
	Source        string `json:"source"`
}

// Source values recorded in DatasetMeta.
const (
	SourceSynthetic = "synthetic"
	SourceFile      = "file"
	SourceCache     = "cache"
)
