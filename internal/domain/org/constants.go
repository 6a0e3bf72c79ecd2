package org

const (
	StatusActive     = "active"
	StatusProbation  = "probation"
	StatusTerminated = "terminated"
)

var EmployeeStatuses = []string{StatusActive, StatusProbation, StatusTerminated}

// CompanyUnits is the fixed set of company sites.
var CompanyUnits = []string{
	"Cristalina",
	"Correntina",
	"Corporativo",
	"Ibicoara",
	"Papanduva",
	"São Gabriel",
	"Uberlandia",
}

func ValidUnit(name string) bool {
	for _, unit := range CompanyUnits {
		if name == unit {
			return true
		}
	}
	return false
}
