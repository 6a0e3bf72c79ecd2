package auth

const (
	RoleHR          = "rh"
	RoleBPRH        = "bp_rh"
	RoleSupervisor  = "supervisor"
	RoleColaborador = "colaborador"
)

var Roles = []string{RoleHR, RoleBPRH, RoleSupervisor, RoleColaborador}

// AdminRoles may manage users, the organizational structure and movements.
var AdminRoles = []string{RoleHR, RoleBPRH}

// EvaluatorRoles may record evaluations and feedback.
var EvaluatorRoles = []string{RoleHR, RoleBPRH, RoleSupervisor}

func IsAdmin(role string) bool {
	return role == RoleHR || role == RoleBPRH
}

func CanEvaluate(role string) bool {
	return role == RoleHR || role == RoleBPRH || role == RoleSupervisor
}

func ValidRole(role string) bool {
	for _, candidate := range Roles {
		if role == candidate {
			return true
		}
	}
	return false
}
