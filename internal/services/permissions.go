package services

import (
	"strings"

	"github.com/mpradela/managme/internal/models"
)

// Operation groups the mutating endpoint classes that share an allowed-role
// set. Reads are open to every authenticated role and need no entry here.
type Operation string

const (
	OperationProjectWrite   Operation = "project.write"
	OperationTaskWrite      Operation = "task.write"
	OperationMilestoneWrite Operation = "milestone.write"
	OperationUserAdmin      Operation = "user.admin"
)

var allowedRolesByOperation = map[Operation][]string{
	OperationProjectWrite:   {models.RoleAdmin, models.RoleDevops, models.RoleDeveloper},
	OperationTaskWrite:      {models.RoleAdmin, models.RoleDevops, models.RoleDeveloper},
	OperationMilestoneWrite: {models.RoleAdmin, models.RoleDevops, models.RoleDeveloper},
	OperationUserAdmin:      {models.RoleAdmin},
}

// AllowedRoles returns a copy of the role set permitted to perform the
// operation. Unknown operations yield an empty set, which denies everyone.
func AllowedRoles(operation Operation) []string {
	roles := allowedRolesByOperation[operation]
	result := make([]string, len(roles))
	copy(result, roles)
	return result
}

// IsAuthorized reports whether the caller's role belongs to the allowed
// set. A blank role always denies.
func IsAuthorized(role string, allowedRoles []string) bool {
	if strings.TrimSpace(role) == "" {
		return false
	}
	for _, allowed := range allowedRoles {
		if allowed == role {
			return true
		}
	}
	return false
}
