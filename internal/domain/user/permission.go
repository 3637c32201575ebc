package user

type Permission string

const (
	PermissionTimeAdministrationView Permission = "time_administration.view"
	PermissionVacationRequest        Permission = "vacation.request"
	PermissionVacationApprove        Permission = "vacation.approve"
	PermissionTimeEntryManageOwn     Permission = "time_entry.manage_own"
	PermissionProjectManage          Permission = "project.manage"
	PermissionTaskManage             Permission = "task.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleManager: {
		PermissionTimeAdministrationView,
		PermissionVacationRequest,
		PermissionVacationApprove,
		PermissionTimeEntryManageOwn,
		PermissionProjectManage,
		PermissionTaskManage,
	},
	RoleEmployee: {
		PermissionVacationRequest,
		PermissionTimeEntryManageOwn,
		PermissionProjectManage,
		PermissionTaskManage,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
