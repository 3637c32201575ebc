package user

type Role string

const (
	RoleManager  Role = "MANAGER"  // Approves vacations, reviews the team's hours
	RoleEmployee Role = "EMPLOYEE" // Regular employee
)

// User is a person in the manager hierarchy. ManagerID is nil for the top of a tree.
// The hierarchy is assumed to be a forest; only direct reports are ever resolved.
type User struct {
	ID        int64
	Name      *string
	Email     *string
	Image     *string
	Role      Role
	ManagerID *int64
}

// IsManager checks if user holds the manager role
func (u *User) IsManager() bool {
	return u.Role == RoleManager
}

// IsManagerOf reports whether u is the direct manager of other.
func (u *User) IsManagerOf(other User) bool {
	return other.ManagerID != nil && *other.ManagerID == u.ID
}

// DisplayName returns the name or "Unknown" when the provider gave none.
func (u *User) DisplayName() string {
	if u.Name == nil || *u.Name == "" {
		return "Unknown"
	}
	return *u.Name
}

// EmailOrEmpty returns the email or an empty string.
func (u *User) EmailOrEmpty() string {
	if u.Email == nil {
		return ""
	}
	return *u.Email
}
