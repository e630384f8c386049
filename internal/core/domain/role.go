package domain

// Role titles form a closed enumeration, totally ordered by access level.
const (
	RoleViewer = "viewer" // Read public documents only
	RoleStaff  = "staff"  // Read/write staff-level documents
	RoleAdmin  = "admin"  // Full access, user management, deletion
)

// accessLevels is the rank table. Higher level = more privilege.
var accessLevels = map[string]int{
	RoleViewer: 0,
	RoleStaff:  1,
	RoleAdmin:  2,
}

// MaxAccessLevel is the top administrative rank (admin).
const MaxAccessLevel = 2

// Role is a persisted role record referenced by users and documents
type Role struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	AccessLevel int    `json:"accessLevel"`
}

// AccessLevelOf returns the rank for a role title.
// Fails with ErrUnknownRole for titles outside the enumeration.
func AccessLevelOf(title string) (int, error) {
	level, ok := accessLevels[title]
	if !ok {
		return 0, ErrUnknownRole
	}
	return level, nil
}

// DefaultRole returns the fixed lowest-rank role, assigned to any
// principal or document that does not specify a role explicitly.
func DefaultRole() string {
	return RoleViewer
}

// IsValidTitle checks whether a title belongs to the enumeration
func IsValidTitle(title string) bool {
	_, ok := accessLevels[title]
	return ok
}

// ValidTitles returns the enumeration in ascending rank order
func ValidTitles() []string {
	return []string{RoleViewer, RoleStaff, RoleAdmin}
}
