package constants

const (
	RoleAdmin     = "admin"
	RoleTreasurer = "treasurer"
	RoleApprover  = "approver"
	RoleViewer    = "viewer"
)

var Roles = []string{RoleAdmin, RoleTreasurer, RoleApprover, RoleViewer}

// CanVote reports whether a role is allowed to cast approval votes.
// Viewers are read-only.
func CanVote(role string) bool {
	return role == RoleAdmin || role == RoleTreasurer || role == RoleApprover
}

// IsElevated reports whether a role may trigger the emergency pause.
func IsElevated(role string) bool {
	return role == RoleAdmin || role == RoleTreasurer
}
