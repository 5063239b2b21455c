package model

// Role is the closed set of staff roles. A user's role is fixed at creation
// and determines the full set of operations it may invoke.
type Role string

const (
	RoleManager  Role = "MANAGER"
	RolePantry   Role = "PANTRY"
	RoleDelivery Role = "DELIVERY"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleManager, RolePantry, RoleDelivery:
		return true
	}
	return false
}
