// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleAdmin indicates the platform operator role.
	RoleAdmin Role = "admin"
	// RoleUser indicates a regular end-user role.
	RoleUser Role = "user"
	// RoleMitra indicates a service-provider (mitra) role.
	RoleMitra Role = "mitra"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleMitra:
		return true
	default:
		return false
	}
}

// Registrable reports whether the role may be chosen through
// self-registration. The admin account is only ever seeded.
func (r Role) Registrable() bool {
	return r == RoleUser || r == RoleMitra
}

// Account is the credential record. The email doubles as the account
// identifier everywhere else in the system.
type Account struct {
	Email    string `json:"email" firestore:"email"`
	Password string `json:"password" firestore:"password"`
	Role     Role   `json:"role" firestore:"role"`
}
