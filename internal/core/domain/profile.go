package domain

// Role is the platform role of a profile.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleBusiness   Role = "business"
	RoleSubscriber Role = "subscriber"
)

// Profile is a registered user: a business owner, a subscriber or an admin.
type Profile struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	BusinessName *string `json:"business_name,omitempty"`
	Role         Role    `json:"role"`
	ZipCode      *string `json:"zip_code,omitempty"`
}

// Actor is the authenticated caller of an operation, resolved from the
// request session.
type Actor struct {
	ProfileID string
	Role      Role
}

// IsAdmin reports whether the actor holds the admin role.
func (a *Actor) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}
