package domain

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

// User models an authenticated actor in the system. Users come from a fixed
// seed set loaded at startup; there is no registration flow.
type User struct {
	ID             int64  `json:"id" bson:"id"`
	Username       string `json:"username" bson:"username"`
	PasswordHash   string `json:"-" bson:"password_hash"`
	Role           string `json:"role" bson:"role"`
	Name           string `json:"name" bson:"name"`
	MembershipType string `json:"membership_type" bson:"membership_type"`
}

// Sanitized returns a copy of the user with the password hash cleared.
// Every user leaving the service layer goes through this.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.PasswordHash = ""
	return &clone
}

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RolePatient || role == RoleDoctor
}
