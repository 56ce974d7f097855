// Package auth decides where a login lands. It is not an authorization
// system: no session is created and no later request is checked.
package auth

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleContributor Role = "contributor"
)

// Landing returns the route a user with this role is redirected to after login
func (r Role) Landing() string {
	switch r {
	case RoleAdmin:
		return "/library"
	case RoleContributor:
		return "/add_books"
	}
	return "/"
}

// Checker maps a username/password pair to a role
type Checker interface {
	Check(username, password string) (Role, bool)
}

// Credential is one row of a static credential table
type Credential struct {
	Username string
	Password string
	Role     Role
}

// Static is a fixed credential table compared field by field
type Static []Credential

// Builtin is the two-row table shipped with the application
var Builtin = Static{
	{Username: "Admin", Password: "@dm1n", Role: RoleAdmin},
	{Username: "User", Password: "Us3r", Role: RoleContributor},
}

func (s Static) Check(username, password string) (Role, bool) {
	for _, c := range s {
		if c.Username == username && c.Password == password {
			return c.Role, true
		}
	}
	return "", false
}
