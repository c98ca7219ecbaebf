package user

type User struct {
	ID     string   `json:"id" yaml:"id"`
	Name   string   `json:"name" yaml:"name"`
	Email  string   `json:"email" yaml:"email"`
	Role   RoleName `json:"role" yaml:"role"`
	Avatar string   `json:"avatar" yaml:"avatar"`
}

// Profile returns the role variant of the User, if the role is a known one.
func (u User) Profile() (Role, bool) {
	return ParseRole(u.Role)
}

// Can reports whether the User's role grants perm. Users with an unknown role can do nothing.
func (u User) Can(perm Permission) bool {
	if role, ok := u.Profile(); ok {
		return role.Can(perm)
	}
	return false
}

func (u User) IsAdmin() bool   { return u.Role == RoleAdmin }
func (u User) IsTeacher() bool { return u.Role == RoleTeacher }
func (u User) IsStudent() bool { return u.Role == RoleStudent }
