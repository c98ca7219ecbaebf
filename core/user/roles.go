package user

// RoleName is the serialized form of a Role.
type RoleName string

// Roles
const (
	RoleTeacher RoleName = "teacher"
	RoleStudent RoleName = "student"
	RoleAdmin   RoleName = "admin"
)

// Permission is an action a Role may be allowed to perform.
type Permission string

// Permissions
const (
	PermManageExams Permission = "manage-exams"
	PermViewExams   Permission = "view-exams"
	PermTakeExams   Permission = "take-exams"
	PermManageUsers Permission = "manage-users"
)

// Section is one entry of the navigation menu.
type Section struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var sectionDashboard = Section{ID: "dashboard", Label: "Dashboard"}

// Role is one of the closed set of role variants: Teacher, Student or Admin.
// Each variant carries its own menu and permission table.
type Role interface {
	Name() RoleName
	// Menu returns the ordered navigation sections; the dashboard always comes first.
	Menu() []Section
	Can(perm Permission) bool

	sealed()
}

type (
	teacherRole struct{}
	studentRole struct{}
	adminRole   struct{}
)

var (
	Teacher Role = teacherRole{}
	Student Role = studentRole{}
	Admin   Role = adminRole{}

	// Roles lists every Role variant.
	Roles = []Role{Teacher, Student, Admin}
)

func (teacherRole) Name() RoleName { return RoleTeacher }

func (teacherRole) Menu() []Section {
	return []Section{
		sectionDashboard,
		{ID: "exams", Label: "Exams"},
		{ID: "questions", Label: "Question Bank"},
		{ID: "students", Label: "Students"},
		{ID: "results", Label: "Results"},
		{ID: "analytics", Label: "Analytics"},
	}
}

func (teacherRole) Can(perm Permission) bool {
	return perm == PermManageExams || perm == PermViewExams
}

func (teacherRole) sealed() {}

func (studentRole) Name() RoleName { return RoleStudent }

func (studentRole) Menu() []Section {
	return []Section{
		sectionDashboard,
		{ID: "available-exams", Label: "Available Exams"},
		{ID: "my-results", Label: "My Results"},
		{ID: "schedule", Label: "Schedule"},
		{ID: "achievements", Label: "Achievements"},
	}
}

func (studentRole) Can(perm Permission) bool {
	return perm == PermTakeExams
}

func (studentRole) sealed() {}

func (adminRole) Name() RoleName { return RoleAdmin }

func (adminRole) Menu() []Section {
	return []Section{
		sectionDashboard,
		{ID: "users", Label: "User Management"},
		{ID: "system-exams", Label: "All Exams"},
		{ID: "system-analytics", Label: "System Analytics"},
		{ID: "database", Label: "Data Management"},
		{ID: "security", Label: "Security"},
		{ID: "settings", Label: "Settings"},
	}
}

func (adminRole) Can(perm Permission) bool {
	return perm == PermViewExams || perm == PermManageUsers
}

func (adminRole) sealed() {}

// ParseRole returns the Role variant named name.
func ParseRole(name RoleName) (Role, bool) {
	for _, role := range Roles {
		if role.Name() == name {
			return role, true
		}
	}
	return nil, false
}

// MenuFor returns the navigation menu of the named role.
// An unknown or empty role only gets the dashboard.
func MenuFor(name RoleName) []Section {
	if role, ok := ParseRole(name); ok {
		return role.Menu()
	}
	return []Section{sectionDashboard}
}
