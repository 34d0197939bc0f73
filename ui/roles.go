package ui

import (
	g "maragu.dev/gomponents"
)

// Role is the authenticated user's access category. It drives which UI
// variant every role-aware component renders.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
	RoleGuest   Role = "guest"
)

// roleInfo pairs the display label with the icon token for a role.
type roleInfo struct {
	Label string
	Icon  string
}

// roleTable is the single source of truth for role presentation, shared by
// the navbar and the admin sidebar.
var roleTable = map[Role]roleInfo{
	RoleAdmin:   {Label: "Administrator", Icon: "shield"},
	RoleTeacher: {Label: "Teacher", Icon: "workspace"},
	RoleStudent: {Label: "Student", Icon: "badge"},
	RoleGuest:   {Label: "Guest", Icon: "person"},
}

// Normalize maps any unrecognized role value (including the empty string)
// to RoleGuest so every component resolves to a valid variant.
func Normalize(r Role) Role {
	if _, ok := roleTable[r]; ok {
		return r
	}
	return RoleGuest
}

// RoleLabel returns the display label for a role, falling back to the guest
// label for unknown values.
func RoleLabel(r Role) string {
	return roleTable[Normalize(r)].Label
}

// RoleIcon returns the icon node for a role at the given pixel size.
func RoleIcon(r Role, size int) g.Node {
	return NavIcon(roleTable[Normalize(r)].Icon, size)
}
