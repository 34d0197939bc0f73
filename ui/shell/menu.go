package shell

import (
	"strconv"
	"strings"
)

// MenuItem is a single navigable sidebar entry.
type MenuItem struct {
	Path  string
	Title string
	Icon  string
}

// MenuSection is a named, collapsible group of menu items.
type MenuSection struct {
	ID    string
	Title string
	Icon  string
	Items []MenuItem
}

// PrimaryMenuSectionID is the section expanded when the sidebar first renders.
const PrimaryMenuSectionID = "main"

// AdminMenu returns the ordered sidebar sections. The development tools
// section is appended only when development is true; the menu is re-derived
// on every call so a flag change takes effect on the next render.
func AdminMenu(development bool) []MenuSection {
	sections := []MenuSection{
		{
			ID:    PrimaryMenuSectionID,
			Title: "Exam Management",
			Icon:  "file-text",
			Items: []MenuItem{
				{Path: "/", Title: "Dashboard", Icon: "home"},
				{Path: "/admin/manage-exam", Title: "Manage Exams", Icon: "file-text"},
				{Path: "/admin/schedules", Title: "Exam Schedules", Icon: "calendar"},
				{Path: "/admin/rooms", Title: "Exam Rooms", Icon: "box"},
			},
		},
		{
			ID:    "people",
			Title: "People",
			Icon:  "person",
			Items: []MenuItem{
				{Path: "/admin/teachers", Title: "Teachers", Icon: "workspace"},
				{Path: "/admin/students", Title: "Students", Icon: "badge"},
			},
		},
		{
			ID:    "system",
			Title: "System",
			Icon:  "settings",
			Items: []MenuItem{
				{Path: "/admin/subjects", Title: "Subjects", Icon: "layers"},
				{Path: "/admin/settings", Title: "Settings", Icon: "settings"},
			},
		},
	}

	if development {
		sections = append(sections, MenuSection{
			ID:    "dev",
			Title: "Development",
			Icon:  "server",
			Items: []MenuItem{
				{Path: "/admin/dev/seed", Title: "Seed Data", Icon: "box"},
				{Path: "/admin/dev/components", Title: "Component Preview", Icon: "activity"},
			},
		})
	}

	return sections
}

// ExpandedMenuState tracks which sidebar sections are expanded. Multiple
// sections may be open at once. The state belongs to a single sidebar
// instance and is never shared or persisted.
type ExpandedMenuState struct {
	open map[string]bool
}

// NewExpandedMenuState returns a state with only the primary section open.
func NewExpandedMenuState() *ExpandedMenuState {
	return &ExpandedMenuState{open: map[string]bool{PrimaryMenuSectionID: true}}
}

// Toggle flips membership of id in the expanded set. Toggling the same id
// twice restores the prior membership.
func (s *ExpandedMenuState) Toggle(id string) {
	if s.open[id] {
		delete(s.open, id)
		return
	}
	s.open[id] = true
}

// Expanded reports whether the section id is currently expanded.
func (s *ExpandedMenuState) Expanded(id string) bool {
	return s.open[id]
}

// alpineSeed renders the expansion state as an Alpine x-data object literal
// covering the given sections, e.g. {open:{main:true,people:false}}.
func (s *ExpandedMenuState) alpineSeed(sections []MenuSection) string {
	var sb strings.Builder
	sb.WriteString("{open:{")
	for i, sec := range sections {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(sanitizeAlpineKey(sec.ID))
		sb.WriteString(":")
		sb.WriteString(strconv.FormatBool(s.Expanded(sec.ID)))
	}
	sb.WriteString("}}")
	return sb.String()
}

// isActivePath reports whether a menu path should be highlighted for the
// current location. The root path matches only the exact root; every other
// path matches as a plain prefix of the location. Sibling routes sharing a
// prefix would both register active; the menu paths are chosen so that
// never happens.
func isActivePath(itemPath, currentPath string) bool {
	if itemPath == "" || currentPath == "" {
		return false
	}

	if itemPath == "/" {
		return currentPath == "/"
	}

	return strings.HasPrefix(currentPath, itemPath)
}

// sanitizeAlpineKey converts a section id to a valid Alpine.js object key.
func sanitizeAlpineKey(id string) string {
	var sb strings.Builder

	for _, c := range id {
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' {
			sb.WriteRune(c)
		}
	}

	result := sb.String()

	if result == "" {
		return "section"
	}

	// Ensure it doesn't start with a digit
	if result[0] >= '0' && result[0] <= '9' {
		result = "s" + result
	}

	return result
}
