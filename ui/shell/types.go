package shell

import (
	g "maragu.dev/gomponents"

	"github.com/Zookegger/ExamPro-Scheduler-sub003/ui"
)

// NavbarConfig holds the data needed to render the role-based navbar.
//
// Handler fields carry caller-supplied attribute nodes (typically an Alpine
// @click expression) that are applied verbatim to the matching control. The
// components never implement the behavior themselves.
type NavbarConfig struct {
	Role     ui.Role
	FullName string

	// OnLogout is attached to the logout control, e.g.
	// g.Attr("@click", "$store.session.logout()").
	OnLogout g.Node
}

// FooterConfig holds the data needed to render the role-based footer.
// The footer emits no events.
type FooterConfig struct {
	Role        ui.Role
	Development bool
}

// SidebarConfig holds all data needed to render the admin sidebar.
type SidebarConfig struct {
	// Visible is externally driven; false collapses the panel to zero width.
	Visible     bool
	Role        ui.Role
	FullName    string
	Development bool
	UnreadCount int

	// CurrentPath is the current location path used for active-route
	// highlighting.
	CurrentPath string

	// Expanded is the set of expanded section ids. Leave nil for a fresh
	// state with only the primary section open.
	Expanded *ExpandedMenuState

	OnToggleSidebar       g.Node
	OnToggleNotifications g.Node
	OnLogout              g.Node
}
