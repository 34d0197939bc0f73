package shell

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/Zookegger/ExamPro-Scheduler-sub003/ui"
)

// navbarVariants maps each role to its navbar renderer. The table is the
// single source of truth for variant selection; per-role markup stays in
// independent functions.
var navbarVariants = map[ui.Role]func(NavbarConfig) g.Node{
	ui.RoleAdmin:   adminNavbar,
	ui.RoleTeacher: teacherNavbar,
	ui.RoleStudent: studentNavbar,
	ui.RoleGuest:   guestNavbar,
}

// Navbar renders the navbar variant for the user's role. Unrecognized roles
// fall through to the guest variant.
func Navbar(cfg NavbarConfig) g.Node {
	return navbarVariants[ui.Normalize(cfg.Role)](cfg)
}

// adminNavbar renders nothing: admin screens are navigated from the sidebar,
// never from a navbar.
func adminNavbar(NavbarConfig) g.Node {
	return nil
}

func teacherNavbar(cfg NavbarConfig) g.Node {
	return navbarFrame(ui.RoleTeacher, cfg,
		navLink("/teacher/exams", "My Exams"),
		navLink("/teacher/schedule", "Invigilation Schedule"),
		navLink("/teacher/availability", "Availability"),
	)
}

func studentNavbar(cfg NavbarConfig) g.Node {
	return navbarFrame(ui.RoleStudent, cfg,
		navLink("/student/exams", "My Exams"),
		navLink("/student/timetable", "Timetable"),
		navLink("/student/results", "Results"),
	)
}

func guestNavbar(cfg NavbarConfig) g.Node {
	return html.Nav(
		html.Class("sticky top-0 z-40 flex h-14 items-center gap-4 border-b bg-background/95 px-4 backdrop-blur"),
		navbarBrand(),
		html.Div(
			html.Class("flex flex-1 items-center gap-1"),
			navLink("/", "Home"),
			navLink("/calendar", "Exam Calendar"),
		),
		html.A(
			html.Href("/login"),
			html.Class("inline-flex items-center gap-2 rounded-md bg-primary px-3 py-1.5 text-sm font-medium text-primary-foreground transition-colors hover:bg-primary/90"),
			ui.NavIcon("login", 16),
			g.Text("Sign in"),
		),
	)
}

// navbarFrame assembles the signed-in navbar shell shared by the teacher and
// student variants: brand, role links, identity chip, and logout control.
func navbarFrame(role ui.Role, cfg NavbarConfig, links ...g.Node) g.Node {
	return html.Nav(
		html.Class("sticky top-0 z-40 flex h-14 items-center gap-4 border-b bg-background/95 px-4 backdrop-blur"),
		navbarBrand(),
		html.Div(
			append([]g.Node{html.Class("flex flex-1 items-center gap-1")}, links...)...,
		),
		html.Div(
			html.Class("flex items-center gap-3"),
			html.Div(
				html.Class("flex items-center gap-2 text-sm"),
				ui.RoleIcon(role, 16),
				html.Span(
					html.Class("font-medium"),
					g.Text(cfg.FullName),
				),
				html.Span(
					html.Class("hidden text-xs text-muted-foreground sm:inline-block"),
					g.Text(ui.RoleLabel(role)),
				),
			),
			logoutButton(cfg.OnLogout),
		),
	)
}

func navbarBrand() g.Node {
	return html.A(
		html.Href("/"),
		html.Class("flex items-center gap-2 font-semibold"),
		ui.NavIcon("workspace", 20),
		html.Span(g.Text("ExamPro Scheduler")),
	)
}

func navLink(href, label string) g.Node {
	return html.A(
		html.Href(href),
		html.Class("rounded-md px-3 py-2 text-sm text-muted-foreground transition-colors hover:bg-muted hover:text-foreground"),
		g.Text(label),
	)
}

// logoutButton renders the logout control with the caller-supplied click
// attribute. Logout itself happens in the session collaborator.
func logoutButton(onLogout g.Node) g.Node {
	return html.Button(
		html.Type("button"),
		html.Class("inline-flex items-center gap-2 rounded-md px-3 py-1.5 text-sm text-muted-foreground transition-colors hover:bg-muted hover:text-foreground"),
		g.Attr("aria-label", "Sign out"),
		onLogout,
		ui.NavIcon("logout", 16),
		g.Text("Sign out"),
	)
}
