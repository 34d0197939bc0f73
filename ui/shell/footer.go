package shell

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/Zookegger/ExamPro-Scheduler-sub003/ui"
)

// footerVariants maps each role to its footer renderer, mirroring the navbar
// dispatch table.
var footerVariants = map[ui.Role]func(FooterConfig) g.Node{
	ui.RoleAdmin:   adminFooter,
	ui.RoleTeacher: teacherFooter,
	ui.RoleStudent: studentFooter,
	ui.RoleGuest:   guestFooter,
}

// Footer renders the footer variant for the user's role. Unrecognized roles
// fall through to the guest variant.
func Footer(cfg FooterConfig) g.Node {
	return footerVariants[ui.Normalize(cfg.Role)](cfg)
}

// adminFooter renders nothing, matching the navbar's admin rule.
func adminFooter(FooterConfig) g.Node {
	return nil
}

func teacherFooter(cfg FooterConfig) g.Node {
	return footerFrame(cfg,
		footerLink("/help/teachers", "Teacher Guide"),
		footerLink("/teacher/availability", "Update Availability"),
		footerLink("/contact", "Contact"),
	)
}

func studentFooter(cfg FooterConfig) g.Node {
	return footerFrame(cfg,
		footerLink("/help/students", "Student Guide"),
		footerLink("/student/timetable", "Timetable"),
		footerLink("/contact", "Contact"),
	)
}

func guestFooter(cfg FooterConfig) g.Node {
	return footerFrame(cfg,
		footerLink("/about", "About"),
		footerLink("/calendar", "Exam Calendar"),
		footerLink("/login", "Sign in"),
	)
}

func footerFrame(cfg FooterConfig, links ...g.Node) g.Node {
	return html.Footer(
		html.Class("mt-12 border-t py-6"),
		html.Div(
			html.Class("flex flex-col items-center gap-2 text-sm text-muted-foreground"),
			html.Div(
				append([]g.Node{html.Class("flex items-center gap-4")}, links...)...,
			),
			html.P(g.Text("ExamPro Scheduler — exam planning for schools")),
			g.If(cfg.Development, html.Span(
				html.Class("rounded bg-amber-500/15 px-2 py-0.5 text-xs font-medium text-amber-600"),
				g.Text("Development build"),
			)),
		),
	)
}

func footerLink(href, label string) g.Node {
	return html.A(
		html.Href(href),
		html.Class("transition-colors hover:text-foreground"),
		g.Text(label),
	)
}
