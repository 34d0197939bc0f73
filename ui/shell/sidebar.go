package shell

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/Zookegger/ExamPro-Scheduler-sub003/ui"
)

// Sidebar renders the admin sidebar: collapsible menu sections, the
// notification bell (admin only), and the user info/logout block. Visibility
// is externally driven; section expansion is the only state the sidebar owns.
func Sidebar(cfg SidebarConfig) g.Node {
	role := ui.Normalize(cfg.Role)
	sections := AdminMenu(cfg.Development)

	state := cfg.Expanded
	if state == nil {
		state = NewExpandedMenuState()
	}

	width := "w-64"
	if !cfg.Visible {
		width = "w-0 overflow-hidden border-r-0"
	}

	nav := make([]g.Node, 0, len(sections)+1)
	nav = append(nav, html.Class("flex-1 space-y-2 overflow-y-auto px-2 py-4"))
	for _, sec := range sections {
		nav = append(nav, sidebarSection(sec, state, cfg.CurrentPath))
	}

	return html.Aside(
		html.ID("admin-sidebar"),
		html.Class("flex h-screen flex-col border-r bg-background transition-all duration-200 "+width),
		g.Attr("x-data", state.alpineSeed(sections)),

		sidebarHeader(cfg, role),
		html.Nav(nav...),
		sidebarUserBlock(cfg, role),
	)
}

// sidebarHeader renders the brand row with the panel toggle and, for admins,
// the notification bell.
func sidebarHeader(cfg SidebarConfig, role ui.Role) g.Node {
	return html.Div(
		html.Class("flex h-14 items-center gap-2 border-b px-4"),
		html.A(
			html.Href("/"),
			html.Class("flex flex-1 items-center gap-2 font-semibold"),
			ui.NavIcon("workspace", 20),
			html.Span(g.Text("ExamPro")),
		),
		g.If(role == ui.RoleAdmin, notificationBell(cfg)),
		html.Button(
			html.Type("button"),
			html.Class("inline-flex h-8 w-8 items-center justify-center rounded-md text-muted-foreground transition-colors hover:bg-muted hover:text-foreground"),
			g.Attr("aria-label", "Toggle sidebar"),
			cfg.OnToggleSidebar,
			ui.NavIcon("menu", 18),
		),
	)
}

// notificationBell renders the bell with the unread badge. The click is
// forwarded to the caller; the sidebar owns no notification state.
func notificationBell(cfg SidebarConfig) g.Node {
	return html.Div(
		html.Class("relative"),
		html.Button(
			html.Type("button"),
			html.Class("inline-flex h-8 w-8 items-center justify-center rounded-md text-muted-foreground transition-colors hover:bg-muted hover:text-foreground"),
			g.Attr("aria-label", "Notifications"),
			cfg.OnToggleNotifications,
			ui.NavIcon("bell", 18),
		),
		ui.UnreadBadge(cfg.UnreadCount),
	)
}

// sidebarSection renders one collapsible section with its items. Expansion
// is toggled client-side via the Alpine seed from ExpandedMenuState, so
// several sections can be open at once.
func sidebarSection(sec MenuSection, state *ExpandedMenuState, currentPath string) g.Node {
	key := sanitizeAlpineKey(sec.ID)

	items := make([]g.Node, 0, len(sec.Items)+3)
	items = append(items,
		html.Class("mt-1 space-y-1 pl-4"),
		g.Attr("x-show", "open."+key),
		g.If(!state.Expanded(sec.ID), g.Attr("x-cloak", "")),
	)
	for _, item := range sec.Items {
		items = append(items, sidebarItem(item, currentPath))
	}

	return html.Div(
		html.Button(
			html.Type("button"),
			html.Class("flex w-full items-center gap-2 rounded-md px-3 py-2 text-sm font-medium transition-colors hover:bg-muted"),
			g.Attr("@click", "open."+key+" = !open."+key),
			g.Attr(":aria-expanded", "open."+key),
			ui.NavIcon(sec.Icon, 16),
			html.Span(
				html.Class("flex-1 text-left"),
				g.Text(sec.Title),
			),
			html.Span(
				html.Class("text-xs text-muted-foreground transition-transform"),
				g.Attr(":class", "open."+key+" ? 'rotate-90' : ''"),
				g.Text("›"),
			),
		),
		html.Div(items...),
	)
}

// sidebarItem renders a single menu link, highlighted when its path matches
// the current location.
func sidebarItem(item MenuItem, currentPath string) g.Node {
	active := isActivePath(item.Path, currentPath)

	classes := "flex items-center gap-2 rounded-md px-3 py-2 text-sm transition-colors"
	if active {
		classes += " bg-primary/10 font-medium text-primary"
	} else {
		classes += " text-muted-foreground hover:bg-muted hover:text-foreground"
	}

	return html.A(
		html.Href(item.Path),
		html.Class(classes),
		g.If(active, g.Attr("aria-current", "page")),
		ui.NavIcon(item.Icon, 16),
		g.Text(item.Title),
	)
}

// sidebarUserBlock renders the signed-in identity plus the logout control.
func sidebarUserBlock(cfg SidebarConfig, role ui.Role) g.Node {
	return html.Div(
		html.Class("space-y-2 border-t p-4"),
		html.Div(
			html.Class("flex items-center gap-2"),
			html.Div(
				html.Class("flex h-8 w-8 items-center justify-center rounded-full bg-primary/10 text-primary"),
				ui.RoleIcon(role, 16),
			),
			html.Div(
				html.Class("flex flex-col"),
				html.Span(
					html.Class("text-sm font-medium"),
					g.Text(cfg.FullName),
				),
				html.Span(
					html.Class("text-xs text-muted-foreground"),
					g.Text(ui.RoleLabel(role)),
				),
			),
		),
		html.Button(
			html.Type("button"),
			html.Class("flex w-full items-center gap-2 rounded-md px-3 py-2 text-sm text-muted-foreground transition-colors hover:bg-muted hover:text-foreground"),
			g.Attr("aria-label", "Sign out"),
			cfg.OnLogout,
			ui.NavIcon("logout", 16),
			g.Text("Sign out"),
		),
	)
}
