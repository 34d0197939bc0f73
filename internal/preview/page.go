package preview

import (
	"fmt"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/xraph/forgeui/alpine"
	"github.com/xraph/forgeui/components/card"
	"github.com/xraph/forgeui/icons"
	"github.com/xraph/forgeui/primitives"
	"github.com/xraph/forgeui/theme"

	"github.com/Zookegger/ExamPro-Scheduler-sub003/ui"
	"github.com/Zookegger/ExamPro-Scheduler-sub003/ui/netstatus"
	"github.com/Zookegger/ExamPro-Scheduler-sub003/ui/notify"
	"github.com/Zookegger/ExamPro-Scheduler-sub003/ui/shell"
)

// PageData is everything the preview page needs for one render. Visibility
// flags arrive as query parameters so the components stay purely
// input-driven.
type PageData struct {
	Role                 ui.Role
	FullName             string
	Development          bool
	SidebarVisible       bool
	NotificationsVisible bool
	CurrentPath          string
	Notifications        []notify.Notification
	UnreadCount          int
}

// Page renders the complete component preview page.
func Page(d PageData) g.Node {
	role := ui.Normalize(d.Role)

	return html.HTML(
		html.Lang("en"),
		html.Head(
			theme.HeadContent(theme.DefaultLight(), theme.DefaultDark()),
			html.TitleEl(g.Text("ExamPro Scheduler — UI Preview")),
			html.Script(html.Src("https://cdn.tailwindcss.com")),
			theme.TailwindConfigScript(),
			alpine.CloakCSS(),
			theme.StyleTag(theme.DefaultLight(), theme.DefaultDark()),
		),
		html.Body(
			html.Class("min-h-screen bg-background text-foreground antialiased"),
			g.Attr("x-data", "{}"),

			previewStoreScript(string(role)),
			theme.DarkModeScript(),

			html.Div(
				html.Class("flex"),

				g.If(role == ui.RoleAdmin, shell.Sidebar(shell.SidebarConfig{
					Visible:               d.SidebarVisible,
					Role:                  role,
					FullName:              d.FullName,
					Development:           d.Development,
					UnreadCount:           d.UnreadCount,
					CurrentPath:           d.CurrentPath,
					OnToggleSidebar:       toggleAttr("sidebar", !d.SidebarVisible),
					OnToggleNotifications: toggleAttr("notifications", !d.NotificationsVisible),
					OnLogout:              g.Attr("@click", "$store.preview.logout()"),
				})),

				html.Div(
					html.Class("flex min-h-screen flex-1 flex-col"),

					shell.Navbar(shell.NavbarConfig{
						Role:     role,
						FullName: d.FullName,
						OnLogout: g.Attr("@click", "$store.preview.logout()"),
					}),

					html.Main(
						html.Class("container flex-1 space-y-6 py-6 md:py-8"),
						previewContent(d, role),
					),

					shell.Footer(shell.FooterConfig{
						Role:        role,
						Development: d.Development,
					}),
				),
			),

			notify.Offcanvas(notify.OffcanvasConfig{
				Visible:       d.NotificationsVisible,
				Notifications: d.Notifications,
				UnreadCount:   d.UnreadCount,
				OnClose:       toggleAttr("notifications", !d.NotificationsVisible),
				OnMarkAllRead: g.Attr("@click", "$store.preview.markAllRead()"),
				OnMarkRead: func(id string) g.Node {
					return g.Attr("@click", "$store.preview.markRead('"+id+"')")
				},
			}),

			// Both indicator states are pre-rendered; the Alpine store picks
			// one based on the live socket.
			html.Div(
				g.Attr("x-data", ""),
				html.Div(
					g.Attr("x-show", "$store.preview.showStatus && $store.preview.connected"),
					g.Attr("x-cloak", ""),
					netstatus.Indicator(netstatus.Config{
						Show:           true,
						Connected:      true,
						AnimationClass: "animate-pulse",
					}),
				),
				html.Div(
					g.Attr("x-show", "$store.preview.showStatus && !$store.preview.connected"),
					g.Attr("x-cloak", ""),
					netstatus.Indicator(netstatus.Config{
						Show:           true,
						Connected:      false,
						AnimationClass: "animate-pulse",
					}),
				),
			),

			alpine.Scripts(),
		),
	)
}

// previewContent fills the main column with role switchers and a few summary
// cards so every rendered variant is reachable from the page.
func previewContent(d PageData, role ui.Role) g.Node {
	return g.Group([]g.Node{
		primitives.VStack("2",
			primitives.Text(
				primitives.TextAs("h1"),
				primitives.TextSize("text-xl md:text-2xl"),
				primitives.TextWeight("font-bold"),
				primitives.TextChildren(g.Text("Component preview")),
			),
			primitives.Text(
				primitives.TextSize("text-sm"),
				primitives.TextColor("text-muted-foreground"),
				primitives.TextChildren(g.Text("Viewing as "+ui.RoleLabel(role)+". Switch roles to see each variant.")),
			),
		),

		html.Div(
			html.Class("flex flex-wrap gap-2"),
			roleSwitch(ui.RoleAdmin),
			roleSwitch(ui.RoleTeacher),
			roleSwitch(ui.RoleStudent),
			roleSwitch(ui.RoleGuest),
		),

		html.Div(
			html.Class("grid gap-4 sm:grid-cols-2 lg:grid-cols-3"),
			summaryCard(icons.Bell(icons.WithSize(18)), fmt.Sprintf("%d", d.UnreadCount), "Unread notifications"),
			summaryCard(icons.FileText(icons.WithSize(18)), fmt.Sprintf("%d", len(d.Notifications)), "Notifications loaded"),
			summaryCard(icons.Activity(icons.WithSize(18)), "Live", "Connectivity via /ws"),
		),
	})
}

// toggleAttr emits a click handler that sets a visibility query parameter to
// its next value; the server re-renders with the flag applied.
func toggleAttr(flag string, next bool) g.Node {
	value := "0"
	if next {
		value = "1"
	}
	return g.Attr("@click", fmt.Sprintf("$store.preview.set('%s', '%s')", flag, value))
}

func roleSwitch(role ui.Role) g.Node {
	return html.Button(
		html.Type("button"),
		html.Class("inline-flex items-center gap-2 rounded-md border px-3 py-1.5 text-sm transition-colors hover:bg-muted"),
		g.Attr("@click", "$store.preview.setRole('"+string(role)+"')"),
		ui.RoleIcon(role, 16),
		g.Text(ui.RoleLabel(role)),
	)
}

func summaryCard(icon g.Node, value, label string) g.Node {
	return card.Card(
		card.Header(
			html.Div(
				html.Class("flex h-10 w-10 items-center justify-center rounded-lg bg-primary/10 text-primary"),
				icon,
			),
		),
		card.Content(
			primitives.VStack("1",
				primitives.Text(
					primitives.TextSize("text-2xl"),
					primitives.TextWeight("font-bold"),
					primitives.TextChildren(g.Text(value)),
				),
				primitives.Text(
					primitives.TextSize("text-sm"),
					primitives.TextColor("text-muted-foreground"),
					primitives.TextChildren(g.Text(label)),
				),
			),
		),
	)
}

// previewStoreScript initializes the Alpine.js store for the preview page:
// live connectivity over the websocket, query-parameter visibility toggles,
// and mark-read calls against the fixture API.
func previewStoreScript(role string) g.Node {
	js := fmt.Sprintf(`document.addEventListener('alpine:init', () => {
    Alpine.store('preview', {
        role: '%s',
        connected: false,
        showStatus: false,
        hideTimer: null,

        init() {
            this.connect();
        },

        connect() {
            const protocol = window.location.protocol === 'https:' ? 'wss:' : 'ws:';
            const ws = new WebSocket(protocol + '//' + window.location.host + '/ws');
            ws.onopen = () => { this.connected = true; this.flash(); };
            ws.onclose = () => {
                this.connected = false;
                this.flash();
                setTimeout(() => this.connect(), 2000);
            };
        },

        flash() {
            this.showStatus = true;
            clearTimeout(this.hideTimer);
            if (this.connected) {
                this.hideTimer = setTimeout(() => { this.showStatus = false; }, 4000);
            }
        },

        set(flag, value) {
            const params = new URLSearchParams(window.location.search);
            params.set(flag, value);
            window.location.search = params.toString();
        },

        setRole(role) {
            this.set('role', role);
        },

        logout() {
            this.setRole('guest');
        },

        async markRead(id) {
            await fetch('/api/notifications/' + id + '/read', {method: 'POST'});
            window.location.reload();
        },

        async markAllRead() {
            await fetch('/api/notifications/read-all', {method: 'POST'});
            window.location.reload();
        },
    });
});`, role)

	return html.Script(g.Attr("type", "text/javascript"), g.Raw(js))
}
