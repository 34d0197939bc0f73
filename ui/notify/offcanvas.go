package notify

import (
	"time"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/Zookegger/ExamPro-Scheduler-sub003/ui"
)

// OffcanvasConfig holds the data and caller-supplied handlers for the
// notification panel.
type OffcanvasConfig struct {
	Visible bool

	// Notifications is rendered in caller order. A nil slice is treated
	// exactly like an empty one.
	Notifications []Notification
	UnreadCount   int

	OnClose       g.Node
	OnMarkAllRead g.Node

	// OnMarkRead returns the click attribute for an unread row, given its
	// id. Read rows never receive a handler.
	OnMarkRead func(id string) g.Node
}

// Offcanvas renders the slide-in notification panel.
func Offcanvas(cfg OffcanvasConfig) g.Node {
	translate := "translate-x-full"
	if cfg.Visible {
		translate = "translate-x-0"
	}

	return html.Div(
		html.ID("notification-offcanvas"),
		g.Attr("role", "dialog"),
		g.Attr("aria-label", "Notifications"),
		html.Class("fixed inset-y-0 right-0 z-50 flex w-96 max-w-full flex-col border-l bg-background shadow-xl transition-transform duration-200 "+translate),

		offcanvasHeader(cfg),
		offcanvasBody(cfg),
	)
}

func offcanvasHeader(cfg OffcanvasConfig) g.Node {
	return html.Div(
		html.Class("flex flex-col gap-2 border-b px-4 py-3"),
		html.Div(
			html.Class("flex items-center gap-2"),
			html.Div(
				html.Class("relative flex items-center gap-2 font-semibold"),
				ui.NavIcon("bell", 18),
				html.Span(g.Text("Notifications")),
				ui.UnreadBadge(cfg.UnreadCount),
			),
			html.Div(html.Class("flex-1")),
			html.Button(
				html.Type("button"),
				html.Class("inline-flex h-8 w-8 items-center justify-center rounded-md text-muted-foreground transition-colors hover:bg-muted hover:text-foreground"),
				g.Attr("aria-label", "Close notifications"),
				cfg.OnClose,
				ui.NavIcon("close", 16),
			),
		),
		markAllButton(cfg),
	)
}

// markAllButton is non-interactive exactly when nothing is unread.
func markAllButton(cfg OffcanvasConfig) g.Node {
	disabled := cfg.UnreadCount == 0

	return html.Button(
		html.Type("button"),
		html.Class("inline-flex items-center gap-2 self-start rounded-md px-2 py-1 text-xs font-medium text-primary transition-colors hover:bg-primary/10 disabled:pointer-events-none disabled:text-muted-foreground"),
		g.If(disabled, html.Disabled()),
		g.If(!disabled, cfg.OnMarkAllRead),
		g.Text("Mark all as read"),
	)
}

func offcanvasBody(cfg OffcanvasConfig) g.Node {
	if len(cfg.Notifications) == 0 {
		return html.Div(
			html.Class("flex-1 overflow-y-auto"),
			ui.EmptyState(
				ui.NavIcon("inbox", 28),
				"All caught up",
				"New notifications will appear here.",
			),
		)
	}

	rows := make([]g.Node, 0, len(cfg.Notifications)+1)
	rows = append(rows, html.Class("flex-1 overflow-y-auto"))
	for _, n := range cfg.Notifications {
		rows = append(rows, notificationRow(n, cfg.OnMarkRead))
	}

	return html.Div(rows...)
}

// notificationRow renders one record. Unread rows carry the mark-read click
// attribute once; clicking a read row does nothing.
func notificationRow(n Notification, onMarkRead func(string) g.Node) g.Node {
	st := styleFor(n.Category)

	classes := "flex gap-3 border-b px-4 py-3"
	if n.IsRead {
		classes += " opacity-70"
	} else {
		classes += " cursor-pointer " + st.Accent
	}

	var click g.Node
	if !n.IsRead && onMarkRead != nil {
		click = onMarkRead(n.ID)
	}

	return html.Div(
		html.Class(classes),
		g.Attr("data-notification-id", n.ID),
		click,
		html.Div(
			html.Class("flex h-8 w-8 shrink-0 items-center justify-center rounded-full "+st.Badge),
			ui.NavIcon(st.Icon, 16),
		),
		html.Div(
			html.Class("flex min-w-0 flex-1 flex-col gap-0.5"),
			html.Div(
				html.Class("flex items-center gap-2"),
				html.Span(
					html.Class("truncate text-sm font-medium"),
					g.Text(n.Title),
				),
				g.If(!n.IsRead, html.Span(
					html.Class("h-2 w-2 shrink-0 rounded-full bg-primary"),
					g.Attr("aria-label", "Unread"),
				)),
			),
			html.P(
				html.Class("text-sm text-muted-foreground"),
				g.Text(n.Message),
			),
			notificationTimestamp(n.CreatedAt),
		),
	)
}

// notificationTimestamp emits the instant in ISO form and lets the browser
// rewrite it into the viewer's locale, date and time together. The Go-side
// text is only the pre-hydration fallback.
func notificationTimestamp(t time.Time) g.Node {
	iso := t.UTC().Format(time.RFC3339)

	return g.El("time",
		g.Attr("datetime", iso),
		html.Class("text-xs text-muted-foreground"),
		g.Attr("x-data", ""),
		g.Attr("x-text", "new Date('"+iso+"').toLocaleString()"),
		g.Text(t.UTC().Format("2006-01-02 15:04")),
	)
}
