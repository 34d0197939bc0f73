package ui

import (
	"strconv"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/xraph/forgeui/primitives"
)

// UnreadBadgeText formats an unread count for display. Counts above 99 are
// capped at "99+"; zero and negative counts produce the empty string, which
// callers use to suppress the badge entirely.
func UnreadBadgeText(n int) string {
	switch {
	case n <= 0:
		return ""
	case n > 99:
		return "99+"
	default:
		return strconv.Itoa(n)
	}
}

// UnreadBadge renders the red counter bubble shown on notification bells.
// It renders nothing when the count is zero.
func UnreadBadge(n int) g.Node {
	text := UnreadBadgeText(n)
	if text == "" {
		return nil
	}

	return html.Span(
		html.Class("absolute -top-1 -right-1 flex h-4 min-w-4 items-center justify-center rounded-full bg-destructive px-1 text-[10px] font-bold text-destructive-foreground"),
		g.Text(text),
	)
}

// EmptyState renders an empty state placeholder.
func EmptyState(icon g.Node, title, description string) g.Node {
	return html.Div(
		html.Class("flex flex-col items-center justify-center py-12 text-center"),
		html.Div(
			html.Class("mb-4 flex h-16 w-16 items-center justify-center rounded-full bg-muted text-muted-foreground"),
			icon,
		),
		primitives.VStack("2",
			primitives.Text(
				primitives.TextSize("text-lg"),
				primitives.TextWeight("font-semibold"),
				primitives.TextChildren(g.Text(title)),
			),
			primitives.Text(
				primitives.TextSize("text-sm"),
				primitives.TextColor("text-muted-foreground"),
				primitives.TextChildren(g.Text(description)),
			),
		),
	)
}
