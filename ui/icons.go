package ui

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/xraph/forgeui/icons"
)

// NavIcon maps an icon token to its gomponents icon node.
func NavIcon(name string, px int) g.Node {
	size := icons.WithSize(px)

	switch name {
	case "home":
		return icons.Home(size)
	case "shield":
		return icons.Shield(size)
	case "workspace", "layout-dashboard":
		return icons.LayoutDashboard(size)
	case "badge":
		return icons.CreditCard(size)
	case "person", "user":
		return icons.User(size)
	case "bell":
		return icons.Bell(size)
	case "log-out", "logout":
		return icons.LogOut(size)
	case "log-in", "login":
		return icons.LogIn(size)
	case "settings":
		return icons.Settings(size)
	case "menu":
		return icons.Menu(size)
	case "x", "close":
		return icons.X(size)
	case "inbox":
		return icons.Inbox(size)
	case "file-text":
		return icons.FileText(size)
	case "clock":
		return icons.Clock(size)
	case "calendar":
		return icons.Calendar(size)
	case "server":
		return icons.Server(size)
	case "layers":
		return icons.Layers(size)
	case "activity":
		return icons.Activity(size)
	case "search":
		return icons.Search(size)
	case "alert", "triangle-alert":
		return icons.TriangleAlert(size)
	case "trending-up":
		return icons.TrendingUp(size)
	case "box":
		return icons.Box(size)
	case "hash":
		return icons.Hash(size)
	case "key":
		return icons.Key(size)
	default:
		// Fallback: render a generic icon placeholder
		return html.Span(
			html.Class("inline-flex h-4 w-4 items-center justify-center text-xs"),
			g.Text("•"),
		)
	}
}
