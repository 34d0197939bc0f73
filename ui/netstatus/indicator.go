// Package netstatus renders the floating connectivity banner. The
// connectivity monitor collaborator owns the connected signal and any
// show/hide animation timing; this component only draws the two fixed states.
package netstatus

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/Zookegger/ExamPro-Scheduler-sub003/ui"
)

// Config is the render input for the indicator.
type Config struct {
	Show      bool
	Connected bool

	// AnimationClass is applied verbatim to the banner element.
	AnimationClass string
}

// Indicator renders the banner, or nothing when Show is false.
func Indicator(cfg Config) g.Node {
	if !cfg.Show {
		return nil
	}

	icon := "alert"
	caption := "You are offline"
	state := "bg-destructive text-destructive-foreground"
	if cfg.Connected {
		icon = "activity"
		caption = "Connection restored"
		state = "bg-green-600 text-white"
	}

	classes := "fixed bottom-4 right-4 z-50 flex items-center gap-2 rounded-full px-4 py-2 text-sm font-medium shadow-lg " + state
	if cfg.AnimationClass != "" {
		classes += " " + cfg.AnimationClass
	}

	return html.Div(
		html.ID("network-status"),
		g.Attr("role", "status"),
		html.Class(classes),
		ui.NavIcon(icon, 16),
		html.Span(g.Text(caption)),
	)
}
