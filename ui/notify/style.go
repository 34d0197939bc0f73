package notify

// categoryStyle holds the fixed presentation for a notification category:
// an icon token, the row accent background, and the icon badge colors.
type categoryStyle struct {
	Icon   string
	Accent string
	Badge  string
}

var categoryStyles = map[Category]categoryStyle{
	CategorySubject: {Icon: "file-text", Accent: "bg-blue-500/5", Badge: "bg-blue-500/15 text-blue-600"},
	CategorySystem:  {Icon: "settings", Accent: "bg-slate-500/5", Badge: "bg-slate-500/15 text-slate-600"},
	CategorySuccess: {Icon: "trending-up", Accent: "bg-green-500/5", Badge: "bg-green-500/15 text-green-600"},
	CategoryWarning: {Icon: "alert", Accent: "bg-amber-500/5", Badge: "bg-amber-500/15 text-amber-600"},
	CategoryError:   {Icon: "x", Accent: "bg-red-500/5", Badge: "bg-red-500/15 text-red-600"},
	CategoryOther:   {Icon: "inbox", Accent: "bg-muted/40", Badge: "bg-muted text-muted-foreground"},
}

// styleFor returns the presentation for a category. Unrecognized values get
// the "other" styling.
func styleFor(c Category) categoryStyle {
	if st, ok := categoryStyles[c]; ok {
		return st
	}
	return categoryStyles[CategoryOther]
}
