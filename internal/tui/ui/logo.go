package ui

import (
	"strings"

	"github.com/rivo/tview"
)

var logoArt = []string{
	"╦ ╦┌─┐┬ ┬┌─┐┌┬┐",
	"║║║│  ├─┤├─┤ │ ",
	"╚╩╝└─┘┴ ┴┴ ┴ ┴ ",
}

// NewLogo returns the header logo, drawn in the theme's title color.
func NewLogo(theme *Theme) *tview.TextView {
	var b strings.Builder
	for _, line := range logoArt {
		b.WriteString("[" + ColorName(theme.TitleColor) + "::b]" + line + "[-:-:-]\n")
	}
	b.WriteString(Tag(theme.FgColor) + "terminal chat[-:-:-]")

	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetText(b.String())
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetBorderPadding(0, 0, 1, 0)
	return tv
}
