package ui

import (
	"fmt"

	"github.com/rivo/tview"
)

// ProfileData holds what the header shows about the running client.
type ProfileData struct {
	Profile string
	Account string
	User    string
	Status  string
	Friends int
	Unread  int
}

// ProfileInfo displays profile metadata in the header.
type ProfileInfo struct {
	*tview.TextView
	theme *Theme
}

// NewProfileInfo creates a new profile info panel.
func NewProfileInfo(theme *Theme) *ProfileInfo {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetBorderPadding(0, 0, 1, 1)

	return &ProfileInfo{
		TextView: tv,
		theme:    theme,
	}
}

// Update renders the profile info.
func (pi *ProfileInfo) Update(data ProfileData) {
	pi.Clear()
	_, _ = fmt.Fprint(pi, FormatProfile(pi.theme, data))
}

// FormatProfile renders data as aligned label/value lines.
func FormatProfile(theme *Theme, data ProfileData) string {
	fg := ColorName(theme.FgColor)
	val := ColorName(theme.CounterColor)
	user := data.User
	if user == "" {
		user = "-"
	}
	row := func(label, value string) string {
		return fmt.Sprintf("[%s::b]%-8s[-:-:-] [%s]%s[-]", fg, label+":", val, tview.Escape(value))
	}
	return row("Profile", data.Profile+"/"+data.Account) + "\n" +
		row("User", user) + "\n" +
		row("Status", data.Status) + "\n" +
		row("Friends", fmt.Sprintf("%d (%d unread)", data.Friends, data.Unread))
}
