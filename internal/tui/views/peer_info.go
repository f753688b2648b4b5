package views

import (
	"fmt"

	"github.com/rivo/tview"

	"github.com/matheus3301/wchat/internal/conversation"
	"github.com/matheus3301/wchat/internal/model"
	"github.com/matheus3301/wchat/internal/tui/ui"
)

// PeerInfo displays details about the selected conversation partner.
type PeerInfo struct {
	*tview.TextView
	theme *ui.Theme
}

// NewPeerInfo creates a new peer info view.
func NewPeerInfo(theme *ui.Theme) *PeerInfo {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.BorderColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTextColor(theme.FgColor)
	tv.SetTitle(" Conversation Details ")
	tv.SetTitleColor(theme.TitleColor)

	return &PeerInfo{
		TextView: tv,
		theme:    theme,
	}
}

// Name implements Component.
func (pi *PeerInfo) Name() string { return "Details" }

// Hints implements Component.
func (pi *PeerInfo) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Esc", Description: "Back"},
		{Key: ":", Description: "Command"},
	}
}

// Update renders details of peer within snap.
func (pi *PeerInfo) Update(snap conversation.Snapshot, peer model.User) {
	pi.Clear()
	_, _ = fmt.Fprint(pi, FormatPeerInfo(pi.theme, snap, peer))
}

// FormatPeerInfo renders the details text.
func FormatPeerInfo(theme *ui.Theme, snap conversation.Snapshot, peer model.User) string {
	fg := ui.ColorName(theme.FgColor)
	ct := ui.ColorName(theme.CounterColor)

	var sent, received, attachments int
	for _, m := range snap.Thread {
		if m.UID == snap.Self.UID {
			sent++
		} else {
			received++
		}
		if m.IsAttachment {
			attachments++
		}
	}
	last := "-"
	if n := len(snap.Thread); n > 0 {
		last = snap.Thread[n-1].CreatedAt.Local().Format("2006-01-02 15:04")
	}

	row := func(label, value string) string {
		return fmt.Sprintf(" [%s::b]%-13s[-:-:-] [%s]%s[-]\n", fg, label+":", ct, tview.Escape(value))
	}
	return "\n" +
		row("Name", singleLine(peer.Name)) +
		row("Email", singleLine(peer.Email)) +
		row("UID", peer.UID) +
		row("Messages", fmt.Sprintf("%d sent, %d received", sent, received)) +
		row("Attachments", fmt.Sprintf("%d", attachments)) +
		row("Unread", fmt.Sprintf("%d", len(snap.Pending))) +
		row("Last active", last)
}
