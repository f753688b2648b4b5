package views

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/matheus3301/wchat/internal/conversation"
	"github.com/matheus3301/wchat/internal/tui/ui"
)

// FriendList is the left-hand table of people self talks to, or the search
// results while a search is active.
type FriendList struct {
	*tview.Table
	theme   *ui.Theme
	friends []conversation.Friend
	search  string
}

// NewFriendList creates a new friend list table.
func NewFriendList(theme *ui.Theme) *FriendList {
	table := tview.NewTable().
		SetSelectable(true, false).
		SetBorders(false).
		SetFixed(1, 0)
	table.SetBorder(true)
	table.SetBorderColor(theme.BorderColor)
	table.SetBackgroundColor(theme.BgColor)
	table.SetSelectedStyle(tcell.StyleDefault.
		Foreground(theme.TableCursorFg).
		Background(theme.TableCursorBg))
	table.SetTitle(" Friends ")
	table.SetTitleColor(theme.TitleColor)

	return &FriendList{
		Table: table,
		theme: theme,
	}
}

// Name implements Component.
func (fl *FriendList) Name() string { return "Friends" }

// Hints implements Component.
func (fl *FriendList) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Enter", Description: "Open"},
		{Key: "/", Description: "Search"},
		{Key: "1-9", Description: "Jump"},
		{Key: ":", Description: "Command"},
		{Key: "?", Description: "Help"},
		{Key: "q", Description: "Quit"},
	}
}

// Update renders snap's friends and moves the cursor to its selection.
func (fl *FriendList) Update(snap conversation.Snapshot) {
	fl.friends = snap.Friends
	fl.search = snap.Search
	fl.render()
	if snap.Selected >= 0 {
		fl.Select(snap.Selected+1, 0)
	}
}

func (fl *FriendList) render() {
	fl.Clear()

	headers := []struct {
		text string
		exp  int
	}{
		{" NAME", 1},
		{" EMAIL", 1},
		{" NEW", 0},
	}
	for col, h := range headers {
		fl.SetCell(0, col, tview.NewTableCell(h.text).
			SetSelectable(false).
			SetTextColor(fl.theme.TableHeaderFg).
			SetBackgroundColor(fl.theme.TableHeaderBg).
			SetAttributes(tcell.AttrBold).
			SetExpansion(h.exp))
	}

	for i, f := range fl.friends {
		row := i + 1
		fg := fl.theme.FgColor
		if f.Unread > 0 {
			fg = fl.theme.UnreadColor
		}
		fl.SetCell(row, 0, tview.NewTableCell(" "+tview.Escape(friendName(f))).SetExpansion(1).SetTextColor(fg))
		fl.SetCell(row, 1, tview.NewTableCell(" "+tview.Escape(singleLine(f.Email))).SetExpansion(1).SetTextColor(fl.theme.FgColor))
		fl.SetCell(row, 2, tview.NewTableCell(UnreadBadge(f.Unread)).SetAlign(tview.AlignRight).SetTextColor(fl.theme.UnreadColor))
	}

	if fl.search != "" {
		fl.SetTitle(fmt.Sprintf(" Search: %s (%d) ", tview.Escape(singleLine(fl.search)), len(fl.friends)))
	} else {
		fl.SetTitle(fmt.Sprintf(" Friends (%d) ", len(fl.friends)))
	}
}

// SelectedIndex returns the friend index under the cursor, or -1.
func (fl *FriendList) SelectedIndex() int {
	row, _ := fl.GetSelection()
	idx := row - 1
	if idx < 0 || idx >= len(fl.friends) {
		return -1
	}
	return idx
}

// UnreadBadge renders an unread count; zero renders empty.
func UnreadBadge(n int) string {
	switch {
	case n <= 0:
		return ""
	case n > 99:
		return " 99+ "
	default:
		return fmt.Sprintf(" %d ", n)
	}
}

func friendName(f conversation.Friend) string {
	if name := singleLine(f.Name); name != "" {
		return name
	}
	return singleLine(f.Email)
}
