package views

import (
	"fmt"
	"time"

	"github.com/rivo/tview"

	"github.com/matheus3301/wchat/internal/status"
	"github.com/matheus3301/wchat/internal/tui/ui"
)

// StatusBar displays the profile, the feed load state and the current flash.
type StatusBar struct {
	*tview.TextView
	theme   *ui.Theme
	profile string
	state   status.State
	detail  string
	flash   *ui.FlashMessage
	now     func() time.Time
}

// NewStatusBar creates a new status bar.
func NewStatusBar(theme *ui.Theme) *StatusBar {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(tview.Styles.MoreContrastBackgroundColor)

	return &StatusBar{TextView: tv, theme: theme, now: time.Now}
}

// SetProfile updates the profile name display.
func (sb *StatusBar) SetProfile(name string) {
	sb.profile = name
	sb.render()
}

// SetState updates the load state display.
func (sb *StatusBar) SetState(state status.State, detail string) {
	sb.state = state
	sb.detail = detail
	sb.render()
}

// SetFlash sets the transient message; nil clears it.
func (sb *StatusBar) SetFlash(msg *ui.FlashMessage) {
	sb.flash = msg
	sb.render()
}

func (sb *StatusBar) render() {
	sb.Clear()
	_, _ = fmt.Fprint(sb, sb.line())
}

func (sb *StatusBar) line() string {
	line := fmt.Sprintf(" [::b]%s[-:-:-] | %s | %s", tview.Escape(sb.profile), StateLabel(sb.state, sb.detail), sb.now().Format("15:04"))
	if sb.flash != nil {
		line += " | " + ui.FormatFlash(sb.theme, sb.flash)
	}
	return line
}

// StateLabel renders state with a color cue and its detail, if any.
func StateLabel(state status.State, detail string) string {
	var label string
	switch state {
	case status.Loading:
		label = "[yellow]loading…[-]"
	case status.Ready:
		label = "[green]ready[-]"
	case status.Degraded:
		label = "[orange]degraded[-]"
	case status.SignedOut:
		label = "[gray]signed out[-]"
	case status.Error:
		label = "[red]error[-]"
	default:
		label = string(state)
	}
	if detail != "" {
		label += " (" + tview.Escape(detail) + ")"
	}
	return label
}
