package views

import (
	"fmt"

	"github.com/rivo/tview"

	"github.com/matheus3301/wchat/internal/tui/ui"
)

// HelpView displays key binding reference.
type HelpView struct {
	*tview.TextView
	theme *ui.Theme
}

// NewHelpView creates a new help view.
func NewHelpView(theme *ui.Theme) *HelpView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.BorderColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTextColor(theme.FgColor)
	tv.SetTitle(" Help ")
	tv.SetTitleColor(theme.TitleColor)

	hv := &HelpView{
		TextView: tv,
		theme:    theme,
	}
	hv.render()
	return hv
}

// Name implements Component.
func (hv *HelpView) Name() string { return "Help" }

// Hints implements Component.
func (hv *HelpView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (hv *HelpView) render() {
	kc := ui.ColorName(hv.theme.MenuKeyColor)
	k := func(s string) string { return fmt.Sprintf("[%s]%s[-:-:-]", kc, tview.Escape(s)) }

	help := "\n  [::b]Global Keys[-:-:-]\n\n" +
		fmt.Sprintf("  %-22s Command mode       %-22s Cancel / Go back\n", k(":"), k("Esc")) +
		fmt.Sprintf("  %-22s Search users       %-22s Help\n", k("/"), k("?")) +
		fmt.Sprintf("  %-22s Quit               %-22s Quit immediately\n", k("q"), k("Ctrl-C")) +
		"\n  [::b]Friends[-:-:-]\n\n" +
		fmt.Sprintf("  %-22s Open conversation  %-22s Jump to Nth friend\n", k("Enter"), k("1-9")) +
		fmt.Sprintf("  %-22s Move down          %-22s Move up\n", k("j/Down"), k("k/Up")) +
		"\n  [::b]Conversation[-:-:-]\n\n" +
		fmt.Sprintf("  %-22s Focus composer     %-22s Conversation details\n", k("i"), k("d")) +
		fmt.Sprintf("  %-22s Open attachment    %-22s Send (in composer)\n", k("o"), k("Enter")) +
		"\n  [::b]Commands (: mode)[-:-:-]\n\n" +
		fmt.Sprintf("  %-30s Search users by name\n", k(":search <query>")) +
		fmt.Sprintf("  %-30s Stage a file for the next send\n", k(":attach <path>")) +
		fmt.Sprintf("  %-30s Drop the staged file\n", k(":detach")) +
		fmt.Sprintf("  %-30s Show the newest attachment\n", k(":open")) +
		fmt.Sprintf("  %-30s Sign out\n", k(":logout")) +
		fmt.Sprintf("  %-30s Show this help\n", k(":help")) +
		fmt.Sprintf("  %-30s Quit application\n", k(":quit"))

	_, _ = fmt.Fprint(hv, help)
}
