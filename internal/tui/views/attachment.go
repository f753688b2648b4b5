package views

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rivo/tview"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/matheus3301/wchat/internal/model"
	"github.com/matheus3301/wchat/internal/tui/ui"
)

// AttachmentView shows an attachment's link as a scannable QR code, so a
// file can be opened on another device.
type AttachmentView struct {
	*tview.TextView
	theme *ui.Theme
}

// NewAttachmentView creates a new attachment view.
func NewAttachmentView(theme *ui.Theme) *AttachmentView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetScrollable(true)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.BorderColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTextColor(theme.FgColor)
	tv.SetTitle(" Attachment ")
	tv.SetTitleColor(theme.TitleColor)

	return &AttachmentView{
		TextView: tv,
		theme:    theme,
	}
}

// Name implements Component.
func (av *AttachmentView) Name() string { return "Attachment" }

// Hints implements Component.
func (av *AttachmentView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Esc", Description: "Back"},
	}
}

// Show renders the download link of m.
func (av *AttachmentView) Show(m model.Message) {
	av.Clear()
	kind := m.FileType
	if kind == "" {
		kind = "file"
	}
	_, _ = fmt.Fprintf(av, "\n  %s, %s\n\n%s\n  [::d]%s[-:-:-]",
		tview.Escape(singleLine(kind)), humanize.Bytes(uint64(m.FileSize)),
		renderQR(m.FileURL), tview.Escape(singleLine(m.FileURL)))
}

// renderQR converts a string to a compact ASCII QR code using Unicode
// half-block characters.
func renderQR(content string) string {
	qr, err := qrcode.New(content, qrcode.Low)
	if err != nil {
		return "  (QR generation failed: " + err.Error() + ")"
	}
	qr.DisableBorder = false

	bitmap := qr.Bitmap()
	rows := len(bitmap)
	cols := 0
	if rows > 0 {
		cols = len(bitmap[0])
	}

	var sb strings.Builder
	for y := 0; y < rows; y += 2 {
		sb.WriteString("  ")
		for x := 0; x < cols; x++ {
			top := bitmap[y][x]
			bot := y+1 < rows && bitmap[y+1][x]
			switch {
			case top && bot:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bot:
				sb.WriteRune('▄')
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
