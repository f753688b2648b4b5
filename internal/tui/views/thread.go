package views

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/matheus3301/wchat/internal/conversation"
	"github.com/matheus3301/wchat/internal/model"
	"github.com/matheus3301/wchat/internal/tui/ui"
)

// Thread displays the visible window of the selected conversation and the
// composer below it.
type Thread struct {
	*tview.Flex
	theme    *ui.Theme
	messages *tview.TextView
	composer *tview.InputField
	peerName string
	onSend   func(text string)
}

// NewThread creates a new thread view.
func NewThread(theme *ui.Theme) *Thread {
	messages := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWordWrap(true)
	messages.SetBorder(true)
	messages.SetBorderColor(theme.BorderColor)
	messages.SetBackgroundColor(theme.BgColor)
	messages.SetTextColor(theme.FgColor)
	messages.SetTitle(" Messages ")
	messages.SetTitleColor(theme.TitleColor)

	composer := tview.NewInputField().
		SetLabel(" > ").
		SetFieldWidth(0)
	composer.SetBorder(true)
	composer.SetBorderColor(theme.BorderColor)
	composer.SetBackgroundColor(theme.BgColor)
	composer.SetFieldBackgroundColor(theme.BgColor)
	composer.SetFieldTextColor(theme.FgColor)
	composer.SetLabelColor(theme.MenuKeyColor)
	composer.SetTitle(" Compose (i to focus) ")
	composer.SetTitleColor(theme.TitleColor)

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(messages, 0, 1, false).
		AddItem(composer, 3, 0, false)

	t := &Thread{
		Flex:     flex,
		theme:    theme,
		messages: messages,
		composer: composer,
	}

	composer.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter && t.onSend != nil {
			t.onSend(composer.GetText())
		}
	})

	return t
}

// Name implements Component.
func (t *Thread) Name() string {
	if t.peerName != "" {
		return t.peerName
	}
	return "Messages"
}

// Hints implements Component.
func (t *Thread) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "i", Description: "Compose"},
		{Key: "d", Description: "Details"},
		{Key: "o", Description: "Open attachment"},
		{Key: "Esc", Description: "Back"},
		{Key: ":", Description: "Command"},
	}
}

// SetOnSend sets the callback for Enter in the composer. The text is passed
// as typed; clearing the composer is up to the caller.
func (t *Thread) SetOnSend(fn func(text string)) {
	t.onSend = fn
}

// Composer returns the input field for focus management.
func (t *Thread) Composer() *tview.InputField {
	return t.composer
}

// Messages returns the messages text view for focus management.
func (t *Thread) Messages() *tview.TextView {
	return t.messages
}

// ShowAttachment puts the staged attachment, if any, in the composer title.
func (t *Thread) ShowAttachment(a *conversation.Attachment) {
	title := " Compose (i to focus) "
	if a != nil {
		title = fmt.Sprintf(" Compose [%s]+ %s (%s)[-] ",
			ui.ColorName(t.theme.AttachmentColor),
			tview.Escape(singleLine(a.Name)),
			humanize.Bytes(uint64(len(a.Data))))
	}
	t.composer.SetTitle(title)
}

// Update renders the visible window of snap.
func (t *Thread) Update(snap conversation.Snapshot, peer *model.User) {
	t.peerName = ""
	title := " Messages "
	if peer != nil {
		t.peerName = singleLine(peer.Name)
		title = fmt.Sprintf(" %s ", tview.Escape(t.peerName))
	}
	if n := len(snap.Thread) - len(snap.Visible); n > 0 {
		title += fmt.Sprintf("(+%d earlier) ", n)
	}
	t.messages.SetTitle(title)

	t.messages.Clear()
	_, _ = fmt.Fprint(t.messages, RenderThread(t.theme, snap.Visible, snap.Self.UID))
	t.messages.ScrollToEnd()
}

// LatestAttachment returns the newest attachment in the visible window.
func LatestAttachment(visible []model.Message) (model.Message, bool) {
	for i := len(visible) - 1; i >= 0; i-- {
		if visible[i].IsAttachment && visible[i].FileURL != "" {
			return visible[i], true
		}
	}
	return model.Message{}, false
}

// RenderThread formats msgs, oldest first, with sender, clock and receipt.
func RenderThread(theme *ui.Theme, msgs []model.Message, self string) string {
	var sb strings.Builder
	for _, m := range msgs {
		sender := singleLine(m.DisplayName)
		color := theme.PeerColor
		if m.UID == self {
			sender = "You"
			color = theme.SelfColor
		}
		if sender == "" {
			sender = model.AnonymousName
		}

		meta := conversation.FormatClock(m.CreatedAt)
		if r := conversation.ReceiptFor(m, self); r != conversation.ReceiptNone {
			rc := theme.ReceiptSentColor
			if r == conversation.ReceiptRead {
				rc = theme.ReceiptReadColor
			}
			meta += fmt.Sprintf(" [%s]%s[-]", ui.ColorName(rc), r)
		}

		fmt.Fprintf(&sb, "[%s::b]%s[-:-:-] [::d]%s[-:-:-]\n", ui.ColorName(color), tview.Escape(sender), meta)
		if m.IsAttachment {
			fmt.Fprintf(&sb, "[%s]%s[-]\n", ui.ColorName(theme.AttachmentColor), tview.Escape(attachmentLabel(m)))
		}
		if body := sanitizeForTerminal(m.Text); body != "" {
			sb.WriteString(tview.Escape(body))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func attachmentLabel(m model.Message) string {
	kind := m.FileType
	if kind == "" {
		kind = "file"
	}
	label := "[attachment: " + singleLine(kind)
	if m.FileSize > 0 {
		label += ", " + humanize.Bytes(uint64(m.FileSize))
	}
	return label + "]"
}
