package views

import (
	"github.com/rivo/tview"

	"github.com/matheus3301/wchat/internal/tui/ui"
)

// Credentials is what the login form collects. Name is only used when
// registering.
type Credentials struct {
	Name     string
	Email    string
	Password string
}

// LoginView is the sign-in / register form shown while signed out.
type LoginView struct {
	*tview.Flex
	theme      *ui.Theme
	form       *tview.Form
	message    *tview.TextView
	onSignIn   func(Credentials)
	onRegister func(Credentials)
}

// NewLoginView creates a new login form.
func NewLoginView(theme *ui.Theme) *LoginView {
	lv := &LoginView{theme: theme}

	form := tview.NewForm().
		AddInputField("Name", "", 32, nil, nil).
		AddInputField("Email", "", 32, nil, nil).
		AddPasswordField("Password", "", 32, '*', nil)
	form.AddButton("Sign in", func() {
		if lv.onSignIn != nil {
			lv.onSignIn(lv.Credentials())
		}
	})
	form.AddButton("Register", func() {
		if lv.onRegister != nil {
			lv.onRegister(lv.Credentials())
		}
	})
	form.SetBorder(true)
	form.SetBorderColor(theme.BorderColor)
	form.SetBackgroundColor(theme.BgColor)
	form.SetFieldBackgroundColor(theme.BgColor)
	form.SetFieldTextColor(theme.FgColor)
	form.SetLabelColor(theme.MenuKeyColor)
	form.SetTitle(" Sign in ")
	form.SetTitleColor(theme.TitleColor)

	message := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	message.SetBackgroundColor(theme.BgColor)

	lv.form = form
	lv.message = message
	lv.Flex = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().
			AddItem(nil, 0, 1, false).
			AddItem(form, 50, 0, true).
			AddItem(nil, 0, 1, false), 11, 0, true).
		AddItem(message, 2, 0, false).
		AddItem(nil, 0, 1, false)
	return lv
}

// Name implements Component.
func (lv *LoginView) Name() string { return "Sign in" }

// Hints implements Component.
func (lv *LoginView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl-C", Description: "Quit"},
	}
}

// SetOnSignIn sets the sign-in callback.
func (lv *LoginView) SetOnSignIn(fn func(Credentials)) { lv.onSignIn = fn }

// SetOnRegister sets the register callback.
func (lv *LoginView) SetOnRegister(fn func(Credentials)) { lv.onRegister = fn }

// Form returns the form for focus management.
func (lv *LoginView) Form() *tview.Form { return lv.form }

// Credentials returns the current field values.
func (lv *LoginView) Credentials() Credentials {
	text := func(label string) string {
		if f, ok := lv.form.GetFormItemByLabel(label).(*tview.InputField); ok {
			return f.GetText()
		}
		return ""
	}
	return Credentials{
		Name:     text("Name"),
		Email:    text("Email"),
		Password: text("Password"),
	}
}

// ShowMessage displays a status line under the form.
func (lv *LoginView) ShowMessage(msg string) {
	lv.message.Clear()
	lv.message.SetText(tview.Escape(msg))
}

// Reset clears the password field and the status line.
func (lv *LoginView) Reset() {
	if f, ok := lv.form.GetFormItemByLabel("Password").(*tview.InputField); ok {
		f.SetText("")
	}
	lv.message.Clear()
}
