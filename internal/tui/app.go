// Package tui is the terminal chat client: a friend list, the selected
// thread with its composer, and a sign-in form when there is no session.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"github.com/matheus3301/wchat/internal/bus"
	"github.com/matheus3301/wchat/internal/client"
	"github.com/matheus3301/wchat/internal/config"
	"github.com/matheus3301/wchat/internal/conversation"
	"github.com/matheus3301/wchat/internal/errs"
	"github.com/matheus3301/wchat/internal/model"
	"github.com/matheus3301/wchat/internal/outbox"
	"github.com/matheus3301/wchat/internal/status"
	chatsync "github.com/matheus3301/wchat/internal/sync"
	"github.com/matheus3301/wchat/internal/tui/keys"
	"github.com/matheus3301/wchat/internal/tui/ui"
	"github.com/matheus3301/wchat/internal/tui/views"
)

// Page names.
const (
	pageLogin      = "login"
	pageChat       = "chat"
	pageDetails    = "details"
	pageAttachment = "attachment"
	pageHelp       = "help"
)

const promptHeight = 3

// Options configures the App.
type Options struct {
	Profile  string
	Account  string
	Settings *config.Config
	Logger   *zap.Logger
}

// chatSession is everything that lives only while signed in.
type chatSession struct {
	vm     *conversation.ViewModel
	engine *chatsync.Engine
	outbox *outbox.Sender
	cancel context.CancelFunc
}

func (s *chatSession) stop() {
	s.cancel()
	s.outbox.Stop()
	s.engine.Stop()
}

// App is the main TUI application shell. Fields below ctx are only touched
// on the tview event goroutine.
type App struct {
	app      *tview.Application
	theme    *ui.Theme
	pages    *ui.Pages
	registry *keys.Registry
	flash    *ui.FlashModel

	menu      *ui.Menu
	info      *ui.ProfileInfo
	prompt    *ui.Prompt
	root      *tview.Flex
	statusBar *views.StatusBar

	friends    *views.FriendList
	thread     *views.Thread
	peerInfo   *views.PeerInfo
	attachment *views.AttachmentView
	login      *views.LoginView
	help       *views.HelpView

	client   *client.Client
	opts     Options
	settings *config.Config
	logger   *zap.Logger
	bus      *bus.Bus
	machine  *status.Machine

	ctx    context.Context
	cancel context.CancelFunc

	sess    *chatSession
	draft   conversation.Draft
	pending string // outbox job in flight, if any
}

// NewApp creates the TUI application.
func NewApp(c *client.Client, opts Options) *App {
	ctx, cancel := context.WithCancel(context.Background())
	settings := opts.Settings
	if settings == nil {
		settings = &config.Config{}
		settings.ApplyDefaults()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	theme := ui.DefaultTheme()
	b := bus.New()

	a := &App{
		app:        tview.NewApplication(),
		theme:      theme,
		pages:      ui.NewPages(),
		registry:   keys.NewRegistry(),
		flash:      ui.NewFlashModel(),
		menu:       ui.NewMenu(theme),
		info:       ui.NewProfileInfo(theme),
		prompt:     ui.NewPrompt(theme),
		statusBar:  views.NewStatusBar(theme),
		friends:    views.NewFriendList(theme),
		thread:     views.NewThread(theme),
		peerInfo:   views.NewPeerInfo(theme),
		attachment: views.NewAttachmentView(theme),
		login:      views.NewLoginView(theme),
		help:       views.NewHelpView(theme),
		client:     c,
		opts:       opts,
		settings:   settings,
		logger:     logger,
		bus:        b,
		machine:    status.NewMachine(b),
		ctx:        ctx,
		cancel:     cancel,
	}

	a.statusBar.SetProfile(opts.Profile + "/" + opts.Account)
	a.setupBindings()
	a.setupCallbacks()
	a.setupLayout()
	return a
}

func (a *App) setupBindings() {
	a.registry.AddGlobal(&keys.Action{
		Key: tcell.KeyRune, Rune: 'q', Description: "Quit / Back",
		Handler: func() {
			if a.pages.Current() == pageChat {
				a.app.Stop()
				return
			}
			a.back()
		},
	})
	a.registry.AddGlobal(&keys.Action{
		Key: tcell.KeyEscape, Description: "Back",
		Handler: a.back,
	})
	a.registry.AddGlobal(&keys.Action{
		Key: tcell.KeyRune, Rune: '?', Description: "Help",
		Handler: func() { a.show(pageHelp) },
	})
	a.registry.AddGlobal(&keys.Action{
		Key: tcell.KeyRune, Rune: ':', Description: "Command",
		Handler: func() { a.activatePrompt(ui.PromptCommand, "") },
	})
	a.registry.AddGlobal(&keys.Action{
		Key: tcell.KeyRune, Rune: '/', Description: "Search",
		Handler: func() {
			search := ""
			if a.sess != nil {
				search = a.sess.vm.Snapshot().Search
			}
			a.show(pageChat)
			a.activatePrompt(ui.PromptSearch, search)
		},
	})

	a.registry.AddView(pageChat, &keys.Action{
		Key: tcell.KeyRune, Rune: 'i', Description: "Compose",
		Handler: func() { a.app.SetFocus(a.thread.Composer()) },
	})
	a.registry.AddView(pageChat, &keys.Action{
		Key: tcell.KeyRune, Rune: 'd', Description: "Details",
		Handler: a.showDetails,
	})
	a.registry.AddView(pageChat, &keys.Action{
		Key: tcell.KeyRune, Rune: 'o', Description: "Open attachment",
		Handler: a.openAttachment,
	})
	a.registry.AddView(pageChat, &keys.Action{
		Key: tcell.KeyTab, Description: "Switch pane",
		Handler: func() {
			if a.app.GetFocus() == a.thread.Messages() {
				a.app.SetFocus(a.friends)
			} else {
				a.app.SetFocus(a.thread.Messages())
			}
		},
	})
	for n := 1; n <= 9; n++ {
		index := n - 1
		a.registry.AddView(pageChat, &keys.Action{
			Key: tcell.KeyRune, Rune: rune('0' + n), Description: "Jump",
			Handler: func() { a.selectFriend(index) },
		})
	}
}

func (a *App) setupCallbacks() {
	a.friends.SetSelectedFunc(func(row, _ int) {
		a.selectFriend(row - 1)
		a.app.SetFocus(a.thread.Composer())
	})

	a.thread.SetOnSend(func(text string) {
		a.draft.Text = text
		a.send()
	})

	a.prompt.SetOnChange(func(mode ui.PromptMode, text string) {
		if mode == ui.PromptSearch && a.sess != nil {
			a.sess.vm.SetSearch(text)
		}
	})
	a.prompt.SetOnSubmit(func(mode ui.PromptMode, text string) {
		a.hidePrompt()
		if mode == ui.PromptCommand {
			a.runCommand(text)
		}
	})
	a.prompt.SetOnCancel(func(mode ui.PromptMode) {
		if mode == ui.PromptSearch && a.sess != nil {
			a.sess.vm.SetSearch("")
		}
		a.hidePrompt()
	})

	a.login.SetOnSignIn(func(c views.Credentials) {
		a.authenticate("Signing in…", func(ctx context.Context) (model.Identity, error) {
			return a.client.SignIn(ctx, c.Email, c.Password)
		})
	})
	a.login.SetOnRegister(func(c views.Credentials) {
		a.authenticate("Creating account…", func(ctx context.Context) (model.Identity, error) {
			return a.client.Register(ctx, c.Name, c.Email, c.Password)
		})
	})

	a.pages.SetOnChange(func([]string) {
		a.updateMenu()
	})
}

func (a *App) setupLayout() {
	header := tview.NewFlex().
		AddItem(a.info, 0, 1, false).
		AddItem(a.menu, 0, 2, false).
		AddItem(ui.NewLogo(a.theme), 20, 0, false)

	body := tview.NewFlex().
		AddItem(a.friends, 0, 1, true).
		AddItem(a.thread, 0, 2, false)

	a.pages.AddPage(pageLogin, a.login, true, false)
	a.pages.AddPage(pageChat, body, true, false)
	a.pages.AddPage(pageDetails, a.peerInfo, true, false)
	a.pages.AddPage(pageAttachment, a.attachment, true, false)
	a.pages.AddPage(pageHelp, a.help, true, false)

	a.root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 4, 0, false).
		AddItem(a.pages, 0, 1, true).
		AddItem(a.prompt, 0, 0, false).
		AddItem(a.statusBar, 1, 0, false)

	a.app.SetRoot(a.root, true)
	a.app.SetInputCapture(a.handleKey)
}

func (a *App) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	if ev.Key() == tcell.KeyCtrlC {
		a.app.Stop()
		return nil
	}

	// Text inputs own their keys; Esc leaves the composer.
	if _, ok := a.app.GetFocus().(*tview.InputField); ok {
		if ev.Key() == tcell.KeyEscape && a.app.GetFocus() == a.thread.Composer() {
			a.app.SetFocus(a.friends)
			return nil
		}
		return ev
	}
	if a.pages.Current() == pageLogin {
		return ev
	}

	if a.registry.HandleEvent(a.pages.Current(), ev) {
		return nil
	}
	return ev
}

// Run starts the TUI and blocks until it exits.
func (a *App) Run() error {
	go a.watchBus()
	go a.tick()
	go func() {
		id, err := client.RequireSession(a.ctx, a.client)
		a.app.QueueUpdateDraw(func() {
			switch {
			case err == nil:
				a.startSession(id)
			case errors.Is(err, errs.ErrUnauthorized):
				a.showLogin("")
			default:
				a.logger.Error("failed to resume session", zap.Error(err))
				a.showLogin(err.Error())
			}
		})
	}()
	return a.app.Run()
}

// Stop shuts the TUI down.
func (a *App) Stop() {
	a.cancel()
	if a.sess != nil {
		a.sess.stop()
		a.sess = nil
	}
	a.app.Stop()
}

func (a *App) startSession(id model.Identity) {
	if a.sess != nil {
		a.sess.stop()
	}
	ctx, cancel := context.WithCancel(a.ctx)
	vm := conversation.NewViewModel(conversation.Config{
		Self:          id,
		Messages:      a.client,
		Files:         a.client,
		Logger:        a.logger,
		Window:        a.settings.ThreadWindow,
		MaxAttachment: a.settings.MaxAttachmentBytes,
	})
	engine := chatsync.NewEngine(a.client, a.client, vm, a.machine, a.bus, a.logger,
		chatsync.WithLimit(a.settings.FeedLimit))
	sess := &chatSession{
		vm:     vm,
		engine: engine,
		outbox: outbox.NewSender(vm, a.bus, a.logger),
		cancel: cancel,
	}
	sess.engine.Start(ctx)
	sess.outbox.Start(ctx)
	a.sess = sess
	a.draft = conversation.Draft{}
	a.pending = ""

	go func() {
		for {
			select {
			case <-vm.RefreshCh():
				a.app.QueueUpdateDraw(func() {
					if a.sess == sess {
						a.render()
					}
				})
			case <-ctx.Done():
				return
			}
		}
	}()

	a.logger.Info("chat session started", zap.String("uid", id.UID))
	a.pages.Reset(pageChat)
	a.app.SetFocus(a.friends)
	a.render()
}

func (a *App) endSession() {
	if a.sess == nil {
		return
	}
	sess := a.sess
	a.sess = nil
	go sess.stop()
}

func (a *App) showLogin(msg string) {
	a.endSession()
	_ = a.machine.Transition(status.SignedOut)
	a.login.Reset()
	if msg != "" {
		a.login.ShowMessage(msg)
	}
	a.info.Update(a.profileData(nil))
	a.pages.Reset(pageLogin)
	a.app.SetFocus(a.login.Form())
}

func (a *App) authenticate(progress string, fn func(ctx context.Context) (model.Identity, error)) {
	a.login.ShowMessage(progress)
	go func() {
		ctx, cancel := context.WithTimeout(a.ctx, 10*time.Second)
		defer cancel()
		id, err := fn(ctx)
		a.app.QueueUpdateDraw(func() {
			if err != nil {
				a.login.ShowMessage(err.Error())
				return
			}
			a.flash.Info("Signed in as " + id.Name())
			a.startSession(id)
		})
	}()
}

func (a *App) logout() {
	a.endSession()
	go func() {
		if err := a.client.SignOut(a.ctx); err != nil {
			a.logger.Warn("sign out failed", zap.Error(err))
		}
	}()
	a.showLogin("Signed out")
}

// render redraws everything derived from the current snapshot.
func (a *App) render() {
	if a.sess == nil {
		return
	}
	snap := a.sess.vm.Snapshot()
	peer, ok := a.sess.vm.Peer()
	var peerPtr *model.User
	if ok {
		peerPtr = &peer
	}

	a.friends.Update(snap)
	a.thread.Update(snap, peerPtr)
	a.thread.ShowAttachment(a.draft.Attachment)
	a.info.Update(a.profileData(&snap))

	if ok && a.pages.Current() == pageDetails {
		a.peerInfo.Update(snap, peer)
	}
	a.refreshStatus()
}

func (a *App) profileData(snap *conversation.Snapshot) ui.ProfileData {
	data := ui.ProfileData{
		Profile: a.opts.Profile,
		Account: a.opts.Account,
		Status:  string(a.machine.Current()),
	}
	if snap != nil {
		data.User = snap.Self.Name()
		data.Friends = len(snap.Friends)
		for _, f := range snap.Friends {
			data.Unread += f.Unread
		}
	}
	return data
}

func (a *App) refreshStatus() {
	a.updateMenu()
	a.statusBar.SetState(a.machine.Current(), a.machine.Detail())
	a.statusBar.SetFlash(a.flash.Current())
}

func (a *App) selectFriend(index int) {
	if a.sess == nil {
		return
	}
	vm := a.sess.vm
	if err := vm.Select(index); err != nil {
		return
	}
	go vm.Reconcile(a.ctx)
	a.render()
}

// send queues the composer draft for the selected peer. One draft is in
// flight at a time so the composer can reflect exactly what was sent.
func (a *App) send() {
	if a.sess == nil {
		return
	}
	if a.pending != "" {
		a.flash.Warn("Still sending the previous message")
		a.refreshStatus()
		return
	}
	peer, ok := a.sess.vm.Peer()
	if !ok {
		a.flash.Err(errs.ErrNoPeer)
		a.refreshStatus()
		return
	}
	id, err := a.sess.outbox.Enqueue(peer, a.draft)
	if err != nil {
		a.flash.Err(err)
		a.refreshStatus()
		return
	}
	a.pending = id
	a.flash.Info("Sending…")
	a.refreshStatus()
}

// settle applies an outbox result to the composer: sent parts are cleared
// unless the user has changed them since, failed parts stay.
func (a *App) settle(res outbox.Result) {
	if res.JobID != a.pending {
		return
	}
	a.pending = ""
	if res.Sent.TextID != "" && a.thread.Composer().GetText() == a.draft.Text {
		a.draft.Text = res.Remaining.Text
		a.thread.Composer().SetText(a.draft.Text)
	}
	if res.Sent.AttachmentID != "" {
		a.draft.Attachment = res.Remaining.Attachment
	}
	a.thread.ShowAttachment(a.draft.Attachment)

	if res.Err != nil {
		var upErr *errs.UploadError
		if errors.As(res.Err, &upErr) {
			a.flash.Err(fmt.Errorf("%w; attachment kept", upErr))
		} else {
			a.flash.Err(res.Err)
		}
	} else {
		a.flash.Info("Sent to " + res.Peer.Name)
	}
	a.refreshStatus()
}

func (a *App) runCommand(input string) {
	cmd, err := ParseCommand(input)
	if err != nil {
		a.flash.Err(err)
		a.refreshStatus()
		return
	}

	switch cmd.Name {
	case CmdSearch:
		if a.sess != nil {
			a.sess.vm.SetSearch(cmd.Args)
		}
		a.show(pageChat)
	case CmdAttach:
		a.attach(cmd.Args)
	case CmdDetach:
		a.draft.Attachment = nil
		a.thread.ShowAttachment(a.draft.Attachment)
	case CmdOpen:
		a.openAttachment()
	case CmdLogout:
		a.logout()
	case CmdHelp:
		a.show(pageHelp)
	case CmdQuit:
		a.app.Stop()
	}
	a.refreshStatus()
}

func (a *App) attach(path string) {
	info, err := os.Stat(path)
	if err != nil {
		a.flash.Err(err)
		return
	}
	if info.IsDir() {
		a.flash.Err(fmt.Errorf("%s is a directory", path))
		return
	}
	if info.Size() > a.settings.MaxAttachmentBytes {
		a.flash.Err(fmt.Errorf("%w: %s", errs.ErrAttachmentTooLarge, filepath.Base(path)))
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		a.flash.Err(err)
		return
	}
	a.draft.Attachment = &conversation.Attachment{Name: filepath.Base(path), Data: data}
	a.thread.ShowAttachment(a.draft.Attachment)
	a.flash.Info("Attached " + filepath.Base(path))
}

func (a *App) openAttachment() {
	if a.sess == nil {
		return
	}
	m, ok := views.LatestAttachment(a.sess.vm.Snapshot().Visible)
	if !ok {
		a.flash.Warn("No attachment in this conversation")
		a.refreshStatus()
		return
	}
	a.attachment.Show(m)
	a.show(pageAttachment)
}

func (a *App) showDetails() {
	if a.sess == nil {
		return
	}
	peer, ok := a.sess.vm.Peer()
	if !ok {
		a.flash.Err(errs.ErrNoPeer)
		a.refreshStatus()
		return
	}
	a.peerInfo.Update(a.sess.vm.Snapshot(), peer)
	a.show(pageDetails)
}

func (a *App) show(page string) {
	if a.sess == nil && page != pageHelp {
		return
	}
	a.pages.Push(page)
	if page == pageChat {
		a.app.SetFocus(a.friends)
	}
}

func (a *App) back() {
	if a.pages.Pop() == "" {
		return
	}
	if a.pages.Current() == pageChat {
		a.app.SetFocus(a.friends)
	}
}

func (a *App) activatePrompt(mode ui.PromptMode, text string) {
	if a.sess == nil {
		return
	}
	a.prompt.Activate(mode, text)
	a.root.ResizeItem(a.prompt, promptHeight, 0)
	a.app.SetFocus(a.prompt.InputField)
}

func (a *App) hidePrompt() {
	a.root.ResizeItem(a.prompt, 0, 0)
	a.app.SetFocus(a.friends)
}

func (a *App) updateMenu() {
	var c ui.Component
	switch a.pages.Current() {
	case pageLogin:
		c = a.login
	case pageChat:
		c = a.friends
		if a.app.GetFocus() == a.thread.Composer() {
			c = a.thread
		}
	case pageDetails:
		c = a.peerInfo
	case pageAttachment:
		c = a.attachment
	case pageHelp:
		c = a.help
	default:
		return
	}
	a.menu.Update(c.Hints())
}

// watchBus turns client-side events into UI updates.
func (a *App) watchBus() {
	sends, unsubSends := a.bus.Subscribe("message.", 16)
	defer unsubSends()
	feed, unsubFeed := a.bus.Subscribe("feed.", 16)
	defer unsubFeed()

	for {
		select {
		case evt := <-sends:
			res, ok := evt.Payload.(outbox.Result)
			if !ok {
				continue
			}
			a.app.QueueUpdateDraw(func() { a.settle(res) })
		case evt := <-feed:
			change, ok := evt.Payload.(status.StatusChange)
			if !ok {
				continue
			}
			a.app.QueueUpdateDraw(func() { a.onStatus(change) })
		case <-a.ctx.Done():
			return
		}
	}
}

func (a *App) onStatus(change status.StatusChange) {
	a.logger.Info("feed status changed",
		zap.String("from", string(change.From)),
		zap.String("to", string(change.To)),
		zap.String("detail", change.Detail))

	switch change.To {
	case status.SignedOut:
		if a.sess != nil {
			a.logout()
			a.login.ShowMessage("Session expired, sign in again")
		}
		return
	case status.Degraded:
		a.flash.Warn("Feed degraded: " + change.Detail)
	case status.Error:
		a.flash.Err(errors.New("feed stopped: " + change.Detail))
	}
	a.info.Update(a.profileData(nil))
	a.render()
	a.refreshStatus()
}

// tick refreshes the clock and expires flash messages.
func (a *App) tick() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			a.app.QueueUpdateDraw(a.refreshStatus)
		case <-a.ctx.Done():
			return
		}
	}
}
