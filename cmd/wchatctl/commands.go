package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matheus3301/wchat/internal/client"
	"github.com/matheus3301/wchat/internal/conversation"
	"github.com/matheus3301/wchat/internal/errs"
	"github.com/matheus3301/wchat/internal/model"
)

func cmdRegister(ctx context.Context, e *env, args []string) error {
	if len(args) != 3 {
		return errors.New("usage: wchatctl register <name> <email> <password>")
	}
	id, err := e.client.Register(ctx, args[0], args[1], args[2])
	if err != nil {
		return err
	}
	return printIdentity(e, id)
}

func cmdLogin(ctx context.Context, e *env, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: wchatctl login <email> <password>")
	}
	id, err := e.client.SignIn(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	return printIdentity(e, id)
}

func cmdLogout(ctx context.Context, e *env, _ []string) error {
	if err := e.client.SignOut(ctx); err != nil {
		return err
	}
	if !e.json {
		fmt.Printf("Signed out of %s/%s\n", e.profile, e.account)
	}
	return nil
}

func cmdWhoAmI(ctx context.Context, e *env, _ []string) error {
	id, err := client.RequireSession(ctx, e.client)
	if err != nil {
		return signInHint(err)
	}
	return printIdentity(e, id)
}

func cmdUsers(ctx context.Context, e *env, _ []string) error {
	if _, err := client.RequireSession(ctx, e.client); err != nil {
		return signInHint(err)
	}
	users, err := e.client.ListUsers(ctx)
	if err != nil {
		return err
	}
	return printUsers(e, users)
}

func cmdFriends(ctx context.Context, e *env, args []string) error {
	fs := flag.NewFlagSet("friends", flag.ContinueOnError)
	search := fs.String("search", "", "list every named user whose name contains this text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	view, err := snapshot(ctx, e, *search)
	if err != nil {
		return err
	}
	return printFriends(e, view.Friends)
}

func cmdUnread(ctx context.Context, e *env, _ []string) error {
	view, err := snapshot(ctx, e, "")
	if err != nil {
		return err
	}
	var unread []conversation.Friend
	for _, f := range view.Friends {
		if f.Unread > 0 {
			unread = append(unread, f)
		}
	}
	return printFriends(e, unread)
}

func cmdThread(ctx context.Context, e *env, args []string) error {
	fs := flag.NewFlagSet("thread", flag.ContinueOnError)
	all := fs.Bool("all", false, "print the whole thread instead of the latest window")
	markRead := fs.Bool("read", false, "mark the peer's unread messages as read")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: wchatctl thread [--all] [--read] <peer-uid>")
	}
	peer := fs.Arg(0)

	self, msgs, users, err := load(ctx, e)
	if err != nil {
		return err
	}
	view := conversation.Derive(conversation.Input{
		Messages: msgs,
		Users:    users,
		Self:     self.UID,
		Peer:     peer,
		Window:   e.cfg.ThreadWindow,
	})
	if view.Peer == "" {
		return fmt.Errorf("%s is not in your friend list: %w", peer, errs.ErrNotFound)
	}

	if *markRead {
		rec := conversation.NewReconciler(e.client, e.logger)
		ids := rec.Reconcile(ctx, msgs, self.UID, peer)
		rec.Wait()
		if !e.json && len(ids) > 0 {
			fmt.Fprintf(os.Stderr, "marked %d message(s) as read\n", len(ids))
		}
	}

	shown := view.Visible
	if *all {
		shown = view.Thread
	}
	return printThread(e, shown, self.UID)
}

func cmdSend(ctx context.Context, e *env, args []string) error {
	fs := flag.NewFlagSet("send", flag.ContinueOnError)
	file := fs.String("file", "", "attach a file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return errors.New("usage: wchatctl send [--file <path>] <peer-uid> [text]")
	}

	self, err := client.RequireSession(ctx, e.client)
	if err != nil {
		return signInHint(err)
	}
	users, err := e.client.ListUsers(ctx)
	if err != nil {
		return err
	}
	peer, ok := findUser(users, fs.Arg(0))
	if !ok {
		return fmt.Errorf("user %s: %w", fs.Arg(0), errs.ErrNotFound)
	}

	draft := conversation.Draft{Text: strings.Join(fs.Args()[1:], " ")}
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			return err
		}
		draft.Attachment = &conversation.Attachment{Name: filepath.Base(*file), Data: data}
	}

	sender := conversation.NewSender(e.client, e.client, e.logger,
		conversation.WithMaxAttachment(e.cfg.MaxAttachmentBytes))
	res, err := sender.Send(ctx, self, peer, draft)
	if printErr := printSendResult(e, res); printErr != nil {
		return printErr
	}
	return err
}

func cmdWatch(ctx context.Context, e *env, _ []string) error {
	self, err := client.RequireSession(ctx, e.client)
	if err != nil {
		return signInHint(err)
	}
	updates, err := e.client.SubscribeRecent(ctx, e.cfg.FeedLimit)
	if err != nil {
		return err
	}
	seen := make(map[string]bool)
	first := true
	for u := range updates {
		if u.Err != nil {
			return u.Err
		}
		// Feed order is most-recent-first; print oldest first.
		var fresh []model.Message
		for i := len(u.Messages) - 1; i >= 0; i-- {
			m := u.Messages[i]
			if !seen[m.ID] {
				seen[m.ID] = true
				fresh = append(fresh, m)
			}
		}
		if first {
			first = false
			continue
		}
		if err := printWatch(e, fresh, self.UID); err != nil {
			return err
		}
	}
	return ctx.Err()
}

// load fetches one feed snapshot and the directory for the signed-in user.
func load(ctx context.Context, e *env) (model.Identity, []model.Message, []model.User, error) {
	self, err := client.RequireSession(ctx, e.client)
	if err != nil {
		return model.Identity{}, nil, nil, signInHint(err)
	}
	users, err := e.client.ListUsers(ctx)
	if err != nil {
		return model.Identity{}, nil, nil, err
	}

	feedCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	updates, err := e.client.SubscribeRecent(feedCtx, e.cfg.FeedLimit)
	if err != nil {
		return model.Identity{}, nil, nil, err
	}
	select {
	case u, ok := <-updates:
		if !ok {
			return model.Identity{}, nil, nil, errors.New("feed closed before the first snapshot")
		}
		if u.Err != nil {
			return model.Identity{}, nil, nil, u.Err
		}
		return self, u.Messages, users, nil
	case <-ctx.Done():
		return model.Identity{}, nil, nil, ctx.Err()
	}
}

func snapshot(ctx context.Context, e *env, search string) (conversation.View, error) {
	self, msgs, users, err := load(ctx, e)
	if err != nil {
		return conversation.View{}, err
	}
	return conversation.Derive(conversation.Input{
		Messages: msgs,
		Users:    users,
		Self:     self.UID,
		Search:   search,
		Window:   e.cfg.ThreadWindow,
	}), nil
}

func findUser(users []model.User, uid string) (model.User, bool) {
	for _, u := range users {
		if u.UID == uid {
			return u, true
		}
	}
	return model.User{}, false
}

func signInHint(err error) error {
	if errors.Is(err, errs.ErrUnauthorized) {
		return fmt.Errorf("%w: run `wchatctl login <email> <password>` first", err)
	}
	return err
}
