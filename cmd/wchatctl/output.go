package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/matheus3301/wchat/internal/conversation"
	"github.com/matheus3301/wchat/internal/model"
)

var stdout io.Writer = os.Stdout

func newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)
	return table
}

func outputJSON(v any) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printIdentity(e *env, id model.Identity) error {
	if e.json {
		return outputJSON(struct {
			UID     string `json:"uid"`
			Name    string `json:"name"`
			Email   string `json:"email"`
			Profile string `json:"profile"`
			Account string `json:"account"`
		}{id.UID, id.Name(), id.Email, e.profile, e.account})
	}
	_, _ = fmt.Fprintf(stdout, "UID:     %s\n", id.UID)
	_, _ = fmt.Fprintf(stdout, "Name:    %s\n", id.Name())
	_, _ = fmt.Fprintf(stdout, "Email:   %s\n", id.Email)
	_, _ = fmt.Fprintf(stdout, "Profile: %s/%s\n", e.profile, e.account)
	return nil
}

type userJSON struct {
	UID    string `json:"uid"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Unread *int   `json:"unread,omitempty"`
}

func printUsers(e *env, users []model.User) error {
	if e.json {
		out := make([]userJSON, 0, len(users))
		for _, u := range users {
			out = append(out, userJSON{UID: u.UID, Name: u.Name, Email: u.Email})
		}
		return outputJSON(out)
	}
	if len(users) == 0 {
		_, _ = fmt.Fprintln(stdout, "No users found.")
		return nil
	}
	table := newTable("UID", "Name", "Email")
	for _, u := range users {
		table.Append([]string{u.UID, u.Name, u.Email})
	}
	table.Render()
	return nil
}

func printFriends(e *env, friends []conversation.Friend) error {
	if e.json {
		out := make([]userJSON, 0, len(friends))
		for _, f := range friends {
			unread := f.Unread
			out = append(out, userJSON{UID: f.UID, Name: f.Name, Email: f.Email, Unread: &unread})
		}
		return outputJSON(out)
	}
	if len(friends) == 0 {
		_, _ = fmt.Fprintln(stdout, "No conversations.")
		return nil
	}
	table := newTable("UID", "Name", "Email", "Unread")
	for _, f := range friends {
		table.Append([]string{f.UID, f.Name, f.Email, strconv.Itoa(f.Unread)})
	}
	table.Render()
	return nil
}

type messageJSON struct {
	ID         string     `json:"id"`
	From       string     `json:"from"`
	FromName   string     `json:"from_name"`
	To         string     `json:"to"`
	Text       string     `json:"text,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	Status     string     `json:"status"`
	ReadAt     *time.Time `json:"read_at,omitempty"`
	Attachment string     `json:"attachment_url,omitempty"`
	FileType   string     `json:"file_type,omitempty"`
	FileSize   int64      `json:"file_size,omitempty"`
}

func toMessageJSON(m model.Message) messageJSON {
	return messageJSON{
		ID:         m.ID,
		From:       m.UID,
		FromName:   m.DisplayName,
		To:         m.RecipientID,
		Text:       m.Text,
		CreatedAt:  m.CreatedAt,
		Status:     string(m.Status),
		ReadAt:     m.ReadAt,
		Attachment: m.FileURL,
		FileType:   m.FileType,
		FileSize:   m.FileSize,
	}
}

func printThread(e *env, msgs []model.Message, self string) error {
	if e.json {
		out := make([]messageJSON, 0, len(msgs))
		for _, m := range msgs {
			out = append(out, toMessageJSON(m))
		}
		return outputJSON(out)
	}
	if len(msgs) == 0 {
		_, _ = fmt.Fprintln(stdout, "No messages.")
		return nil
	}
	table := newTable("Time", "From", "Message", "")
	for _, m := range msgs {
		table.Append([]string{
			conversation.FormatClock(m.CreatedAt),
			senderLabel(m, self),
			messageBody(m),
			conversation.ReceiptFor(m, self).String(),
		})
	}
	table.Render()
	return nil
}

func printWatch(e *env, msgs []model.Message, self string) error {
	for _, m := range msgs {
		if e.json {
			if err := outputJSON(toMessageJSON(m)); err != nil {
				return err
			}
			continue
		}
		_, _ = fmt.Fprintf(stdout, "%s %s -> %s: %s\n",
			conversation.FormatClock(m.CreatedAt), senderLabel(m, self), recipientLabel(m, self), messageBody(m))
	}
	return nil
}

func printSendResult(e *env, res conversation.SendResult) error {
	if e.json {
		return outputJSON(struct {
			TextID       string `json:"text_id,omitempty"`
			AttachmentID string `json:"attachment_id,omitempty"`
		}{res.TextID, res.AttachmentID})
	}
	if res.TextID != "" {
		_, _ = fmt.Fprintf(stdout, "Sent message %s\n", res.TextID)
	}
	if res.AttachmentID != "" {
		_, _ = fmt.Fprintf(stdout, "Sent attachment %s\n", res.AttachmentID)
	}
	return nil
}

func senderLabel(m model.Message, self string) string {
	if m.UID == self {
		return "you"
	}
	if m.DisplayName != "" {
		return m.DisplayName
	}
	return model.AnonymousName
}

func recipientLabel(m model.Message, self string) string {
	if m.RecipientID == self {
		return "you"
	}
	if m.RecipientName != "" {
		return m.RecipientName
	}
	return m.RecipientID
}

func messageBody(m model.Message) string {
	if !m.IsAttachment {
		return m.Text
	}
	body := fmt.Sprintf("[attachment %s] %s", m.FileType, m.FileURL)
	if m.Text != "" {
		body = m.Text + " " + body
	}
	return body
}
