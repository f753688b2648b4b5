// Package rpc adapts the domain model to the generated chat.v1 wire types.
// Wire timestamps become time.Time here and nowhere else.
package rpc

import (
	"github.com/samber/lo"

	chatv1 "github.com/matheus3301/wchat/gen/chat/v1"
	"github.com/matheus3301/wchat/internal/model"
)

// PublicMethods do not require a bearer token.
var PublicMethods = map[string]bool{
	chatv1.IdentityService_Register_FullMethodName: true,
	chatv1.IdentityService_SignIn_FullMethodName:   true,
}

func FromIdentity(id model.Identity) *chatv1.Identity {
	return &chatv1.Identity{Uid: id.UID, Name: id.DisplayName, Email: id.Email}
}

func ToIdentity(id *chatv1.Identity) model.Identity {
	return model.Identity{UID: id.GetUid(), DisplayName: id.GetName(), Email: id.GetEmail()}
}

func FromUsers(users []model.User) []*chatv1.User {
	return lo.Map(users, func(u model.User, _ int) *chatv1.User {
		return &chatv1.User{Uid: u.UID, Name: u.Name, Email: u.Email}
	})
}

func ToUsers(users []*chatv1.User) []model.User {
	return lo.Map(users, func(u *chatv1.User, _ int) model.User {
		return model.User{UID: u.GetUid(), Name: u.GetName(), Email: u.GetEmail()}
	})
}

// FromMessage converts a stored message for the feed.
func FromMessage(m model.Message) *chatv1.Message {
	return &chatv1.Message{
		Id:            m.ID,
		Uid:           m.UID,
		DisplayName:   m.DisplayName,
		RecipientId:   m.RecipientID,
		RecipientName: m.RecipientName,
		Text:          m.Text,
		CreatedAt:     Timestamp(m.CreatedAt),
		Status:        string(m.Status),
		Read:          m.Read,
		ReadAt:        TimestampPtr(m.ReadAt),
		IsAttachment:  m.IsAttachment,
		FileUrl:       m.FileURL,
		FileType:      m.FileType,
		FileSize:      m.FileSize,
	}
}

// ToMessage converts a feed message. A missing readAt stays nil.
func ToMessage(m *chatv1.Message) model.Message {
	return model.Message{
		ID:            m.GetId(),
		UID:           m.GetUid(),
		DisplayName:   m.GetDisplayName(),
		RecipientID:   m.GetRecipientId(),
		RecipientName: m.GetRecipientName(),
		Text:          m.GetText(),
		CreatedAt:     Time(m.GetCreatedAt()),
		Status:        model.Status(m.GetStatus()),
		Read:          m.GetRead(),
		ReadAt:        TimePtr(m.GetReadAt()),
		IsAttachment:  m.GetIsAttachment(),
		FileURL:       m.GetFileUrl(),
		FileType:      m.GetFileType(),
		FileSize:      m.GetFileSize(),
	}
}

// FromNewMessage converts creation fields.
func FromNewMessage(m model.NewMessage) *chatv1.Message {
	return &chatv1.Message{
		Uid:           m.UID,
		DisplayName:   m.DisplayName,
		RecipientId:   m.RecipientID,
		RecipientName: m.RecipientName,
		Text:          m.Text,
		CreatedAt:     Timestamp(m.CreatedAt),
		IsAttachment:  m.IsAttachment,
		FileUrl:       m.FileURL,
		FileType:      m.FileType,
		FileSize:      m.FileSize,
	}
}

// ToNewMessage extracts creation fields; server-owned fields are ignored.
func ToNewMessage(m *chatv1.Message) model.NewMessage {
	return model.NewMessage{
		UID:           m.GetUid(),
		DisplayName:   m.GetDisplayName(),
		RecipientID:   m.GetRecipientId(),
		RecipientName: m.GetRecipientName(),
		Text:          m.GetText(),
		CreatedAt:     Time(m.GetCreatedAt()),
		IsAttachment:  m.GetIsAttachment(),
		FileURL:       m.GetFileUrl(),
		FileType:      m.GetFileType(),
		FileSize:      m.GetFileSize(),
	}
}

func FromMessages(msgs []model.Message) []*chatv1.Message {
	return lo.Map(msgs, func(m model.Message, _ int) *chatv1.Message { return FromMessage(m) })
}

func ToMessages(msgs []*chatv1.Message) []model.Message {
	return lo.Map(msgs, func(m *chatv1.Message, _ int) model.Message { return ToMessage(m) })
}
