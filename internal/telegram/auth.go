package telegram

import (
	"context"
	"log/slog"
)

// DefaultGMRole is the administrator title that grants GM commands.
const DefaultGMRole = "GM (Game Manager)"

// MemberSource looks up chat membership.
type MemberSource interface {
	GetChatMember(ctx context.Context, chatID, userID int64) (ChatMember, error)
}

// Authorizer decides whether a sender may run GM commands. Listed user ids
// always qualify; otherwise the sender must be a chat administrator whose
// custom title matches Role.
type Authorizer struct {
	Members MemberSource
	Role    string
	Users   map[int64]bool
	Logger  *slog.Logger
}

// NewAuthorizer builds an Authorizer for the given role title and user ids.
func NewAuthorizer(members MemberSource, role string, users []int64, logger *slog.Logger) *Authorizer {
	if role == "" {
		role = DefaultGMRole
	}
	if logger == nil {
		logger = slog.Default()
	}
	set := make(map[int64]bool, len(users))
	for _, id := range users {
		set[id] = true
	}
	return &Authorizer{Members: members, Role: role, Users: set, Logger: logger}
}

// IsGM reports the sender's capability. Lookup failures deny.
func (a *Authorizer) IsGM(ctx context.Context, chatID int64, u User) bool {
	if a.Users[u.ID] {
		return true
	}
	if a.Members == nil {
		return false
	}
	m, err := a.Members.GetChatMember(ctx, chatID, u.ID)
	if err != nil {
		a.Logger.Warn("chat member lookup failed", "chat_id", chatID, "user_id", u.ID, "error", err)
		return false
	}
	return m.IsAdmin() && m.CustomTitle == a.Role
}
