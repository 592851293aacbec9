package client

import (
	"sync"

	"github.com/trovochat/trovochat/message"
	"github.com/trovochat/trovochat/wire"
)

// Identity is the connected user's known state: the nick is set from
// IrcReady during the handshake, and the rest is refreshed whenever Run
// handles a GlobalUserState or UserState. It is safe for concurrent reads
// via Snapshot while the Runner updates it from its single goroutine.
type Identity struct {
	mu          sync.RWMutex
	nick        string
	userID      string
	displayName string
	color       wire.Color
	badges      []wire.Badge
}

// IdentitySnapshot is a point-in-time copy of Identity's fields.
type IdentitySnapshot struct {
	Nick        string
	UserID      string
	DisplayName string
	Color       wire.Color
	Badges      []wire.Badge
}

func (id *Identity) Snapshot() IdentitySnapshot {
	id.mu.RLock()
	defer id.mu.RUnlock()
	return IdentitySnapshot{
		Nick:        id.nick,
		UserID:      id.userID,
		DisplayName: id.displayName,
		Color:       id.color,
		Badges:      append([]wire.Badge(nil), id.badges...),
	}
}

func (id *Identity) setNick(nick string) {
	id.mu.Lock()
	defer id.mu.Unlock()
	id.nick = nick
}

func (id *Identity) applyGlobalUserState(m message.GlobalUserState) {
	id.mu.Lock()
	defer id.mu.Unlock()
	id.userID = m.UserID
	if m.DisplayName != nil {
		id.displayName = *m.DisplayName
	}
	id.color = m.Color
	id.badges = m.Badges()
}

func (id *Identity) applyUserState(m message.UserState) {
	id.mu.Lock()
	defer id.mu.Unlock()
	if m.DisplayName != nil {
		id.displayName = *m.DisplayName
	}
	id.color = m.Color
	id.badges = m.Badges
}
