package message

import "github.com/trovochat/trovochat/wire"

// Project determines msg's primary variant from its command token and
// builds it, following the match table in the reference crate's
// Dispatcher::dispatch. Commands with no known projection yield a Raw
// wrapper and no error, matching the reference crate's catch-all arm. A
// known command whose required args/tags are missing still returns a
// typed-layer error (ExpectedArgError, ExpectedTagError, ...); callers
// that want to keep processing the stream may fall back to NewRaw(msg).
func Project(msg wire.RawMessage) (Message, error) {
	kind, known := KindOf(msg.Command)
	if !known {
		return NewRaw(msg), nil
	}
	switch kind {
	case KindIrcReady:
		return NewIrcReady(msg)
	case KindReady:
		return NewReady(msg)
	case KindCap:
		return NewCap(msg)
	case KindClearChat:
		return NewClearChat(msg)
	case KindClearMsg:
		return NewClearMsg(msg)
	case KindGlobalUserState:
		return NewGlobalUserState(msg)
	case KindHostTarget:
		return NewHostTarget(msg)
	case KindJoin:
		return NewJoin(msg)
	case KindMode:
		return NewMode(msg)
	case KindNames:
		return NewNames(msg)
	case KindNotice:
		return NewNotice(msg)
	case KindPart:
		return NewPart(msg)
	case KindPing:
		return NewPing(msg)
	case KindPong:
		return NewPong(msg)
	case KindPrivmsg:
		return NewPrivmsg(msg)
	case KindReconnect:
		return NewReconnect(msg)
	case KindRoomState:
		return NewRoomState(msg)
	case KindUserNotice:
		return NewUserNotice(msg)
	case KindUserState:
		return NewUserState(msg)
	case KindWhisper:
		return NewWhisper(msg)
	default:
		return NewRaw(msg), nil
	}
}
