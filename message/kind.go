// Package message is the typed message layer on top of wire: it projects
// a wire.RawMessage onto one of a fixed set of Trovo-specific shapes, each
// with typed accessors instead of raw tag lookups. Grounded on the
// reference crate's per-variant structs (original_source/src/ng/messages/
// and original_source/src/messages/global_user_state.rs) and dispatched
// the way original_source/src/dispatcher.rs maps a command token onto a
// variant constructor.
package message

import "github.com/trovochat/trovochat/wire"

// Kind identifies which typed variant a message was decoded into. The
// dispatcher keys its subscriber registries by Kind rather than by
// reflect.Type, mirroring the teacher's food-group/subgroup keyed routing
// in server/oscar/router.go.
type Kind int

const (
	KindIrcReady Kind = iota
	KindReady
	KindCap
	KindClearChat
	KindClearMsg
	KindGlobalUserState
	KindHostTarget
	KindJoin
	KindMode
	KindNames
	KindNotice
	KindPart
	KindPing
	KindPong
	KindPrivmsg
	KindReconnect
	KindRoomState
	KindUserNotice
	KindUserState
	KindWhisper
	KindRaw
)

// KindOf maps a decoded command token to the variant it projects into,
// following the match arms in the reference crate's Dispatcher::dispatch.
// Commands with no known projection return (KindRaw, false); callers still
// get a Raw wrapper for those, same as the reference crate's catch-all
// arm.
func KindOf(command string) (Kind, bool) {
	switch command {
	case "001":
		return KindIrcReady, true
	case "376":
		return KindReady, true
	case "353", "366":
		return KindNames, true
	case "CAP":
		return KindCap, true
	case "CLEARCHAT":
		return KindClearChat, true
	case "CLEARMSG":
		return KindClearMsg, true
	case "GLOBALUSERSTATE":
		return KindGlobalUserState, true
	case "HOSTTARGET", "HOSTARGET":
		return KindHostTarget, true
	case "JOIN":
		return KindJoin, true
	case "MODE":
		return KindMode, true
	case "NOTICE":
		return KindNotice, true
	case "PART":
		return KindPart, true
	case "PING":
		return KindPing, true
	case "PONG":
		return KindPong, true
	case "PRIVMSG":
		return KindPrivmsg, true
	case "RECONNECT":
		return KindReconnect, true
	case "ROOMSTATE":
		return KindRoomState, true
	case "USERNOTICE":
		return KindUserNotice, true
	case "USERSTATE":
		return KindUserState, true
	case "WHISPER":
		return KindWhisper, true
	default:
		return KindRaw, false
	}
}

// Message is implemented by every typed variant plus Raw, so a dispatcher
// subscription on the AllCommands catch-all can hold any of them.
type Message interface {
	Kind() Kind
	Raw() wire.RawMessage
}
