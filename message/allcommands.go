package message

// AllCommands is the closed union itself: subscribing to it (via
// dispatch.Subscribe[message.AllCommands]) receives every dispatched
// message regardless of its concrete variant, the same role
// IrcMessage/AllCommands play in the reference crate's dispatch arm.
type AllCommands = Message
