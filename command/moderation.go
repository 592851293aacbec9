package command

import (
	"io"

	"github.com/trovochat/trovochat/wire"
)

// ModCommand is the shared shape behind every moderation command: they
// all render as `PRIVMSG <channel> :/<verb> <args...>\r\n`, per spec 4.3
// and the reference crate's per-verb structs in
// original_source/src/ng/commands/*.rs.
type ModCommand struct {
	Channel string
	Verb    string
	Args    []string
}

func (c ModCommand) Encode(w io.Writer) error {
	args := append([]string{"/" + c.Verb}, c.Args...)
	return wire.WriteCommand(w, "PRIVMSG", []string{c.Channel}, joinSpace(args), true)
}

func joinSpace(args []string) string {
	out := args[0]
	for _, a := range args[1:] {
		out += " " + a
	}
	return out
}

func mod1(channel, verb, arg string) ModCommand {
	return ModCommand{Channel: channel, Verb: verb, Args: []string{arg}}
}

func mod0(channel, verb string) ModCommand {
	return ModCommand{Channel: channel, Verb: verb}
}

// Ban permanently bans name from channel.
func Ban(channel, name string) ModCommand { return mod1(channel, "ban", name) }

// Unban lifts a ban on name in channel.
func Unban(channel, name string) ModCommand { return mod1(channel, "unban", name) }

// Timeout bans name from channel for seconds.
func Timeout(channel, name string, seconds int) ModCommand {
	return ModCommand{Channel: channel, Verb: "timeout", Args: []string{name, itoa(seconds)}}
}

// Untimeout lifts an active timeout on name in channel.
func Untimeout(channel, name string) ModCommand { return mod1(channel, "untimeout", name) }

// Slow enables slow mode, limiting how often users may send messages.
// duration defaults to 120 seconds if <= 0, matching the reference
// crate's slow() constructor.
func Slow(channel string, duration int) ModCommand {
	if duration <= 0 {
		duration = 120
	}
	return ModCommand{Channel: channel, Verb: "slow", Args: []string{itoa(duration)}}
}

// SlowOff disables slow mode.
func SlowOff(channel string) ModCommand { return mod0(channel, "slowoff") }

// EmoteOnly restricts channel to emote-only messages.
func EmoteOnly(channel string) ModCommand { return mod0(channel, "emoteonly") }

// EmoteOnlyOff disables emote-only mode.
func EmoteOnlyOff(channel string) ModCommand { return mod0(channel, "emoteonlyoff") }

// FollowersOnly restricts channel to followers, optionally for a minimum
// follow age in minutes.
func FollowersOnly(channel string, minutes int) ModCommand {
	if minutes <= 0 {
		return mod0(channel, "followers")
	}
	return mod1(channel, "followers", itoa(minutes))
}

// FollowersOnlyOff disables followers-only mode.
func FollowersOnlyOff(channel string) ModCommand { return mod0(channel, "followersoff") }

// SubscribersOnly restricts channel to subscribers.
func SubscribersOnly(channel string) ModCommand { return mod0(channel, "subscribers") }

// SubscribersOnlyOff disables subscribers-only mode.
func SubscribersOnlyOff(channel string) ModCommand { return mod0(channel, "subscribersoff") }

// R9kBeta enables unique-chat mode.
func R9kBeta(channel string) ModCommand { return mod0(channel, "r9kbeta") }

// R9kBetaOff disables unique-chat mode.
func R9kBetaOff(channel string) ModCommand { return mod0(channel, "r9kbetaoff") }

// Host begins hosting target from channel.
func Host(channel, target string) ModCommand { return mod1(channel, "host", target) }

// Unhost stops hosting.
func Unhost(channel string) ModCommand { return mod0(channel, "unhost") }

// Raid begins a raid from source into target.
func Raid(source, target string) ModCommand { return mod1(source, "raid", target) }

// Unraid cancels an active raid.
func Unraid(channel string) ModCommand { return mod0(channel, "unraid") }

// VIP grants name VIP status in channel.
func VIP(channel, name string) ModCommand { return mod1(channel, "vip", name) }

// UnVIP revokes name's VIP status in channel.
func UnVIP(channel, name string) ModCommand { return mod1(channel, "unvip", name) }

// VIPs lists channel's VIPs.
func VIPs(channel string) ModCommand { return mod0(channel, "vips") }

// Mod grants name moderator status in channel.
func Mod(channel, name string) ModCommand { return mod1(channel, "mod", name) }

// Unmod revokes name's moderator status in channel.
func Unmod(channel, name string) ModCommand { return mod1(channel, "unmod", name) }

// Mods lists channel's moderators.
func Mods(channel string) ModCommand { return mod0(channel, "mods") }

// Color sets the connected user's display color in channel.
func Color(channel, color string) ModCommand { return mod1(channel, "color", color) }

// Commercial runs an ad break of length seconds in channel.
func Commercial(channel string, seconds int) ModCommand {
	return mod1(channel, "commercial", itoa(seconds))
}

// Clear clears channel's chat history for all viewers.
func Clear(channel string) ModCommand { return mod0(channel, "clear") }

// Marker drops a stream marker with an optional description.
func Marker(channel, description string) ModCommand {
	if description == "" {
		return mod0(channel, "marker")
	}
	return mod1(channel, "marker", description)
}

// Delete removes a single message by id from channel.
func Delete(channel, msgID string) ModCommand { return mod1(channel, "delete", msgID) }

// Announce posts an announcement to channel.
func Announce(channel, text string) ModCommand { return mod1(channel, "announce", text) }
