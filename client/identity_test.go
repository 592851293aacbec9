package client

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trovochat/trovochat/message"
	"github.com/trovochat/trovochat/wire"
)

func decodeOne(t *testing.T, line string) wire.RawMessage {
	t.Helper()
	results := wire.DecodeAll([]byte(line + "\r\n"))
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	return results[0].Message.IntoOwned()
}

func TestIdentityAppliesGlobalUserState(t *testing.T) {
	raw := decodeOne(t, "@user-id=1234;display-name=Helix;color=#FF0000;badges=staff/1 :tmi.trovo.tv GLOBALUSERSTATE")
	gus, err := message.NewGlobalUserState(raw)
	require.NoError(t, err)

	id := &Identity{}
	id.setNick("helix")
	id.applyGlobalUserState(gus)

	snap := id.Snapshot()
	require.Equal(t, "helix", snap.Nick)
	require.Equal(t, "1234", snap.UserID)
	require.Equal(t, "Helix", snap.DisplayName)
	require.Len(t, snap.Badges, 1)
}

func TestIdentityAppliesUserState(t *testing.T) {
	raw := decodeOne(t, "@display-name=Helix;color=#00FF00;mod=1 :tmi.trovo.tv USERSTATE #somechannel")
	us, err := message.NewUserState(raw)
	require.NoError(t, err)

	id := &Identity{}
	id.applyUserState(us)

	snap := id.Snapshot()
	require.Equal(t, "Helix", snap.DisplayName)
	require.True(t, us.Mod)
}

func TestIdentitySnapshotIsACopy(t *testing.T) {
	id := &Identity{}
	id.setNick("a")
	snap := id.Snapshot()
	id.setNick("b")
	require.Equal(t, "a", snap.Nick)
}
