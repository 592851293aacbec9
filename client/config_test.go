package client

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/trovochat/trovochat/ratelimit"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TROVOCHAT_NICK", "TROVOCHAT_TOKEN", "TROVOCHAT_ADDRESS", "TROVOCHAT_USE_TLS",
		"TROVOCHAT_RATE_CLASS", "TROVOCHAT_LOG_LEVEL", "TROVOCHAT_MEMBERSHIP_CAP",
		"TROVOCHAT_COMMANDS_CAP", "TROVOCHAT_TAGS_CAP", "TROVOCHAT_READ_TIMEOUT",
	} {
		os.Unsetenv(key)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	os.Setenv("TROVOCHAT_NICK", "justinfan1234")
	os.Setenv("TROVOCHAT_TOKEN", "oauth:abc")
	defer clearEnv(t)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, "justinfan1234", cfg.Nick)
	require.Equal(t, "irc.chat.trovo.tv:6697", cfg.Address)
	require.True(t, cfg.UseTLS)
	require.True(t, cfg.Tags)
	require.Equal(t, "regular", cfg.RateClass)
	require.Equal(t, 5*time.Minute, cfg.ReadTimeout)
}

func TestLoadConfigRequiresNickAndToken(t *testing.T) {
	clearEnv(t)
	defer clearEnv(t)

	_, err := LoadConfig("")
	require.Error(t, err)
}

func TestRateLimitClassMapping(t *testing.T) {
	cases := map[string]ratelimit.Class{
		"":          ratelimit.Regular,
		"regular":   ratelimit.Regular,
		"moderator": ratelimit.Moderator,
		"known":     ratelimit.Known,
		"verified":  ratelimit.Verified,
		"bogus":     ratelimit.Regular,
	}
	for class, want := range cases {
		cfg := Config{RateClass: class}
		require.Equal(t, want, cfg.RateLimitClass())
	}
}
