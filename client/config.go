package client

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/trovochat/trovochat/ratelimit"
)

// Config is the client's environment-driven configuration, loaded the
// way cmd/server/main.go loads the teacher's: an optional dotenv file
// populates the process environment, then envconfig.Process binds it
// onto this struct.
type Config struct {
	Nick         string `envconfig:"TROVOCHAT_NICK" required:"true" description:"The nickname to register as."`
	Token        string `envconfig:"TROVOCHAT_TOKEN" required:"true" description:"OAuth token (or password) sent via PASS."`
	Address      string `envconfig:"TROVOCHAT_ADDRESS" default:"irc.chat.trovo.tv:6697" description:"host:port of the IRC endpoint to dial."`
	UseTLS       bool   `envconfig:"TROVOCHAT_USE_TLS" default:"true" description:"Whether to dial Address over TLS."`
	RateClass    string `envconfig:"TROVOCHAT_RATE_CLASS" default:"regular" description:"One of regular, moderator, known, verified."`
	LogLevel     string `envconfig:"TROVOCHAT_LOG_LEVEL" default:"info" description:"Possible values: trace, debug, info, warn, error."`
	Membership   bool   `envconfig:"TROVOCHAT_MEMBERSHIP_CAP" default:"true" description:"Request the membership capability (JOIN/PART/NAMES/MODE)."`
	Commands     bool   `envconfig:"TROVOCHAT_COMMANDS_CAP" default:"true" description:"Request the commands capability (HOSTTARGET, USERSTATE, etc)."`
	Tags         bool   `envconfig:"TROVOCHAT_TAGS_CAP" default:"true" description:"Request the tags capability (metadata on PRIVMSG, etc)."`

	// ReadTimeout is the idle window (reset by any received frame) past
	// which the Runner gives up and terminates with ErrTimeout, per spec
	// 5's timeout model. Past half this window with no traffic, Run sends
	// an optional keepalive PING before the window fully elapses.
	ReadTimeout time.Duration `envconfig:"TROVOCHAT_READ_TIMEOUT" default:"5m" description:"Idle read window before the connection is considered dead."`
}

// LoadConfig optionally loads envFile into the process environment (a
// missing file is not an error, matching the teacher's settings.env
// handling in cmd/server/main.go) and binds the result onto a Config.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("client: loading config: %w", err)
	}
	return cfg, nil
}

// RateLimitClass resolves RateClass to a ratelimit.Class, defaulting to
// Regular for an empty or unrecognized value.
func (c Config) RateLimitClass() ratelimit.Class {
	switch c.RateClass {
	case "moderator":
		return ratelimit.Moderator
	case "known":
		return ratelimit.Known
	case "verified":
		return ratelimit.Verified
	default:
		return ratelimit.Regular
	}
}
