// Command trovochat connects to Trovo IRC, joins the channels named on
// the command line, and logs every PRIVMSG it sees until interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/trovochat/trovochat/client"
	"github.com/trovochat/trovochat/dispatch"
	"github.com/trovochat/trovochat/message"
	"github.com/trovochat/trovochat/transport"
)

func main() {
	cfgFile := flag.String("config", ".env", "Path to config file")
	channels := flag.String("channels", "", "Comma-separated list of channels to join")
	flag.Parse()

	cfg, err := client.LoadConfig(*cfgFile)
	if err != nil {
		fmt.Printf("startup failed: %s\n", err)
		os.Exit(1)
	}
	logger := client.NewLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var conn transport.Connector = transport.TCP{Address: cfg.Address}
	if cfg.UseTLS {
		conn = transport.TLS{Address: cfg.Address}
	}

	runner, err := client.Connect(ctx, conn, cfg, logger)
	if err != nil {
		logger.Error("connect failed", "err", err.Error())
		os.Exit(1)
	}

	privmsgs, unsubscribe := dispatch.Subscribe[message.Privmsg](runner.Dispatcher, message.KindPrivmsg)
	defer unsubscribe()
	go func() {
		for m := range privmsgs {
			logger.Info("privmsg", "channel", m.Channel, "nick", m.Name, "text", m.Data)
		}
	}()

	runCtx, cancel := context.WithCancel(ctx)
	control := client.NewControl(runner, cancel)

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error { return runner.Run(gctx) })

	for _, ch := range strings.Split(*channels, ",") {
		ch = strings.TrimSpace(ch)
		if ch == "" {
			continue
		}
		joinCtx, joinCancel := context.WithTimeout(gctx, 10*time.Second)
		if err := control.Join(joinCtx, ch); err != nil {
			logger.Warn("join failed", "channel", ch, "err", err.Error())
		}
		joinCancel()
	}

	if err := g.Wait(); err != nil {
		logger.Error("runner stopped", "err", err.Error())
		os.Exit(1)
	}
}
