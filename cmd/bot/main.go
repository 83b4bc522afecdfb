package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alejandrodnm/solbot/config"
	"github.com/alejandrodnm/solbot/internal/adapters/notify"
	"github.com/alejandrodnm/solbot/internal/adapters/pricefeed"
	"github.com/alejandrodnm/solbot/internal/adapters/solanarpc"
	"github.com/alejandrodnm/solbot/internal/adapters/telegram"
	"github.com/alejandrodnm/solbot/internal/application/bot"
	"github.com/alejandrodnm/solbot/internal/application/registry"
	"github.com/alejandrodnm/solbot/internal/application/router"
	"github.com/alejandrodnm/solbot/internal/application/scheduler"
	"github.com/alejandrodnm/solbot/internal/domain"
	"github.com/alejandrodnm/solbot/internal/ports"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	console := flag.Bool("console", false, "read commands from stdin instead of Telegram (no token needed)")
	table := flag.Bool("table", false, "console mode: frame replies in a table")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	logFormat := flag.String("format", "", "log format: text|json (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err, "path", *configPath)
		os.Exit(1)
	}

	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	setupLogger(cfg.Log)

	slog.Info("solbot starting",
		"config", *configPath,
		"rpc", cfg.RPC.BaseURL,
		"pair", cfg.Bot.DefaultPair,
		"console", *console,
	)

	rpc := solanarpc.NewClient(cfg.RPC.BaseURL)
	prices := pricefeed.NewClient(cfg.Price.BaseURL)
	wallets := registry.New()

	r := router.New(router.Config{
		DefaultPair:    cfg.Bot.DefaultPair,
		SignatureLimit: cfg.Bot.SignatureLimit,
	}, rpc, rpc, prices, wallets)

	var (
		source     ports.CommandSource
		messenger  ports.Messenger
		notifyChat = cfg.Notify.ChatID
	)
	if *console {
		c := notify.NewConsole(*table)
		source, messenger = c, c
		// En modo consola la notificación demo va a la sesión local.
		notifyChat = c.ConversationID()
	} else {
		if cfg.Bot.Token == "" {
			slog.Error("TELEGRAM_BOT_TOKEN is required (set it in the environment or .env)")
			os.Exit(1)
		}
		tc := telegram.NewClient(cfg.Bot.Token, "", cfg.PollTimeout())
		source, messenger = tc, tc
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sched := scheduler.New(messenger)
	if cfg.Notify.Message != "" && notifyChat != "" {
		sched.Schedule(ctx, domain.NotificationEvent{
			TargetConversationID: notifyChat,
			Message:              cfg.Notify.Message,
			FireAt:               time.Now().Add(cfg.NotifyDelay()),
		})
	}

	if err := bot.New(source, r, messenger).Run(ctx); err != nil {
		slog.Error("bot exited with error", "err", err)
		os.Exit(1)
	}

	cancel()
	sched.Wait()
	slog.Info("solbot stopped cleanly")
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
