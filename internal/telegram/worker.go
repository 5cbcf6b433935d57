package telegram

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/bravoman80000/Country-Sim-Bot/internal/command"
	"github.com/bravoman80000/Country-Sim-Bot/internal/session"
)

// OffsetKey is the config key holding the last processed update id.
const OffsetKey = "telegram_last_update_id"

// Executor defines the interface for running chat commands.
type Executor interface {
	Execute(ctx context.Context, actor session.Actor, input string) (*command.Result, error)
}

// Options tunes the polling loop.
type Options struct {
	// ChatID restricts the bot to one chat; zero serves every chat.
	ChatID      int64
	PollTimeout int
	RetryDelay  time.Duration
	// State persists the update offset across restarts when set.
	State  *viper.Viper
	Logger *slog.Logger
}

// Bot handles the integration between Telegram and the Archivist session
type Bot struct {
	client       *Client
	executor     Executor
	auth         *Authorizer
	opts         Options
	log          *slog.Logger
	lastUpdateID int
}

// NewBot initializes a long-polling bot.
func NewBot(client *Client, exec Executor, auth *Authorizer, opts Options) *Bot {
	if opts.PollTimeout <= 0 {
		opts.PollTimeout = 25
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = 5 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if auth == nil {
		auth = NewAuthorizer(client, "", nil, opts.Logger)
	}
	b := &Bot{
		client:   client,
		executor: exec,
		auth:     auth,
		opts:     opts,
		log:      opts.Logger.With("component", "telegram"),
	}
	if opts.State != nil {
		b.lastUpdateID = opts.State.GetInt(OffsetKey)
	}
	return b
}

// LastUpdateID is the highest update id processed so far.
func (b *Bot) LastUpdateID() int {
	return b.lastUpdateID
}

// Start runs the long-polling loop until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	b.log.Info("telegram bot started", "chat_id", b.opts.ChatID, "offset", b.lastUpdateID)
	for {
		if err := b.Poll(ctx); err != nil {
			if ctx.Err() != nil {
				b.log.Info("telegram bot stopped")
				return nil
			}
			b.log.Warn("error fetching updates", "error", err)
			select {
			case <-ctx.Done():
				b.log.Info("telegram bot stopped")
				return nil
			case <-time.After(b.opts.RetryDelay):
			}
		}
	}
}

// Poll fetches one batch of updates and handles each message in order.
func (b *Bot) Poll(ctx context.Context) error {
	updates, err := b.client.GetUpdates(ctx, b.lastUpdateID+1, b.opts.PollTimeout)
	if err != nil {
		return err
	}
	for _, update := range updates {
		if update.UpdateID > b.lastUpdateID {
			b.lastUpdateID = update.UpdateID
			b.saveOffset()
		}
		if update.Message != nil {
			b.handleMessage(ctx, update.Message)
		}
	}
	return nil
}

func (b *Bot) saveOffset() {
	if b.opts.State == nil {
		return
	}
	b.opts.State.Set(OffsetKey, b.lastUpdateID)
	if err := b.opts.State.WriteConfig(); err != nil {
		b.log.Debug("update offset not persisted", "error", err)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *Message) {
	if b.opts.ChatID != 0 && msg.Chat.ID != b.opts.ChatID {
		return
	}
	if msg.From.IsBot || !strings.HasPrefix(msg.Text, "/") {
		return
	}

	actor := session.Actor{
		ID:   strconv.FormatInt(msg.From.ID, 10),
		Name: msg.From.DisplayName(),
		IsGM: b.auth.IsGM(ctx, msg.Chat.ID, msg.From),
	}
	res, err := b.executor.Execute(ctx, actor, msg.Text)
	if res == nil {
		b.log.Error("command produced no result", "error", err)
		return
	}

	for _, text := range res.Messages {
		if text == "" {
			continue
		}
		if err := b.client.SendMessage(ctx, msg.Chat.ID, text); err != nil {
			b.log.Error("failed to send reply", "chat_id", msg.Chat.ID, "error", err)
		}
	}
	for _, text := range res.Whispers {
		// Bots may only message users who have opened a private chat with them.
		if err := b.client.SendMessage(ctx, msg.From.ID, text); err != nil {
			b.log.Warn("failed to whisper", "user_id", msg.From.ID, "error", err)
		}
	}
}
