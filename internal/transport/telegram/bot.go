// Package telegram serves guests over a Telegram bot, reusing the same
// manager the HTTP surface talks to.
package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/Avisha2803/resort-booking-agent/internal/config"
	"github.com/Avisha2803/resort-booking-agent/internal/core"
	"github.com/Avisha2803/resort-booking-agent/internal/service/agent"
	"github.com/Avisha2803/resort-booking-agent/internal/service/memory"
	"github.com/Avisha2803/resort-booking-agent/pkg/conv"
	"github.com/Avisha2803/resort-booking-agent/pkg/log"
)

const baseContextKey = "base_context"

// Telegram rejects messages over 4096 characters.
const maxMessageLen = 4000

type Bot struct {
	bot     *tele.Bot
	cfg     *config.TelegramConfig
	manager *agent.Manager
	mem     *memory.Store
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	manager *agent.Manager,
	mem *memory.Store,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:     b,
		cfg:     cfg,
		manager: manager,
		mem:     mem,
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	b.Handle("/start", bot.handleStart)
	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleStart(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	sessionID := sessionFor(c)

	reply, _ := b.manager.Chat(ctx, nil, sessionID)
	return b.send(c, reply)
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)
	sessionID := sessionFor(c)

	// Notify user we are working
	_ = c.Notify(tele.Typing)

	history := b.historyFor(sessionID)
	history = append(history, core.Message{Role: core.RoleUser, Content: c.Text()})

	reply, persona := b.manager.Chat(ctx, history, sessionID)
	logger.Info().Str("session", sessionID).Str("persona", string(persona)).Msg("telegram turn handled")

	return b.send(c, reply)
}

func sessionFor(c tele.Context) string {
	return fmt.Sprintf("telegram-%d", c.Chat().ID)
}

// historyFor replays the shared conversation memory as model messages. The
// incoming text is appended by the caller, not here.
func (b *Bot) historyFor(sessionID string) []core.Message {
	entries := b.mem.History(sessionID)
	history := make([]core.Message, 0, len(entries)+1)
	for _, e := range entries {
		history = append(history, core.Message{Role: e.Role, Content: e.Content})
	}
	return history
}

func (b *Bot) send(c tele.Context, text string) error {
	htmlContent := strings.TrimSpace(conv.MarkdownToTelegramHTML([]byte(text)))
	if htmlContent == "" {
		return nil
	}

	for _, chunk := range splitMessage(htmlContent, maxMessageLen) {
		if err := c.Send(chunk, tele.ModeHTML); err != nil {
			// Sanitized HTML can still trip Telegram's parser; plain
			// text always goes through.
			if err := c.Send(chunk); err != nil {
				return err
			}
		}
	}
	return nil
}

// splitMessage breaks text on line boundaries where possible.
func splitMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	for len(text) > limit {
		cut := strings.LastIndex(text[:limit], "\n")
		if cut <= 0 {
			cut = limit
		}
		chunks = append(chunks, strings.TrimSpace(text[:cut]))
		text = strings.TrimSpace(text[cut:])
	}
	if text != "" {
		chunks = append(chunks, text)
	}
	return chunks
}
