package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/limbo/serenity/internal/repository"
	"github.com/limbo/serenity/pkg/entity"
)

const (
	AIMessagesKey = "ai_messages"

	WelcomeMessage  = "Hello! I'm your AI wellness companion. I'm here to support you on your mental health journey. How are you feeling today?"
	FallbackMessage = "I understand you're reaching out. While I'm having some technical difficulties right now, please know that your feelings are valid and you're not alone. Would you like to try again, or is there something specific you'd like to talk about?"

	EmotionWelcoming  = "welcoming"
	EmotionSupportive = "supportive"

	contextMessages = 3
)

type SendResult struct {
	UserMessage    entity.AIMessage `json:"user_message"`
	Reply          entity.AIMessage `json:"reply"`
	CrisisDetected bool             `json:"crisis_detected"`
	CrisisKeyword  string           `json:"-"`
}

// Conversation is the companion message log of one workspace.
type Conversation struct {
	kv        repository.KVStoreI
	uid       string
	responder Responder
	notifier  CrisisNotifier
	now       Clock
	logger    *slog.Logger

	messages []entity.AIMessage
}

func NewConversation(kv repository.KVStoreI, uid string, responder Responder, notifier CrisisNotifier, now Clock, logger *slog.Logger) *Conversation {
	if logger == nil {
		logger = slog.Default()
	}
	return &Conversation{
		kv:        kv,
		uid:       uid,
		responder: responder,
		notifier:  notifier,
		now:       now,
		logger:    logger.With(slog.String("component", "conversation")),
		messages:  []entity.AIMessage{},
	}
}

// Load restores the log. An empty or unreadable log gets seeded with the welcome message.
// The seed stays in memory until the log changes.
func (c *Conversation) Load(ctx context.Context) {
	var stored []entity.AIMessage
	found, err := repository.LoadJSON(ctx, c.kv, AIMessagesKey, &stored)
	if err != nil {
		c.logger.Error("loading messages failed, seeding welcome", slog.String("error", err.Error()))
	}
	if !found || len(stored) == 0 {
		c.Reset()
		return
	}
	c.messages = stored
}

// Send appends text and the companion reply. Blank text is ignored and gives a nil result.
// Responder failures are answered with FallbackMessage, so Send only fails on programming errors.
func (c *Conversation) Send(ctx context.Context, text string) (*SendResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	result := &SendResult{}
	if kw, ok := DetectCrisis(text); ok {
		result.CrisisDetected = true
		result.CrisisKeyword = kw
		c.logger.Warn("crisis keyword detected", slog.String("keyword", kw))
		if c.notifier != nil {
			c.notifier.CrisisDetected(ctx, c.uid, kw, text)
		}
	}

	history := c.recentUserMessages(contextMessages)
	result.UserMessage = c.newMessage(text, true, "")
	c.messages = append(c.messages, result.UserMessage)
	c.persist(ctx)

	reply := FallbackMessage
	if c.responder != nil {
		generated, err := c.responder.Reply(ctx, text, history)
		switch {
		case err != nil:
			c.logger.Error("companion reply failed", slog.String("error", err.Error()))
		case strings.TrimSpace(generated) == "":
			c.logger.Error("companion reply is empty")
		default:
			reply = strings.TrimSpace(generated)
		}
	}
	result.Reply = c.newMessage(reply, false, EmotionSupportive)
	c.messages = append(c.messages, result.Reply)
	c.persist(ctx)
	return result, nil
}

// recentUserMessages returns contents of the last n user messages, oldest first.
func (c *Conversation) recentUserMessages(n int) []string {
	out := make([]string, 0, n)
	for i := len(c.messages) - 1; i >= 0 && len(out) < n; i-- {
		if c.messages[i].IsUser {
			out = append(out, c.messages[i].Content)
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Clear drops the log and reseeds it with the welcome message.
func (c *Conversation) Clear(ctx context.Context) {
	if err := c.kv.Remove(ctx, AIMessagesKey); err != nil {
		c.logger.Error("removing messages failed", slog.String("error", err.Error()))
	}
	c.Reset()
	c.persist(ctx)
}

// Reset reseeds in memory only. Used after the workspace storage was wiped.
func (c *Conversation) Reset() {
	c.messages = []entity.AIMessage{c.newMessage(WelcomeMessage, false, EmotionWelcoming)}
}

func (c *Conversation) Messages() []entity.AIMessage {
	out := make([]entity.AIMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *Conversation) newMessage(content string, isUser bool, emotion string) entity.AIMessage {
	return entity.AIMessage{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Content:   content,
		Timestamp: c.now(),
		IsUser:    isUser,
		Emotion:   emotion,
	}
}

func (c *Conversation) persist(ctx context.Context) {
	if err := repository.SaveJSON(ctx, c.kv, AIMessagesKey, c.messages); err != nil {
		c.logger.Error("saving messages failed", slog.String("error", err.Error()))
	}
}
