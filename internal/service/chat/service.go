package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chloe-app/backend/internal/model/chat"
)

// PlaceholderReply is returned for every message until a chat model is wired in.
const PlaceholderReply = "Thanks for your message! Chloe is still learning to chat, so a real answer will be available soon."

// ConversationPrefix prefixes generated conversation identifiers.
const ConversationPrefix = "conv_"

// TimestampLayout renders the reply time as hour:minute.
const TimestampLayout = "15:04"

var ErrMessageRequired = errors.New("message is required")

// Service produces replies for chat messages. It holds no conversation state.
type Service struct {
	now func() time.Time
}

// Option customises a Service.
type Option func(*Service)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService returns the stub chat service.
func NewService(opts ...Option) *Service {
	s := &Service{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reply acknowledges msg with the placeholder text.
// TODO: call the assistant for the conversation's language once the chat model integration lands.
func (s *Service) Reply(ctx context.Context, msg chat.Message) (chat.Response, error) {
	if err := ctx.Err(); err != nil {
		return chat.Response{}, err
	}
	if msg.Message == "" {
		return chat.Response{}, ErrMessageRequired
	}

	now := s.now()
	millis := now.UnixMilli()

	conversationID := msg.ConversationID
	if conversationID == "" {
		conversationID = fmt.Sprintf("%s%d", ConversationPrefix, millis)
	}

	return chat.Response{
		ID:             millis,
		Message:        PlaceholderReply,
		Timestamp:      now.Format(TimestampLayout),
		ConversationID: conversationID,
	}, nil
}
