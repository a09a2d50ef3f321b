package chat

// Message is the inbound chat request. It is never persisted.
type Message struct {
	Message        string `json:"message" validate:"required"`
	ConversationID string `json:"conversationId,omitempty"`
}

// Response is the acknowledgement returned for a chat message.
type Response struct {
	ID             int64  `json:"id"`
	Message        string `json:"message"`
	Timestamp      string `json:"timestamp"`
	ConversationID string `json:"conversationId"`
}
