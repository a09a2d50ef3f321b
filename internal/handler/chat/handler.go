package chat

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/chloe-app/backend/internal/model/chat"
	"github.com/chloe-app/backend/pkg/utils"
)

const msgMessageRequired = "Message is required"

// Replier produces the response for a chat message.
type Replier interface {
	Reply(ctx context.Context, msg chat.Message) (chat.Response, error)
}

// Handler 聊天服务的HTTP处理器
type Handler struct {
	replier  Replier
	validate *validator.Validate
	log      *zap.Logger
}

// New 创建聊天处理器
func New(replier Replier, log *zap.Logger) *Handler {
	return &Handler{
		replier:  replier,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
	}
}

// RegisterRoutes 注册聊天相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

// handleChat 回复聊天消息
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload chat.Message
	// An empty body is treated like {} so it fails on the missing message.
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Struct(payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, msgMessageRequired)
		return
	}

	resp, err := h.replier.Reply(r.Context(), payload)
	if err != nil {
		h.log.Error("chat reply failed",
			zap.String("request_id", chimw.GetReqID(r.Context())),
			zap.String("conversation_id", payload.ConversationID),
			zap.Error(err),
		)
		utils.RespondError(w, http.StatusInternalServerError, utils.MsgInternal)
		return
	}

	utils.RespondJSON(w, http.StatusOK, resp)
}
