package multilingual

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/chloe-app/backend/internal/model/assistant"
	assistantService "github.com/chloe-app/backend/internal/service/assistant"
	"github.com/chloe-app/backend/pkg/utils"
)

// Resolver returns the assistant ids for every supported language.
type Resolver interface {
	Resolve() (assistant.IDs, error)
}

// Response wraps the resolved ids.
type Response struct {
	AssistantIDs assistant.IDs `json:"assistantIds"`
}

// Handler serves the per-language assistant configuration.
type Handler struct {
	resolver Resolver
	log      *zap.Logger
}

// New creates the multilingual config handler.
func New(resolver Resolver, log *zap.Logger) *Handler {
	return &Handler{resolver: resolver, log: log}
}

// RegisterRoutes mounts GET /multilingual-config.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/multilingual-config", h.handleConfig)
}

func (h *Handler) handleConfig(w http.ResponseWriter, r *http.Request) {
	ids, err := h.resolver.Resolve()
	if err != nil {
		var missing *assistantService.MissingError
		if errors.As(err, &missing) {
			h.log.Warn("assistant ids not configured", zap.Strings("env_keys", missing.EnvKeys()))
			utils.RespondError(w, http.StatusInternalServerError, missing.Error())
			return
		}
		h.log.Error("resolve assistant ids", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError, utils.MsgInternal)
		return
	}

	utils.RespondJSON(w, http.StatusOK, Response{AssistantIDs: ids})
}
