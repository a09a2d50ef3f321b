package teammember

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chloe-app/backend/internal/model/teammember"
	"github.com/chloe-app/backend/pkg/utils"
)

// Handler serves team members. Persistence is disabled, so reads are always
// empty and writes are refused.
type Handler struct {
	members teammember.Store
}

// New creates the team member handler.
func New(members teammember.Store) *Handler {
	return &Handler{members: members}
}

// RegisterRoutes mounts GET and POST /team-members.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/team-members", h.handleList)
	r.Post("/team-members", h.handleCreate)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.members.List())
}

// handleCreate never reads the body.
func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	member, err := h.members.Create(teammember.TeamMember{})
	if errors.Is(err, teammember.ErrNotImplemented) {
		utils.RespondError(w, http.StatusNotImplemented, utils.MsgNotImplemented)
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, utils.MsgInternal)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, member)
}
