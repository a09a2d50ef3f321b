package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/chloe-app/backend/internal/handler/category"
	"github.com/chloe-app/backend/internal/handler/chat"
	"github.com/chloe-app/backend/internal/handler/multilingual"
	"github.com/chloe-app/backend/internal/handler/teammember"
	middlewarePkg "github.com/chloe-app/backend/internal/middleware"
	categoryModel "github.com/chloe-app/backend/internal/model/category"
	teamModel "github.com/chloe-app/backend/internal/model/teammember"
	"github.com/chloe-app/backend/pkg/utils"
)

// Deps holds everything the router hands to the handlers.
type Deps struct {
	Categories     categoryModel.Store
	TeamMembers    teamModel.Store
	Chat           chat.Replier
	Assistants     multilingual.Resolver
	AllowedOrigins []string
	Logger         *zap.Logger
}

// NewRouter wires HTTP routes to core services.
func NewRouter(deps Deps) http.Handler {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewarePkg.RequestLogger(log))
	r.Use(middlewarePkg.Recoverer(log))
	r.Use(middlewarePkg.CORS(deps.AllowedOrigins))

	// Set before Route so the /api subrouter inherits them.
	r.NotFound(utils.NotFound)
	r.MethodNotAllowed(utils.MethodNotAllowed)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(api chi.Router) {
		chat.New(deps.Chat, log.Named("chat")).RegisterRoutes(api)
		category.New(deps.Categories).RegisterRoutes(api)
		multilingual.New(deps.Assistants, log.Named("multilingual")).RegisterRoutes(api)
		teammember.New(deps.TeamMembers).RegisterRoutes(api)
	})

	return r
}
