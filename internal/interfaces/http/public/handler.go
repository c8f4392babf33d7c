package public

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/storeatlas/directory-services/api/internal/interfaces/http/common"
	publicapp "github.com/storeatlas/directory-services/api/internal/public/application"
	"github.com/storeatlas/directory-services/api/internal/public/domain"
)

const handlerTimeout = 5 * time.Second

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger        *log.Logger
	storeQueries  publicapp.StoreQueryService
	storeCommands publicapp.StoreCommandService
	reviews       publicapp.ReviewCommandService
	hearts        publicapp.HeartService
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger        *log.Logger
	StoreQueries  publicapp.StoreQueryService
	StoreCommands publicapp.StoreCommandService
	Reviews       publicapp.ReviewCommandService
	Hearts        publicapp.HeartService
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:        cfg.Logger,
		storeQueries:  cfg.StoreQueries,
		storeCommands: cfg.StoreCommands,
		reviews:       cfg.Reviews,
		hearts:        cfg.Hearts,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Get("/stores", h.storeListHandler())
	r.Get("/stores/{slug}", h.storeDetailHandler())
	r.Get("/tags", h.tagListHandler())
	r.Get("/tags/{tag}", h.tagListHandler())
	r.Get("/top", h.topStoresHandler())
	r.Get("/api/search", h.searchHandler())
	r.Get("/api/stores/near", h.nearbyHandler())

	r.With(authMiddleware).Post("/stores", h.storeCreateHandler())
	r.With(authMiddleware).Patch("/stores/{id}", h.storeUpdateHandler())
	r.With(authMiddleware).Post("/stores/{id}/reviews", h.reviewCreateHandler())
	r.With(authMiddleware).Post("/api/stores/{id}/heart", h.heartToggleHandler())
	r.With(authMiddleware).Get("/hearts", h.heartedStoresHandler())
}

// writeDomainError translates domain failures into JSON responses. Services
// never suppress errors; this is the single place they become user-visible.
func (h *Handler) writeDomainError(w http.ResponseWriter, err error, fallback string) {
	if verr, ok := domain.AsValidationError(err); ok {
		common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]any{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
		return
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		common.WriteError(h.logger, w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrNotOwner):
		common.WriteError(h.logger, w, http.StatusForbidden, "you must own a store to edit it")
	default:
		h.logger.Printf("%s: %v", fallback, err)
		common.WriteError(h.logger, w, http.StatusInternalServerError, fallback)
	}
}
