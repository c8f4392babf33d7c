package public

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/storeatlas/directory-services/api/internal/interfaces/http/common"
)

func (h *Handler) heartToggleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteError(h.logger, w, http.StatusInternalServerError, "authenticated user missing from context")
			return
		}

		storeID := strings.TrimSpace(chi.URLParam(r, "id"))
		if storeID == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "store id is required")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
		defer cancel()

		updated, err := h.hearts.ToggleHeart(ctx, user.ID, storeID)
		if err != nil {
			h.writeDomainError(w, err, "failed to toggle heart")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"hearts":  updated.Hearts,
			"hearted": updated.HasHearted(storeID),
		})
	}
}

func (h *Handler) heartedStoresHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteError(h.logger, w, http.StatusInternalServerError, "authenticated user missing from context")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
		defer cancel()

		stores, err := h.storeQueries.HeartedStores(ctx, user.ID)
		if err != nil {
			h.writeDomainError(w, err, "failed to list hearted stores")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildStoreSummaries(stores))
	}
}
