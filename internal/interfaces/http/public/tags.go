package public

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/storeatlas/directory-services/api/internal/interfaces/http/common"
)

// tagListHandler serves both /tags and /tags/{tag}: the counts are always
// included, the store list narrows to the tag when one is present.
func (h *Handler) tagListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
		defer cancel()

		tag := strings.TrimSpace(chi.URLParam(r, "tag"))

		counts, err := h.storeQueries.Tags(ctx)
		if err != nil {
			h.writeDomainError(w, err, "failed to aggregate tags")
			return
		}
		stores, err := h.storeQueries.ListByTag(ctx, tag)
		if err != nil {
			h.writeDomainError(w, err, "failed to list stores by tag")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, tagListResponse{
			Tag:    tag,
			Tags:   counts,
			Stores: buildStoreSummaries(stores),
		})
	}
}
