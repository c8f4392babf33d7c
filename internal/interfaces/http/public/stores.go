package public

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/storeatlas/directory-services/api/internal/interfaces/http/common"
	publicapp "github.com/storeatlas/directory-services/api/internal/public/application"
)

func (h *Handler) storeListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
		defer cancel()

		query := r.URL.Query()
		page, _ := common.ParsePositiveInt(query.Get("page"), 1)
		limit, _ := common.ParsePositiveInt(query.Get("limit"), publicapp.DefaultPageSize)

		result, err := h.storeQueries.List(ctx, publicapp.Paging{Page: page, Limit: limit})
		if err != nil {
			h.writeDomainError(w, err, "failed to list stores")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, storeListResponse{
			Items: buildStoreSummaries(result.Stores),
			Page:  result.Page,
			Pages: result.Pages,
			Total: result.Total,
		})
	}
}

func (h *Handler) storeDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
		defer cancel()

		slug := strings.TrimSpace(chi.URLParam(r, "slug"))
		if slug == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "slug is required")
			return
		}

		store, err := h.storeQueries.DetailBySlug(ctx, slug)
		if err != nil {
			h.writeDomainError(w, err, "failed to fetch store")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildStoreDetailResponse(*store))
	}
}
