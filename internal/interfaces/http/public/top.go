package public

import (
	"context"
	"net/http"

	"github.com/storeatlas/directory-services/api/internal/interfaces/http/common"
	"github.com/storeatlas/directory-services/api/internal/public/domain"
)

func (h *Handler) topStoresHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
		defer cancel()

		limit, _ := common.ParsePositiveInt(r.URL.Query().Get("limit"), domain.DefaultTopStoreLimit)

		ranked, err := h.storeQueries.TopStores(ctx, limit)
		if err != nil {
			h.writeDomainError(w, err, "failed to rank stores")
			return
		}

		items := make([]topStoreResponse, 0, len(ranked))
		for _, top := range ranked {
			items = append(items, topStoreResponse{
				storeSummaryResponse: buildStoreSummaryResponse(top.Store),
				AverageRating:        top.AverageRating,
				ReviewCount:          top.ReviewCount,
			})
		}

		common.WriteJSON(h.logger, w, http.StatusOK, items)
	}
}
