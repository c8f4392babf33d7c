package public

import (
	"context"
	"net/http"
	"strings"

	"github.com/storeatlas/directory-services/api/internal/interfaces/http/common"
	publicapp "github.com/storeatlas/directory-services/api/internal/public/application"
)

func (h *Handler) searchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
		defer cancel()

		query := strings.TrimSpace(r.URL.Query().Get("q"))
		limit, _ := common.ParsePositiveInt(r.URL.Query().Get("limit"), publicapp.DefaultSearchLimit)

		stores, err := h.storeQueries.Search(ctx, query, limit)
		if err != nil {
			h.writeDomainError(w, err, "search failed")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildStoreSummaries(stores))
	}
}

func (h *Handler) nearbyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
		defer cancel()

		query := r.URL.Query()
		lng, lngOK := common.ParseFloat(query.Get("lng"))
		lat, latOK := common.ParseFloat(query.Get("lat"))
		if !lngOK || !latOK {
			common.WriteError(h.logger, w, http.StatusBadRequest, "lng and lat are required")
			return
		}

		maxDistance, _ := common.ParseFloat(query.Get("maxDistance"))
		limit, _ := common.ParsePositiveInt(query.Get("limit"), publicapp.DefaultNearbyLimit)

		stores, err := h.storeQueries.Nearby(ctx, lng, lat, maxDistance, limit)
		if err != nil {
			h.writeDomainError(w, err, "nearby lookup failed")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildStoreSummaries(stores))
	}
}
