package public

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/storeatlas/directory-services/api/internal/interfaces/http/common"
	publicapp "github.com/storeatlas/directory-services/api/internal/public/application"
)

type createReviewRequest struct {
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

func (h *Handler) reviewCreateHandler() http.HandlerFunc {
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

		defer r.Body.Close()
		var req createReviewRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "malformed request body")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
		defer cancel()

		review, err := h.reviews.Add(ctx, publicapp.AddReviewCommand{
			Store:  storeID,
			Author: user.ID,
			Text:   req.Text,
			Rating: req.Rating,
		})
		if err != nil {
			h.writeDomainError(w, err, "failed to save review")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, buildReviewResponse(*review))
	}
}
