package public

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/storeatlas/directory-services/api/internal/interfaces/http/common"
	publicapp "github.com/storeatlas/directory-services/api/internal/public/application"
)

// storeRequest is the JSON body shared by create and update. The photo field
// is the filename already assigned by the external upload pipeline.
type storeRequest struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Tags        []string             `json:"tags"`
	Location    storeLocationRequest `json:"location"`
	Photo       string               `json:"photo"`
}

type storeLocationRequest struct {
	Coordinates []float64 `json:"coordinates"`
	Address     string    `json:"address"`
}

func decodeStoreRequest(r *http.Request) (storeRequest, error) {
	var req storeRequest
	decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return storeRequest{}, fmt.Errorf("malformed request body: %w", err)
	}
	return req, nil
}

func (h *Handler) storeCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteError(h.logger, w, http.StatusInternalServerError, "authenticated user missing from context")
			return
		}

		defer r.Body.Close()
		req, err := decodeStoreRequest(r)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
		defer cancel()

		store, err := h.storeCommands.Create(ctx, publicapp.CreateStoreCommand{
			Name:        req.Name,
			Description: req.Description,
			Tags:        req.Tags,
			Address:     req.Location.Address,
			Coordinates: req.Location.Coordinates,
			Photo:       req.Photo,
			Author:      user.ID,
		})
		if err != nil {
			h.writeDomainError(w, err, "failed to create store")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, buildStoreDetailResponse(*store))
	}
}

func (h *Handler) storeUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteError(h.logger, w, http.StatusInternalServerError, "authenticated user missing from context")
			return
		}

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "store id is required")
			return
		}

		defer r.Body.Close()
		req, err := decodeStoreRequest(r)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
		defer cancel()

		store, err := h.storeCommands.Update(ctx, publicapp.UpdateStoreCommand{
			ID:          id,
			Author:      user.ID,
			Name:        req.Name,
			Description: req.Description,
			Tags:        req.Tags,
			Address:     req.Location.Address,
			Coordinates: req.Location.Coordinates,
			Photo:       req.Photo,
		})
		if err != nil {
			h.writeDomainError(w, err, "failed to update store")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildStoreDetailResponse(*store))
	}
}
