// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package navigation

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/churchops/appcontext-service/internal/logging"
	"github.com/churchops/appcontext-service/internal/storage"
	"github.com/churchops/appcontext-service/internal/types"
)

type EntryRequest struct {
	Name       string `json:"name" validate:"required"`
	Href       string `json:"href" validate:"required"`
	Icon       string `json:"icon"`
	Permission string `json:"permission"`
	ParentID   string `json:"parent_id" validate:"omitempty,uuid"`
	Position   int    `json:"position" validate:"gte=0"`
	NavType    string `json:"nav_type" validate:"required,oneof=main footer user"`
	Enabled    *bool  `json:"enabled"`
}

type ReorderRequest struct {
	EntryA string `json:"entry_a" validate:"required,uuid"`
	EntryB string `json:"entry_b" validate:"required,uuid"`
}

// API exposes the administrative navigation endpoints. The end-user
// navigation tree is served by the app-context endpoint, not here.
type API struct {
	service  ServiceInterface
	validate *validator.Validate

	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.validate = validator.New(validator.WithRequiredStructEnabled())
	a.logger = logger

	return a
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/navigation", a.listEntries)
	mux.Post("/api/v0/navigation", a.createEntry)
	mux.Post("/api/v0/navigation/reorder", a.reorder)
	mux.Get("/api/v0/navigation/{id}", a.getEntry)
	mux.Patch("/api/v0/navigation/{id}", a.updateEntry)
	mux.Delete("/api/v0/navigation/{id}", a.deleteEntry)
}

func (a *API) listEntries(w http.ResponseWriter, r *http.Request) {
	navType := r.URL.Query().Get("type")
	if navType == "" {
		navType = types.NavTypeMain
	}

	entries, err := a.service.ListEntries(r.Context(), navType)
	if err != nil {
		a.serverError(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, entries)
}

func (a *API) getEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := a.service.GetEntry(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			a.errorResponse(w, http.StatusNotFound, "navigation entry not found")
			return
		}
		a.serverError(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, entry)
}

func (a *API) createEntry(w http.ResponseWriter, r *http.Request) {
	req, ok := a.decodeEntryRequest(w, r)
	if !ok {
		return
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	entry, err := a.service.CreateEntry(r.Context(), &types.NavigationEntry{
		Name:       req.Name,
		Href:       req.Href,
		Icon:       req.Icon,
		Permission: req.Permission,
		ParentID:   req.ParentID,
		Position:   req.Position,
		NavType:    req.NavType,
		Enabled:    enabled,
	})
	if err != nil {
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			a.errorResponse(w, http.StatusBadRequest, "parent entry does not exist")
			return
		}
		a.serverError(w, err)
		return
	}

	a.jsonResponse(w, http.StatusCreated, entry)
}

func (a *API) updateEntry(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name       *string `json:"name"`
		Href       *string `json:"href"`
		Icon       *string `json:"icon"`
		Permission *string `json:"permission"`
		ParentID   *string `json:"parent_id"`
		Position   *int    `json:"position"`
		Enabled    *bool   `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry := &types.NavigationEntry{ID: chi.URLParam(r, "id")}
	var paths []string

	if req.Name != nil {
		entry.Name = *req.Name
		paths = append(paths, "name")
	}
	if req.Href != nil {
		entry.Href = *req.Href
		paths = append(paths, "href")
	}
	if req.Icon != nil {
		entry.Icon = *req.Icon
		paths = append(paths, "icon")
	}
	if req.Permission != nil {
		entry.Permission = *req.Permission
		paths = append(paths, "permission")
	}
	if req.ParentID != nil {
		entry.ParentID = *req.ParentID
		paths = append(paths, "parent_id")
	}
	if req.Position != nil {
		entry.Position = *req.Position
		paths = append(paths, "position")
	}
	if req.Enabled != nil {
		entry.Enabled = *req.Enabled
		paths = append(paths, "enabled")
	}

	if len(paths) == 0 {
		a.errorResponse(w, http.StatusBadRequest, "no fields to update")
		return
	}

	updated, err := a.service.UpdateEntry(r.Context(), entry, paths)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			a.errorResponse(w, http.StatusNotFound, "navigation entry not found")
			return
		}
		a.serverError(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, updated)
}

func (a *API) deleteEntry(w http.ResponseWriter, r *http.Request) {
	if err := a.service.DeleteEntry(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.serverError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) reorder(w http.ResponseWriter, r *http.Request) {
	var req ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.service.Reorder(r.Context(), req.EntryA, req.EntryB); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			a.errorResponse(w, http.StatusNotFound, "navigation entry not found")
			return
		}
		a.serverError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *API) decodeEntryRequest(w http.ResponseWriter, r *http.Request) (*EntryRequest, bool) {
	var req EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	if err := a.validate.Struct(req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return &req, true
}

func (a *API) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) errorResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  status,
		"message": message,
	}); err != nil {
		a.logger.Errorf("failed to encode error response: %v", err)
	}
}

func (a *API) serverError(w http.ResponseWriter, err error) {
	a.logger.Errorf("navigation API error: %v", err)
	a.errorResponse(w, http.StatusInternalServerError, "internal server error")
}
