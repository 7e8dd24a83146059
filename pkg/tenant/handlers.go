// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/churchops/appcontext-service/internal/logging"
	"github.com/churchops/appcontext-service/internal/storage"
	"github.com/churchops/appcontext-service/internal/types"
	"github.com/churchops/appcontext-service/pkg/authentication"
)

type CreateTenantRequest struct {
	Name string `json:"name" validate:"required"`
}

type MemberRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=owner admin member"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=owner admin member"`
}

type InviteResponse struct {
	Status string `json:"status"`
	Link   string `json:"link"`
	Code   string `json:"code"`
}

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
	mux.Get("/api/v0/tenants", a.listTenants)
	mux.Post("/api/v0/tenants", a.createTenant)
	mux.Get("/api/v0/tenants/{id}", a.getTenant)
	mux.Patch("/api/v0/tenants/{id}", a.updateTenant)
	mux.Delete("/api/v0/tenants/{id}", a.deleteTenant)

	mux.Get("/api/v0/tenants/{id}/users", a.listTenantUsers)
	mux.Post("/api/v0/tenants/{id}/users", a.provisionUser)
	mux.Post("/api/v0/tenants/{id}/invite", a.inviteMember)
	mux.Patch("/api/v0/tenants/{id}/users/{userID}", a.updateTenantUser)
	mux.Delete("/api/v0/tenants/{id}/users/{userID}", a.removeMember)
}

// RegisterUserEndpoints attaches the self-service routes, which sit
// behind the session middleware rather than the admin token check.
func (a *API) RegisterUserEndpoints(mux chi.Router) {
	mux.Post("/api/v0/my/tenants/{id}/primary", a.setPrimaryTenant)
}

func (a *API) listTenants(w http.ResponseWriter, r *http.Request) {
	tenants, err := a.service.ListTenants(r.Context())
	if err != nil {
		a.serverError(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, tenants)
}

func (a *API) createTenant(w http.ResponseWriter, r *http.Request) {
	var req CreateTenantRequest
	if !a.decode(w, r, &req) {
		return
	}

	tenant, err := a.service.CreateTenant(r.Context(), req.Name)
	if err != nil {
		a.serverError(w, err)
		return
	}

	a.jsonResponse(w, http.StatusCreated, tenant)
}

func (a *API) getTenant(w http.ResponseWriter, r *http.Request) {
	tenant, err := a.service.GetTenant(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			a.errorResponse(w, http.StatusNotFound, "tenant not found")
			return
		}
		a.serverError(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, tenant)
}

func (a *API) updateTenant(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    *string `json:"name"`
		Enabled *bool   `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tenant := &types.Tenant{ID: chi.URLParam(r, "id")}
	var paths []string

	if req.Name != nil {
		tenant.Name = *req.Name
		paths = append(paths, "name")
	}
	if req.Enabled != nil {
		tenant.Enabled = *req.Enabled
		paths = append(paths, "enabled")
	}

	if len(paths) == 0 {
		a.errorResponse(w, http.StatusBadRequest, "no fields to update")
		return
	}

	updated, err := a.service.UpdateTenant(r.Context(), tenant, paths)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			a.errorResponse(w, http.StatusNotFound, "tenant not found")
			return
		}
		a.serverError(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, updated)
}

func (a *API) deleteTenant(w http.ResponseWriter, r *http.Request) {
	if err := a.service.DeleteTenant(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			a.errorResponse(w, http.StatusNotFound, "tenant not found")
			return
		}
		a.serverError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) listTenantUsers(w http.ResponseWriter, r *http.Request) {
	users, err := a.service.ListTenantUsers(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.serverError(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, users)
}

func (a *API) provisionUser(w http.ResponseWriter, r *http.Request) {
	var req MemberRequest
	if !a.decode(w, r, &req) {
		return
	}

	if err := a.service.ProvisionUser(r.Context(), chi.URLParam(r, "id"), req.Email, req.Role); err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			a.errorResponse(w, http.StatusConflict, "user is already a member")
			return
		}
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			a.errorResponse(w, http.StatusNotFound, "tenant not found")
			return
		}
		a.serverError(w, err)
		return
	}

	a.jsonResponse(w, http.StatusCreated, map[string]string{"status": "provisioned"})
}

func (a *API) inviteMember(w http.ResponseWriter, r *http.Request) {
	var req MemberRequest
	if !a.decode(w, r, &req) {
		return
	}

	link, code, err := a.service.InviteMember(r.Context(), chi.URLParam(r, "id"), req.Email, req.Role)
	if err != nil {
		a.serverError(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, &InviteResponse{
		Status: "invited",
		Link:   link,
		Code:   code,
	})
}

func (a *API) updateTenantUser(w http.ResponseWriter, r *http.Request) {
	var req UpdateRoleRequest
	if !a.decode(w, r, &req) {
		return
	}

	user, err := a.service.UpdateTenantUser(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "userID"), req.Role)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			a.errorResponse(w, http.StatusNotFound, "membership not found")
			return
		}
		a.serverError(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, user)
}

func (a *API) removeMember(w http.ResponseWriter, r *http.Request) {
	err := a.service.RemoveMember(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "userID"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			a.errorResponse(w, http.StatusNotFound, "membership not found")
			return
		}
		a.serverError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) setPrimaryTenant(w http.ResponseWriter, r *http.Request) {
	identityID, _ := authentication.GetUserID(r.Context())
	if identityID == "" {
		a.errorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := a.service.SetPrimaryTenant(r.Context(), identityID, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			a.errorResponse(w, http.StatusNotFound, "membership not found")
			return
		}
		a.serverError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *API) decode(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := a.validate.Struct(dest); err != nil {
		a.errorResponse(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
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
	a.logger.Errorf("tenant API error: %v", err)
	a.errorResponse(w, http.StatusInternalServerError, "internal server error")
}
