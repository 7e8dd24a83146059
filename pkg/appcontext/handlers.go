// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package appcontext

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/churchops/appcontext-service/internal/logging"
	"github.com/churchops/appcontext-service/pkg/authentication"
	"github.com/churchops/appcontext-service/pkg/resolver"
	"github.com/churchops/appcontext-service/pkg/session"
)

type SwitchTenantRequest struct {
	TenantID string `json:"tenant_id" validate:"required,uuid"`
}

type API struct {
	service  ServiceInterface
	sessions session.ServiceInterface
	validate *validator.Validate

	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, sessions session.ServiceInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.sessions = sessions
	a.validate = validator.New(validator.WithRequiredStructEnabled())
	a.logger = logger

	return a
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/app-context", a.getContext)
	mux.Post("/api/v0/app-context/switch-tenant", a.switchTenant)
	mux.Get("/api/v0/my/tenants", a.myTenants)
}

func (a *API) getContext(w http.ResponseWriter, r *http.Request) {
	identityID, _ := authentication.GetUserID(r.Context())
	if identityID == "" {
		a.errorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}

	override := r.URL.Query().Get("tenant_id")

	appCtx, err := a.service.Build(r.Context(), identityID, a.sessionState(r.Context()), override)
	if err != nil {
		a.serverError(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, appCtx)
}

func (a *API) switchTenant(w http.ResponseWriter, r *http.Request) {
	identityID, _ := authentication.GetUserID(r.Context())
	if identityID == "" {
		a.errorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req SwitchTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	tenant, err := a.service.SwitchTenant(r.Context(), identityID, a.sessionState(r.Context()), req.TenantID)
	if err != nil {
		if errors.Is(err, ErrSwitchDenied) {
			a.errorResponse(w, http.StatusForbidden, "tenant not available")
			return
		}
		a.serverError(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, tenant)
}

func (a *API) myTenants(w http.ResponseWriter, r *http.Request) {
	identityID, _ := authentication.GetUserID(r.Context())
	if identityID == "" {
		a.errorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}

	tenants, err := a.service.MyTenants(r.Context(), identityID)
	if err != nil {
		a.serverError(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, tenants)
}

// sessionState bridges the request's session row to the resolver. When
// no session could be established the state lives for this request only.
func (a *API) sessionState(ctx context.Context) resolver.SessionStateInterface {
	if sess, ok := session.GetSession(ctx); ok {
		return session.NewState(sess.Token, sess.ActiveTenantID, a.sessions)
	}
	return &ephemeralState{}
}

// ephemeralState holds the active tenant in memory only. Used when the
// session cookie could not be persisted, so resolution still works but
// nothing survives the request.
type ephemeralState struct {
	activeTenantID string
}

func (e *ephemeralState) ActiveTenantID() string {
	return e.activeTenantID
}

func (e *ephemeralState) SetActiveTenant(_ context.Context, tenantID string) error {
	e.activeTenantID = tenantID
	return nil
}

func (e *ephemeralState) ClearActiveTenant(_ context.Context) error {
	e.activeTenantID = ""
	return nil
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
	a.logger.Errorf("app-context API error: %v", err)
	a.errorResponse(w, http.StatusInternalServerError, "internal server error")
}
