// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"encoding/json"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/ory/hydra/v2/oauth2"

	"github.com/churchops/appcontext-service/internal/logging"
)

type API struct {
	service ServiceInterface

	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.logger = logger

	return a
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/webhooks/registration", a.registration)
	mux.Post("/webhooks/token", a.tokenHook)
}

func (a *API) registration(w http.ResponseWriter, r *http.Request) {
	var identity KratosIdentity
	if err := json.NewDecoder(r.Body).Decode(&identity); err != nil {
		a.logger.Errorf("invalid registration payload: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := a.service.HandleRegistration(r.Context(), identity.ID, identity.Traits.Email); err != nil {
		a.logger.Errorf("registration webhook failed: %v", err)
		http.Error(w, "registration failed", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *API) tokenHook(w http.ResponseWriter, r *http.Request) {
	var req oauth2.TokenHookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.logger.Errorf("invalid token hook payload: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := a.service.HandleTokenHook(r.Context(), &req)
	if err != nil {
		a.logger.Errorf("token hook failed: %v", err)
		http.Error(w, "token hook failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		a.logger.Errorf("failed to encode token hook response: %v", err)
	}
}
