// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/churchops/appcontext-service/internal/logging"
	"github.com/churchops/appcontext-service/internal/monitoring"
	"github.com/churchops/appcontext-service/internal/tracing"
	"github.com/churchops/appcontext-service/internal/version"
)

func TestAlive(t *testing.T) {
	logger := logging.NewNoopLogger()
	api := NewAPI(tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/status", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var s Status
	if err := json.NewDecoder(w.Body).Decode(&s); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if s.Status != "ok" {
		t.Errorf("expected ok, got %q", s.Status)
	}
	if s.Version != version.Version {
		t.Errorf("expected version %q, got %q", version.Version, s.Version)
	}
}
