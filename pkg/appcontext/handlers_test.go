// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package appcontext

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/churchops/appcontext-service/internal/logging"
	"github.com/churchops/appcontext-service/internal/types"
	"github.com/churchops/appcontext-service/pkg/authentication"
)

func TestHandlerGetContext(t *testing.T) {
	tenantID := "11111111-1111-7111-8111-111111111111"

	testCases := []struct {
		name           string
		identityID     string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:           "anonymous request is rejected",
			identityID:     "",
			setupMocks:     func(s *MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "authenticated request returns the context",
			identityID: "user-1",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Build(gomock.Any(), "user-1", gomock.Any(), "").
					Return(&Context{
						Tenant:      &types.Tenant{ID: tenantID, Name: "First Parish", Enabled: true},
						Permissions: []string{"view_dashboard"},
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tc.setupMocks(mockService)

			api := NewAPI(mockService, nil, logging.NewNoopLogger())
			mux := chi.NewMux()
			api.RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodGet, "/api/v0/app-context", nil)
			if tc.identityID != "" {
				req = req.WithContext(authentication.WithUserID(req.Context(), tc.identityID))
			}

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d", tc.expectedStatus, w.Code)
			}

			if tc.expectedStatus == http.StatusOK {
				var got Context
				if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if got.Tenant == nil || got.Tenant.ID != tenantID {
					t.Errorf("expected tenant %s, got %v", tenantID, got.Tenant)
				}
			}
		})
	}
}

func TestHandlerSwitchTenant(t *testing.T) {
	tenantID := "22222222-2222-7222-8222-222222222222"

	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:           "malformed body is rejected",
			body:           "{",
			setupMocks:     func(s *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "tenant id must be a uuid",
			body:           `{"tenant_id":"not-a-uuid"}`,
			setupMocks:     func(s *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "denied switch returns forbidden",
			body: `{"tenant_id":"` + tenantID + `"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().SwitchTenant(gomock.Any(), "user-1", gomock.Any(), tenantID).
					Return(nil, ErrSwitchDenied)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "successful switch returns the tenant",
			body: `{"tenant_id":"` + tenantID + `"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().SwitchTenant(gomock.Any(), "user-1", gomock.Any(), tenantID).
					Return(&types.Tenant{ID: tenantID, Name: "Second Parish", Enabled: true}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tc.setupMocks(mockService)

			api := NewAPI(mockService, nil, logging.NewNoopLogger())
			mux := chi.NewMux()
			api.RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/app-context/switch-tenant", strings.NewReader(tc.body))
			req = req.WithContext(authentication.WithUserID(req.Context(), "user-1"))

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d", tc.expectedStatus, w.Code)
			}
		})
	}
}
