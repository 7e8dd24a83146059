// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"github.com/ory/hydra/v2/oauth2"
	"go.uber.org/mock/gomock"
)

func TestAPI_Registration(t *testing.T) {
	testCases := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatus int
	}{
		{
			name: "registration payload is forwarded",
			requestBody: KratosIdentity{
				ID:     "identity-123",
				Traits: KratosTraits{Email: "user@example.com"},
			},
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().HandleRegistration(gomock.Any(), "identity-123", "user@example.com").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "invalid request body",
			requestBody: "not-json",
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "service error",
			requestBody: KratosIdentity{
				ID:     "identity-456",
				Traits: KratosTraits{Email: "error@example.com"},
			},
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().HandleRegistration(gomock.Any(), "identity-456", "error@example.com").
					Return(errors.New("service error"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			tc.setupMocks(mockService, mockLogger)

			api := NewAPI(mockService, mockLogger)
			mux := chi.NewMux()
			api.RegisterEndpoints(mux)

			var body []byte
			var err error
			if str, ok := tc.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tc.requestBody)
				if err != nil {
					t.Fatalf("failed to marshal request: %v", err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/webhooks/registration", bytes.NewBuffer(body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != tc.expectedStatus {
				respBody, _ := io.ReadAll(res.Body)
				t.Errorf("expected status %d, got %d, body: %s", tc.expectedStatus, res.StatusCode, string(respBody))
			}
		})
	}
}

func TestAPI_TokenHook(t *testing.T) {
	testCases := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatus int
		validateResp   func(*testing.T, *http.Response)
	}{
		{
			name: "claims are returned",
			requestBody: &oauth2.TokenHookRequest{
				Session: oauth2.NewSession("user-123"),
			},
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				resp := new(TokenHookResponse)
				resp.Session.IDToken = map[string]interface{}{"tenants": []string{"tenant-1", "tenant-2"}}
				resp.Session.AccessToken = map[string]interface{}{"tenants": []string{"tenant-1", "tenant-2"}}
				mockSvc.EXPECT().HandleTokenHook(gomock.Any(), gomock.Any()).Return(resp, nil)
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, resp *http.Response) {
				var result TokenHookResponse
				if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
					t.Errorf("failed to decode response: %v", err)
				}
				if result.Session.IDToken["tenants"] == nil {
					t.Error("expected tenants claim in id token")
				}
			},
		},
		{
			name:        "invalid request body",
			requestBody: "not-json",
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "service error",
			requestBody: &oauth2.TokenHookRequest{
				Session: oauth2.NewSession("user-123"),
			},
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().HandleTokenHook(gomock.Any(), gomock.Any()).Return(nil, errors.New("service error"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			tc.setupMocks(mockService, mockLogger)

			api := NewAPI(mockService, mockLogger)
			mux := chi.NewMux()
			api.RegisterEndpoints(mux)

			var body []byte
			var err error
			if str, ok := tc.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tc.requestBody)
				if err != nil {
					t.Fatalf("failed to marshal request: %v", err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/webhooks/token", bytes.NewBuffer(body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != tc.expectedStatus {
				respBody, _ := io.ReadAll(res.Body)
				t.Errorf("expected status %d, got %d, body: %s", tc.expectedStatus, res.StatusCode, string(respBody))
			}

			if tc.validateResp != nil {
				tc.validateResp(t, res)
			}
		})
	}
}
