// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/churchops/appcontext-service/internal/types"
	"github.com/churchops/appcontext-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package session -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package session -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package session -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package session -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const cookieName = "ac_session"

func TestMiddleware_HTTPMiddleware(t *testing.T) {
	identity := "user-1"
	existing := &types.Session{
		Token:          "token-1",
		IdentityID:     identity,
		ActiveTenantID: "tenant-1",
		ExpiresAt:      time.Now().Add(time.Hour),
	}

	testCases := []struct {
		name            string
		authenticated   bool
		cookie          string
		setupMocks      func(*MockServiceInterface)
		expectSession   bool
		expectSetCookie bool
	}{
		{
			name:          "anonymous request passes through",
			authenticated: false,
			setupMocks:    func(svc *MockServiceInterface) {},
			expectSession: false,
		},
		{
			name:          "existing session is reused",
			authenticated: true,
			cookie:        "token-1",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().GetSession(gomock.Any(), "token-1").Return(existing, nil)
			},
			expectSession: true,
		},
		{
			name:          "expired session cookie creates a fresh session",
			authenticated: true,
			cookie:        "stale-token",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().GetSession(gomock.Any(), "stale-token").Return(nil, errors.New("not found"))
				svc.EXPECT().StartSession(gomock.Any(), identity, gomock.Any(), gomock.Any()).
					Return(&types.Session{Token: "fresh-token", IdentityID: identity}, nil)
			},
			expectSession:   true,
			expectSetCookie: true,
		},
		{
			name:          "no cookie creates a session lazily",
			authenticated: true,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().StartSession(gomock.Any(), identity, gomock.Any(), gomock.Any()).
					Return(&types.Session{Token: "fresh-token", IdentityID: identity}, nil)
			},
			expectSession:   true,
			expectSetCookie: true,
		},
		{
			name:          "cookie for another identity is replaced",
			authenticated: true,
			cookie:        "token-1",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().GetSession(gomock.Any(), "token-1").
					Return(&types.Session{Token: "token-1", IdentityID: "someone-else"}, nil)
				svc.EXPECT().StartSession(gomock.Any(), identity, gomock.Any(), gomock.Any()).
					Return(&types.Session{Token: "fresh-token", IdentityID: identity}, nil)
			},
			expectSession:   true,
			expectSetCookie: true,
		},
		{
			name:          "session creation failure degrades to no session",
			authenticated: true,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().StartSession(gomock.Any(), identity, gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db down"))
			},
			expectSession: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "session.Middleware.HTTPMiddleware").
				DoAndReturn(func(ctx context.Context, name string) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				})
			mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

			tc.setupMocks(mockSvc)

			m := NewMiddleware(mockSvc, cookieName, time.Hour, mockTracer, mockMonitor, mockLogger)

			var gotSession *types.Session
			var hadSession bool
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotSession, hadSession = GetSession(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tc.authenticated {
				req = req.WithContext(authentication.WithUserID(req.Context(), identity))
			}
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: cookieName, Value: tc.cookie})
			}
			rr := httptest.NewRecorder()

			m.HTTPMiddleware(handler).ServeHTTP(rr, req)

			if hadSession != tc.expectSession {
				t.Errorf("expected session presence %v, got %v", tc.expectSession, hadSession)
			}
			if tc.expectSession && gotSession == nil {
				t.Fatal("expected a session in context")
			}

			setCookie := rr.Header().Get("Set-Cookie") != ""
			if setCookie != tc.expectSetCookie {
				t.Errorf("expected Set-Cookie presence %v, got %v", tc.expectSetCookie, setCookie)
			}
		})
	}
}

func TestState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockServiceInterface(ctrl)

	state := NewState("token-1", "tenant-1", mockSvc)
	if state.ActiveTenantID() != "tenant-1" {
		t.Errorf("expected tenant-1, got %s", state.ActiveTenantID())
	}

	mockSvc.EXPECT().SetActiveTenant(gomock.Any(), "token-1", "tenant-2").Return(nil)
	if err := state.SetActiveTenant(context.Background(), "tenant-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.ActiveTenantID() != "tenant-2" {
		t.Errorf("expected tenant-2 after set, got %s", state.ActiveTenantID())
	}

	mockSvc.EXPECT().ClearActiveTenant(gomock.Any(), "token-1").Return(nil)
	if err := state.ClearActiveTenant(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.ActiveTenantID() != "" {
		t.Errorf("expected empty tenant after clear, got %s", state.ActiveTenantID())
	}

	mockSvc.EXPECT().SetActiveTenant(gomock.Any(), "token-1", "tenant-3").Return(errors.New("db down"))
	if err := state.SetActiveTenant(context.Background(), "tenant-3"); err == nil {
		t.Error("expected error from failed persist")
	}
	if state.ActiveTenantID() != "" {
		t.Errorf("failed persist must not update the in-memory value, got %s", state.ActiveTenantID())
	}
}
