// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"testing"

	"github.com/ory/hydra/v2/oauth2"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/churchops/appcontext-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_HandleRegistration(t *testing.T) {
	identityID := "identity-123"
	email := "user@example.com"
	tenant := &types.Tenant{ID: "tenant-123", Name: "user@example.com's Org", Enabled: false}

	testCases := []struct {
		name        string
		identityID  string
		email       string
		setupMocks  func(*MockStorageInterface, *MockAuthorizerInterface, *MockLoggerInterface)
		expectedErr bool
	}{
		{
			name:       "registration provisions a disabled tenant",
			identityID: identityID,
			email:      email,
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
				mockStorage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, t *types.Tenant) (*types.Tenant, error) {
						if t.Name != "user@example.com's Org" {
							return nil, errors.New("wrong tenant name")
						}
						if t.Enabled {
							return nil, errors.New("tenant should start disabled")
						}
						return tenant, nil
					})
				mockStorage.EXPECT().AddMember(gomock.Any(), tenant.ID, identityID, "owner").Return("member-id", nil)
				mockAuthz.EXPECT().AssignTenantOwner(gomock.Any(), tenant.ID, identityID).Return(nil)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name:       "empty email still provisions",
			identityID: identityID,
			email:      "",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
				mockStorage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, t *types.Tenant) (*types.Tenant, error) {
						if t.Name != "" {
							return nil, errors.New("expected empty tenant name")
						}
						return tenant, nil
					})
				mockStorage.EXPECT().AddMember(gomock.Any(), tenant.ID, identityID, "owner").Return("member-id", nil)
				mockAuthz.EXPECT().AssignTenantOwner(gomock.Any(), tenant.ID, identityID).Return(nil)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name:       "empty identity id is rejected",
			identityID: "",
			email:      email,
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedErr: true,
		},
		{
			name:       "tenant creation failure aborts",
			identityID: identityID,
			email:      email,
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
				mockStorage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(nil, errors.New("storage error"))
			},
			expectedErr: true,
		},
		{
			name:       "membership failure aborts",
			identityID: identityID,
			email:      email,
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
				mockStorage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(tenant, nil)
				mockStorage.EXPECT().AddMember(gomock.Any(), tenant.ID, identityID, "owner").
					Return("", errors.New("storage error"))
			},
			expectedErr: true,
		},
		{
			name:       "relation store failure aborts",
			identityID: identityID,
			email:      email,
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
				mockStorage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(tenant, nil)
				mockStorage.EXPECT().AddMember(gomock.Any(), tenant.ID, identityID, "owner").Return("member-id", nil)
				mockAuthz.EXPECT().AssignTenantOwner(gomock.Any(), tenant.ID, identityID).
					Return(errors.New("authz error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockAuthz := NewMockAuthorizerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "webhooks.Service.HandleRegistration").
				Return(context.Background(), trace.SpanFromContext(context.Background()))

			tc.setupMocks(mockStorage, mockAuthz, mockLogger)

			s := NewService(mockStorage, mockAuthz, mockTracer, mockMonitor, mockLogger)

			err := s.HandleRegistration(context.Background(), tc.identityID, tc.email)

			if tc.expectedErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tc.expectedErr && err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestService_HandleTokenHook(t *testing.T) {
	subject := "user-123"

	testCases := []struct {
		name        string
		req         *oauth2.TokenHookRequest
		setupMocks  func(*MockStorageInterface)
		expectedErr bool
		expected    []string
	}{
		{
			name: "tenants claim lists enabled tenants",
			req:  &oauth2.TokenHookRequest{Session: oauth2.NewSession(subject)},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListActiveTenantsByIdentityID(gomock.Any(), subject).
					Return([]*types.Tenant{
						{ID: "tenant-1", Enabled: true},
						{ID: "tenant-2", Enabled: true},
					}, nil)
			},
			expected: []string{"tenant-1", "tenant-2"},
		},
		{
			name: "no tenants yields an empty claim",
			req:  &oauth2.TokenHookRequest{Session: oauth2.NewSession(subject)},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListActiveTenantsByIdentityID(gomock.Any(), subject).
					Return(nil, nil)
			},
			expected: []string{},
		},
		{
			name:        "missing session is rejected",
			req:         &oauth2.TokenHookRequest{},
			setupMocks:  func(mockStorage *MockStorageInterface) {},
			expectedErr: true,
		},
		{
			name: "storage failure surfaces",
			req:  &oauth2.TokenHookRequest{Session: oauth2.NewSession(subject)},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListActiveTenantsByIdentityID(gomock.Any(), subject).
					Return(nil, errors.New("storage error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockAuthz := NewMockAuthorizerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "webhooks.Service.HandleTokenHook").
				Return(context.Background(), trace.SpanFromContext(context.Background()))

			tc.setupMocks(mockStorage)

			s := NewService(mockStorage, mockAuthz, mockTracer, mockMonitor, mockLogger)

			resp, err := s.HandleTokenHook(context.Background(), tc.req)

			if tc.expectedErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			got, ok := resp.Session.IDToken["tenants"].([]string)
			if !ok {
				t.Fatalf("expected tenants claim, got %v", resp.Session.IDToken)
			}
			if len(got) != len(tc.expected) {
				t.Fatalf("expected %d tenants, got %d", len(tc.expected), len(got))
			}
			for i, id := range tc.expected {
				if got[i] != id {
					t.Errorf("tenant %d: expected %s, got %s", i, id, got[i])
				}
			}
		})
	}
}
