// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"testing"

	ory "github.com/ory/client-go"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/churchops/appcontext-service/internal/storage"
	"github.com/churchops/appcontext-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const invitationLifetime = "72h"

func identityWithEmail(id, email string) *ory.Identity {
	return &ory.Identity{
		Id:     id,
		Traits: map[string]interface{}{"email": email},
	}
}

func TestService_InviteMember(t *testing.T) {
	tenantID := "11111111-1111-7111-8111-111111111111"
	identityID := "identity-1"
	email := "warden@example.com"

	testCases := []struct {
		name        string
		role        string
		setupMocks  func(*MockStorageInterface, *MockAuthzInterface, *MockKratosClientInterface, *MockLoggerInterface)
		expectedErr bool
	}{
		{
			name: "existing identity is invited as member",
			role: RoleMember,
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface, k *MockKratosClientInterface, l *MockLoggerInterface) {
				k.EXPECT().GetIdentityIDByEmail(gomock.Any(), email).Return(identityID, nil)
				s.EXPECT().AddMember(gomock.Any(), tenantID, identityID, RoleMember).Return("m-1", nil)
				a.EXPECT().AssignTenantMember(gomock.Any(), tenantID, identityID).Return(nil)
				k.EXPECT().CreateRecoveryLink(gomock.Any(), identityID, invitationLifetime).
					Return("https://example.com/recover", "123456", nil)
			},
		},
		{
			name: "unknown email provisions a new identity",
			role: RoleOwner,
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface, k *MockKratosClientInterface, l *MockLoggerInterface) {
				k.EXPECT().GetIdentityIDByEmail(gomock.Any(), email).Return("", nil)
				l.EXPECT().Infof(gomock.Any(), gomock.Any())
				k.EXPECT().CreateIdentity(gomock.Any(), email).Return(identityID, nil)
				s.EXPECT().AddMember(gomock.Any(), tenantID, identityID, RoleOwner).Return("m-1", nil)
				a.EXPECT().AssignTenantOwner(gomock.Any(), tenantID, identityID).Return(nil)
				k.EXPECT().CreateRecoveryLink(gomock.Any(), identityID, invitationLifetime).
					Return("https://example.com/recover", "123456", nil)
			},
		},
		{
			name: "re-inviting an existing member issues a fresh link",
			role: RoleMember,
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface, k *MockKratosClientInterface, l *MockLoggerInterface) {
				k.EXPECT().GetIdentityIDByEmail(gomock.Any(), email).Return(identityID, nil)
				s.EXPECT().AddMember(gomock.Any(), tenantID, identityID, RoleMember).
					Return("", storage.ErrDuplicateKey)
				a.EXPECT().AssignTenantMember(gomock.Any(), tenantID, identityID).Return(nil)
				k.EXPECT().CreateRecoveryLink(gomock.Any(), identityID, invitationLifetime).
					Return("https://example.com/recover", "123456", nil)
			},
		},
		{
			name: "relation store failure aborts the invite",
			role: RoleMember,
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface, k *MockKratosClientInterface, l *MockLoggerInterface) {
				k.EXPECT().GetIdentityIDByEmail(gomock.Any(), email).Return(identityID, nil)
				s.EXPECT().AddMember(gomock.Any(), tenantID, identityID, RoleMember).Return("m-1", nil)
				a.EXPECT().AssignTenantMember(gomock.Any(), tenantID, identityID).
					Return(errors.New("connection refused"))
				l.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockAuthz := NewMockAuthzInterface(ctrl)
			mockKratos := NewMockKratosClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "tenant.Service.InviteMember").
				Return(context.Background(), trace.SpanFromContext(context.Background()))

			tc.setupMocks(mockStorage, mockAuthz, mockKratos, mockLogger)

			s := NewService(mockStorage, mockAuthz, mockKratos, invitationLifetime, mockTracer, mockMonitor, mockLogger)

			link, code, err := s.InviteMember(context.Background(), tenantID, email, tc.role)

			if tc.expectedErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if link == "" || code == "" {
				t.Errorf("expected link and code, got %q %q", link, code)
			}
		})
	}
}

func TestService_DeleteTenant(t *testing.T) {
	tenantID := "11111111-1111-7111-8111-111111111111"

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockAuthz := NewMockAuthzInterface(ctrl)
	mockKratos := NewMockKratosClientInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "tenant.Service.DeleteTenant").
		Return(context.Background(), trace.SpanFromContext(context.Background()))

	mockStorage.EXPECT().DeleteTenant(gomock.Any(), tenantID).Return(nil)
	mockAuthz.EXPECT().DeleteTenant(gomock.Any(), tenantID).Return(errors.New("connection refused"))
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())

	s := NewService(mockStorage, mockAuthz, mockKratos, invitationLifetime, mockTracer, mockMonitor, mockLogger)

	// Relation cleanup failure must not surface once the row is deleted.
	if err := s.DeleteTenant(context.Background(), tenantID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestService_UpdateTenantUser(t *testing.T) {
	tenantID := "11111111-1111-7111-8111-111111111111"
	identityID := "identity-1"

	testCases := []struct {
		name         string
		role         string
		setupMocks   func(*MockStorageInterface, *MockAuthzInterface, *MockKratosClientInterface, *MockLoggerInterface)
		expectedErr  error
		expectedRole string
	}{
		{
			name: "promotion to owner swaps the relation",
			role: RoleOwner,
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface, k *MockKratosClientInterface, l *MockLoggerInterface) {
				s.EXPECT().ListMembersByTenantID(gomock.Any(), tenantID).Return([]*types.Membership{
					{TenantID: tenantID, IdentityID: identityID, Role: RoleMember},
				}, nil)
				a.EXPECT().AssignTenantOwner(gomock.Any(), tenantID, identityID).Return(nil)
				a.EXPECT().RemoveTenantMember(gomock.Any(), tenantID, identityID).Return(nil)
				s.EXPECT().UpdateMember(gomock.Any(), tenantID, identityID, RoleOwner).Return(nil)
				k.EXPECT().GetIdentity(gomock.Any(), identityID).
					Return(identityWithEmail(identityID, "warden@example.com"), nil)
			},
			expectedRole: RoleOwner,
		},
		{
			name: "unchanged role is a no-op",
			role: RoleMember,
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface, k *MockKratosClientInterface, l *MockLoggerInterface) {
				s.EXPECT().ListMembersByTenantID(gomock.Any(), tenantID).Return([]*types.Membership{
					{TenantID: tenantID, IdentityID: identityID, Role: RoleMember},
				}, nil)
				k.EXPECT().GetIdentity(gomock.Any(), identityID).
					Return(identityWithEmail(identityID, "warden@example.com"), nil)
			},
			expectedRole: RoleMember,
		},
		{
			name: "unknown membership is reported",
			role: RoleOwner,
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface, k *MockKratosClientInterface, l *MockLoggerInterface) {
				s.EXPECT().ListMembersByTenantID(gomock.Any(), tenantID).Return(nil, nil)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockAuthz := NewMockAuthzInterface(ctrl)
			mockKratos := NewMockKratosClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "tenant.Service.UpdateTenantUser").
				Return(context.Background(), trace.SpanFromContext(context.Background()))

			tc.setupMocks(mockStorage, mockAuthz, mockKratos, mockLogger)

			s := NewService(mockStorage, mockAuthz, mockKratos, invitationLifetime, mockTracer, mockMonitor, mockLogger)

			user, err := s.UpdateTenantUser(context.Background(), tenantID, identityID, tc.role)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if user.Role != tc.expectedRole {
				t.Errorf("expected role %s, got %s", tc.expectedRole, user.Role)
			}
		})
	}
}

func TestService_ListTenantUsers(t *testing.T) {
	tenantID := "11111111-1111-7111-8111-111111111111"

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockAuthz := NewMockAuthzInterface(ctrl)
	mockKratos := NewMockKratosClientInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "tenant.Service.ListTenantUsers").
		Return(context.Background(), trace.SpanFromContext(context.Background()))

	mockStorage.EXPECT().ListMembersByTenantID(gomock.Any(), tenantID).Return([]*types.Membership{
		{TenantID: tenantID, IdentityID: "identity-1", Role: RoleOwner},
		{TenantID: tenantID, IdentityID: "identity-2", Role: RoleMember},
	}, nil)

	mockKratos.EXPECT().GetIdentity(gomock.Any(), "identity-1").
		Return(identityWithEmail("identity-1", "warden@example.com"), nil)
	mockKratos.EXPECT().GetIdentity(gomock.Any(), "identity-2").
		Return(nil, errors.New("identity deleted"))
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any(), gomock.Any())

	s := NewService(mockStorage, mockAuthz, mockKratos, invitationLifetime, mockTracer, mockMonitor, mockLogger)

	users, err := s.ListTenantUsers(context.Background(), tenantID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected two users, got %d", len(users))
	}
	if users[0].Email != "warden@example.com" {
		t.Errorf("expected resolved email, got %q", users[0].Email)
	}
	if users[1].Email != "unknown" {
		t.Errorf("expected placeholder email for deleted identity, got %q", users[1].Email)
	}
}
